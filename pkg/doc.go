// Package pkg provides the libraries behind circlegrid.
//
// # Overview
//
// circlegrid draws grouped data as a grid of circle-packing clusters: each
// cluster is a small hierarchy packed into one cell of a near-square grid.
// The pkg directory is organized into these areas:
//
//  1. [hierarchy] - Input trees and leaf size functions
//  2. [pack] - Circle packing of one hierarchy into a disc
//  3. [grid] - Grid placement of several packed clusters
//  4. [dataset] - CSV loading, grouping and round-robin partitioning
//  5. [render] - SVG, PNG, PDF, JSON and tree-diagram output
//  6. [pipeline] - Orchestration (load → layout → render) with caching
//  7. [cache], [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through circlegrid:
//
//	CSV file
//	    ↓
//	[dataset] package (group, nest, partition)
//	    ↓
//	[grid] package (cell centers, [pack] per cluster)
//	    ↓
//	[render/circles] or [render/tree] package
//	    ↓
//	SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	records, _ := dataset.Load(f)
//	groups, _ := dataset.Group(records, "groupid", "value")
//	in := dataset.Partition(groups, 4)
//
//	out, _ := grid.Compute(grid.Config{
//	    Width:  800,
//	    Height: 600,
//	    Size:   hierarchy.Identity,
//	}, in)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Input: "data.csv"})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pkg
