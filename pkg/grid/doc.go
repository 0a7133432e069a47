// Package grid lays out several circle-packing clusters in a near-square grid.
//
// With n clusters the grid has floor(sqrt(n)) rows and ceil(n/rows) columns.
// Clusters fill cells row-major from the top-left; trailing cells of the last
// row stay empty. Each cluster is packed by [pack.Compute] into its own cell,
// centered on the cell midpoint.
//
//	circles, err := grid.Compute(grid.Config{
//	    Width:  800,
//	    Height: 600,
//	    Size:   hierarchy.Identity,
//	}, hierarchy.MultiCluster(clusters))
//
// [Compute] returns only data circles: the synthetic root of every cluster is
// dropped. Use [ComputeRaw] to keep them.
package grid
