// Package render provides visualization rendering for circle-grid layouts.
//
// # Overview
//
// This package contains the rendering side of circlegrid. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Circle-pack drawing (in [circles] subpackage)
//   - Hierarchy tree diagrams (in [tree] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := circles.RenderSVG(layout, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Circle Packs
//
// The [circles] subpackage draws the flat circle list computed by the grid
// layout: one filled circle per node, colored by depth, optionally with cell
// outlines and leaf labels. It also owns the JSON interchange format.
//
// # Tree Diagrams
//
// The [tree] subpackage renders the same hierarchy as a node-link diagram
// using Graphviz.
//
//	dot := tree.ToDOT(layout, tree.Options{})
//	svg, err := tree.RenderSVG(dot)
package render
