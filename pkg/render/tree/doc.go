// Package tree renders a circle layout as a node-link diagram.
//
// # Overview
//
// The circle view shows hierarchy through nesting, which hides small
// leaves and makes deep trees hard to read. This package draws the same
// layout as a top-down Graphviz graph: one subgraph per cluster, one box
// per circle, and an arrow from every parent to its children.
//
// # Usage
//
//	dot := tree.ToDOT(layout, tree.Options{Detailed: true})
//	svg, err := tree.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := tree.RenderPDF(ctx, dot)
//	png, err := tree.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: when true, labels include the value and packed radius.
//
// SVG rendering uses the WebAssembly build of Graphviz bundled with
// [github.com/goccy/go-graphviz], so no system install is needed. PDF and
// PNG go through rsvg-convert (see [render.ToPDF]).
package tree
