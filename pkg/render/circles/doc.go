// Package circles draws circle-grid layouts.
//
// A [Layout] bundles the computed circles with the drawing area, margin and
// grid cells they were computed for. [Build] runs the grid layout and
// produces one; [ReadJSON] loads one saved by [RenderJSON].
//
// Sinks:
//
//   - [RenderSVG]: vector output, one <circle> per node
//   - [RenderPNG]: raster output drawn with fogleman/gg
//   - [RenderPDF]: vector PDF via rsvg-convert
//   - [RenderJSON]: the layout interchange format
//
// Synthetic cluster roots are kept in the layout but only drawn when
// [WithOutlines] is set.
package circles
