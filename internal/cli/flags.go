package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/circlegrid/pkg/pipeline"
)

// addLayoutFlags binds the load and layout options of opts to cmd.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringSliceVarP(&opts.KeyFields, "key", "k", opts.KeyFields, "column(s) to group by, outermost first (comma-separated)")
	f.StringVar(&opts.ValueField, "value", opts.ValueField, "column summed per group")
	f.IntVarP(&opts.Clusters, "clusters", "n", opts.Clusters, "number of clusters the groups are dealt into")
	f.Float64Var(&opts.Width, "width", opts.Width, "drawing width")
	f.Float64Var(&opts.Height, "height", opts.Height, "drawing height")
	f.Float64Var(&opts.Margin, "margin", pipeline.DefaultMargin, "blank border around the drawing")
	f.Float64Var(&opts.Padding, "padding", opts.Padding, "gap between sibling circles")
	f.StringVar(&opts.Size, "size", opts.Size, "leaf size: value (default), constant")
}

// addRenderFlags binds the render options of opts to cmd.
func addRenderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringVarP(&opts.VizType, "type", "t", opts.VizType, "visualization type: circles (default), tree")
	f.StringSliceVarP(&opts.Formats, "format", "f", opts.Formats, "output format(s): svg (default), png, pdf, json (comma-separated)")
	f.StringVar(&opts.Palette, "palette", opts.Palette, "fill palette: default, mono")
	f.BoolVar(&opts.Grid, "grid", false, "outline the grid cells")
	f.BoolVar(&opts.Labels, "labels", false, "label leaves that are large enough")
	f.BoolVar(&opts.Outlines, "outlines", false, "draw each cluster's enclosing circle")
	f.BoolVar(&opts.Detailed, "detailed", false, "show values and radii in tree labels")
	f.Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution multiplier")
}

// newOptions returns pipeline options pre-filled with defaults so that
// flag help shows them.
func newOptions() pipeline.Options {
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	opts.Logger = nil
	return opts
}
