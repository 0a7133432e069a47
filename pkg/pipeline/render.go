package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/observability"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
	"github.com/matzehuels/circlegrid/pkg/render/tree"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l circles.Layout, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()

	var (
		artifacts map[string][]byte
		err       error
	)
	if opts.IsTree() {
		artifacts, err = renderTree(ctx, l, opts)
	} else {
		artifacts, err = renderCircles(ctx, l, opts)
	}

	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// renderCircles generates circle-view outputs.
func renderCircles(ctx context.Context, l circles.Layout, opts Options) (map[string][]byte, error) {
	copts := opts.CircleOptions()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = circles.RenderSVG(l, copts...)
		case FormatPNG:
			data, err = circles.RenderPNG(l, opts.Scale, copts...)
		case FormatPDF:
			data, err = circles.RenderPDF(ctx, l, copts...)
		case FormatJSON:
			data, err = circles.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported circles format: %s", format)
		}

		if err != nil {
			return nil, errors.Annotate(err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderTree generates node-link outputs. The DOT source is built once and
// shared by every format.
func renderTree(ctx context.Context, l circles.Layout, opts Options) (map[string][]byte, error) {
	dot := tree.ToDOT(l, tree.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = tree.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = tree.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = tree.RenderPDF(ctx, dot)
		case FormatJSON:
			data, err = circles.RenderJSON(l)
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported tree format: %s", format)
		}

		if err != nil {
			return nil, errors.Annotate(err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
