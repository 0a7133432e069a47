package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pipeline"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := newOptions()

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render visualization from a computed layout",
		Long: `Render visualization from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, or PDF format. The layout contains all positioning
information, so this step is purely about rendering.

Use 'render' as a shortcut to go directly from CSV to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveOptions(&opts, cmd.Flags().Changed); err != nil {
				return err
			}
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addRenderFlags(cmd, &opts)

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	f, err := os.Open(input)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s not found", input)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", input)
	}
	l, err := circles.ReadJSON(f)
	f.Close()
	if err != nil {
		return errors.Annotate(err, "load layout %s", input)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.VizType+"...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return errors.Annotate(err, "visualize")
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     trimLayoutSuffix(input),
		output:    output,
		cacheHit:  cacheHit,
	})
}

// trimLayoutSuffix maps "data.layout.json" to "data" so that outputs land
// next to the source as data.svg rather than data.layout.svg.
func trimLayoutSuffix(path string) string {
	const suffix = ".layout.json"
	if len(path) > len(suffix) && path[len(path)-len(suffix):] == suffix {
		return path[:len(path)-len(suffix)] + ".json"
	}
	return path
}
