package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circlegrid/pkg/pipeline"
)

// renderCommand creates the render command: CSV straight to output files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := newOptions()

	cmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Render a CSV file as a circle grid",
		Long: `Render a CSV file as a circle grid.

This is 'layout' followed by 'visualize' in one step. Several formats can be
written at once with -f svg,png,pdf; they share one layout computation.

Tree output (-t tree) draws the same hierarchy as a node-link diagram.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveOptions(&opts, cmd.Flags().Changed); err != nil {
				return err
			}
			opts.Input = args[0]
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached layouts and artifacts")
	addLayoutFlags(cmd, &opts)
	addRenderFlags(cmd, &opts)

	return cmd
}

// runRender executes the full pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.Input+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	loggerFromContext(ctx).Debug("run complete", "run", result.RunID, "input_hash", result.InputHash[:12])
	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   result.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}
