package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pipeline"
	"github.com/matzehuels/circlegrid/pkg/render/circles"
)

// layoutCommand creates the layout command for computing circle layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := newOptions()

	cmd := &cobra.Command{
		Use:   "layout [data.csv]",
		Short: "Compute the circle grid layout of a CSV file",
		Long: `Compute the circle grid layout of a CSV file.

Rows are grouped by the --key column(s), the --value column is summed per
group, and the groups are dealt round-robin into --clusters clusters. Each
cluster is circle-packed into one cell of a near-square grid.

The output is a layout.json file (same format as 'render -f json') that can
be rendered with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveOptions(&opts, cmd.Flags().Changed); err != nil {
				return err
			}
			opts.Input = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if a cached layout exists")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the data, computes the layout, and writes layout.json.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	data, err := pipeline.ReadInput(opts.Input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, data, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return errors.Annotate(err, "compute layout")
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	encoded, err := circles.MarshalLayout(l)
	if err != nil {
		return err
	}
	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", opts.Input) + ".layout.json"
	}
	if err := writeFile(outputPath, encoded); err != nil {
		return err
	}
	prog.done("layout written", "path", outputPath)

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Cells), len(l.Visible(false)), cacheHit)
	printNewline()
	printNextStep("Render", fmt.Sprintf("%s visualize %s", appName, outputPath))

	return nil
}

