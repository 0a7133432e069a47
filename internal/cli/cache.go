package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circlegrid/pkg/cache"
	"github.com/matzehuels/circlegrid/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached layouts and rendered artifacts",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached layout and artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			clearer, err := c.openClearer(cmd)
			if err != nil {
				return err
			}
			defer clearer.Close()

			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Location: %s", clearer.Location())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the selected cache backend stores entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			clearer, err := c.openClearer(cmd)
			if err != nil {
				return err
			}
			defer clearer.Close()

			fmt.Fprintln(cmd.OutOrStdout(), clearer.Location())
			return nil
		},
	}
}

type clearableCache interface {
	cache.Cache
	cache.Clearer
}

// openClearer opens the --cache backend for maintenance commands.
func (c *CLI) openClearer(cmd *cobra.Command) (clearableCache, error) {
	store, err := c.openCache(cmd.Context(), false)
	if err != nil {
		return nil, err
	}
	clearer, ok := store.(clearableCache)
	if !ok {
		store.Close()
		return nil, errors.New(errors.ErrCodeUnsupported, "cache backend %q cannot be cleared", c.cacheSpec)
	}
	return clearer, nil
}
