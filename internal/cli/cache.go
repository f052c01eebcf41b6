package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached sequences and frames",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached sequence and frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := c.openCache(cmd.Context(), false)
			defer store.Close()

			where, err := c.describeBackend()
			if err != nil {
				return fmt.Errorf("get cache location: %w", err)
			}
			cleared, err := cache.Clear(cmd.Context(), store)
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			st := c.status()
			if !cleared {
				st.info("Nothing to clear")
				st.detail("Backend: %s", where)
				return nil
			}
			st.success("Cache cleared")
			st.detail("Backend: %s", where)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			where, err := c.describeBackend()
			if err != nil {
				return fmt.Errorf("get cache location: %w", err)
			}
			fmt.Fprintln(c.stdout(), where)
			return nil
		},
	}
}
