package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout(), path)
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			st := c.status()
			if _, err := os.Stat(path); err == nil && !force {
				st.warn("Config already exists")
				st.detail("Use --force to overwrite %s", path)
				return nil
			}
			if err := config.Default().Write(path); err != nil {
				return err
			}
			st.success("Wrote default config")
			st.file(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeConfig(c.stdout(), c.Config)
			return nil
		},
	}
}

func writeConfig(w io.Writer, cfg *config.Config) {
	source := cfg.Path
	if source == "" {
		source = "defaults"
	}
	printKeyValue(w, "source", source)
	printKeyValue(w, "speed", cfg.Playback.Speed.String())
	printKeyValue(w, "cache", cfg.Cache.Backend)
	printKeyValue(w, "cache ttl", cfg.Cache.TTL.String())
	if cfg.Cache.Prefix != "" {
		printKeyValue(w, "cache prefix", cfg.Cache.Prefix)
	}
	printKeyValue(w, "server addr", cfg.Server.Addr)
	printKeyValue(w, "concurrency", fmt.Sprint(cfg.Server.Concurrency))
	printKeyValue(w, "metrics", fmt.Sprint(cfg.Server.Metrics))

	names := make([]string, 0, len(cfg.Inputs))
	for name := range cfg.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printKeyValue(w, "input", name)
	}
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}
