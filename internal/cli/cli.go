// Package cli implements the dsaviz command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/pkg/buildinfo"
	"github.com/matzehuels/dsaviz/pkg/cache"
	"github.com/matzehuels/dsaviz/pkg/config"
	"github.com/matzehuels/dsaviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// connectTimeout bounds dialing a remote cache backend.
	connectTimeout = 3 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
	out        io.Writer
	errOut     io.Writer
}

// New creates a new CLI instance with a default logger. Command output
// goes to stdout; w receives log lines.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dsaviz steps through classic algorithms one frame at a time",
		Long: `dsaviz turns data structure and algorithm walkthroughs into ordered,
fully described steps: pointer positions, highlights and a plain-language
explanation for every frame. Print them, play them in the terminal, render
single frames, or serve them to a browser.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.out = cmd.OutOrStdout()
			c.errOut = cmd.ErrOrStderr()
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dsaviz/config.toml)")

	root.AddCommand(c.topicsCommand())
	root.AddCommand(c.topicCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	return nil
}

// stdout returns the command output writer.
func (c *CLI) stdout() io.Writer {
	if c.out == nil {
		return io.Discard
	}
	return c.out
}

// stderr returns the writer for transient status output.
func (c *CLI) stderr() io.Writer {
	if c.errOut == nil {
		return io.Discard
	}
	return c.errOut
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Configured input
// overrides become the runner's defaults.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	store, keyer := c.openCache(ctx, noCache)
	r := pipeline.NewRunner(store, keyer, c.Logger)
	r.TTL = c.Config.Cache.TTL
	r.Concurrency = c.Config.Server.Concurrency
	r.Defaults = c.Config.InputFor
	return r
}

// openCache opens the configured backend. A backend that cannot be
// reached degrades to no caching instead of failing the command.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer) {
	cfg := c.Config.Cache
	var keyer cache.Keyer
	if cfg.Prefix != "" && cfg.Backend != config.BackendRedis {
		keyer = cache.NewScopedKeyer(nil, cfg.Prefix)
	}
	if noCache {
		return cache.NewNullCache(), keyer
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var (
		store cache.Cache
		err   error
	)
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), keyer
	case config.BackendRedis:
		addr := cfg.Addr
		if addr == "" {
			addr = config.DefaultRedisAddr
		}
		store, err = cache.NewRedisCache(ctx, cache.RedisOptions{Addr: addr, Prefix: cfg.Prefix})
	case config.BackendMongo:
		uri := cfg.URI
		if uri == "" {
			uri = config.DefaultMongoURI
		}
		store, err = cache.NewMongoCache(ctx, cache.MongoOptions{URI: uri})
	default:
		var dir string
		dir, err = c.Config.CacheDir()
		if err == nil {
			store, err = cache.NewFileCache(dir)
		}
	}
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cfg.Backend, "err", err)
		return cache.NewNullCache(), keyer
	}
	c.Logger.Debug("opened cache", "backend", cfg.Backend)
	return store, keyer
}

// =============================================================================
// Helpers
// =============================================================================

// describeBackend summarizes where the configured cache lives.
func (c *CLI) describeBackend() (string, error) {
	cfg := c.Config.Cache
	switch cfg.Backend {
	case config.BackendNone:
		return "disabled", nil
	case config.BackendRedis:
		return fmt.Sprintf("redis %s", orDefault(cfg.Addr, config.DefaultRedisAddr)), nil
	case config.BackendMongo:
		return fmt.Sprintf("mongo %s", orDefault(cfg.URI, config.DefaultMongoURI)), nil
	}
	return c.Config.CacheDir()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
