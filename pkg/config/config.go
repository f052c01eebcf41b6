package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

// AppName names the config and cache directories.
const AppName = "dsaviz"

// Cache backends.
const (
	BackendFile  = "file"
	BackendNone  = "none"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Backends lists the accepted cache backend names.
var Backends = []string{BackendFile, BackendNone, BackendRedis, BackendMongo}

// =============================================================================
// Defaults
// =============================================================================

const (
	DefaultCacheTTL    = 7 * 24 * time.Hour
	DefaultServerAddr  = ":8080"
	DefaultRedisAddr   = "localhost:6379"
	DefaultMongoURI    = "mongodb://localhost:27017"
	DefaultConcurrency = 4
)

// =============================================================================
// Types
// =============================================================================

// Config is the decoded settings file.
type Config struct {
	Playback Playback                 `toml:"playback"`
	Cache    Cache                    `toml:"cache"`
	Server   Server                   `toml:"server"`
	Inputs   map[string]InputOverride `toml:"inputs"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Playback configures the player.
type Playback struct {
	Speed time.Duration `toml:"speed"`
}

// Cache selects and configures the sequence cache.
type Cache struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	Addr    string        `toml:"addr"`
	URI     string        `toml:"uri"`
	TTL     time.Duration `toml:"ttl"`
	Prefix  string        `toml:"prefix"`
}

// Server configures "dsaviz serve".
type Server struct {
	Addr        string `toml:"addr"`
	Concurrency int    `toml:"concurrency"`
	Metrics     bool   `toml:"metrics"`
}

// InputOverride replaces parts of an algorithm's default input. Nil
// fields keep the default.
type InputOverride struct {
	Values   []int       `toml:"values,omitempty"`
	Target   *int        `toml:"target"`
	Left     *int        `toml:"left"`
	Right    *int        `toml:"right"`
	K        *int        `toml:"k"`
	CyclePos *int        `toml:"cycle_pos"`
	Start    *int        `toml:"start"`
	N        *int        `toml:"n"`
	Text     *string     `toml:"text"`
	Edges    []step.Edge `toml:"edges,omitempty"`
}

// Apply overlays the set fields of o onto in.
func (o InputOverride) Apply(in step.Input) step.Input {
	out := in.Clone()
	if o.Values != nil {
		out.Values = slices.Clone(o.Values)
	}
	setInt(&out.Target, o.Target)
	setInt(&out.Left, o.Left)
	setInt(&out.Right, o.Right)
	setInt(&out.K, o.K)
	setInt(&out.CyclePos, o.CyclePos)
	setInt(&out.Start, o.Start)
	setInt(&out.N, o.N)
	if o.Text != nil {
		out.Text = *o.Text
	}
	if o.Edges != nil {
		out.Edges = slices.Clone(o.Edges)
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// =============================================================================
// Loading
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Playback: Playback{Speed: playback.DefaultSpeed},
		Cache: Cache{
			Backend: BackendFile,
			TTL:     DefaultCacheTTL,
		},
		Server: Server{
			Addr:        DefaultServerAddr,
			Concurrency: DefaultConcurrency,
			Metrics:     true,
		},
		Inputs: map[string]InputOverride{},
	}
}

// Load reads path on top of [Default]. An empty path means [Path]; a
// missing file at the default location is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, dserrors.Wrap(dserrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, dserrors.New(dserrors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	if cfg.Inputs == nil {
		cfg.Inputs = map[string]InputOverride{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values a file may have set to something unusable.
func (c *Config) Validate() error {
	if !slices.Contains(Backends, c.Cache.Backend) {
		return dserrors.New(dserrors.ErrCodeInvalidInput, "unknown cache backend %q (want one of %v)", c.Cache.Backend, Backends)
	}
	if err := dserrors.ValidateSpeed(c.Playback.Speed); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return dserrors.New(dserrors.ErrCodeInvalidInput, "cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Server.Concurrency < 1 {
		return dserrors.New(dserrors.ErrCodeInvalidInput, "server concurrency must be at least 1, got %d", c.Server.Concurrency)
	}
	for name, o := range c.Inputs {
		if err := dserrors.ValidateAlgorithmName(name); err != nil {
			return err
		}
		if err := dserrors.ValidateValues(o.Values); err != nil {
			return fmt.Errorf("inputs.%s: %w", name, err)
		}
	}
	return nil
}

// InputFor returns a's default input with any configured override
// applied.
func (c *Config) InputFor(a *algo.Algorithm) step.Input {
	if o, ok := c.Inputs[a.Name]; ok {
		return o.Apply(a.Defaults)
	}
	return a.Defaults.Clone()
}

// Write encodes c as TOML to path, creating the directory if needed.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

// =============================================================================
// Paths
// =============================================================================

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, else
// $XDG_CACHE_HOME/dsaviz, else ~/.cache/dsaviz.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}
