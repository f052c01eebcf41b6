package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/algo/search"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/playback"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, playback.DefaultSpeed, cfg.Playback.Speed)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesOnlyDefinedKeys(t *testing.T) {
	path := writeFile(t, `
[playback]
speed = "250ms"

[cache]
backend = "redis"
addr = "cache:6379"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Speed)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.Addr)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.TTL, "unset keys keep their defaults")
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[playback]\nsped = \"1s\"\n"},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n"},
		{"zero speed", "[playback]\nspeed = \"0s\"\n"},
		{"bad algorithm name", "[inputs.\"Binary Search\"]\ntarget = 3\n"},
		{"too many values", "[inputs.bfs]\nvalues = [" + manyValues(70) + "]\n"},
		{"syntax", "[cache\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func manyValues(n int) string {
	s := "0"
	for i := 1; i < n; i++ {
		s += ", 0"
	}
	return s
}

func TestInputFor(t *testing.T) {
	path := writeFile(t, `
[inputs.binary-search]
target = 23
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	in := cfg.InputFor(search.BinarySearch)
	assert.Equal(t, 23, in.Target)
	assert.Equal(t, search.BinarySearch.Defaults.Values, in.Values, "values keep the default")

	in.Values[0] = -1
	assert.NotEqual(t, -1, search.BinarySearch.Defaults.Values[0], "defaults are not aliased")

	assert.Equal(t, search.LowerBound.Defaults, cfg.InputFor(search.LowerBound))
}

func TestInputOverrideApply(t *testing.T) {
	zero, text := 0, "abba"
	o := InputOverride{
		Values: []int{},
		Target: &zero,
		Text:   &text,
		Edges:  []step.Edge{{0, 1}},
	}
	in := o.Apply(step.Input{Values: []int{1, 2}, Target: 9, K: 3})
	assert.Empty(t, in.Values)
	assert.Equal(t, 0, in.Target, "explicit zero overrides")
	assert.Equal(t, 3, in.K)
	assert.Equal(t, "abba", in.Text)
	assert.Equal(t, []step.Edge{{0, 1}}, in.Edges)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Server.Addr = ":9090"
	target := 5
	cfg.Inputs["lower-bound"] = InputOverride{Target: &target}

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", loaded.Server.Addr)
	assert.Equal(t, cfg.Playback.Speed, loaded.Playback.Speed)
	require.NotNil(t, loaded.Inputs["lower-bound"].Target)
	assert.Equal(t, 5, *loaded.Inputs["lower-bound"].Target)
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/cfg", AppName, "config.toml"), p)

	cfg := Default()
	dir, err := cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/cache", AppName), dir)

	cfg.Cache.Dir = "/srv/dsaviz"
	dir, err = cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/dsaviz", dir)
}
