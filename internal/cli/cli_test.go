package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/algo/topics"
	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	dsio "github.com/matzehuels/dsaviz/pkg/io"
)

// execute runs the CLI with args in isolated config and cache directories.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTopicsCommand(t *testing.T) {
	out, err := execute(t, "topics")
	require.NoError(t, err)
	for _, tp := range topics.All {
		assert.Contains(t, out, tp.Name)
	}
}

func TestTopicCommand(t *testing.T) {
	out, err := execute(t, "topic", "graphs")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs")
	assert.Contains(t, out, "dfs")

	_, err = execute(t, "topic", "heaps")
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeUnknownTopic))
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "binary-search", "--values", "1,3,5", "--target", "5", "-f", "json")
	require.NoError(t, err)

	var seq step.Sequence
	require.NoError(t, json.Unmarshal([]byte(out), &seq))
	assert.Equal(t, "binary-search", seq.Algorithm())
	require.NotNil(t, seq.Last().Result)
	assert.Equal(t, 2, *seq.Last().Result)
}

func TestRunTableAndFrames(t *testing.T) {
	out, err := execute(t, "run", "reverse-string", "--text", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "reverse")

	out, err = execute(t, "run", "reverse-string", "--text", "abc", "--frames")
	require.NoError(t, err)
	assert.Contains(t, out, "Reverse a String")
}

func TestRunAll(t *testing.T) {
	out, err := execute(t, "run", "--all", "-f", "json")
	require.NoError(t, err)

	var seqs []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &seqs))
	assert.Len(t, seqs, len(topics.Algorithms()))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		code dserrors.Code
	}{
		{[]string{"run", "quicksort"}, dserrors.ErrCodeUnknownAlgorithm},
		{[]string{"run"}, dserrors.ErrCodeInvalidInput},
		{[]string{"run", "bfs", "-f", "xml"}, dserrors.ErrCodeInvalidFormat},
		{[]string{"run", "--all", "bfs"}, dserrors.ErrCodeInvalidInput},
		{[]string{"run", "binary-search", "--values", "1,two"}, dserrors.ErrCodeInvalidInput},
		{[]string{"dot", "bfs", "-f", "gif"}, dserrors.ErrCodeInvalidFormat},
		{[]string{"dot", "bfs", "--step", "999"}, dserrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.True(t, dserrors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestDotCommand(t *testing.T) {
	out, err := execute(t, "dot", "bfs", "--step", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph"), out)

	last, err := execute(t, "dot", "bfs", "--step", "-1")
	require.NoError(t, err)
	assert.NotEqual(t, out, last)

	path := filepath.Join(t.TempDir(), "frame.dot")
	_, err = execute(t, "dot", "bfs", "-o", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	_, err = execute(t, "dot", "bfs", "-f", "png")
	assert.Error(t, err, "binary output needs -o")
}

func TestRunExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dfs.json")
	_, err := execute(t, "run", "dfs", "-o", path)
	require.NoError(t, err)

	seq, err := dsio.ImportJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "dfs", seq.Algorithm())
	assert.True(t, seq.Last().Done)
}

func TestPlayArguments(t *testing.T) {
	_, err := execute(t, "play")
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))

	path := filepath.Join(t.TempDir(), "bfs.json")
	_, err = execute(t, "run", "bfs", "-o", path)
	require.NoError(t, err)

	_, err = execute(t, "play", "bfs", "--load", path)
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))

	_, err = execute(t, "play", "--load", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfigAndCacheCommands(t *testing.T) {
	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults")

	out, err = execute(t, "cache", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "dsaviz")

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err = execute(t, "--config", path, "config", "path")
	assert.Error(t, err, "explicit missing config is an error")
}

func TestConfigInitRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "init"})
	require.NoError(t, root.Execute())

	out.Reset()
	root = c.RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "show"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "config.toml")
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "dsaviz")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dsaviz")
}
