package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/step"
	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
)

func TestParseValues(t *testing.T) {
	got, err := parseValues(" 3, 7,12 ,-4")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 12, -4}, got)

	got, err = parseValues("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseValues("1,x")
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))
}

func TestParseEdges(t *testing.T) {
	got, err := parseEdges("0-1, 1-2")
	require.NoError(t, err)
	assert.Equal(t, []step.Edge{{0, 1}, {1, 2}}, got)

	for _, bad := range []string{"0", "0-", "a-b", "-1-2", "0-1,,"} {
		_, err := parseEdges(bad)
		assert.Error(t, err, bad)
	}
}

func parseInputFlags(t *testing.T, args ...string) (*cobra.Command, *inputFlags) {
	t.Helper()
	var f inputFlags
	cmd := &cobra.Command{Use: "x"}
	f.register(cmd)
	var speed time.Duration
	cmd.Flags().DurationVar(&speed, "speed", 0, "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &f
}

func TestApplyOverlaysOnlyChangedFlags(t *testing.T) {
	base := step.Input{Values: []int{1, 2, 3}, Target: 9, K: 2}

	cmd, f := parseInputFlags(t, "--target", "0", "--text", "abba")
	in, err := f.apply(cmd, base)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in.Values)
	assert.Equal(t, 0, in.Target, "explicit zero wins over the default")
	assert.Equal(t, 2, in.K)
	assert.Equal(t, "abba", in.Text)

	cmd, f = parseInputFlags(t, "--values", "5,6", "--edges", "0-1")
	in, err = f.apply(cmd, base)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, in.Values)
	assert.Equal(t, []step.Edge{{0, 1}}, in.Edges)
	assert.Equal(t, []int{1, 2, 3}, base.Values, "base is not modified")
}

func TestApplyValidates(t *testing.T) {
	cmd, f := parseInputFlags(t, "--values", "1,2000000")
	_, err := f.apply(cmd, step.Input{})
	assert.True(t, dserrors.Is(err, dserrors.ErrCodeInvalidInput))
}

func TestSpeedFlag(t *testing.T) {
	cmd, _ := parseInputFlags(t)
	d, err := speedFlag(cmd, 0, time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	cmd, _ = parseInputFlags(t, "--speed", "250ms")
	d, err = speedFlag(cmd, 250*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	cmd, _ = parseInputFlags(t, "--speed", "0s")
	_, err = speedFlag(cmd, 0, time.Second)
	assert.Error(t, err)
}
