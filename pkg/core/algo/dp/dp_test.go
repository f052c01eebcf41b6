package dp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{90, 2880067194370816120},
	}
	for _, tt := range tests {
		last := Fibonacci.Run(step.Input{N: tt.n}).Last()
		require.NotNil(t, last.Result, "n=%d", tt.n)
		assert.Equal(t, tt.want, *last.Result, "n=%d", tt.n)
		assert.Len(t, last.Items, tt.n+1)
	}
}

func TestClimbingStairs(t *testing.T) {
	last := ClimbingStairs.Run(step.Input{N: 6}).Last()
	require.NotNil(t, last.Result)
	assert.Equal(t, 13, *last.Result)
}

func TestTableFillsLeftToRight(t *testing.T) {
	s := Fibonacci.Run(step.Input{N: 5})
	assert.Equal(t, []int{0, 1, Unfilled, Unfilled, Unfilled, Unfilled}, s.At(0).Items)
	assert.Equal(t, []int{0, 1, 1, Unfilled, Unfilled, Unfilled}, s.At(1).Items)
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5}, s.Last().Items)
}

func TestOutOfRange(t *testing.T) {
	for _, a := range Topic.Algorithms {
		for _, n := range []int{-1, MaxN + 1} {
			assert.Equal(t, step.PhaseInvalid, a.Run(step.Input{N: n}).Last().Phase, "%s n=%d", a.Name, n)
		}
	}
}
