package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func TestSlidingWindow(t *testing.T) {
	last := SlidingWindow.Run(SlidingWindow.Defaults).Last()
	require.NotNil(t, last.Result)
	assert.Equal(t, 15, *last.Result)
	assert.Equal(t, 5, last.Positions.Get("lo"))
	assert.Equal(t, 7, last.Positions.Get("hi"))
}

func TestSlidingWindowInvalidK(t *testing.T) {
	for _, k := range []int{0, -2, 9} {
		s := SlidingWindow.Run(step.Input{Values: []int{1, 2}, K: k})
		assert.Equal(t, 1, s.Len(), "k=%d", k)
		assert.Equal(t, step.PhaseInvalid, s.Last().Phase, "k=%d", k)
	}
}

func TestTwoSumSorted(t *testing.T) {
	last := TwoSumSorted.Run(TwoSumSorted.Defaults).Last()
	assert.Equal(t, []int{1, 5}, last.Output)
	require.NotNil(t, last.Result)
	assert.Equal(t, 14, *last.Result)

	miss := TwoSumSorted.Run(step.Input{Values: []int{1, 2, 3}, Target: 100}).Last()
	assert.Nil(t, miss.Result)
	assert.Empty(t, miss.Output)
}
