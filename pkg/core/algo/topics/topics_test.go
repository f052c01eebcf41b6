package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func checkSequence(t *testing.T, a *algo.Algorithm, s *step.Sequence) {
	t.Helper()
	require.Positive(t, s.Len(), "%s: empty sequence", a.Name)
	for i := 0; i < s.Len()-1; i++ {
		assert.False(t, s.At(i).Done, "%s: step %d done before the end", a.Name, i)
	}
	last := s.Last()
	assert.True(t, last.Done, "%s: last step not done", a.Name)
	assert.NotEmpty(t, last.Explanation, "%s: terminal step has no explanation", a.Name)
}

func TestEveryAlgorithm(t *testing.T) {
	inputs := map[string]func(a *algo.Algorithm) step.Input{
		"defaults":  func(a *algo.Algorithm) step.Input { return a.Defaults },
		"empty":     func(*algo.Algorithm) step.Input { return step.Input{} },
		"singleton": func(*algo.Algorithm) step.Input { return step.Input{Values: []int{5}, Text: "a", N: 1, K: 1, Left: 1, Right: 1, Edges: []step.Edge{{0, 0}}} },
		"negative":  func(*algo.Algorithm) step.Input { return step.Input{Values: []int{-3, -1}, N: -2, K: -1, Left: -1, Right: -5, CyclePos: 9, Start: -1} },
		"oversized": func(*algo.Algorithm) step.Input { return step.Input{Values: make([]int, 200), N: 1000, K: 500, Text: string(make([]rune, 300))} },
	}
	for _, a := range Algorithms() {
		for name, mk := range inputs {
			t.Run(a.Name+"/"+name, func(t *testing.T) {
				checkSequence(t, a, a.Run(mk(a)))
			})
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, a := range Algorithms() {
		first := a.Run(a.Defaults)
		second := a.Run(a.Defaults)
		assert.True(t, first.Equal(second), "%s is not deterministic", a.Name)
	}
}

func TestDefaultsProduceWalkthroughs(t *testing.T) {
	for _, a := range Algorithms() {
		assert.Greater(t, a.Run(a.Defaults).Len(), 2, "%s defaults should show several steps", a.Name)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Algorithms() {
		assert.False(t, seen[a.Name], "duplicate algorithm %s", a.Name)
		seen[a.Name] = true
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Params, "%s declares no params", a.Name)
		assert.NotNil(t, a.Generate)
	}
	assert.Len(t, algo.Names(All), len(seen))
}

func TestFind(t *testing.T) {
	require.NotNil(t, Find("Linked-List "))
	assert.Nil(t, Find("nope"))

	a, topic, ok := FindAlgorithm("BFS")
	require.True(t, ok)
	assert.Equal(t, "bfs", a.Name)
	assert.Equal(t, "graphs", topic.Name)

	_, _, ok = FindAlgorithm("quicksort")
	assert.False(t, ok)
}

func TestProblems(t *testing.T) {
	for _, topic := range All {
		ps, err := Problems(topic.Name)
		require.NoError(t, err)
		assert.NotEmpty(t, ps, "topic %s has no practice problems", topic.Name)
		for _, p := range ps {
			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.URL)
		}
	}
	ps, err := Problems("unknown")
	require.NoError(t, err)
	assert.Empty(t, ps)
}
