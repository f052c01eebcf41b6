package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func TestAdjacency(t *testing.T) {
	adj := Adjacency([]step.Edge{{0, 2}, {2, 0}, {0, 1}, {3, 3}})
	assert.Equal(t, [][]int{{1, 2}, {0}, {0}, nil}, adj)
}

func TestBFS(t *testing.T) {
	last := BFS.Run(BFS.Defaults).Last()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, last.Output)

	last = BFS.Run(step.Input{Edges: sampleEdges, Start: 5}).Last()
	assert.Equal(t, []int{5, 3, 4, 1, 2, 0}, last.Output)
}

func TestDFS(t *testing.T) {
	last := DFS.Run(DFS.Defaults).Last()
	assert.Equal(t, []int{0, 1, 3, 5, 4, 2}, last.Output)
}

func TestDisconnected(t *testing.T) {
	in := step.Input{Edges: []step.Edge{{0, 1}, {2, 3}}}
	for _, a := range Topic.Algorithms {
		last := a.Run(in).Last()
		assert.Equal(t, []int{0, 1}, last.Output, a.Name)
		assert.Len(t, last.Items, 4, a.Name)
	}
}

func TestInvalidStart(t *testing.T) {
	for _, a := range Topic.Algorithms {
		s := a.Run(step.Input{Edges: sampleEdges, Start: 6})
		assert.Equal(t, 1, s.Len(), a.Name)
		assert.Equal(t, step.PhaseInvalid, s.Last().Phase, a.Name)
	}
}
