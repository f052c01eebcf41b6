// Package topics provides the complete catalogue of topics and their
// algorithms.
//
// This package exists to break import cycles: the individual topic packages
// (search, linkedlist, etc.) import pkg/core/algo, so algo cannot import them
// back. Consumers that need the full catalogue import this package.
//
// Usage:
//
//	import "github.com/matzehuels/dsaviz/pkg/core/algo/topics"
//
//	for _, t := range topics.All {
//	    fmt.Println(t.Name, len(t.Algorithms))
//	}
package topics

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/algo/array"
	"github.com/matzehuels/dsaviz/pkg/core/algo/dp"
	"github.com/matzehuels/dsaviz/pkg/core/algo/graph"
	"github.com/matzehuels/dsaviz/pkg/core/algo/linkedlist"
	"github.com/matzehuels/dsaviz/pkg/core/algo/recursion"
	"github.com/matzehuels/dsaviz/pkg/core/algo/search"
	"github.com/matzehuels/dsaviz/pkg/core/algo/stackqueue"
	"github.com/matzehuels/dsaviz/pkg/core/algo/strs"
	"github.com/matzehuels/dsaviz/pkg/core/algo/tree"
)

// All is the canonical list of topics in display order.
var All = []*algo.Topic{
	array.Topic,
	strs.Topic,
	linkedlist.Topic,
	stackqueue.Topic,
	search.Topic,
	tree.Topic,
	graph.Topic,
	recursion.Topic,
	dp.Topic,
}

// Find returns the Topic with the given name, or nil if not found.
func Find(name string) *algo.Topic {
	return algo.FindTopic(name, All)
}

// FindAlgorithm returns the algorithm with the given name and its topic.
func FindAlgorithm(name string) (*algo.Algorithm, *algo.Topic, bool) {
	return algo.FindAlgorithm(name, All)
}

// Algorithms returns every registered algorithm in catalogue order.
func Algorithms() []*algo.Algorithm {
	var out []*algo.Algorithm
	for _, t := range All {
		out = append(out, t.Algorithms...)
	}
	return out
}

// =============================================================================
// Practice problems
// =============================================================================

// Problem is a curated practice problem linked from a topic page.
type Problem struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Technique  string `json:"technique"`
	URL        string `json:"url"`
}

//go:embed problems.json
var problemsJSON []byte

var loadProblems = sync.OnceValues(func() (map[string][]Problem, error) {
	var m map[string][]Problem
	if err := json.Unmarshal(problemsJSON, &m); err != nil {
		return nil, err
	}
	return m, nil
})

// Problems returns the practice problems for a topic. Unknown topics have
// none.
func Problems(topic string) ([]Problem, error) {
	m, err := loadProblems()
	if err != nil {
		return nil, err
	}
	return append([]Problem(nil), m[topic]...), nil
}
