package algo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Display tells renderers how to lay out a step's Items.
type Display string

// Display kinds.
const (
	DisplayArray Display = "array" // values in a row, indexed
	DisplayList  Display = "list"  // nodes joined by Links arrows
	DisplayTree  Display = "tree"  // heap-ordered binary tree
	DisplayGraph Display = "graph" // nodes plus the input edge list
	DisplayTable Display = "table" // DP table cells
	DisplayText  Display = "text"  // Items are runes
	DisplayStack Display = "stack" // call stack frames
)

// Param names an Input field an algorithm reads. Used by the CLI and the
// server to document which flags matter.
type Param string

// Input parameters.
const (
	ParamValues   Param = "values"
	ParamTarget   Param = "target"
	ParamLeft     Param = "left"
	ParamRight    Param = "right"
	ParamK        Param = "k"
	ParamCyclePos Param = "cycle-pos"
	ParamStart    Param = "start"
	ParamN        Param = "n"
	ParamText     Param = "text"
	ParamEdges    Param = "edges"
)

// GenerateFunc maps an algorithm input to its ordered steps. It must be
// pure and total.
type GenerateFunc func(in step.Input) []step.Step

// Algorithm is one registered walkthrough.
type Algorithm struct {
	// Name is the unique identifier used on the command line (e.g., "bfs").
	Name string

	// Title is the display name (e.g., "Breadth-First Search").
	Title string

	// Summary is a one-sentence description of the technique.
	Summary string

	// Display selects the layout renderers use for Items.
	Display Display

	// Params lists the input fields the generator reads.
	Params []Param

	// Defaults is the input the walkthrough is demonstrated on.
	Defaults step.Input

	// Generate produces the steps.
	Generate GenerateFunc
}

// Run normalizes in and materializes the step sequence.
func (a *Algorithm) Run(in step.Input) *step.Sequence {
	in = in.Normalize()
	return step.NewSequence(a.Name, in, a.Generate(in))
}

// Uses reports whether the algorithm reads parameter p.
func (a *Algorithm) Uses(p Param) bool {
	return slices.Contains(a.Params, p)
}

// Topic groups algorithms that illustrate one concept.
type Topic struct {
	// Name is the identifier (e.g., "linked-list").
	Name string

	// Title is the display name (e.g., "Linked Lists").
	Title string

	// Description explains the technique in a few sentences.
	Description string

	// Algorithms are the walkthroughs registered for the topic.
	Algorithms []*Algorithm
}

// Algorithm returns the topic's algorithm with the given name.
func (t *Topic) Algorithm(name string) (*Algorithm, bool) {
	for _, a := range t.Algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// FindTopic returns the topic with the given name (case-insensitive), or nil.
func FindTopic(name string, all []*Topic) *Topic {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range all {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// FindAlgorithm searches all topics for an algorithm by name and returns it
// together with its topic.
func FindAlgorithm(name string, all []*Topic) (*Algorithm, *Topic, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range all {
		if a, ok := t.Algorithm(name); ok {
			return a, t, true
		}
	}
	return nil, nil, false
}

// Names returns every algorithm name across topics, sorted.
func Names(all []*Topic) []string {
	var names []string
	for _, t := range all {
		for _, a := range t.Algorithms {
			names = append(names, a.Name)
		}
	}
	slices.Sort(names)
	return names
}

// Describe formats an input restricted to the parameters a reads, e.g.
// "values=[1 2 3] target=2".
func Describe(a *Algorithm, in step.Input) string {
	var parts []string
	for _, p := range a.Params {
		switch p {
		case ParamValues:
			parts = append(parts, fmt.Sprintf("values=%v", in.Values))
		case ParamTarget:
			parts = append(parts, fmt.Sprintf("target=%d", in.Target))
		case ParamLeft:
			parts = append(parts, fmt.Sprintf("left=%d", in.Left))
		case ParamRight:
			parts = append(parts, fmt.Sprintf("right=%d", in.Right))
		case ParamK:
			parts = append(parts, fmt.Sprintf("k=%d", in.K))
		case ParamCyclePos:
			parts = append(parts, fmt.Sprintf("cycle-pos=%d", in.CyclePos))
		case ParamStart:
			parts = append(parts, fmt.Sprintf("start=%d", in.Start))
		case ParamN:
			parts = append(parts, fmt.Sprintf("n=%d", in.N))
		case ParamText:
			parts = append(parts, fmt.Sprintf("text=%q", in.Text))
		case ParamEdges:
			parts = append(parts, fmt.Sprintf("edges=%v", in.Edges))
		}
	}
	return strings.Join(parts, " ")
}
