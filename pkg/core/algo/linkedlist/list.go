package linkedlist

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// list is the working state of one generator run.
type list struct {
	items []int
	links []int
	head  int
}

// build links values into a list. Node identities come from a counter owned
// by this call, so repeated builds always produce ids 0..n-1.
func build(values []int) *list {
	var ids step.IDs
	l := &list{
		items: make([]int, len(values)),
		links: make([]int, len(values)),
		head:  step.Absent,
	}
	prev := step.Absent
	for _, v := range values {
		id := ids.Next()
		l.items[id] = v
		l.links[id] = step.Absent
		if prev == step.Absent {
			l.head = id
		} else {
			l.links[prev] = id
		}
		prev = id
	}
	return l
}

func (l *list) len() int { return len(l.items) }

// label renders a node reference for explanations.
func (l *list) label(id int) string {
	if id == step.Absent {
		return "null"
	}
	return strconv.Itoa(l.items[id])
}

// order returns node values from head, visiting at most len() nodes.
func (l *list) order() []int {
	out := make([]int, 0, l.len())
	for cur, n := l.head, 0; cur != step.Absent && n < l.len(); n++ {
		out = append(out, l.items[cur])
		cur = l.links[cur]
	}
	return out
}

// frame snapshots the list into a step. The "head" position is filled in
// unless the caller set it explicitly.
func (l *list) frame(phase step.Phase, expl string, pos step.Positions, hl step.Highlights) step.Step {
	if pos == nil {
		pos = step.Positions{}
	}
	if _, ok := pos["head"]; !ok {
		pos["head"] = l.head
	}
	return step.Step{
		Phase:       phase,
		Positions:   pos,
		Highlights:  hl,
		Explanation: expl,
		Items:       l.items,
		Links:       l.links,
	}
}

// done builds the terminal frame, reporting the final node order as Output.
func (l *list) done(phase step.Phase, expl string, pos step.Positions, hl step.Highlights) step.Step {
	s := l.frame(phase, expl, pos, hl)
	s.Output = l.order()
	return s
}

// all returns every node id.
func (l *list) all() []int {
	ids := make([]int, l.len())
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func arrows(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

func emptyList(what string) []step.Step {
	return step.Single(step.PhaseDone, fmt.Sprintf("The list is empty, so %s.", what), nil)
}

// with returns a copy of ids plus extra, for accumulating tag sets.
func with(ids []int, extra ...int) []int {
	return append(slices.Clone(ids), extra...)
}
