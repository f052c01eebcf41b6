package linkedlist

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// flip reverses the arrow of curr and returns the tags to show afterwards.
// It is the shared inner move of every iterative reversal.
func (l *list) flip(b *step.Builder, prev, curr int, reversed []int) []int {
	next := l.links[curr]
	pos := step.Positions{"prev": prev, "curr": curr, "next": next}

	b.Add(l.frame(step.PhaseReverse,
		fmt.Sprintf("Save next = %s before touching %s's arrow.", l.label(next), l.label(curr)),
		pos,
		step.Mark(step.TagReversed, reversed...).
			With(step.TagPrev, prev).
			With(step.TagCurr, curr).
			With(step.TagNext, next)))

	l.links[curr] = prev
	reversed = with(reversed, curr)

	b.Add(l.frame(step.PhaseReverse,
		fmt.Sprintf("Point %s back to %s.", l.label(curr), l.label(prev)),
		pos,
		step.Mark(step.TagReversed, reversed...).With(step.TagNext, next)))
	return reversed
}

func genReverseAll(in step.Input) []step.Step {
	l := build(in.Values)
	switch l.len() {
	case 0:
		return emptyList("there is nothing to reverse")
	case 1:
		return step.NewBuilder().Finish(l.done(step.PhaseDone,
			fmt.Sprintf("A single node (%s) is already its own reverse.", l.label(0)),
			nil, step.Mark(step.TagDone, 0)))
	}

	b := step.NewBuilder()
	prev, curr := step.Absent, l.head
	b.Add(l.frame(step.PhaseSetup,
		fmt.Sprintf("Start with prev = null and curr at the head (%s).", l.label(curr)),
		step.Positions{"prev": prev, "curr": curr},
		step.Mark(step.TagCurr, curr)))

	var reversed []int
	for curr != step.Absent {
		next := l.links[curr]
		reversed = l.flip(b, prev, curr, reversed)
		prev, curr = curr, next
		b.Add(l.frame(step.PhaseReverse,
			fmt.Sprintf("Advance: prev = %s, curr = %s.", l.label(prev), l.label(curr)),
			step.Positions{"prev": prev, "curr": curr},
			step.Mark(step.TagReversed, reversed...).With(step.TagPrev, prev).With(step.TagCurr, curr)))
	}

	l.head = prev
	return b.Finish(l.done(step.PhaseDone,
		fmt.Sprintf("curr is null, so prev (%s) is the new head: %s.", l.label(prev), arrows(l.order())),
		step.Positions{"prev": prev},
		step.Mark(step.TagDone, l.all()...)))
}

func genReverseBetween(in step.Input) []step.Step {
	l := build(in.Values)
	n, left, right := l.len(), in.Left, in.Right
	if n == 0 {
		return emptyList("there is no sublist to reverse")
	}

	b := step.NewBuilder()
	if left < 1 || right > n || left > right {
		return b.Finish(l.done(step.PhaseInvalid,
			fmt.Sprintf("Bounds [%d, %d] are invalid for %d nodes: need 1 <= left <= right <= %d.", left, right, n, n),
			nil, nil))
	}
	if left == right {
		return b.Finish(l.done(step.PhaseDone,
			fmt.Sprintf("left = right = %d: a one-node sublist is already reversed.", left),
			nil, step.Mark(step.TagDone, left-1)))
	}

	sub := make([]int, 0, right-left+1)
	for i := left - 1; i < right; i++ {
		sub = append(sub, i)
	}
	b.Add(l.frame(step.PhaseSetup,
		fmt.Sprintf("Reverse positions %d through %d, leaving the rest in place.", left, right),
		nil, step.Mark(step.TagZone, sub...)))

	before, curr := step.Absent, l.head
	for i := 1; i < left; i++ {
		before, curr = curr, l.links[curr]
		b.Add(l.frame(step.PhaseTraverse,
			fmt.Sprintf("Walk forward: before = %s, the node just ahead of the sublist.", l.label(before)),
			step.Positions{"before": before, "curr": curr},
			step.Mark(step.TagZone, sub...).With(step.TagActive, before)))
	}

	tail := curr
	prev := step.Absent
	var reversed []int
	for i := 0; i < right-left+1; i++ {
		next := l.links[curr]
		reversed = l.flip(b, prev, curr, reversed)
		prev, curr = curr, next
	}

	l.links[tail] = curr
	if before == step.Absent {
		l.head = prev
	} else {
		l.links[before] = prev
	}
	b.Add(l.frame(step.PhaseReverse,
		fmt.Sprintf("Reconnect: %s now leads into %s, and the old sublist head %s points to %s.",
			l.label(before), l.label(prev), l.label(tail), l.label(curr)),
		step.Positions{"before": before, "prev": prev, "curr": curr},
		step.Mark(step.TagReversed, reversed...).With(step.TagActive, before)))

	return b.Finish(l.done(step.PhaseDone,
		fmt.Sprintf("Positions %d..%d reversed: %s.", left, right, arrows(l.order())),
		nil, step.Mark(step.TagReversed, reversed...)))
}

func genReverseKGroup(in step.Input) []step.Step {
	l := build(in.Values)
	n, k := l.len(), in.K
	if n == 0 {
		return emptyList("there are no groups to reverse")
	}

	b := step.NewBuilder()
	switch {
	case k <= 0:
		return b.Finish(l.done(step.PhaseInvalid,
			fmt.Sprintf("k = %d is invalid: the group size must be at least 1.", k), nil, nil))
	case k == 1:
		return b.Finish(l.done(step.PhaseDone,
			"k = 1: every group holds a single node, so the list is unchanged.", nil, nil))
	case k > n:
		return b.Finish(l.done(step.PhaseDone,
			fmt.Sprintf("The list has %d nodes, fewer than k = %d, so it is unchanged.", n, k), nil, nil))
	}

	groupPrev, groupStart := step.Absent, l.head
	var reversed []int
	for group := 1; ; group++ {
		if groupStart == step.Absent {
			return b.Finish(l.done(step.PhaseDone,
				fmt.Sprintf("Every group of %d has been reversed: %s.", k, arrows(l.order())),
				nil, step.Mark(step.TagReversed, reversed...)))
		}

		var members []int
		after := groupStart
		for len(members) < k && after != step.Absent {
			members = append(members, after)
			after = l.links[after]
		}
		if len(members) < k {
			return b.Finish(l.done(step.PhaseDone,
				fmt.Sprintf("Only %d node(s) remain, fewer than k = %d, so they stay as they are: %s.",
					len(members), k, arrows(l.order())),
				nil, step.Mark(step.TagReversed, reversed...).With(step.TagZone, members...)))
		}

		b.Add(l.frame(step.PhaseSetup,
			fmt.Sprintf("Group %d starts at %s and has %d nodes: reverse it.", group, l.label(groupStart), k),
			step.Positions{"groupPrev": groupPrev, "curr": groupStart},
			step.Mark(step.TagReversed, reversed...).With(step.TagZone, members...)))

		prev, curr := after, groupStart
		for range k {
			next := l.links[curr]
			reversed = l.flip(b, prev, curr, reversed)
			prev, curr = curr, next
		}

		if groupPrev == step.Absent {
			l.head = prev
		} else {
			l.links[groupPrev] = prev
		}
		b.Add(l.frame(step.PhaseReverse,
			fmt.Sprintf("Attach the group: %s is now its first node and %s its last.", l.label(prev), l.label(groupStart)),
			step.Positions{"groupPrev": groupPrev, "curr": curr},
			step.Mark(step.TagReversed, reversed...)))

		groupPrev, groupStart = groupStart, curr
	}
}

func genReverseRecursive(in step.Input) []step.Step {
	l := build(in.Values)
	switch l.len() {
	case 0:
		return emptyList("reverse(null) returns null immediately")
	case 1:
		return step.NewBuilder().Finish(l.done(step.PhaseDone,
			fmt.Sprintf("reverse(%s) hits the base case at once: a single node is its own reverse.", l.label(0)),
			nil, step.Mark(step.TagDone, 0)))
	}

	b := step.NewBuilder()
	var frames []string
	var path []int

	for cur := l.head; cur != step.Absent; cur = l.links[cur] {
		path = append(path, cur)
		frames = append(frames, fmt.Sprintf("reverse(%s)", l.label(cur)))
		expl := fmt.Sprintf("Call reverse(%s): recurse on the rest of the list first.", l.label(cur))
		if l.links[cur] == step.Absent {
			expl = fmt.Sprintf("Base case: %s has no next node, so it becomes the new head.", l.label(cur))
		}
		s := l.frame(step.PhaseDescend, expl,
			step.Positions{"curr": cur},
			step.Mark(step.TagVisited, path[:len(path)-1]...).With(step.TagCurr, cur))
		s.Frames = frames
		b.Add(s)
	}

	newHead := path[len(path)-1]
	l.head = newHead
	reversed := []int{newHead}

	for i := len(path) - 2; i >= 0; i-- {
		node, next := path[i], path[i+1]
		frames = frames[:len(frames)-1]
		l.links[next] = node
		l.links[node] = step.Absent
		reversed = with(reversed, node)

		s := l.frame(step.PhaseUnwind,
			fmt.Sprintf("Back in reverse(%s): set %s.next = %s and %s.next = null, then return head %s.",
				l.label(node), l.label(next), l.label(node), l.label(node), l.label(newHead)),
			step.Positions{"curr": node, "next": next, "newHead": newHead},
			step.Mark(step.TagReversed, reversed...).With(step.TagCurr, node))
		s.Frames = frames
		b.Add(s)
	}

	return b.Finish(l.done(step.PhaseDone,
		fmt.Sprintf("The outermost call returns %s: %s.", l.label(newHead), arrows(l.order())),
		step.Positions{"newHead": newHead},
		step.Mark(step.TagDone, l.all()...)))
}
