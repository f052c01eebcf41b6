package linkedlist

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// genDetectCycle runs Floyd's tortoise-and-hare. When the pointers meet the
// second phase locates the cycle entry; the reported result is the meeting
// node.
func genDetectCycle(in step.Input) []step.Step {
	l := build(in.Values)
	n, pos := l.len(), in.CyclePos
	if n == 0 {
		return emptyList("it cannot contain a cycle")
	}

	b := step.NewBuilder()
	if pos >= n {
		return b.Finish(l.done(step.PhaseInvalid,
			fmt.Sprintf("Cycle position %d is out of range for %d nodes: use -1 for no cycle or 0..%d.", pos, n, n-1),
			nil, nil))
	}

	tail := n - 1
	setup := "The tail points to null, so there is no cycle to find."
	if pos >= 0 {
		l.links[tail] = pos
		setup = fmt.Sprintf("The tail (%s) links back to index %d (%s), forming a cycle.", l.label(tail), pos, l.label(pos))
	}
	slow, fast := l.head, l.head
	b.Add(l.frame(step.PhaseSetup,
		setup+" Start slow and fast at the head.",
		step.Positions{"slow": slow, "fast": fast},
		step.Mark(step.TagCurr, slow)))

	limit := step.SafetyCap(n)
	for moves := 0; ; moves++ {
		if fast == step.Absent || l.links[fast] == step.Absent {
			return b.Finish(step.Step{
				Phase:       step.PhaseDone,
				Positions:   step.Positions{"head": l.head, "slow": slow, "fast": fast},
				Explanation: "fast reached the end of the list: there is no cycle.",
				Items:       l.items,
				Links:       l.links,
			})
		}
		if moves >= limit {
			return b.Finish(l.frame(step.PhaseInvalid,
				fmt.Sprintf("Stopped after %d moves without the pointers meeting.", moves),
				step.Positions{"slow": slow, "fast": fast}, nil))
		}

		slow = l.links[slow]
		fast = l.links[l.links[fast]]
		if slow == fast {
			break
		}
		b.Add(l.frame(step.PhaseDetect,
			fmt.Sprintf("slow moves to %s, fast jumps to %s.", l.label(slow), l.label(fast)),
			step.Positions{"slow": slow, "fast": fast},
			step.Mark(step.TagCurr, slow).With(step.TagNext, fast)))
	}

	meet := slow
	b.Add(l.frame(step.PhaseDetect,
		fmt.Sprintf("slow and fast meet at %s (index %d): the list has a cycle.", l.label(meet), meet),
		step.Positions{"slow": slow, "fast": fast, "meet": meet},
		step.Mark(step.TagFound, meet)))

	p, q := l.head, meet
	b.Add(l.frame(step.PhaseDetect,
		"Move one pointer back to the head; stepping both one node at a time, they meet at the cycle entry.",
		step.Positions{"p": p, "q": q, "meet": meet},
		step.Mark(step.TagFound, meet).With(step.TagCurr, p).With(step.TagNext, q)))

	for moves := 0; p != q && moves < n; moves++ {
		p, q = l.links[p], l.links[q]
		b.Add(l.frame(step.PhaseDetect,
			fmt.Sprintf("p moves to %s, q moves to %s.", l.label(p), l.label(q)),
			step.Positions{"p": p, "q": q, "meet": meet},
			step.Mark(step.TagFound, meet).With(step.TagCurr, p).With(step.TagNext, q)))
	}

	entry := p
	return b.Finish(step.Step{
		Phase:      step.PhaseDone,
		Positions:  step.Positions{"head": l.head, "meet": meet, "entry": entry},
		Highlights: step.Mark(step.TagZone, cycleNodes(l, entry)...).With(step.TagFound, meet),
		Explanation: fmt.Sprintf("Cycle found: the pointers met at index %d (%s); the cycle starts at index %d (%s).",
			meet, l.label(meet), entry, l.label(entry)),
		Items:  l.items,
		Links:  l.links,
		Result: step.Int(meet),
	})
}

// cycleNodes returns the ids on the cycle that starts at entry.
func cycleNodes(l *list, entry int) []int {
	ids := []int{entry}
	for cur := l.links[entry]; cur != entry && cur != step.Absent && len(ids) < l.len(); cur = l.links[cur] {
		ids = append(ids, cur)
	}
	return ids
}
