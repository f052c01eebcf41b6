package linkedlist

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func genFindMiddle(in step.Input) []step.Step {
	l := build(in.Values)
	if l.len() == 0 {
		return emptyList("it has no middle node")
	}

	b := step.NewBuilder()
	slow, fast := l.head, l.head
	var visited []int
	b.Add(l.frame(step.PhaseSetup,
		fmt.Sprintf("Place slow and fast at the head (%s).", l.label(slow)),
		step.Positions{"slow": slow, "fast": fast},
		step.Mark(step.TagCurr, slow)))

	for fast != step.Absent && l.links[fast] != step.Absent {
		visited = with(visited, slow)
		slow = l.links[slow]
		fast = l.links[l.links[fast]]
		b.Add(l.frame(step.PhaseTraverse,
			fmt.Sprintf("slow moves one node to %s; fast moves two to %s.", l.label(slow), l.label(fast)),
			step.Positions{"slow": slow, "fast": fast},
			step.Mark(step.TagVisited, visited...).With(step.TagCurr, slow).With(step.TagNext, fast)))
	}

	last := l.done(step.PhaseDone,
		fmt.Sprintf("fast cannot take two more steps, so slow (%s, index %d) is the middle.", l.label(slow), slow),
		step.Positions{"slow": slow, "fast": fast},
		step.Mark(step.TagFound, slow))
	last.Result = step.Int(slow)
	return b.Finish(last)
}
