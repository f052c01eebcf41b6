package dp

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// MaxN is the largest n whose table values fit in an int64.
const MaxN = 90

// Unfilled marks a table cell that has not been computed yet.
const Unfilled = -1

// Topic is the dynamic programming topic.
var Topic = &algo.Topic{
	Name:  "dynamic-programming",
	Title: "Dynamic Programming",
	Description: "Dynamic programming solves overlapping subproblems once and stores the " +
		"answers in a table. Bottom-up tabulation fills the table from the base cases so " +
		"every cell only reads cells that are already filled.",
	Algorithms: []*algo.Algorithm{Fibonacci, ClimbingStairs},
}

// Fibonacci tabulates F(0..n).
var Fibonacci = &algo.Algorithm{
	Name:     "fibonacci",
	Title:    "Fibonacci (Tabulation)",
	Summary:  "F(i) = F(i-1) + F(i-2) filled left to right from F(0)=0, F(1)=1.",
	Display:  algo.DisplayTable,
	Params:   []algo.Param{algo.ParamN},
	Defaults: step.Input{N: 10},
	Generate: func(in step.Input) []step.Step {
		return fill(in.N, "F", [2]int{0, 1}, "F(%d) = F(%d) + F(%d) = %d + %d = %d.")
	},
}

// ClimbingStairs counts the ways to climb n stairs taking 1 or 2 at a time.
var ClimbingStairs = &algo.Algorithm{
	Name:     "climbing-stairs",
	Title:    "Climbing Stairs",
	Summary:  "ways(i) = ways(i-1) + ways(i-2): the last move was either one stair or two.",
	Display:  algo.DisplayTable,
	Params:   []algo.Param{algo.ParamN},
	Defaults: step.Input{N: 6},
	Generate: func(in step.Input) []step.Step {
		return fill(in.N, "ways", [2]int{1, 1}, "ways(%d) = ways(%d) + ways(%d) = %d + %d = %d.")
	},
}

// fill tabulates a two-term recurrence t[i] = t[i-1] + t[i-2] with the
// given base values. format receives i, i-1, i-2 and the three values.
func fill(n int, name string, base [2]int, format string) []step.Step {
	if n < 0 {
		return step.Single(step.PhaseInvalid, fmt.Sprintf("%s(%d) is undefined for negative n.", name, n), nil)
	}
	if n > MaxN {
		return step.Single(step.PhaseInvalid,
			fmt.Sprintf("%s(%d) overflows a 64-bit integer; pick n <= %d.", name, n, MaxN), nil)
	}

	t := make([]int, n+1)
	for i := range t {
		t[i] = Unfilled
	}
	b := step.NewBuilder()

	t[0] = base[0]
	filled := []int{0}
	expl := fmt.Sprintf("Seed the base case %s(0) = %d.", name, base[0])
	if n >= 1 {
		t[1] = base[1]
		filled = append(filled, 1)
		expl = fmt.Sprintf("Seed the base cases %s(0) = %d and %s(1) = %d.", name, base[0], name, base[1])
	}
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Highlights:  step.Mark(step.TagFound, filled...),
		Explanation: expl,
		Items:       t,
	})

	for i := 2; i <= n; i++ {
		t[i] = t[i-1] + t[i-2]
		b.Add(step.Step{
			Phase:       step.PhaseFill,
			Positions:   step.Positions{"i": i},
			Highlights:  step.Mark(step.TagVisited, filled...).With(step.TagCompare, i-1, i-2).With(step.TagActive, i),
			Explanation: fmt.Sprintf(format, i, i-1, i-2, t[i-1], t[i-2], t[i]),
			Items:       t,
			Result:      step.Int(t[i]),
		})
		filled = append(filled, i)
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"i": n},
		Highlights:  step.Mark(step.TagVisited, filled...).With(step.TagDone, n),
		Explanation: fmt.Sprintf("Table complete: %s(%d) = %d.", name, n, t[n]),
		Items:       t,
		Result:      step.Int(t[n]),
	})
}
