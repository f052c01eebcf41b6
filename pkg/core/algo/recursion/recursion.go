package recursion

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// MaxFactorial is the largest n whose factorial fits in an int64.
const MaxFactorial = 20

// Topic is the recursion topic.
var Topic = &algo.Topic{
	Name:  "recursion",
	Title: "Recursion",
	Description: "A recursive function solves a problem by calling itself on a smaller " +
		"instance until it reaches a base case. Each pending call waits on the call stack; " +
		"the answer is assembled as the calls return in reverse order.",
	Algorithms: []*algo.Algorithm{Factorial},
}

// Factorial computes n! with simulated recursive calls.
var Factorial = &algo.Algorithm{
	Name:     "factorial",
	Title:    "Recursive Factorial",
	Summary:  "fact(n) = n * fact(n-1) with fact(0) = fact(1) = 1.",
	Display:  algo.DisplayStack,
	Params:   []algo.Param{algo.ParamN},
	Defaults: step.Input{N: 5},
	Generate: genFactorial,
}

func call(n int) string { return fmt.Sprintf("fact(%d)", n) }

func genFactorial(in step.Input) []step.Step {
	n := in.N
	if n < 0 {
		return step.Single(step.PhaseInvalid, fmt.Sprintf("fact(%d) is undefined for negative n.", n), nil)
	}
	if n > MaxFactorial {
		return step.Single(step.PhaseInvalid,
			fmt.Sprintf("fact(%d) overflows a 64-bit integer; pick n <= %d.", n, MaxFactorial), nil)
	}

	b := step.NewBuilder()
	var frames []string
	var args []int
	for k := n; ; k-- {
		frames = append(frames, call(k))
		args = append(args, k)
		if k <= 1 {
			b.Add(step.Step{
				Phase:       step.PhaseDescend,
				Positions:   step.Positions{"top": len(frames) - 1},
				Highlights:  step.Mark(step.TagFound, len(frames)-1),
				Explanation: fmt.Sprintf("%s hits the base case and returns 1.", call(k)),
				Items:       args,
				Frames:      frames,
			})
			break
		}
		b.Add(step.Step{
			Phase:       step.PhaseDescend,
			Positions:   step.Positions{"top": len(frames) - 1},
			Highlights:  step.Mark(step.TagActive, len(frames)-1),
			Explanation: fmt.Sprintf("%s needs %s first, so push a new frame.", call(k), call(k-1)),
			Items:       args,
			Frames:      frames,
		})
	}

	acc := 1
	var returned []int
	returned = append(returned, acc)
	frames = frames[:len(frames)-1]
	args = args[:len(args)-1]
	for len(frames) > 0 {
		top := len(frames) - 1
		k := args[top]
		prev := acc
		acc *= k
		returned = append(returned, acc)
		frames = frames[:top]
		args = args[:top]
		b.Add(step.Step{
			Phase:       step.PhaseUnwind,
			Positions:   step.Positions{"top": top - 1},
			Highlights:  step.Mark(step.TagActive, top-1),
			Explanation: fmt.Sprintf("%s returns %d * %d = %d.", call(k), k, prev, acc),
			Items:       args,
			Frames:      frames,
			Output:      returned,
			Result:      step.Int(acc),
		})
	}

	return b.Finish(step.Step{
		Explanation: fmt.Sprintf("The call stack is empty: %d! = %d.", n, acc),
		Output:      returned,
		Result:      step.Int(acc),
	})
}
