package stackqueue

import (
	"fmt"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the stacks and queues topic.
var Topic = &algo.Topic{
	Name:  "stacks-queues",
	Title: "Stacks & Queues",
	Description: "A stack is last-in first-out; a queue is first-in first-out. Stacks track " +
		"unfinished work that must be resolved in reverse order, such as open brackets or " +
		"values still waiting for a larger neighbor.",
	Algorithms: []*algo.Algorithm{NextGreater, ValidParentheses},
}

// NextGreater computes the next greater element of every value with a
// monotonic stack.
var NextGreater = &algo.Algorithm{
	Name:     "next-greater",
	Title:    "Next Greater Element",
	Summary:  "Keep a decreasing stack of indices; a larger value resolves everything it beats.",
	Display:  algo.DisplayArray,
	Params:   []algo.Param{algo.ParamValues},
	Defaults: step.Input{Values: []int{4, 5, 2, 10, 8, 3}},
	Generate: genNextGreater,
}

// ValidParentheses checks bracket balance with a stack.
var ValidParentheses = &algo.Algorithm{
	Name:     "valid-parentheses",
	Title:    "Valid Parentheses",
	Summary:  "Push openers; every closer must match the opener on top of the stack.",
	Display:  algo.DisplayText,
	Params:   []algo.Param{algo.ParamText},
	Defaults: step.Input{Text: "{[()()]}"},
	Generate: genValidParentheses,
}

func indexFrames(a, stack []int) []string {
	frames := make([]string, len(stack))
	for i, idx := range stack {
		frames[i] = fmt.Sprintf("a[%d]=%d", idx, a[idx])
	}
	return frames
}

// genNextGreater reports the answers in Output, with -1 for values that
// have no greater element to their right.
func genNextGreater(in step.Input) []step.Step {
	a := in.Values
	if len(a) == 0 {
		return step.Single(step.PhaseDone, "The array is empty, so there is nothing to resolve.", nil)
	}

	b := step.NewBuilder()
	out := make([]int, len(a))
	for i := range out {
		out[i] = -1
	}
	var stack, resolved []int

	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Explanation: "Every answer starts as -1. Scan left to right with an empty stack of unresolved indices.",
		Items:       a,
		Output:      out,
	})

	for i, v := range a {
		for len(stack) > 0 && a[stack[len(stack)-1]] < v {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out[top] = v
			resolved = append(resolved, top)
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   step.Positions{"i": i, "top": top},
				Highlights:  step.Mark(step.TagDone, resolved...).With(step.TagFound, top).With(step.TagActive, i),
				Explanation: fmt.Sprintf("%d > %d: pop index %d, its next greater element is %d.", v, a[top], top, v),
				Items:       a,
				Frames:      indexFrames(a, stack),
				Output:      out,
			})
		}
		stack = append(stack, i)
		b.Add(step.Step{
			Phase:       step.PhaseTraverse,
			Positions:   step.Positions{"i": i},
			Highlights:  step.Mark(step.TagDone, resolved...).With(step.TagZone, stack...).With(step.TagActive, i),
			Explanation: fmt.Sprintf("Push index %d (%d); it waits for a larger value.", i, v),
			Items:       a,
			Frames:      indexFrames(a, stack),
			Output:      out,
		})
	}

	expl := "The scan is complete."
	if len(stack) > 0 {
		expl = fmt.Sprintf("The scan is complete; %d index(es) left on the stack keep -1.", len(stack))
	}
	return b.Finish(step.Step{
		Highlights:  step.Mark(step.TagDone, resolved...).With(step.TagVisited, stack...),
		Explanation: fmt.Sprintf("%s Answers: %v.", expl, out),
		Items:       a,
		Output:      out,
	})
}

var pairs = map[rune]rune{')': '(', ']': '[', '}': '{'}

func isOpen(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// genValidParentheses reports Result 1 for balanced text and 0 otherwise.
// Characters other than brackets are skipped.
func genValidParentheses(in step.Input) []step.Step {
	text := []rune(in.Text)
	items := make([]int, len(text))
	for i, r := range text {
		items[i] = int(r)
	}
	if len(text) == 0 {
		return step.NewBuilder().Finish(step.Step{
			Explanation: "The empty string has no unmatched brackets: it is valid.",
			Result:      step.Int(1),
		})
	}

	b := step.NewBuilder()
	var stack []int
	var matched []int
	frames := func() []string {
		out := make([]string, len(stack))
		for i, idx := range stack {
			out[i] = string(text[idx])
		}
		return out
	}

	for i, r := range text {
		pos := step.Positions{"i": i}
		switch {
		case isOpen(r):
			stack = append(stack, i)
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagZone, stack...).With(step.TagActive, i),
				Explanation: fmt.Sprintf("%q opens a group: push it.", r),
				Items:       items,
				Frames:      frames(),
			})
		case pairs[r] != 0:
			if len(stack) == 0 {
				return b.Finish(step.Step{
					Positions:   pos,
					Highlights:  step.Mark(step.TagDone, matched...).With(step.TagActive, i),
					Explanation: fmt.Sprintf("%q closes a group but the stack is empty: invalid.", r),
					Items:       items,
					Result:      step.Int(0),
				})
			}
			top := stack[len(stack)-1]
			if text[top] != pairs[r] {
				return b.Finish(step.Step{
					Positions:   step.Positions{"i": i, "top": top},
					Highlights:  step.Mark(step.TagDone, matched...).With(step.TagActive, i, top),
					Explanation: fmt.Sprintf("%q cannot close %q: invalid.", r, text[top]),
					Items:       items,
					Frames:      frames(),
					Result:      step.Int(0),
				})
			}
			stack = stack[:len(stack)-1]
			matched = append(matched, top, i)
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   step.Positions{"i": i, "top": top},
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagZone, stack...).With(step.TagFound, top, i),
				Explanation: fmt.Sprintf("%q matches %q on top of the stack: pop it.", r, text[top]),
				Items:       items,
				Frames:      frames(),
			})
		default:
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagVisited, i),
				Explanation: fmt.Sprintf("%q is not a bracket: skip it.", r),
				Items:       items,
				Frames:      frames(),
			})
		}
	}

	if len(stack) > 0 {
		return b.Finish(step.Step{
			Highlights:  step.Mark(step.TagDone, matched...).With(step.TagActive, stack...),
			Explanation: fmt.Sprintf("The text ended with %d unclosed bracket(s): invalid.", len(stack)),
			Items:       items,
			Frames:      frames(),
			Result:      step.Int(0),
		})
	}
	return b.Finish(step.Step{
		Highlights:  step.Mark(step.TagFound, matched...),
		Explanation: "Every bracket was matched and the stack is empty: valid.",
		Items:       items,
		Result:      step.Int(1),
	})
}
