package search

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the binary search topic.
var Topic = &algo.Topic{
	Name:  "binary-search",
	Title: "Binary Search",
	Description: "Binary search halves a sorted search space on every comparison. " +
		"Keep an inclusive window [lo, hi], probe the middle, and discard the half " +
		"that cannot contain the answer. It runs in O(log n) time.",
	Algorithms: []*algo.Algorithm{BinarySearch, LowerBound},
}

var sample = []int{2, 5, 8, 12, 16, 23, 38, 42, 56, 72, 85, 91}

// BinarySearch is the classic iterative search for an exact match.
// Unsorted values are sorted first, with a setup step saying so, and every
// step's Items hold the sorted copy. Result is an index into those Items,
// not into the caller's original order.
var BinarySearch = &algo.Algorithm{
	Name:     "binary-search",
	Title:    "Binary Search",
	Summary:  "Find a target in a sorted array by repeatedly halving the window.",
	Display:  algo.DisplayArray,
	Params:   []algo.Param{algo.ParamValues, algo.ParamTarget},
	Defaults: step.Input{Values: sample, Target: 42},
	Generate: genBinarySearch,
}

// LowerBound finds the first index whose value is not less than target.
// Like BinarySearch it works on a sorted copy; Result indexes Items.
var LowerBound = &algo.Algorithm{
	Name:     "lower-bound",
	Title:    "Lower Bound",
	Summary:  "Find the first position where target could be inserted keeping order.",
	Display:  algo.DisplayArray,
	Params:   []algo.Param{algo.ParamValues, algo.ParamTarget},
	Defaults: step.Input{Values: sample, Target: 20},
	Generate: genLowerBound,
}

// zone tags every index in [lo, hi] as part of the live search window.
func zone(lo, hi int) step.Highlights {
	h := step.Highlights{}
	for i := lo; i <= hi; i++ {
		h[i] = step.TagZone
	}
	return h
}

// sorted returns a sorted copy of values and records a setup step when the
// input had to be reordered.
func sorted(b *step.Builder, values []int) []int {
	a := slices.Clone(values)
	if slices.IsSorted(a) {
		return a
	}
	slices.Sort(a)
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Explanation: fmt.Sprintf("Binary search needs sorted input, so the values were sorted first: %v. Indices below refer to this order.", a),
		Items:       a,
	})
	return a
}

func genBinarySearch(in step.Input) []step.Step {
	t := in.Target
	if len(in.Values) == 0 {
		return step.Single(step.PhaseDone, fmt.Sprintf("The array is empty, so %d cannot be present.", t), nil)
	}

	b := step.NewBuilder()
	a := sorted(b, in.Values)
	lo, hi := 0, len(a)-1

	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  zone(lo, hi),
		Explanation: fmt.Sprintf("Search for %d among %d sorted values: lo = %d, hi = %d.", t, len(a), lo, hi),
		Items:       a,
	})

	for lo <= hi {
		mid := lo + (hi-lo)/2
		pos := step.Positions{"lo": lo, "hi": hi, "mid": mid}

		b.Add(step.Step{
			Phase:       step.PhaseSearch,
			Positions:   pos,
			Highlights:  zone(lo, hi).With(step.TagActive, mid),
			Explanation: fmt.Sprintf("mid = %d + (%d - %d) / 2 = %d, and a[%d] = %d.", lo, hi, lo, mid, mid, a[mid]),
			Items:       a,
		})

		switch {
		case a[mid] == t:
			return b.Finish(step.Step{
				Positions:   pos,
				Highlights:  step.Mark(step.TagFound, mid),
				Explanation: fmt.Sprintf("a[%d] = %d matches the target: found at index %d.", mid, t, mid),
				Items:       a,
				Result:      step.Int(mid),
			})
		case a[mid] < t:
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  zone(mid+1, hi).With(step.TagVisited, rangeIdx(lo, mid)...),
				Explanation: fmt.Sprintf("%d < %d, so the target can only be right of mid: lo = %d.", a[mid], t, mid+1),
				Items:       a,
			})
			lo = mid + 1
		default:
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  zone(lo, mid-1).With(step.TagVisited, rangeIdx(mid, hi)...),
				Explanation: fmt.Sprintf("%d > %d, so the target can only be left of mid: hi = %d.", a[mid], t, mid-1),
				Items:       a,
			})
			hi = mid - 1
		}
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Explanation: fmt.Sprintf("lo = %d passed hi = %d: %d is not in the array.", lo, hi, t),
		Items:       a,
	})
}

func genLowerBound(in step.Input) []step.Step {
	t := in.Target
	if len(in.Values) == 0 {
		return step.Single(step.PhaseDone, fmt.Sprintf("The array is empty, so %d would be inserted at index 0.", t), nil)
	}

	b := step.NewBuilder()
	a := sorted(b, in.Values)
	lo, hi := 0, len(a)

	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  zone(lo, hi-1),
		Explanation: fmt.Sprintf("Find the first index with a value >= %d. The answer lies in [%d, %d].", t, lo, hi),
		Items:       a,
	})

	for lo < hi {
		mid := lo + (hi-lo)/2
		pos := step.Positions{"lo": lo, "hi": hi, "mid": mid}
		if a[mid] < t {
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  zone(mid+1, hi-1).With(step.TagActive, mid),
				Explanation: fmt.Sprintf("a[%d] = %d < %d, so the answer is right of mid: lo = %d.", mid, a[mid], t, mid+1),
				Items:       a,
			})
			lo = mid + 1
		} else {
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  zone(lo, mid-1).With(step.TagActive, mid),
				Explanation: fmt.Sprintf("a[%d] = %d >= %d, so mid is a candidate: hi = %d.", mid, a[mid], t, mid),
				Items:       a,
			})
			hi = mid
		}
	}

	expl := fmt.Sprintf("lo = hi = %d: every value before it is < %d.", lo, t)
	hl := step.Mark(step.TagFound, lo)
	if lo == len(a) {
		expl = fmt.Sprintf("lo = %d is past the end: every value is < %d, so it would be appended.", lo, t)
		hl = nil
	}
	return b.Finish(step.Step{
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  hl,
		Explanation: expl,
		Items:       a,
		Result:      step.Int(lo),
	})
}

// rangeIdx returns the indices lo..hi inclusive.
func rangeIdx(lo, hi int) []int {
	var idx []int
	for i := lo; i <= hi; i++ {
		idx = append(idx, i)
	}
	return idx
}
