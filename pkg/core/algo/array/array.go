package array

import (
	"fmt"
	"slices"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the arrays topic.
var Topic = &algo.Topic{
	Name:  "arrays",
	Title: "Arrays",
	Description: "Arrays give O(1) access by index. Window and two-pointer techniques exploit " +
		"that to replace nested loops with a single pass: reuse the work of the previous " +
		"position instead of recomputing it.",
	Algorithms: []*algo.Algorithm{SlidingWindow, TwoSumSorted},
}

// SlidingWindow finds the maximum sum of k consecutive values.
var SlidingWindow = &algo.Algorithm{
	Name:     "sliding-window",
	Title:    "Maximum Sum Window",
	Summary:  "Slide a window of size k, adding the entering value and subtracting the leaving one.",
	Display:  algo.DisplayArray,
	Params:   []algo.Param{algo.ParamValues, algo.ParamK},
	Defaults: step.Input{Values: []int{2, 1, 5, 1, 3, 2, 9, 4}, K: 3},
	Generate: genSlidingWindow,
}

// TwoSumSorted finds two values summing to target in sorted input.
var TwoSumSorted = &algo.Algorithm{
	Name:     "two-sum-sorted",
	Title:    "Two Sum (Sorted)",
	Summary:  "Move two pointers inward: a small sum advances lo, a large sum retreats hi.",
	Display:  algo.DisplayArray,
	Params:   []algo.Param{algo.ParamValues, algo.ParamTarget},
	Defaults: step.Input{Values: []int{1, 3, 4, 6, 8, 11, 15}, Target: 14},
	Generate: genTwoSumSorted,
}

func window(lo, hi int) step.Highlights {
	h := step.Highlights{}
	for i := lo; i <= hi; i++ {
		h[i] = step.TagZone
	}
	return h
}

func genSlidingWindow(in step.Input) []step.Step {
	a, k := in.Values, in.K
	switch {
	case len(a) == 0:
		return step.Single(step.PhaseDone, "The array is empty, so there is no window to sum.", nil)
	case k <= 0:
		return step.Single(step.PhaseInvalid, fmt.Sprintf("k = %d is invalid: the window needs at least one value.", k), a)
	case k > len(a):
		return step.Single(step.PhaseInvalid, fmt.Sprintf("k = %d is larger than the array (%d values), so no window fits.", k, len(a)), a)
	}

	b := step.NewBuilder()
	sum := 0
	for i := range k {
		sum += a[i]
	}
	best, bestLo := sum, 0
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": 0, "hi": k - 1},
		Highlights:  window(0, k-1),
		Explanation: fmt.Sprintf("Sum the first window a[0..%d] = %d. It is the best so far.", k-1, sum),
		Items:       a,
		Result:      step.Int(best),
	})

	for hi := k; hi < len(a); hi++ {
		lo := hi - k + 1
		sum += a[hi] - a[lo-1]
		expl := fmt.Sprintf("Slide right: add a[%d] = %d, drop a[%d] = %d. Window sum = %d.", hi, a[hi], lo-1, a[lo-1], sum)
		if sum > best {
			best, bestLo = sum, lo
			expl += " New best."
		}
		b.Add(step.Step{
			Phase:       step.PhaseTraverse,
			Positions:   step.Positions{"lo": lo, "hi": hi},
			Highlights:  window(lo, hi).With(step.TagActive, hi).With(step.TagVisited, lo-1),
			Explanation: expl,
			Items:       a,
			Result:      step.Int(best),
		})
	}

	h := step.Highlights{}
	for i := bestLo; i < bestLo+k; i++ {
		h[i] = step.TagFound
	}
	return b.Finish(step.Step{
		Positions:   step.Positions{"lo": bestLo, "hi": bestLo + k - 1},
		Highlights:  h,
		Explanation: fmt.Sprintf("The best window is a[%d..%d] with sum %d.", bestLo, bestLo+k-1, best),
		Items:       a,
		Result:      step.Int(best),
	})
}

func genTwoSumSorted(in step.Input) []step.Step {
	t := in.Target
	if len(in.Values) < 2 {
		return step.Single(step.PhaseDone,
			fmt.Sprintf("Fewer than two values, so no pair can sum to %d.", t), in.Values)
	}

	b := step.NewBuilder()
	a := slices.Clone(in.Values)
	if !slices.IsSorted(a) {
		slices.Sort(a)
		b.Add(step.Step{
			Phase:       step.PhaseSetup,
			Explanation: fmt.Sprintf("The two-pointer scan needs sorted input, so the values were sorted: %v.", a),
			Items:       a,
		})
	}

	lo, hi := 0, len(a)-1
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  step.Mark(step.TagCurr, lo, hi),
		Explanation: fmt.Sprintf("Look for two values summing to %d. Start lo at the smallest and hi at the largest.", t),
		Items:       a,
	})

	var discarded []int
	for lo < hi {
		sum := a[lo] + a[hi]
		pos := step.Positions{"lo": lo, "hi": hi}
		switch {
		case sum == t:
			return b.Finish(step.Step{
				Positions:   pos,
				Highlights:  step.Mark(step.TagVisited, discarded...).With(step.TagFound, lo, hi),
				Explanation: fmt.Sprintf("a[%d] + a[%d] = %d + %d = %d: pair found.", lo, hi, a[lo], a[hi], t),
				Items:       a,
				Output:      []int{lo, hi},
				Result:      step.Int(sum),
			})
		case sum < t:
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  step.Mark(step.TagVisited, discarded...).With(step.TagCompare, lo, hi),
				Explanation: fmt.Sprintf("%d + %d = %d < %d: the sum is too small, so advance lo.", a[lo], a[hi], sum, t),
				Items:       a,
			})
			discarded = append(discarded, lo)
			lo++
		default:
			b.Add(step.Step{
				Phase:       step.PhaseSearch,
				Positions:   pos,
				Highlights:  step.Mark(step.TagVisited, discarded...).With(step.TagCompare, lo, hi),
				Explanation: fmt.Sprintf("%d + %d = %d > %d: the sum is too large, so retreat hi.", a[lo], a[hi], sum, t),
				Items:       a,
			})
			discarded = append(discarded, hi)
			hi--
		}
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  step.Mark(step.TagVisited, discarded...),
		Explanation: fmt.Sprintf("lo met hi: no two values sum to %d.", t),
		Items:       a,
	})
}
