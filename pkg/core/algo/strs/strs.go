package strs

import (
	"fmt"
	"unicode"

	"github.com/matzehuels/dsaviz/pkg/core/algo"
	"github.com/matzehuels/dsaviz/pkg/core/step"
)

// Topic is the strings topic.
var Topic = &algo.Topic{
	Name:  "strings",
	Title: "Strings",
	Description: "Strings are arrays of characters, so array techniques carry over. " +
		"Two pointers moving toward each other check symmetry or swap characters in place " +
		"without extra memory.",
	Algorithms: []*algo.Algorithm{Palindrome, ReverseString},
}

// Palindrome checks whether text reads the same both ways, ignoring case
// and anything that is not a letter or digit.
var Palindrome = &algo.Algorithm{
	Name:     "palindrome",
	Title:    "Valid Palindrome",
	Summary:  "Compare characters from both ends, skipping punctuation and spaces.",
	Display:  algo.DisplayText,
	Params:   []algo.Param{algo.ParamText},
	Defaults: step.Input{Text: "A man, a plan, a canal: Panama"},
	Generate: genPalindrome,
}

// ReverseString reverses text in place by swapping from both ends.
var ReverseString = &algo.Algorithm{
	Name:     "reverse-string",
	Title:    "Reverse a String",
	Summary:  "Swap the outermost characters and move both pointers inward.",
	Display:  algo.DisplayText,
	Params:   []algo.Param{algo.ParamText},
	Defaults: step.Input{Text: "stressed"},
	Generate: genReverseString,
}

func runes(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		out = append(out, int(r))
	}
	return out
}

func alnum(r int) bool {
	return unicode.IsLetter(rune(r)) || unicode.IsDigit(rune(r))
}

func fold(r int) int {
	return int(unicode.ToLower(rune(r)))
}

// genPalindrome reports Result 1 for a palindrome and 0 otherwise.
func genPalindrome(in step.Input) []step.Step {
	s := runes(in.Text)
	if len(s) == 0 {
		b := step.NewBuilder()
		return b.Finish(step.Step{
			Explanation: "The empty string reads the same in both directions: it is a palindrome.",
			Result:      step.Int(1),
		})
	}

	b := step.NewBuilder()
	lo, hi := 0, len(s)-1
	var matched []int
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  step.Mark(step.TagCurr, lo, hi),
		Explanation: "Put lo on the first character and hi on the last. Case and punctuation are ignored.",
		Items:       s,
	})

	for lo < hi {
		pos := step.Positions{"lo": lo, "hi": hi}
		switch {
		case !alnum(s[lo]):
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagVisited, lo),
				Explanation: fmt.Sprintf("%q is not a letter or digit: skip it.", rune(s[lo])),
				Items:       s,
			})
			lo++
		case !alnum(s[hi]):
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagVisited, hi),
				Explanation: fmt.Sprintf("%q is not a letter or digit: skip it.", rune(s[hi])),
				Items:       s,
			})
			hi--
		case fold(s[lo]) != fold(s[hi]):
			return b.Finish(step.Step{
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagActive, lo, hi),
				Explanation: fmt.Sprintf("%q differs from %q: not a palindrome.", rune(s[lo]), rune(s[hi])),
				Items:       s,
				Result:      step.Int(0),
			})
		default:
			matched = append(matched, lo, hi)
			b.Add(step.Step{
				Phase:       step.PhaseTraverse,
				Positions:   pos,
				Highlights:  step.Mark(step.TagDone, matched...).With(step.TagCompare, lo, hi),
				Explanation: fmt.Sprintf("%q matches %q: move both pointers inward.", rune(s[lo]), rune(s[hi])),
				Items:       s,
			})
			lo++
			hi--
		}
	}

	return b.Finish(step.Step{
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  step.Mark(step.TagFound, matched...),
		Explanation: "The pointers crossed without a mismatch: it is a palindrome.",
		Items:       s,
		Result:      step.Int(1),
	})
}

func genReverseString(in step.Input) []step.Step {
	s := runes(in.Text)
	switch len(s) {
	case 0:
		return step.Single(step.PhaseDone, "The string is empty, so there is nothing to reverse.", nil)
	case 1:
		return step.Single(step.PhaseDone, fmt.Sprintf("%q is a single character and already its own reverse.", rune(s[0])), s)
	}

	b := step.NewBuilder()
	lo, hi := 0, len(s)-1
	var swapped []int
	b.Add(step.Step{
		Phase:       step.PhaseSetup,
		Positions:   step.Positions{"lo": lo, "hi": hi},
		Highlights:  step.Mark(step.TagCurr, lo, hi),
		Explanation: "Put lo on the first character and hi on the last.",
		Items:       s,
	})
	for lo < hi {
		s[lo], s[hi] = s[hi], s[lo]
		swapped = append(swapped, lo, hi)
		b.Add(step.Step{
			Phase:       step.PhaseReverse,
			Positions:   step.Positions{"lo": lo, "hi": hi},
			Highlights:  step.Mark(step.TagReversed, swapped...).With(step.TagActive, lo, hi),
			Explanation: fmt.Sprintf("Swap positions %d and %d, then move inward.", lo, hi),
			Items:       s,
		})
		lo++
		hi--
	}

	return b.Finish(step.Step{
		Highlights:  step.Mark(step.TagDone, swapped...),
		Explanation: fmt.Sprintf("The pointers met: the reversed string is %q.", string(toRunes(s))),
		Items:       s,
		Output:      s,
	})
}

func toRunes(s []int) []rune {
	out := make([]rune, len(s))
	for i, r := range s {
		out[i] = rune(r)
	}
	return out
}
