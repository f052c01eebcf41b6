// Package step defines the frame model shared by every algorithm walkthrough.
//
// A [Step] is one fully described frame of an animation: named pointer
// positions, per-element highlight tags, an explanation sentence, a coarse
// phase label and a terminal marker. A [Sequence] is the complete,
// precomputed list of steps for one execution of a generator.
//
// # Immutability
//
// Sequences are built once and never mutated. [NewSequence] deep-copies the
// steps it is given and every accessor hands out copies, so a renderer or
// playback controller can never disturb a sequence another consumer is
// reading.
//
// # Building Steps
//
// Generators use a [Builder] to append frames while mutating their own
// working state. [Builder.Add] snapshots the step, so callers may keep
// reusing their slices:
//
//	b := step.NewBuilder()
//	b.Add(step.Step{
//	    Phase:       step.PhaseSearch,
//	    Positions:   step.Positions{"lo": 0, "hi": 11},
//	    Highlights:  step.Mark(step.TagZone, 0, 1, 2),
//	    Explanation: "Search the whole array.",
//	    Items:       values,
//	})
//	steps := b.Finish(step.Step{Explanation: "Done."})
//
// # Absent Positions
//
// A pointer that does not currently reference an element (for example
// prev before the first reversal) is recorded as [Absent].
package step
