package step

import (
	"encoding/json"
	"reflect"
)

// Sequence is the complete, precomputed ordered list of Steps for one
// execution of a generator. It is immutable: the steps are held privately
// and every accessor returns copies.
type Sequence struct {
	algorithm string
	input     Input
	steps     []Step
}

// NewSequence snapshots steps into an immutable Sequence.
//
// The result always satisfies the sequence contract: it is non-empty and
// its last step is done. An empty steps slice gets a single explanatory
// terminal step; a slice whose last step is not done gets its last step
// marked done.
func NewSequence(algorithm string, in Input, steps []Step) *Sequence {
	cp := make([]Step, len(steps))
	for i, s := range steps {
		cp[i] = s.Clone()
	}
	if len(cp) == 0 {
		cp = append(cp, Step{
			Phase:       PhaseDone,
			Explanation: "Nothing to show for this input.",
			Done:        true,
		})
	}
	if last := &cp[len(cp)-1]; !last.Done {
		last.Done = true
	}
	return &Sequence{algorithm: algorithm, input: in.Clone(), steps: cp}
}

// Algorithm returns the name of the generator that produced the sequence.
func (s *Sequence) Algorithm() string { return s.algorithm }

// Input returns a copy of the input the sequence was generated from.
func (s *Sequence) Input() Input { return s.input.Clone() }

// Len returns the number of steps.
func (s *Sequence) Len() int { return len(s.steps) }

// At returns a copy of step i. It panics if i is out of range, like a
// slice index.
func (s *Sequence) At(i int) Step { return s.steps[i].Clone() }

// Last returns a copy of the terminal step.
func (s *Sequence) Last() Step { return s.At(len(s.steps) - 1) }

// Steps returns a copy of every step.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Clone()
	}
	return out
}

// Equal reports whether s and o are structurally identical.
func (s *Sequence) Equal(o *Sequence) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.algorithm == o.algorithm &&
		reflect.DeepEqual(s.input, o.input) &&
		reflect.DeepEqual(s.steps, o.steps)
}

type sequenceJSON struct {
	Algorithm string `json:"algorithm"`
	Input     Input  `json:"input"`
	Steps     []Step `json:"steps"`
}

// MarshalJSON encodes the sequence as {algorithm, input, steps}.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(sequenceJSON{Algorithm: s.algorithm, Input: s.input, Steps: s.steps})
}

// UnmarshalJSON decodes a sequence produced by MarshalJSON. The decoded
// sequence is normalized through the same contract as NewSequence.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw sequenceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = *NewSequence(raw.Algorithm, raw.Input, raw.Steps)
	return nil
}
