package step

import (
	"encoding/json"
	"testing"
)

func TestNewSequenceEmpty(t *testing.T) {
	s := NewSequence("x", Input{}, nil)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if !s.Last().Done {
		t.Error("placeholder step should be done")
	}
}

func TestNewSequenceMarksLastDone(t *testing.T) {
	s := NewSequence("x", Input{}, []Step{{Explanation: "a"}, {Explanation: "b"}})
	if s.At(0).Done {
		t.Error("first step should not be done")
	}
	if !s.Last().Done {
		t.Error("last step should be marked done")
	}
}

func TestSequenceIsImmutable(t *testing.T) {
	steps := []Step{{Items: []int{1, 2}}}
	in := Input{Values: []int{1, 2}}
	s := NewSequence("x", in, steps)

	steps[0].Items[0] = 99
	in.Values[0] = 99
	if s.At(0).Items[0] != 1 {
		t.Error("sequence shares the caller's step slices")
	}
	if s.Input().Values[0] != 1 {
		t.Error("sequence shares the caller's input slice")
	}

	got := s.At(0)
	got.Items[1] = 99
	if s.At(0).Items[1] != 2 {
		t.Error("At returned a shared step")
	}

	all := s.Steps()
	all[0].Items[0] = 42
	if s.At(0).Items[0] != 1 {
		t.Error("Steps returned shared steps")
	}
}

func TestSequenceJSONRoundTrip(t *testing.T) {
	in := Input{Values: []int{3, 7}, CyclePos: -1, Edges: []Edge{{0, 1}}}
	s := NewSequence("reverse-all", in, []Step{
		{Phase: PhaseSetup, Positions: Positions{"head": 0}, Highlights: Mark(TagCurr, 0), Items: []int{3, 7}, Links: []int{1, Absent}},
		{Phase: PhaseDone, Result: Int(7), Output: []int{7, 3}},
	})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Sequence
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !s.Equal(&got) {
		t.Errorf("round trip changed the sequence:\n%s", data)
	}
}

func TestSequenceEqual(t *testing.T) {
	a := NewSequence("x", Input{}, []Step{{Explanation: "a"}})
	b := NewSequence("x", Input{}, []Step{{Explanation: "a"}})
	c := NewSequence("y", Input{}, []Step{{Explanation: "a"}})
	if !a.Equal(b) {
		t.Error("identical sequences should be equal")
	}
	if a.Equal(c) {
		t.Error("different algorithms should not be equal")
	}
	var nilSeq *Sequence
	if a.Equal(nilSeq) || !nilSeq.Equal(nil) {
		t.Error("nil handling is wrong")
	}
}

func TestInputNormalize(t *testing.T) {
	values := make([]int, MaxValues+10)
	in := Input{
		Values: values,
		Edges:  []Edge{{0, 1}, {-1, 2}, {0, MaxNodes}},
	}
	got := in.Normalize()
	if len(got.Values) != MaxValues {
		t.Errorf("Values truncated to %d, want %d", len(got.Values), MaxValues)
	}
	if len(got.Edges) != 1 || got.Edges[0] != (Edge{0, 1}) {
		t.Errorf("Edges = %v, want [[0 1]]", got.Edges)
	}
	if len(in.Edges) != 3 {
		t.Error("Normalize modified its receiver")
	}
}
