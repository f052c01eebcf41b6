package step

import "testing"

func TestBuilderSnapshots(t *testing.T) {
	b := NewBuilder()
	items := []int{1, 2, 3}
	b.Add(Step{Items: items})
	items[0] = 9
	steps := b.Finish(Step{Items: items})

	if len(steps) != 2 {
		t.Fatalf("len = %d, want 2", len(steps))
	}
	if steps[0].Items[0] != 1 {
		t.Error("Add should snapshot the caller's slices")
	}
	if !steps[1].Done || steps[1].Phase != PhaseDone {
		t.Errorf("Finish: done=%v phase=%q", steps[1].Done, steps[1].Phase)
	}
}

func TestSingle(t *testing.T) {
	steps := Single(PhaseInvalid, "bad", nil)
	if len(steps) != 1 || !steps[0].Done || steps[0].Phase != PhaseInvalid {
		t.Errorf("Single = %+v", steps)
	}
}

func TestIDsAreScoped(t *testing.T) {
	var a, b IDs
	a.Next()
	a.Next()
	if got := b.Next(); got != 0 {
		t.Errorf("fresh counter started at %d", got)
	}
	if got := a.Next(); got != 2 {
		t.Errorf("a.Next() = %d, want 2", got)
	}
}
