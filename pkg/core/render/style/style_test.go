package style

import (
	"testing"

	"github.com/matzehuels/dsaviz/pkg/core/step"
)

func TestForKnownTags(t *testing.T) {
	for _, tag := range step.Tags {
		if For(tag) == Default {
			t.Errorf("tag %q has no dedicated style", tag)
		}
	}
}

func TestForFallsBack(t *testing.T) {
	for _, tag := range []step.Tag{"", "sparkly", "ACTIVE"} {
		if got := For(tag); got != Default {
			t.Errorf("For(%q) = %+v, want Default", tag, got)
		}
	}
}

func TestOf(t *testing.T) {
	s := step.Step{Highlights: step.Mark(step.TagFound, 2)}
	if Of(s, 2) != For(step.TagFound) {
		t.Error("Of should look up the element's tag")
	}
	if Of(s, 0) != Default {
		t.Error("untagged element should use Default")
	}
}

func TestTableIsCopy(t *testing.T) {
	tbl := Table()
	tbl[step.TagFound] = Default
	if For(step.TagFound) == Default {
		t.Error("mutating Table() result changed the lookup")
	}
}

func TestPointers(t *testing.T) {
	s := step.Step{Positions: step.Positions{"lo": 0, "mid": 3, "hi": 3}}
	got := Pointers(s, 3, []string{"lo", "mid", "hi"})
	if len(got) != 2 || got[0] != "mid" || got[1] != "hi" {
		t.Errorf("Pointers = %v, want [mid hi]", got)
	}
	if got := Pointers(s, 5, []string{"lo"}); got != nil {
		t.Errorf("Pointers = %v, want nil", got)
	}
}
