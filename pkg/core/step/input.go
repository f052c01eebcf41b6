package step

import "unicode/utf8"

// Limits applied by Input.Normalize. Visualizations beyond these sizes are
// unreadable, so longer input is truncated rather than rejected.
const (
	MaxValues = 64
	MaxText   = 64
	MaxNodes  = 64
)

// Edge is an undirected edge between two graph nodes, encoded in JSON as a
// two-element array.
type Edge [2]int

// Input is the algorithm input: a finite sequence of values plus the
// optional integer parameters individual generators read.
//
// Each algorithm declares its own defaults; user input is overlaid on them
// before generation, so a zero field only means "zero" when the caller
// explicitly provided it.
type Input struct {
	Values   []int  `json:"values" toml:"values"`
	Target   int    `json:"target" toml:"target"`
	Left     int    `json:"left" toml:"left"`
	Right    int    `json:"right" toml:"right"`
	K        int    `json:"k" toml:"k"`
	CyclePos int    `json:"cyclePos" toml:"cycle_pos"`
	Start    int    `json:"start" toml:"start"`
	N        int    `json:"n" toml:"n"`
	Text     string `json:"text,omitempty" toml:"text"`
	Edges    []Edge `json:"edges,omitempty" toml:"edges"`
}

// Clone returns a deep copy of in.
func (in Input) Clone() Input {
	c := in
	c.Values = cloneInts(in.Values)
	if in.Edges != nil {
		c.Edges = append([]Edge(nil), in.Edges...)
	}
	return c
}

// Normalize returns a copy of in truncated to the display limits. Edges
// referencing negative or out-of-range nodes are dropped.
func (in Input) Normalize() Input {
	c := in.Clone()
	if len(c.Values) > MaxValues {
		c.Values = c.Values[:MaxValues]
	}
	if utf8.RuneCountInString(c.Text) > MaxText {
		c.Text = string([]rune(c.Text)[:MaxText])
	}
	if c.Edges != nil {
		kept := c.Edges[:0]
		for _, e := range c.Edges {
			if e[0] >= 0 && e[1] >= 0 && e[0] < MaxNodes && e[1] < MaxNodes {
				kept = append(kept, e)
			}
		}
		c.Edges = kept
	}
	return c
}
