package step

import "maps"

// Absent marks a position or link that does not reference any element.
const Absent = -1

// Tag is a categorical highlight label attached to an element index.
type Tag string

// Highlight tags. Renderers map these to presentation attributes and fall
// back to a default style for anything else.
const (
	TagActive   Tag = "active"
	TagVisited  Tag = "visited"
	TagFound    Tag = "found"
	TagPrev     Tag = "prev"
	TagCurr     Tag = "curr"
	TagNext     Tag = "next"
	TagReversed Tag = "reversed"
	TagZone     Tag = "zone"
	TagCompare  Tag = "compare"
	TagDone     Tag = "done"
)

// Tags lists every known highlight tag in display order.
var Tags = []Tag{
	TagActive, TagVisited, TagFound, TagPrev, TagCurr,
	TagNext, TagReversed, TagZone, TagCompare, TagDone,
}

// Phase is a coarse stage label used for grouping and UI badges.
type Phase string

// Phases emitted by the bundled generators.
const (
	PhaseSetup    Phase = "Setup"
	PhaseSearch   Phase = "Search"
	PhaseDescend  Phase = "Descend"
	PhaseUnwind   Phase = "Unwind"
	PhaseTraverse Phase = "Traverse"
	PhaseFill     Phase = "Fill"
	PhaseReverse  Phase = "Reverse"
	PhaseDetect   Phase = "Detect"
	PhaseDone     Phase = "Done"
	PhaseInvalid  Phase = "Invalid"
)

// Positions maps pointer names (slow, fast, lo, hi, mid...) to element
// indices or [Absent].
type Positions map[string]int

// Get returns the index stored under name, or Absent when the pointer is
// not set.
func (p Positions) Get(name string) int {
	if v, ok := p[name]; ok {
		return v
	}
	return Absent
}

// Highlights maps element indices to highlight tags.
type Highlights map[int]Tag

// Mark returns a Highlights map tagging every index in idx with tag.
func Mark(tag Tag, idx ...int) Highlights {
	h := make(Highlights, len(idx))
	return h.With(tag, idx...)
}

// With tags every index in idx with tag, ignoring Absent, and returns h.
// Later calls overwrite earlier tags for the same index.
func (h Highlights) With(tag Tag, idx ...int) Highlights {
	for _, i := range idx {
		if i != Absent {
			h[i] = tag
		}
	}
	return h
}

// Step is one discrete, fully described frame of an algorithm walkthrough.
type Step struct {
	// Positions holds named pointers into the subject collection.
	Positions Positions `json:"positions"`

	// Highlights tags individual elements for styling.
	Highlights Highlights `json:"highlights"`

	// Explanation describes the transition that produced this state.
	Explanation string `json:"explanation"`

	// Phase is the coarse stage label.
	Phase Phase `json:"phase"`

	// Done marks the terminal step of a sequence.
	Done bool `json:"done"`

	// Items is a snapshot of the subject collection: array values, list
	// node values by node id, a DP table or graph node labels.
	Items []int `json:"items,omitempty"`

	// Links holds, for linked-list walkthroughs, the id of each node's
	// successor (or Absent). Links[i] is the arrow leaving node i.
	Links []int `json:"links,omitempty"`

	// Frames is auxiliary stack or queue content rendered as labels
	// (call stack, BFS queue, monotonic stack).
	Frames []string `json:"frames,omitempty"`

	// Output is the output accumulated so far (visit order, reversed order).
	Output []int `json:"output,omitempty"`

	// Result is an optional scalar answer. Nil means no answer.
	Result *int `json:"result"`
}

// Int returns a pointer to v, for populating Step.Result.
func Int(v int) *int { return &v }

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	c := s
	c.Positions = maps.Clone(s.Positions)
	c.Highlights = maps.Clone(s.Highlights)
	c.Items = cloneInts(s.Items)
	c.Links = cloneInts(s.Links)
	c.Output = cloneInts(s.Output)
	if s.Frames != nil {
		c.Frames = append([]string(nil), s.Frames...)
	}
	if s.Result != nil {
		c.Result = Int(*s.Result)
	}
	return c
}

// Tag returns the highlight tag of element i, or the empty tag.
func (s Step) Tag(i int) Tag {
	return s.Highlights[i]
}

// Order walks Links from the "head" position and returns the node values
// in list order. Without links it returns a copy of Items. The walk stops
// after len(Items) nodes so a cyclic list cannot loop forever.
func (s Step) Order() []int {
	if s.Links == nil {
		return cloneInts(s.Items)
	}
	out := make([]int, 0, len(s.Items))
	for cur, n := s.Positions.Get("head"), 0; cur != Absent && cur < len(s.Items) && n < len(s.Items); n++ {
		out = append(out, s.Items[cur])
		cur = s.Links[cur]
	}
	return out
}

func cloneInts(v []int) []int {
	if v == nil {
		return nil
	}
	return append([]int(nil), v...)
}
