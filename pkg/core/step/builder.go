package step

// Builder accumulates the steps of one generator run.
type Builder struct {
	steps []Step
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add snapshots s and appends it. The caller keeps ownership of any slices
// or maps referenced by s.
func (b *Builder) Add(s Step) {
	b.steps = append(b.steps, s.Clone())
}

// Len returns the number of steps recorded so far.
func (b *Builder) Len() int { return len(b.steps) }

// Finish appends s as the terminal step and returns all recorded steps.
// An empty phase defaults to PhaseDone.
func (b *Builder) Finish(s Step) []Step {
	s.Done = true
	if s.Phase == "" {
		s.Phase = PhaseDone
	}
	b.Add(s)
	return b.steps
}

// Single returns a one-step sequence body explaining why no work is needed
// or why the input is invalid.
func Single(phase Phase, explanation string, items []int) []Step {
	return NewBuilder().Finish(Step{
		Phase:       phase,
		Explanation: explanation,
		Items:       items,
	})
}

// IDs hands out synthetic node identities. Each list construction owns its
// own counter, so identities never leak between runs.
type IDs struct {
	next int
}

// Next returns the next unused id, starting from 0.
func (c *IDs) Next() int {
	id := c.next
	c.next++
	return id
}

// SafetyCap bounds loops that walk a possibly cyclic structure of n nodes.
// Floyd's algorithm meets within 2n pointer moves of the slow pointer
// entering the cycle, so 3n+3 leaves headroom for the entry phase.
func SafetyCap(n int) int {
	return 3*n + 3
}
