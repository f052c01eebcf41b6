package playback

import (
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/dsaviz/pkg/core/step"
	"github.com/matzehuels/dsaviz/pkg/observability"
)

// Speed bounds and default.
const (
	MinSpeed     = 50 * time.Millisecond
	MaxSpeed     = 5 * time.Second
	DefaultSpeed = 600 * time.Millisecond
)

// ClampSpeed limits d to [MinSpeed, MaxSpeed].
func ClampSpeed(d time.Duration) time.Duration {
	return min(max(d, MinSpeed), MaxSpeed)
}

// Source produces the sequence for an input. It is called on every Execute.
type Source func(in step.Input) *step.Sequence

// State is a point-in-time view of a controller.
type State struct {
	Algorithm string        `json:"algorithm"`
	Cursor    int           `json:"cursor"`
	Length    int           `json:"length"`
	Playing   bool          `json:"playing"`
	Speed     time.Duration `json:"-"`
	SpeedMS   int64         `json:"speedMs"`
	Step      step.Step     `json:"step"`
}

// AtEnd reports whether the cursor is on the terminal step.
func (s State) AtEnd() bool { return s.Length > 0 && s.Cursor == s.Length-1 }

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the system clock, typically with a manual clock in
// tests.
func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

// WithSpeed sets the initial auto-advance delay. It is clamped.
func WithSpeed(d time.Duration) Option {
	return func(ctl *Controller) { ctl.speed = ClampSpeed(d) }
}

// WithHooks routes transition events to h instead of the global playback
// hooks.
func WithHooks(h observability.PlaybackHooks) Option {
	return func(ctl *Controller) {
		if h != nil {
			ctl.hooks = h
		}
	}
}

// Controller drives a cursor through one active sequence at a time. It is
// safe for concurrent use. Listeners see states in the order transitions
// happened; a transition made while another goroutine is notifying
// listeners is delivered by that goroutine once it finishes.
type Controller struct {
	source Source
	clock  Clock
	hooks  observability.PlaybackHooks

	mu        sync.Mutex
	seq       *step.Sequence
	cursor    int
	playing   bool
	speed     time.Duration
	gen       uint64
	timer     Timer
	closed    bool
	listeners []func(State)

	// pending holds transitions not yet delivered to listeners, oldest
	// first. dispatching is set while one goroutine drains it.
	pending     []event
	dispatching bool
}

type event struct {
	action string
	state  State
}

// New creates a controller that regenerates its sequence from src on
// Execute. src may be nil when sequences are only supplied through Load.
func New(src Source, opts ...Option) *Controller {
	c := &Controller{
		source: src,
		clock:  SystemClock{},
		hooks:  observability.Playback(),
		speed:  DefaultSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to receive the state after every transition that
// changes it.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// =============================================================================
// Transitions
// =============================================================================

// Execute regenerates the sequence from in, resets the cursor to 0 and
// stops playback. Any pending tick becomes stale.
func (c *Controller) Execute(in step.Input) {
	if c.source == nil {
		return
	}
	c.Load(c.source(in))
}

// Load replaces the active sequence with seq, resets the cursor and stops
// playback.
func (c *Controller) Load(seq *step.Sequence) {
	c.mu.Lock()
	if c.closed || seq == nil {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.seq = seq
	c.cursor = 0
	c.emitLocked("execute")
}

// StepForward advances the cursor by one. It is a no-op on the last step.
func (c *Controller) StepForward() {
	c.mu.Lock()
	if !c.readyLocked() || c.cursor >= c.seq.Len()-1 {
		c.mu.Unlock()
		return
	}
	c.cursor++
	if c.playing && c.cursor == c.seq.Len()-1 {
		c.finishLocked()
	}
	c.emitLocked("forward")
}

// StepBack moves the cursor back by one. It is a no-op on the first step.
func (c *Controller) StepBack() {
	c.mu.Lock()
	if !c.readyLocked() || c.cursor == 0 {
		c.mu.Unlock()
		return
	}
	c.cursor--
	c.emitLocked("back")
}

// Seek moves the cursor to i, clamped to the sequence bounds.
func (c *Controller) Seek(i int) {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	c.cursor = min(max(i, 0), c.seq.Len()-1)
	if c.playing && c.cursor == c.seq.Len()-1 {
		c.finishLocked()
	}
	c.emitLocked("seek")
}

// TogglePlay starts auto-advance when paused and stops it when playing.
// Starting from the last step rewinds to the first step.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	if c.playing {
		c.stopLocked()
		c.emitLocked("pause")
		return
	}
	if c.cursor >= c.seq.Len()-1 {
		if c.seq.Len() == 1 {
			c.mu.Unlock()
			return
		}
		c.cursor = 0
	}
	c.playing = true
	c.scheduleLocked()
	c.emitLocked("play")
}

// SetSpeed changes the auto-advance delay. It is clamped to
// [MinSpeed, MaxSpeed] and applies from the next scheduled tick.
func (c *Controller) SetSpeed(d time.Duration) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.speed = ClampSpeed(d)
	c.emitLocked("speed")
}

// Reset moves the cursor to 0 and stops playback.
func (c *Controller) Reset() {
	c.mu.Lock()
	if !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.cursor = 0
	c.emitLocked("reset")
}

// Close stops playback and cancels any pending tick. Further transitions
// are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.stopLocked()
	c.closed = true
	c.listeners = nil
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// =============================================================================
// Internals
// =============================================================================

func (c *Controller) readyLocked() bool {
	return !c.closed && c.seq != nil
}

// scheduleLocked arms the single pending tick for the current generation.
func (c *Controller) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.speed, func() { c.tick(gen) })
}

// stopLocked pauses playback and invalidates any pending tick.
func (c *Controller) stopLocked() {
	c.playing = false
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// finishLocked stops playback after reaching the terminal step.
func (c *Controller) finishLocked() {
	c.stopLocked()
	c.hooks.OnFinished(c.seq.Algorithm(), c.seq.Len())
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.playing || !c.readyLocked() {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	if c.cursor < c.seq.Len()-1 {
		c.cursor++
	}
	if c.cursor == c.seq.Len()-1 {
		c.finishLocked()
	} else {
		c.scheduleLocked()
	}
	c.emitLocked("tick")
}

func (c *Controller) stateLocked() State {
	st := State{
		Cursor:  c.cursor,
		Playing: c.playing,
		Speed:   c.speed,
		SpeedMS: c.speed.Milliseconds(),
	}
	if c.seq != nil {
		st.Algorithm = c.seq.Algorithm()
		st.Length = c.seq.Len()
		st.Step = c.seq.At(c.cursor)
	}
	return st
}

// emitLocked queues the transition, releases the lock and, unless another
// goroutine is already draining the queue, delivers queued states to
// listeners in transition order. It must be called with c.mu held and
// returns with it released.
func (c *Controller) emitLocked(action string) {
	c.pending = append(c.pending, event{action: action, state: c.stateLocked()})
	if c.dispatching {
		c.mu.Unlock()
		return
	}
	c.dispatching = true
	c.mu.Unlock()
	c.dispatch()
}

// dispatch delivers queued events one at a time without holding c.mu, so
// listeners may call back into the controller.
func (c *Controller) dispatch() {
	for {
		c.mu.Lock()
		if len(c.pending) == 0 {
			c.dispatching = false
			c.mu.Unlock()
			return
		}
		ev := c.pending[0]
		c.pending = c.pending[1:]
		listeners := slices.Clone(c.listeners)
		c.mu.Unlock()

		c.hooks.OnAction(ev.action, ev.state.Cursor, ev.state.Length)
		for _, fn := range listeners {
			fn(ev.state)
		}
	}
}
