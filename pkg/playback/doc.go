// Package playback drives a cursor through a step sequence.
//
// A [Controller] holds the active sequence, the cursor, the play/pause
// state and the auto-advance speed. Users move the cursor directly with
// [Controller.StepForward], [Controller.StepBack], [Controller.Seek] and
// [Controller.Reset]; [Controller.TogglePlay] starts or stops a timer that
// advances one step per tick.
//
// # Timer Safety
//
// At most one tick is pending per controller. Every scheduled tick captures
// the controller's generation number, and any transition that invalidates
// pending ticks (Execute, Load, pause, Reset, Close) bumps the generation,
// so a tick that fires late is discarded instead of advancing a sequence
// it was not scheduled for. Reaching the last step while playing stops
// playback; there is no wraparound.
//
// # Concurrency
//
// Timer callbacks run on their own goroutines, so every transition is
// serialized under a mutex. Change listeners are invoked after the lock is
// released, in registration order.
//
// # Testing
//
// The [Clock] interface decouples the controller from wall time. Tests pass
// a manual clock and fire ticks explicitly.
package playback
