// Package stackqueue provides stack and queue walkthroughs. The live stack
// is shown through Step.Frames, bottom first.
package stackqueue
