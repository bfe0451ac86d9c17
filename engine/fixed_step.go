package engine

import "time"

// FixedStep converts variable frame time into a whole number of fixed physics steps
// The remainder below one step carries into the next Advance
type FixedStep struct {
	Step     time.Duration
	MaxSteps int // Per-call cap; 0 means unbounded

	accumulator time.Duration
	dropped     uint64
}

// NewFixedStep creates an accumulator for the given step length and per-call cap
func NewFixedStep(step time.Duration, maxSteps int) FixedStep {
	return FixedStep{Step: step, MaxSteps: maxSteps}
}

// Advance adds elapsed time and returns the number of steps now due
// Backlog beyond MaxSteps is discarded so a long stall cannot cause a catch-up burst
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if f.Step <= 0 || elapsed <= 0 {
		return 0
	}
	f.accumulator += elapsed

	n := int(f.accumulator / f.Step)
	f.accumulator -= time.Duration(n) * f.Step

	if f.MaxSteps > 0 && n > f.MaxSteps {
		f.dropped += uint64(n - f.MaxSteps)
		n = f.MaxSteps
	}
	return n
}

// Leftover returns the accumulated time not yet consumed by a step
func (f *FixedStep) Leftover() time.Duration {
	return f.accumulator
}

// Dropped returns the total number of steps discarded by the cap
func (f *FixedStep) Dropped() uint64 {
	return f.dropped
}
