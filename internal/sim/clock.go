package sim

import "time"

// DefaultMaxSteps bounds catch-up after a stall.
const DefaultMaxSteps = 5

// FixedStep converts variable real frame durations into a whole number of
// fixed simulation steps. Leftover time carries over to the next frame.
type FixedStep struct {
	Step     time.Duration
	MaxSteps int
	acc      time.Duration
}

// NewFixedStep returns a clock ticking fps times per second.
func NewFixedStep(fps int) *FixedStep {
	if fps <= 0 {
		fps = 60
	}
	return &FixedStep{
		Step:     time.Second / time.Duration(fps),
		MaxSteps: DefaultMaxSteps,
	}
}

// Advance adds elapsed real time and returns how many updates are due.
// When more than MaxSteps are due the backlog is dropped.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += elapsed
	n := int(f.acc / f.Step)
	f.acc -= time.Duration(n) * f.Step
	if f.MaxSteps > 0 && n > f.MaxSteps {
		n = f.MaxSteps
		f.acc = 0
	}
	return n
}
