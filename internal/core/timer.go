package core

import "time"

// maxCatchUp caps how many ticks a single Advance call may run when the
// caller has fallen behind the wall clock.
const maxCatchUp = 8

// FixedStep drives a simulation at a steady ticks-per-second cadence,
// decoupled from whatever frame rate the caller happens to run at.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Advance runs tick once for every whole step elapsed since the previous
// call, capped at maxCatchUp, and reports how many ticks ran. Each tick
// completes fully before the next begins.
func (f *FixedStep) Advance(tick func()) int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	ran := 0
	for f.accumulator >= f.step && ran < maxCatchUp {
		f.accumulator -= f.step
		tick()
		ran++
	}
	if ran == maxCatchUp && f.accumulator >= f.step {
		// Drop the backlog rather than spiral further behind.
		f.accumulator = 0
	}
	return ran
}
