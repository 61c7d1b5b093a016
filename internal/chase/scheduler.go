package chase

import "time"

const (
	// DefaultStep is the fixed simulation step (30 Hz).
	DefaultStep = time.Second / 30

	// DefaultMaxDelta caps how much wall time one frame may feed in.
	DefaultMaxDelta = 100 * time.Millisecond
)

// Scheduler turns irregular frame timestamps into constant-size simulation
// steps. Time is kept as integer durations so the number of steps for a
// given sequence of deltas is exact.
type Scheduler struct {
	step     time.Duration
	maxDelta time.Duration
	acc      time.Duration
	last     time.Time
	primed   bool
}

// NewScheduler creates a scheduler. Non-positive arguments take the defaults.
func NewScheduler(step, maxDelta time.Duration) *Scheduler {
	if step <= 0 {
		step = DefaultStep
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Scheduler{step: step, maxDelta: maxDelta}
}

// Frame feeds one frame timestamp and runs tick once per whole step that
// has accumulated. The first frame only primes the clock. Returns the
// number of steps run.
func (s *Scheduler) Frame(now time.Time, tick func(dt float64)) int {
	if !s.primed {
		s.Sync(now)
		return 0
	}
	delta := now.Sub(s.last)
	s.last = now
	return s.Advance(delta, tick)
}

// Advance feeds an explicit delta. Negative deltas count as zero and
// deltas above the cap are clamped.
func (s *Scheduler) Advance(delta time.Duration, tick func(dt float64)) int {
	if delta < 0 {
		delta = 0
	}
	if delta > s.maxDelta {
		delta = s.maxDelta
	}
	s.acc += delta

	dt := s.step.Seconds()
	n := 0
	for s.acc >= s.step {
		tick(dt)
		s.acc -= s.step
		n++
	}
	return n
}

// Sync sets the reference timestamp without running any steps, e.g. when
// resuming from pause.
func (s *Scheduler) Sync(now time.Time) {
	s.last = now
	s.primed = true
}

// Remainder returns the accumulated time not yet consumed by a step.
func (s *Scheduler) Remainder() time.Duration {
	return s.acc
}

// Step returns the fixed step size.
func (s *Scheduler) Step() time.Duration {
	return s.step
}

// MaxDelta returns the per-frame cap.
func (s *Scheduler) MaxDelta() time.Duration {
	return s.maxDelta
}
