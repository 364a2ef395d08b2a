package crossing

import "time"

// Clock turns wall-clock timestamps into simulation steps. Calls arriving
// sooner than the minimum step after the last processed one are skipped,
// which caps the simulation rate however often the platform ticks.
type Clock struct {
	minStep time.Duration
	last    time.Time
	primed  bool
}

// NewClock creates a clock that processes at most maxRate steps per second.
func NewClock(maxRate int) *Clock {
	if maxRate <= 0 {
		maxRate = 90
	}
	return &Clock{minStep: time.Second / time.Duration(maxRate)}
}

// Advance reports the seconds elapsed since the last processed step and
// whether this call is a step. The first call only records the time.
func (c *Clock) Advance(now time.Time) (float64, bool) {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0, false
	}
	elapsed := now.Sub(c.last)
	if elapsed < c.minStep {
		return 0, false
	}
	c.last = now
	return elapsed.Seconds(), true
}

// MinStep returns the shortest interval that is processed.
func (c *Clock) MinStep() time.Duration {
	return c.minStep
}

// Restart forgets the last timestamp so the next Advance primes again.
func (c *Clock) Restart() {
	c.primed = false
}
