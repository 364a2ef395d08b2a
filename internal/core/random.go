package core

import "math/rand"

// Random draws uniform samples for every spawn and respawn decision.
// A single instance is owned by the simulation so that one seed reproduces
// a whole run.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a generator seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Int returns a uniform integer in [low, high], both inclusive.
// If high < low, low is returned.
func (r *Random) Int(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low+1)
}

// Float returns a uniform float in [low, high).
func (r *Random) Float(low, high float64) float64 {
	return low + r.rng.Float64()*(high-low)
}

// Pick returns a uniform index into a collection of n elements.
func (r *Random) Pick(n int) int {
	return r.Int(0, n-1)
}
