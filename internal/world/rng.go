package world

import "math/rand"

// RandomNumberGenerator is the random source used by the map builder.
// Range returns an integer in the half-open interval [low, high).
type RandomNumberGenerator interface {
	Range(low, high int) int
}

// Rand adapts a math/rand generator to RandomNumberGenerator.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a generator seeded with seed.
func NewRand(seed int64) *Rand {
	return NewRandFrom(rand.New(rand.NewSource(seed)))
}

// NewRandFrom wraps an existing math/rand generator.
func NewRandFrom(rng *rand.Rand) *Rand {
	return &Rand{rng: rng}
}

// Range returns a uniform integer in [low, high). An empty range yields low.
func (r *Rand) Range(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low)
}
