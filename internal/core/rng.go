package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed rewinds the generator to the sequence for seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with probability p. p <= 0 never succeeds and p >= 1
// always does.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntRange returns an int in [min, max). It returns min when the range is empty.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min)
}

// IntInclusive returns an int in [min, max].
func (r *RNG) IntInclusive(min, max int) int {
	if max < min {
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// FloatRange returns a float in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.r.Float64()*(max-min)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
