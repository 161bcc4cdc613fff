// Package core contains the pure simulation for the tilt maze: the seeded
// RNG, the maze generator, and the continuous-time ball physics. It has no
// dependencies on the platform layers so every piece is directly testable.
package core

// RNG is a Mulberry32 pseudo-random number generator over 32-bit state.
// The bit-mixing sequence is fixed: the same seed must yield the same maze
// on every platform and in every port of the game, so the daily puzzle is
// identical for all players.
type RNG struct {
	state uint32
}

// NewRNG creates a generator from a 32-bit seed.
func NewRNG(seed int32) *RNG {
	return &RNG{state: uint32(seed)}
}

// Unit advances the generator and returns a float64 in [0, 1).
func (r *RNG) Unit() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns an int in [0, n).
func (r *RNG) Intn(n int) int {
	return int(r.Unit() * float64(n))
}

// Range returns a float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Unit()*(hi-lo)
}
