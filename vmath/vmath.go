package vmath

import "math"

// Epsilon is the tolerance used when comparing derived float quantities
const Epsilon = 1e-9

// TwoPi is a full rotation in radians
const TwoPi = 2 * math.Pi

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// Source yields uniformly distributed floats in [0, 1)
// *math/rand.Rand and *FastRand both satisfy it
type Source interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
