// Package random provides the seeded generator used for parameter
// initialization.
//
// The algorithm is fixed and part of the public contract: a 32-bit Mersenne
// Twister (MT19937, init_genrand seeding) feeding the libstdc++
// generate_canonical<double, 53> reduction. A Uniform therefore yields the
// same sequence as std::mt19937 + std::uniform_real_distribution<double>
// for the same seed and bounds.
package random

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
)

const (
	two32 = 1 << 32
	two64 = 1 << 64
)

// Uniform draws float64 values from the half-open interval [lo, hi).
type Uniform struct {
	src    *prng.MT19937
	lo, hi float64
}

// NewUniform returns a Uniform over [lo, hi) seeded with seed.
func NewUniform(seed uint32, lo, hi float64) *Uniform {
	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return &Uniform{src: src, lo: lo, hi: hi}
}

// Canonical returns the next value in [0, 1), consuming two 32-bit outputs.
func (u *Uniform) Canonical() float64 {
	g1 := float64(u.src.Uint32())
	g2 := float64(u.src.Uint32())
	// Explicit conversions keep the compiler from fusing operations.
	sum := g1 + float64(g2*two32)
	r := sum / two64
	if r >= 1 {
		r = math.Nextafter(1, 0)
	}
	return r
}

// Float64 returns the next value in [lo, hi).
func (u *Uniform) Float64() float64 {
	return float64(u.Canonical()*(u.hi-u.lo)) + u.lo
}

// Fill overwrites every element of dst with successive draws.
func (u *Uniform) Fill(dst []float64) {
	for i := range dst {
		dst[i] = u.Float64()
	}
}
