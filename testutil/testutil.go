package testutil

import (
	"math/rand"

	"github.com/hupe1980/rvec"
)

// RNG encapsulates a seeded random number generator so tests can build
// reproducible vector fixtures.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Components returns n uniform values in [-1, 1).
func (r *RNG) Components(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()*2 - 1
	}
	return out
}

// Vector returns a random vector of kind k with components in [-1, 1).
func (r *RNG) Vector(k rvec.Kind) rvec.Vector {
	v, err := rvec.New(k, r.Components(k.Dim())...)
	if err != nil {
		panic(err)
	}
	return v
}

// Vectors returns count random vectors of kind k.
func (r *RNG) Vectors(count int, k rvec.Kind) []rvec.Vector {
	out := make([]rvec.Vector, count)
	for i := range out {
		out[i] = r.Vector(k)
	}
	return out
}
