package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness source used by all engines. It is the subset of
// *math/rand.Rand the games actually draw from, kept as an interface so
// tests can inject a seeded source and replay identical sequences (food
// placement, adversary walks, word selection, AI randomization).
type Rand interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64

	// Int63 returns a non-negative int64, used to derive restart seeds.
	Int63() int64
}

// NewRand creates a seeded randomness source. A zero seed falls back to the
// current time; engines should receive resolved seeds from the platform so
// their own sequences stay reproducible.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
