// Package rng holds the process-wide random source used by the simulation.
//
// A single Source is created at startup (New) and passed explicitly to every
// constructor that needs randomness. Nothing reseeds it mid-run.
package rng

import (
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// New returns a Source seeded with seed. A zero seed picks one from the clock.
func New(seed int64) (Source, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Range returns a uniform integer in the closed interval [lo, hi].
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// resolution is the number of steps Float divides its interval into.
const resolution = 1 << 30

// Float returns a uniform value in [lo, hi].
func Float(src Source, lo, hi float32) float32 {
	f := float32(Range(src, 0, resolution)) / resolution
	return lo + (hi-lo)*f
}
