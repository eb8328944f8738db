// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// rng.go: random sources for phase and amplitude draws.
//
// Policy:
//   - Without an option every synthesizer draws from the process-wide
//     math/rand generator (automatically seeded, goroutine-safe).
//   - WithSeed / WithRand / WithSource make draws reproducible.
//   - A *rand.Rand is NOT goroutine-safe; do not share one across goroutines.

package spectral

import "math/rand"

// Source is the random generator a synthesizer draws from.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
}

var _ Source = (*rand.Rand)(nil)

// globalSource forwards to the top-level math/rand functions.
type globalSource struct{}

func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
