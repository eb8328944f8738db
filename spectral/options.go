// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// options.go: functional options for synthesizer constructors.
//
// Contract:
//   - Options are functional (type Option func(*config)); later options
//     override earlier ones.
//   - Option constructors PANIC on meaningless inputs (nil source, unsupported
//     dimension); constructors and Discretise never panic.
//   - Which constructor reads which option is listed on each WithX.

package spectral

import "math/rand"

// Option customizes a synthesizer at construction time.
type Option func(*config)

// config aggregates every constructor knob.
type config struct {
	src          Source // random draws; never nil after newConfig
	dims         int    // Discrete only: 1 or 2
	randomPhases bool   // Discrete only
	mirrored     bool   // HurstFractal only
}

// Deterministic defaults.
const (
	defaultDims = 2
)

func newConfig(opts ...Option) config {
	cfg := config{
		src:  globalSource{},
		dims: defaultDims,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSource draws from src. Panics on nil.
// Read by: Discrete (WithRandomPhases), Statistical, HurstFractal.
func WithSource(src Source) Option {
	if src == nil {
		panic("spectral: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("spectral: WithRand(nil)")
	}
	return func(c *config) { c.src = r }
}

// WithSeed draws from a new *rand.Rand seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = rngFromSeed(seed) }
}

// WithDimensions sets the number of axes (1 or 2) of a Discrete surface.
// Panics on any other value.
func WithDimensions(d int) Option {
	if d != 1 && d != 2 {
		panic("spectral: WithDimensions(d not in {1,2})")
	}
	return func(c *config) { c.dims = d }
}

// WithRandomPhases makes NewDiscretePolar draw each phase uniformly in
// [0, 2π) at construction instead of taking explicit phases.
func WithRandomPhases() Option {
	return func(c *config) { c.randomPhases = true }
}

// WithMirroredPhases makes NewHurstFractal assign conjugate-mirrored phases,
// phase(−h,−k) = 2π − phase(h,k), instead of independent ones.
func WithMirroredPhases() Option {
	return func(c *config) { c.mirrored = true }
}
