// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// discrete.go: surfaces built from an explicit list of tones.
//
// Model:
//   - 1D: h(x)   = Re Σ_i a_i·exp(−i·2π·f_i·x)
//   - 2D: h(x,y) = Re Σ_i [a_i·exp(−i·2π·f_i·x) + a_i·exp(−i·2π·f_i·y)]
//
// The 2D field is the superposition of two orthogonal 1D wave fields sharing
// one tone list, not a plane wave exp(i(fx·x+fy·y)). Coordinates are centered:
// x ∈ [−extent/2, extent/2].

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
)

const (
	opNewDiscrete      = "NewDiscrete"
	opNewDiscretePolar = "NewDiscretePolar"
	opDiscrete         = "Discrete.Discretise"
)

// Component is one tone: a frequency in cycles per unit length and its
// complex amplitude amplitude·e^(i·phase).
type Component struct {
	Frequency float64
	Amplitude complex128
}

// Discrete is a surface containing only specific frequency components.
// It is immutable after construction.
type Discrete struct {
	freqs []float64
	amps  []complex128
	dims  int
}

// NewDiscrete builds a surface from pre-combined complex amplitudes.
//
// Reads options: WithDimensions. WithRandomPhases is rejected with
// ErrPhaseConflict because the phases are already part of the amplitudes.
//
// Errors: ErrNoFrequencies, ErrLengthMismatch, ErrPhaseConflict, ErrNonFinite.
func NewDiscrete(frequencies []float64, amplitudes []complex128, opts ...Option) (*Discrete, error) {
	cfg := newConfig(opts...)
	if cfg.randomPhases {
		return nil, fmt.Errorf("%s: %w", opNewDiscrete, ErrPhaseConflict)
	}
	if err := checkFrequencies(opNewDiscrete, frequencies); err != nil {
		return nil, err
	}
	if len(amplitudes) != len(frequencies) {
		return nil, fmt.Errorf("%s: %d frequencies, %d amplitudes: %w",
			opNewDiscrete, len(frequencies), len(amplitudes), ErrLengthMismatch)
	}
	for i, a := range amplitudes {
		if cmplx.IsNaN(a) || cmplx.IsInf(a) {
			return nil, fmt.Errorf("%s: amplitude %d: %w", opNewDiscrete, i, ErrNonFinite)
		}
	}

	return &Discrete{
		freqs: append([]float64(nil), frequencies...),
		amps:  append([]complex128(nil), amplitudes...),
		dims:  cfg.dims,
	}, nil
}

// NewDiscretePolar builds a surface from real amplitudes and phases in radians.
// A nil amplitudes slice means [1]; a nil phases slice means [0]. The three
// slices must have equal length. With WithRandomPhases, phases must be nil and
// one uniform phase in [0, 2π) is drawn per tone, here and only here.
//
// Reads options: WithDimensions, WithRandomPhases, WithSeed/WithRand/WithSource.
//
// Errors: ErrNoFrequencies, ErrLengthMismatch, ErrPhaseConflict, ErrNonFinite.
func NewDiscretePolar(frequencies, amplitudes, phases []float64, opts ...Option) (*Discrete, error) {
	cfg := newConfig(opts...)
	if err := checkFrequencies(opNewDiscretePolar, frequencies); err != nil {
		return nil, err
	}
	if amplitudes == nil {
		amplitudes = []float64{1}
	}
	if cfg.randomPhases {
		if phases != nil {
			return nil, fmt.Errorf("%s: %w", opNewDiscretePolar, ErrPhaseConflict)
		}
		phases = make([]float64, len(frequencies))
		for i := range phases {
			phases[i] = tau * cfg.src.Float64()
		}
	}
	if phases == nil {
		phases = []float64{0}
	}
	if len(frequencies) != len(amplitudes) || len(amplitudes) != len(phases) {
		return nil, fmt.Errorf("%s: %d frequencies, %d amplitudes, %d phases: %w",
			opNewDiscretePolar, len(frequencies), len(amplitudes), len(phases), ErrLengthMismatch)
	}

	amps := make([]complex128, len(amplitudes))
	for i := range amplitudes {
		if !isFinite(amplitudes[i]) || !isFinite(phases[i]) {
			return nil, fmt.Errorf("%s: tone %d: %w", opNewDiscretePolar, i, ErrNonFinite)
		}
		amps[i] = complex(amplitudes[i], 0) * cmplx.Exp(complex(0, phases[i]))
	}

	return &Discrete{
		freqs: append([]float64(nil), frequencies...),
		amps:  amps,
		dims:  cfg.dims,
	}, nil
}

func checkFrequencies(op string, frequencies []float64) error {
	if len(frequencies) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoFrequencies)
	}
	for i, f := range frequencies {
		if !isFinite(f) {
			return fmt.Errorf("%s: frequency %d: %w", op, i, ErrNonFinite)
		}
	}

	return nil
}

// Kind returns KindDiscrete.
func (d *Discrete) Kind() Kind { return KindDiscrete }

// Dims returns the number of axes the surface is defined on.
func (d *Discrete) Dims() int { return d.dims }

// Frequencies returns a copy of the tone frequencies.
func (d *Discrete) Frequencies() []float64 { return append([]float64(nil), d.freqs...) }

// Amplitudes returns a copy of the complex amplitudes.
func (d *Discrete) Amplitudes() []complex128 { return append([]complex128(nil), d.amps...) }

// Components returns the tones as (frequency, amplitude) pairs.
func (d *Discrete) Components() []Component {
	out := make([]Component, len(d.freqs))
	for i := range d.freqs {
		out[i] = Component{Frequency: d.freqs[i], Amplitude: d.amps[i]}
	}

	return out
}

// Discretise evaluates the tones on g's centered axes.
// g must have Dims() axes.
//
// Errors: ErrGridValidation (with the grid sentinel), ErrDimensionMismatch,
// ErrNonFinite.
//
// Complexity: O(F·(n+m) + n·m) because Re is linear and the two axis sums
// are computed once each.
func (d *Discrete) Discretise(g grid.Grid) (*field.Field, error) {
	if err := g.Validate(); err != nil {
		return nil, gridErrorf(opDiscrete, err)
	}
	if g.Dims() != d.dims {
		return nil, fmt.Errorf("%s: grid has %d axes, surface has %d: %w", opDiscrete, g.Dims(), d.dims, ErrDimensionMismatch)
	}
	shape, err := g.Shape()
	if err != nil {
		return nil, gridErrorf(opDiscrete, err)
	}
	x, err := g.CenteredAxis(0)
	if err != nil {
		return nil, gridErrorf(opDiscrete, err)
	}
	wx := d.waves(x)
	if d.dims == 1 {
		return publish(opDiscrete, shape, wx)
	}

	y, err := g.CenteredAxis(1)
	if err != nil {
		return nil, gridErrorf(opDiscrete, err)
	}
	wy := d.waves(y)
	out := make([]float64, shape[0]*shape[1])
	var i, j int
	for i = 0; i < shape[0]; i++ {
		base := i * shape[1]
		for j = 0; j < shape[1]; j++ {
			out[base+j] = wx[i] + wy[j]
		}
	}

	return publish(opDiscrete, shape, out)
}

// waves returns Re Σ a_k·exp(−i·2π·f_k·t) for every t in axis.
func (d *Discrete) waves(axis []float64) []float64 {
	out := make([]float64, len(axis))
	for k, f := range d.freqs {
		a := d.amps[k]
		for i, t := range axis {
			out[i] += real(a * cmplx.Exp(complex(0, -tau*f*t)))
		}
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
