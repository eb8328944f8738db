// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
)

// Kind identifies one of the three synthesis strategies.
type Kind int

const (
	// KindDiscrete is direct summation over explicit tones.
	KindDiscrete Kind = iota
	// KindStatistical is one random realization of a power-law spectrum per call.
	KindStatistical
	// KindHurstFractal is a fixed fractal realization resampled on demand.
	KindHurstFractal
)

// String returns the surface type label.
func (k Kind) String() string {
	switch k {
	case KindDiscrete:
		return "discreteFreq"
	case KindStatistical:
		return "continuousFreq"
	case KindHurstFractal:
		return "hurstFractal"
	default:
		return "unknown"
	}
}

// Synthesizer turns a spectrum into a height field on a grid.
// Implementations: *Discrete, *Statistical, *HurstFractal.
type Synthesizer interface {
	// Kind reports the strategy.
	Kind() Kind
	// Discretise validates g and evaluates the spectrum on it. The returned
	// field belongs to the caller; its shape is g.Shape().
	Discretise(g grid.Grid) (*field.Field, error)
}

var (
	_ Synthesizer = (*Discrete)(nil)
	_ Synthesizer = (*Statistical)(nil)
	_ Synthesizer = (*HurstFractal)(nil)
)

// tau is 2π.
const tau = 2.0 * math.Pi

// publish converts a finished buffer into a field, mapping non-finite values
// into the ErrNumerical class.
func publish(op string, shape []int, data []float64) (*field.Field, error) {
	f, err := field.FromSlice(shape, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNonFinite, err)
	}

	return f, nil
}
