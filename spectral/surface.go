// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
)

// ErrNilSynthesizer indicates a Surface built around a nil Synthesizer.
var ErrNilSynthesizer = errors.New("spectral: nil synthesizer")

// Surface pairs a Synthesizer with a stored extent and spacing, and keeps the
// last successfully published profile.
//
// It is not safe for concurrent mutation.
type Surface struct {
	synth   Synthesizer
	grid    grid.Grid
	profile *field.Field
}

// NewSurface wraps s with an initially unset grid.
func NewSurface(s Synthesizer) *Surface {
	return &Surface{synth: s}
}

// Synthesizer returns the wrapped synthesizer.
func (s *Surface) Synthesizer() Synthesizer { return s.synth }

// SetExtent stores a copy of extent for later Discretise calls.
func (s *Surface) SetExtent(extent []float64) {
	s.grid.Extent = append([]float64(nil), extent...)
}

// SetSpacing stores the grid spacing for later Discretise calls.
func (s *Surface) SetSpacing(spacing float64) {
	s.grid.Spacing = spacing
}

// Grid returns a copy of the stored grid.
func (s *Surface) Grid() grid.Grid {
	return grid.Grid{Extent: append([]float64(nil), s.grid.Extent...), Spacing: s.grid.Spacing}
}

// Discretise stores extent (when non-nil) and spacing (when non-zero), then
// discretises the synthesizer on the stored grid. On success the profile is
// kept and a caller-owned copy is returned; on failure the previously kept
// profile is left untouched.
func (s *Surface) Discretise(extent []float64, spacing float64) (*field.Field, error) {
	if s.synth == nil {
		return nil, ErrNilSynthesizer
	}
	if extent != nil {
		s.SetExtent(extent)
	}
	if spacing != 0 {
		s.SetSpacing(spacing)
	}
	f, err := s.synth.Discretise(s.Grid())
	if err != nil {
		return nil, err
	}
	s.profile = f

	return f.Clone(), nil
}

// Profile returns a copy of the last published profile, or nil before the
// first successful Discretise.
func (s *Surface) Profile() *field.Field {
	if s.profile == nil {
		return nil
	}

	return s.profile.Clone()
}
