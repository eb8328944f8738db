// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// statistical.go: random realizations of a power-law spectrum.
//
// Model (square domains only):
//   - u      = linspace(0, π/spacing, n), the wavenumber axis (Nyquist at the end)
//   - Q[i,j] = |u_i + u_j|
//   - var    = 1                     for 0 < Q ≤ qr, when 2π/Q ≤ extent
//     var    = (Q/qr)^(−2(1+H))      for qr < Q ≤ qs
//     var    = 0                     otherwise (including the DC bin Q = 0)
//   - F[i,j] = N(0,1)·sqrt(var[i,j]), one draw per bin in row-major order
//   - h      = Re(IFFT2(F))
//
// Q is the magnitude of the sum of the two axis wavenumbers, not the
// Euclidean norm; the draws are real normals, not complex normals.
//
// A bin with Q exactly equal to qr belongs to the plateau. Strict masks on
// both sides (1/Q > 1/qr, 1/Q < 1/qr) would leave that ring at zero variance;
// the power law is 1 at qr, so closing the hole keeps the spectrum continuous.

package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
)

const (
	opNewStatistical = "NewStatistical"
	opVariance       = "Statistical.VarianceProfile"
	opStatistical    = "Statistical.Discretise"
)

// Defaults used by DefaultStatistical.
const (
	DefaultStatisticalHurst   = 2.0
	DefaultStatisticalRollOff = 0.05
	DefaultStatisticalCutoff  = 10.0
)

// Statistical draws a new surface from a power-law spectrum on every call.
type Statistical struct {
	h, qr, qs float64
	src       Source
}

// NewStatistical returns a synthesizer with Hurst exponent h, roll-off
// wavenumber qr and cut-off wavenumber qs.
//
// Reads options: WithSeed/WithRand/WithSource.
//
// Errors: ErrNonFinite (h), ErrNonPositiveWavenumber (qr, qs).
func NewStatistical(h, qr, qs float64, opts ...Option) (*Statistical, error) {
	if !isFinite(h) {
		return nil, fmt.Errorf("%s: %w", opNewStatistical, paramErrorf("H", h, ErrNonFinite))
	}
	if !isFinite(qr) || qr <= 0 {
		return nil, fmt.Errorf("%s: %w", opNewStatistical, paramErrorf("qr", qr, ErrNonPositiveWavenumber))
	}
	if !isFinite(qs) || qs <= 0 {
		return nil, fmt.Errorf("%s: %w", opNewStatistical, paramErrorf("qs", qs, ErrNonPositiveWavenumber))
	}
	cfg := newConfig(opts...)

	return &Statistical{h: h, qr: qr, qs: qs, src: cfg.src}, nil
}

// DefaultStatistical uses H=2, qr=0.05, qs=10.
func DefaultStatistical(opts ...Option) *Statistical {
	s, _ := NewStatistical(DefaultStatisticalHurst, DefaultStatisticalRollOff, DefaultStatisticalCutoff, opts...)

	return s
}

// Kind returns KindStatistical.
func (s *Statistical) Kind() Kind { return KindStatistical }

// Hurst returns the Hurst exponent H.
func (s *Statistical) Hurst() float64 { return s.h }

// RollOff returns qr.
func (s *Statistical) RollOff() float64 { return s.qr }

// Cutoff returns qs.
func (s *Statistical) Cutoff() float64 { return s.qs }

// VarianceProfile returns the variance of every wavenumber bin for g.
// It depends on the grid and is recomputed on every call.
//
// Errors: ErrGridValidation (grid.ErrNonSquare for non-square domains).
func (s *Statistical) VarianceProfile(g grid.Grid) (*field.Field, error) {
	shape, v, err := s.variance(opVariance, g)
	if err != nil {
		return nil, err
	}

	return publish(opVariance, shape, v)
}

func (s *Statistical) variance(op string, g grid.Grid) ([]int, []float64, error) {
	if err := g.ValidateSquare(); err != nil {
		return nil, nil, gridErrorf(op, err)
	}
	shape, err := g.Shape()
	if err != nil {
		return nil, nil, gridErrorf(op, err)
	}
	n := shape[0]
	u := floats.Span(make([]float64, n), 0, math.Pi/g.Spacing)
	extent := g.Extent[0]
	slope := -2 * (1 + s.h)

	v := make([]float64, n*n)
	var i, j int
	var q float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			q = math.Abs(u[i] + u[j])
			switch {
			case q == 0:
				// DC bin: its wavelength never fits the domain.
			case q <= s.qr:
				if tau/q <= extent {
					v[i*n+j] = 1
				}
			case q <= s.qs:
				v[i*n+j] = math.Pow(q/s.qr, slope)
			}
		}
	}

	return shape, v, nil
}

// Discretise draws one realization on the square grid g. Two calls with the
// same grid return statistically independent fields.
//
// Errors: ErrGridValidation (grid.ErrNonSquare for non-square domains), ErrNonFinite.
//
// Complexity: O(n² log n) for an n×n grid.
func (s *Statistical) Discretise(g grid.Grid) (*field.Field, error) {
	shape, v, err := s.variance(opStatistical, g)
	if err != nil {
		return nil, err
	}
	n := shape[0]

	spectrum := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		spectrum[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			spectrum[i][j] = s.src.NormFloat64() * math.Sqrt(v[i*n+j])
		}
	}

	// IFFT2Real normalizes by 1/(n·n).
	inv := fft.IFFT2Real(spectrum)
	out := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[i*n+j] = real(inv[i][j])
		}
	}

	return publish(opStatistical, shape, out)
}
