// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// fractal.go: Hurst fractal surfaces on an explicit harmonic lattice.
//
// Model (Putignano, Afferrante, Carbone, Demelio):
//   - N = round(qCutOff/q0); harmonics (h, k) with h, k ∈ [−N, N]
//   - lattice index idx = r·(2N+1) + c, h = c − N, k = r − N
//   - wavevector q_idx = q0·(h, k)
//   - mean magnitude |m| = sqrt(q0Amp²·((h²+k²)/2)^(1−hurst)), zero at the origin
//   - phase φ uniform in [0, 2π), drawn ONCE at construction
//   - m = |m|·e^(iφ)
//   - h(x, y) = Σ_idx Re[m_idx·exp(−i·2π·(q_x·x + q_y·y))]
//
// Phases are independent per harmonic by default; because evaluation takes
// the real part explicitly, the height field is real without a symmetric
// spectrum. WithMirroredPhases enforces phase(−h,−k) = 2π − phase(h,k).

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
)

const (
	opNewHurstFractal = "NewHurstFractal"
	opFractal         = "HurstFractal.Discretise"
	opFractalPoints   = "HurstFractal.EvaluatePoints"
	opFractalInterp   = "HurstFractal.Interpolate"
)

// HurstFractal is a fixed fractal realization. Repeated Discretise calls
// resample the same surface; a new instance is a new realization.
type HurstFractal struct {
	q0, q0Amp, qCutOff, hurst float64
	n                         int

	// Per-harmonic spectrum in lattice order, immutable after construction.
	qkh    [][2]float64
	mean   []float64
	phases []float64
	mags   []complex128
}

// NewHurstFractal builds the harmonic lattice and draws its phases.
// Implementation:
//   - Stage 1: validate q0 and qCutOff (finite, > 0), q0Amp and hurst (finite).
//   - Stage 2: N = round(qCutOff/q0); reject N < 1.
//   - Stage 3: fill wavevectors and mean magnitudes in lattice order.
//   - Stage 4: draw (2N+1)² uniform phases; mirror them when requested.
//
// Reads options: WithMirroredPhases, WithSeed/WithRand/WithSource.
//
// Errors: ErrNonPositiveWavenumber, ErrNonFinite, ErrEmptyLattice.
//
// Complexity: O((2N+1)²) time and memory.
func NewHurstFractal(q0, q0Amp, qCutOff, hurst float64, opts ...Option) (*HurstFractal, error) {
	if !isFinite(q0) || q0 <= 0 {
		return nil, fmt.Errorf("%s: %w", opNewHurstFractal, paramErrorf("q0", q0, ErrNonPositiveWavenumber))
	}
	if !isFinite(qCutOff) || qCutOff <= 0 {
		return nil, fmt.Errorf("%s: %w", opNewHurstFractal, paramErrorf("q_cut_off", qCutOff, ErrNonPositiveWavenumber))
	}
	if !isFinite(q0Amp) {
		return nil, fmt.Errorf("%s: %w", opNewHurstFractal, paramErrorf("q0_amp", q0Amp, ErrNonFinite))
	}
	if !isFinite(hurst) {
		return nil, fmt.Errorf("%s: %w", opNewHurstFractal, paramErrorf("hurst", hurst, ErrNonFinite))
	}
	n := int(math.Round(qCutOff / q0))
	if n < 1 {
		return nil, fmt.Errorf("%s: q_cut_off/q0 = %g: %w", opNewHurstFractal, qCutOff/q0, ErrEmptyLattice)
	}
	cfg := newConfig(opts...)

	side := 2*n + 1
	size := side * side
	s := &HurstFractal{
		q0: q0, q0Amp: q0Amp, qCutOff: qCutOff, hurst: hurst, n: n,
		qkh:    make([][2]float64, size),
		mean:   make([]float64, size),
		phases: make([]float64, size),
		mags:   make([]complex128, size),
	}

	amp2 := q0Amp * q0Amp
	var r, c int
	for r = 0; r < side; r++ {
		k := float64(r - n)
		for c = 0; c < side; c++ {
			h := float64(c - n)
			idx := r*side + c
			s.qkh[idx] = [2]float64{q0 * h, q0 * k}
			if h == 0 && k == 0 {
				continue // DC term suppressed
			}
			s.mean[idx] = math.Sqrt(amp2 * math.Pow((h*h+k*k)/2, 1-hurst))
			if !isFinite(s.mean[idx]) {
				return nil, fmt.Errorf("%s: magnitude of harmonic (%g,%g): %w", opNewHurstFractal, h, k, ErrNonFinite)
			}
		}
	}

	for idx := range s.phases {
		s.phases[idx] = tau * cfg.src.Float64()
	}
	if cfg.mirrored {
		mirrorPhases(s.phases)
	}
	for idx := range s.mags {
		s.mags[idx] = cmplx.Rect(s.mean[idx], s.phases[idx])
	}

	return s, nil
}

// mirrorPhases rewrites the upper half of the lattice as the conjugate mirror
// of the lower half. (h,k) at idx and (−h,−k) at size−1−idx; the origin is 0.
func mirrorPhases(phases []float64) {
	size := len(phases)
	center := size / 2
	for idx := 0; idx < center; idx++ {
		phases[size-1-idx] = math.Mod(tau-phases[idx], tau)
	}
	phases[center] = 0
}

// Kind returns KindHurstFractal.
func (s *HurstFractal) Kind() Kind { return KindHurstFractal }

// Harmonics returns N, the largest harmonic index on each axis.
func (s *HurstFractal) Harmonics() int { return s.n }

// Wavevectors returns q0·(h, k) for every lattice point, in lattice order.
func (s *HurstFractal) Wavevectors() [][2]float64 { return append([][2]float64(nil), s.qkh...) }

// Magnitudes returns the complex magnitudes |m|·e^(iφ), in lattice order.
func (s *HurstFractal) Magnitudes() []complex128 { return append([]complex128(nil), s.mags...) }

// MeanMagnitudes returns |m| for every lattice point, in lattice order.
func (s *HurstFractal) MeanMagnitudes() []float64 { return append([]float64(nil), s.mean...) }

// Phases returns φ in [0, 2π) for every lattice point, in lattice order.
func (s *HurstFractal) Phases() []float64 { return append([]float64(nil), s.phases...) }

// Discretise evaluates the fixed spectrum by direct summation on g's mesh.
//
// Errors: ErrGridValidation, ErrDimensionMismatch (g must be 2D), ErrNonFinite.
//
// Complexity: O((2N+1)²·n·m) time, O(n·m) memory. This is the performance
// sensitive path of the package.
//
// TODO: add a zero-padded inverse-FFT evaluation path for large lattices; this
// direct summation stays as the reference it must match.
func (s *HurstFractal) Discretise(g grid.Grid) (*field.Field, error) {
	if err := g.Validate(); err != nil {
		return nil, gridErrorf(opFractal, err)
	}
	if g.Dims() != 2 {
		return nil, fmt.Errorf("%s: grid has %d axes: %w", opFractal, g.Dims(), ErrDimensionMismatch)
	}
	shape, err := g.Shape()
	if err != nil {
		return nil, gridErrorf(opFractal, err)
	}
	xs, ys, err := g.Points()
	if err != nil {
		return nil, gridErrorf(opFractal, err)
	}

	return publish(opFractal, shape, s.evaluate(xs, ys))
}

// EvaluatePoints evaluates the spectrum at arbitrary (xs[i], ys[i]) points.
//
// Errors: ErrDimensionMismatch for unequal lengths, ErrNonFinite for
// non-finite coordinates.
func (s *HurstFractal) EvaluatePoints(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%s: %d xs, %d ys: %w", opFractalPoints, len(xs), len(ys), ErrDimensionMismatch)
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("%s: point %d: %w", opFractalPoints, i, ErrNonFinite)
		}
	}

	return s.evaluate(xs, ys), nil
}

// Interpolate evaluates the spectrum exactly on reference and bilinearly
// samples that profile at target's mesh points. reference must cover target.
//
// Complexity: O((2N+1)²·|reference| + |target|).
func (s *HurstFractal) Interpolate(target, reference grid.Grid) (*field.Field, error) {
	if err := target.Validate(); err != nil {
		return nil, gridErrorf(opFractalInterp, err)
	}
	if target.Dims() != 2 {
		return nil, fmt.Errorf("%s: target has %d axes: %w", opFractalInterp, target.Dims(), ErrDimensionMismatch)
	}
	if err := reference.Validate(); err != nil {
		return nil, gridErrorf(opFractalInterp, err)
	}
	if !reference.Covers(target) {
		return nil, fmt.Errorf("%s: reference %v, target %v: %w", opFractalInterp, reference.Extent, target.Extent, ErrNotCovered)
	}
	ref, err := s.Discretise(reference)
	if err != nil {
		return nil, err
	}
	shape, err := target.Shape()
	if err != nil {
		return nil, gridErrorf(opFractalInterp, err)
	}
	xs, ys, err := target.Points()
	if err != nil {
		return nil, gridErrorf(opFractalInterp, err)
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i], err = ref.Bilinear(reference.Spacing, xs[i], ys[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opFractalInterp, ErrNotCovered, err)
		}
	}

	return publish(opFractalInterp, shape, out)
}

// evaluate is the direct summation kernel.
// Re[m·e^(−iθ)] = Re(m)·cos θ + Im(m)·sin θ, with θ = 2π(q_x·x + q_y·y).
func (s *HurstFractal) evaluate(xs, ys []float64) []float64 {
	out := make([]float64, len(xs))
	var p, idx int
	var theta, sin, cos float64
	for idx = range s.mags {
		if s.mean[idx] == 0 {
			continue
		}
		re, im := real(s.mags[idx]), imag(s.mags[idx])
		qx, qy := s.qkh[idx][0], s.qkh[idx][1]
		for p = range xs {
			theta = tau * (qx*xs[p] + qy*ys[p])
			sin, cos = math.Sincos(theta)
			out[p] += re*cos + im*sin
		}
	}

	return out
}
