package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asperity/grid"
	"github.com/katalvlaran/asperity/spectral"
)

// TestDiscrete_SingleToneIsCosine checks profile(x) == cos(2πfx) for a unit,
// zero-phase tone on a centered 1D axis.
func TestDiscrete_SingleToneIsCosine(t *testing.T) {
	const f = 3.0
	d, err := spectral.NewDiscretePolar([]float64{f}, nil, nil, spectral.WithDimensions(1))
	require.NoError(t, err)

	g := grid.Grid{Extent: []float64{1}, Spacing: 0.01}
	p, err := d.Discretise(g)
	require.NoError(t, err)
	require.Equal(t, []int{101}, p.Shape())

	x, err := g.CenteredAxis(0)
	require.NoError(t, err)
	for i, xi := range x {
		v, err := p.At(i)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(2*math.Pi*f*xi), v, 1e-12, "x=%g", xi)
	}
}

// TestDiscrete_PhaseShiftsTone verifies amplitude·e^(i·phase) combination.
func TestDiscrete_PhaseShiftsTone(t *testing.T) {
	d, err := spectral.NewDiscretePolar([]float64{2}, []float64{0.5}, []float64{math.Pi / 3}, spectral.WithDimensions(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, real(d.Amplitudes()[0]), 1e-15)
	assert.InDelta(t, 0.5*math.Sin(math.Pi/3), imag(d.Amplitudes()[0]), 1e-15)

	g := grid.Grid{Extent: []float64{2}, Spacing: 0.1}
	p, err := d.Discretise(g)
	require.NoError(t, err)
	x, _ := g.CenteredAxis(0)
	for i, xi := range x {
		v, _ := p.At(i)
		assert.InDelta(t, 0.5*math.Cos(math.Pi/3-2*math.Pi*2*xi), v, 1e-12)
	}
}

// TestDiscrete_2DIsAxisSuperposition checks h(x,y) = w(x) + w(y).
func TestDiscrete_2DIsAxisSuperposition(t *testing.T) {
	d, err := spectral.NewDiscrete([]float64{1, 4}, []complex128{1, complex(0, 0.2)})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Dims())

	g := grid.Grid{Extent: []float64{1, 0.5}, Spacing: 0.05}
	p, err := d.Discretise(g)
	require.NoError(t, err)
	require.Equal(t, []int{21, 11}, p.Shape())

	wave := func(t float64) float64 {
		return math.Cos(2*math.Pi*t) + 0.2*math.Sin(2*math.Pi*4*t)
	}
	x, _ := g.CenteredAxis(0)
	y, _ := g.CenteredAxis(1)
	for i := range x {
		for j := range y {
			v, err := p.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, wave(x[i])+wave(y[j]), v, 1e-12)
		}
	}
}

func TestDiscretePolar_LengthMismatch(t *testing.T) {
	_, err := spectral.NewDiscretePolar([]float64{1, 2, 3}, []float64{1, 1}, []float64{0, 0, 0})
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)
	assert.ErrorIs(t, err, spectral.ErrConstruction)

	// Default phases are a single zero, so three tones need explicit phases.
	_, err = spectral.NewDiscretePolar([]float64{1, 2, 3}, []float64{1, 1, 1}, nil)
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)
}

func TestDiscrete_ComplexLengthMismatch(t *testing.T) {
	_, err := spectral.NewDiscrete([]float64{1, 2}, []complex128{1})
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)

	_, err = spectral.NewDiscrete(nil, nil)
	assert.ErrorIs(t, err, spectral.ErrNoFrequencies)
	assert.ErrorIs(t, err, spectral.ErrConstruction)
}

// TestDiscretePolar_FreshDefaults ensures the implicit [1]/[0] defaults are
// not shared between constructions.
func TestDiscretePolar_FreshDefaults(t *testing.T) {
	a, err := spectral.NewDiscretePolar([]float64{5}, nil, nil)
	require.NoError(t, err)
	amps := a.Amplitudes()
	amps[0] = 42

	b, err := spectral.NewDiscretePolar([]float64{7}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1}, b.Amplitudes())
	assert.Equal(t, []complex128{1}, a.Amplitudes())
	assert.Equal(t, []spectral.Component{{Frequency: 7, Amplitude: 1}}, b.Components())
}

func TestDiscrete_PhaseConflict(t *testing.T) {
	_, err := spectral.NewDiscrete([]float64{1}, []complex128{1}, spectral.WithRandomPhases())
	assert.ErrorIs(t, err, spectral.ErrPhaseConflict)

	_, err = spectral.NewDiscretePolar([]float64{1}, nil, []float64{0}, spectral.WithRandomPhases())
	assert.ErrorIs(t, err, spectral.ErrPhaseConflict)
}

// TestDiscrete_RandomPhasesAtConstruction checks that seeded random phases are
// reproducible and fixed once the surface exists.
func TestDiscrete_RandomPhasesAtConstruction(t *testing.T) {
	freqs := []float64{1, 2, 3}
	amps := []float64{1, 0.5, 0.25}
	a, err := spectral.NewDiscretePolar(freqs, amps, nil, spectral.WithRandomPhases(), spectral.WithSeed(11))
	require.NoError(t, err)
	b, err := spectral.NewDiscretePolar(freqs, amps, nil, spectral.WithRandomPhases(), spectral.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a.Amplitudes(), b.Amplitudes())
	for i, amp := range a.Amplitudes() {
		assert.InDelta(t, amps[i], math.Hypot(real(amp), imag(amp)), 1e-12)
	}

	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 0.1}
	p1, err := a.Discretise(g)
	require.NoError(t, err)
	p2, err := a.Discretise(g)
	require.NoError(t, err)
	assert.Equal(t, p1.Data(), p2.Data())
}

func TestDiscrete_GridErrors(t *testing.T) {
	d, err := spectral.NewDiscretePolar([]float64{1}, nil, nil)
	require.NoError(t, err)

	_, err = d.Discretise(grid.Grid{Extent: []float64{1, 1}})
	assert.ErrorIs(t, err, spectral.ErrGridValidation)
	assert.ErrorIs(t, err, grid.ErrSpacingUnset)

	_, err = d.Discretise(grid.Grid{Extent: []float64{1}, Spacing: 0.1})
	assert.ErrorIs(t, err, spectral.ErrDimensionMismatch)
	assert.ErrorIs(t, err, spectral.ErrGridValidation)
}

// TestDiscrete_HugeGridFails checks that an overflowing sample count is a
// grid validation error, not an allocation panic.
func TestDiscrete_HugeGridFails(t *testing.T) {
	d, err := spectral.NewDiscretePolar([]float64{1}, nil, nil, spectral.WithDimensions(1))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = d.Discretise(grid.Grid{Extent: []float64{1e19}, Spacing: 1})
	})
	assert.ErrorIs(t, err, spectral.ErrGridValidation)
	assert.ErrorIs(t, err, grid.ErrSampleCount)
}

func TestDiscrete_NonFinite(t *testing.T) {
	_, err := spectral.NewDiscretePolar([]float64{math.NaN()}, nil, nil)
	assert.ErrorIs(t, err, spectral.ErrNumerical)

	_, err = spectral.NewDiscrete([]float64{1}, []complex128{complex(math.Inf(1), 0)})
	assert.ErrorIs(t, err, spectral.ErrNonFinite)
}

func TestWithDimensions_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { spectral.WithDimensions(3) })
	assert.Panics(t, func() { spectral.WithRand(nil) })
	assert.Panics(t, func() { spectral.WithSource(nil) })
}
