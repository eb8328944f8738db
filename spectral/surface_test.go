package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asperity/grid"
	"github.com/katalvlaran/asperity/spectral"
)

func TestSurface_ReusesStoredGrid(t *testing.T) {
	s, err := spectral.NewHurstFractal(1, 0.1, 3, 1.5, spectral.WithSeed(1))
	require.NoError(t, err)
	surf := spectral.NewSurface(s)
	assert.Nil(t, surf.Profile())
	assert.Same(t, s, surf.Synthesizer())

	first, err := surf.Discretise([]float64{1, 1}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 11}, first.Shape())

	// Only the spacing changes; the extent is reused.
	second, err := surf.Discretise(nil, 0.05)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 21}, second.Shape())
	assert.Equal(t, grid.Grid{Extent: []float64{1, 1}, Spacing: 0.05}, surf.Grid())

	// Both stored: nothing passed.
	third, err := surf.Discretise(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, second.Data(), third.Data())
}

func TestSurface_FailureKeepsProfile(t *testing.T) {
	d, err := spectral.NewDiscretePolar([]float64{1}, nil, nil, spectral.WithDimensions(1))
	require.NoError(t, err)
	surf := spectral.NewSurface(d)

	_, err = surf.Discretise(nil, 0)
	assert.ErrorIs(t, err, grid.ErrExtentUnset)
	assert.Nil(t, surf.Profile())

	ok, err := surf.Discretise([]float64{1}, 0.25)
	require.NoError(t, err)

	_, err = surf.Discretise(nil, 0.3)
	assert.ErrorIs(t, err, spectral.ErrGridValidation)
	assert.Equal(t, ok.Data(), surf.Profile().Data(), "failed call must not publish")
	// The invalid spacing was still stored.
	assert.Equal(t, 0.3, surf.Grid().Spacing)
}

func TestSurface_ProfileIsCopy(t *testing.T) {
	d, err := spectral.NewDiscretePolar([]float64{2}, nil, nil, spectral.WithDimensions(1))
	require.NoError(t, err)
	surf := spectral.NewSurface(d)
	extent := []float64{1}
	out, err := surf.Discretise(extent, 0.5)
	require.NoError(t, err)

	require.NoError(t, out.Set(99, 0))
	extent[0] = 7
	v, err := surf.Profile().At(0)
	require.NoError(t, err)
	assert.NotEqual(t, 99.0, v)
	assert.Equal(t, []float64{1}, surf.Grid().Extent)
}

func TestSurface_NilSynthesizer(t *testing.T) {
	_, err := spectral.NewSurface(nil).Discretise([]float64{1}, 0.1)
	assert.ErrorIs(t, err, spectral.ErrNilSynthesizer)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "discreteFreq", spectral.KindDiscrete.String())
	assert.Equal(t, "continuousFreq", spectral.KindStatistical.String())
	assert.Equal(t, "hurstFractal", spectral.KindHurstFractal.String())
	assert.Equal(t, "unknown", spectral.Kind(9).String())
}
