// Package asperity synthesizes rough surface height fields from spectra,
// for use as input profiles of contact mechanics simulations.
//
// 🚀 What is asperity?
//
//	A small numerical library that turns a frequency-domain description of a
//	surface into a sampled height field:
//		• Grids: 1D and 2D regular domains with inclusive endpoints
//		• Fields: row-major height buffers with bounds-checked access
//		• Discrete tones: direct trigonometric summation
//		• Statistical spectra: power-law variance and an inverse 2D FFT
//		• Hurst fractals: fixed harmonic lattices resampled on any grid
//
// Under the hood, everything is organized under subpackages:
//
//	grid/     : extent and spacing, shapes, axes and coordinate meshes
//	field/    : the HeightField buffer, summaries and bilinear sampling
//	spectral/ : the three synthesizers, the Surface facade and the error classes
//	config/   : TOML run files that select and parameterize one synthesizer
//
// The asperity command (cmd/asperity) wraps config and spectral for shell use:
//
//	asperity fractal --q0 1 --q0-amp 0.1 --cutoff 5 --hurst 2 --seed 7
//	asperity run --config run.toml --dump > profile.txt
//
//	go get github.com/katalvlaran/asperity
package asperity
