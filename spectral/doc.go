// Package spectral synthesizes pseudo-random height fields from
// frequency-domain descriptions.
//
// 🚀 What is spectral synthesis?
//
//	A rough surface is described by its spectrum: a set of wavenumbers, each
//	carrying a complex amplitude. Evaluating that spectrum on a spatial
//	grid produces a real height field, ready to be handed to a contact
//	mechanics solver as an opaque profile.
//
// ✨ Three synthesizers, one contract:
//   - Discrete: explicit (frequency, complex amplitude) tones, direct
//     trigonometric summation on a centered 1D or 2D grid.
//   - Statistical: power-law variance over a square wavenumber grid
//     (Hurst exponent H, roll-off qr, cut-off qs); one normal draw per bin and
//     an inverse 2D FFT. Every Discretise call is a NEW realization.
//   - HurstFractal: explicit lattice of harmonics of q0 with phases drawn
//     once at construction; every Discretise call resamples the SAME
//     realization, so grids of different resolution agree at shared points.
//
// All three implement Synthesizer and return a *field.Field whose shape is
// grid.Shape(). Surface wraps any Synthesizer with stored extent/spacing that
// later calls may reuse.
//
// ⚙️ Usage:
//
//	s, err := spectral.NewHurstFractal(1, 0.1, 5, 2, spectral.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, spectral.ErrConstruction) / ErrNumerical
//	}
//	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 0.01}
//	profile, err := s.Discretise(g)
//
// Randomness:
//
//	Draws go through a Source. The default is the process-wide math/rand
//	generator; WithSeed / WithRand / WithSource inject an explicit one.
//	Discrete (only with WithRandomPhases) and HurstFractal draw at
//	construction; Statistical draws on every Discretise call.
//
// Concurrency:
//
//	Spectra are immutable after construction and evaluation only reads them,
//	so Discrete and HurstFractal may be discretised from many goroutines.
//	Statistical advances its Source; a *rand.Rand must not be shared across
//	goroutines, the default global source may.
//
// Performance:
//
//   - Discrete:     O(F·(n+m) + n·m) for F tones on an n×m grid
//   - Statistical:  O(n² log n) (inverse FFT)
//   - HurstFractal: O((2N+1)²·n·m) direct summation, the hot path
package spectral
