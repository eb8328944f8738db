// SPDX-License-Identifier: MIT
// Package: asperity/spectral
//
// errors.go: error taxonomy for synthesis.
//
// Error policy:
//   - Three classes: ErrConstruction (malformed spectrum inputs, raised by
//     constructors), ErrGridValidation (raised at the start of Discretise,
//     before any computation) and ErrNumerical (values that would push NaN or
//     Inf into a height field).
//   - Every specific sentinel wraps exactly one class; errors.Is matches both.
//   - Grid failures keep the grid package sentinel in the chain as well, so
//     errors.Is(err, grid.ErrNonSquare) also holds.
//   - No partial profile is published after a failed call.

package spectral

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	// ErrConstruction is the class of malformed or mismatched spectrum inputs.
	ErrConstruction = errors.New("spectral: invalid spectrum parameters")

	// ErrGridValidation is the class of grids a synthesizer cannot discretise on.
	ErrGridValidation = errors.New("spectral: invalid grid")

	// ErrNumerical is the class of inputs or results that are not finite.
	ErrNumerical = errors.New("spectral: numerical error")
)

var (
	// ErrNoFrequencies indicates an empty frequency list.
	ErrNoFrequencies = fmt.Errorf("%w: no frequencies given", ErrConstruction)

	// ErrLengthMismatch indicates frequency, amplitude and phase lists of unequal length.
	ErrLengthMismatch = fmt.Errorf("%w: frequencies, amplitudes and phases must be equal length", ErrConstruction)

	// ErrPhaseConflict indicates phases supplied twice: explicit phases together
	// with WithRandomPhases, or WithRandomPhases on pre-combined complex amplitudes.
	ErrPhaseConflict = fmt.Errorf("%w: phases given more than once", ErrConstruction)

	// ErrEmptyLattice indicates a cut-off wavenumber that rounds to zero harmonics.
	ErrEmptyLattice = fmt.Errorf("%w: cut-off wavenumber yields no harmonics", ErrConstruction)

	// ErrDimensionMismatch indicates a grid whose number of axes the synthesizer
	// does not support, or coordinate slices of unequal length.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrGridValidation)

	// ErrNotCovered indicates an interpolation reference grid smaller than the target.
	ErrNotCovered = fmt.Errorf("%w: reference grid does not cover target grid", ErrGridValidation)

	// ErrNonPositiveWavenumber indicates a zero, negative or non-finite wavenumber
	// passed where a power law or a harmonic ratio needs a positive one.
	ErrNonPositiveWavenumber = fmt.Errorf("%w: wavenumber must be finite and positive", ErrNumerical)

	// ErrNonFinite indicates a NaN or Inf input parameter or height value.
	ErrNonFinite = fmt.Errorf("%w: value is not finite", ErrNumerical)
)

// gridErrorf places a grid package failure in the ErrGridValidation class.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrGridValidation, err)
}

// paramErrorf attaches a parameter name and value to a sentinel.
func paramErrorf(name string, v float64, err error) error {
	return fmt.Errorf("%s=%g: %w", name, v, err)
}
