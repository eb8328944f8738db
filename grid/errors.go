// SPDX-License-Identifier: MIT
// Package: asperity/grid
//
// errors.go: sentinel errors for grid validation.
//
// Error policy:
//   - Every validation failure wraps the class sentinel ErrInvalid, so callers
//     may branch either on the class or on the precise cause via errors.Is.
//   - Context (axis index, offending value) is attached with %w at the
//     detection site; sentinels themselves carry no parameters.

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalid is the class of every grid validation failure.
var ErrInvalid = errors.New("grid: invalid grid")

var (
	// ErrExtentUnset indicates that no extent was provided.
	ErrExtentUnset = fmt.Errorf("%w: extent is not set", ErrInvalid)

	// ErrSpacingUnset indicates that the grid spacing is zero (never assigned).
	ErrSpacingUnset = fmt.Errorf("%w: grid spacing is not set", ErrInvalid)

	// ErrDimensions indicates an extent with a number of axes other than 1 or 2.
	ErrDimensions = fmt.Errorf("%w: extent must have 1 or 2 axes", ErrInvalid)

	// ErrSampleCount indicates that extent/spacing does not yield a positive
	// integer number of intervals along some axis.
	ErrSampleCount = fmt.Errorf("%w: extent and spacing imply a non-positive or non-integer sample count", ErrInvalid)

	// ErrNonSquare indicates that a square two-dimensional domain was required.
	ErrNonSquare = fmt.Errorf("%w: domain must be square", ErrInvalid)

	// ErrAxis indicates an axis index outside [0, Dims()).
	ErrAxis = fmt.Errorf("%w: axis index out of range", ErrInvalid)
)

// axisErrorf attaches the axis index to a grid sentinel.
func axisErrorf(axis int, err error) error {
	return fmt.Errorf("axis %d: %w", axis, err)
}
