// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with
// coordinates via %w); callers match with errors.Is. No exported function
// panics on user input.

package field

import "errors"

var (
	// ErrBadShape is returned when a shape has no axes, more than two axes,
	// or a non-positive axis length.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrOutOfRange indicates an index (or a sample coordinate) outside the field.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrIndexArity indicates that the number of indices does not match Dims().
	ErrIndexArity = errors.New("field: wrong number of indices")

	// ErrDimensionMismatch indicates a data length that does not match the shape,
	// or an operation requiring a different number of axes.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")
)
