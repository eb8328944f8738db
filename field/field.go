// SPDX-License-Identifier: MIT

// Package field - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with offset i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the finite-only numeric policy from a single place.
//
// Complexity quicksheet:
//   - New/FromSlice: O(n); At/Set: O(1); Clone/Data: O(n).

package field

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFrom = "FromSlice"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// fieldErrorf wraps an error with a uniform Field context and callsite indices.
func fieldErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Field.%s(%v): %w", method, idx, err)
}

// Field is a real-valued height field.
//   - dims is 1 or 2.
//   - r,c are the row and column counts; a 1D field has c == 1.
//   - data is a flat buffer of length r*c in row-major order.
type Field struct {
	dims int
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Field)(nil)

// New allocates a zero field of the given shape (one or two positive lengths).
//
// Errors:
//   - ErrBadShape when the shape is empty, has more than two axes or a length <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(shape ...int) (*Field, error) {
	r, c, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return &Field{dims: len(shape), r: r, c: c, data: make([]float64, r*c)}, nil
}

// FromSlice copies data into a new field of the given shape.
// MAIN DESCRIPTION:
//   - Publication constructor used by synthesizers once a buffer is complete.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == product(shape).
//   - Stage 2: reject the whole buffer if any value is NaN or ±Inf.
//   - Stage 3: copy into an independent buffer.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf (wrapped with the first bad index).
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice(shape []int, data []float64) (*Field, error) {
	r, c, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("Field.%s: %d values for shape %v: %w", ctxFrom, len(data), shape, ErrDimensionMismatch)
	}
	for off, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fieldErrorf(ctxFrom, unflatten(len(shape), c, off), ErrNaNInf)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Field{dims: len(shape), r: r, c: c, data: buf}, nil
}

// checkShape validates a shape and returns (rows, cols).
func checkShape(shape []int) (r, c int, err error) {
	switch len(shape) {
	case 1:
		r, c = shape[0], 1
	case 2:
		r, c = shape[0], shape[1]
	default:
		return 0, 0, fmt.Errorf("%d axes: %w", len(shape), ErrBadShape)
	}
	if r <= 0 || c <= 0 {
		return 0, 0, fmt.Errorf("shape %v: %w", shape, ErrBadShape)
	}

	return r, c, nil
}

func unflatten(dims, c, off int) []int {
	if dims == 1 {
		return []int{off}
	}

	return []int{off / c, off % c}
}

// Dims returns the number of axes (1 or 2).
func (f *Field) Dims() int { return f.dims }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.data) }

// Shape returns a fresh copy of the per-axis sample counts.
func (f *Field) Shape() []int {
	if f.dims == 1 {
		return []int{f.r}
	}

	return []int{f.r, f.c}
}

// indexOf computes the row-major offset or returns a sentinel.
func (f *Field) indexOf(idx []int) (int, error) {
	if len(idx) != f.dims {
		return 0, ErrIndexArity
	}
	row, col := idx[0], 0
	if f.dims == 2 {
		col = idx[1]
	}
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, ErrOutOfRange
	}

	return row*f.c + col, nil
}

// At returns the sample at idx (one index for 1D, two for 2D).
//
// Errors:
//   - ErrIndexArity when len(idx) != Dims(); ErrOutOfRange when out of bounds.
func (f *Field) At(idx ...int) (float64, error) {
	off, err := f.indexOf(idx)
	if err != nil {
		return 0, fieldErrorf(ctxAt, idx, err)
	}

	return f.data[off], nil
}

// Set stores a finite v at idx.
//
// Errors:
//   - ErrIndexArity, ErrOutOfRange, ErrNaNInf.
func (f *Field) Set(v float64, idx ...int) error {
	off, err := f.indexOf(idx)
	if err != nil {
		return fieldErrorf(ctxSet, idx, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fieldErrorf(ctxSet, idx, ErrNaNInf)
	}
	f.data[off] = v

	return nil
}

// Data returns a copy of the flat row-major buffer.
func (f *Field) Data() []float64 {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)

	return cp
}

// Row returns a copy of row i (for a 1D field, the single sample i).
func (f *Field) Row(i int) ([]float64, error) {
	if i < 0 || i >= f.r {
		return nil, fieldErrorf("Row", []int{i}, ErrOutOfRange)
	}
	cp := make([]float64, f.c)
	copy(cp, f.data[i*f.c:(i+1)*f.c])

	return cp, nil
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)

	return &Field{dims: f.dims, r: f.r, c: f.c, data: cp}
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (f *Field) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < f.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < f.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", f.data[i*f.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
