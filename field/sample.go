// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// edgeTol absorbs rounding when a coordinate sits on the last grid line.
const edgeTol = 1e-9

// Bilinear samples a 2D field at physical coordinates (x, y), where sample
// [i][j] lies at (i*spacing, j*spacing).
//
// Errors:
//   - ErrDimensionMismatch for 1D fields.
//   - ErrOutOfRange when (x, y) lies outside [0,(rows-1)*spacing]×[0,(cols-1)*spacing].
//
// Complexity:
//   - Time O(1).
func (f *Field) Bilinear(spacing, x, y float64) (float64, error) {
	if f.dims != 2 {
		return 0, fmt.Errorf("Field.Bilinear: %d axes: %w", f.dims, ErrDimensionMismatch)
	}
	i0, tx, err := cell(x/spacing, f.r)
	if err != nil {
		return 0, fmt.Errorf("Field.Bilinear(x=%g): %w", x, err)
	}
	j0, ty, err := cell(y/spacing, f.c)
	if err != nil {
		return 0, fmt.Errorf("Field.Bilinear(y=%g): %w", y, err)
	}
	i1, j1 := min(i0+1, f.r-1), min(j0+1, f.c-1)

	v00 := f.data[i0*f.c+j0]
	v01 := f.data[i0*f.c+j1]
	v10 := f.data[i1*f.c+j0]
	v11 := f.data[i1*f.c+j1]

	return (1-tx)*(1-ty)*v00 + (1-tx)*ty*v01 + tx*(1-ty)*v10 + tx*ty*v11, nil
}

// cell splits a fractional index into its lower cell and the offset in [0,1].
func cell(u float64, n int) (int, float64, error) {
	last := float64(n - 1)
	if math.IsNaN(u) || u < -edgeTol || u > last+edgeTol {
		return 0, 0, ErrOutOfRange
	}
	u = math.Min(math.Max(u, 0), last)
	i := int(math.Floor(u))
	if i == n-1 && n > 1 {
		i--
	}

	return i, u - float64(i), nil
}
