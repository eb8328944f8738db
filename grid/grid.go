// SPDX-License-Identifier: MIT
// Package: asperity/grid
//
// grid.go: Grid value type, validation and shape derivation.
//
// Contract:
//   - Grid is a plain value; the zero value is "unset" and fails Validate.
//   - Validate is the single gate every synthesizer calls before computing.
//   - Shape never allocates more than len(Extent) ints and never panics.

package grid

import (
	"fmt"
	"math"
)

// countTol is the relative tolerance used to accept extent/spacing as an integer.
const countTol = 1e-9

// maxSamples bounds the total number of samples of a grid, so every shape
// product fits an int and every buffer length is allocatable.
const maxSamples = math.MaxInt32

// Grid is a regular sampling domain.
type Grid struct {
	Extent  []float64 // physical length of each axis, same units as Spacing
	Spacing float64   // distance between adjacent samples on every axis
}

// New returns a validated Grid. The extent slice is copied.
func New(extent []float64, spacing float64) (Grid, error) {
	g := Grid{Extent: append([]float64(nil), extent...), Spacing: spacing}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}

	return g, nil
}

// Dims returns the number of axes described by Extent.
func (g Grid) Dims() int {
	return len(g.Extent)
}

// Validate checks that Extent and Spacing are set and consistent.
// Implementation:
//   - Stage 1: reject unset extent / spacing.
//   - Stage 2: reject axis counts other than 1 or 2.
//   - Stage 3: per axis, require a finite positive extent whose ratio to the
//     spacing is a positive integer within countTol.
//   - Stage 4: require the product of the axis sample counts to stay within
//     maxSamples.
//
// Errors: ErrExtentUnset, ErrSpacingUnset, ErrDimensions, ErrSampleCount
// (all wrap ErrInvalid).
func (g Grid) Validate() error {
	if len(g.Extent) == 0 {
		return ErrExtentUnset
	}
	if g.Spacing == 0 {
		return ErrSpacingUnset
	}
	if len(g.Extent) > 2 {
		return fmt.Errorf("got %d axes: %w", len(g.Extent), ErrDimensions)
	}
	if !isFinitePositive(g.Spacing) {
		return fmt.Errorf("spacing %g: %w", g.Spacing, ErrSampleCount)
	}
	total := 1
	for i, e := range g.Extent {
		n, err := intervals(e, g.Spacing)
		if err != nil {
			return axisErrorf(i, err)
		}
		// n+1 <= maxSamples, so total*(n+1) cannot overflow before the check.
		if total > maxSamples/(n+1) {
			return fmt.Errorf("extent %v / spacing %g exceeds %d samples: %w", g.Extent, g.Spacing, maxSamples, ErrSampleCount)
		}
		total *= n + 1
	}

	return nil
}

// ValidateSquare runs Validate and additionally requires a two-dimensional
// domain with equal extents.
func (g Grid) ValidateSquare() error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Dims() != 2 || g.Extent[0] != g.Extent[1] {
		return fmt.Errorf("extent %v: %w", g.Extent, ErrNonSquare)
	}

	return nil
}

// Shape returns the number of samples along each axis, endpoints included.
func (g Grid) Shape() ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	shape := make([]int, len(g.Extent))
	for i, e := range g.Extent {
		n, _ := intervals(e, g.Spacing) // validated above
		shape[i] = n + 1
	}

	return shape, nil
}

// Size returns the total number of samples (product of Shape), at most
// maxSamples for a valid grid.
func (g Grid) Size() (int, error) {
	shape, err := g.Shape()
	if err != nil {
		return 0, err
	}
	size := 1
	for _, n := range shape {
		size *= n
	}

	return size, nil
}

// Covers reports whether every axis of g fits inside the matching axis of other.
// Both grids must have the same number of axes.
func (g Grid) Covers(other Grid) bool {
	if g.Dims() != other.Dims() {
		return false
	}
	for i := range g.Extent {
		if other.Extent[i] > g.Extent[i]*(1+countTol) {
			return false
		}
	}

	return true
}

// intervals returns extent/spacing as an int, or ErrSampleCount.
func intervals(extent, spacing float64) (int, error) {
	if !isFinitePositive(extent) {
		return 0, fmt.Errorf("extent %g: %w", extent, ErrSampleCount)
	}
	ratio := extent / spacing
	n := math.Round(ratio)
	if n < 1 || math.Abs(ratio-n) > countTol*n {
		return 0, fmt.Errorf("extent %g / spacing %g = %g: %w", extent, spacing, ratio, ErrSampleCount)
	}
	if n >= maxSamples {
		return 0, fmt.Errorf("extent %g / spacing %g = %g intervals: %w", extent, spacing, ratio, ErrSampleCount)
	}

	return int(n), nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
