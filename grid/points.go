// SPDX-License-Identifier: MIT
// Package: asperity/grid
//
// points.go: coordinate axes and flattened meshes.
//
// The same axis convention is shared by the wavenumber grids built at
// construction time and the spatial grids built at discretisation time:
// inclusive endpoints, axis 0 = x = row index.

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axis returns shape[axis] coordinates evenly covering [0, extent[axis]].
func (g Grid) Axis(axis int) ([]float64, error) {
	return g.span(axis, 0)
}

// CenteredAxis returns shape[axis] coordinates evenly covering
// [-extent[axis]/2, extent[axis]/2].
func (g Grid) CenteredAxis(axis int) ([]float64, error) {
	return g.span(axis, -0.5)
}

// span builds an axis starting at offset*extent and ending at (1+offset)*extent.
func (g Grid) span(axis int, offset float64) ([]float64, error) {
	shape, err := g.Shape()
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("axis %d of %d: %w", axis, len(shape), ErrAxis)
	}
	e := g.Extent[axis]
	// Shape guarantees at least two samples, which floats.Span requires.
	return floats.Span(make([]float64, shape[axis]), offset*e, (1+offset)*e), nil
}

// Points returns the dense coordinate mesh of g flattened row-major.
// For a 2D grid, element i*shape[1]+j of (xs, ys) is (x_i, y_j).
// For a 1D grid, ys is all zeros.
//
// Complexity: O(shape[0]*shape[1]) time and memory.
func (g Grid) Points() (xs, ys []float64, err error) {
	x, err := g.Axis(0)
	if err != nil {
		return nil, nil, err
	}
	if g.Dims() == 1 {
		return x, make([]float64, len(x)), nil
	}
	y, err := g.Axis(1)
	if err != nil {
		return nil, nil, err
	}

	return Mesh(x, y)
}

// Mesh flattens the tensor product of two axes row-major: x varies slowest.
func Mesh(x, y []float64) (xs, ys []float64, err error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil, fmt.Errorf("mesh %dx%d: %w", len(x), len(y), ErrSampleCount)
	}
	n := len(x) * len(y)
	xs = make([]float64, n)
	ys = make([]float64, n)
	var i, j int
	for i = 0; i < len(x); i++ {
		base := i * len(y)
		for j = 0; j < len(y); j++ {
			xs[base+j] = x[i]
			ys[base+j] = y[j]
		}
	}

	return xs, ys, nil
}
