// Package grid describes the regular sampling domain a surface is discretised on.
//
// 🚀 What is a Grid?
//
//	A Grid couples a physical Extent (one entry per axis) with a single
//	Spacing between adjacent samples. From these two values the package
//	derives the sample count per axis (Shape), validates the combination
//	before any synthesis runs, and produces coordinate axes and meshes.
//
// ✨ Conventions (fixed for every synthesizer):
//   - endpoints are inclusive: shape[i] = extent[i]/spacing + 1
//   - Axis(i) covers [0, extent[i]]; CenteredAxis(i) covers [-extent[i]/2, extent[i]/2]
//   - axis 0 is x and maps to the row index, axis 1 is y and maps to the column index
//   - Points() flattens the mesh row-major, so point i*shape[1]+j is (x_i, y_j)
//
// ⚙️ Usage:
//
//	g := grid.Grid{Extent: []float64{1, 1}, Spacing: 0.01}
//	if err := g.Validate(); err != nil {
//		// errors.Is(err, grid.ErrInvalid) holds for every validation failure
//	}
//	shape, _ := g.Shape() // [101 101]
//	xs, ys, _ := g.Points()
package grid
