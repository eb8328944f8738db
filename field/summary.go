// SPDX-License-Identifier: MIT

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summary is a coarse description of a field, used for diagnostics.
type Summary struct {
	Min, Max float64
	Mean     float64
	RMS      float64 // root mean square about zero
}

// Summarize computes min, max, mean and RMS height in a single O(n) pass set.
func (f *Field) Summarize() Summary {
	n := float64(len(f.data))

	return Summary{
		Min:  floats.Min(f.data),
		Max:  floats.Max(f.data),
		Mean: floats.Sum(f.data) / n,
		RMS:  math.Sqrt(floats.Dot(f.data, f.data) / n),
	}
}
