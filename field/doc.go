// Package field holds synthesized height fields.
//
// A Field is a real-valued, row-major array with a one- or two-dimensional
// shape. It is the single artifact a synthesizer publishes: once returned,
// the synthesizer keeps no reference to it and never mutates it again.
//
// Fields enforce a finite-value policy at construction (FromSlice) and on
// every Set, so NaN or ±Inf never enters a published profile silently.
//
// Index convention matches package grid: element [i][j] is the sample at
// (x_i, y_j); a 1D field is indexed by a single i.
package field
