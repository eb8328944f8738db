// SPDX-License-Identifier: MIT

// Package config reads surface synthesis runs from TOML files.
//
// A run file names one synthesizer and the grid to discretise it on:
//
//	seed = 42
//
//	[grid]
//	extent  = [1.0, 1.0]
//	spacing = 0.01
//
//	[synthesizer]
//	kind      = "hurst"
//	q0        = 1.0
//	q0_amp    = 0.1
//	q_cut_off = 5.0
//	hurst     = 2.0
//
// Keys absent from the file keep the values of Default. Keys the decoder does
// not recognise are rejected with ErrUnknownKey, the configuration-file
// counterpart of passing an unknown option to a constructor.
package config
