// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/asperity/spectral"
)

// All configuration errors belong to spectral.ErrConstruction.
var (
	// ErrUnknownKind indicates a synthesizer kind that is not one of
	// "discrete", "statistical" or "hurst".
	ErrUnknownKind = fmt.Errorf("%w: unknown synthesizer kind", spectral.ErrConstruction)

	// ErrMissingField indicates a key required by the selected kind.
	ErrMissingField = fmt.Errorf("%w: missing required field", spectral.ErrConstruction)

	// ErrUnknownKey indicates keys in the file that no field accepts.
	ErrUnknownKey = fmt.Errorf("%w: unrecognized key", spectral.ErrConstruction)

	// ErrDimensions indicates a discrete dimension other than 1 or 2.
	ErrDimensions = fmt.Errorf("%w: dimensions must be 1 or 2", spectral.ErrConstruction)
)
