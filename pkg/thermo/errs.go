package thermo

import "errors"

var (
	// ErrBadRange indicates that the sweep minimum is not below the maximum.
	ErrBadRange = errors.New("thermo: min must be below max")

	// ErrTooFewSamples indicates that fewer than two sweep points were requested.
	ErrTooFewSamples = errors.New("thermo: at least two sweep points required")
)
