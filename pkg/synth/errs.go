package synth

import "errors"

var (
	// ErrTooFewPoints indicates fewer trend points than a degree-3 fit needs.
	ErrTooFewPoints = errors.New("synth: need at least 4 trend points for a cubic fit")

	// ErrLengthMismatch indicates trend x and y sequences of different length.
	ErrLengthMismatch = errors.New("synth: trend x and y lengths differ")
)
