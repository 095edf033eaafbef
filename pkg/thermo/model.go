package thermo

import "github.com/copviz/copviz/pkg/types"

// Params describes an ambient (cold reservoir) temperature sweep.
// Units:
//   - MinC/MaxC: degrees Celsius
//   - Points: number of evenly spaced samples, endpoints included
type Params struct {
	MinC   types.Celsius
	MaxC   types.Celsius
	Points int
}

// Validate checks the sweep parameters.
func (p Params) Validate() error {
	if p.MinC >= p.MaxC {
		return ErrBadRange
	}
	if p.Points < 2 {
		return ErrTooFewSamples
	}
	return nil
}

// Sweep is one evaluated COP curve: a hot target and the per-ambient results.
// COP[i] corresponds to Ambient[i]; invalid entries are NaN.
type Sweep struct {
	Hot     types.Celsius
	Ambient []types.Celsius
	COP     []float64
}
