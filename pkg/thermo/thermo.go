// Package thermo evaluates the theoretical maximum (Carnot-cycle) coefficient
// of performance of a heat pump in heating mode:
//
//	COP = T_hot / (T_hot - T_cold)
//
// with both reservoir temperatures in Kelvin. The COP is only physically
// meaningful when the hot reservoir is strictly hotter than the cold one;
// outside that region the result is NaN rather than an error, so a whole
// ambient sweep can be evaluated elementwise and callers branch per element.
package thermo

import (
	"math"

	"github.com/copviz/copviz/pkg/types"
	"github.com/copviz/copviz/pkg/util"
)

// CarnotCOPHeating returns the theoretical maximum heating COP between the
// hot and cold reservoirs. Both inputs are absolute temperatures; callers
// convert from Celsius first. NaN when hot - cold <= 0, boundary included
// (the division would diverge at delta = 0).
func CarnotCOPHeating(hot, cold types.Kelvin) float64 {
	delta := float64(hot) - float64(cold)
	if delta <= 0 {
		return math.NaN()
	}
	return float64(hot) / delta
}

// Valid reports whether cop is a physically valid heating COP.
func Valid(cop float64) bool { return !math.IsNaN(cop) }

// Axis returns the ambient Celsius axis described by the params.
// Call Validate first; invalid params yield a nil axis.
func (p Params) Axis() []types.Celsius {
	xs := util.Linspace(float64(p.MinC), float64(p.MaxC), p.Points)
	if xs == nil {
		return nil
	}
	axis := make([]types.Celsius, len(xs))
	for i, x := range xs {
		axis[i] = types.Celsius(x)
	}
	return axis
}

// SweepCOP evaluates the Carnot heating COP for one hot target over the whole
// ambient axis. The result is index-aligned with ambient; entries where the
// ambient temperature reaches or exceeds the target are NaN.
func SweepCOP(hot types.Celsius, ambient []types.Celsius) Sweep {
	hotK := hot.Kelvin()
	cop := make([]float64, len(ambient))
	for i, c := range ambient {
		cop[i] = CarnotCOPHeating(hotK, c.Kelvin())
	}
	return Sweep{Hot: hot, Ambient: ambient, COP: cop}
}

// At evaluates the sweep's hot target against a single ambient temperature.
func (s Sweep) At(ambient types.Celsius) float64 {
	return CarnotCOPHeating(s.Hot.Kelvin(), ambient.Kelvin())
}
