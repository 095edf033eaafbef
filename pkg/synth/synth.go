// Package synth generates synthetic heat-pump performance scatter data.
// A degree-3 polynomial is least-squares fitted through a small set of
// reference (temperature, average COP) points; synthetic samples then follow
// that curve with Gaussian noise whose spread grows with temperature.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/copviz/copviz/pkg/util"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Degree is the trend polynomial degree.
const Degree = 3

// Polynomial holds degree-3 coefficients in ascending order
// (c[0] + c[1]*x + c[2]*x² + c[3]*x³). Immutable once fitted.
type Polynomial struct {
	c [Degree + 1]float64
}

// Eval evaluates the polynomial at x (Horner form).
func (p Polynomial) Eval(x float64) float64 {
	return p.c[0] + x*(p.c[1]+x*(p.c[2]+x*p.c[3]))
}

// Coeffs returns the coefficients in ascending order.
func (p Polynomial) Coeffs() [Degree + 1]float64 { return p.c }

// FitTrend least-squares fits a degree-3 polynomial through the given points.
// Requires len(xs) == len(ys) and at least Degree+1 points; deterministic for
// identical input. Rank-deficient input (e.g. repeated x values) surfaces as
// the solver's condition error.
func FitTrend(xs, ys []float64) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, ErrLengthMismatch
	}
	if len(xs) < Degree+1 {
		return Polynomial{}, ErrTooFewPoints
	}

	// Vandermonde matrix, one row per point.
	a := mat.NewDense(len(xs), Degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= Degree; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return Polynomial{}, fmt.Errorf("synth: fit trend: %w", err)
	}

	var p Polynomial
	for j := 0; j <= Degree; j++ {
		p.c[j] = sol.AtVec(j)
	}
	return p, nil
}

// Sigma is the per-point noise standard deviation at temperature t:
// 0.2 at t = -20 °C, growing linearly with t.
func Sigma(t float64) float64 {
	return 0.2 + 0.1*((t+20)/30)
}

// Generate fits the trend polynomial through (xs, ys) and draws cfg.Count
// synthetic samples. Temperatures are uniform over [min(xs), max(xs)]; each
// COP is the polynomial expectation plus Normal(0, Sigma(t)) noise, floored
// at cfg.Floor. Output is reproducible for a given seed; reproducibility
// across different generator implementations is not promised.
func Generate(xs, ys []float64, cfg *Config) (Series, error) {
	p, err := FitTrend(xs, ys)
	if err != nil {
		return Series{}, err
	}
	c := cfg.merged()
	lo, hi := util.MinMax(xs)
	rng := rand.New(rand.NewSource(c.Seed))

	s := Series{
		Temp:     make([]float64, c.Count),
		COP:      make([]float64, c.Count),
		Expected: make([]float64, c.Count),
		Trend:    p,
	}

	// Temperatures first, then noise, so the expectation vector is drawn
	// from the same sample positions the noise applies to.
	for i := range s.Temp {
		s.Temp[i] = lo + rng.Float64()*(hi-lo)
		s.Expected[i] = p.Eval(s.Temp[i])
	}
	for i, t := range s.Temp {
		cop := s.Expected[i] + rng.NormFloat64()*Sigma(t)
		if cop < c.Floor {
			cop = c.Floor
		}
		s.COP[i] = cop
	}
	return s, nil
}

// Stats returns the mean and standard deviation of the generated COP values.
func (s Series) Stats() (mean, stddev float64) {
	if len(s.COP) == 0 {
		return 0, 0
	}
	mean = stat.Mean(s.COP, nil)
	stddev = stat.StdDev(s.COP, nil)
	return
}
