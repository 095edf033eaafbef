package util

import (
	"math"
	"strconv"
)

// Linspace returns n evenly spaced values over [min, max], endpoints included.
// n must be >= 2; the last element is forced to max to avoid rounding drift.
func Linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	out[n-1] = max
	return out
}

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MinMax returns the smallest and largest value in xs. Empty input yields zeros.
func MinMax(xs []float64) (min, max float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}

func FmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
