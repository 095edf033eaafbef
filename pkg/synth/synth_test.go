package synth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFitTrend_ExactCubic(t *testing.T) {
	// interpolation case: exactly Degree+1 points on a known cubic
	want := [Degree + 1]float64{2.0, 0.5, -0.1, 0.01}
	cubic := func(x float64) float64 {
		return want[0] + x*(want[1]+x*(want[2]+x*want[3]))
	}

	xs := []float64{-2, -1, 1, 2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = cubic(x)
	}

	p, err := FitTrend(xs, ys)
	require.NoError(t, err)
	for j, c := range p.Coeffs() {
		assert.InDelta(t, want[j], c, 1e-9, "coefficient %d", j)
	}

	// evaluate away from the fit points
	for _, x := range []float64{-1.5, 0, 0.25, 3} {
		assert.InDelta(t, cubic(x), p.Eval(x), 1e-9, "x=%v", x)
	}
}

func TestFitTrend_Deterministic(t *testing.T) {
	xs, ys := DefaultTrend()

	p1, err := FitTrend(xs, ys)
	require.NoError(t, err)
	p2, err := FitTrend(xs, ys)
	require.NoError(t, err)

	// bit-identical, not just close
	assert.Equal(t, p1.Coeffs(), p2.Coeffs())
	t.Logf("trend coefficients: %v", p1.Coeffs())
}

func TestFitTrend_FollowsReferenceTrend(t *testing.T) {
	xs, ys := DefaultTrend()
	p, err := FitTrend(xs, ys)
	require.NoError(t, err)

	// a least-squares cubic through 7 well-spread points stays close to them
	for i, x := range xs {
		assert.InDelta(t, ys[i], p.Eval(x), 0.15, "x=%v", x)
	}
	// trend rises with temperature across the reference range
	assert.Less(t, p.Eval(-20), p.Eval(10))
}

func TestFitTrend_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want error
	}{
		{"length mismatch", []float64{1, 2, 3, 4}, []float64{1, 2, 3}, ErrLengthMismatch},
		{"three points", []float64{1, 2, 3}, []float64{1, 2, 3}, ErrTooFewPoints},
		{"empty", nil, nil, ErrTooFewPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitTrend(tt.xs, tt.ys)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSigma_MonotoneNonDecreasing(t *testing.T) {
	assert.InDelta(t, 0.2, Sigma(-20), 1e-12, "floor at the cold end")
	assert.InDelta(t, 0.3, Sigma(10), 1e-12)

	prev := Sigma(-20)
	for x := -19.5; x <= 10; x += 0.5 {
		cur := Sigma(x)
		require.GreaterOrEqual(t, cur, prev, "sigma must not decrease, t=%v", x)
		prev = cur
	}
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	xs, ys := DefaultTrend()
	cfg := &Config{Count: 500, Seed: 42}

	a, err := Generate(xs, ys, cfg)
	require.NoError(t, err)
	b, err := Generate(xs, ys, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Temp, b.Temp)
	assert.Equal(t, a.COP, b.COP)
	assert.Equal(t, a.Expected, b.Expected)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	xs, ys := DefaultTrend()

	a, err := Generate(xs, ys, &Config{Count: 200, Seed: 1})
	require.NoError(t, err)
	b, err := Generate(xs, ys, &Config{Count: 200, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a.Temp, b.Temp)
	assert.NotEqual(t, a.COP, b.COP)
}

func TestGenerate_FloorAndRangeInvariants(t *testing.T) {
	xs, ys := DefaultTrend()
	for _, seed := range []int64{0, 7, 42, 1234} {
		for _, count := range []int{1, 50, 1200} {
			s, err := Generate(xs, ys, &Config{Count: count, Seed: seed})
			require.NoError(t, err)
			require.Len(t, s.Temp, count)
			require.Len(t, s.COP, count)
			require.Len(t, s.Expected, count)

			for i := range s.COP {
				assert.GreaterOrEqual(t, s.COP[i], 0.5, "seed=%d i=%d", seed, i)
				assert.GreaterOrEqual(t, s.Temp[i], -20.0, "seed=%d i=%d", seed, i)
				assert.LessOrEqual(t, s.Temp[i], 10.0, "seed=%d i=%d", seed, i)
			}
		}
	}
}

func TestGenerate_ExpectedMatchesTrendPolynomial(t *testing.T) {
	xs, ys := DefaultTrend()
	s, err := Generate(xs, ys, &Config{Count: 100, Seed: 42})
	require.NoError(t, err)

	for i, temp := range s.Temp {
		assert.InDelta(t, s.Trend.Eval(temp), s.Expected[i], 1e-12, "i=%d", i)
	}
}

func TestGenerate_NoiseCentersOnTrend(t *testing.T) {
	xs, ys := DefaultTrend()
	s, err := Generate(xs, ys, &Config{Count: 5000, Seed: 42})
	require.NoError(t, err)

	mean, stddev := s.Stats()
	expMean := stat.Mean(s.Expected, nil)

	// noise has zero mean and sigma <= 0.3; the 0.5 floor almost never binds
	// since the trend stays near 1.8..3.7
	assert.InDelta(t, expMean, mean, 0.05)
	assert.Greater(t, stddev, 0.0)
	t.Logf("n=%d mean=%.4f (trend %.4f) stddev=%.4f", len(s.COP), mean, expMean, stddev)
}

func TestConfig_Merged(t *testing.T) {
	def := (*Config)(nil).merged()
	assert.Equal(t, 1200, def.Count)
	assert.Equal(t, int64(42), def.Seed)
	assert.Equal(t, 0.5, def.Floor)

	// zero seed is a real seed, negative means unset
	assert.Equal(t, int64(0), (&Config{Seed: 0}).merged().Seed)
	assert.Equal(t, int64(42), (&Config{Seed: -1}).merged().Seed)

	// zero floor disables the clamp in practice, negative means unset
	assert.Equal(t, 0.0, (&Config{Floor: 0}).merged().Floor)
	assert.Equal(t, 0.5, (&Config{Floor: -1}).merged().Floor)

	assert.Equal(t, 1200, (&Config{Count: 0}).merged().Count)
	assert.Equal(t, 64, (&Config{Count: 64}).merged().Count)
}

func ExampleGenerate() {
	xs, ys := DefaultTrend()
	s, err := Generate(xs, ys, &Config{Count: 3, Seed: 42})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(s.Temp), len(s.COP))
	// Output: 3 3
}
