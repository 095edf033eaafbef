package synth

// Config holds the generator knobs.
// Units / ranges:
//   - Count: number of synthetic points, > 0
//   - Seed: pseudorandom seed; same seed and generator implementation => same output
//   - Floor: hard lower bound applied to every generated COP
type Config struct {
	Count int
	Seed  int64
	Floor float64
}

// _defaultConfig returns a Config pre-filled with the reference behavior:
// 1200 points, seed 42, COP floored at 0.5.
func _defaultConfig() Config {
	return Config{
		Count: 1200,
		Seed:  42,
		Floor: 0.5,
	}
}

// merged applies cfg on top of the defaults.
// Notes:
//   - Count must be > 0 to override.
//   - Seed: negative is treated as "unset" and defaulted; zero is a valid seed.
//   - Floor: negative is treated as "unset"; zero is a valid "no practical floor".
func (c *Config) merged() Config {
	base := _defaultConfig()
	if c == nil {
		return base
	}
	if c.Count > 0 {
		base.Count = c.Count
	}
	if c.Seed >= 0 {
		base.Seed = c.Seed
	}
	if c.Floor >= 0 {
		base.Floor = c.Floor
	}
	return base
}

// Series is one generated scatter dataset. Temp, COP and Expected are
// index-aligned: COP[i] is Expected[i] plus noise, floored. Trend is the
// polynomial the expectations were drawn from.
type Series struct {
	Temp     []float64
	COP      []float64
	Expected []float64
	Trend    Polynomial
}

// DefaultTrend returns the reference (temperature, average COP) pairs the
// trend polynomial is fitted through, ordered by temperature ascending.
func DefaultTrend() (temperatureC, copAvg []float64) {
	temperatureC = []float64{-20, -15, -10, -5, 0, 5, 10}
	copAvg = []float64{1.8, 2.0, 2.2, 2.5, 2.8, 3.3, 3.7}
	return
}
