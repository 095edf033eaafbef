package types

import "fmt"

// AbsoluteZeroC is absolute zero expressed in Celsius.
const AbsoluteZeroC = -273.15

// Celsius is a float64 wrapper representing a temperature in degrees Celsius.
type Celsius float64

// Kelvin is a float64 wrapper representing an absolute temperature in Kelvin.
type Kelvin float64

// Kelvin converts the temperature to Kelvin (K = C + 273.15). Exact, total.
func (c Celsius) Kelvin() Kelvin { return Kelvin(float64(c) - AbsoluteZeroC) }

// Celsius converts the absolute temperature back to Celsius.
func (k Kelvin) Celsius() Celsius { return Celsius(float64(k) + AbsoluteZeroC) }

func (c Celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func (k Kelvin) String() string { return fmt.Sprintf("%.2f K", float64(k)) }

// KelvinSlice converts a Celsius axis to Kelvin elementwise, preserving order.
func KelvinSlice(cs []Celsius) []Kelvin {
	ks := make([]Kelvin, len(cs))
	for i, c := range cs {
		ks[i] = c.Kelvin()
	}
	return ks
}
