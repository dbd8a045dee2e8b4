// Package fixed provides the fixed point number type used throughout the
// audio engine. The GBA has no floating point unit so all scalar values that
// reach the hardware layer (volumes, speeds, panning) are expressed as fixed
// point values with 12 bits of fraction.
package fixed

import "fmt"

// the number of fraction bits in a Fixed value
const fractionBits = 12

// Scale is the value of Fixed(1).Data(). In other words, one unit expressed
// in the raw data format
const Scale = 1 << fractionBits

// Fixed is a signed fixed point number with 12 bits of fraction. The zero
// value is 0.0 and ready for use
type Fixed struct {
	data int
}

// FromInt converts an integer to a Fixed value
func FromInt(v int) Fixed {
	return Fixed{data: v << fractionBits}
}

// FromFloat converts a float to the nearest representable Fixed value.
// Intended for construction of constants and values from user input. The
// engine itself never works with floats
func FromFloat(v float64) Fixed {
	return Fixed{data: int(v * Scale)}
}

// FromData builds a Fixed value from the raw data representation
func FromData(data int) Fixed {
	return Fixed{data: data}
}

// Data returns the raw data representation of the value
func (f Fixed) Data() int {
	return f.data
}

// Int returns the integer part of the value, truncated towards zero
func (f Fixed) Int() int {
	return f.data / Scale
}

// Float returns the value converted to a float
func (f Fixed) Float() float64 {
	return float64(f.data) / Scale
}

// Rescale returns the raw data of the value re-expressed with the given
// number of fraction bits. bits must be in the range 0 to 12
func (f Fixed) Rescale(bits int) int {
	if bits < 0 || bits > fractionBits {
		panic(fmt.Sprintf("invalid number of fraction bits: %d", bits))
	}
	return f.data >> (fractionBits - bits)
}

func (f Fixed) Add(g Fixed) Fixed {
	return Fixed{data: f.data + g.data}
}

func (f Fixed) Sub(g Fixed) Fixed {
	return Fixed{data: f.data - g.data}
}

// Mul returns the product of the two values. The intermediate result is
// 64bit so the multiplication will not overflow for any values the engine
// deals with
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed{data: int(int64(f.data) * int64(g.data) >> fractionBits)}
}

func (f Fixed) String() string {
	return fmt.Sprintf("%.4f", f.Float())
}
