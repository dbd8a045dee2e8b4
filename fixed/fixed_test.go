package fixed_test

import (
	"testing"

	"github.com/teneleven/advance/fixed"
	"github.com/teneleven/advance/test"
)

func TestConstruction(t *testing.T) {
	test.ExpectEquality(t, fixed.FromInt(1).Data(), fixed.Scale)
	test.ExpectEquality(t, fixed.FromInt(-2).Data(), -2*fixed.Scale)
	test.ExpectEquality(t, fixed.FromFloat(0.5).Data(), fixed.Scale/2)
	test.ExpectEquality(t, fixed.FromData(100).Data(), 100)

	// the zero value is 0.0
	var f fixed.Fixed
	test.ExpectEquality(t, f.Data(), 0)
}

func TestRescale(t *testing.T) {
	// one unit in n fraction bits is 1<<n
	test.ExpectEquality(t, fixed.FromInt(1).Rescale(10), 1024)
	test.ExpectEquality(t, fixed.FromInt(1).Rescale(8), 256)
	test.ExpectEquality(t, fixed.FromInt(1).Rescale(3), 8)
	test.ExpectEquality(t, fixed.FromInt(1).Rescale(0), 1)

	// fractions survive the rescale as long as the field is wide enough
	test.ExpectEquality(t, fixed.FromFloat(0.5).Rescale(10), 512)
	test.ExpectEquality(t, fixed.FromFloat(0.25).Rescale(3), 2)

	// rescaling at full width is the identity
	f := fixed.FromFloat(1.75)
	test.ExpectEquality(t, f.Rescale(12), f.Data())
}

func TestArithmetic(t *testing.T) {
	a := fixed.FromInt(2)
	b := fixed.FromFloat(0.5)

	test.ExpectEquality(t, a.Add(b).Float(), 2.5)
	test.ExpectEquality(t, a.Sub(b).Float(), 1.5)
	test.ExpectEquality(t, a.Mul(b).Float(), 1.0)
	test.ExpectEquality(t, b.Mul(b).Float(), 0.25)
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, fixed.FromFloat(0.5).String(), "0.5000")
	test.ExpectEquality(t, fixed.FromInt(1).String(), "1.0000")
}
