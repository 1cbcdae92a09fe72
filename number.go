package calc

import (
	"math"
	"strconv"
)

// zeroEpsilon is the magnitude below which a result component is treated as
// floating-point noise and snapped to exact zero, so identities like sin(pi)
// come out clean.
const zeroEpsilon = 1e-14

// Number is a numeric value: either real or complex. Arithmetic between a
// real and a complex Number promotes to complex; the imaginary part of a
// complex result is never silently discarded except by the output cleanup in
// clean.
type Number struct {
	v   complex128
	cpx bool
}

// Real returns a Number holding a real value.
func Real(x float64) Number {
	return Number{complex(x, 0), false}
}

// Cmplx returns a Number holding a complex value.
func Cmplx(z complex128) Number {
	return Number{z, true}
}

// IsComplex reports whether n is complex.
func (n Number) IsComplex() bool {
	return n.cpx
}

// Float returns the real part of n.
func (n Number) Float() float64 {
	return real(n.v)
}

// Complex128 returns n as a complex128. For a real Number the imaginary part
// is zero.
func (n Number) Complex128() complex128 {
	return n.v
}

// clean snaps components below zeroEpsilon to exact zero and demotes a
// complex value whose imaginary part vanished to real.
func (n Number) clean() Number {
	re, im := real(n.v), imag(n.v)
	if math.Abs(re) < zeroEpsilon {
		re = 0
	}
	// A real-tagged value is real whatever its imaginary slot holds;
	// cleanup never promotes.
	if !n.cpx {
		return Real(re)
	}
	if math.Abs(im) < zeroEpsilon {
		im = 0
	}
	if im == 0 {
		return Real(re)
	}
	return Number{complex(re, im), true}
}

// FormatResult renders a Number with prec significant digits, trimming
// trailing zeros and a trailing decimal point. A complex value renders as
// "<real><sign><imag>i"; a complex value whose imaginary part is exactly
// zero renders in the real form. A prec below 1 selects the shortest
// representation that round-trips.
func FormatResult(n Number, prec int) string {
	if prec < 1 {
		prec = -1
	}
	re := strconv.FormatFloat(real(n.v), 'g', prec, 64)
	if !n.cpx || imag(n.v) == 0 {
		return re
	}
	im := imag(n.v)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return re + sign + strconv.FormatFloat(im, 'g', prec, 64) + "i"
}
