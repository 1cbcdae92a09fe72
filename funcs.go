package calc

import (
	"math"
	"math/cmplx"
	"sort"
)

// constants maps lower-case names to their values. It is read-only after
// package init and safe to share across goroutines.
var constants = map[string]Number{
	"pi":  Real(math.Pi),
	"π":   Real(math.Pi),
	"e":   Real(math.E),
	"tau": Real(2 * math.Pi),
	"τ":   Real(2 * math.Pi),
	"phi": Real(math.Phi),
	"φ":   Real(math.Phi),
	"i":   Cmplx(complex(0, 1)),
	"j":   Cmplx(complex(0, 1)),
	"inf": Real(math.Inf(1)),
	"∞":   Real(math.Inf(1)),
	"nan": Real(math.NaN()),
}

// mathFunc is a unary function over Numbers. A returned *EvalError may leave
// Name empty; the evaluator fills in the name the function was called by.
type mathFunc func(Number) (Number, error)

// functions maps lower-case names to the function library. Like constants,
// it is read-only after package init.
var functions = map[string]mathFunc{
	"sin":   promoted(math.Sin, cmplx.Sin, never),
	"cos":   promoted(math.Cos, cmplx.Cos, never),
	"tan":   promoted(math.Tan, cmplx.Tan, never),
	"asin":  promoted(math.Asin, cmplx.Asin, outsideUnit),
	"acos":  promoted(math.Acos, cmplx.Acos, outsideUnit),
	"atan":  promoted(math.Atan, cmplx.Atan, never),
	"sinh":  promoted(math.Sinh, cmplx.Sinh, never),
	"cosh":  promoted(math.Cosh, cmplx.Cosh, never),
	"tanh":  promoted(math.Tanh, cmplx.Tanh, never),
	"asinh": promoted(math.Asinh, cmplx.Asinh, never),
	"acosh": promoted(math.Acosh, cmplx.Acosh, func(x float64) bool { return x < 1 }),
	"atanh": promoted(math.Atanh, cmplx.Atanh, outsideUnit),
	"sqrt":  promoted(math.Sqrt, cmplx.Sqrt, negative),
	"cbrt":  promoted(math.Cbrt, cbrtC, never),
	"exp":   promoted(math.Exp, cmplx.Exp, never),
	"ln":    promoted(math.Log, cmplx.Log, negative),
	"log":   promoted(math.Log10, log10C, negative),
	"log2":  promoted(math.Log2, log2C, negative),
	"abs":   absf,
	"floor": realOnly(math.Floor),
	"ceil":  realOnly(math.Ceil),
	"round": realOnly(math.Round),
}

// promoted builds a mathFunc from a real form, a complex form, and a
// predicate reporting real arguments outside the real form's domain. The
// complex form runs for complex arguments and for real arguments outside the
// real domain; the result is then complex (principal branch) rather than a
// domain error.
func promoted(rf func(float64) float64, cf func(complex128) complex128, outside func(float64) bool) mathFunc {
	return func(x Number) (Number, error) {
		if x.IsComplex() {
			return Cmplx(cf(x.Complex128())), nil
		}
		v := x.Float()
		if outside(v) {
			return Cmplx(cf(complex(v, 0))), nil
		}
		return Real(rf(v)), nil
	}
}

// realOnly builds a mathFunc with no complex form.
func realOnly(rf func(float64) float64) mathFunc {
	return func(x Number) (Number, error) {
		if x.IsComplex() {
			return Number{}, &EvalError{Reason: "not defined for complex values"}
		}
		return Real(rf(x.Float())), nil
	}
}

func never(float64) bool { return false }

func negative(x float64) bool { return x < 0 }

func outsideUnit(x float64) bool { return x < -1 || x > 1 }

func cbrtC(z complex128) complex128 {
	return cmplx.Pow(z, complex(1.0/3, 0))
}

func log10C(z complex128) complex128 {
	return cmplx.Log(z) / complex(math.Ln10, 0)
}

func log2C(z complex128) complex128 {
	return cmplx.Log(z) / complex(math.Ln2, 0)
}

func absf(x Number) (Number, error) {
	if x.IsComplex() {
		return Real(cmplx.Abs(x.Complex128())), nil
	}
	return Real(math.Abs(x.Float())), nil
}

// maxFactorial is the largest argument whose factorial is representable in a
// float64; 171! overflows.
const maxFactorial = 170

// factorial evaluates postfix !. Real arguments use the Gamma extension
// Γ(x+1), so non-integral arguments are accepted; negative integers are
// poles of Γ and complex arguments are outside the extension's domain.
func factorial(x Number) (Number, error) {
	if x.IsComplex() {
		return Number{}, &EvalError{Name: "!", Reason: "factorial of complex value"}
	}
	v := x.Float()
	if v > maxFactorial {
		return Number{}, &EvalError{Name: "!", Reason: "factorial overflows"}
	}
	if v < 0 && v == math.Trunc(v) {
		return Number{}, &EvalError{Name: "!", Reason: "factorial of negative integer"}
	}
	r := math.Gamma(v + 1)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return Number{}, &EvalError{Name: "!", Reason: "factorial outside domain"}
	}
	return Real(r), nil
}

// Constants returns the sorted names of the constant table.
func Constants() []string {
	return sortedKeys(constants)
}

// Functions returns the sorted names of the function table.
func Functions() []string {
	return sortedKeys(functions)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
