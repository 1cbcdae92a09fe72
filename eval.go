package calc

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Evaluate computes the value of an infix expression. It is synchronous,
// re-entrant, and has no side effects. Any failure is one of the three
// categorized kinds: *TokenizeError, *ParseError, or *EvalError.
func Evaluate(expr string) (Number, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return Number{}, err
	}
	post, err := toPostfix(toks)
	if err != nil {
		return Number{}, err
	}
	return evalPostfix(post)
}

// Postfix returns the postfix (RPN) ordering of an expression as a
// space-separated string, with unary minus spelled "neg". It is a debugging
// aid for callers that echo how an expression was understood.
func Postfix(expr string) (string, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	post, err := toPostfix(toks)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, tok := range post {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tok.kind == tokenNeg {
			b.WriteString("neg")
			continue
		}
		b.WriteString(tok.text)
	}
	return b.String(), nil
}

// evalPostfix executes a postfix token sequence against a value stack and
// returns the single remaining value, cleaned per the output rule. It fails
// with an *EvalError on stack underflow, an unknown identifier, or a domain
// violation.
func evalPostfix(toks []token) (Number, error) {
	stack := make([]Number, 0, len(toks))
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				// The lexer accepts only parseable numerals.
				panic("calc: invalid numeral: " + tok.text)
			}
			stack = append(stack, Real(v))
		case tokenIdent:
			if c, ok := constants[tok.text]; ok {
				stack = append(stack, c)
				break
			}
			fn, ok := functions[tok.text]
			if !ok {
				return Number{}, &EvalError{Name: tok.text, Reason: "unknown identifier"}
			}
			if len(stack) < 1 {
				return Number{}, &EvalError{Name: tok.text, Reason: "missing argument"}
			}
			x := stack[len(stack)-1]
			r, err := fn(x)
			if err != nil {
				return Number{}, named(err, tok.text)
			}
			stack[len(stack)-1] = r
		case tokenOp:
			if len(stack) < 2 {
				return Number{}, &EvalError{Name: tok.text, Reason: "missing operand"}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			v, err := binary(tok.text, l, r)
			if err != nil {
				return Number{}, err
			}
			stack[len(stack)-1] = v
		case tokenNeg:
			if len(stack) < 1 {
				return Number{}, &EvalError{Name: "-", Reason: "missing operand"}
			}
			x := stack[len(stack)-1]
			stack[len(stack)-1] = Number{-x.v, x.cpx}
		case tokenBang:
			if len(stack) < 1 {
				return Number{}, &EvalError{Name: "!", Reason: "missing operand"}
			}
			r, err := factorial(stack[len(stack)-1])
			if err != nil {
				return Number{}, err
			}
			stack[len(stack)-1] = r
		default:
			panic("calc: invalid postfix token: " + tok.String())
		}
	}
	if len(stack) != 1 {
		return Number{}, &EvalError{Reason: "malformed expression"}
	}
	return stack[0].clean(), nil
}

// binary applies a binary operator, promoting to complex if either operand
// is complex.
func binary(op string, l, r Number) (Number, error) {
	cpx := l.cpx || r.cpx
	switch op {
	case "+":
		return Number{l.v + r.v, cpx}, nil
	case "-":
		return Number{l.v - r.v, cpx}, nil
	case "*":
		// Complex multiplication of two reals fabricates NaN in the
		// imaginary slot when a cross-term is Inf*0, so keep reals real.
		if cpx {
			return Cmplx(l.v * r.v), nil
		}
		return Real(real(l.v) * real(r.v)), nil
	case "/":
		if r.v == 0 {
			return Number{}, &EvalError{Name: op, Reason: "division by zero"}
		}
		if cpx {
			return Cmplx(l.v / r.v), nil
		}
		return Real(real(l.v) / real(r.v)), nil
	case "%":
		if cpx {
			return Number{}, &EvalError{Name: op, Reason: "modulo of complex value"}
		}
		if real(r.v) == 0 {
			return Number{}, &EvalError{Name: op, Reason: "modulo by zero"}
		}
		return Real(math.Mod(real(l.v), real(r.v))), nil
	case "^", "**":
		return power(l, r), nil
	default:
		panic("calc: no binary operator " + op)
	}
}

// power exponentiates. A negative real base with a non-integral real
// exponent promotes to the complex principal branch instead of failing the
// real domain.
func power(l, r Number) Number {
	if l.cpx || r.cpx {
		return Cmplx(cmplx.Pow(l.v, r.v))
	}
	base, exp := real(l.v), real(r.v)
	if base < 0 && exp != math.Trunc(exp) {
		return Cmplx(cmplx.Pow(l.v, r.v))
	}
	return Real(math.Pow(base, exp))
}

// named fills in the name a table function was called by on the error it
// returned.
func named(err error, name string) error {
	ee, ok := err.(*EvalError)
	if !ok {
		return &EvalError{Name: name, Reason: err.Error()}
	}
	if ee.Name == "" {
		ee.Name = name
	}
	return ee
}
