package calc

import "strconv"

// Error is implemented by every error returned from Evaluate. The set of
// implementations is closed: TokenizeError, ParseError, and EvalError. A
// caller can catch broadly with this interface or specifically by concrete
// type.
type Error interface {
	error
	calcError()
}

// TokenizeError indicates invalid input detected by the lexer, before any
// parsing begins.
type TokenizeError struct {
	// Offset is the zero-based byte offset of the offending input.
	Offset int
	// Text is the offending character or numeral substring. It is empty when
	// the whole input is empty or whitespace.
	Text string
	// Reason describes the failure, e.g. "invalid character".
	Reason string
}

func (err *TokenizeError) Error() string {
	if err.Text == "" {
		return err.Reason
	}
	return err.Reason + " " + strconv.Quote(err.Text) + " at offset " + strconv.Itoa(err.Offset)
}

// Pos returns the zero-based byte offset of the offending input.
func (err *TokenizeError) Pos() int {
	return err.Offset
}

// ParseError indicates a structural violation found while translating the
// token sequence to postfix order, e.g. unbalanced parentheses or a
// misplaced comma.
type ParseError struct {
	// Offset is the zero-based byte offset of the offending token, or the
	// length of the input for errors detected at its end.
	Offset int
	// Token is the text of the offending token, if any.
	Token string
	// Reason describes the violation.
	Reason string
}

func (err *ParseError) Error() string {
	if err.Token == "" {
		return err.Reason
	}
	return err.Reason + " " + strconv.Quote(err.Token) + " at offset " + strconv.Itoa(err.Offset)
}

// Pos returns the zero-based byte offset of the offending token.
func (err *ParseError) Pos() int {
	return err.Offset
}

// EvalError indicates a runtime or domain violation during postfix
// execution, e.g. division by zero, an unknown identifier, or a function
// argument outside the function's domain.
type EvalError struct {
	// Name is the operator, function, or identifier involved, if any.
	Name string
	// Reason describes the violation.
	Reason string
}

func (err *EvalError) Error() string {
	if err.Name == "" {
		return err.Reason
	}
	return err.Reason + ": " + strconv.Quote(err.Name)
}

func (*TokenizeError) calcError() {}

func (*ParseError) calcError() {}

func (*EvalError) calcError() {}

var (
	_ Error = (*TokenizeError)(nil)
	_ Error = (*ParseError)(nil)
	_ Error = (*EvalError)(nil)
)
