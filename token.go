package calc

import "strconv"

// token is a lexical unit of an expression. Tokens are immutable once
// produced; pos is the zero-based byte offset of the token in the source.
type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is an integer, real, or scientific-notation numeral.
	tokenNum
	// tokenIdent is a constant or function name, folded to lower case.
	tokenIdent
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is a function arguments separator.
	tokenSep
	// tokenBang is the postfix factorial operator. It is distinct from
	// tokenOp because it takes no operand to its right.
	tokenBang
	// tokenNeg is unary minus. The lexer never produces it; the translator
	// synthesizes it from tokenOp "-" in unary position.
	tokenNeg
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy
