package calc

// The translator reorders infix tokens into postfix (RPN) order with the
// classical shunting-yard algorithm. Two extensions: a - in unary position
// becomes the synthetic tokenNeg operator, and identifiers that are not
// constants are pushed as pending function markers that pop to output when
// their argument closes.

// operator describes the binding of an operator token.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the descriptor for a binary operator token. The second result
// is false if there is no such operator.
func binop(text string) (operator, bool) {
	switch text {
	case "+", "-":
		return operator{2, false}, true
	case "*", "/", "%":
		return operator{3, false}, true
	case "^", "**":
		return operator{4, true}, true
	default:
		return operator{}, false
	}
}

var (
	// negprec is the synthetic precedence of unary minus.
	negprec = operator{5, true}
	// bangprec is the precedence of postfix factorial, more binding than any
	// other operator so that it takes the single preceding operand.
	bangprec = operator{6, false}
)

// pops reports whether a pending operator pops to output before op is
// pushed: strictly higher precedence, or equal with op left-associative.
func (pending operator) pops(op operator) bool {
	if pending.prec != op.prec {
		return pending.prec > op.prec
	}
	return !op.right
}

// opdesc gets the descriptor for a pending stack entry. The second result is
// false for entries that never pop by precedence: open parens and function
// markers.
func opdesc(tok token) (operator, bool) {
	switch tok.kind {
	case tokenOp:
		return mustbinop(tok.text), true
	case tokenNeg:
		return negprec, true
	case tokenBang:
		return bangprec, true
	default:
		return operator{}, false
	}
}

func mustbinop(text string) operator {
	op, ok := binop(text)
	if !ok {
		panic("calc: no binary operator " + text)
	}
	return op
}

// unaryPosition reports whether a - at this point has no left operand and is
// therefore unary: at the start of the expression, or directly after an
// operator, an open paren, or a separator.
func unaryPosition(prev tokenKind) bool {
	switch prev {
	case tokenNone, tokenOp, tokenNeg, tokenOpen, tokenSep:
		return true
	default:
		return false
	}
}

// toPostfix reorders an infix token sequence into postfix order. It fails
// with a *ParseError on unbalanced parentheses or a misplaced separator; on
// failure the result is nil, never partial.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var pending []token
	prev := tokenNone
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenIdent:
			if _, ok := constants[tok.text]; ok {
				// Constants are zero-arity: straight to output.
				out = append(out, tok)
				break
			}
			pending = append(pending, tok)
		case tokenOp:
			if unaryPosition(prev) {
				switch tok.text {
				case "-":
					tok.kind = tokenNeg
					pending = pushOp(pending, &out, tok, negprec)
					prev = tokenNeg
					continue
				case "+":
					// Unary plus is the identity; drop it. prev stays in
					// unary position so -+x and +-x negate once.
					prev = tokenOp
					continue
				}
			}
			op, ok := binop(tok.text)
			if !ok {
				return nil, &ParseError{Offset: tok.pos, Token: tok.text, Reason: "unknown operator"}
			}
			pending = pushOp(pending, &out, tok, op)
		case tokenBang:
			pending = pushOp(pending, &out, tok, bangprec)
		case tokenOpen:
			pending = append(pending, tok)
		case tokenClose:
			var opened bool
			for len(pending) > 0 {
				top := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				if top.kind == tokenOpen {
					opened = true
					break
				}
				out = append(out, top)
			}
			if !opened {
				return nil, &ParseError{Offset: tok.pos, Token: tok.text, Reason: "unbalanced parentheses"}
			}
			// A function marker under the paren owns the closed argument.
			if len(pending) > 0 && pending[len(pending)-1].kind == tokenIdent {
				out = append(out, pending[len(pending)-1])
				pending = pending[:len(pending)-1]
			}
		case tokenSep:
			for {
				if len(pending) == 0 {
					return nil, &ParseError{Offset: tok.pos, Token: tok.text, Reason: "misplaced separator"}
				}
				top := pending[len(pending)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
				pending = pending[:len(pending)-1]
			}
		default:
			panic("calc: unknown token: " + tok.String())
		}
		prev = tok.kind
	}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if top.kind == tokenOpen {
			return nil, &ParseError{Offset: top.pos, Token: top.text, Reason: "unbalanced parentheses"}
		}
		out = append(out, top)
	}
	return out, nil
}

// pushOp pops pending operators that bind at least as tightly as op, then
// pushes tok. Open parens and function markers stop the popping.
func pushOp(pending []token, out *[]token, tok token, op operator) []token {
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		desc, ok := opdesc(top)
		if !ok || !desc.pops(op) {
			break
		}
		*out = append(*out, top)
		pending = pending[:len(pending)-1]
	}
	return append(pending, tok)
}
