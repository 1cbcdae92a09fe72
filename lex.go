package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ConstantGlyphs contains the non-ASCII runes which are accepted in
// identifiers in addition to letters, digits, and underscore. Each one is
// also the name of a constant.
const ConstantGlyphs = "πτφ∞"

// tokenize converts an expression to its token sequence. It fails with a
// *TokenizeError on an invalid character, a malformed numeral, or empty
// input; on failure the token sequence is nil, never partial.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, sz := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += sz
		case '0' <= r && r <= '9', r == '.' && startsNumeral(src[i+1:]):
			text, err := scanNumeral(src[i:], i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{text: text, kind: tokenNum, pos: i})
			i += len(text)
		case unicode.IsLetter(r), strings.ContainsRune(ConstantGlyphs, r):
			text := scanIdent(src[i:])
			toks = append(toks, token{text: strings.ToLower(text), kind: tokenIdent, pos: i})
			i += len(text)
		case r == '*':
			// ** before *.
			if strings.HasPrefix(src[i:], "**") {
				toks = append(toks, token{text: "**", kind: tokenOp, pos: i})
				i += 2
				break
			}
			toks = append(toks, token{text: "*", kind: tokenOp, pos: i})
			i++
		case r == '+', r == '-', r == '/', r == '%', r == '^':
			toks = append(toks, token{text: string(r), kind: tokenOp, pos: i})
			i++
		case r == '(':
			toks = append(toks, token{text: "(", kind: tokenOpen, pos: i})
			i++
		case r == ')':
			toks = append(toks, token{text: ")", kind: tokenClose, pos: i})
			i++
		case r == ',':
			toks = append(toks, token{text: ",", kind: tokenSep, pos: i})
			i++
		case r == '!':
			toks = append(toks, token{text: "!", kind: tokenBang, pos: i})
			i++
		default:
			return nil, &TokenizeError{Offset: i, Text: string(r), Reason: "invalid character"}
		}
	}
	if len(toks) == 0 {
		return nil, &TokenizeError{Reason: "empty expression"}
	}
	return toks, nil
}

// startsNumeral reports whether a leading . begins a numeral, which requires
// a digit immediately after it.
func startsNumeral(rest string) bool {
	return rest != "" && '0' <= rest[0] && rest[0] <= '9'
}

// scanNumeral scans a numeral at the start of s: digits, at most one dot,
// and at most one exponent marker which may be followed by one sign and more
// digits. A second dot or marker ends the numeral rather than failing.
// Whatever was consumed must parse as a float literal.
func scanNumeral(s string, base int) (string, error) {
	var dot, exp, marker bool
	n := 0
scan:
	for n < len(s) {
		switch c := s[n]; {
		case '0' <= c && c <= '9':
			marker = false
		case c == '.':
			if dot || exp {
				break scan
			}
			dot = true
		case c == 'e' || c == 'E':
			if exp {
				break scan
			}
			exp = true
			marker = true
		case c == '+' || c == '-':
			// A sign is part of the numeral only immediately after the
			// exponent marker; anywhere else it is an operator.
			if !marker {
				break scan
			}
			marker = false
		default:
			break scan
		}
		n++
	}
	text := s[:n]
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return "", &TokenizeError{Offset: base, Text: text, Reason: "malformed numeral"}
	}
	return text, nil
}

// scanIdent scans an identifier at the start of s. The caller has checked
// that the first rune starts an identifier.
func scanIdent(s string) string {
	for i, r := range s {
		if i == 0 {
			continue
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r), strings.ContainsRune(ConstantGlyphs, r):
		default:
			return s[:i]
		}
	}
	return s
}
