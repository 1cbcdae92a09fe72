package calc

import (
	"errors"
	"testing"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"single", "2", "2"},
		{"add", "2+3", "2 3 +"},
		{"precedence", "2+3*4", "2 3 4 * +"},
		{"precedence-left", "2*3+4", "2 3 * 4 +"},
		{"left-assoc", "8-4-2", "8 4 - 2 -"},
		{"right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"right-assoc-star", "2**3**2", "2 3 2 ** **"},
		{"parens", "(2+3)*4", "2 3 + 4 *"},
		{"nested-parens", "((1+2))", "1 2 +"},
		{"modulo", "7%3+1", "7 3 % 1 +"},
		// unary minus: first token, or after operator, open paren, or comma
		{"neg", "-5", "5 neg"},
		{"neg-chain", "--5", "5 neg neg"},
		{"neg-after-op", "2*-5", "2 5 neg *"},
		{"neg-after-minus", "2--5", "2 5 neg -"},
		{"neg-in-parens", "(-5)", "5 neg"},
		{"binary-minus", "2-5", "2 5 -"},
		{"neg-binds-over-pow", "-2^2", "2 neg 2 ^"},
		{"unary-plus", "+5", "5"},
		{"unary-plus-neg", "+-5", "5 neg"},
		// factorial binds tighter than everything
		{"bang", "3!", "3 !"},
		{"bang-chain", "3!!", "3 ! !"},
		{"neg-bang", "-3!", "3 ! neg"},
		{"bang-pow", "3!^2", "3 ! 2 ^"},
		{"bang-mul", "2*3!", "2 3 ! *"},
		// constants go straight to output; other identifiers are markers
		{"constant", "pi", "pi"},
		{"constant-mul", "2*pi", "2 pi *"},
		{"call", "sin(2)", "2 sin"},
		{"call-expr", "sin(1+2)", "1 2 + sin"},
		{"call-nested", "sin(cos(2))", "2 cos sin"},
		{"call-bare", "sqrt 2", "2 sqrt"},
		{"call-of-constant", "sin(pi)", "pi sin"},
		{"call-in-sum", "1+sin(2)*3", "1 2 sin 3 * +"},
		{"call-args", "f(1,2)", "1 2 f"},
		{"call-args-exprs", "f(1+2,3*4)", "1 2 + 3 4 * f"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Postfix(c.src)
			if err != nil {
				t.Fatalf("translating %q: unexpected error %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("translating %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestToPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unclosed", "(2+3"},
		{"unclosed-nested", "((2+3)"},
		{"unopened", "2+3)"},
		{"unopened-only", ")"},
		{"sep-first", ",1"},
		{"sep-outside", "1,2"},
		{"sep-after-close", "f(1),2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: unexpected error %v", c.src, err)
			}
			post, err := toPostfix(toks)
			if err == nil {
				t.Fatalf("translating %q: no error, postfix %v", c.src, post)
			}
			if post != nil {
				t.Errorf("translating %q: partial output %v alongside error", c.src, post)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("translating %q: error %#v is not *ParseError", c.src, err)
			}
		})
	}
}
