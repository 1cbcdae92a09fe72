// Package calc implements a scientific calculator expression engine.
//
// Expressions are written in ordinary infix notation with arithmetic,
// exponentiation, modulo, postfix factorial, scientific numerals, named
// constants, and a library of mathematical functions. Evaluation runs in
// three stages: the lexer turns text into tokens, the shunting-yard
// translator reorders the tokens into postfix (RPN) order, and a stack
// machine executes the postfix order into a single number.
//
// Results are real wherever possible and promote to complex where the real
// form is undefined, so "sqrt(-1)" is i rather than an error.
//
// The engine is stateless: every call to Evaluate works only on its own
// stacks and the package's read-only constant and function tables, so it is
// safe for concurrent use.
package calc
