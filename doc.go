// Package calculator evaluates arithmetic expressions written as text.
//
// Expressions are written much as in your notes: "2(3 + 4)" is a
// multiplication, "9e + 6pi" uses the constants e and π, and "sqrt(64) * 4"
// calls a function. Unclosed brackets are closed at the end of the
// expression. All arithmetic is done with float64.
//
// Evaluation happens in stages. The expression is first standardized: spaces
// are removed, brackets are balanced, function calls are replaced by their
// results, constants are replaced by their values, and implicit
// multiplications are written out. The standardized text is then split into
// tokens, with each minus sign rewritten as a subtraction from zero, and the
// tokens are evaluated by operator precedence.
//
// Operators, constants, and functions can be extended with the options to
// New. Every symbol must be unique.
package calculator
