package calculator

import (
	"strings"
	"unicode"
)

// standardizer rewrites expressions into a form containing only numbers,
// operators, and brackets, with every operator explicit.
type standardizer struct {
	reg *registry
}

// standardize applies each step of standardization in order. expr should
// already be lower case.
func (s *standardizer) standardize(expr string) (string, error) {
	expr = removeSpace(expr)
	expr, err := balance(expr)
	if err != nil {
		return "", err
	}
	expr = collapseSigns(expr)
	expr, err = s.functions(expr)
	if err != nil {
		return "", err
	}
	expr = s.constants(expr)
	return s.multiplication(expr), nil
}

// removeSpace removes all whitespace.
func removeSpace(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}

// balance closes unclosed brackets at the end of the expression. It is an
// error for there to be more close brackets than open ones.
func balance(expr string) (string, error) {
	opens := strings.Count(expr, "(")
	closes := strings.Count(expr, ")")
	if closes > opens {
		return "", &UnbalancedBracketsError{Open: opens, Close: closes}
	}
	return expr + strings.Repeat(")", opens-closes), nil
}

// collapseSigns replaces -- with + and +- with - until neither remains.
func collapseSigns(expr string) string {
	for strings.Contains(expr, "--") || strings.Contains(expr, "+-") {
		expr = strings.ReplaceAll(expr, "--", "+")
		expr = strings.ReplaceAll(expr, "+-", "-")
	}
	return expr
}

// functions replaces each function call with its result. Arguments are
// evaluated by a new calculator sharing the same symbols.
func (s *standardizer) functions(expr string) (string, error) {
	for _, alias := range s.reg.funcAliases {
		f := s.reg.funcs[alias]
		for {
			k := strings.Index(expr, alias)
			if k < 0 {
				break
			}
			open := k + len(alias)
			if open >= len(expr) || expr[open] != '(' {
				return "", &FunctionSyntaxError{Func: alias}
			}
			end := matching(expr, open)
			if end < 0 {
				return "", &UnbalancedBracketsError{}
			}
			arg := expr[open+1 : end]
			x, err := newCalculator(s.reg).Evaluate(arg)
			if err != nil {
				return "", err
			}
			if f.Validator != nil {
				if err := f.Validator.Validate(x, f.name()); err != nil {
					return "", err
				}
			}
			expr = expr[:k] + "(" + f.Operation(x) + ")" + expr[end+1:]
		}
	}
	return expr, nil
}

// matching returns the index of the bracket closing the one at open, or -1 if
// there is none.
func matching(expr string, open int) int {
	depth := 0
	for i := open + 1; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// constants replaces each constant with its bracketed value.
func (s *standardizer) constants(expr string) string {
	for _, alias := range s.reg.constAliases {
		c := s.reg.consts[alias]
		expr = strings.ReplaceAll(expr, alias, "("+Format(c.Value)+")")
	}
	return expr
}

// multiplication inserts * where a bracket is adjacent to an operand, e.g.
// 2(3) and (2)3.
func (s *standardizer) multiplication(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	prev := rune(-1)
	for _, c := range expr {
		if prev >= 0 {
			if c == '(' && prev != '(' && !s.reg.isOperator(prev) ||
				prev == ')' && c != ')' && !s.reg.isOperator(c) {
				b.WriteByte('*')
			}
		}
		b.WriteRune(c)
		prev = c
	}
	return b.String()
}
