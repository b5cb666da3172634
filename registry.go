package calculator

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// registry holds the symbol tables shared by every stage of evaluation. It
// is not modified after newRegistry returns, so it is safe to share between
// goroutines and nested evaluations.
type registry struct {
	ops    map[rune]*Operator
	consts map[string]*Constant
	funcs  map[string]*Function

	// constAliases and funcAliases list aliases longest first.
	constAliases []string
	funcAliases  []string
}

// newRegistry creates a registry from the built-in operators plus ops, and
// the given constants and functions. Every symbol must be unique among all
// operators, constants, and functions; otherwise the result is a
// *DuplicateSymbolError listing each collision. An operator whose symbol is a
// digit, decimal point, bracket, or space is a *ReservedSymbolError.
func newRegistry(ops []Operator, consts []Constant, funcs []Function) (*registry, error) {
	r := registry{
		ops:    make(map[rune]*Operator),
		consts: make(map[string]*Constant),
		funcs:  make(map[string]*Function),
	}
	seen := make(map[string]bool)
	var dups []string
	claim := func(s string) bool {
		if seen[s] {
			dups = append(dups, s)
			return false
		}
		seen[s] = true
		return true
	}

	// Copy everything so that callers can't modify the tables later.
	all := append(DefaultOperators(), ops...)
	consts = append([]Constant(nil), consts...)
	funcs = append([]Function(nil), funcs...)
	for i := range all {
		op := &all[i]
		if reserved(op.Symbol) {
			return nil, &ReservedSymbolError{Symbol: op.Symbol}
		}
		if !claim(string(op.Symbol)) {
			continue
		}
		r.ops[op.Symbol] = op
	}

	for i := range consts {
		c := &consts[i]
		for _, s := range c.Symbols {
			s = strings.ToLower(s)
			if !claim(s) {
				continue
			}
			r.consts[s] = c
			r.constAliases = append(r.constAliases, s)
		}
	}
	for i := range funcs {
		f := &funcs[i]
		for _, s := range f.Symbols {
			s = strings.ToLower(s)
			if !claim(s) {
				continue
			}
			r.funcs[s] = f
			r.funcAliases = append(r.funcAliases, s)
		}
	}
	if len(dups) != 0 {
		return nil, &DuplicateSymbolError{Symbols: dups}
	}
	longestFirst(r.constAliases)
	longestFirst(r.funcAliases)
	return &r, nil
}

// reserved returns whether c has a fixed meaning to the lexer and so cannot
// be an operator.
func reserved(c rune) bool {
	return isDigit(c) || c == '.' || c == '(' || c == ')' || unicode.IsSpace(c)
}

// longestFirst sorts aliases by decreasing length so that an alias is always
// matched before any alias it contains, e.g. log10 before log.
func longestFirst(v []string) {
	sort.SliceStable(v, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(v[i]), utf8.RuneCountInString(v[j])
		if li != lj {
			return li > lj
		}
		return v[i] < v[j]
	})
}

// operator returns the operator with the given symbol.
func (r *registry) operator(sym rune) (*Operator, bool) {
	op, ok := r.ops[sym]
	return op, ok
}

// isOperator returns whether c is an operator symbol.
func (r *registry) isOperator(c rune) bool {
	_, ok := r.ops[c]
	return ok
}

// constant returns the constant with the given alias.
func (r *registry) constant(alias string) (*Constant, bool) {
	c, ok := r.consts[strings.ToLower(alias)]
	return c, ok
}

// function returns the function with the given alias.
func (r *registry) function(alias string) (*Function, bool) {
	f, ok := r.funcs[strings.ToLower(alias)]
	return f, ok
}
