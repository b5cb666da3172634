package calculator

import (
	"strings"
	"sync"
)

// Calculator evaluates expressions with a fixed set of operators, constants,
// and functions. A Calculator is safe to use concurrently.
type Calculator struct {
	std standardizer
	lex lexer
	ev  evaluator
}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type (
	opsopt    []Operator
	constsopt []Constant
	funcsopt  []Function
)

func (opsopt) calcOption()    {}
func (constsopt) calcOption() {}
func (funcsopt) calcOption()  {}

// WithOperators adds operators to the built-in operators.
func WithOperators(ops ...Operator) Option {
	return opsopt(ops)
}

// WithConstants sets the constants the calculator recognizes. The built-in
// constants are not included unless they are also passed, e.g. from
// DefaultConstants. Multiple WithConstants options accumulate.
func WithConstants(consts ...Constant) Option {
	return constsopt(consts)
}

// WithFunctions sets the functions the calculator recognizes. The built-in
// functions are not included unless they are also passed, e.g. from
// DefaultFunctions. Multiple WithFunctions options accumulate.
func WithFunctions(funcs ...Function) Option {
	return funcsopt(funcs)
}

// New creates a calculator. If any symbol is defined more than once, or an
// added operator reuses a built-in symbol, the error is a
// *DuplicateSymbolError. If an added operator uses a digit, decimal point,
// bracket, or space, the error is a *ReservedSymbolError.
func New(opts ...Option) (*Calculator, error) {
	var (
		ops    []Operator
		consts []Constant
		funcs  []Function
		// setc and setf record whether the defaults have been replaced.
		setc, setf bool
	)
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			continue
		case opsopt:
			ops = append(ops, opt...)
		case constsopt:
			setc = true
			consts = append(consts, opt...)
		case funcsopt:
			setf = true
			funcs = append(funcs, opt...)
		default:
			panic("calculator: unknown option type")
		}
	}
	if !setc {
		consts = DefaultConstants()
	}
	if !setf {
		funcs = DefaultFunctions()
	}
	reg, err := newRegistry(ops, consts, funcs)
	if err != nil {
		return nil, err
	}
	return newCalculator(reg), nil
}

// newCalculator creates a calculator using an existing registry.
func newCalculator(reg *registry) *Calculator {
	return &Calculator{
		std: standardizer{reg: reg},
		lex: lexer{reg: reg},
	}
}

// Evaluate computes the value of an expression. Symbols are
// case-insensitive. If the expression is invalid, the error is a
// SyntaxError describing the first problem found.
func (c *Calculator) Evaluate(expr string) (float64, error) {
	s, err := c.std.standardize(strings.ToLower(expr))
	if err != nil {
		return 0, err
	}
	toks, err := c.lex.lex(s)
	if err != nil {
		return 0, err
	}
	return c.ev.eval(toks)
}

// builtin is the calculator with the built-in symbols.
var builtin = sync.OnceValues(func() (*Calculator, error) { return New() })

// Evaluate is a shortcut to evaluate an expression using the built-in
// symbols.
func Evaluate(expr string) (float64, error) {
	c, err := builtin()
	if err != nil {
		return 0, err
	}
	return c.Evaluate(expr)
}
