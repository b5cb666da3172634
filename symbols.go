package calculator

import (
	"errors"
	"strings"
)

// Operator is a binary operator. Operators with higher Prec bind more tightly.
// Operators are not modified after creation.
type Operator struct {
	// Symbol is the single character which denotes the operator.
	Symbol rune
	// Prec is the operator's precedence. The built-in operators use 10 for
	// + and -, 20 for * and /, and 30 for ^.
	Prec int
	// Apply computes x op y.
	Apply func(x, y float64) float64
}

// Constant is a named number.
type Constant struct {
	// Value is the value of the constant.
	Value float64
	// Symbols is the list of aliases for the constant. Aliases are
	// case-insensitive.
	Symbols []string
}

// NewConstant creates a constant with the given aliases. There must be at
// least one alias, and none may be empty.
func NewConstant(value float64, symbols ...string) (Constant, error) {
	s, err := aliases(symbols)
	if err != nil {
		return Constant{}, errors.New("calculator: constant " + err.Error())
	}
	return Constant{Value: value, Symbols: s}, nil
}

// Function is a function of one variable.
//
// Operation returns its result as text rather than as a number. The text is
// substituted into the expression being evaluated, so it must be a number or
// an expression that the calculator can evaluate; Format and Monadic produce
// suitable text from a float64.
type Function struct {
	// Symbols is the list of aliases for the function. The first alias is the
	// primary symbol, used in error messages.
	Symbols []string
	// Operation computes the function.
	Operation func(x float64) string
	// Validator, if not nil, checks arguments before Operation is called.
	Validator Validator
}

// NewFunction creates a function with the given aliases. There must be at
// least one alias, and none may be empty.
func NewFunction(op func(x float64) string, v Validator, symbols ...string) (Function, error) {
	s, err := aliases(symbols)
	if err != nil {
		return Function{}, errors.New("calculator: function " + err.Error())
	}
	return Function{Symbols: s, Operation: op, Validator: v}, nil
}

// name returns the primary symbol of the function.
func (f *Function) name() string {
	if len(f.Symbols) == 0 {
		return ""
	}
	return f.Symbols[0]
}

// aliases checks and lower-cases a list of symbols.
func aliases(symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		return nil, errors.New("symbols must not be empty")
	}
	r := make([]string, len(symbols))
	for i, s := range symbols {
		if s == "" {
			return nil, errors.New("symbols must not be empty")
		}
		r[i] = strings.ToLower(s)
	}
	return r, nil
}

// Validator checks arguments to a function.
type Validator interface {
	// Validate returns an error if x is not a valid argument to the function
	// whose primary symbol is name.
	Validate(x float64, name string) error
}

// RangeValidator is a Validator which accepts arguments in an interval.
// Use math.Inf for unbounded ends.
type RangeValidator struct {
	Min, Max float64
	// MinExclusive and MaxExclusive make the respective bounds open.
	MinExclusive, MaxExclusive bool
}

// Validate returns a *RangeError if x is outside the interval. NaN is always
// accepted.
func (v RangeValidator) Validate(x float64, name string) error {
	if x < v.Min || v.MinExclusive && x == v.Min || x > v.Max || v.MaxExclusive && x == v.Max {
		return &RangeError{
			Func:         name,
			Min:          v.Min,
			Max:          v.Max,
			MinExclusive: v.MinExclusive,
			MaxExclusive: v.MaxExclusive,
			X:            x,
		}
	}
	return nil
}
