package calculator

import (
	"math"
	"strconv"
	"strings"
)

// SyntaxError is an error resulting from invalid input or an invalid symbol
// set. Every error returned by New and Evaluate implements SyntaxError.
type SyntaxError interface {
	error
	syntaxError()
}

// DuplicateSymbolError is an error indicating that a symbol set contains the
// same alias more than once, or reuses a built-in alias.
type DuplicateSymbolError struct {
	// Symbols lists every colliding alias, in the order they were found.
	Symbols []string
}

func (err *DuplicateSymbolError) Error() string {
	q := make([]string, len(err.Symbols))
	for i, s := range err.Symbols {
		q[i] = strconv.Quote(s)
	}
	if len(q) == 1 {
		return "duplicate symbol " + q[0]
	}
	return "duplicate symbols " + strings.Join(q, ", ")
}

// ReservedSymbolError is an error indicating an operator whose symbol
// already has a meaning in every expression.
type ReservedSymbolError struct {
	Symbol rune
}

func (err *ReservedSymbolError) Error() string {
	return "reserved character " + strconv.QuoteRune(err.Symbol) + " cannot be an operator"
}

// UnbalancedBracketsError is an error indicating a close bracket with no
// matching open bracket.
type UnbalancedBracketsError struct {
	// Open and Close are the numbers of open and close brackets seen.
	Open, Close int
}

func (err *UnbalancedBracketsError) Error() string {
	if err.Open == 0 && err.Close == 0 {
		return "mismatched brackets"
	}
	return "too many closing brackets: " + strconv.Itoa(err.Close) + " closing for " + strconv.Itoa(err.Open) + " opening"
}

// MalformedNumberError is an error indicating an invalid number literal.
type MalformedNumberError struct {
	// Text is the number scanned up to and including the invalid decimal
	// point.
	Text string
	// Multiple is true if the literal has more than one decimal point and
	// false if a decimal point is not followed by a digit.
	Multiple bool
}

func (err *MalformedNumberError) Error() string {
	if err.Multiple {
		return "malformed number " + strconv.Quote(err.Text) + ": cannot contain more than one decimal point"
	}
	return "malformed number " + strconv.Quote(err.Text) + ": digits must trail the decimal point"
}

// UnrecognizedSymbolError is an error indicating a character that is not a
// digit, bracket, or registered operator.
type UnrecognizedSymbolError struct {
	Symbol rune
}

func (err *UnrecognizedSymbolError) Error() string {
	return "unrecognized operator " + strconv.QuoteRune(err.Symbol)
}

// ConsecutiveOperatorsError is an error indicating two operators with no
// operand between them.
type ConsecutiveOperatorsError struct {
	Left, Right rune
}

func (err *ConsecutiveOperatorsError) Error() string {
	return "consecutive operators " + strconv.Quote(string(err.Left)+string(err.Right))
}

// OperandRequiredError is an error indicating an operator that lacks an
// operand on either side, or an expression with no value.
type OperandRequiredError struct {
	// Operator is the operator missing an operand. It is 0 if the error is
	// not about a particular operator.
	Operator rune
	// Missing describes what is missing when Operator is 0.
	Missing string
}

func (err *OperandRequiredError) Error() string {
	if err.Operator == 0 {
		if err.Missing == "" {
			return "no expression"
		}
		return "malformed expression: " + err.Missing
	}
	return "operator " + strconv.QuoteRune(err.Operator) + " requires values on both sides"
}

// FunctionSyntaxError is an error indicating a function name which is not
// immediately followed by an open bracket.
type FunctionSyntaxError struct {
	Func string
}

func (err *FunctionSyntaxError) Error() string {
	return "function identifier not followed by parentheses: " + err.Func + "?"
}

// RangeError is an error indicating a function argument outside the
// function's accepted range.
type RangeError struct {
	// Func is the primary symbol of the function.
	Func string
	// Min and Max are the bounds of the accepted range.
	Min, Max float64
	// MinExclusive and MaxExclusive indicate open bounds.
	MinExclusive, MaxExclusive bool
	// X is the rejected argument.
	X float64
}

func (err *RangeError) Error() string {
	var b strings.Builder
	b.WriteString(err.Func)
	b.WriteString(" requires the value to be in the range ")
	b.WriteString(interval(err.Min, err.Max, err.MinExclusive, err.MaxExclusive))
	b.WriteString(" but got ")
	b.WriteString(strconv.FormatFloat(err.X, 'g', -1, 64))
	return b.String()
}

// interval formats a range in interval notation. Infinite bounds are always
// open.
func interval(min, max float64, minx, maxx bool) string {
	var b strings.Builder
	if minx || math.IsInf(min, 0) {
		b.WriteByte('(')
	} else {
		b.WriteByte('[')
	}
	b.WriteString(strconv.FormatFloat(min, 'g', -1, 64))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(max, 'g', -1, 64))
	if maxx || math.IsInf(max, 0) {
		b.WriteByte(')')
	} else {
		b.WriteByte(']')
	}
	return b.String()
}

func (*DuplicateSymbolError) syntaxError()      {}
func (*ReservedSymbolError) syntaxError()       {}
func (*UnbalancedBracketsError) syntaxError()   {}
func (*MalformedNumberError) syntaxError()      {}
func (*UnrecognizedSymbolError) syntaxError()   {}
func (*ConsecutiveOperatorsError) syntaxError() {}
func (*OperandRequiredError) syntaxError()      {}
func (*FunctionSyntaxError) syntaxError()       {}
func (*RangeError) syntaxError()                {}

var (
	_ SyntaxError = (*DuplicateSymbolError)(nil)
	_ SyntaxError = (*ReservedSymbolError)(nil)
	_ SyntaxError = (*UnbalancedBracketsError)(nil)
	_ SyntaxError = (*MalformedNumberError)(nil)
	_ SyntaxError = (*UnrecognizedSymbolError)(nil)
	_ SyntaxError = (*ConsecutiveOperatorsError)(nil)
	_ SyntaxError = (*OperandRequiredError)(nil)
	_ SyntaxError = (*FunctionSyntaxError)(nil)
	_ SyntaxError = (*RangeError)(nil)
)
