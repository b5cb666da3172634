package calculator

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultOperators returns the built-in operators: + - * / ^. Operators
// passed to WithOperators are added to these.
func DefaultOperators() []Operator {
	return []Operator{
		{Symbol: '+', Prec: 10, Apply: func(x, y float64) float64 { return x + y }},
		{Symbol: '-', Prec: 10, Apply: func(x, y float64) float64 { return x - y }},
		{Symbol: '*', Prec: 20, Apply: func(x, y float64) float64 { return x * y }},
		{Symbol: '/', Prec: 20, Apply: func(x, y float64) float64 { return x / y }},
		{Symbol: '^', Prec: 30, Apply: math.Pow},
	}
}

// DefaultConstants returns the built-in constants, pi and e.
func DefaultConstants() []Constant {
	return []Constant{
		{Value: math.Pi, Symbols: []string{"pi", "π"}},
		{Value: math.E, Symbols: []string{"e"}},
	}
}

var (
	nonneg   = RangeValidator{Min: 0, Max: math.Inf(1)}
	positive = RangeValidator{Min: 0, Max: math.Inf(1), MinExclusive: true}
	unit     = RangeValidator{Min: -1, Max: 1}
)

// DefaultFunctions returns the built-in functions. Trigonometric functions
// work in radians; deg and rad convert between radians and degrees.
func DefaultFunctions() []Function {
	return []Function{
		{Symbols: []string{"sqrt", "root", "√"}, Operation: Monadic(math.Sqrt), Validator: nonneg},
		{Symbols: []string{"cbrt", "sqrt3", "root3"}, Operation: Monadic(math.Cbrt)},
		{Symbols: []string{"sin"}, Operation: Monadic(math.Sin)},
		{Symbols: []string{"cos"}, Operation: Monadic(math.Cos)},
		{Symbols: []string{"tan"}, Operation: Monadic(math.Tan)},
		{Symbols: inverse("sin"), Operation: Monadic(math.Asin), Validator: unit},
		{Symbols: inverse("cos"), Operation: Monadic(math.Acos), Validator: unit},
		{Symbols: inverse("tan"), Operation: Monadic(math.Atan)},
		{Symbols: []string{"sinh"}, Operation: Monadic(math.Sinh)},
		{Symbols: []string{"cosh"}, Operation: Monadic(math.Cosh)},
		{Symbols: []string{"tanh"}, Operation: Monadic(math.Tanh)},
		{Symbols: inverse("sinh"), Operation: Monadic(math.Asinh)},
		{Symbols: inverse("cosh"), Operation: Monadic(math.Acosh), Validator: RangeValidator{Min: 1, Max: math.Inf(1)}},
		{Symbols: inverse("tanh"), Operation: Monadic(math.Atanh), Validator: RangeValidator{Min: -1, Max: 1, MinExclusive: true, MaxExclusive: true}},
		{Symbols: []string{"floor"}, Operation: Monadic(math.Floor)},
		{Symbols: []string{"ceil"}, Operation: Monadic(math.Ceil)},
		{Symbols: []string{"sign", "sgn"}, Operation: Monadic(sign)},
		{Symbols: []string{"ln", "loge", "log_e"}, Operation: Monadic(logn(nil, math.Log)), Validator: positive},
		{Symbols: []string{"log2", "log_2"}, Operation: Monadic(logn(big.NewFloat(2), math.Log2)), Validator: positive},
		{Symbols: []string{"log10", "log_10", "log"}, Operation: Monadic(logn(big.NewFloat(10), math.Log10)), Validator: positive},
		{Symbols: []string{"deg"}, Operation: Monadic(func(x float64) float64 { return x * 180 / math.Pi })},
		{Symbols: []string{"rad"}, Operation: Monadic(func(x float64) float64 { return x * math.Pi / 180 })},
	}
}

// inverse lists the aliases of the inverse of a trigonometric function.
func inverse(f string) []string {
	return []string{"a" + f, "arc" + f, f + "^-1", f + "^(-1)"}
}

// Modulus is the mathematical modulus operator %, with the precedence of *.
// Unlike math.Mod, the result has the sign of the divisor.
func Modulus() Operator {
	return Operator{Symbol: '%', Prec: 20, Apply: mod}
}

func mod(x, y float64) float64 {
	if y == -1 {
		return 0
	}
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// Phi is the golden ratio constant, φ.
func Phi() Constant {
	return Constant{Value: math.Phi, Symbols: []string{"phi", "φ"}}
}

// Abs is the absolute value function.
func Abs() Function {
	return Function{Symbols: []string{"abs"}, Operation: Monadic(math.Abs)}
}

// Monadic wraps a function of one variable into a Function operation which
// formats its result with Format.
func Monadic(f func(x float64) float64) func(x float64) string {
	return func(x float64) string {
		return Format(f(x))
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	// Zeros and NaN.
	return x
}

// logPrec is the precision in bits of intermediate logarithms.
const logPrec = 128

// logn creates a logarithm to the given base which computes at logPrec bits
// and rounds once to float64, so that e.g. log10(1000) is exactly 3. A nil
// base is the natural logarithm. Arguments outside (0, +Inf) are handed to
// fallback.
func logn(base *big.Float, fallback func(float64) float64) func(float64) float64 {
	var lb *big.Float
	if base != nil {
		in := new(big.Float).SetPrec(logPrec).Set(base)
		lb = bigfloat.Log(new(big.Float).SetPrec(logPrec), in)
	}
	return func(x float64) (r float64) {
		if !(x > 0) || math.IsInf(x, 1) {
			return fallback(x)
		}
		if x == 1 {
			return 0
		}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			err, _ := p.(error)
			if errors.As(err, &big.ErrNaN{}) {
				r = fallback(x)
				return
			}
			panic(p)
		}()
		out := new(big.Float).SetPrec(logPrec)
		bigfloat.Log(out, new(big.Float).SetPrec(logPrec).SetFloat64(x))
		if lb != nil {
			out.Quo(out, lb)
		}
		r, _ = out.Float64()
		return r
	}
}
