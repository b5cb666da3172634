package calculator_test

import (
	"fmt"

	calculator "github.com/BLM16/Tokenized-Calculator"
)

func ExampleEvaluate() {
	r, err := calculator.Evaluate("31 + 7 * 5 - 9 / 4^2")
	fmt.Println(r, err)
	r, err = calculator.Evaluate("sqrt(64)(4 - 12")
	fmt.Println(r, err)
	_, err = calculator.Evaluate("sqrt(-4)")
	fmt.Println(err)

	// Output:
	// 65.4375 <nil>
	// -64 <nil>
	// sqrt requires the value to be in the range [0, +Inf) but got -4
}

func ExampleNew() {
	half := func(x float64) float64 { return x * x / 2 }
	hlfsq, _ := calculator.NewFunction(calculator.Monadic(half), nil, "hlfsq")
	dollar := calculator.Operator{
		Symbol: '$',
		Prec:   20,
		Apply:  func(x, y float64) float64 { return (x + y) / (x - y) },
	}
	c, err := calculator.New(
		calculator.WithOperators(calculator.Modulus(), dollar),
		calculator.WithFunctions(hlfsq),
	)
	if err != nil {
		panic(err)
	}
	for _, expr := range []string{"3*hlfsq(19 - 7)", "3 $ 5", "-7 % 3"} {
		r, err := c.Evaluate(expr)
		fmt.Println(expr, "=", r, err)
	}

	// Output:
	// 3*hlfsq(19 - 7) = 216 <nil>
	// 3 $ 5 = -4 <nil>
	// -7 % 3 = 2 <nil>
}

func ExampleFormat() {
	fmt.Println(calculator.Format(1e21))
	fmt.Println(calculator.Format(-0.000125))
	fmt.Println(calculator.Format(1 / zero))

	// Output:
	// 1000000000000000000000
	// -0.000125
	// 1/0
}

var zero float64
