//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	calculator "github.com/BLM16/Tokenized-Calculator"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("31 + 7 * 5 - 9 / 4^2")
	f.Add("-6 * (-3) + 14 / 7")
	f.Add("sqrt(log(10^(2 + 4))^2 / 4)")
	f.Add("9e + 6pi * 3")
	f.Add("2-(17-5")
	f.Add("1×2")
	f.Add("-3-6^2*2")
	c, err := calculator.New(calculator.WithOperators(calculator.Modulus()))
	if err != nil {
		f.Fatal(err)
	}
	f.Fuzz(func(t *testing.T, s string) {
		c.Evaluate(s)
	})
}
