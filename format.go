package calculator

import (
	"math"
	"strconv"
)

// Format formats a number as text which the calculator reads back as exactly
// the same number. The result never uses scientific notation, since e is a
// constant, and has no trailing zeros or decimal point. Infinities and NaN
// are written as the divisions which produce them.
func Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "0/0"
	case math.IsInf(x, 1):
		return "1/0"
	case math.IsInf(x, -1):
		return "-1/0"
	case x == 0:
		// Drop the sign of negative zero.
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
