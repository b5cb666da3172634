package calculator

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.Pi, "3.141592653589793"},
		{math.Inf(1), "1/0"},
		{math.Inf(-1), "-1/0"},
		{math.NaN(), "0/0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.x), "Format(%g)", c.x)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, x := range []float64{math.E, math.Phi, 1.0 / 3, math.MaxFloat64, math.SmallestNonzeroFloat64, -123456.789} {
		s := Format(x)
		assert.NotContains(t, s, "e", s)
		y, err := strconv.ParseFloat(s, 64)
		if assert.NoError(t, err) {
			assert.Equal(t, x, y, s)
		}
	}
}

func TestFormatEvaluates(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{math.Inf(1), math.Inf(-1), -0.5, 1e300} {
		r, err := c.Evaluate(Format(x))
		if assert.NoError(t, err, x) {
			assert.Equal(t, x, r)
		}
	}
	r, err := c.Evaluate(Format(math.NaN()))
	if assert.NoError(t, err) {
		assert.True(t, math.IsNaN(r))
	}
}
