package calculator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRegistry creates a registry with the built-in symbols.
func testRegistry(t *testing.T) *registry {
	t.Helper()
	reg, err := newRegistry(nil, DefaultConstants(), DefaultFunctions())
	require.NoError(t, err)
	return reg
}

// render writes tokens separated by spaces.
func render(toks []token) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.text
	}
	return strings.Join(s, " ")
}

func TestLex(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "0", "0"},
		{"digits", "9876543210", "9876543210"},
		{"decimal", "1.25", "1.25"},
		{"leading-point", ".305+.307*.302", "0.305 + 0.307 * 0.302"},
		{"brackets", "(1)", "( 1 )"},
		{"mixed", "5.14*(3.7+2^2)/(5-3)", "5.14 * ( 3.7 + 2 ^ 2 ) / ( 5 + ( 0 - 3 ) )"},
		{"sub", "8-4", "8 + ( 0 - 4 )"},
		{"sub-bracket", "2-(17-5)", "2 + ( 0 - ( 17 + ( 0 - 5 ) ) )"},
		{"div-neg", "12/-3", "12 / ( 0 - 3 )"},
		{"neg-mul-neg", "-6*(-3-5)", "( 0 - 6 ) * ( ( 0 - 3 + ( 0 - 5 ) ) )"},
		{"neg-chain", "-3-5-2", "( 0 - 3 + ( 0 - 5 ) + ( 0 - 2 ) )"},
		{"neg-then-mul", "-3-5*2", "( 0 - 3 + ( 0 - 5 * 2 ) )"},
		{"pow-neg-sub", "2^-3-1", "2 ^ ( 0 - 3 ) + ( 0 - 1 )"},
		{"mul-neg-sub", "1-2*-3-4", "1 + ( 0 - 2 * ( 0 - 3 ) ) + ( 0 - 4 )"},
		{"sub-pow", "3-6^2", "3 + ( 0 - 6 ^ 2 )"},
		{"sub-pow-mul", "1-2^2*3", "1 + ( 0 - 2 ^ 2 * 3 )"},
		{"sub-pow-sub", "5-2^3-1", "5 + ( 0 - 2 ^ 3 ) + ( 0 - 1 )"},
		{"neg-pow", "-2^2", "( 0 - 2 ) ^ 2"},
		{"neg-neg", "--3", "( 0 - ( 0 - 3 ) )"},
		{"neg-bracket", "-(3)", "( 0 - ( 3 ) )"},
		{"trailing-minus", "3-", "3 + ( 0 - )"},
	}
	reg := testRegistry(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lexer{reg: reg}
			toks, err := l.lex(c.src)
			require.NoError(t, err)
			require.Equal(t, c.want, render(toks))
		})
	}
}

func TestLexKinds(t *testing.T) {
	reg := testRegistry(t)
	l := lexer{reg: reg}
	toks, err := l.lex("8-4")
	require.NoError(t, err)
	want := []tokenKind{tokenNum, tokenOp, tokenOpen, tokenNum, tokenOp, tokenNum, tokenClose}
	require.Len(t, toks, len(want))
	for i, tok := range toks {
		if tok.kind != want[i] {
			t.Errorf("token %d: want kind %v, got %v", i, want[i], tok)
		}
	}
	plus, _ := reg.operator('+')
	minus, _ := reg.operator('-')
	require.Same(t, plus, toks[1].op)
	require.Same(t, minus, toks[4].op)
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
	}{
		{"unrecognized", "3&5.2", new(*UnrecognizedSymbolError)},
		{"letter", "2x", new(*UnrecognizedSymbolError)},
		{"two-points", "3.157.92+36.4*3", new(*MalformedNumberError)},
		{"point-operator", "126.*14+3", new(*MalformedNumberError)},
		{"point-end", "2+13.", new(*MalformedNumberError)},
		{"lone-point", ".", new(*MalformedNumberError)},
		{"point-bracket", "(.)", new(*MalformedNumberError)},
		{"add-mul", "157+*3.2/6", new(*ConsecutiveOperatorsError)},
		{"div-add", "134/+8", new(*ConsecutiveOperatorsError)},
		{"neg-mul", "3-*4", new(*ConsecutiveOperatorsError)},
		{"lone-op", "*", new(*OperandRequiredError)},
		{"lone-minus", "-", new(*OperandRequiredError)},
	}
	reg := testRegistry(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := lexer{reg: reg}
			toks, err := l.lex(c.src)
			require.Error(t, err, "got tokens %v", toks)
			if !errors.As(err, c.err) {
				t.Errorf("wrong error type %T: %v", err, err)
			}
		})
	}
}

func TestLexMalformedText(t *testing.T) {
	l := lexer{reg: testRegistry(t)}
	_, err := l.lex("3.157.92")
	var me *MalformedNumberError
	require.ErrorAs(t, err, &me)
	require.True(t, me.Multiple)
	require.Equal(t, "3.157.", me.Text)

	_, err = l.lex("2+13.")
	require.ErrorAs(t, err, &me)
	require.False(t, me.Multiple)
	require.Equal(t, "13.", me.Text)
}

func TestLexConsecutive(t *testing.T) {
	l := lexer{reg: testRegistry(t)}
	_, err := l.lex("157+*3.2/6")
	var ce *ConsecutiveOperatorsError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, '+', ce.Left)
	require.Equal(t, '*', ce.Right)
}

func TestTokenKindString(t *testing.T) {
	cases := map[tokenKind]string{
		tokenNone:  "None",
		tokenNum:   "Num",
		tokenClose: "Close",
		12:         "tokenKind(12)",
		-1:         "tokenKind(-1)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("kind %d: want %q, got %q", int(k), want, got)
		}
	}
}
