package calculator

import (
	"strconv"
	"strings"
)

type token struct {
	kind tokenKind
	text string
	// op is the operator for tokenOp tokens.
	op *Operator
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// lexer converts standardized expressions to tokens.
type lexer struct {
	reg *registry
}

// negation is an open "(0-" group the lexer has written in place of a minus
// sign.
type negation struct {
	// depth is the bracket depth at which the group was opened.
	depth int
	// prec is the precedence of the operator preceding the minus sign, or 0
	// if the sign starts an expression or bracket.
	prec int
	// sub is set if the minus sign follows an operand, so that the group
	// is a subtraction rather than a negation.
	sub bool
	// extended is set once the group has absorbed a following subtraction.
	extended bool
}

// lexstate is the state of lexing one expression.
type lexstate struct {
	toks  []token
	negs  []negation
	depth int
}

// last returns the kind of the last token emitted.
func (s *lexstate) last() tokenKind {
	if len(s.toks) == 0 {
		return tokenNone
	}
	return s.toks[len(s.toks)-1].kind
}

func (s *lexstate) emit(kind tokenKind, text string, op *Operator) {
	s.toks = append(s.toks, token{kind: kind, text: text, op: op})
}

func (s *lexstate) emitOp(op *Operator) {
	s.emit(tokenOp, string(op.Symbol), op)
}

// closeNeg closes the innermost negation group.
func (s *lexstate) closeNeg() {
	s.negs = s.negs[:len(s.negs)-1]
	s.emit(tokenClose, ")", nil)
}

// settle closes the negation groups at the current depth which must end
// before op is emitted. inserted is true if op is the addition which
// precedes a subtraction.
//
// A negation holds only its operand, so it ends before any operator that
// it does not absorb as a subtraction. A subtraction holds everything that
// binds more tightly than the addition written before it.
func (s *lexstate) settle(op *Operator, inserted bool) {
	for len(s.negs) > 0 {
		n := &s.negs[len(s.negs)-1]
		if n.depth != s.depth {
			return
		}
		if n.sub && op.Prec <= n.prec || !n.sub && (n.prec >= op.Prec || !inserted && !n.extended) {
			s.closeNeg()
			continue
		}
		if n.sub {
			return
		}
		if inserted {
			n.extended = true
		}
		return
	}
}

// lex converts a standardized expression to a list of tokens. Every minus
// sign becomes a subtraction from zero, so that evaluation only needs binary
// operators.
func (l *lexer) lex(src string) ([]token, error) {
	rs := []rune(src)
	if len(rs) == 1 {
		if op, ok := l.reg.operator(rs[0]); ok {
			return nil, &OperandRequiredError{Operator: op.Symbol}
		}
	}
	s := lexstate{toks: make([]token, 0, len(rs))}
	for i, c := range rs {
		switch {
		case isDigit(c), c == '.':
			trail := i+1 < len(rs) && isDigit(rs[i+1])
			if s.last() != tokenNum {
				text := string(c)
				if c == '.' {
					if !trail {
						return nil, &MalformedNumberError{Text: "."}
					}
					text = "0."
				}
				s.emit(tokenNum, text, nil)
				continue
			}
			// Append to the number in progress.
			k := len(s.toks) - 1
			cur := s.toks[k].text
			if c == '.' {
				if strings.Contains(cur, ".") {
					return nil, &MalformedNumberError{Text: cur + ".", Multiple: true}
				}
				if !trail {
					return nil, &MalformedNumberError{Text: cur + "."}
				}
			}
			s.toks[k].text = cur + string(c)
		case c == '(':
			s.emit(tokenOpen, "(", nil)
			s.depth++
		case c == ')':
			for len(s.negs) > 0 && s.negs[len(s.negs)-1].depth == s.depth {
				s.closeNeg()
			}
			s.emit(tokenClose, ")", nil)
			s.depth--
		default:
			op, ok := l.reg.operator(c)
			if !ok {
				return nil, &UnrecognizedSymbolError{Symbol: c}
			}
			if c == '-' {
				l.negate(&s, op)
				continue
			}
			if s.last() == tokenOp {
				return nil, &ConsecutiveOperatorsError{Left: s.toks[len(s.toks)-1].op.Symbol, Right: c}
			}
			s.settle(op, false)
			s.emitOp(op)
		}
	}
	for len(s.negs) > 0 {
		s.closeNeg()
	}
	return s.toks, nil
}

// negate writes a minus sign as a subtraction from zero, adding to the
// preceding operand if there is one.
func (l *lexer) negate(s *lexstate, minus *Operator) {
	prec, sub := 0, false
	switch s.last() {
	case tokenNum, tokenClose:
		plus, _ := l.reg.operator('+')
		s.settle(plus, true)
		s.emitOp(plus)
		prec, sub = plus.Prec, true
	case tokenOp:
		prec = s.toks[len(s.toks)-1].op.Prec
	}
	s.emit(tokenOpen, "(", nil)
	s.emit(tokenNum, "0", nil)
	s.emitOp(minus)
	s.negs = append(s.negs, negation{depth: s.depth, prec: prec, sub: sub})
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
