package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// sentinel marks an open bracket on the operator stack. Its precedence is
// lower than any operator's, so operators inside brackets are always pushed
// on top of it.
var sentinel = &Operator{Symbol: '(', Prec: 0}

// evaluator computes the values of token lists.
type evaluator struct{}

// evalstate holds the stacks for evaluating one expression.
type evalstate struct {
	vals []float64
	ops  []*Operator
}

// push pushes a value.
func (s *evalstate) push(x float64) {
	s.vals = append(s.vals, x)
}

// pop removes the top value and returns it.
func (s *evalstate) pop() float64 {
	r := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return r
}

// top returns the top operator, or nil if there is none.
func (s *evalstate) top() *Operator {
	if len(s.ops) == 0 {
		return nil
	}
	return s.ops[len(s.ops)-1]
}

// apply pops an operator and two values and pushes the result.
func (s *evalstate) apply() error {
	op := s.ops[len(s.ops)-1]
	if op == sentinel {
		return &UnbalancedBracketsError{}
	}
	if len(s.vals) < 2 {
		return &OperandRequiredError{Operator: op.Symbol}
	}
	s.ops = s.ops[:len(s.ops)-1]
	a := s.pop()
	b := s.pop()
	s.push(op.Apply(b, a))
	return nil
}

// eval computes the value of a list of tokens using operator precedence.
func (e *evaluator) eval(toks []token) (float64, error) {
	var s evalstate
	for i, t := range toks {
		switch t.kind {
		case tokenNum:
			x, err := parseNum(t.text)
			if err != nil {
				return 0, err
			}
			s.push(x)
		case tokenOp:
			// Operators need values on both sides.
			if i == 0 || i == len(toks)-1 ||
				toks[i-1].kind == tokenOp || toks[i-1].kind == tokenOpen ||
				toks[i+1].kind == tokenClose {
				return 0, &OperandRequiredError{Operator: t.op.Symbol}
			}
			for top := s.top(); top != nil && top != sentinel && t.op.Prec <= top.Prec; top = s.top() {
				if err := s.apply(); err != nil {
					return 0, err
				}
			}
			s.ops = append(s.ops, t.op)
		case tokenOpen:
			s.ops = append(s.ops, sentinel)
		case tokenClose:
			for top := s.top(); top != sentinel; top = s.top() {
				if top == nil {
					return 0, &UnbalancedBracketsError{}
				}
				if err := s.apply(); err != nil {
					return 0, err
				}
			}
			s.ops = s.ops[:len(s.ops)-1]
		default:
			panic("calculator: invalid token " + t.String())
		}
	}
	for len(s.ops) > 0 {
		if err := s.apply(); err != nil {
			return 0, err
		}
	}
	switch len(s.vals) {
	case 0:
		return 0, &OperandRequiredError{}
	case 1:
		return s.vals[0], nil
	default:
		return 0, &OperandRequiredError{Missing: "values with no operator between them"}
	}
}

// parseNum parses a number token. Numbers too large for float64 become
// infinities.
func parseNum(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &MalformedNumberError{Text: s, Multiple: strings.Count(s, ".") > 1}
	}
	return x, nil
}
