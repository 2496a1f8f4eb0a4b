// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package expr

import (
	"errors"
	"fmt"

	"github.com/dalzilio/robdd"
	"github.com/tliron/commonlog"
)

var logger = commonlog.GetLogger("robdd.expr")

// ErrInvalid is returned when the BDD fails to build the diagram of an
// expression, for instance because its node table is full.
var ErrInvalid = errors.New("cannot build diagram")

// Build returns the diagram of e in BDD b. Operators are applied in the order
// they are read: a negation applies to the operand that follows it, and a
// binary operator combines everything on its left with the operand on its
// right.
func (e *Expression) Build(b *robdd.BDD) (robdd.Node, error) {
	res := e.build(b)
	if res < 0 {
		return res, fmt.Errorf("%w: %s", ErrInvalid, b.Error())
	}
	return res, nil
}

func (e *Expression) build(b *robdd.BDD) robdd.Node {
	res := e.Head.build(b)
	for _, t := range e.Tail {
		rhs := t.Operand.build(b)
		if t.IsOr() {
			res = b.Or(res, rhs)
		} else {
			res = b.And(res, rhs)
		}
	}
	return res
}

func (o *Operand) build(b *robdd.BDD) robdd.Node {
	switch {
	case o.Not != nil:
		return b.Not(o.Not.build(b))
	case o.Group != nil:
		return o.Group.build(b)
	}
	return b.Leaf(o.Var)
}

// Compile parses src and returns its diagram in BDD b.
func Compile(b *robdd.BDD, src string) (robdd.Node, error) {
	e, err := Parse(src)
	if err != nil {
		logger.Debugf("cannot parse %q: %s", src, err)
		return robdd.False, fmt.Errorf("parse error: %w", err)
	}
	return e.Build(b)
}

// Result is the outcome of the comparison of two expressions.
type Result int

const (
	// Invalid means that at least one of the expressions could not be
	// compiled.
	Invalid Result = iota
	// Different means that the expressions denote different functions.
	Different
	// Same means that the expressions denote the same function.
	Same
)

func (r Result) String() string {
	switch r {
	case Same:
		return "equivalent"
	case Different:
		return "different"
	}
	return "invalid"
}

// Check compiles e1 and e2 in BDD b and compares their diagrams. The error
// gives the cause of the first failure when the result is Invalid.
func Check(b *robdd.BDD, e1, e2 string) (Result, error) {
	n1, err := Compile(b, e1)
	if err != nil {
		return Invalid, fmt.Errorf("first expression: %w", err)
	}
	n2, err := Compile(b, e2)
	if err != nil {
		return Invalid, fmt.Errorf("second expression: %w", err)
	}
	if n1 != n2 {
		return Different, nil
	}
	return Same, nil
}

// Equivalent reports whether e1 and e2 are both valid expressions denoting the
// same Boolean function.
func Equivalent(b *robdd.BDD, e1, e2 string) bool {
	res, _ := Check(b, e1, e2)
	return res == Same
}
