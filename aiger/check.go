// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/aigbad/z"
)

const (
	defNone byte = iota
	defConst
	defInput
	defLatch
	defAnd
)

// Check verifies that a is structurally well formed:
//
//   - every literal is within MaxVar()
//   - inputs, latches and and gates define distinct, positive literals
//   - and gate operands are defined and the and gates are acyclic
//   - latch resets are 0, 1 or the latch literal
//   - outputs and properties refer to defined literals
//   - names are indexed within bounds and contain no new line or
//     carriage return
//
// Check returns nil or an error wrapping one of the package errors.
func (a *T) Check() error {
	defs, err := a.defs()
	if err != nil {
		return err
	}
	for i, l := range a.Latches {
		if err := checkRef(defs, l.Next); err != nil {
			return errors.Wrapf(err, "latch %d next", i)
		}
		if l.Reset != z.LitFalse && l.Reset != z.LitTrue && l.Reset != l.Lit {
			return errors.Wrapf(ErrInvalidReset, "latch %d reset %d", i, l.Reset)
		}
	}
	for i, g := range a.Ands {
		for _, c := range [2]z.Lit{g.Rhs0, g.Rhs1} {
			if int(c.Var()) >= len(defs) {
				return errors.Wrapf(ErrBadLiteral, "and gate %d operand %d", g.Lhs, c)
			}
			if defs[c.Var()] == defNone {
				return errors.Wrapf(ErrInvalidOperand, "and gate %d (index %d) operand %d undefined", g.Lhs, i, c)
			}
		}
	}
	dfs := newAndDfs(a, func(int) {})
	for _, g := range a.Ands {
		if err := dfs.post(g.Lhs); err != nil {
			return err
		}
	}
	props := []struct {
		what string
		ms   []z.Lit
	}{
		{"output", a.Outputs},
		{"bad", a.Bad},
		{"constraint", a.Constraints},
		{"fairness", a.Fair}}
	for _, p := range props {
		for i, m := range p.ms {
			if err := checkRef(defs, m); err != nil {
				return errors.Wrapf(err, "%s %d", p.what, i)
			}
		}
	}
	for i, ms := range a.Justice {
		for j, m := range ms {
			if err := checkRef(defs, m); err != nil {
				return errors.Wrapf(err, "justice %d literal %d", i, j)
			}
		}
	}
	for _, k := range symKinds {
		n := a.count(k)
		for i, nm := range a.symbols[k] {
			if i < 0 || i >= n {
				return errors.Wrapf(ErrInvalidIndex, "symbol %c%d", k, i)
			}
			if !validName(nm) {
				return errors.Wrapf(ErrInvalidName, "symbol %c%d", k, i)
			}
		}
	}
	for i, c := range a.Comments {
		if strings.Contains(c, "\n") {
			return errors.Wrapf(ErrInvalidName, "comment line %d", i)
		}
	}
	return nil
}

// defs maps each variable to the kind of element defining it.
func (a *T) defs() ([]byte, error) {
	defs := make([]byte, a.maxVar+1)
	defs[0] = defConst
	define := func(m z.Lit, kind byte, what string, i int) error {
		if m.Var() > a.maxVar {
			return errors.Wrapf(ErrBadLiteral, "%s %d literal %d exceeds maxvar %d", what, i, m, a.maxVar)
		}
		if !m.IsPos() {
			return errors.Wrapf(ErrNegatedDef, "%s %d literal %d", what, i, m)
		}
		if defs[m.Var()] != defNone {
			return errors.Wrapf(ErrRedefined, "%s %d literal %d", what, i, m)
		}
		defs[m.Var()] = kind
		return nil
	}
	for i, m := range a.Inputs {
		if err := define(m, defInput, "input", i); err != nil {
			return nil, err
		}
	}
	for i, l := range a.Latches {
		if err := define(l.Lit, defLatch, "latch", i); err != nil {
			return nil, err
		}
	}
	for i, g := range a.Ands {
		if err := define(g.Lhs, defAnd, "and gate", i); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

func checkRef(defs []byte, m z.Lit) error {
	if int(m.Var()) >= len(defs) {
		return errors.Wrapf(ErrBadLiteral, "literal %d exceeds maxvar %d", m, len(defs)-1)
	}
	if defs[m.Var()] == defNone {
		return errors.Wrapf(ErrBadLiteral, "literal %d undefined", m)
	}
	return nil
}

// IsCanonical returns whether a is numbered as the binary format
// requires: inputs 1..I, latches I+1..I+L, and gates I+L+1..I+L+A in
// order with Lhs > Rhs0 >= Rhs1, and M = I+L+A.
func (a *T) IsCanonical() bool {
	nI, nL := len(a.Inputs), len(a.Latches)
	if int(a.maxVar) != nI+nL+len(a.Ands) {
		return false
	}
	for i, m := range a.Inputs {
		if m != z.Var(i+1).Pos() {
			return false
		}
	}
	for i, l := range a.Latches {
		if l.Lit != z.Var(nI+i+1).Pos() {
			return false
		}
	}
	for i, g := range a.Ands {
		if g.Lhs != z.Var(nI+nL+i+1).Pos() {
			return false
		}
		if g.Lhs <= g.Rhs0 || g.Rhs0 < g.Rhs1 {
			return false
		}
	}
	return true
}
