// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// Lit is an AIGER literal.  For a variable v, 2*v is v and 2*v+1 is
// not(v).  Variable 0 is the constant false, so LitFalse is 0 and
// LitTrue is 1.
type Lit uint32

const (
	LitFalse Lit = 0
	LitTrue  Lit = 1
)

// MakeLit returns the literal for v, negated if neg is true.
func MakeLit(v Var, neg bool) Lit {
	m := Lit(v << 1)
	if neg {
		m |= 1
	}
	return m
}

func (m Lit) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

// Var returns the Var associated with m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return Lit(m ^ 1)
}

// Sign returns 1 if m is a variable and -1 if m is a negated
// variable.
func (m Lit) Sign() int8 {
	if m&1 == 0 {
		return 1
	}
	return -1
}

// IsPos returns true if m is a variable.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// IsConst returns true if m is LitFalse or LitTrue.
func (m Lit) IsConst() bool {
	return m < 2
}

// Pos returns the positive literal with the same variable as m.
func (m Lit) Pos() Lit {
	return m &^ 1
}
