// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/aigbad/z"
)

// Uninitialized may be passed as the reset value to AddLatch to
// declare a latch whose initial value is unconstrained.  It is stored
// as the latch's own literal, as in the aiger format.
const Uninitialized = ^z.Lit(0)

// Latch is a sequential element.  Reset is z.LitFalse, z.LitTrue, or Lit
// itself when the initial value is unconstrained.
type Latch struct {
	Lit   z.Lit
	Next  z.Lit
	Reset z.Lit
}

// And is a 2-input and gate, Lhs = Rhs0 & Rhs1.
type And struct {
	Lhs  z.Lit
	Rhs0 z.Lit
	Rhs1 z.Lit
}

// Type T contains the information read from or written to
// disk in Aiger format version 1.9.  Literals are kept exactly as
// numbered in the file.  The zero value is an empty object ready to
// use.
type T struct {
	Inputs      []z.Lit
	Latches     []Latch
	Ands        []And
	Outputs     []z.Lit
	Bad         []z.Lit   // Read/Write List of Bad state literals
	Constraints []z.Lit   // Read/Write List of Environment Constraints
	Justice     [][]z.Lit // Read/Write List of Justice Properties
	Fair        []z.Lit   // Read/Write List of Fairness Constraints
	Comments    []string  // lines of the trailing comment section
	maxVar      z.Var
	symbols     map[byte]map[int]string // symbol table
}

// symbol table kinds, in the order they are written.
var symKinds = [...]byte{'i', 'l', 'o', 'b', 'c', 'j', 'f'}

// Make makes an empty Aiger object with initial capacity hint c
// for its and gates.
func Make(c int) *T {
	result := &T{
		Ands:    make([]And, 0, c),
		symbols: make(map[byte]map[int]string, len(symKinds))}
	for _, k := range symKinds {
		result.symbols[k] = make(map[int]string)
	}
	return result
}

// Copy makes a copy of an aiger object.
func Copy(a *T) *T {
	if a == nil {
		return nil
	}
	result := Make(len(a.Ands))
	result.maxVar = a.maxVar
	result.Inputs = append([]z.Lit(nil), a.Inputs...)
	result.Latches = append([]Latch(nil), a.Latches...)
	result.Ands = append(result.Ands, a.Ands...)
	result.Outputs = append([]z.Lit(nil), a.Outputs...)
	result.Bad = append([]z.Lit(nil), a.Bad...)
	result.Constraints = append([]z.Lit(nil), a.Constraints...)
	result.Fair = append([]z.Lit(nil), a.Fair...)
	result.Comments = append([]string(nil), a.Comments...)
	if a.Justice != nil {
		result.Justice = make([][]z.Lit, len(a.Justice))
		for i, ms := range a.Justice {
			result.Justice[i] = append([]z.Lit(nil), ms...)
		}
	}
	for _, k := range symKinds {
		for i, nm := range a.symbols[k] {
			result.sym(k)[i] = nm
		}
	}
	return result
}

// MaxVar returns the maximum variable index M.
func (a *T) MaxVar() z.Var {
	return a.maxVar
}

// Header returns the counts of a, as found in an aiger header.
func (a *T) Header() Header {
	return Header{
		Max:        uint(a.maxVar),
		In:         uint(len(a.Inputs)),
		Latch:      uint(len(a.Latches)),
		Out:        uint(len(a.Outputs)),
		And:        uint(len(a.Ands)),
		Bad:        uint(len(a.Bad)),
		Constraint: uint(len(a.Constraints)),
		Justice:    uint(len(a.Justice)),
		Fair:       uint(len(a.Fair))}
}

func (a *T) newVar() z.Lit {
	a.maxVar++
	return a.maxVar.Pos()
}

// sym returns the symbol table of kind k, creating it if need be.
func (a *T) sym(k byte) map[int]string {
	if a.symbols == nil {
		a.symbols = make(map[byte]map[int]string, len(symKinds))
	}
	m := a.symbols[k]
	if m == nil {
		m = make(map[int]string)
		a.symbols[k] = m
	}
	return m
}

func (a *T) setSym(k byte, m map[int]string) {
	a.sym(k)
	a.symbols[k] = m
}

func (a *T) setName(k byte, index int, nm []string) {
	if len(nm) > 0 {
		a.sym(k)[index] = nm[0]
	}
}

// names are single lines; a trailing carriage return would be read
// back as part of a CRLF line end.
func validName(nm string) bool {
	return !strings.ContainsAny(nm, "\n\r")
}

func (a *T) checkLit(m z.Lit) error {
	if m.Var() > a.maxVar {
		return errors.Wrapf(ErrBadLiteral, "literal %d with maxvar %d", m, a.maxVar)
	}
	return nil
}

// AddInput adds a new input, optionally named nm[0], and
// returns its literal.
func (a *T) AddInput(nm ...string) z.Lit {
	m := a.newVar()
	a.Inputs = append(a.Inputs, m)
	a.setName('i', len(a.Inputs)-1, nm)
	return m
}

// AddLatch adds a new latch with next state next and reset value
// reset, optionally named nm[0], and returns its literal.  next may
// refer to the new latch itself.  reset must be z.LitFalse, z.LitTrue
// or Uninitialized.
func (a *T) AddLatch(next, reset z.Lit, nm ...string) (z.Lit, error) {
	if next.Var() > a.maxVar+1 {
		return 0, errors.Wrapf(ErrBadLiteral, "latch next %d with maxvar %d", next, a.maxVar)
	}
	if reset != z.LitFalse && reset != z.LitTrue && reset != Uninitialized {
		return 0, errors.Wrapf(ErrInvalidReset, "latch reset %d", reset)
	}
	m := a.newVar()
	if reset == Uninitialized {
		reset = m
	}
	a.Latches = append(a.Latches, Latch{Lit: m, Next: next, Reset: reset})
	a.setName('l', len(a.Latches)-1, nm)
	return m, nil
}

// SetNext sets the next state of the index'th latch.
func (a *T) SetNext(index int, next z.Lit) error {
	if index < 0 || index >= len(a.Latches) {
		return ErrInvalidIndex
	}
	if err := a.checkLit(next); err != nil {
		return err
	}
	a.Latches[index].Next = next
	return nil
}

// AddAnd adds the and gate c0 & c1 and returns its literal.  Both
// operands must already be defined: AddAnd returns ErrInvalidOperand
// if either variable exceeds MaxVar().
func (a *T) AddAnd(c0, c1 z.Lit) (z.Lit, error) {
	if c0.Var() > a.maxVar || c1.Var() > a.maxVar {
		return 0, errors.Wrapf(ErrInvalidOperand, "and(%d, %d) with maxvar %d", c0, c1, a.maxVar)
	}
	if c0 < c1 {
		c0, c1 = c1, c0
	}
	m := a.newVar()
	a.Ands = append(a.Ands, And{Lhs: m, Rhs0: c0, Rhs1: c1})
	return m, nil
}

// AddOutput adds m as an output, optionally named nm[0].
func (a *T) AddOutput(m z.Lit, nm ...string) error {
	if err := a.checkLit(m); err != nil {
		return err
	}
	a.Outputs = append(a.Outputs, m)
	a.setName('o', len(a.Outputs)-1, nm)
	return nil
}

// AddBad adds m as a bad state property, optionally named nm[0].
func (a *T) AddBad(m z.Lit, nm ...string) error {
	if err := a.checkLit(m); err != nil {
		return err
	}
	a.Bad = append(a.Bad, m)
	a.setName('b', len(a.Bad)-1, nm)
	return nil
}

// AddConstraint adds m as an environment constraint, optionally
// named nm[0].
func (a *T) AddConstraint(m z.Lit, nm ...string) error {
	if err := a.checkLit(m); err != nil {
		return err
	}
	a.Constraints = append(a.Constraints, m)
	a.setName('c', len(a.Constraints)-1, nm)
	return nil
}

// AddJustice adds a justice property over ms, optionally named nm[0].
// ms is copied.
func (a *T) AddJustice(ms []z.Lit, nm ...string) error {
	for _, m := range ms {
		if err := a.checkLit(m); err != nil {
			return err
		}
	}
	a.Justice = append(a.Justice, append([]z.Lit{}, ms...))
	a.setName('j', len(a.Justice)-1, nm)
	return nil
}

// AddFair adds m as a fairness constraint, optionally named nm[0].
func (a *T) AddFair(m z.Lit, nm ...string) error {
	if err := a.checkLit(m); err != nil {
		return err
	}
	a.Fair = append(a.Fair, m)
	a.setName('f', len(a.Fair)-1, nm)
	return nil
}

// RemoveBad removes the index'th bad state property.  Names of later
// bad states move down with them.
func (a *T) RemoveBad(index int) error {
	if index < 0 || index >= len(a.Bad) {
		return ErrInvalidIndex
	}
	a.Bad = append(a.Bad[:index], a.Bad[index+1:]...)
	old := a.symbols['b']
	syms := make(map[int]string, len(old))
	for i, nm := range old {
		switch {
		case i < index:
			syms[i] = nm
		case i > index:
			syms[i-1] = nm
		}
	}
	a.setSym('b', syms)
	return nil
}

// ClearBad removes all bad state properties and their names.
func (a *T) ClearBad() {
	a.Bad = nil
	a.setSym('b', make(map[int]string))
}

// AddComment appends the lines of text to the comment section.
func (a *T) AddComment(text string) {
	a.Comments = append(a.Comments, strings.Split(text, "\n")...)
}

func (a *T) count(k byte) int {
	switch k {
	case 'i':
		return len(a.Inputs)
	case 'l':
		return len(a.Latches)
	case 'o':
		return len(a.Outputs)
	case 'b':
		return len(a.Bad)
	case 'c':
		return len(a.Constraints)
	case 'j':
		return len(a.Justice)
	case 'f':
		return len(a.Fair)
	}
	return 0
}

func (a *T) name(k byte, index int, nm string) error {
	if index < 0 || index >= a.count(k) {
		return ErrInvalidIndex
	}
	if !validName(nm) {
		return ErrInvalidName
	}
	a.sym(k)[index] = nm
	return nil
}

func (a *T) symbol(k byte, index int) (string, bool) {
	nm, found := a.symbols[k][index]
	return nm, found
}

// Name index'th input with name nm
// return a non-nil error if index is out of bounds or nm
// contains a new line or carriage return
func (a *T) NameInput(index int, nm string) error {
	return a.name('i', index, nm)
}

// InputName gives the name of the index'th Input in the aiger
// system.  If no such name exists, InputName returns ("", false).
// Otherwise, InputName returns (name, true).
func (a *T) InputName(index int) (string, bool) {
	return a.symbol('i', index)
}

// Name index'th Latch with name nm
// return a non-nil error if index is out of bounds or nm
// contains a new line
func (a *T) NameLatch(index int, nm string) error {
	return a.name('l', index, nm)
}

// LatchName gives the name of the index'th Latch, as InputName.
func (a *T) LatchName(index int) (string, bool) {
	return a.symbol('l', index)
}

// Name index'th output with name nm
// return a non-nil error if index is out of bounds or nm
// contains a new line
func (a *T) NameOutput(index int, nm string) error {
	return a.name('o', index, nm)
}

// OutputName gives the name of the index'th Output, as InputName.
func (a *T) OutputName(index int) (string, bool) {
	return a.symbol('o', index)
}

// Name index'th Bad State property with name nm.
func (a *T) NameBad(index int, nm string) error {
	return a.name('b', index, nm)
}

// BadName gives the name of the index'th Bad state, as InputName.
func (a *T) BadName(index int) (string, bool) {
	return a.symbol('b', index)
}

// Name index'th Constraint with name nm.
func (a *T) NameConstraint(index int, nm string) error {
	return a.name('c', index, nm)
}

// ConstraintName gives the name of the index'th Constraint.
func (a *T) ConstraintName(index int) (string, bool) {
	return a.symbol('c', index)
}

// Name index'th justice property with name nm.
func (a *T) NameJustice(index int, nm string) error {
	return a.name('j', index, nm)
}

// JusticeName gives the name of the index'th Justice property.
func (a *T) JusticeName(index int) (string, bool) {
	return a.symbol('j', index)
}

// Name the index'th fairness constraint with name nm.
func (a *T) NameFair(index int, nm string) error {
	return a.name('f', index, nm)
}

// FairName gives the name of the index'th fairness constraint.
func (a *T) FairName(index int) (string, bool) {
	return a.symbol('f', index)
}
