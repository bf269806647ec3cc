// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"github.com/pkg/errors"

	"github.com/go-air/aigbad/z"
)

// andDfs visits and gates in post order, operands before the gates
// using them.  The traversal keeps an explicit stack, since and
// chains in real circuits are deep.
type andDfs struct {
	ands  []And
	def   []int32 // variable -> index in ands, -1 if not an and
	marks []byte
	stack []z.Var
	fn    func(i int)
}

// newAndDfs requires every and lhs in a to be within MaxVar().
func newAndDfs(a *T, f func(i int)) *andDfs {
	d := &andDfs{
		ands:  a.Ands,
		def:   make([]int32, a.maxVar+1),
		marks: make([]byte, a.maxVar+1),
		fn:    f}
	for i := range d.def {
		d.def[i] = -1
	}
	for i, g := range a.Ands {
		d.def[g.Lhs.Var()] = int32(i)
	}
	return d
}

func (d *andDfs) post(ms ...z.Lit) error {
	for _, m := range ms {
		if err := d.vis(m.Var()); err != nil {
			return err
		}
	}
	return nil
}

func (d *andDfs) vis(v z.Var) error {
	if d.def[v] < 0 || d.marks[v] == 2 {
		return nil
	}
	stack := append(d.stack[:0], v)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		switch d.marks[v] {
		case 0:
			d.marks[v] = 1
			g := &d.ands[d.def[v]]
			for _, c := range [2]z.Var{g.Rhs1.Var(), g.Rhs0.Var()} {
				if d.def[c] < 0 {
					continue
				}
				switch d.marks[c] {
				case 0:
					stack = append(stack, c)
				case 1:
					return errors.Wrapf(ErrInvalidOperand, "combinational loop through and gate %d", d.ands[d.def[c]].Lhs)
				}
			}
		case 1:
			stack = stack[:len(stack)-1]
			d.marks[v] = 2
			d.fn(int(d.def[v]))
		default:
			stack = stack[:len(stack)-1]
		}
	}
	d.stack = stack
	return nil
}
