// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"github.com/go-air/aigbad/z"
)

// Reencode returns a copy of a numbered canonically, as required by
// the binary format: inputs, then latches, then and gates in
// topological order.  Unused variables are dropped.  Names, comments
// and the order of inputs, latches, outputs and properties are kept.
//
// a must be well formed, see Check.
func Reencode(a *T) *T {
	b := Make(len(a.Ands))
	vmap := make([]z.Var, a.maxVar+1)
	mapLit := func(m z.Lit) z.Lit {
		return z.MakeLit(vmap[m.Var()], !m.IsPos())
	}
	b.Inputs = make([]z.Lit, 0, len(a.Inputs))
	for _, m := range a.Inputs {
		n := b.newVar()
		vmap[m.Var()] = n.Var()
		b.Inputs = append(b.Inputs, n)
	}
	b.Latches = make([]Latch, 0, len(a.Latches))
	for _, l := range a.Latches {
		n := b.newVar()
		vmap[l.Lit.Var()] = n.Var()
		b.Latches = append(b.Latches, Latch{Lit: n})
	}
	dfs := newAndDfs(a, func(i int) {
		g := a.Ands[i]
		n := b.newVar()
		vmap[g.Lhs.Var()] = n.Var()
		c0, c1 := mapLit(g.Rhs0), mapLit(g.Rhs1)
		if c0 < c1 {
			c0, c1 = c1, c0
		}
		b.Ands = append(b.Ands, And{Lhs: n, Rhs0: c0, Rhs1: c1})
	})
	for _, g := range a.Ands {
		if err := dfs.post(g.Lhs); err != nil {
			panic(err)
		}
	}
	for i, l := range a.Latches {
		bl := &b.Latches[i]
		bl.Next = mapLit(l.Next)
		switch l.Reset {
		case z.LitFalse, z.LitTrue:
			bl.Reset = l.Reset
		default:
			bl.Reset = bl.Lit
		}
	}
	mapLits := func(ms []z.Lit) []z.Lit {
		if ms == nil {
			return nil
		}
		res := make([]z.Lit, len(ms))
		for i, m := range ms {
			res[i] = mapLit(m)
		}
		return res
	}
	b.Outputs = mapLits(a.Outputs)
	b.Bad = mapLits(a.Bad)
	b.Constraints = mapLits(a.Constraints)
	b.Fair = mapLits(a.Fair)
	if a.Justice != nil {
		b.Justice = make([][]z.Lit, len(a.Justice))
		for i, ms := range a.Justice {
			b.Justice[i] = mapLits(ms)
		}
	}
	b.Comments = append([]string(nil), a.Comments...)
	for _, k := range symKinds {
		for i, nm := range a.symbols[k] {
			b.sym(k)[i] = nm
		}
	}
	return b
}
