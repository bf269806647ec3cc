// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"io"
	"sort"

	"github.com/go-air/aigbad/z"
)

// WriteAscii writes an ASCII version of AIGER format
// for the object a to the writer w.  WriteAscii returns
// a non-nil error if a is not well formed (see Check) or if
// there was an io error while writing.
func (a *T) WriteAscii(w io.Writer) error {
	if err := a.Check(); err != nil {
		return err
	}
	hdr := a.Header()
	bw := newWriter(w)
	hdr.write(bw)
	for _, m := range a.Inputs {
		bw.litLine(m)
	}
	for _, l := range a.Latches {
		bw.lit(l.Lit)
		bw.byte(' ')
		a.writeLatch(bw, l)
	}
	a.writeProps(bw)
	for _, g := range a.Ands {
		bw.lit(g.Lhs)
		bw.byte(' ')
		bw.lit(g.Rhs0)
		bw.byte(' ')
		bw.litLine(g.Rhs1)
	}
	a.writeSymtab(bw)
	a.writeComments(bw)
	return bw.flush()
}

// WriteBinary writes a in binary AIGER format (version 1.9) to the
// writer w.  If a is not numbered canonically (see IsCanonical), the
// reencoded copy Reencode(a) is written instead.  WriteBinary returns
// a non-nil error if a is not well formed or if there was an io error
// while writing.
func (a *T) WriteBinary(w io.Writer) error {
	if err := a.Check(); err != nil {
		return err
	}
	if !a.IsCanonical() {
		a = Reencode(a)
	}
	hdr := a.Header()
	hdr.Binary = true
	bw := newWriter(w)
	hdr.write(bw)
	for _, l := range a.Latches {
		a.writeLatch(bw, l)
	}
	a.writeProps(bw)
	for _, g := range a.Ands {
		bw.write7(uint32(g.Lhs - g.Rhs0))
		bw.write7(uint32(g.Rhs0 - g.Rhs1))
	}
	a.writeSymtab(bw)
	a.writeComments(bw)
	return bw.flush()
}

// writes the next state and, if not zero, the reset value of l.
func (a *T) writeLatch(w *writer, l Latch) {
	w.lit(l.Next)
	if l.Reset != z.LitFalse {
		w.byte(' ')
		w.lit(l.Reset)
	}
	w.byte('\n')
}

// writes outputs, bad states, constraints, justice and fairness,
// which are coded the same way in both formats.
func (a *T) writeProps(w *writer) {
	for _, m := range a.Outputs {
		w.litLine(m)
	}
	for _, m := range a.Bad {
		w.litLine(m)
	}
	for _, m := range a.Constraints {
		w.litLine(m)
	}
	for _, ms := range a.Justice {
		w.uint(uint64(len(ms)))
		w.byte('\n')
	}
	for _, ms := range a.Justice {
		for _, m := range ms {
			w.litLine(m)
		}
	}
	for _, m := range a.Fair {
		w.litLine(m)
	}
}

// write the symbol table, by kind and then by index.
func (a *T) writeSymtab(w *writer) {
	var idx []int
	for _, k := range symKinds {
		syms := a.symbols[k]
		idx = idx[:0]
		for i := range syms {
			idx = append(idx, i)
		}
		sort.Ints(idx)
		for _, i := range idx {
			w.byte(k)
			w.uint(uint64(i))
			w.byte(' ')
			w.str(syms[i])
			w.byte('\n')
		}
	}
}

func (a *T) writeComments(w *writer) {
	if len(a.Comments) == 0 {
		return
	}
	w.str("c\n")
	for _, c := range a.Comments {
		w.str(c)
		w.byte('\n')
	}
}
