// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/aigbad/z"
)

type format int

const (
	anyFormat format = iota
	asciiFormat
	binaryFormat
)

// ReadAscii reads an ascii coded Aiger file (version 1.9 or 1.0).
// ReadAscii returns a non-nil Aiger object and a nil error, or a nil
// Aiger object and a non-nil error describing the underlying problem.
func ReadAscii(r io.Reader) (*T, error) {
	return read(newReader(r), asciiFormat)
}

// ReadBinary reads a binary Aiger file (version 1.9 or 1.0), with the
// same result convention as ReadAscii.
func ReadBinary(r io.Reader) (*T, error) {
	return read(newReader(r), binaryFormat)
}

// Read reads an ascii or binary Aiger file, as indicated by its header.
func Read(r io.Reader) (*T, error) {
	return read(newReader(r), anyFormat)
}

// capHint bounds preallocation by header counts, which are not
// trusted until the corresponding input has been read.
func capHint(n uint) int {
	if n > 1<<16 {
		return 1 << 16
	}
	return int(n)
}

type decoder struct {
	*reader
	hdr *Header
	a   *T
}

func read(r *reader, f format) (*T, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if (f == asciiFormat && hdr.Binary) || (f == binaryFormat && !hdr.Binary) {
		return nil, errors.WithStack(ErrFormatMismatch)
	}
	a := Make(capHint(hdr.And))
	a.maxVar = z.Var(hdr.Max)
	d := &decoder{reader: r, hdr: hdr, a: a}
	if err := d.decode(); err != nil {
		return nil, err
	}
	if err := a.Check(); err != nil {
		return nil, err
	}
	return a, nil
}

func (d *decoder) decode() error {
	if err := d.readInputs(); err != nil {
		return err
	}
	if err := d.readLatches(); err != nil {
		return err
	}
	var err error
	if d.a.Outputs, err = d.readLits("output", d.hdr.Out); err != nil {
		return err
	}
	if d.a.Bad, err = d.readLits("bad state", d.hdr.Bad); err != nil {
		return err
	}
	if d.a.Constraints, err = d.readLits("constraint", d.hdr.Constraint); err != nil {
		return err
	}
	if err := d.readJustice(); err != nil {
		return err
	}
	if d.a.Fair, err = d.readLits("fairness constraint", d.hdr.Fair); err != nil {
		return err
	}
	if d.hdr.Binary {
		err = d.readBinaryAnds()
	} else {
		err = d.readAsciiAnds()
	}
	if err != nil {
		return err
	}
	return d.readSymsAndComments()
}

func (d *decoder) readInputs() error {
	a, hdr := d.a, d.hdr
	a.Inputs = make([]z.Lit, 0, capHint(hdr.In))
	var i uint
	for i = 0; i < hdr.In; i++ {
		if hdr.Binary {
			a.Inputs = append(a.Inputs, z.Var(i+1).Pos())
			continue
		}
		m, err := d.readLitLine("input", a.maxVar)
		if err != nil {
			return err
		}
		a.Inputs = append(a.Inputs, m)
	}
	return nil
}

// each latch may optionally contain reset info on
// each latch line.  version 1.9 requires it, previous
// versions just zero latches initially.
func (d *decoder) readLatches() error {
	a, hdr := d.a, d.hdr
	a.Latches = make([]Latch, 0, capHint(hdr.Latch))
	var i uint
	for i = 0; i < hdr.Latch; i++ {
		var l Latch
		if hdr.Binary {
			l.Lit = z.Var(hdr.In + i + 1).Pos()
		} else {
			m, err := d.readLit("latch", a.maxVar)
			if err != nil {
				return err
			}
			if err := d.expect(' '); err != nil {
				return d.errorf(err, "latch %d", m)
			}
			l.Lit = m
		}
		nxt, err := d.readLit("latch next", a.maxVar)
		if err != nil {
			return err
		}
		l.Next = nxt
		b, err := d.readByte()
		if err != nil {
			return d.errorf(err, "latch %d", l.Lit)
		}
		if b == '\r' {
			if b, err = d.readByte(); err != nil {
				return d.errorf(err, "latch %d", l.Lit)
			}
		}
		switch b {
		case '\n':
		case ' ':
			ini, err := d.readLit("latch reset", a.maxVar)
			if err != nil {
				return err
			}
			if ini != z.LitFalse && ini != z.LitTrue && ini != l.Lit {
				return d.errorf(ErrInvalidReset, "latch %d reset %d", l.Lit, ini)
			}
			l.Reset = ini
			if err := d.expect('\n'); err != nil {
				return d.errorf(err, "latch %d", l.Lit)
			}
		default:
			return d.errorf(ErrUnexpectedChar, "latch %d: %q", l.Lit, b)
		}
		a.Latches = append(a.Latches, l)
	}
	return nil
}

func (d *decoder) readLits(what string, count uint) ([]z.Lit, error) {
	ms := make([]z.Lit, 0, capHint(count))
	var i uint
	for i = 0; i < count; i++ {
		m, err := d.readLitLine(what, d.a.maxVar)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// all justice sizes come first, then the literals of each
// justice property in turn.
func (d *decoder) readJustice() error {
	counts := make([]uint32, 0, capHint(d.hdr.Justice))
	var i uint
	for i = 0; i < d.hdr.Justice; i++ {
		n, err := d.readUint()
		if err != nil {
			return d.errorf(err, "justice size %d", i)
		}
		if err := d.expect('\n'); err != nil {
			return d.errorf(err, "justice size %d", i)
		}
		counts = append(counts, n)
	}
	d.a.Justice = make([][]z.Lit, 0, len(counts))
	for _, c := range counts {
		ms, err := d.readLits("justice literal", uint(c))
		if err != nil {
			return err
		}
		d.a.Justice = append(d.a.Justice, ms)
	}
	return nil
}

// and gate k of a binary file defines 2*(I+L+1+k), followed by
// the deltas lhs-rhs0 and rhs0-rhs1.
func (d *decoder) readBinaryAnds() error {
	hdr := d.hdr
	id := uint32(hdr.In+hdr.Latch+1) * 2
	var i uint
	for i = 0; i < hdr.And; i++ {
		delta0, err := d.read7()
		if err != nil {
			return errors.Wrapf(err, "and gate %d", id)
		}
		if delta0 == 0 || delta0 > id {
			return errors.Wrapf(ErrInvalidOperand, "and gate %d: delta %d", id, delta0)
		}
		c0 := id - delta0
		delta1, err := d.read7()
		if err != nil {
			return errors.Wrapf(err, "and gate %d", id)
		}
		if delta1 > c0 {
			return errors.Wrapf(ErrInvalidOperand, "and gate %d: delta %d past 0", id, delta1)
		}
		c1 := c0 - delta1
		d.a.Ands = append(d.a.Ands, And{Lhs: z.Lit(id), Rhs0: z.Lit(c0), Rhs1: z.Lit(c1)})
		id += 2
	}
	return nil
}

func (d *decoder) readAsciiAnds() error {
	max := d.a.maxVar
	var i uint
	for i = 0; i < d.hdr.And; i++ {
		g, err := d.readLit("and gate", max)
		if err != nil {
			return err
		}
		if err := d.expect(' '); err != nil {
			return d.errorf(err, "and gate %d", g)
		}
		c0, err := d.readLit("and operand", max)
		if err != nil {
			return err
		}
		if err := d.expect(' '); err != nil {
			return d.errorf(err, "and gate %d", g)
		}
		c1, err := d.readLitLine("and operand", max)
		if err != nil {
			return err
		}
		d.a.Ands = append(d.a.Ands, And{Lhs: g, Rhs0: c0, Rhs1: c1})
	}
	return nil
}

func (d *decoder) readSymsAndComments() error {
	for {
		b, e := d.br.ReadByte()
		if e == io.EOF {
			return nil
		}
		if e != nil {
			return errors.WithStack(e)
		}
		switch b {
		case 'i', 'l', 'o', 'b', 'c', 'j', 'f':
		default:
			return d.errorf(ErrUnexpectedChar, "symbol table: %q", b)
		}
		// symtab must precede comments
		if b == 'c' {
			bn, e := d.br.Peek(1)
			if e == io.EOF || (e == nil && (bn[0] == '\n' || bn[0] == '\r')) {
				return d.readComments()
			}
		}
		index, err := d.readUint()
		if err != nil {
			return d.errorf(err, "symbol %c", b)
		}
		if err := d.expect(' '); err != nil {
			return d.errorf(err, "symbol %c%d", b, index)
		}
		nm, err := d.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.WithStack(err)
		}
		nm = strings.TrimSuffix(strings.TrimSuffix(nm, "\n"), "\r")
		if int(index) >= d.a.count(b) {
			return d.errorf(ErrInvalidIndex, "symbol %c%d", b, index)
		}
		if _, dup := d.a.symbols[b][int(index)]; dup {
			return d.errorf(ErrRedefined, "symbol %c%d", b, index)
		}
		d.a.symbols[b][int(index)] = nm
		d.line++
		if err == io.EOF {
			return nil
		}
	}
}

// every line after the "c" line is one comment.
func (d *decoder) readComments() error {
	if _, err := d.br.ReadString('\n'); err != nil && err != io.EOF {
		return errors.WithStack(err)
	}
	for {
		comment, err := d.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.WithStack(err)
		}
		if err == io.EOF && comment == "" {
			return nil
		}
		comment = strings.TrimSuffix(comment, "\n")
		d.a.Comments = append(d.a.Comments, comment)
		if err == io.EOF {
			return nil
		}
	}
}
