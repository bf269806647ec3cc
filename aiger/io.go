// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/go-air/aigbad/z"
)

// reader scans aiger text and binary sections byte by byte, keeping
// track of the line for error messages.
type reader struct {
	br   *bufio.Reader
	line int
	last byte
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReader(r), line: 1}
}

func (r *reader) errorf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, "line %d: "+format, append([]interface{}{r.line}, args...)...)
}

func (r *reader) readByte() (byte, error) {
	b, e := r.br.ReadByte()
	if e == io.EOF {
		return 0, ErrTruncatedInput
	}
	if e != nil {
		return 0, errors.WithStack(e)
	}
	if b == '\n' {
		r.line++
	}
	r.last = b
	return b, nil
}

func (r *reader) unreadByte() {
	if r.br.UnreadByte() == nil && r.last == '\n' {
		r.line--
	}
}

// reads a uint.  The digits must be followed by a space, a new line
// or the end of input, which are not consumed.
func (r *reader) readUint() (uint32, error) {
	var result uint64
	first := true
	for {
		b, e := r.br.ReadByte()
		if e == io.EOF {
			if first {
				return 0, ErrTruncatedInput
			}
			break
		}
		if e != nil {
			return 0, errors.WithStack(e)
		}
		if b >= '0' && b <= '9' {
			result = result*10 + uint64(b-'0')
			if result > math.MaxUint32 {
				return 0, ErrMalformedLiteral
			}
			first = false
			continue
		}
		if first || (b != ' ' && b != '\n' && b != '\r') {
			return 0, ErrMalformedLiteral
		}
		r.br.UnreadByte()
		break
	}
	return uint32(result), nil
}

// reads the byte c, which must be next.
func (r *reader) expect(c byte) error {
	b, e := r.readByte()
	if e != nil {
		return e
	}
	if b == '\r' && c == '\n' {
		b, e = r.readByte()
		if e != nil {
			return e
		}
	}
	if b != c {
		return ErrUnexpectedChar
	}
	return nil
}

// reads a literal bounded by max and the rest of its line.
func (r *reader) readLitLine(what string, max z.Var) (z.Lit, error) {
	m, err := r.readLit(what, max)
	if err != nil {
		return 0, err
	}
	if err := r.expect('\n'); err != nil {
		return 0, r.errorf(err, "after %s", what)
	}
	return m, nil
}

// reads a literal bounded by max.
func (r *reader) readLit(what string, max z.Var) (z.Lit, error) {
	u, err := r.readUint()
	if err != nil {
		return 0, r.errorf(err, "reading %s", what)
	}
	m := z.Lit(u)
	if m.Var() > max {
		return 0, r.errorf(ErrBadLiteral, "%s %d exceeds maxvar %d", what, m, max)
	}
	return m, nil
}

// for binary aiger coding of and deltas
func (r *reader) read7() (uint32, error) {
	var result uint64
	var shift uint
	for {
		b, e := r.br.ReadByte()
		if e == io.EOF {
			return 0, ErrTruncatedInput
		}
		if e != nil {
			return 0, errors.WithStack(e)
		}
		result |= uint64(b&0x7f) << shift
		if result > math.MaxUint32 {
			return 0, ErrMalformedLiteral
		}
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift > 28 {
			return 0, ErrMalformedLiteral
		}
	}
	return uint32(result), nil
}

// writer wraps a bufio.Writer.  bufio.Writer errors are sticky, so
// only the final flush reports them.
type writer struct {
	bw  *bufio.Writer
	buf []byte
}

func newWriter(w io.Writer) *writer {
	return &writer{bw: bufio.NewWriter(w), buf: make([]byte, 0, 16)}
}

func (w *writer) uint(u uint64) {
	w.buf = strconv.AppendUint(w.buf[:0], u, 10)
	w.bw.Write(w.buf)
}

func (w *writer) lit(m z.Lit) {
	w.uint(uint64(m))
}

func (w *writer) litLine(m z.Lit) {
	w.lit(m)
	w.bw.WriteByte('\n')
}

func (w *writer) byte(b byte) {
	w.bw.WriteByte(b)
}

func (w *writer) str(s string) {
	w.bw.WriteString(s)
}

// for binary aiger coding of and deltas.  0 is coded as a single
// zero byte.
func (w *writer) write7(val uint32) {
	for {
		b := byte(val & 0x7f)
		val = val >> 7
		if val != 0 {
			b |= 0x80
		}
		w.bw.WriteByte(b)
		if val == 0 {
			return
		}
	}
}

func (w *writer) flush() error {
	return errors.WithStack(w.bw.Flush())
}
