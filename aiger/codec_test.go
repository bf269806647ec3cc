// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/aigbad/z"
)

func isErr(err, target error) bool {
	if target == nil {
		return err == nil
	}
	return errors.Is(err, target)
}

func TestDeltaEncoding(t *testing.T) {
	a := Make(1)
	var ins []z.Lit
	for i := 0; i < 4; i++ {
		ins = append(ins, a.AddInput())
	}
	g, err := a.AddAnd(ins[1], ins[2])
	require.NoError(t, err)
	require.Equal(t, z.Lit(10), g)
	require.NoError(t, a.AddOutput(g))
	require.Equal(t, And{Lhs: 10, Rhs0: 6, Rhs1: 4}, a.Ands[0])

	var buf bytes.Buffer
	require.NoError(t, a.WriteBinary(&buf))
	assert.Equal(t, "aig 5 4 0 1 1\n10\n\x04\x02", buf.String())

	b, err := ReadBinary(&buf)
	require.NoError(t, err)
	require.Len(t, b.Ands, 1)
	assert.Equal(t, And{Lhs: 10, Rhs0: 6, Rhs1: 4}, b.Ands[0])
}

func TestVarint(t *testing.T) {
	for _, tc := range []struct {
		val uint32
		enc string
	}{
		{0, "\x00"},
		{1, "\x01"},
		{127, "\x7f"},
		{128, "\x80\x01"},
		{300, "\xac\x02"},
		{16384, "\x80\x80\x01"},
		{1<<32 - 1, "\xff\xff\xff\xff\x0f"},
	} {
		var buf bytes.Buffer
		w := newWriter(&buf)
		w.write7(tc.val)
		require.NoError(t, w.flush())
		assert.Equal(t, tc.enc, buf.String(), "encoding %d", tc.val)

		v, err := newReader(strings.NewReader(tc.enc)).read7()
		require.NoError(t, err)
		assert.Equal(t, tc.val, v)
	}
	_, err := newReader(strings.NewReader("\xff\xff\xff\xff\x7f")).read7()
	assert.True(t, errors.Is(err, ErrMalformedLiteral), "overflow: %v", err)
	_, err = newReader(strings.NewReader("\x80")).read7()
	assert.True(t, errors.Is(err, ErrTruncatedInput), "truncated: %v", err)
}

var readErrTests = []struct {
	name   string
	binary bool
	src    string
	err    error
}{
	{"empty", false, "", ErrMalformedHeader},
	{"no counts", false, "aag\n", ErrMalformedHeader},
	{"too few counts", false, "aag 1 1\n", ErrMalformedHeader},
	{"too many counts", false, "aag 0 0 0 0 0 0 0 0 0 0\n", ErrMalformedHeader},
	{"bad token", false, "agg 1 1 0 0 0\n", ErrMalformedHeader},
	{"bad count", false, "aag 1 x 0 0 0\n", ErrMalformedHeader},
	{"maxvar too small", false, "aag 1 2 0 0 0\n2\n4\n", ErrMalformedHeader},
	{"binary maxvar", true, "aig 2 1 0 0 0\n", ErrMalformedHeader},
	{"truncated input", false, "aag 2 2 0 0 0\n2\n", ErrTruncatedInput},
	{"truncated output", true, "aig 1 1 0 2 0\n2\n", ErrTruncatedInput},
	{"truncated and", true, "aig 5 4 0 1 1\n10\n\x04", ErrTruncatedInput},
	{"missing and", true, "aig 5 4 0 1 1\n10\n", ErrTruncatedInput},
	{"truncated varint", true, "aig 5 4 0 1 1\n10\n\x84", ErrTruncatedInput},
	{"truncated justice", false, "aag 1 1 0 0 0 0 0 1\n2\n2\n2\n", ErrTruncatedInput},
	{"output oob", false, "aag 1 1 0 1 0\n2\n4\n", ErrBadLiteral},
	{"binary output oob", true, "aig 1 1 0 1 0\n5\n", ErrBadLiteral},
	{"input oob", false, "aag 1 1 0 0 0\n4\n", ErrBadLiteral},
	{"and operand oob", false, "aag 2 1 0 0 1\n2\n4 2 6\n", ErrBadLiteral},
	{"latch next oob", true, "aig 1 0 1 0 0\n4\n", ErrBadLiteral},
	{"justice oob", false, "aag 1 1 0 0 0 0 0 1\n2\n1\n8\n", ErrBadLiteral},
	{"letter literal", false, "aag 1 1 0 1 0\n2\nx\n", ErrMalformedLiteral},
	{"suffixed literal", false, "aag 1 1 0 1 0\n2\n3a\n", ErrMalformedLiteral},
	{"huge literal", false, "aag 1 1 0 1 0\n2\n99999999999\n", ErrMalformedLiteral},
	{"two literals", false, "aag 1 1 0 1 0\n2\n2 3\n", ErrUnexpectedChar},
	{"zero delta", true, "aig 2 1 0 1 1\n4\n\x00\x00", ErrInvalidOperand},
	{"delta past lhs", true, "aig 2 1 0 1 1\n4\n\x05\x00", ErrInvalidOperand},
	{"delta past zero", true, "aig 2 1 0 1 1\n4\n\x02\x03", ErrInvalidOperand},
	{"symbol index", false, "aag 1 1 0 0 0\n2\ni1 x\n", ErrInvalidIndex},
	{"symbol twice", false, "aag 1 1 0 0 0\n2\ni0 x\ni0 y\n", ErrRedefined},
	{"symbol kind", false, "aag 1 1 0 0 0\n2\nx0 x\n", ErrUnexpectedChar},
	{"binary reset", true, "aig 1 0 1 0 0\n2 3\n", ErrInvalidReset},
}

func TestReadErrors(t *testing.T) {
	for _, tc := range readErrTests {
		t.Run(tc.name, func(t *testing.T) {
			var a *T
			var err error
			if tc.binary {
				a, err = ReadBinary(strings.NewReader(tc.src))
			} else {
				a, err = ReadAscii(strings.NewReader(tc.src))
			}
			assert.Nil(t, a)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

func TestReadErrorLine(t *testing.T) {
	_, err := ReadAscii(strings.NewReader("aag 2 2 0 1 0\n2\n4\n9\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadLiteral))
	assert.Contains(t, err.Error(), "line 4")
}

func TestReadAutoDetect(t *testing.T) {
	a := makeExample()
	for _, write := range []func(*T, *bytes.Buffer) error{
		func(a *T, b *bytes.Buffer) error { return a.WriteAscii(b) },
		func(a *T, b *bytes.Buffer) error { return a.WriteBinary(b) },
	} {
		var buf bytes.Buffer
		require.NoError(t, write(a, &buf))
		b, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, a.Header(), b.Header())
		assert.Equal(t, a.Ands, b.Ands)
	}
}

func TestReadCRLF(t *testing.T) {
	a, err := ReadAscii(strings.NewReader("aag 3 2 0 1 1\r\n2\r\n4\r\n6\r\n6 4 2\r\ni0 x\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []z.Lit{6}, a.Outputs)
	nm, ok := a.InputName(0)
	assert.True(t, ok)
	assert.Equal(t, "x", nm)
}

func TestCommentsNoFinalNewline(t *testing.T) {
	a, err := ReadAscii(strings.NewReader("aag 0 0 0 0 0\nc\nfirst\n\nlast"))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "", "last"}, a.Comments)
}

func TestConstraintSymbolVsComment(t *testing.T) {
	src := "aag 1 1 0 0 0 0 1\n2\n3\nc0 env\nc\nc0 not a symbol\n"
	a, err := ReadAscii(strings.NewReader(src))
	require.NoError(t, err)
	nm, ok := a.ConstraintName(0)
	assert.True(t, ok)
	assert.Equal(t, "env", nm)
	assert.Equal(t, []string{"c0 not a symbol"}, a.Comments)
}

func TestHeaderVersion1(t *testing.T) {
	a := makeExample()
	var buf bytes.Buffer
	require.NoError(t, a.WriteAscii(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "aag 3 1 1 2 1\n"))

	require.NoError(t, a.AddConstraint(z.LitTrue))
	buf.Reset()
	require.NoError(t, a.WriteAscii(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "aag 3 1 1 2 1 0 1\n"), buf.String())
}

func TestAddAnd(t *testing.T) {
	a := Make(2)
	i := a.AddInput()
	_, err := a.AddAnd(i, z.Var(2).Pos())
	assert.True(t, errors.Is(err, ErrInvalidOperand))
	assert.Equal(t, z.Var(1), a.MaxVar())
	g, err := a.AddAnd(z.LitTrue, i.Not())
	require.NoError(t, err)
	assert.Equal(t, And{Lhs: 4, Rhs0: 3, Rhs1: 1}, a.Ands[0])
	assert.Equal(t, z.Var(2), g.Var())
}

func TestAddErrors(t *testing.T) {
	a := Make(0)
	m := a.AddInput()
	oob := z.Var(5).Pos()
	assert.True(t, errors.Is(a.AddOutput(oob), ErrBadLiteral))
	assert.True(t, errors.Is(a.AddBad(oob), ErrBadLiteral))
	assert.True(t, errors.Is(a.AddConstraint(oob), ErrBadLiteral))
	assert.True(t, errors.Is(a.AddFair(oob), ErrBadLiteral))
	assert.True(t, errors.Is(a.AddJustice([]z.Lit{m, oob}), ErrBadLiteral))
	assert.Empty(t, a.Justice)
	_, err := a.AddLatch(oob, z.LitFalse)
	assert.True(t, errors.Is(err, ErrBadLiteral))
	_, err = a.AddLatch(m, z.Lit(7))
	assert.True(t, errors.Is(err, ErrInvalidReset))
	assert.Equal(t, z.Var(1), a.MaxVar())

	l, err := a.AddLatch(z.Var(2).Neg(), Uninitialized, "self")
	require.NoError(t, err)
	assert.Equal(t, Latch{Lit: l, Next: l.Not(), Reset: l}, a.Latches[0])
	assert.Equal(t, ErrInvalidIndex, a.SetNext(1, m))
	assert.True(t, errors.Is(a.SetNext(0, oob), ErrBadLiteral))
}

func TestRemoveBad(t *testing.T) {
	a := Make(0)
	m := a.AddInput()
	require.NoError(t, a.AddBad(m, "b0"))
	require.NoError(t, a.AddBad(m.Not()))
	require.NoError(t, a.AddBad(z.LitTrue, "b2"))
	require.NoError(t, a.RemoveBad(0))
	assert.Equal(t, []z.Lit{m.Not(), z.LitTrue}, a.Bad)
	_, ok := a.BadName(0)
	assert.False(t, ok)
	nm, ok := a.BadName(1)
	assert.True(t, ok)
	assert.Equal(t, "b2", nm)
	assert.Equal(t, ErrInvalidIndex, a.RemoveBad(2))
	require.NoError(t, a.Check())
}

func TestCheck(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(a *T)
		err    error
	}{
		"ok":           {func(a *T) {}, nil},
		"output oob":   {func(a *T) { a.Outputs[0] = 40 }, ErrBadLiteral},
		"negated":      {func(a *T) { a.Inputs[0] = 3 }, ErrNegatedDef},
		"redefined":    {func(a *T) { a.Ands[0].Lhs = 4 }, ErrRedefined},
		"reset":        {func(a *T) { a.Latches[0].Reset = 2 }, ErrInvalidReset},
		"name":         {func(a *T) { a.symbols['o'][0] = "a\nb" }, ErrInvalidName},
		"name cr":      {func(a *T) { a.symbols['i'][0] = "in\r" }, ErrInvalidName},
		"name index":   {func(a *T) { a.symbols['b'][0] = "gone" }, ErrInvalidIndex},
		"comment":      {func(a *T) { a.Comments = []string{"a\nb"} }, ErrInvalidName},
		"loop":         {func(a *T) { a.Ands[0].Rhs0 = 6 }, ErrInvalidOperand},
		"bad undef":    {func(a *T) { a.maxVar++; a.Bad = []z.Lit{8} }, ErrBadLiteral},
		"operand oob":  {func(a *T) { a.Ands[0].Rhs1 = 30 }, ErrBadLiteral},
		"and negated":  {func(a *T) { a.Ands[0].Lhs = 7 }, ErrNegatedDef},
		"latch undef":  {func(a *T) { a.maxVar++; a.Latches[0].Next = 9 }, ErrBadLiteral},
		"justice oob":  {func(a *T) { a.Justice = [][]z.Lit{{2, 41}} }, ErrBadLiteral},
		"zero defined": {func(a *T) { a.Inputs[0] = 0 }, ErrRedefined},
	} {
		a := makeExample()
		tc.mutate(a)
		err := a.Check()
		assert.True(t, isErr(err, tc.err), "%s: got %v, want %v", name, err, tc.err)
		if tc.err != nil {
			assert.True(t, isErr(a.WriteAscii(&bytes.Buffer{}), tc.err), name)
			assert.True(t, isErr(a.WriteBinary(&bytes.Buffer{}), tc.err), name)
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	a := makeExample()
	assert.Error(t, a.WriteAscii(failWriter{}))
	assert.Error(t, a.WriteBinary(failWriter{}))
}

func TestNameCarriageReturn(t *testing.T) {
	a := Make(0)
	a.AddInput("x\r")
	var buf bytes.Buffer
	assert.True(t, errors.Is(a.WriteAscii(&buf), ErrInvalidName))
	assert.Equal(t, ErrInvalidName, a.NameInput(0, "x\r"))
	assert.Equal(t, ErrInvalidName, a.NameInput(0, "a\rb"))

	require.NoError(t, a.NameInput(0, "x"))
	buf.Reset()
	require.NoError(t, a.WriteAscii(&buf))
	b, err := ReadAscii(&buf)
	require.NoError(t, err)
	nm, ok := b.InputName(0)
	assert.True(t, ok)
	assert.Equal(t, "x", nm)
}

func TestFormatMismatch(t *testing.T) {
	var bin, asc bytes.Buffer
	a := makeExample()
	require.NoError(t, a.WriteBinary(&bin))
	require.NoError(t, a.WriteAscii(&asc))

	b, err := ReadAscii(&bin)
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, ErrMalformedHeader), "%v", err)
	assert.True(t, errors.Is(err, ErrFormatMismatch), "%v", err)

	b, err = ReadBinary(&asc)
	assert.Nil(t, b)
	assert.True(t, errors.Is(err, ErrMalformedHeader), "%v", err)
	assert.True(t, errors.Is(err, ErrFormatMismatch), "%v", err)
}
