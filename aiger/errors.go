// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/pkg/errors"

// Errors related to IO and formatting.  Errors returned by readers
// wrap one of these with position information; use errors.Is to
// test for them.
var (
	ErrMalformedHeader  = errors.New("malformed header")
	ErrTruncatedInput   = errors.New("truncated input")
	ErrBadLiteral       = errors.New("literal out of bounds")
	ErrMalformedLiteral = errors.New("malformed literal")
	ErrInvalidOperand   = errors.New("invalid and gate operand")
	ErrNoBadStates      = errors.New("no bad states")
	ErrUnexpectedChar   = errors.New("unexpected char")
	ErrNegatedDef       = errors.New("definition is negated")
	ErrRedefined        = errors.New("literal multiply defined")
	ErrInvalidReset     = errors.New("invalid latch reset value")
	ErrInvalidIndex     = errors.New("invalid index")
	ErrInvalidName      = errors.New("invalid symbol name")
)

// ErrFormatMismatch is returned by ReadAscii for a binary header and by
// ReadBinary for an ascii one.  It wraps ErrMalformedHeader.
var ErrFormatMismatch = errors.WithMessage(ErrMalformedHeader, "ascii/binary format mismatch")
