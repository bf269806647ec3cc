// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"github.com/pkg/errors"
)

// Header holds the counts of an aiger header "aag M I L O A B C J F".
type Header struct {
	Binary     bool `yaml:"binary"`
	Max        uint `yaml:"maxvar"`
	In         uint `yaml:"inputs"`
	Latch      uint `yaml:"latches"`
	Out        uint `yaml:"outputs"`
	And        uint `yaml:"ands"`
	Bad        uint `yaml:"bad"`
	Constraint uint `yaml:"constraints"`
	Justice    uint `yaml:"justice"`
	Fair       uint `yaml:"fairness"`
}

// write the header.  Trailing zero counts among B C J F are left
// out, so that models without properties are readable by aiger 1.0
// tools.
func (h *Header) write(w *writer) {
	if h.Binary {
		w.str("aig")
	} else {
		w.str("aag")
	}
	counts := [...]uint{h.Max, h.In, h.Latch, h.Out, h.And, h.Bad, h.Constraint, h.Justice, h.Fair}
	n := len(counts)
	for n > 5 && counts[n-1] == 0 {
		n--
	}
	for _, c := range counts[:n] {
		w.byte(' ')
		w.uint(uint64(c))
	}
	w.byte('\n')
}

// read the header, possibly allowing version 1 style AIGER
// files (without B,C,J,F)
func readHeader(r *reader) (*Header, error) {
	result := &Header{}
	tok := make([]byte, 0, 3)
	for len(tok) < 4 {
		b, err := r.readByte()
		if err != nil {
			return nil, errors.Wrap(ErrMalformedHeader, "missing format token")
		}
		if b == ' ' {
			break
		}
		tok = append(tok, b)
	}
	switch string(tok) {
	case "aag":
		result.Binary = false
	case "aig":
		result.Binary = true
	default:
		return nil, errors.Wrapf(ErrMalformedHeader, "unknown format %q", tok)
	}
	var counts [9]uint
	i := 0
	for {
		if i > 8 {
			return nil, errors.Wrap(ErrMalformedHeader, "too many counts")
		}
		u, err := r.readUint()
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedHeader, "count %d: %s", i, err)
		}
		counts[i] = uint(u)
		i++
		b, err := r.readByte()
		if err != nil {
			return nil, errors.Wrap(ErrMalformedHeader, "missing new line")
		}
		if b == '\r' {
			if b, err = r.readByte(); err != nil {
				return nil, errors.Wrap(ErrMalformedHeader, "missing new line")
			}
		}
		if b == '\n' {
			break
		}
		if b != ' ' {
			return nil, errors.Wrapf(ErrMalformedHeader, "unexpected char %q", b)
		}
	}
	if i < 5 {
		return nil, errors.Wrapf(ErrMalformedHeader, "%d counts, need at least 5", i)
	}
	result.Max = counts[0]
	result.In = counts[1]
	result.Latch = counts[2]
	result.Out = counts[3]
	result.And = counts[4]
	result.Bad = counts[5]
	result.Constraint = counts[6]
	result.Justice = counts[7]
	result.Fair = counts[8]
	if result.Max >= 1<<31 {
		return nil, errors.Wrapf(ErrMalformedHeader, "maxvar %d too large", result.Max)
	}
	defs := uint64(result.In) + uint64(result.Latch) + uint64(result.And)
	if result.Binary && uint64(result.Max) != defs {
		return nil, errors.Wrapf(ErrMalformedHeader, "binary maxvar %d != I+L+A %d", result.Max, defs)
	}
	if uint64(result.Max) < defs {
		return nil, errors.Wrapf(ErrMalformedHeader, "maxvar %d < I+L+A %d", result.Max, defs)
	}
	return result, nil
}
