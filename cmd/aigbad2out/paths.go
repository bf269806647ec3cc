// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/go-air/aigbad/aiger"
)

var errNoBzip2Writer = errors.New("bzip2 compressed output is not supported")

// stripCompression splits a compression suffix off of p.
func stripCompression(p string) (string, string) {
	for _, sfx := range []string{".gz", ".bz2", ".xz"} {
		if strings.HasSuffix(p, sfx) {
			return p[:len(p)-len(sfx)], sfx
		}
	}
	return p, ""
}

func isAscii(p string) bool {
	q, _ := stripCompression(p)
	return strings.HasSuffix(q, ".aag")
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// path2Reader opens p for reading, decompressing by suffix.  "-"
// reads stdin.
func path2Reader(stdin io.Reader, p string) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(stdin), nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	_, sfx := stripCompression(p)
	switch sfx {
	case ".gz":
		r, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, errors.Wrap(e, "gzip")
		}
		return &readCloser{Reader: r, closers: []io.Closer{r, f}}, nil
	case ".bz2":
		return &readCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case ".xz":
		r, e := xz.NewReader(f)
		if e != nil {
			f.Close()
			return nil, errors.Wrap(e, "xz")
		}
		return &readCloser{Reader: r, closers: []io.Closer{f}}, nil
	}
	return f, nil
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// path2Writer creates p, compressing by suffix.  "-" writes to
// stdout.
func path2Writer(stdout io.Writer, p string) (io.WriteCloser, error) {
	if p == "-" {
		return nopWriteCloser{stdout}, nil
	}
	_, sfx := stripCompression(p)
	if sfx == ".bz2" {
		return nil, errNoBzip2Writer
	}
	f, e := os.Create(p)
	if e != nil {
		return nil, e
	}
	switch sfx {
	case ".gz":
		w := gzip.NewWriter(f)
		return &writeCloser{Writer: w, closers: []io.Closer{w, f}}, nil
	case ".xz":
		w, e := xz.NewWriter(f)
		if e != nil {
			f.Close()
			return nil, errors.Wrap(e, "xz")
		}
		return &writeCloser{Writer: w, closers: []io.Closer{w, f}}, nil
	}
	return f, nil
}

// readModel reads the model at p and reports whether it was binary.
// The format is detected from the header, whatever the name of p.
func readModel(stdin io.Reader, p string) (*aiger.T, bool, error) {
	r, err := path2Reader(stdin, p)
	if err != nil {
		return nil, false, err
	}
	defer r.Close()
	br := bufio.NewReader(r)
	tok, _ := br.Peek(3)
	a, err := aiger.Read(br)
	return a, string(tok) == "aig", err
}

// writeModel writes a to p.  A partially written file is removed.
func writeModel(stdout io.Writer, p string, a *aiger.T, ascii bool) error {
	w, err := path2Writer(stdout, p)
	if err != nil {
		return err
	}
	if ascii {
		err = a.WriteAscii(w)
	} else {
		err = a.WriteBinary(w)
	}
	if e := w.Close(); err == nil {
		err = e
	}
	if err != nil && p != "-" {
		os.Remove(p)
	}
	return err
}
