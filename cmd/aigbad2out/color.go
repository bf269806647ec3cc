// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/go-air/aigbad/aiger"
)

type palette struct {
	enabled bool
	count   func(string, ...interface{}) string
	err     func(string, ...interface{}) string
}

// palette decides on colors for w from the --color mode.
func (o *options) palette(w io.Writer) (*palette, error) {
	p := &palette{}
	switch strings.ToLower(o.color) {
	case "always":
		p.enabled = true
	case "never":
	case "auto", "":
		if f, ok := w.(*os.File); ok {
			p.enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", o.color)
	}
	count := color.New(color.FgCyan, color.Bold)
	errc := color.New(color.FgRed)
	if p.enabled {
		count.EnableColor()
		errc.EnableColor()
	} else {
		count.DisableColor()
		errc.DisableColor()
	}
	p.count = count.SprintfFunc()
	p.err = errc.SprintfFunc()
	return p, nil
}

// stats formats h as "M=.. I=.. L=.. O=.. A=.. B=.. C=.. J=.. F=..".
func (p *palette) stats(h aiger.Header) string {
	var sb strings.Builder
	for i, kv := range []struct {
		k string
		v uint
	}{
		{"M", h.Max}, {"I", h.In}, {"L", h.Latch}, {"O", h.Out}, {"A", h.And},
		{"B", h.Bad}, {"C", h.Constraint}, {"J", h.Justice}, {"F", h.Fair}} {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kv.k)
		sb.WriteByte('=')
		sb.WriteString(p.count("%d", kv.v))
	}
	return sb.String()
}
