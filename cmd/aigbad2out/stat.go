// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/go-air/aigbad/aiger"
)

type statEntry struct {
	Path         string `yaml:"path"`
	aiger.Header `yaml:",inline"`
	Comments     []string `yaml:"comments,omitempty"`
}

func newStatCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:          "stat <in>...",
		Short:        "Print the header counts of aiger models as YAML",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := o.palette(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log := o.logger(cmd.ErrOrStderr(), pal.enabled)
			err = stat(cmd.InOrStdin(), cmd.OutOrStdout(), args)
			if err != nil {
				log.Error(pal.err("%s", err))
			}
			return err
		},
	}
}

func stat(stdin io.Reader, w io.Writer, paths []string) error {
	entries := make([]statEntry, 0, len(paths))
	for _, p := range paths {
		a, binary, err := readModel(stdin, p)
		if err != nil {
			return errors.Wrapf(err, "reading %s", p)
		}
		h := a.Header()
		h.Binary = binary
		entries = append(entries, statEntry{Path: p, Header: h, Comments: a.Comments})
	}
	out, err := yaml.Marshal(entries)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(out)
	return errors.WithStack(err)
}
