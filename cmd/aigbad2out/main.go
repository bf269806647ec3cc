// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command aigbad2out rewrites the bad state properties of an aiger
// model as outputs, for tools which only understand aiger 1.0.
//
// Usage:
//
//	aigbad2out [flags] <in> <out>
//	aigbad2out stat <in>...
//
// Inputs are ASCII or binary as their header says.  Outputs ending in
// .aag are ASCII, others binary.  A trailing .gz, .bz2
// or .xz is decompressed on input and compressed on output (except
// bzip2).  "-" denotes standard input or output.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/aigbad/aiger"
)

const colorEnv = "AIGBAD2OUT_COLOR"

type options struct {
	allowEmpty bool
	ascii      bool
	debug      bool
	quiet      bool
	color      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "aigbad2out [flags] <in> <out>",
		Short:        "Turn the bad state properties of an aiger model into outputs",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := o.palette(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			log := o.logger(cmd.ErrOrStderr(), pal.enabled)
			err = o.convert(log, pal, cmd.InOrStdin(), cmd.OutOrStdout(), args[0], args[1])
			if err != nil {
				log.Error(pal.err("%s", err))
			}
			return err
		},
	}
	cmd.SilenceErrors = true

	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.PersistentFlags().BoolVar(&o.quiet, "quiet", false, "only log warnings and errors")
	cmd.PersistentFlags().StringVar(&o.color, "color", envOr(colorEnv, "auto"), "colorize log output: auto, always or never (env "+colorEnv+")")
	cmd.Flags().BoolVar(&o.allowEmpty, "allow-empty", false, "write the model even if it has no bad state properties")
	cmd.Flags().BoolVar(&o.ascii, "ascii", false, "write ASCII aiger regardless of the output name")

	cmd.AddCommand(newStatCmd(o))
	return cmd
}

func envOr(key, dflt string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return dflt
}

func (o *options) logger(w io.Writer, colors bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colors,
		DisableColors:    !colors,
		DisableTimestamp: true})
	switch {
	case o.debug:
		logger.SetLevel(logrus.DebugLevel)
	case o.quiet:
		logger.SetLevel(logrus.WarnLevel)
	}
	logger.Debugf("log level %s", logger.Level)
	return logger
}

// convert reads in, turns its bad states into outputs and writes the
// result to out.
func (o *options) convert(log logrus.FieldLogger, pal *palette, stdin io.Reader, stdout io.Writer, in, out string) error {
	a, binary, err := readModel(stdin, in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	if in != "-" && binary == isAscii(in) {
		log.Warnf("%s is %s despite its name", in, formatName(!binary))
	}
	log.Infof("read %s (%s): %s", in, formatName(!binary), pal.stats(a.Header()))

	n, err := a.BadToOutputs()
	switch {
	case errors.Is(err, aiger.ErrNoBadStates) && o.allowEmpty:
		log.Warnf("%s has no bad states to convert", in)
	case err != nil:
		return errors.Wrap(err, in)
	default:
		log.Infof("converted %s bad states to outputs", pal.count("%d", n))
		for i, m := range a.Outputs[len(a.Outputs)-n:] {
			nm, _ := a.OutputName(len(a.Outputs) - n + i)
			log.WithField("name", nm).Debugf("bad state %d is output literal %d", i, m)
		}
	}
	log.Infof("modified model: %s", pal.stats(a.Header()))

	ascii := o.ascii || isAscii(out)
	log.Infof("output format: %s", formatName(ascii))
	if err := writeModel(stdout, out, a, ascii); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	log.Infof("wrote %s", out)
	return nil
}

func formatName(ascii bool) string {
	if ascii {
		return "ASCII (.aag)"
	}
	return "binary (.aig)"
}
