// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/imgsrc"
	"cogentcore.org/imgsrc/base/logx"
	"cogentcore.org/imgsrc/symbols"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	config  string
	vv, v   bool
	quiet   bool
	file    bool
	symbol  bool
	symbols bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "imgsrc",
		Short:         "Classify and parse legacy image source values",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(o.vv, o.v, o.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.config, "config", "c", "", "TOML or YAML file with the symbol ranges")
	pf.BoolVar(&o.symbols, "symbol-table", false, "recognize exactly the built-in symbols and the bullet")
	pf.BoolVar(&o.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&o.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")

	classify := &cobra.Command{
		Use:   "classify ARG...",
		Short: "Print the kind each argument is classified as",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.parser()
			if err != nil {
				return err
			}
			return runClassify(cmd.OutOrStdout(), p, o, args)
		},
	}
	parse := &cobra.Command{
		Use:   "parse ARG...",
		Short: "Parse each argument and describe the resulting source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.parser()
			if err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), p, o, args)
		},
	}
	for _, c := range []*cobra.Command{classify, parse} {
		c.Flags().BoolVarP(&o.file, "file", "f", false, "use the contents of the named files as binary values")
		c.Flags().BoolVarP(&o.symbol, "symbol", "s", false, "treat arguments as symbol names")
	}
	syms := &cobra.Command{
		Use:   "symbols",
		Short: "List the built-in symbols",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runSymbols(cmd.OutOrStdout())
		},
	}
	config := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := o.parser()
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(p.Config())
		},
	}
	root.AddCommand(classify, parse, syms, config)
	return root
}

// parser returns the parser for the config options.
func (o *options) parser() (*imgsrc.Parser, error) {
	cfg := imgsrc.DefaultConfig()
	switch {
	case o.config != "":
		c, err := imgsrc.OpenConfig(o.config)
		if err != nil {
			return nil, errors.Log(err)
		}
		cfg = c
	case o.symbols:
		cfg = symbols.Config()
	}
	return imgsrc.NewParser(cfg, nil)
}

// value returns the legacy value for the given argument.
func (o *options) value(arg string) (any, error) {
	switch {
	case o.file:
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return b, nil
	case o.symbol:
		s, ok := symbols.Lookup(arg)
		if !ok {
			return nil, fmt.Errorf("unknown symbol %q", arg)
		}
		return string(s), nil
	}
	return arg, nil
}

func runClassify(w io.Writer, p *imgsrc.Parser, o *options, args []string) error {
	for _, arg := range args {
		v, err := o.value(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", arg, p.Classify(v))
	}
	return nil
}

func runParse(w io.Writer, p *imgsrc.Parser, o *options, args []string) error {
	for _, arg := range args {
		v, err := o.value(arg)
		if err != nil {
			return err
		}
		s, err := p.Parse(v)
		if err != nil {
			errors.Log(err)
			fmt.Fprintf(w, "%s\trejected\n", arg)
			continue
		}
		switch s.Type {
		case imgsrc.File:
			fmt.Fprintf(w, "%s\tFile\tpath=%s ext=%s format=%s mime=%s\n", arg, s.Path(), s.Ext(), s.Format(), s.Mime())
		case imgsrc.Symbol:
			fmt.Fprintf(w, "%s\tSymbol\tlen=%d\n", arg, s.Len())
		default:
			fmt.Fprintf(w, "%s\t%s\tformat=%s mime=%s\n", arg, s.Type, s.Format(), s.Mime())
		}
		s.Free()
	}
	return nil
}

func runSymbols(w io.Writer) {
	names := symbols.Names()
	for i, s := range symbols.All() {
		fmt.Fprintf(w, "%s\t%U\n", names[i], s.Rune())
	}
}
