package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lune/compiler"
	"github.com/dhamidi/lune/estree"
	"github.com/dhamidi/lune/format"
	"github.com/dhamidi/lune/grammar"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool
	var noMerge bool
	var validate bool
	var expr string

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a .ln file and print the resulting tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parseOpts []grammar.Option
			if includeComments {
				parseOpts = append(parseOpts, grammar.WithComments())
			}
			if noMerge {
				parseOpts = append(parseOpts, grammar.WithoutClauseMerging())
			}

			if expr != "" {
				e, err := grammar.ParseExpression(grammar.Source{Text: expr}, parseOpts...)
				if err != nil {
					return reportParseError(cmd.OutOrStdout(), outputFormat, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), estree.Sexp(e))
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("parse: need a file, '-' or --expr")
			}

			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := []compiler.Option{compiler.WithParseOptions(parseOpts...), compiler.WithCacheSize(0)}
			if validate {
				opts = append(opts, compiler.WithValidation())
			}
			c, err := compiler.New(opts...)
			if err != nil {
				return err
			}

			var prog *estree.Program
			if args[0] == "-" {
				text, rerr := io.ReadAll(cmd.InOrStdin())
				if rerr != nil {
					return fmt.Errorf("read stdin: %w", rerr)
				}
				prog, err = c.CompileSource("<stdin>", grammar.Source{Text: string(text), Line: 1})
			} else {
				prog, err = c.CompileFile(args[0])
			}
			if err != nil {
				return reportParseError(cmd.OutOrStdout(), outputFormat, err)
			}

			if err := encoder.Encode(prog); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Names(), ", ")+")")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "keep top-level comments in the tree")
	cmd.Flags().BoolVar(&noMerge, "no-merge", false, "leave pattern clauses unmerged")
	cmd.Flags().BoolVar(&validate, "validate", false, "check the tree against the ESTree schema")
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "parse this expression and print it as an S-expression")

	return cmd
}

// reportParseError prints syntax errors as the JSON error object when
// JSON output was asked for.
func reportParseError(w io.Writer, outputFormat string, err error) error {
	var perr *grammar.ParseError
	if outputFormat == "json" && errors.As(err, &perr) {
		text, merr := json.Marshal(perr)
		if merr != nil {
			return merr
		}
		fmt.Fprintln(w, string(text))
	}
	return fmt.Errorf("parse: %w", err)
}
