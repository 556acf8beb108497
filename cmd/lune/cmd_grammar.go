package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lune/grammar"
)

func newGrammarCmd() *cobra.Command {
	var check bool
	var list bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case check:
				if err := grammar.VerifySyntax(); err != nil {
					printErrors(out, err)
					return fmt.Errorf("grammar: verification failed")
				}
				fmt.Fprintf(out, "grammar ok (start %s)\n", grammar.SyntaxStart)
			case list:
				names, err := grammar.Productions()
				if err != nil {
					printErrors(out, err)
					return fmt.Errorf("grammar: %w", err)
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
			default:
				fmt.Fprint(out, grammar.Syntax())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")
	cmd.Flags().BoolVar(&list, "list", false, "list production names")

	return cmd
}

// printErrors prints one line per error when err is a list of errors.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
		return
	}
	fmt.Fprintln(w, err)
}
