package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lune/compiler"
	"github.com/dhamidi/lune/grammar"
)

func newCheckCmd() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Report syntax errors in .ln files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []compiler.Option{}
			if validate {
				opts = append(opts, compiler.WithValidation())
			}
			c, err := compiler.New(opts...)
			if err != nil {
				return err
			}

			var files []*compiler.File
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("check: %w", err)
				}
				w := compiler.NewWorkspace(path, c)
				if info.IsDir() {
					if err := w.ScanAll(); err != nil {
						return fmt.Errorf("scan %s: %w", path, err)
					}
				} else if err := w.ScanFile(path); err != nil {
					return fmt.Errorf("check: %w", err)
				}
				files = append(files, w.Files()...)
			}

			failed := 0
			for _, f := range files {
				if f.Err == nil {
					continue
				}
				failed++
				fmt.Fprintln(cmd.OutOrStdout(), describe(f))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files have errors", failed, len(files))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files ok\n", len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "also check trees against the ESTree schema")

	return cmd
}

func describe(f *compiler.File) string {
	if perr := f.ParseError(); perr != nil {
		return perr.Error() + expectedSuffix(perr)
	}
	return f.Err.Error()
}

func expectedSuffix(perr *grammar.ParseError) string {
	if len(perr.Expected) == 0 {
		return ""
	}
	return fmt.Sprintf(" (tried %v)", perr.Expected)
}
