package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/lune/compiler"
	"github.com/dhamidi/lune/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := compiler.New()
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, c)
			return server.RunStdio()
		},
	}
}
