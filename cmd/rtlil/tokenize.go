package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtlil/internal/diagfmt"
	"rtlil/internal/driver"
)

func newTokenizeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.il|->",
		Short: "Print the token stream of an RTLIL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat("format", format, "pretty", "json"); err != nil {
				return err
			}

			var result *driver.TokenizeResult
			if args[0] == "-" {
				src, err := readStdin(cmd)
				if err != nil {
					return err
				}
				result = driver.TokenizeBytes(stdinName, src, a.cfg.Output.MaxDiagnostics)
			} else {
				var err error
				result, err = driver.Tokenize(args[0], a.cfg.Output.MaxDiagnostics)
				if err != nil {
					return fmt.Errorf("tokenization failed: %w", err)
				}
			}

			if err := a.reportDiagnostics(cmd, result.Bag, result.FileSet, "pretty"); err != nil {
				return err
			}
			if format == "json" {
				return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
			}
			return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
