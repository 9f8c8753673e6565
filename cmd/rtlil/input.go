package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// stdinName labels netlists read from "-".
const stdinName = "<stdin>"

func readStdin(cmd *cobra.Command) ([]byte, error) {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return src, nil
}
