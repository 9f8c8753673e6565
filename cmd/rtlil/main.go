package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rtlil/internal/version"
)

// errReported means the failure was already shown as diagnostics; main only
// sets the exit status.
var errReported = errors.New("diagnostics reported")

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:               "rtlil",
		Short:             "RTLIL netlist parser and checker",
		Long:              `rtlil reads Yosys RTLIL netlists, reports syntax errors and prints parsed designs`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to rtlil.toml (default: search upward from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")
	pf.String("log-format", "text", "log format (text|json)")
	pf.String("cpuprofile", "", "write a CPU profile to this file")
	pf.String("memprofile", "", "write a heap profile to this file on exit")
	pf.String("trace", "", "write a runtime execution trace to this file")

	root.AddCommand(
		newTokenizeCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return root, a
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if stopErr := a.profile.Stop(); stopErr != nil && err == nil {
		err = fmt.Errorf("failed to write profiles: %w", stopErr)
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}
