package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rtlil/internal/config"
	"rtlil/internal/ctxlog"
	"rtlil/internal/diag"
	"rtlil/internal/diagfmt"
	"rtlil/internal/prof"
	"rtlil/internal/source"
	"rtlil/internal/version"
)

// app holds settings resolved once per invocation: rtlil.toml overlaid with
// the flags the user actually set.
type app struct {
	cfg     config.Config
	color   bool
	quiet   bool
	timings bool
	profile *prof.Session // nil unless a profiling flag is set
}

func (a *app) setup(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()

	cfgPath, _ := pf.GetString("config")
	var (
		cfg config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err == nil {
			cfg, err = config.Discover(wd)
		}
	}
	if err != nil {
		return err
	}

	if pf.Changed("color") {
		cfg.Output.Color, _ = pf.GetString("color")
	}
	if pf.Changed("max-diagnostics") {
		cfg.Output.MaxDiagnostics, _ = pf.GetInt("max-diagnostics")
	}
	if pf.Changed("log-level") {
		cfg.Log.Level, _ = pf.GetString("log-level")
	}
	if pf.Changed("log-format") {
		cfg.Log.Format, _ = pf.GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.quiet, _ = pf.GetBool("quiet")
	a.timings, _ = pf.GetBool("timings")
	a.color = useColor(cfg.Output.Color, cmd.ErrOrStderr())
	color.NoColor = !a.color

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	var popts prof.Options
	popts.CPU, _ = pf.GetString("cpuprofile")
	popts.Mem, _ = pf.GetString("memprofile")
	popts.Trace, _ = pf.GetString("trace")
	if popts.Enabled() {
		if a.profile, err = prof.Start(popts); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
	}
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return os.Getenv("NO_COLOR") == "" && isTerminal(w)
}

func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", cfg.Level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (expected text|json)", cfg.Format)
	}
}

// reportDiagnostics prints bag to stderr in the requested format.
func (a *app) reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch format {
	case "", "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: a.color, Context: 2})
		return nil
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "short":
		if out := diag.FormatGoldenDiagnostics(bag.Items(), fs, true); out != "" {
			_, err := fmt.Fprintln(w, out)
			return err
		}
		return nil
	case "sarif":
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{ToolName: "rtlil", ToolVersion: version.Version})
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}

func checkFormat(flag, value string, allowed ...string) error {
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s value %q (expected %s)", flag, value, strings.Join(allowed, "|"))
}
