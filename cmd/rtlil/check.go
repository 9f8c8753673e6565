package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rtlil/internal/ctxlog"
	"rtlil/internal/driver"
)

type checkFlags struct {
	jobs       int
	maxDepth   int
	ui         string
	noCache    bool
	clearCache bool
	diagFormat string
}

func newCheckCmd(a *app) *cobra.Command {
	var f checkFlags
	cmd := &cobra.Command{
		Use:   "check [flags] [file.il|directory]...",
		Short: "Parse RTLIL files in parallel and report errors",
		Long:  `Check parses every netlist found in the given files and directories (default: the working directory) and reports syntax errors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runCheck(cmd, args, f, true)
			if err != nil {
				return err
			}
			if !a.quiet {
				cached := 0
				for _, fr := range res.Files {
					if fr.Cached {
						cached++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "checked %d files: %d ok, %d failed, %d cached\n",
					len(res.Files), len(res.Files)-res.Failed(), res.Failed(), cached)
			}
			if res.Failed() > 0 {
				return errReported
			}
			return nil
		},
	}
	addCheckFlags(cmd, &f)
	return cmd
}

func addCheckFlags(cmd *cobra.Command, f *checkFlags) {
	fl := cmd.Flags()
	fl.IntVar(&f.jobs, "jobs", 0, "max parallel workers (0=auto, overrides rtlil.toml)")
	fl.IntVar(&f.maxDepth, "max-depth", 0, "max switch/concatenation nesting, 0 = unlimited (overrides rtlil.toml)")
	fl.StringVar(&f.ui, "ui", "auto", "progress UI (auto|on|off)")
	fl.BoolVar(&f.noCache, "no-cache", false, "do not read or write the result cache")
	fl.BoolVar(&f.clearCache, "clear-cache", false, "drop the result cache before checking")
	fl.StringVar(&f.diagFormat, "diag-format", "pretty", "diagnostics format (pretty|short|json|sarif)")
}

// runCheck resolves inputs and options, runs the parallel check and prints
// diagnostics. withUI allows the progress view.
func (a *app) runCheck(cmd *cobra.Command, args []string, f checkFlags, withUI bool) (*driver.CheckResult, error) {
	ctx := cmd.Context()
	log := ctxlog.FromContext(ctx)

	if err := checkFormat("diag-format", f.diagFormat, "pretty", "short", "json", "sarif"); err != nil {
		return nil, err
	}
	mode, err := readUIMode(f.ui)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := driver.CollectFiles(args, a.cfg.Check.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no RTLIL files found")
	}

	opts := driver.CheckOptions{
		Jobs:           a.cfg.Check.Jobs,
		MaxDepth:       a.cfg.Parse.MaxDepth,
		MaxDiagnostics: a.cfg.Output.MaxDiagnostics,
	}
	if cmd.Flags().Changed("jobs") {
		opts.Jobs = f.jobs
	}
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	if a.cfg.Check.Cache && !f.noCache {
		cache, err := driver.OpenDiskCache("rtlil")
		if err != nil {
			log.Warn("result cache disabled", "err", err)
		} else {
			if f.clearCache {
				if err := cache.DropAll(); err != nil {
					return nil, fmt.Errorf("failed to clear cache: %w", err)
				}
			}
			opts.Cache = cache
		}
	}

	var res *driver.CheckResult
	if withUI && shouldUseTUI(mode, cmd.OutOrStdout()) {
		res, err = runCheckWithUI(ctx, "checking", files, opts)
	} else {
		res, err = driver.CheckFiles(ctx, files, opts)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("check interrupted: %w", err)
		}
		return nil, err
	}
	if err := a.reportDiagnostics(cmd, res.Bag(), res.FileSet, f.diagFormat); err != nil {
		return nil, err
	}
	if a.timings {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timing.Summary())
	}
	return res, nil
}
