package driver

import (
	"context"
	"time"

	"rtlil/internal/ctxlog"
	"rtlil/internal/diag"
	"rtlil/internal/ir"
	"rtlil/internal/observ"
	"rtlil/internal/parser"
	"rtlil/internal/source"
)

type ParseOptions struct {
	MaxDepth       int
	MaxDiagnostics int
	// Timings adds an OBS6001 diagnostic with per-phase durations to Bag.
	Timings bool
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Design  *ir.Design // nil when Err != nil
	Err     error      // first syntax error, also present in Bag
	Bag     *diag.Bag
	Timing  observ.Report
}

// Parse loads and parses a single netlist. The error return is reserved for
// I/O; a malformed netlist yields a result with Err set.
func Parse(ctx context.Context, path string, opts ParseOptions) (*ParseResult, error) {
	timer := observ.NewTimer()
	done := timer.Track("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		done("failed")
		return nil, err
	}
	done("")
	return parseLoaded(ctx, fs, fs.Get(fileID), opts, timer), nil
}

// ParseBytes parses in-memory input under the given display name.
func ParseBytes(ctx context.Context, name string, src []byte, opts ParseOptions) *ParseResult {
	fs := source.NewFileSet()
	return parseLoaded(ctx, fs, fs.Get(fs.AddVirtual(name, src)), opts, observ.NewTimer())
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts ParseOptions, timer *observ.Timer) *ParseResult {
	log := ctxlog.FromContext(ctx)
	bag := diag.NewBag(opts.MaxDiagnostics)

	done := timer.Track("parse")
	start := time.Now()
	d, err := parser.ParseFile(file, parser.Options{
		MaxDepth: opts.MaxDepth,
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})
	done("")
	log.Debug("parsed", "path", file.Path, "bytes", len(file.Content), "ok", err == nil, "elapsed", time.Since(start))

	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Design:  d,
		Err:     err,
		Bag:     bag,
		Timing:  timer.Report(),
	}
	if opts.Timings {
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "parse",
			Path:    file.Path,
			TotalMS: res.Timing.TotalMS,
			Phases:  res.Timing.Phases,
		})
	}
	return res
}
