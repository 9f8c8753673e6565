package driver

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rtlil/internal/ctxlog"
	"rtlil/internal/diag"
	"rtlil/internal/ir"
	"rtlil/internal/observ"
	"rtlil/internal/parser"
	"rtlil/internal/source"
)

type CheckOptions struct {
	Jobs           int // <= 0: GOMAXPROCS
	MaxDepth       int
	MaxDiagnostics int
	Cache          *DiskCache // nil disables caching
	Progress       ProgressSink
	Timings        bool
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	OK     bool
	Cached bool
	Stats  ir.Stats
	Bag    *diag.Bag
	Timing observ.Report
}

type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult // in input order
	Total   ir.Stats     // merged over OK files
	Timing  observ.Report
	Summary *diag.Bag // run-level diagnostics such as timings
}

// Failed counts files that did not parse.
func (r *CheckResult) Failed() int {
	n := 0
	for i := range r.Files {
		if !r.Files[i].OK {
			n++
		}
	}
	return n
}

// Bag merges every file's diagnostics into one, sorted.
func (r *CheckResult) Bag() *diag.Bag {
	out := diag.NewBag(1)
	out.Merge(r.Summary)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	out.Sort()
	return out
}

// CheckFiles parses every path in parallel and collects per-file statistics.
// Files are loaded up front into one FileSet; workers only read from it.
// The error return is for cancellation; per-file failures, including I/O,
// are reported through each FileResult.
func CheckFiles(ctx context.Context, paths []string, opts CheckOptions) (*CheckResult, error) {
	log := ctxlog.FromContext(ctx)
	fileSet := source.NewFileSet()
	res := &CheckResult{
		FileSet: fileSet,
		Files:   make([]FileResult, len(paths)),
		Summary: diag.NewBag(opts.MaxDiagnostics),
	}
	if len(paths) == 0 {
		return res, nil
	}

	loadTimer := observ.NewTimer()
	doneLoad := loadTimer.Track("load")
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make(map[int]error)
	for i, path := range paths {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		id, err := fileSet.Load(path)
		if err != nil {
			// пустой виртуальный файл, чтобы диагностике было куда указывать
			fileIDs[i] = fileSet.AddVirtual(path, nil)
			loadErrors[i] = err
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		fileIDs[i] = id
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusDone})
	}
	doneLoad("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.Debug("check started", "files", len(paths), "jobs", jobs, "cache", opts.Cache != nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErr, failed := loadErrors[i]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileIDs[i]}, "failed to load file: "+loadErr.Error()))
				res.Files[i] = FileResult{Path: path, FileID: fileIDs[i], Bag: bag}
				return nil
			}
			// индекс i уникален для горутины, мьютекс не нужен
			res.Files[i] = checkOne(gctx, fileSet.Get(fileIDs[i]), bag, opts)
			res.Files[i].Path = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.Timing = loadTimer.Report()
	for i := range res.Files {
		f := &res.Files[i]
		if f.OK {
			res.Total.Merge(f.Stats)
		}
		res.Timing.Merge(f.Timing)
	}
	log.Info("check finished", "files", len(paths), "failed", res.Failed(), "total_ms", res.Timing.TotalMS)
	if opts.Timings {
		appendTimingDiagnostic(res.Summary, timingPayload{
			Kind:    "check",
			TotalMS: res.Timing.TotalMS,
			Phases:  res.Timing.Phases,
		})
	}
	return res, nil
}

func checkOne(ctx context.Context, file *source.File, bag *diag.Bag, opts CheckOptions) FileResult {
	log := ctxlog.FromContext(ctx).With("path", file.Path)
	timer := observ.NewTimer()
	out := FileResult{FileID: file.ID, Bag: bag}
	key := cacheKey(file.Hash, opts.MaxDepth)

	if opts.Cache != nil {
		start := time.Now()
		done := timer.Track("cache")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			done("error")
			log.Warn("cache read failed", "err", err)
			bag.Add(diag.New(diag.SevWarning, diag.IOCacheError, source.Span{File: file.ID}, "cache read failed: "+err.Error()))
		case hit:
			done("hit")
			payload.restore(file.ID, bag)
			out.OK, out.Stats, out.Cached = payload.OK, payload.Stats, true
			out.Timing = timer.Report()
			emit(opts.Progress, Event{File: file.Path, Stage: StageCache, Status: StatusDone, Elapsed: time.Since(start)})
			return out
		default:
			done("miss")
		}
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	start := time.Now()
	done := timer.Track("parse")
	d, err := parser.ParseFile(file, parser.Options{
		MaxDepth: opts.MaxDepth,
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	})
	done("")
	elapsed := time.Since(start)

	if err != nil {
		log.Debug("parse failed", "err", err, "elapsed", elapsed)
		emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: elapsed})
	} else {
		done := timer.Track("stats")
		out.OK = true
		out.Stats = ir.CollectStats(d)
		done("")
		log.Debug("parsed", "modules", out.Stats.Modules, "elapsed", elapsed)
		emit(opts.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusDone, Elapsed: elapsed})
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newPayload(out.OK, out.Stats, bag.Items())); err != nil {
			log.Warn("cache write failed", "err", err)
		}
	}
	out.Timing = timer.Report()
	return out
}
