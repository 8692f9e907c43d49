package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"yaplc/internal/ast"
	"yaplc/internal/diag"
	"yaplc/internal/observ"
	"yaplc/internal/sema"
	"yaplc/internal/source"
	"yaplc/internal/trace"
)

// Options configure a batch check.
type Options struct {
	MaxDiagnostics int // per file, 0 = unlimited
	MaxErrors      int // per file, 0 = unlimited
	Jobs           int // 0 = GOMAXPROCS
	BaseDir        string
	Progress       ProgressSink // optional
}

// FileResult is the outcome of checking one program file. Load and decode
// failures are diagnostics in Bag, not errors.
type FileResult struct {
	Path    string
	FileSet *source.FileSet
	Program *ast.Program
	Bag     *diag.Bag
	Sema    sema.Result
	Elapsed time.Duration
	Timings observ.Report // load, decode and sema phases
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (r FileResult) HasErrors() bool { return r.Bag != nil && r.Bag.HasErrors() }

// CheckFile loads and checks a single program file.
func CheckFile(ctx context.Context, path string, opts Options) FileResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+filepath.Base(path), trace.CurrentSpan(ctx))
	started := time.Now()

	fs := source.NewFileSet()
	if opts.BaseDir != "" {
		fs.SetBaseDir(opts.BaseDir)
	}
	res := FileResult{
		Path:    path,
		FileSet: fs,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	timer := observ.NewTimer()
	finish := func() FileResult {
		res.Elapsed = time.Since(started)
		res.Timings = timer.Report()
		status := StatusDone
		if res.HasErrors() {
			status = StatusError
		}
		emit(opts.Progress, Event{File: path, Status: status, Elapsed: res.Elapsed})
		span.End(fmt.Sprintf("%d diagnostics", res.Bag.Len()))
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	phase := timer.Begin(string(StageLoad))
	data, err := os.ReadFile(path)
	if err != nil {
		timer.End(phase, "failed")
		res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Pos{}, "failed to load file: "+err.Error()))
		return finish()
	}
	timer.End(phase, fmt.Sprintf("%d bytes", len(data)))

	emit(opts.Progress, Event{File: path, Stage: StageDecode, Status: StatusWorking})
	phase = timer.Begin(string(StageDecode))
	prog, err := DecodeProgram(data, FormatOf(path))
	if err != nil {
		timer.End(phase, "failed")
		res.Bag.Add(diag.NewError(diag.IODecodeError, source.Pos{}, "failed to decode program: "+err.Error()))
		return finish()
	}
	res.Program = prog
	attachSource(fs, path, prog)
	timer.End(phase, "")

	emit(opts.Progress, Event{File: path, Stage: StageSema, Status: StatusWorking})
	phase = timer.Begin(string(StageSema))
	res.Sema = sema.Check(prog, sema.Options{
		Reporter:  diag.BagReporter{Bag: res.Bag},
		MaxErrors: opts.MaxErrors,
		Tracer:    tracer,
	})
	timer.End(phase, fmt.Sprintf("%d errors", len(res.Sema.Errors)))
	return finish()
}

// attachSource loads the scanned source named by prog.Source, resolved
// against the program file's directory, and ties positions to it. A missing
// source only costs the snippets.
func attachSource(fs *source.FileSet, programPath string, prog *ast.Program) {
	if prog.Source == "" {
		return
	}
	src := prog.Source
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(programPath), src)
	}
	id, err := fs.Load(src)
	if err != nil {
		return
	}
	ast.StampFile(prog, id)
}

// CheckFiles checks every path in parallel, each with its own file set,
// interner and bag. Results keep the order of paths.
func CheckFiles(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "check", trace.CurrentSpan(ctx))
	defer span.End(fmt.Sprintf("%d files", len(paths)))
	ctx = trace.WithSpan(ctx, span.ID())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален, мьютекс не нужен
			results[i] = CheckFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
