// Package batch applies one conversion to many files sequentially, isolating
// per-file failures and reporting progress as it goes.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wudi/convertkit/observability"
	"github.com/wudi/convertkit/scripting"
)

// ErrNoFiles is returned when Run is given an empty file list.
var ErrNoFiles = errors.New("batch: no input files")

// ProcessFunc converts a single file. The hook result carries any per-file
// overrides produced by the naming hook; it is zero when no hook is set.
type ProcessFunc func(ctx context.Context, path string, hook scripting.HookResult) error

// ProgressFunc observes each file after it is attempted. err is nil on
// success, and set when the file failed or was skipped by a hook.
type ProgressFunc func(index int, path string, err error)

// ErrSkipped marks files a hook chose to pass over. Progress callbacks see
// it; it never aborts the batch.
var ErrSkipped = errors.New("batch: skipped by hook")

// Config controls a batch run.
type Config struct {
	// ContinueOnError keeps processing after a file fails. When false the
	// first failure aborts the run.
	ContinueOnError bool

	// Hook is an optional JavaScript naming hook evaluated per file.
	Hook string

	// Engine evaluates Hook. Required when Hook is nonempty.
	Engine scripting.Engine

	// Progress, if set, is called after each file.
	Progress ProgressFunc

	Logger observability.Logger
}

// Report summarizes a batch run.
type Report struct {
	Processed int
	Failed    int
	Skipped   int
	// Errors holds one entry per failed file, wrapped with its path.
	Errors []error
}

// Runner drives batch conversions.
type Runner struct {
	cfg    Config
	logger observability.Logger
}

// New validates cfg and returns a Runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Hook != "" && cfg.Engine == nil {
		return nil, errors.New("batch: hook set without engine")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run processes the files in order. On fail-fast runs the returned error is
// the first file's failure; with ContinueOnError the report collects all
// failures and the error is nil unless every file failed.
func (r *Runner) Run(ctx context.Context, files []string, process ProcessFunc) (Report, error) {
	var report Report
	if len(files) == 0 {
		return report, ErrNoFiles
	}
	if process == nil {
		return report, errors.New("batch: nil process func")
	}

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		hook, err := r.evalHook(ctx, path, i)
		if err == nil && hook.Skip {
			err = ErrSkipped
		}
		if err == nil {
			err = process(ctx, path, hook)
		}

		switch {
		case err == nil:
			report.Processed++
		case errors.Is(err, ErrSkipped):
			report.Skipped++
		default:
			wrapped := fmt.Errorf("batch: %s: %w", path, err)
			report.Failed++
			report.Errors = append(report.Errors, wrapped)
			r.logger.Error("batch file failed",
				observability.String("path", path),
				observability.Int("index", i),
				observability.Error("error", err))
			if !r.cfg.ContinueOnError {
				r.progress(i, path, err)
				return report, wrapped
			}
		}
		r.progress(i, path, err)
	}

	if report.Processed == 0 && report.Failed > 0 {
		return report, fmt.Errorf("batch: all %d files failed: %w", report.Failed, report.Errors[0])
	}
	return report, nil
}

func (r *Runner) evalHook(ctx context.Context, path string, index int) (scripting.HookResult, error) {
	if r.cfg.Hook == "" {
		return scripting.HookResult{}, nil
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	info := scripting.FileInfo{
		Name:  name,
		Base:  strings.TrimSuffix(name, ext),
		Ext:   ext,
		Dir:   filepath.Dir(path),
		Index: index,
	}
	return scripting.RunHook(ctx, r.cfg.Engine, r.cfg.Hook, info)
}

func (r *Runner) progress(index int, path string, err error) {
	if r.cfg.Progress != nil {
		r.cfg.Progress(index, path, err)
	}
}
