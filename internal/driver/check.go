// Package driver runs the spacing engine over many files: it expands paths,
// loads sources into one FileSet, fans files out to a bounded worker pool,
// caches check results on disk and reports progress.
package driver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"spacelint/internal/engine"
	"spacelint/internal/observ"
	"spacelint/internal/source"
)

// Check analyses every source file under paths. The returned report is
// complete for files that ran even when an error (cancellation, no sources)
// is returned.
func Check(ctx context.Context, paths []string, opts Options) (*Report, error) {
	opts = opts.normalized()
	log := opts.logger()
	return run(ctx, paths, opts, StageAnalyze, func(_ context.Context, _ *source.FileSet, res *FileResult) {
		checkFile(res, opts, log)
	})
}

func checkFile(res *FileResult, opts Options, log *zap.Logger) {
	var key Digest
	if opts.Cache != nil {
		key = CacheKey(res.File, opts.Engine)
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			log.Debug("cache read failed", zap.String("path", res.Path), zap.Error(err))
		case hit:
			payload.restore(res, res.File.ID)
			res.Diagnostics, res.Dropped = capDiagnostics(res.Diagnostics, opts.MaxDiagnostics)
			log.Debug("cache hit", zap.String("path", res.Path), zap.Int("diagnostics", len(res.Diagnostics)))
			return
		default:
			log.Debug("cache miss", zap.String("path", res.Path))
		}
	}

	eopts, timer := engineOptions(opts)
	ar, err := engine.Analyze(res.File, eopts)
	record(res, ar, err, log)
	if timer != nil {
		res.Timings = timer.Report()
	}

	if opts.Cache != nil && res.Status != FileFailed {
		if err := opts.Cache.Put(key, payloadFor(res)); err != nil {
			log.Debug("cache write failed", zap.String("path", res.Path), zap.Error(err))
		}
	}
	res.Diagnostics, res.Dropped = capDiagnostics(res.Diagnostics, opts.MaxDiagnostics)
}

func engineOptions(opts Options) (engine.Options, *observ.Timer) {
	eopts := opts.Engine
	if !opts.Timings {
		return eopts, nil
	}
	timer := observ.NewTimer()
	eopts.Timer = timer
	return eopts, timer
}

// record classifies an analysis outcome into res.
func record(res *FileResult, ar *engine.Result, err error, log *zap.Logger) {
	switch {
	case err == nil:
		res.Status = FileOK
		res.Diagnostics = ar.Diagnostics
	case errors.Is(err, engine.ErrSkipped):
		res.Status = FileSkipped
		if ar != nil {
			res.Syntax = ar.Syntax
		}
		log.Info("skipped", zap.String("path", res.Path), zap.Int("syntax_errors", len(res.Syntax)))
	default:
		res.Status = FileFailed
		res.Err = err
		log.Warn("analysis failed", zap.String("path", res.Path), zap.Error(err))
	}
}
