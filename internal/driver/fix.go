package driver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"spacelint/internal/engine"
	"spacelint/internal/source"
)

// Fix rewrites every source file under paths in memory. Rewritten versions
// are registered in the report's FileSet and exposed as FileResult.Fixed;
// nothing is written to disk (see WriteFixed). The disk cache is not
// consulted: fixing always needs the token stream.
func Fix(ctx context.Context, paths []string, opts Options) (*Report, error) {
	opts = opts.normalized()
	log := opts.logger()
	return run(ctx, paths, opts, StageFix, func(_ context.Context, fileSet *source.FileSet, res *FileResult) {
		fixFile(res, fileSet, opts, log)
	})
}

func fixFile(res *FileResult, fileSet *source.FileSet, opts Options, log *zap.Logger) {
	eopts, timer := engineOptions(opts)
	defer func() {
		if timer != nil {
			res.Timings = timer.Report()
		}
		res.Diagnostics, res.Dropped = capDiagnostics(res.Diagnostics, opts.MaxDiagnostics)
	}()

	ar, err := engine.Analyze(res.File, eopts)
	record(res, ar, err, log)
	if res.Status != FileOK || len(res.Diagnostics) == 0 {
		return
	}

	var fr *engine.FixResult
	if opts.FixMode == FixOnce {
		fr, err = engine.FixOne(res.File, ar.Diagnostics[0], eopts)
	} else {
		fr, err = engine.FixAll(res.File, eopts)
	}
	switch {
	case err == nil:
	case errors.Is(err, engine.ErrFixpointNotReached) && fr != nil:
		res.Unresolved = true
		log.Warn("unresolved diagnostics",
			zap.String("path", res.Path),
			zap.Int("remaining", len(fr.Remaining)),
			zap.Int("passes", fr.Passes))
	default:
		res.Status = FileFailed
		res.Err = err
		res.Diagnostics = nil
		log.Warn("fix failed", zap.String("path", res.Path), zap.Error(err))
		return
	}

	res.Passes = fr.Passes
	res.Resolved = fr.Fixed
	res.Diagnostics = fr.Remaining
	if opts.FixMode == FixOnce && len(fr.Remaining) > 0 {
		res.Unresolved = true
	}
	if !fr.Changed(res.File) {
		return
	}
	id := fileSet.Add(res.File.Path, fr.File.Content, res.File.Flags)
	res.Fixed = fileSet.Get(id)
	res.Diagnostics = restamp(fr.Remaining, id)
	log.Debug("fixed",
		zap.String("path", res.Path),
		zap.Int("resolved", res.Resolved),
		zap.Int("passes", res.Passes),
		zap.Int("remaining", len(res.Diagnostics)))
}
