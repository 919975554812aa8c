package driver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"spacelint/internal/source"
)

// worker processes one loaded file and fills res. New file versions go into
// fileSet, which is safe for concurrent use.
type worker func(ctx context.Context, fileSet *source.FileSet, res *FileResult)

// run loads every file into one FileSet up front, then hands the files to a
// bounded errgroup pool. Results keep path order: each worker writes only its
// own slot. Cancellation is observed between files; a file already in a
// worker runs to completion.
func run(ctx context.Context, paths []string, opts Options, stage Stage, work worker) (*Report, error) {
	files, err := collectSourceFiles(ctx, paths, opts.extensions())
	if err != nil {
		return nil, err
	}
	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	rep := &Report{FileSet: fileSet, Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return rep, ErrNoSources
	}

	log := opts.logger()
	for i, path := range files {
		res := &rep.Files[i]
		res.Path = path
		id, err := fileSet.Load(path)
		if err != nil {
			res.Status = FileFailed
			res.Err = err
			log.Warn("load failed", zap.String("path", path), zap.Error(err))
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		res.File = fileSet.Get(id)
		emit(opts.Progress, Event{File: path, Stage: stage, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))

	for i := range rep.Files {
		res := &rep.Files[i]
		if res.File == nil {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				res.Status = FileFailed
				res.Err = gctx.Err()
				emit(opts.Progress, Event{File: res.Path, Stage: stage, Status: StatusError, Err: res.Err})
				return gctx.Err()
			default:
			}

			emit(opts.Progress, Event{File: res.Path, Stage: stage, Status: StatusWorking})
			start := time.Now()
			work(gctx, fileSet, res)
			emit(opts.Progress, Event{
				File:        res.Path,
				Stage:       stage,
				Status:      statusFor(res.Status),
				Diagnostics: len(res.Diagnostics),
				Err:         res.Err,
				Elapsed:     time.Since(start),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return rep, err
	}
	return rep, nil
}
