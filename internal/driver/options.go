package driver

import (
	"runtime"

	"go.uber.org/zap"

	"spacelint/internal/engine"
	"spacelint/internal/rules"
)

// FixMode selects how many diagnostics Fix resolves per file.
type FixMode uint8

const (
	// FixAll batch-fixes to a bounded fixed point.
	FixAll FixMode = iota
	// FixOnce applies the fix of the first diagnostic only.
	FixOnce
)

// DefaultExtensions are picked up when walking directories.
var DefaultExtensions = []string{".cs"}

// Options configures a multi-file run.
type Options struct {
	Engine engine.Options
	// Jobs bounds the worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	// Extensions filters files found in directories. Explicit file
	// arguments are always processed.
	Extensions []string
	// MaxDiagnostics caps the diagnostics kept per file; <= 0 keeps all.
	MaxDiagnostics int
	// Cache, when set, stores check results across runs.
	Cache    *DiskCache
	Logger   *zap.Logger
	Progress ProgressSink
	// Timings records per-phase durations for every file.
	Timings bool
	FixMode FixMode
	// BaseDir is used to render relative paths.
	BaseDir string
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

// normalized builds the rule table once for all workers.
func (o Options) normalized() Options {
	if o.Engine.Table == nil {
		o.Engine.Table = rules.Default()
	}
	return o
}
