package driver

import "time"

// Stage describes the pipeline step a file is in.
type Stage string

const (
	// StageLoad is reading the file from disk.
	StageLoad Stage = "load"
	// StageAnalyze is the check pipeline.
	StageAnalyze Stage = "analyze"
	// StageFix is batch or single fixing.
	StageFix Stage = "fix"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates a worker picked the file up.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished, with or without diagnostics.
	StatusDone Status = "done"
	// StatusSkipped indicates the file has host syntax errors.
	StatusSkipped Status = "skipped"
	// StatusError indicates loading or analysis failed.
	StatusError Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File        string
	Stage       Stage
	Status      Status
	Diagnostics int
	Err         error
	Elapsed     time.Duration
}

// ProgressSink consumes progress events. Workers call OnEvent concurrently.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

func statusFor(st FileStatus) Status {
	switch st {
	case FileSkipped:
		return StatusSkipped
	case FileFailed:
		return StatusError
	default:
		return StatusDone
	}
}
