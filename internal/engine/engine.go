// Package engine runs the per-file spacing pipeline: lex, build the token
// stream, classify roles, evaluate rules and report diagnostics, and drives
// batch fixing to a bounded fixed point.
package engine

import (
	"errors"
	"fmt"

	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/grammar"
	"spacelint/internal/lexer"
	"spacelint/internal/observ"
	"spacelint/internal/report"
	"spacelint/internal/rules"
	"spacelint/internal/source"
	"spacelint/internal/stream"
)

// MaxFixPasses bounds batch fixing. Rules own disjoint token sides, so one
// pass settles every gap; the second pass picks up edits deferred as
// overlapping and exposes tables whose policies fight over a gap.
const MaxFixPasses = 2

var (
	// ErrSkipped marks a file with host syntax errors. It is not analysed.
	ErrSkipped = errors.New("file skipped: syntax errors")
	// ErrFixpointNotReached is returned when diagnostics remain after
	// MaxFixPasses batch passes.
	ErrFixpointNotReached = errors.New("fix point not reached")
)

// Options configures one analysis.
type Options struct {
	Profile grammar.Profile
	Rules   rules.Selection
	// Table defaults to rules.Default().
	Table *rules.Table
	// Timer, when set, records per-phase durations.
	Timer *observ.Timer
}

// DefaultOptions enables every rule for the default language version.
func DefaultOptions() Options {
	return Options{
		Profile: grammar.NewProfile(grammar.Default),
		Rules:   rules.All(),
	}
}

func (o Options) table() *rules.Table {
	if o.Table == nil {
		return rules.Default()
	}
	return o.Table
}

func (o Options) begin(name string) int {
	if o.Timer == nil {
		return -1
	}
	return o.Timer.Begin(name)
}

func (o Options) end(idx int, note string) {
	if o.Timer != nil {
		o.Timer.End(idx, note)
	}
}

// Result is the outcome of analysing one file.
type Result struct {
	File        *source.File
	Stream      *stream.Stream
	Roles       *classify.Result
	Diagnostics []diag.Diagnostic
	// Syntax holds the lexical errors of a skipped file.
	Syntax []diag.Diagnostic
}

// Analyze runs the pipeline over file. A file with lexical errors yields
// ErrSkipped with the errors in Result.Syntax. Oversized content, a stream or
// a classification inconsistency fails the file without diagnostics.
func Analyze(file *source.File, opts Options) (*Result, error) {
	if err := source.CheckSize(len(file.Content)); err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	res := &Result{File: file}

	ph := opts.begin("lex")
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	opts.end(ph, fmt.Sprintf("%d tokens", len(toks)))
	if bag.HasErrors() {
		bag.Sort()
		res.Syntax = bag.Items()
		return res, fmt.Errorf("%s: %w", file.Path, ErrSkipped)
	}

	ph = opts.begin("stream")
	s, err := stream.New(file, toks)
	opts.end(ph, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	res.Stream = s

	ph = opts.begin("classify")
	roles, err := classify.Classify(s, opts.Profile)
	opts.end(ph, opts.Profile.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}
	res.Roles = roles

	ph = opts.begin("evaluate")
	verdicts := rules.Evaluate(s, roles.Roles(), opts.table(), opts.Rules)
	res.Diagnostics = report.Diagnostics(s, verdicts)
	opts.end(ph, fmt.Sprintf("%d diagnostics", len(res.Diagnostics)))
	return res, nil
}
