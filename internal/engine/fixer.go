package engine

import (
	"fmt"

	"spacelint/internal/diag"
	"spacelint/internal/fix"
	"spacelint/internal/source"
)

// FixResult is the outcome of fixing one file.
type FixResult struct {
	// File holds the rewritten content under the original file identity.
	File *source.File
	// Passes is the number of batch passes that applied edits.
	Passes int
	// Fixed counts diagnostics resolved by applied edits.
	Fixed int
	// Remaining lists diagnostics left after fixing, positioned in File.
	Remaining []diag.Diagnostic
}

// Changed reports whether fixing altered the text.
func (r *FixResult) Changed(orig *source.File) bool {
	return string(r.File.Content) != string(orig.Content)
}

// FixOne applies the fix of a single diagnostic and re-analyses the result.
func FixOne(file *source.File, d diag.Diagnostic, opts Options) (*FixResult, error) {
	content, err := fix.ApplyOne(file.Content, d)
	if err != nil {
		return nil, err
	}
	next := file.WithContent(content)
	res, err := Analyze(next, opts)
	if err != nil {
		return nil, fmt.Errorf("re-analyse after fix: %w", err)
	}
	return &FixResult{File: next, Passes: 1, Fixed: 1, Remaining: res.Diagnostics}, nil
}

// FixAll batch-fixes file until re-analysis is clean or MaxFixPasses passes
// have run. Diagnostics left over are returned in Remaining together with
// ErrFixpointNotReached.
func FixAll(file *source.File, opts Options) (*FixResult, error) {
	out := &FixResult{File: file}
	cur := file
	for pass := 1; ; pass++ {
		res, err := Analyze(cur, opts)
		if err != nil {
			return nil, err
		}
		out.File = cur
		if len(res.Diagnostics) == 0 {
			out.Remaining = nil
			return out, nil
		}
		if pass > MaxFixPasses {
			out.Remaining = res.Diagnostics
			return out, fmt.Errorf("%s: %d left after %d passes: %w",
				file.Path, len(res.Diagnostics), MaxFixPasses, ErrFixpointNotReached)
		}

		ph := opts.begin(fmt.Sprintf("fix pass %d", pass))
		batch := fix.Plan(res.Diagnostics)
		if len(batch.Edits) == 0 {
			opts.end(ph, "nothing to apply")
			out.Remaining = res.Diagnostics
			return out, fmt.Errorf("%s: %w", file.Path, ErrFixpointNotReached)
		}
		content, err := fix.ApplyEdits(cur.Content, batch.Edits)
		opts.end(ph, fmt.Sprintf("%d edits, %d merged, %d deferred",
			len(batch.Edits), batch.Merged, len(batch.Deferred)))
		if err != nil {
			return nil, fmt.Errorf("%s: pass %d: %w", file.Path, pass, err)
		}
		out.Passes = pass
		out.Fixed += len(batch.Resolved)
		cur = cur.WithContent(content)
	}
}
