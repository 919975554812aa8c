// Package fix turns spacing diagnostics into text edits and applies them,
// one at a time or as a batch of non-overlapping edits.
package fix

import (
	"errors"
	"fmt"

	"spacelint/internal/diag"
)

var (
	// ErrNoFixes is returned when a diagnostic carries no edit.
	ErrNoFixes = errors.New("no applicable fixes found")
	// ErrConflict is returned when edits handed to ApplyEdits overlap.
	ErrConflict = errors.New("conflicting edits")
	// ErrStale is returned when an edit's expected text no longer matches.
	ErrStale = errors.New("edit does not match current text")
)

// ForDiagnostic returns the single edit that resolves d.
func ForDiagnostic(d diag.Diagnostic) (diag.TextEdit, error) {
	for _, f := range d.Fixes {
		if len(f.Edits) == 1 {
			return f.Edits[0], nil
		}
	}
	return diag.TextEdit{}, fmt.Errorf("%s at %s: %w", d.Code.ID(), d.Primary, ErrNoFixes)
}

// ApplyOne applies the fix of d to content and returns the new text. Nothing
// outside the edit's span changes.
func ApplyOne(content []byte, d diag.Diagnostic) ([]byte, error) {
	edit, err := ForDiagnostic(d)
	if err != nil {
		return nil, err
	}
	return ApplyEdits(content, []diag.TextEdit{edit})
}
