package fix

import (
	"fmt"

	"spacelint/internal/diag"
)

// ApplyEdits applies non-overlapping edits to content in one ascending pass
// and returns the new text. content is not modified.
func ApplyEdits(content []byte, edits []diag.TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return append([]byte(nil), content...), nil
	}
	sorted := make([]diag.TextEdit, len(edits))
	copy(sorted, edits)
	sortEdits(sorted)

	grow := 0
	for i, e := range sorted {
		if int(e.Span.End) > len(content) || e.Span.End < e.Span.Start {
			return nil, fmt.Errorf("edit %s out of range (len %d): %w", e.Span, len(content), ErrStale)
		}
		if conflictsWithExisting(sorted[:i], e) {
			return nil, fmt.Errorf("edit %s overlaps another edit: %w", e.Span, ErrConflict)
		}
		if e.OldText != "" && string(content[e.Span.Start:e.Span.End]) != e.OldText {
			return nil, fmt.Errorf("edit %s expects %q: %w", e.Span, e.OldText, ErrStale)
		}
		grow += len(e.NewText)
	}

	out := make([]byte, 0, len(content)+grow)
	pos := uint32(0)
	for _, e := range sorted {
		out = append(out, content[pos:e.Span.Start]...)
		out = append(out, e.NewText...)
		pos = e.Span.End
	}
	out = append(out, content[pos:]...)
	return out, nil
}

// spansConflict reports whether two edits touch the same bytes. Two
// insertions conflict only at the same offset.
func spansConflict(a, b diag.TextEdit) bool {
	if a.Span.Empty() && b.Span.Empty() {
		return a.Span.File == b.Span.File && a.Span.Start == b.Span.Start
	}
	return a.Span.Overlaps(b.Span)
}
