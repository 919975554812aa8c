package driver

import (
	"slices"

	"spacelint/internal/diag"
	"spacelint/internal/source"
)

// restamp returns copies of ds with every span moved onto file id. Offsets
// are kept; callers guarantee they refer to the content registered under id.
func restamp(ds []diag.Diagnostic, id source.FileID) []diag.Diagnostic {
	if len(ds) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, len(ds))
	for i, d := range ds {
		d.Primary.File = id
		d.Token.File = id
		if len(d.Notes) > 0 {
			notes := slices.Clone(d.Notes)
			for j := range notes {
				notes[j].Span.File = id
			}
			d.Notes = notes
		}
		if len(d.Fixes) > 0 {
			fixes := make([]diag.Fix, len(d.Fixes))
			for j, f := range d.Fixes {
				edits := slices.Clone(f.Edits)
				for k := range edits {
					edits[k].Span.File = id
				}
				fixes[j] = diag.Fix{Title: f.Title, Edits: edits}
			}
			d.Fixes = fixes
		}
		out[i] = d
	}
	return out
}
