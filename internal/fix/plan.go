package fix

import (
	"sort"

	"spacelint/internal/diag"
)

// Batch is the edit set of one fix pass over one file.
type Batch struct {
	// Edits are non-overlapping and sorted by ascending offset.
	Edits []diag.TextEdit
	// Resolved lists the diagnostics whose edit is in Edits, merged ones
	// included.
	Resolved []diag.Diagnostic
	// Merged counts diagnostics whose edit was identical to one already
	// planned.
	Merged int
	// Deferred lists diagnostics whose edit overlaps a planned one. They are
	// left for the next pass, after re-analysis.
	Deferred []diag.Diagnostic
	// Skipped lists diagnostics without an edit.
	Skipped []diag.Diagnostic
}

type candidate struct {
	diag  diag.Diagnostic
	edit  diag.TextEdit
	order int
}

// Plan selects the edits of one batch pass. Identical edits coming from
// different diagnostics (two rules flagging the same whitespace run) are
// merged into one; of two overlapping edits the first in source order wins
// and the other is deferred.
func Plan(diagnostics []diag.Diagnostic) Batch {
	var b Batch
	cands := make([]candidate, 0, len(diagnostics))
	for i, d := range diagnostics {
		edit, err := ForDiagnostic(d)
		if err != nil {
			b.Skipped = append(b.Skipped, d)
			continue
		}
		cands = append(cands, candidate{diag: d, edit: edit, order: i})
	}
	sortCandidates(cands)

	for _, c := range cands {
		if findEdit(b.Edits, c.edit) {
			b.Merged++
			b.Resolved = append(b.Resolved, c.diag)
			continue
		}
		if conflictsWithExisting(b.Edits, c.edit) {
			b.Deferred = append(b.Deferred, c.diag)
			continue
		}
		b.Edits = append(b.Edits, c.edit)
		b.Resolved = append(b.Resolved, c.diag)
	}
	sortEdits(b.Edits)
	return b
}

// sortCandidates orders candidates by file, edit start, edit end, input
// order and code.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		ei, ej := candidates[i].edit, candidates[j].edit
		if ei.Span.File != ej.Span.File {
			return ei.Span.File < ej.Span.File
		}
		if ei.Span.Start != ej.Span.Start {
			return ei.Span.Start < ej.Span.Start
		}
		if ei.Span.End != ej.Span.End {
			return ei.Span.End < ej.Span.End
		}
		if candidates[i].order != candidates[j].order {
			return candidates[i].order < candidates[j].order
		}
		return candidates[i].diag.Code < candidates[j].diag.Code
	})
}

func findEdit(edits []diag.TextEdit, e diag.TextEdit) bool {
	for _, prev := range edits {
		if prev.Span == e.Span && prev.NewText == e.NewText {
			return true
		}
	}
	return false
}

func conflictsWithExisting(existing []diag.TextEdit, e diag.TextEdit) bool {
	for _, prev := range existing {
		if spansConflict(prev, e) {
			return true
		}
	}
	return false
}

func sortEdits(edits []diag.TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.Start != edits[j].Span.Start {
			return edits[i].Span.Start < edits[j].Span.Start
		}
		return edits[i].Span.End < edits[j].Span.End
	})
}
