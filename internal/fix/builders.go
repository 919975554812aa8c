package fix

import (
	"spacelint/internal/diag"
	"spacelint/internal/source"
)

// InsertSpace creates an edit inserting one space at the empty span at.
func InsertSpace(at source.Span) diag.TextEdit {
	return diag.TextEdit{
		Span:    source.Span{File: at.File, Start: at.Start, End: at.Start},
		NewText: " ",
	}
}

// DeleteRun creates an edit removing a whitespace run. The edit only applies
// while the run still reads expect.
func DeleteRun(run source.Span, expect string) diag.TextEdit {
	return diag.TextEdit{
		Span:    run,
		NewText: "",
		OldText: expect,
	}
}
