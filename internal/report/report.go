// Package report turns spacing verdicts into diagnostics, each carrying the
// single-space fix that resolves it.
package report

import (
	"fmt"

	"spacelint/internal/diag"
	"spacelint/internal/fix"
	"spacelint/internal/rules"
	"spacelint/internal/stream"
)

// Message renders the text of a verdict, e.g.
// "Commas must not be preceded by a space".
func Message(v rules.Verdict) string {
	pol := ""
	if v.Kind.Extra() {
		pol = " not"
	}
	return fmt.Sprintf("%s must%s be %s by a space", v.Subject, pol, v.Kind.Direction())
}

// Edit returns the text edit that resolves v.
func Edit(v rules.Verdict) diag.TextEdit {
	if v.Kind.Extra() {
		return fix.DeleteRun(v.Span, v.Old)
	}
	return fix.InsertSpace(v.Span)
}

func fixTitle(v rules.Verdict, tokenText string) string {
	verb, where := "Insert", "before"
	if v.Kind.Extra() {
		verb = "Remove"
	}
	if !v.Kind.Before() {
		where = "after"
	}
	return fmt.Sprintf("%s space %s '%s'", verb, where, tokenText)
}

// Diagnostics converts verdicts into warnings sorted by position, then rule.
// The primary span is the whitespace run to delete or the insertion point.
func Diagnostics(s *stream.Stream, verdicts []rules.Verdict) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(verdicts))
	for _, v := range verdicts {
		d := diag.New(diag.SevWarning, v.Rule, v.Span, Message(v)).
			WithToken(v.TokenSpan).
			WithArgs(v.Kind.Polarity(), v.Kind.Direction()).
			WithFix(fixTitle(v, s.TextOf(v.Token)), Edit(v))
		out = append(out, d)
	}
	diag.SortDiagnostics(out)
	return out
}
