package diag

import (
	"spacelint/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit replaces Span with NewText. A non-empty OldText must match the
// current content of Span for the edit to apply.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

type Fix struct {
	Title string
	Edits []TextEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Token    source.Span
	Args     []string
	Notes    []Note
	Fixes    []Fix
}

// Polarity returns the first message argument ("not" or "").
func (d Diagnostic) Polarity() string {
	if len(d.Args) > 0 {
		return d.Args[0]
	}
	return ""
}

// Direction returns the second message argument ("preceded" or "followed").
func (d Diagnostic) Direction() string {
	if len(d.Args) > 1 {
		return d.Args[1]
	}
	return ""
}
