// Package diag defines the diagnostic model shared by the lexer, the spacing
// rules and the fix engine.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form
//     ("LEX0102", "SP1001"); see codes.go.
//   - Message: short human text.
//   - Primary: the span the diagnostic is reported at. For spacing rules this
//     is the exact place an edit happens: the whitespace run to delete, or an
//     empty span at the insertion point.
//   - Token: the token the rule was evaluated for.
//   - Args: raw message arguments. Spacing rules store the polarity ("not" or
//     "") and the direction ("preceded" or "followed").
//   - Fixes: structured TextEdits the fix engine can apply.
//
// TextEdit spans are in source coordinates; OldText is a guard the fix engine
// checks before applying an edit.
//
// # Emitting diagnostics
//
// Producers use a Reporter (BagReporter, NopReporter) or the
// ReportBuilder helpers. Bag keeps diagnostics with a cap and sorts them by
// position, then by code.
//
// Package diag performs no IO and no formatting beyond the single-line short
// form in short.go; rendering lives in internal/diagfmt.
package diag
