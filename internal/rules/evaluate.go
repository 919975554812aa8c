package rules

import (
	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/lexer"
	"spacelint/internal/source"
	"spacelint/internal/stream"
	"spacelint/internal/token"
)

// VerdictKind is the outcome for one side of one token.
type VerdictKind uint8

const (
	Ok VerdictKind = iota
	MissingBefore
	ExtraBefore
	MissingAfter
	ExtraAfter
)

var verdictNames = [...]string{
	Ok:            "ok",
	MissingBefore: "missing-space-before",
	ExtraBefore:   "extra-space-before",
	MissingAfter:  "missing-space-after",
	ExtraAfter:    "extra-space-after",
}

func (k VerdictKind) String() string {
	if int(k) < len(verdictNames) {
		return verdictNames[k]
	}
	return "verdict(?)"
}

// Before reports whether the verdict concerns the space before the token.
func (k VerdictKind) Before() bool { return k == MissingBefore || k == ExtraBefore }

// Extra reports whether whitespace must be removed.
func (k VerdictKind) Extra() bool { return k == ExtraBefore || k == ExtraAfter }

// Polarity is "not" when a space must go and "" when one must be added.
func (k VerdictKind) Polarity() string {
	if k.Extra() {
		return "not"
	}
	return ""
}

// Direction is "preceded" or "followed".
func (k VerdictKind) Direction() string {
	if k.Before() {
		return "preceded"
	}
	return "followed"
}

// Verdict is a policy violation on one side of a token.
type Verdict struct {
	Kind    VerdictKind
	Rule    diag.Code
	Subject string
	Token   int
	// TokenSpan is the span of the offending token.
	TokenSpan source.Span
	// Span is the whitespace run to delete for Extra verdicts, or the empty
	// insertion point for Missing verdicts.
	Span source.Span
	// Old is the text of Span.
	Old string
}

// Evaluate checks every token of s against table for the selected rules and
// returns the violations in token order, before-side first.
func Evaluate(s *stream.Stream, roles []classify.Role, table *Table, sel Selection) []Verdict {
	var out []Verdict
	content := s.File().Content
	for i := 0; i < s.Len(); i++ {
		tok := s.At(i)
		if tok.Kind == token.EOF {
			break
		}
		role := classify.RoleNone
		if i < len(roles) {
			role = roles[i]
		}
		p, ok := table.Lookup(tok.Kind, role)
		if !ok || !sel.Enabled(p.Rule.Code) {
			continue
		}
		mk := func(kind VerdictKind, sp source.Span) Verdict {
			return Verdict{
				Kind:      kind,
				Rule:      p.Rule.Code,
				Subject:   p.Rule.SubjectFor(tok.Text),
				Token:     i,
				TokenSpan: tok.Span,
				Span:      sp,
				Old:       string(content[sp.Start:sp.End]),
			}
		}
		before := s.Before(i)
		switch judge(p.Before, before, s.Kind(i-1)) {
		case Require:
			out = append(out, mk(MissingBefore, source.Point(tok.Span.File, before.At)))
		case Forbid:
			if removable(s, i) {
				out = append(out, mk(ExtraBefore, before.Run))
			}
		}
		after := s.After(i)
		switch judge(p.After, after, s.Kind(i+1)) {
		case Require:
			out = append(out, mk(MissingAfter, source.Point(tok.Span.File, after.At)))
		case Forbid:
			if removable(s, i+1) {
				out = append(out, mk(ExtraAfter, after.Run))
			}
		}
	}
	return out
}

// judge returns the mode that is violated on a side, or Preserve when the
// side is fine.
func judge(p SidePolicy, sd stream.Side, nb token.Kind) Mode {
	if sd.Edge {
		return Preserve
	}
	switch p.ModeFor(nb) {
	case Require:
		if p.StrictLines {
			if sd.Run.Empty() {
				return Require
			}
			return Preserve
		}
		if sd.Space || sd.LineBreak {
			return Preserve
		}
		return Require
	case Forbid:
		if sd.LineBreak || !sd.Space {
			return Preserve
		}
		return Forbid
	}
	return Preserve
}

// removable reports whether the whitespace touching token i from the left can
// be deleted without merging i-1 and i into different tokens.
func removable(s *stream.Stream, i int) bool {
	if len(s.Gap(i)) != 1 {
		return true
	}
	return lexer.Joinable(s.TextOf(i-1), s.TextOf(i))
}
