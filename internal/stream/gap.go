package stream

import (
	"spacelint/internal/source"
	"spacelint/internal/token"
)

// Gap returns the trivia between token i-1 and token i in source order.
// For i == 0 it is the leading trivia of the first token.
func (s *Stream) Gap(i int) []token.Trivia {
	if i < 0 || i >= len(s.tokens) {
		return nil
	}
	lead := s.tokens[i].Leading
	if i == 0 {
		return lead
	}
	trail := s.tokens[i-1].Trailing
	if len(trail) == 0 {
		return lead
	}
	if len(lead) == 0 {
		return trail
	}
	out := make([]token.Trivia, 0, len(trail)+len(lead))
	out = append(out, trail...)
	return append(out, lead...)
}

// Side describes the whitespace on one side of a token.
type Side struct {
	// Edge is set at the beginning of the file (before side) or when the
	// neighbour is EOF (after side). Edges are never checked.
	Edge bool
	// Space is set when the trivia touching the token is whitespace or a
	// line break.
	Space bool
	// LineBreak is set when the gap contains a line break or a directive.
	LineBreak bool
	// Comment is set when a comment touches the token.
	Comment bool
	// Run is the whitespace trivia touching the token. For a token at the
	// start or end of a line it is the indentation or trailing whitespace.
	Run source.Span
	// At is the offset where a single space would be inserted.
	At uint32
}

// Before inspects the gap before token i.
func (s *Stream) Before(i int) Side {
	tok := &s.tokens[i]
	side := Side{At: tok.Span.Start, Run: source.Point(tok.Span.File, tok.Span.Start)}
	if i == 0 {
		side.Edge = true
	}
	gap := s.Gap(i)
	fillSide(&side, gap, len(gap)-1)
	return side
}

// After inspects the gap after token i.
func (s *Stream) After(i int) Side {
	tok := &s.tokens[i]
	side := Side{At: tok.Span.End, Run: source.Point(tok.Span.File, tok.Span.End)}
	if i+1 >= len(s.tokens) || s.tokens[i+1].Kind == token.EOF {
		side.Edge = true
	}
	if i+1 < len(s.tokens) {
		fillSide(&side, s.Gap(i+1), 0)
	}
	return side
}

func fillSide(side *Side, gap []token.Trivia, touching int) {
	for _, tr := range gap {
		if tr.Kind == token.TriviaNewline || tr.Kind == token.TriviaDirective {
			side.LineBreak = true
		}
	}
	if touching < 0 || touching >= len(gap) {
		return
	}
	tr := gap[touching]
	switch {
	case tr.Kind == token.TriviaSpace:
		side.Space = true
		side.Run = tr.Span
	case tr.Kind == token.TriviaNewline:
		side.Space = true
	case tr.Kind.IsComment():
		side.Comment = true
	}
}
