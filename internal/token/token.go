package token

import (
	"spacelint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a literal, including true/false/null.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case KwTrue, KwFalse, KwNull:
		return true
	default:
		return t.Kind.IsLiteral()
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOperand reports whether the token can end an operand: identifiers,
// literals, this/base and predefined type names.
func (t Token) IsOperand() bool {
	switch t.Kind {
	case Ident, KwThis, KwBase, KwPredefType:
		return true
	default:
		return t.IsLiteral()
	}
}

// FullStart returns the offset of the first leading trivia byte.
func (t Token) FullStart() uint32 {
	if len(t.Leading) > 0 {
		return t.Leading[0].Span.Start
	}
	return t.Span.Start
}

// FullEnd returns the offset just past the last trailing trivia byte.
func (t Token) FullEnd() uint32 {
	if n := len(t.Trailing); n > 0 {
		return t.Trailing[n-1].Span.End
	}
	return t.Span.End
}
