// Package stream wraps a lexed token sequence into an index-addressable view
// with neighbour lookup, bracket matching and per-side whitespace inspection.
//
// Trivia is never indexed: Prev and Next already step over whitespace, line
// breaks and comments. The gap between token i-1 and token i is the trailing
// trivia of i-1 followed by the leading trivia of i.
package stream

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"spacelint/internal/source"
	"spacelint/internal/token"
)

var (
	// ErrUnbalanced reports a paren, bracket or brace without a partner.
	ErrUnbalanced = errors.New("unbalanced brackets")
	// ErrMalformed reports a token sequence that does not end with EOF.
	ErrMalformed = errors.New("malformed token stream")
)

// Stream is an immutable view over one file's tokens.
type Stream struct {
	file   *source.File
	tokens []token.Token
	match  []int32
}

// New builds a stream and matches (), [] and {} pairs.
func New(file *source.File, tokens []token.Token) (*Stream, error) {
	if len(tokens) == 0 || len(tokens) > math.MaxInt32 || tokens[len(tokens)-1].Kind != token.EOF {
		return nil, ErrMalformed
	}
	s := &Stream{
		file:   file,
		tokens: tokens,
		match:  make([]int32, len(tokens)),
	}
	stack := make([]int32, 0, 16)
	for i := range tokens {
		s.match[i] = -1
		k := tokens[i].Kind
		switch {
		case k.IsOpenBracket():
			stack = append(stack, int32(i))
		case k.IsCloseBracket():
			if len(stack) == 0 {
				return nil, s.unbalanced(i, "unexpected %q", tokens[i].Text)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closerOf(tokens[open].Kind) != k {
				return nil, s.unbalanced(i, "%q does not close %q", tokens[i].Text, tokens[open].Text)
			}
			s.match[open] = int32(i)
			s.match[i] = open
		}
	}
	if len(stack) > 0 {
		open := int(stack[len(stack)-1])
		return nil, s.unbalanced(open, "unclosed %q", tokens[open].Text)
	}
	return s, nil
}

func (s *Stream) unbalanced(i int, format string, args ...any) error {
	pos := s.file.Position(s.tokens[i].Span.Start)
	return fmt.Errorf("%w: %s at %d:%d", ErrUnbalanced, fmt.Sprintf(format, args...), pos.Line, pos.Col)
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	case token.LBrace:
		return token.RBrace
	}
	return token.Invalid
}

// File returns the source file the stream was built from.
func (s *Stream) File() *source.File { return s.file }

// Len returns the number of tokens, EOF included.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns token i.
func (s *Stream) At(i int) token.Token { return s.tokens[i] }

// Kind returns the kind of token i, or EOF when i is out of range.
func (s *Stream) Kind(i int) token.Kind {
	if i < 0 || i >= len(s.tokens) {
		return token.EOF
	}
	return s.tokens[i].Kind
}

// TextOf returns the text of token i, or "" when out of range.
func (s *Stream) TextOf(i int) string {
	if i < 0 || i >= len(s.tokens) {
		return ""
	}
	return s.tokens[i].Text
}

// Prev returns the index of the previous token, or -1.
func (s *Stream) Prev(i int) int {
	if i <= 0 {
		return -1
	}
	return i - 1
}

// Next returns the index of the next token, or -1 after EOF.
func (s *Stream) Next(i int) int {
	if i+1 >= len(s.tokens) {
		return -1
	}
	return i + 1
}

// PrevSignificant walks backwards from i and returns the first token for
// which skip is false, or -1.
func (s *Stream) PrevSignificant(i int, skip func(token.Kind) bool) int {
	for j := i - 1; j >= 0; j-- {
		if skip == nil || !skip(s.tokens[j].Kind) {
			return j
		}
	}
	return -1
}

// NextSignificant walks forward from i and returns the first token for which
// skip is false, or -1.
func (s *Stream) NextSignificant(i int, skip func(token.Kind) bool) int {
	for j := i + 1; j < len(s.tokens); j++ {
		if skip == nil || !skip(s.tokens[j].Kind) {
			return j
		}
	}
	return -1
}

// Match returns the partner of a paren, bracket or brace, or -1.
func (s *Stream) Match(i int) int {
	if i < 0 || i >= len(s.match) {
		return -1
	}
	return int(s.match[i])
}

// Touches reports whether token i immediately follows token i-1 with no
// trivia in between.
func (s *Stream) Touches(i int) bool {
	return i > 0 && i < len(s.tokens) && s.tokens[i-1].Span.End == s.tokens[i].Span.Start
}

// Text reassembles the file from tokens and trivia.
func (s *Stream) Text() string {
	var b strings.Builder
	b.Grow(len(s.file.Content))
	for i := range s.tokens {
		t := &s.tokens[i]
		for _, tr := range t.Leading {
			b.WriteString(tr.Text)
		}
		b.WriteString(t.Text)
		for _, tr := range t.Trailing {
			b.WriteString(tr.Text)
		}
	}
	return b.String()
}
