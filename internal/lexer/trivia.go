package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/token"
)

// collectLeadingTrivia gathers the trivia before the next significant token:
//   - runs of horizontal whitespace become one TriviaSpace
//   - consecutive line breaks become one TriviaNewline
//   - // and /* */ comments, /// doc lines
//   - '#' lines that start a line (after optional whitespace) are directives
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case lx.atSpace():
			lx.scanSpaceRun()
			lx.push(token.TriviaSpace, start)

		case isLineBreakByte(b):
			for lx.cursor.EatLineBreak() {
			}
			lx.push(token.TriviaNewline, start)
			lx.lineStart = true

		case b == '#' && lx.lineStart:
			for !lx.cursor.EOF() && !isLineBreakByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.push(token.TriviaDirective, start)
			lx.lineStart = false

		case b == '/' && lx.scanComment():
			lx.lineStart = false

		default:
			return
		}
	}
}

// collectTrailingTrivia gathers same-line whitespace and comments after a
// token, up to and including the first line break.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	saved := lx.hold
	lx.hold = nil
	defer func() { lx.hold = saved }()

	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()
		switch {
		case lx.atSpace():
			lx.scanSpaceRun()
			lx.push(token.TriviaSpace, start)
		case isLineBreakByte(b):
			lx.cursor.EatLineBreak()
			lx.push(token.TriviaNewline, start)
			lx.lineStart = true
			return lx.hold
		case b == '/' && lx.scanComment():
		default:
			return lx.hold
		}
	}
	return lx.hold
}

func (lx *Lexer) scanSpaceRun() {
	for !lx.cursor.EOF() && lx.atSpace() {
		lx.bumpRune()
	}
}

func (lx *Lexer) push(kind token.TriviaKind, start Mark) {
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.text(start),
	})
}

// scanComment consumes //..., ///... or /*...*/ into hold. Block comments do
// not nest.
func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		lx.cursor.Bump()
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) != '/' {
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && !isLineBreakByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.push(kind, start)
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.try2('*', '/') {
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.push(token.TriviaBlockComment, start)
		return true
	}
	return false
}
