package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/token"
)

// scanString scans any string literal form starting at the cursor:
// "..."  @"..."  $"..."  $@"..."  @$"..."  """..."""  $"""..."""
// Interpolation holes are skipped with brace balancing so that strings nested
// inside a hole do not end the literal early.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	verbatim, interpolated := false, false
	for {
		switch lx.cursor.Peek() {
		case '@':
			verbatim = true
			lx.cursor.Bump()
			continue
		case '$':
			interpolated = true
			lx.cursor.Bump()
			continue
		}
		break
	}

	var code diag.Code
	if n := lx.quoteRun(); n >= 3 && !verbatim {
		code = lx.scanRawBody(n)
	} else {
		lx.cursor.Bump() // opening '"'
		code = lx.scanQuotedBody(verbatim, interpolated)
	}

	sp := lx.cursor.SpanFrom(start)
	if code != diag.UnknownCode {
		msg := "unterminated string literal"
		if code == diag.LexBadInterpolation {
			msg = "unbalanced interpolation hole"
		}
		lx.errLex(code, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(start)}
}

// quoteRun counts consecutive '"' at the cursor.
func (lx *Lexer) quoteRun() uint32 {
	var n uint32
	for lx.cursor.PeekAt(n) == '"' {
		n++
	}
	return n
}

// scanQuotedBody consumes the body after the opening quote, including the
// closing quote. Returns a diag code on failure, UnknownCode on success.
func (lx *Lexer) scanQuotedBody(verbatim, interpolated bool) diag.Code {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			if verbatim && lx.cursor.Eat('"') {
				continue
			}
			return diag.UnknownCode
		case b == '\\' && !verbatim:
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return diag.LexUnterminatedString
			}
			lx.cursor.Bump()
		case isLineBreakByte(b) && !verbatim:
			return diag.LexUnterminatedString
		case b == '{' && interpolated:
			if lx.try2('{', '{') {
				continue
			}
			if code := lx.skipHole(); code != diag.UnknownCode {
				return code
			}
		case b == '}' && interpolated:
			if !lx.try2('}', '}') {
				lx.cursor.Bump()
			}
		default:
			lx.cursor.Bump()
		}
	}
	return diag.LexUnterminatedString
}

// scanRawBody consumes a raw string delimited by n quotes.
func (lx *Lexer) scanRawBody(n uint32) diag.Code {
	lx.cursor.Off += n
	for !lx.cursor.EOF() {
		if run := lx.quoteRun(); run >= n {
			lx.cursor.Off += run
			return diag.UnknownCode
		}
		lx.cursor.Bump()
	}
	return diag.LexUnterminatedString
}

// skipHole consumes an interpolation hole starting at '{'.
func (lx *Lexer) skipHole() diag.Code {
	lx.cursor.Bump()
	depth := 1
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
			if depth == 0 {
				return diag.UnknownCode
			}
		case '"', '@', '$':
			if b != '"' && lx.cursor.PeekAt(1) != '"' && lx.cursor.PeekAt(1) != '$' && lx.cursor.PeekAt(1) != '@' {
				lx.cursor.Bump()
				continue
			}
			if tok := lx.scanString(); tok.Kind == token.Invalid {
				return diag.LexBadInterpolation
			}
		case '\'':
			if tok := lx.scanChar(); tok.Kind == token.Invalid {
				return diag.LexBadInterpolation
			}
		default:
			lx.cursor.Bump()
		}
	}
	return diag.LexBadInterpolation
}

// scanChar scans a character literal such as 'a', '\n' or 'A'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\'':
			lx.cursor.Bump()
			return lx.emit(token.CharLit, start)
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() && !isLineBreakByte(lx.cursor.Peek()) {
				lx.bumpRune()
			}
		case isLineBreakByte(b):
			return lx.badChar(start)
		default:
			lx.bumpRune()
		}
	}
	return lx.badChar(start)
}

func (lx *Lexer) badChar(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}
