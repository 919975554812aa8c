package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. Keywords are case-sensitive. Token.Text is the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	if !lx.scanIdentBody() {
		return lx.scanUnknown(start)
	}
	text := lx.text(start)
	if k, ok := token.LookupKeyword(text); ok {
		return lx.emit(k, start)
	}
	return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start), Text: text}
}

// scanIdentBody consumes [start continue*]; false when the cursor is not on
// an identifier start.
func (lx *Lexer) scanIdentBody() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return false
		}
		lx.bumpRune()
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) || lx.cursor.EOF() {
				return true
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			return true
		}
		lx.bumpRune()
	}
}

// scanPrefixed handles tokens starting with '@' or '$': verbatim
// identifiers, verbatim, interpolated and raw strings.
func (lx *Lexer) scanPrefixed() token.Token {
	start := lx.cursor.Mark()
	verbatim, dollars := false, 0
	for {
		switch lx.cursor.Peek() {
		case '@':
			if verbatim {
				return lx.scanUnknown(start)
			}
			verbatim = true
			lx.cursor.Bump()
			continue
		case '$':
			dollars++
			lx.cursor.Bump()
			continue
		}
		break
	}

	if lx.cursor.Peek() == '"' {
		lx.cursor.Reset(start)
		return lx.scanString()
	}
	if verbatim && dollars == 0 {
		if lx.scanIdentBody() {
			return lx.emit(token.Ident, start)
		}
	}
	return lx.scanUnknown(start)
}

// scanUnknown reports the rune at start as unknown and emits it as Invalid.
func (lx *Lexer) scanUnknown(start Mark) token.Token {
	lx.cursor.Reset(start)
	lx.bumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}
