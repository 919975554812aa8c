package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/token"
)

// scanNumber accepts 123, 1_000, 0x1F, 0b1010, 1.5, .5, 1e-3, 2.0E+10 and
// the C# suffixes (u, l, ul, f, d, m in any case). The token text keeps the
// suffix; f/d/m make the literal real.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(isHex) {
				return lx.badNumber(start, "expected hex digit")
			}
			return lx.emit(lx.scanSuffix(kind), start)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(isBin) {
				return lx.badNumber(start, "expected binary digit")
			}
			return lx.emit(lx.scanSuffix(kind), start)
		}
	}

	lx.eatDigits(isDec)

	// fraction only when a digit follows the dot; "1..2" and "1.ToString()"
	// leave the dot alone
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.RealLit
		lx.eatDigits(isDec)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if p := lx.cursor.Peek(); p == '+' || p == '-' {
			lx.cursor.Bump()
		}
		if !lx.eatDigits(isDec) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		kind = token.RealLit
	}
	return lx.emit(lx.scanSuffix(kind), start)
}

func isBin(b byte) bool { return b == '0' || b == '1' }

// eatDigits consumes digits accepted by ok, allowing '_' separators.
// Reports whether at least one digit was consumed.
func (lx *Lexer) eatDigits(ok func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case ok(b):
			seen = true
		case b == '_':
		default:
			return seen
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanSuffix(kind token.Kind) token.Kind {
	for {
		switch lx.cursor.Peek() {
		case 'u', 'U', 'l', 'L':
			lx.cursor.Bump()
		case 'f', 'F', 'd', 'D', 'm', 'M':
			lx.cursor.Bump()
			kind = token.RealLit
		default:
			return kind
		}
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(start)}
}
