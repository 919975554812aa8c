package classify

import (
	"spacelint/internal/token"
)

func (c *classifier) commaRole(i int) Role {
	j := i - 1
	for c.kind(j) == token.Comma {
		j--
	}
	switch c.kind(j) {
	case token.LBracket:
		if c.commasOnly(j, c.s.Match(j)) {
			return RankComma
		}
	case token.Lt:
		if p := c.partner[j]; p >= 0 && c.commasOnly(j, int(p)) {
			return RankComma
		}
	}
	return SeparatorComma
}

func (c *classifier) operatorRole(i int) Role {
	switch c.kind(i) {
	case token.Dot, token.QuestionDot, token.Arrow, token.ColonColon:
		return MemberAccess
	case token.DotDot:
		return RangeOperator
	case token.Colon:
		return RoleNone
	case token.Tilde:
		return UnaryPrefixOperator
	case token.Question:
		return c.questionRole(i)
	case token.Star:
		return c.starRole(i)
	case token.Plus, token.Minus, token.Amp, token.Caret:
		if c.unaryContext(i) {
			return UnaryPrefixOperator
		}
	case token.Bang:
		if c.unaryContext(i) {
			return UnaryPrefixOperator
		}
		return UnaryPostfixOperator
	case token.PlusPlus, token.MinusMinus:
		if c.unaryContext(i) {
			return UnaryPrefixOperator
		}
		return UnaryPostfixOperator
	case token.GtEq:
		if p := i - 1; c.kind(p) == token.Gt && c.s.Touches(i) && c.partner[p] < 0 {
			return ShiftSecond
		}
	}
	return BinaryOperator
}

func (c *classifier) questionRole(i int) Role {
	p, nx := i-1, i+1
	if c.kind(nx) == token.LBracket && c.s.Touches(nx) {
		return MemberAccess
	}
	pk := c.kind(p)
	typeEnd := pk == token.Ident || pk == token.KwPredefType || pk == token.RBracket ||
		(pk == token.Gt && c.partner[p] >= 0)
	if !typeEnd && pk != token.RParen {
		return ConditionalOperator
	}
	switch c.kind(nx) {
	case token.RParen, token.Gt, token.Comma, token.RBracket, token.LBracket, token.Semicolon, token.EOF:
		return NullableMarker
	case token.Ident:
		if !typeEnd {
			break
		}
		switch c.kind(nx + 1) {
		case token.Assign, token.Semicolon, token.Comma, token.RParen, token.KwIn, token.LBrace, token.FatArrow:
			return NullableMarker
		}
	}
	return ConditionalOperator
}

func (c *classifier) starRole(i int) Role {
	p := i - 1
	switch c.kind(p) {
	case token.KwPredefType:
		return PointerDeclarator
	case token.Ident, token.Gt, token.Star:
		pointerBase := c.kind(p) == token.Ident ||
			(c.kind(p) == token.Gt && c.partner[p] >= 0) ||
			(c.kind(p) == token.Star && c.role(p) == PointerDeclarator)
		if pointerBase {
			switch c.kind(i + 1) {
			case token.RParen, token.Gt, token.Comma, token.Star, token.RBracket, token.LBracket:
				return PointerDeclarator
			}
		}
	}
	if c.unaryContext(i) {
		return UnaryPrefixOperator
	}
	return BinaryOperator
}
