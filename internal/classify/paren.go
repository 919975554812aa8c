package classify

import (
	"spacelint/internal/token"
)

func (c *classifier) openParenRole(i int) Role {
	p := i - 1
	switch pk := c.kind(p); {
	case p < 0:
	case isStatementKeyword(pk):
		return KeywordOpenParen
	case pk == token.Ident && c.s.TextOf(p) == "var":
		return TupleOpenParen
	case c.callable(p):
		return CallOpenParen
	}
	if c.hasTopLevelComma(i) {
		if c.profile.Tuples() {
			return TupleOpenParen
		}
		return GroupingOpenParen
	}
	if c.isCast(i) {
		return CastOpenParen
	}
	return GroupingOpenParen
}

func isStatementKeyword(k token.Kind) bool {
	switch k {
	case token.KwIf, token.KwWhile, token.KwFor, token.KwForeach, token.KwSwitch,
		token.KwCatch, token.KwUsing, token.KwLock, token.KwFixed, token.KwWhen:
		return true
	}
	return false
}

// callable reports whether a '(' after token p is an argument list.
func (c *classifier) callable(p int) bool {
	switch c.kind(p) {
	case token.Ident, token.KwThis, token.KwBase, token.KwTypeof, token.KwSizeof,
		token.KwNameof, token.KwDefault, token.KwChecked, token.KwUnchecked, token.KwNew:
		return true
	case token.RParen:
		r := c.role(p)
		return r == CallCloseParen || r == GroupingCloseParen
	case token.RBracket:
		return c.role(p) != AttributeCloseBracket
	case token.Gt:
		return c.partner[p] >= 0
	}
	return false
}

// isCast applies the cast-expression look-ahead: the parenthesised content
// must be exactly a type, and the token after ')' must be able to start the
// operand of the cast.
func (c *classifier) isCast(open int) bool {
	close := c.s.Match(open)
	if c.typeEnd(open+1) != close {
		return false
	}
	next := c.kind(close + 1)
	if c.kind(open+1) == token.KwPredefType && !castTerminator(next) {
		return true
	}
	return startsUnary(next)
}

func castTerminator(k token.Kind) bool {
	switch k {
	case token.EOF, token.RParen, token.RBracket, token.RBrace, token.Comma, token.Semicolon,
		token.Dot, token.QuestionDot, token.Colon, token.Question, token.QuestionQuestion,
		token.Arrow, token.FatArrow, token.Lt, token.Gt, token.EqEq, token.BangEq, token.LtEq,
		token.GtEq, token.AndAnd, token.OrOr, token.Assign:
		return true
	}
	return k.IsAssignment()
}

func startsUnary(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwTrue, token.KwFalse, token.KwNull, token.LParen, token.KwThis,
		token.KwBase, token.KwNew, token.KwTypeof, token.KwSizeof, token.KwDefault, token.KwChecked,
		token.KwUnchecked, token.KwNameof, token.Bang, token.Tilde, token.KwPredefType:
		return true
	}
	return k.IsLiteral()
}
