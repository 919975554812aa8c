package classify

import (
	"spacelint/internal/token"
)

func (c *classifier) openBracketRole(i int) Role {
	close := c.s.Match(i)
	p := i - 1
	switch c.kind(p) {
	case token.KwStackalloc:
		return StackAllocOpenBracket
	case token.KwNew:
		if c.commasOnly(i, close) {
			return ImplicitArrayOpenBracket
		}
	}
	if c.isAttributeOpen(i, close) {
		return AttributeOpenBracket
	}
	if head := c.typeHeadBefore(i); head >= 0 {
		switch c.kind(head - 1) {
		case token.KwStackalloc:
			return StackAllocOpenBracket
		case token.KwNew:
			return ArrayRankOpenBracket
		}
	}
	if c.commasOnly(i, close) && c.typeHeadBefore(i) >= 0 {
		return ArrayRankOpenBracket
	}
	if c.isOperandEnd(p) {
		return IndexOpenBracket
	}
	if pk := c.kind(p); pk == token.LBrace || pk == token.Comma {
		// index initializer: new Foo { [0] = x }
		if open := c.braceOf(p); open >= 0 && c.role(open) == ObjectInitializerOpenBrace {
			return IndexInitializerOpenBracket
		}
	}
	if c.profile.CollectionExpressions() {
		return CollectionOpenBracket
	}
	return RoleNone
}

// braceOf returns p itself when it is a '{', or the brace enclosing p.
func (c *classifier) braceOf(p int) int {
	if c.kind(p) == token.LBrace {
		return p
	}
	if e := c.enclosing(p); e >= 0 && c.kind(e) == token.LBrace {
		return e
	}
	return -1
}

func (c *classifier) isAttributeOpen(i, close int) bool {
	first := c.kind(i + 1)
	p := i - 1
	pk := c.kind(p)
	switch {
	case p < 0, pk == token.Semicolon, pk == token.RBrace:
	case pk == token.LBrace:
		if c.role(p) != BlockOpenBrace {
			return false
		}
	case pk == token.RBracket:
		if c.role(p) != AttributeCloseBracket {
			return false
		}
	case pk == token.LParen || pk == token.Comma:
		after := c.kind(close + 1)
		return first == token.Ident && (after == token.Ident || after == token.KwPredefType)
	default:
		return false
	}
	return first == token.Ident || first == token.KwReturn
}
