package classify

import (
	"spacelint/internal/token"
)

func (c *classifier) openBraceRole(i int) Role {
	p := i - 1
	switch c.kind(p) {
	case token.RBracket:
		switch c.role(p) {
		case ArrayRankCloseBracket, ImplicitArrayCloseBracket:
			return ArrayInitializerOpenBrace
		case StackAllocCloseBracket:
			if c.profile.StackAllocInitializers() || c.profile.ImplicitStackAlloc() {
				return ArrayInitializerOpenBrace
			}
			return BlockOpenBrace
		}
	case token.KwNew:
		return ObjectInitializerOpenBrace
	case token.Assign:
		return ArrayInitializerOpenBrace
	case token.LBrace:
		if c.role(p).IsInitializer() {
			return NestedInitializerOpenBrace
		}
	case token.Comma:
		if e := c.enclosing(p); e >= 0 && c.kind(e) == token.LBrace && c.role(e).IsInitializer() {
			return NestedInitializerOpenBrace
		}
	case token.RParen:
		if c.role(p) == CallCloseParen {
			open := c.s.Match(p)
			if c.kind(open-1) == token.KwNew {
				return ObjectInitializerOpenBrace
			}
			if head := c.typeHeadBefore(open); head >= 0 && c.kind(head-1) == token.KwNew {
				return ObjectInitializerOpenBrace
			}
		}
	case token.Ident, token.Gt, token.KwPredefType:
		if head := c.typeHeadBefore(i); head >= 0 && c.kind(head-1) == token.KwNew {
			return ObjectInitializerOpenBrace
		}
	}
	return BlockOpenBrace
}
