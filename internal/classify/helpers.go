package classify

import (
	"spacelint/internal/token"
)

func (c *classifier) computeParents() {
	stack := make([]int32, 0, 16)
	for i := 0; i < c.n; i++ {
		k := c.kind(i)
		if k.IsCloseBracket() && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			c.parent[i] = stack[len(stack)-1]
		} else {
			c.parent[i] = -1
		}
		if k.IsOpenBracket() {
			stack = append(stack, int32(i))
		}
	}
}

// enclosing returns the innermost opener around token i, or -1.
func (c *classifier) enclosing(i int) int {
	if i < 0 || i >= c.n {
		return -1
	}
	return int(c.parent[i])
}

// typeEnd parses a type starting at i and returns the index just past it,
// or -1 when no type starts at i.
func (c *classifier) typeEnd(i int) int {
	switch c.kind(i) {
	case token.Ident, token.KwPredefType:
	default:
		return -1
	}
	j := i + 1
	for {
		switch c.kind(j) {
		case token.Dot, token.ColonColon:
			if c.kind(j+1) != token.Ident {
				return j
			}
			j += 2
		case token.Lt:
			p := c.partner[j]
			if p < 0 {
				return j
			}
			j = int(p) + 1
		case token.Question, token.Star:
			j++
		case token.LBracket:
			m := c.s.Match(j)
			if !c.commasOnly(j, m) {
				return j
			}
			j = m + 1
		default:
			return j
		}
	}
}

// typeHeadBefore walks back over a type that ends just before i and returns
// the index of its first token, or -1.
func (c *classifier) typeHeadBefore(i int) int {
	j := i - 1
	for j >= 0 {
		k := c.kind(j)
		if k == token.Question || k == token.Star {
			j--
			continue
		}
		if k == token.RBracket {
			m := c.s.Match(j)
			if !c.commasOnly(m, j) {
				return -1
			}
			j = m - 1
			continue
		}
		break
	}
	for j >= 0 {
		if c.kind(j) == token.Gt {
			p := c.partner[j]
			if p < 0 {
				return -1
			}
			j = int(p) - 1
		}
		k := c.kind(j)
		if j < 0 || (k != token.Ident && k != token.KwPredefType) {
			return -1
		}
		if sep := c.kind(j - 1); j >= 2 && (sep == token.Dot || sep == token.ColonColon) {
			j -= 2
			continue
		}
		return j
	}
	return -1
}

// isOperandEnd reports whether token j can end an expression that may be
// indexed or invoked.
func (c *classifier) isOperandEnd(j int) bool {
	if j < 0 {
		return false
	}
	switch k := c.kind(j); k {
	case token.Ident, token.KwThis, token.KwBase:
		return true
	case token.RParen:
		r := c.role(j)
		return r != CastCloseParen && r != KeywordCloseParen
	case token.RBracket:
		return c.role(j) != AttributeCloseBracket
	case token.Question:
		return c.role(j) == MemberAccess
	case token.Bang:
		return c.role(j) == UnaryPostfixOperator
	default:
		return k.IsLiteral()
	}
}

// unaryContext reports whether an operator at i starts an operand rather
// than joining two.
func (c *classifier) unaryContext(i int) bool {
	p := i - 1
	if p < 0 {
		return true
	}
	switch k := c.kind(p); k {
	case token.LParen, token.LBracket, token.LBrace,
		token.Comma, token.Semicolon, token.Colon, token.Question:
		return true
	case token.RParen:
		r := c.role(p)
		return r == CastCloseParen || r == KeywordCloseParen
	case token.RBrace:
		return c.role(p) == BlockCloseBrace
	case token.RBracket:
		return c.role(p) == AttributeCloseBracket
	case token.Gt:
		return c.partner[p] < 0
	case token.PlusPlus, token.MinusMinus, token.Bang:
		return c.role(p) != UnaryPostfixOperator
	case token.KwThis, token.KwBase, token.KwNull, token.KwTrue, token.KwFalse, token.KwPredefType:
		return false
	default:
		if k.IsOperator() || k.IsKeyword() {
			return true
		}
		return false
	}
}

// hasTopLevelComma reports whether the group opened at open contains a
// comma outside nested groups and generic argument lists.
func (c *classifier) hasTopLevelComma(open int) bool {
	close := c.s.Match(open)
	for j := open + 1; j < close; j++ {
		switch c.kind(j) {
		case token.Comma:
			return true
		case token.LParen, token.LBracket, token.LBrace:
			j = c.s.Match(j)
		case token.Lt:
			if p := c.partner[j]; p >= 0 {
				j = int(p)
			}
		}
	}
	return false
}
