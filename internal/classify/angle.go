package classify

import (
	"spacelint/internal/token"
)

// matchAngles decides, for every '<', whether it opens a generic argument
// list, and pairs it with its '>'.
//
// A '<' is generic when it follows an identifier and a forward scan that only
// crosses type-list tokens reaches a depth-0 '>' whose follower is in the
// generic follow set. A follower '>' is accepted only when it closes an
// enclosing generic list, which keeps "a < b >> c" a comparison.
func (c *classifier) matchAngles() error {
	for i := range c.partner {
		c.partner[i] = -1
		c.rawClose[i] = -1
	}
	for i := 0; i < c.n; i++ {
		if c.kind(i) == token.Lt {
			c.rawClose[i], c.inner[i] = c.scanGeneric(i)
		}
	}
	for i := 0; i < c.n; i++ {
		if c.kind(i) != token.Lt || !c.isGeneric(i) {
			continue
		}
		j := c.rawClose[i]
		if c.partner[j] >= 0 {
			return c.inconsistent(int(j), "'>' closes two generic lists")
		}
		c.partner[i] = j
		c.partner[j] = int32(i)
		for _, in := range c.inner[i] {
			if !c.isGeneric(int(in)) {
				return c.inconsistent(int(in), "'<' nested in a generic list is not generic")
			}
		}
	}
	return nil
}

func (c *classifier) scanGeneric(i int) (int32, []int32) {
	if c.kind(i-1) != token.Ident {
		return -1, nil
	}
	depth := 1
	var inner []int32
	for j := i + 1; j < c.n; j++ {
		switch c.kind(j) {
		case token.Lt:
			depth++
			inner = append(inner, int32(j))
		case token.Gt:
			depth--
			if depth == 0 {
				return int32(j), inner
			}
		case token.LParen:
			m := c.s.Match(j)
			if m < 0 || !c.tupleTypeBody(j, m) {
				return -1, nil
			}
			j = m
		case token.LBracket:
			m := c.s.Match(j)
			if !c.commasOnly(j, m) {
				return -1, nil
			}
			j = m
		case token.Ident, token.KwPredefType, token.Comma, token.Dot, token.ColonColon,
			token.Question, token.Star, token.KwIn, token.KwOut:
		default:
			return -1, nil
		}
	}
	return -1, nil
}

// tupleTypeBody reports whether (open, close) can be a tuple type inside a
// type argument list: type tokens only, with at least one top-level comma.
func (c *classifier) tupleTypeBody(open, close int) bool {
	comma := false
	for j := open + 1; j < close; j++ {
		switch c.kind(j) {
		case token.Comma:
			comma = true
		case token.LParen, token.LBracket:
			m := c.s.Match(j)
			if m < 0 || m > close {
				return false
			}
			j = m
		case token.Ident, token.KwPredefType, token.Dot, token.ColonColon, token.Question,
			token.Star, token.Lt, token.Gt:
		default:
			return false
		}
	}
	return comma
}

func (c *classifier) isGeneric(i int) bool {
	switch c.generic[i] {
	case 1:
		return true
	case 2:
		return false
	}
	ok := c.decideGeneric(i)
	if ok {
		c.generic[i] = 1
	} else {
		c.generic[i] = 2
	}
	return ok
}

func (c *classifier) decideGeneric(i int) bool {
	j := int(c.rawClose[i])
	if j < 0 {
		return false
	}
	f := c.kind(j + 1)
	if f == token.Gt {
		for k := i - 1; k >= 0; k-- {
			if c.kind(k) == token.Lt && int(c.rawClose[k]) == j+1 {
				return c.isGeneric(k)
			}
		}
		return false
	}
	return genericFollow(f)
}

// genericFollow lists the tokens that may follow the '>' of a generic list.
func genericFollow(k token.Kind) bool {
	switch k {
	case token.LParen, token.RParen, token.RBracket, token.RBrace, token.Colon, token.Semicolon,
		token.Comma, token.Dot, token.Question, token.EqEq, token.BangEq, token.Pipe, token.Caret,
		token.AndAnd, token.OrOr, token.Amp, token.LBracket, token.EOF, token.Ident, token.LBrace,
		token.QuestionDot, token.QuestionQuestion, token.ColonColon, token.Star:
		return true
	}
	return false
}

func (c *classifier) closeAngleRole(i int) Role {
	if c.partner[i] >= 0 {
		return GenericCloseAngle
	}
	if p := i - 1; c.kind(p) == token.Gt && c.s.Touches(i) && c.partner[p] < 0 {
		return ShiftSecond
	}
	if nx := i + 1; (c.kind(nx) == token.Gt || c.kind(nx) == token.GtEq) && c.s.Touches(nx) && c.partner[nx] < 0 {
		return ShiftFirst
	}
	return ComparisonOperator
}

// commasOnly reports whether everything strictly between open and close is
// a comma ("[]", "[,]", "<,>").
func (c *classifier) commasOnly(open, close int) bool {
	if open < 0 || close < open {
		return false
	}
	for j := open + 1; j < close; j++ {
		if c.kind(j) != token.Comma {
			return false
		}
	}
	return true
}
