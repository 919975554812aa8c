// Package classify resolves syntactically overloaded tokens into roles using
// bounded look-ahead and look-behind over raw token kinds and bracket
// matching. Roles are a pure function of the token stream and the grammar
// profile: the same stream always yields the same roles, in any order of
// evaluation.
package classify

import (
	"errors"
	"fmt"

	"spacelint/internal/grammar"
	"spacelint/internal/stream"
	"spacelint/internal/token"
)

// ErrInconsistent reports angle-bracket nesting that the bounded scan cannot
// reconcile. The file must not be analysed further.
var ErrInconsistent = errors.New("inconsistent bracket classification")

// Result holds the role of every token in a stream.
type Result struct {
	roles   []Role
	partner []int32
}

// Role returns the role of token i.
func (r *Result) Role(i int) Role {
	if i < 0 || i >= len(r.roles) {
		return RoleNone
	}
	return r.roles[i]
}

// Roles returns the role slice indexed by token; callers must not modify it.
func (r *Result) Roles() []Role { return r.roles }

// AnglePartner returns the matching angle of a generic '<' or '>', or -1.
func (r *Result) AnglePartner(i int) int {
	if i < 0 || i >= len(r.partner) {
		return -1
	}
	return int(r.partner[i])
}

type classifier struct {
	s       *stream.Stream
	profile grammar.Profile
	n       int

	rawClose []int32   // for '<': depth-0 '>' found by the forward scan, or -1
	inner    [][]int32 // for '<': '<' tokens met at the scan level
	generic  []int8    // memo for isGeneric: 0 unknown, 1 yes, 2 no
	partner  []int32
	parent   []int32 // innermost enclosing opener of each token, or -1

	memo []Role
	done []bool
}

// Classify assigns a role to every token of s.
func Classify(s *stream.Stream, profile grammar.Profile) (*Result, error) {
	n := s.Len()
	c := &classifier{
		s:        s,
		profile:  profile,
		n:        n,
		rawClose: make([]int32, n),
		inner:    make([][]int32, n),
		generic:  make([]int8, n),
		partner:  make([]int32, n),
		parent:   make([]int32, n),
		memo:     make([]Role, n),
		done:     make([]bool, n),
	}
	c.computeParents()
	if err := c.matchAngles(); err != nil {
		return nil, err
	}
	res := &Result{roles: make([]Role, n), partner: c.partner}
	for i := 0; i < n; i++ {
		res.roles[i] = c.role(i)
	}
	return res, nil
}

func (c *classifier) kind(i int) token.Kind { return c.s.Kind(i) }

// role returns the memoised role of token i.
func (c *classifier) role(i int) Role {
	if i < 0 || i >= c.n {
		return RoleNone
	}
	if c.done[i] {
		return c.memo[i]
	}
	r := c.compute(i)
	c.memo[i] = r
	c.done[i] = true
	return r
}

func (c *classifier) compute(i int) Role {
	switch k := c.kind(i); k {
	case token.LParen:
		return c.openParenRole(i)
	case token.LBracket:
		return c.openBracketRole(i)
	case token.LBrace:
		return c.openBraceRole(i)
	case token.RParen, token.RBracket, token.RBrace:
		return closing(c.role(c.s.Match(i)))
	case token.Lt:
		if c.partner[i] >= 0 {
			return GenericOpenAngle
		}
		return ComparisonOperator
	case token.Gt:
		return c.closeAngleRole(i)
	case token.Comma:
		return c.commaRole(i)
	case token.Semicolon:
		return StatementSemicolon
	default:
		if k.IsOperator() {
			return c.operatorRole(i)
		}
		return RoleNone
	}
}

func (c *classifier) inconsistent(i int, format string, args ...any) error {
	tok := c.s.At(i)
	pos := c.s.File().Position(tok.Span.Start)
	return fmt.Errorf("%w: %s at %d:%d", ErrInconsistent, fmt.Sprintf(format, args...), pos.Line, pos.Col)
}
