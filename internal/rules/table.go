package rules

import (
	"fmt"

	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/token"
)

// Key addresses a table entry.
type Key struct {
	Kind token.Kind
	Role classify.Role
}

// Table maps (kind, role) pairs to policies.
type Table struct {
	entries map[Key]Policy
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{entries: make(map[Key]Policy)} }

// Set registers p for every listed role of kind.
func (t *Table) Set(kind token.Kind, p Policy, roles ...classify.Role) {
	for _, r := range roles {
		t.entries[Key{kind, r}] = p
	}
}

// Lookup returns the policy for (kind, role).
func (t *Table) Lookup(kind token.Kind, role classify.Role) (Policy, bool) {
	p, ok := t.entries[Key{kind, role}]
	return p, ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Owners returns, for every entry, the owning rule code. Used to check that
// rules own disjoint entries.
func (t *Table) Owners() map[Key]diag.Code {
	out := make(map[Key]diag.Code, len(t.entries))
	for k, p := range t.entries {
		out[k] = p.Rule.Code
	}
	return out
}

func mustRule(c diag.Code) Rule {
	r, ok := ByCode(c)
	if !ok {
		panic(fmt.Sprintf("rules: no catalog entry for %s", c.ID()))
	}
	return r
}

// Neighbour sets shared by several entries.
var (
	afterCloser = []token.Kind{
		token.RParen, token.RBracket, token.Semicolon, token.Comma, token.Dot, token.QuestionDot,
		token.LBracket, token.LParen, token.PlusPlus, token.MinusMinus, token.Gt, token.Question,
		token.Star, token.Bang,
	}
	expressionKeywords = []token.Kind{
		token.KwReturn, token.KwThrow, token.KwAwait, token.KwCase, token.KwIn, token.KwIs,
		token.KwAs, token.KwYield, token.KwElse, token.KwDo, token.KwOther,
	}
	operatorKinds = []token.Kind{
		token.Lt, token.Gt, token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Amp, token.Pipe, token.Caret, token.Bang, token.Tilde, token.Assign, token.Question,
		token.Colon, token.Dot, token.PlusPlus, token.MinusMinus, token.AndAnd, token.OrOr,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.Shl, token.PlusAssign,
		token.MinusAssign, token.StarAssign, token.SlashAssign, token.PercentAssign,
		token.AmpAssign, token.PipeAssign, token.CaretAssign, token.ShlAssign,
		token.QuestionQuestion, token.QuestionQuestionAssign, token.QuestionDot, token.Arrow,
		token.FatArrow, token.ColonColon, token.DotDot,
	}
)

// Default builds the standard policy table.
func Default() *Table {
	t := NewTable()

	comma := mustRule(diag.SpComma)
	t.Set(token.Comma, Policy{
		Rule:   comma,
		Before: side(Forbid),
		After:  sideNear(Require, Preserve, token.Comma, token.RBracket, token.Gt, token.RParen),
	}, classify.SeparatorComma)
	t.Set(token.Comma, Policy{Rule: comma, Before: side(Forbid), After: side(Forbid)}, classify.RankComma)

	t.Set(token.Semicolon, Policy{
		Rule:   mustRule(diag.SpSemicolon),
		Before: sideNear(Forbid, Preserve, token.Semicolon, token.LParen, token.LBrace),
		After:  sideNear(Require, Preserve, token.RParen, token.Semicolon),
	}, classify.StatementSemicolon)

	openParen := mustRule(diag.SpOpenParen)
	t.Set(token.LParen, Policy{Rule: openParen, Before: side(Require), After: side(Forbid)},
		classify.KeywordOpenParen)
	t.Set(token.LParen, Policy{Rule: openParen, Before: side(Forbid), After: side(Forbid)},
		classify.CallOpenParen)
	t.Set(token.LParen, Policy{
		Rule:   openParen,
		Before: sideNear(Preserve, Require, expressionKeywords...),
		After:  side(Forbid),
	}, classify.TupleOpenParen, classify.CastOpenParen, classify.GroupingOpenParen)

	closeParen := mustRule(diag.SpCloseParen)
	t.Set(token.RParen, Policy{
		Rule:   closeParen,
		Before: side(Forbid),
		After:  sideNear(Require, Preserve, append(afterCloser, token.Colon)...),
	}, classify.KeywordCloseParen, classify.CallCloseParen, classify.TupleCloseParen,
		classify.GroupingCloseParen)
	t.Set(token.RParen, Policy{Rule: closeParen, Before: side(Forbid), After: side(Forbid)},
		classify.CastCloseParen)

	openBracket := mustRule(diag.SpOpenBracket)
	t.Set(token.LBracket, Policy{Rule: openBracket, Before: side(Forbid), After: side(Forbid)},
		classify.IndexOpenBracket, classify.ArrayRankOpenBracket, classify.StackAllocOpenBracket,
		classify.ImplicitArrayOpenBracket)
	t.Set(token.LBracket, Policy{Rule: openBracket, Before: side(Preserve), After: side(Forbid)},
		classify.IndexInitializerOpenBracket, classify.AttributeOpenBracket, classify.CollectionOpenBracket,
		classify.RoleNone)

	t.Set(token.RBracket, Policy{
		Rule:   mustRule(diag.SpCloseBracket),
		Before: side(Forbid),
		After:  sideNear(Require, Preserve, append(afterCloser, token.RBrace)...),
	}, classify.IndexCloseBracket, classify.IndexInitializerCloseBracket, classify.ArrayRankCloseBracket,
		classify.StackAllocCloseBracket, classify.ImplicitArrayCloseBracket, classify.AttributeCloseBracket,
		classify.CollectionCloseBracket, classify.RoleNone)

	t.Set(token.LBrace, Policy{
		Rule:   mustRule(diag.SpOpenBrace),
		Before: sideNear(Require, Preserve, token.LParen, token.LBracket),
		After:  sideNear(Require, Preserve, token.RBrace),
	}, classify.BlockOpenBrace, classify.ArrayInitializerOpenBrace,
		classify.ObjectInitializerOpenBrace, classify.NestedInitializerOpenBrace)

	t.Set(token.RBrace, Policy{
		Rule:   mustRule(diag.SpCloseBrace),
		Before: sideNear(Require, Preserve, token.LBrace),
		After: sideNear(Require, Preserve, token.RParen, token.RBracket, token.Comma,
			token.Semicolon, token.Dot, token.QuestionDot, token.RBrace),
	}, classify.BlockCloseBrace, classify.ArrayInitializerCloseBrace,
		classify.ObjectInitializerCloseBrace, classify.NestedInitializerCloseBrace)

	t.Set(token.Lt, Policy{Rule: mustRule(diag.SpOpenAngle), Before: side(Forbid), After: side(Forbid)},
		classify.GenericOpenAngle)
	t.Set(token.Gt, Policy{
		Rule:   mustRule(diag.SpCloseAngle),
		Before: side(Forbid),
		After: sideNear(Require, Forbid, token.LParen, token.RParen, token.RBracket, token.Comma,
			token.Semicolon, token.Dot, token.QuestionDot, token.Gt, token.LBracket,
			token.Question, token.ColonColon, token.Star),
	}, classify.GenericCloseAngle)

	op := mustRule(diag.SpOperator)
	both := Policy{Rule: op, Before: side(Require), After: side(Require)}
	for _, k := range operatorKinds {
		t.Set(k, both, classify.BinaryOperator, classify.ConditionalOperator, classify.ComparisonOperator)
		t.Set(k, Policy{Rule: op, Before: side(Preserve), After: side(Forbid)}, classify.UnaryPrefixOperator)
		t.Set(k, Policy{Rule: op, Before: side(Forbid), After: side(Preserve)}, classify.UnaryPostfixOperator)
		t.Set(k, Policy{Rule: op, Before: side(Forbid), After: side(Forbid)}, classify.MemberAccess)
	}
	t.Set(token.Gt, Policy{Rule: op, Before: side(Require), After: side(Preserve)}, classify.ShiftFirst)
	t.Set(token.Gt, Policy{
		Rule:   op,
		Before: side(Preserve),
		After:  sideNear(Require, Preserve, token.Gt, token.GtEq),
	}, classify.ShiftSecond)
	t.Set(token.GtEq, Policy{Rule: op, Before: side(Preserve), After: side(Require)}, classify.ShiftSecond)
	t.Set(token.Star, Policy{
		Rule:   op,
		Before: side(Forbid),
		After: sideNear(Require, Preserve, token.RParen, token.Comma, token.Gt, token.RBracket,
			token.Star, token.LBracket),
	}, classify.PointerDeclarator)
	t.Set(token.Question, Policy{Rule: op, Before: side(Forbid), After: side(Preserve)}, classify.NullableMarker)
	t.Set(token.DotDot, Policy{Rule: op, Before: side(Preserve), After: side(Preserve)}, classify.RangeOperator)
	return t
}
