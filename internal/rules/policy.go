package rules

import (
	"spacelint/internal/token"
)

// Mode is the constraint on one side of a token.
type Mode uint8

const (
	// Preserve leaves the side unconstrained.
	Preserve Mode = iota
	// Require asks for whitespace; a line break satisfies it.
	Require
	// Forbid asks for no whitespace on the same line.
	Forbid
)

func (m Mode) String() string {
	switch m {
	case Require:
		return "require"
	case Forbid:
		return "forbid"
	}
	return "preserve"
}

// KindSet is a set of token kinds.
type KindSet [4]uint64

func kinds(ks ...token.Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s[k>>6] |= 1 << (k & 63)
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k token.Kind) bool { return s[k>>6]&(1<<(k&63)) != 0 }

// SidePolicy constrains one side of a token. When the neighbour on that side
// is in Near, NearMode applies instead of Mode.
type SidePolicy struct {
	Mode     Mode
	Near     KindSet
	NearMode Mode
	// StrictLines makes Require demand a space even next to a line break.
	StrictLines bool
}

// ModeFor returns the mode applying next to a neighbour of kind nb.
func (p SidePolicy) ModeFor(nb token.Kind) Mode {
	if p.Near.Has(nb) {
		return p.NearMode
	}
	return p.Mode
}

// Policy is the spacing policy of one (kind, role) pair and the rule that
// owns it.
type Policy struct {
	Rule   Rule
	Before SidePolicy
	After  SidePolicy
}

func side(m Mode) SidePolicy { return SidePolicy{Mode: m} }

func sideNear(m, near Mode, ks ...token.Kind) SidePolicy {
	return SidePolicy{Mode: m, Near: kinds(ks...), NearMode: near}
}
