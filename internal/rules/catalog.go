package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"spacelint/internal/diag"
)

// ErrUnknownRule reports a rule id or name missing from the catalog.
var ErrUnknownRule = errors.New("unknown rule")

// Rule describes one spacing rule.
type Rule struct {
	Code diag.Code
	Name string
	// Subject starts every message of the rule. Symbol rules embed the token
	// text through a single %s verb.
	Subject string
	Owns    string
}

// ID returns the stable identifier of the rule, e.g. "SP1001".
func (r Rule) ID() string { return r.Code.ID() }

// SubjectFor renders the message subject for a token spelled text.
func (r Rule) SubjectFor(text string) string {
	if strings.Contains(r.Subject, "%s") {
		return fmt.Sprintf(r.Subject, text)
	}
	return r.Subject
}

var catalog = []Rule{
	{diag.SpComma, "comma-spacing", "Commas", "','"},
	{diag.SpSemicolon, "semicolon-spacing", "Semicolons", "';'"},
	{diag.SpOperator, "operator-spacing", "Symbol '%s'", "operators, comparison and shift '<' '>'"},
	{diag.SpOpenParen, "open-paren-spacing", "Opening parenthesis", "'('"},
	{diag.SpCloseParen, "close-paren-spacing", "Closing parenthesis", "')'"},
	{diag.SpOpenBracket, "open-bracket-spacing", "Opening square brackets", "'['"},
	{diag.SpCloseBracket, "close-bracket-spacing", "Closing square brackets", "']'"},
	{diag.SpOpenBrace, "open-brace-spacing", "Opening brace", "'{'"},
	{diag.SpCloseBrace, "close-brace-spacing", "Closing brace", "'}'"},
	{diag.SpOpenAngle, "open-angle-spacing", "Opening generic brackets", "generic '<'"},
	{diag.SpCloseAngle, "close-angle-spacing", "Closing generic brackets", "generic '>'"},
}

// Catalog returns every rule ordered by code.
func Catalog() []Rule {
	out := append([]Rule(nil), catalog...)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ByCode returns the rule with the given code.
func ByCode(c diag.Code) (Rule, bool) {
	for _, r := range catalog {
		if r.Code == c {
			return r, true
		}
	}
	return Rule{}, false
}

// ByID finds a rule by id ("SP1001") or name ("comma-spacing"), ignoring case.
func ByID(s string) (Rule, bool) {
	s = strings.TrimSpace(s)
	for _, r := range catalog {
		if strings.EqualFold(r.ID(), s) || strings.EqualFold(r.Name, s) {
			return r, true
		}
	}
	return Rule{}, false
}

// Selection is the set of enabled rules. The zero value enables nothing.
type Selection struct {
	on map[diag.Code]bool
}

// All enables every rule of the catalog.
func All() Selection {
	s := Selection{on: make(map[diag.Code]bool, len(catalog))}
	for _, r := range catalog {
		s.on[r.Code] = true
	}
	return s
}

// Only enables exactly the given codes.
func Only(codes ...diag.Code) Selection {
	s := Selection{on: make(map[diag.Code]bool, len(codes))}
	for _, c := range codes {
		s.on[c] = true
	}
	return s
}

// ParseSelection resolves ids or names into a selection.
func ParseSelection(ids []string) (Selection, error) {
	s := Only()
	for _, id := range ids {
		r, ok := ByID(id)
		if !ok {
			return Selection{}, fmt.Errorf("%w: %q", ErrUnknownRule, id)
		}
		s.on[r.Code] = true
	}
	return s, nil
}

// Enabled reports whether rule c is selected.
func (s Selection) Enabled(c diag.Code) bool { return s.on[c] }

// With returns a copy of s with rule c switched on or off.
func (s Selection) With(c diag.Code, on bool) Selection {
	out := Selection{on: make(map[diag.Code]bool, len(s.on)+1)}
	for k, v := range s.on {
		out.on[k] = v
	}
	out.on[c] = on
	return out
}

// Codes returns the enabled codes in ascending order.
func (s Selection) Codes() []diag.Code {
	out := make([]diag.Code, 0, len(s.on))
	for c, on := range s.on {
		if on {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Empty reports whether no rule is enabled.
func (s Selection) Empty() bool { return len(s.Codes()) == 0 }

// Key renders the selection as a stable string, e.g. "SP1001,SP1002".
func (s Selection) Key() string {
	codes := s.Codes()
	ids := make([]string, len(codes))
	for i, c := range codes {
		ids[i] = c.ID()
	}
	return strings.Join(ids, ",")
}
