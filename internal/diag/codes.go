package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (host syntax errors; a file with any of these is skipped).
	LexInfo                     Code = 100
	LexUnknownChar              Code = 101
	LexUnterminatedString       Code = 102
	LexUnterminatedBlockComment Code = 103
	LexBadNumber                Code = 104
	LexTokenTooLong             Code = 105
	LexUnterminatedChar         Code = 106
	LexBadInterpolation         Code = 107

	// Spacing rules.
	SpComma        Code = 1001
	SpSemicolon    Code = 1002
	SpOperator     Code = 1003
	SpOpenParen    Code = 1008
	SpCloseParen   Code = 1009
	SpOpenBracket  Code = 1010
	SpCloseBracket Code = 1011
	SpOpenBrace    Code = 1012
	SpCloseBrace   Code = 1013
	SpOpenAngle    Code = 1014
	SpCloseAngle   Code = 1015
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Malformed numeric literal",
		LexTokenTooLong:             "Token exceeds maximum length",
		LexUnterminatedChar:         "Unterminated character literal",
		LexBadInterpolation:         "Unbalanced interpolation hole",
		SpComma:                     "Commas must be spaced correctly",
		SpSemicolon:                 "Semicolons must be spaced correctly",
		SpOperator:                  "Symbols must be spaced correctly",
		SpOpenParen:                 "Opening parenthesis must be spaced correctly",
		SpCloseParen:                "Closing parenthesis must be spaced correctly",
		SpOpenBracket:               "Opening square brackets must be spaced correctly",
		SpCloseBracket:              "Closing square brackets must be spaced correctly",
		SpOpenBrace:                 "Opening braces must be spaced correctly",
		SpCloseBrace:                "Closing braces must be spaced correctly",
		SpOpenAngle:                 "Opening generic brackets must be spaced correctly",
		SpCloseAngle:                "Closing generic brackets must be spaced correctly",
	}
)

// ID returns the stable identifier, e.g. "LEX0102" or "SP1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 100 && ic < 1000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SP%04d", ic)
	}
	return "E0000"
}

// IsLexical reports whether c is a host syntax error code.
func (c Code) IsLexical() bool { return c >= 100 && c < 1000 }

// IsSpacing reports whether c belongs to a spacing rule.
func (c Code) IsSpacing() bool { return c >= 1000 && c < 2000 }

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// ParseID maps an identifier produced by ID back to its code.
func ParseID(id string) (Code, bool) {
	for c := range codeDescription {
		if c != UnknownCode && c.ID() == id {
			return c, true
		}
	}
	return UnknownCode, false
}
