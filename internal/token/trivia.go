package token

import "spacelint/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocLine
	TriviaDirective
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaDocLine:      "DocLine",
	TriviaDirective:    "Directive",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// IsComment reports whether k is any comment form.
func (k TriviaKind) IsComment() bool {
	return k == TriviaLineComment || k == TriviaBlockComment || k == TriviaDocLine
}

// Trivia is a non-token source fragment attached to a token.
// Directive trivia spans the whole '#' line without its line break.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
