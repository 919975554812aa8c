package testkit

import (
	"strings"
	"testing"

	"spacelint/internal/source"
	"spacelint/internal/token"
)

func sampleFile() *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("a.cs", []byte("a ,b")))
}

func sampleTokens(f *source.File) []token.Token {
	sp := func(s, e uint32) source.Span { return source.Span{File: f.ID, Start: s, End: e} }
	return []token.Token{
		{Kind: token.Ident, Span: sp(0, 1), Text: "a",
			Trailing: []token.Trivia{{Kind: token.TriviaSpace, Span: sp(1, 2), Text: " "}}},
		{Kind: token.Comma, Span: sp(2, 3), Text: ","},
		{Kind: token.Ident, Span: sp(3, 4), Text: "b"},
		{Kind: token.EOF, Span: sp(4, 4)},
	}
}

func TestCheckTokenInvariantsAcceptsTiling(t *testing.T) {
	f := sampleFile()
	if err := CheckTokenInvariants(sampleTokens(f), f); err != nil {
		t.Fatal(err)
	}
}

func TestCheckTokenInvariantsRejects(t *testing.T) {
	f := sampleFile()
	cases := map[string]struct {
		mutate func([]token.Token) []token.Token
		want   string
	}{
		"gap": {
			mutate: func(ts []token.Token) []token.Token { ts[0].Trailing = nil; return ts },
			want:   "previous piece ended",
		},
		"text": {
			mutate: func(ts []token.Token) []token.Token { ts[2].Text = "c"; return ts },
			want:   "does not match",
		},
		"no eof": {
			mutate: func(ts []token.Token) []token.Token { return ts[:3] },
			want:   "EOF",
		},
		"foreign file": {
			mutate: func(ts []token.Token) []token.Token { ts[1].Span.File = f.ID + 1; return ts },
			want:   "points to file",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := CheckTokenInvariants(tc.mutate(sampleTokens(f)), f)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("got %v, want error containing %q", err, tc.want)
			}
		})
	}
}
