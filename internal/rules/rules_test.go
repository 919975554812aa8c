package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/grammar"
	"spacelint/internal/lexer"
	"spacelint/internal/source"
	"spacelint/internal/stream"
	"spacelint/internal/token"
)

func evaluate(t *testing.T, src string, sel Selection) []Verdict {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cs", []byte(src)))
	toks := lexer.Tokenize(file, diag.NopReporter{})
	s, err := stream.New(file, toks)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	res, err := classify.Classify(s, grammar.NewProfile(grammar.Default))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	return Evaluate(s, res.Roles(), Default(), sel)
}

type brief struct {
	Kind    VerdictKind
	Rule    diag.Code
	Subject string
	Start   uint32
	Old     string
}

func briefs(vs []Verdict) []brief {
	out := make([]brief, 0, len(vs))
	for _, v := range vs {
		out = append(out, brief{v.Kind, v.Rule, v.Subject, v.Span.Start, v.Old})
	}
	return out
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		sel  Selection
		want []brief
	}{
		{
			name: "space before comma after rank",
			src:  "(int[] , int[] )",
			sel:  Only(diag.SpComma),
			want: []brief{{ExtraBefore, diag.SpComma, "Commas", 6, " "}},
		},
		{
			name: "space before comma after initializer",
			src:  "(new[] { 3} , new[] { 3} )",
			sel:  Only(diag.SpComma),
			want: []brief{{ExtraBefore, diag.SpComma, "Commas", 11, " "}},
		},
		{
			name: "stackalloc initializer comma",
			src:  "stackalloc int[] { 1 ,1 }",
			sel:  Only(diag.SpComma),
			want: []brief{
				{ExtraBefore, diag.SpComma, "Commas", 20, " "},
				{MissingAfter, diag.SpComma, "Commas", 22, ""},
			},
		},
		{
			name: "generic close followed by comma",
			src:  "M(Func<int > , Func<int > )",
			sel:  Only(diag.SpCloseAngle),
			want: []brief{
				{ExtraBefore, diag.SpCloseAngle, "Closing generic brackets", 10, " "},
				{ExtraAfter, diag.SpCloseAngle, "Closing generic brackets", 12, " "},
				{ExtraBefore, diag.SpCloseAngle, "Closing generic brackets", 23, " "},
				{ExtraAfter, diag.SpCloseAngle, "Closing generic brackets", 25, " "},
			},
		},
		{
			name: "clean file",
			src:  "class C\n{\n    void M(int a, int b) { var x = new[] { 1, 2 }; }\n}\n",
			sel:  All(),
			want: []brief{},
		},
		{
			name: "line break exempts forbid",
			src:  "f(a\n  , b);",
			sel:  Only(diag.SpComma),
			want: []brief{},
		},
		{
			name: "keyword paren needs space",
			src:  "if(x) y();",
			sel:  Only(diag.SpOpenParen),
			want: []brief{{MissingBefore, diag.SpOpenParen, "Opening parenthesis", 2, ""}},
		},
		{
			name: "assignment needs spaces",
			src:  "a=b;",
			sel:  Only(diag.SpOperator),
			want: []brief{
				{MissingBefore, diag.SpOperator, "Symbol '='", 1, ""},
				{MissingAfter, diag.SpOperator, "Symbol '='", 2, ""},
			},
		},
		{
			name: "unary minus space kept when removal would fuse",
			src:  "x = - -b;",
			sel:  Only(diag.SpOperator),
			want: []brief{},
		},
		{
			name: "unary minus space removed",
			src:  "x = - b;",
			sel:  Only(diag.SpOperator),
			want: []brief{{ExtraAfter, diag.SpOperator, "Symbol '-'", 5, " "}},
		},
		{
			name: "empty braces preserved",
			src:  "x = new int[] {};",
			sel:  Only(diag.SpOpenBrace, diag.SpCloseBrace),
			want: []brief{},
		},
		{
			name: "disabled rule is silent",
			src:  "a=b;",
			sel:  Only(diag.SpComma),
			want: []brief{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := briefs(evaluate(t, tt.src, tt.sel))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("verdicts (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisjointOwnership(t *testing.T) {
	owners := Default().Owners()
	owned := map[diag.Code]int{}
	for key, code := range owners {
		owned[code]++
		want := diag.SpOperator
		switch key.Kind {
		case token.Comma:
			want = diag.SpComma
		case token.Semicolon:
			want = diag.SpSemicolon
		case token.LParen:
			want = diag.SpOpenParen
		case token.RParen:
			want = diag.SpCloseParen
		case token.LBracket:
			want = diag.SpOpenBracket
		case token.RBracket:
			want = diag.SpCloseBracket
		case token.LBrace:
			want = diag.SpOpenBrace
		case token.RBrace:
			want = diag.SpCloseBrace
		case token.Lt:
			if key.Role == classify.GenericOpenAngle {
				want = diag.SpOpenAngle
			}
		case token.Gt:
			if key.Role == classify.GenericCloseAngle {
				want = diag.SpCloseAngle
			}
		}
		if code != want {
			t.Errorf("%s/%s owned by %s, want %s", key.Kind, key.Role, code.ID(), want.ID())
		}
	}
	for _, r := range Catalog() {
		if owned[r.Code] == 0 {
			t.Errorf("rule %s owns no table entry", r.ID())
		}
	}
}

func TestJudge(t *testing.T) {
	space := stream.Side{Space: true, Run: source.Span{Start: 1, End: 2}}
	newline := stream.Side{Space: true, LineBreak: true, Run: source.Span{Start: 3, End: 3}}
	none := stream.Side{}
	strict := SidePolicy{Mode: Require, StrictLines: true}

	cases := []struct {
		name string
		p    SidePolicy
		sd   stream.Side
		want Mode
	}{
		{"require satisfied", side(Require), space, Preserve},
		{"require by line break", side(Require), newline, Preserve},
		{"require missing", side(Require), none, Require},
		{"strict needs a run", strict, newline, Require},
		{"strict satisfied", strict, space, Preserve},
		{"forbid violated", side(Forbid), space, Forbid},
		{"forbid exempt at line break", side(Forbid), newline, Preserve},
		{"preserve", side(Preserve), space, Preserve},
		{"edge", side(Require), stream.Side{Edge: true}, Preserve},
		{"near switches mode", sideNear(Require, Preserve, token.RParen), none, Preserve},
	}
	for _, tc := range cases {
		if got := judge(tc.p, tc.sd, token.RParen); got != tc.want {
			t.Errorf("%s: judge = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	r, ok := ByID("sp1001")
	if !ok || r.Code != diag.SpComma {
		t.Fatalf("ByID(sp1001) = %v, %v", r, ok)
	}
	r, ok = ByID("close-angle-spacing")
	if !ok || r.Code != diag.SpCloseAngle {
		t.Fatalf("ByID(close-angle-spacing) = %v, %v", r, ok)
	}
	if _, ok := ByID("SP9999"); ok {
		t.Fatal("unexpected rule SP9999")
	}
	if _, err := ParseSelection([]string{"comma-spacing", "nope"}); err == nil {
		t.Fatal("expected ErrUnknownRule")
	}
	sel, err := ParseSelection([]string{"SP1002", "comma-spacing"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sel.Key(); got != "SP1001,SP1002" {
		t.Fatalf("Key = %q", got)
	}
	if sel.With(diag.SpComma, false).Enabled(diag.SpComma) || !sel.Enabled(diag.SpComma) {
		t.Fatal("With must copy")
	}
}
