package report_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"spacelint/internal/classify"
	"spacelint/internal/diag"
	"spacelint/internal/grammar"
	"spacelint/internal/lexer"
	"spacelint/internal/report"
	"spacelint/internal/rules"
	"spacelint/internal/source"
	"spacelint/internal/stream"
)

func diagnose(t *testing.T, src string, sel rules.Selection) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cs", []byte(src)))
	s, err := stream.New(file, lexer.Tokenize(file, diag.NopReporter{}))
	if err != nil {
		t.Fatal(err)
	}
	res, err := classify.Classify(s, grammar.NewProfile(grammar.Default))
	if err != nil {
		t.Fatal(err)
	}
	return report.Diagnostics(s, rules.Evaluate(s, res.Roles(), rules.Default(), sel))
}

type shape struct {
	Code    diag.Code
	Message string
	Args    []string
	Start   uint32
	End     uint32
	Edit    diag.TextEdit
}

func shapes(ds []diag.Diagnostic) []shape {
	out := make([]shape, 0, len(ds))
	for _, d := range ds {
		sh := shape{Code: d.Code, Message: d.Message, Args: d.Args, Start: d.Primary.Start, End: d.Primary.End}
		if len(d.Fixes) == 1 && len(d.Fixes[0].Edits) == 1 {
			sh.Edit = d.Fixes[0].Edits[0]
			sh.Edit.Span.File = 0
		}
		out = append(out, sh)
	}
	return out
}

func TestDiagnosticsStackallocComma(t *testing.T) {
	got := shapes(diagnose(t, "stackalloc int[] { 1 ,1 }", rules.Only(diag.SpComma)))
	want := []shape{
		{
			Code:    diag.SpComma,
			Message: "Commas must not be preceded by a space",
			Args:    []string{"not", "preceded"},
			Start:   20,
			End:     21,
			Edit:    diag.TextEdit{Span: source.Span{Start: 20, End: 21}, OldText: " "},
		},
		{
			Code:    diag.SpComma,
			Message: "Commas must be followed by a space",
			Args:    []string{"", "followed"},
			Start:   22,
			End:     22,
			Edit:    diag.TextEdit{Span: source.Span{Start: 22, End: 22}, NewText: " "},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestDiagnosticsOrderedByPositionThenRule(t *testing.T) {
	ds := diagnose(t, "M(Func<int > , x)", rules.All())
	if len(ds) < 2 {
		t.Fatalf("want at least 2 diagnostics, got %d", len(ds))
	}
	for i := 1; i < len(ds); i++ {
		a, b := ds[i-1], ds[i]
		if a.Primary.Start > b.Primary.Start ||
			(a.Primary.Start == b.Primary.Start && a.Code > b.Code) {
			t.Fatalf("diagnostics out of order at %d: %v then %v", i, a.Primary, b.Primary)
		}
	}
	// the run before ',' is flagged by both the comma and the close-angle rule
	var onRun []diag.Code
	for _, d := range ds {
		if d.Primary.Start == 12 {
			onRun = append(onRun, d.Code)
		}
	}
	if diff := cmp.Diff([]diag.Code{diag.SpComma, diag.SpCloseAngle}, onRun); diff != "" {
		t.Fatalf("codes on shared run (-want +got):\n%s", diff)
	}
}

func TestSymbolMessage(t *testing.T) {
	ds := diagnose(t, "a=b;", rules.Only(diag.SpOperator))
	if len(ds) != 2 {
		t.Fatalf("want 2 diagnostics, got %d", len(ds))
	}
	if ds[0].Message != "Symbol '=' must be preceded by a space" {
		t.Fatalf("message = %q", ds[0].Message)
	}
	if ds[1].Direction() != "followed" || ds[1].Polarity() != "" {
		t.Fatalf("args = %v", ds[1].Args)
	}
}
