package diag

import (
	"testing"

	"spacelint/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	file := fs.Add("/workspace/src/Sample.cs", []byte("a ,b\nc\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SpComma,
			Message:  "commas must not be preceded\nby a space",
			Primary:  source.Span{File: file, Start: 1, End: 2},
			Notes:    []Note{{Span: source.Span{File: file, Start: 5, End: 6}, Msg: "note line"}},
		},
		{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  "unknown character",
			Primary:  source.Span{File: file, Start: 0, End: 1},
		},
	}

	expected := "error LEX0101 src/Sample.cs:1:1 unknown character\n" +
		"warning SP1001 src/Sample.cs:1:2 commas must not be preceded by a space\n" +
		"note SP1001 src/Sample.cs:2:1 note line"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagSortOrdersByPositionThenCode(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: SpCloseAngle, Primary: source.Span{Start: 4, End: 5}})
	b.Add(Diagnostic{Code: SpComma, Primary: source.Span{Start: 4, End: 5}})
	b.Add(Diagnostic{Code: SpOpenParen, Primary: source.Span{Start: 1, End: 1}})
	b.Sort()

	got := []Code{b.Items()[0].Code, b.Items()[1].Code, b.Items()[2].Code}
	want := []Code{SpOpenParen, SpComma, SpCloseAngle}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBagCapAndDedup(t *testing.T) {
	b := NewBag(2)
	d := Diagnostic{Code: SpComma, Primary: source.Span{Start: 1, End: 2}, Message: "m"}
	if !b.Add(d) || !b.Add(d) {
		t.Fatalf("first two adds must succeed")
	}
	if b.Add(d) {
		t.Fatalf("add past cap must fail")
	}
	if b.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", b.Dropped())
	}
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("len after dedup = %d, want 1", b.Len())
	}
}

func TestCodeIDRoundTrip(t *testing.T) {
	for _, c := range []Code{SpComma, SpCloseAngle, LexUnterminatedString} {
		got, ok := ParseID(c.ID())
		if !ok || got != c {
			t.Fatalf("ParseID(%q) = %v,%v", c.ID(), got, ok)
		}
	}
	if SpComma.ID() != "SP1001" || LexUnknownChar.ID() != "LEX0101" {
		t.Fatalf("unexpected ids %s %s", SpComma.ID(), LexUnknownChar.ID())
	}
}
