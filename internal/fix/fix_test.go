package fix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"spacelint/internal/diag"
	"spacelint/internal/source"
)

func sp(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

func withEdit(code diag.Code, e diag.TextEdit) diag.Diagnostic {
	return diag.New(diag.SevWarning, code, e.Span, "m").WithFix("f", e)
}

func TestApplyOne(t *testing.T) {
	content := []byte("(int[] , int[] )")
	d := withEdit(diag.SpComma, DeleteRun(sp(6, 7), " "))
	got, err := ApplyOne(content, d)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "(int[], int[] )" {
		t.Fatalf("got %q", got)
	}
	if string(content) != "(int[] , int[] )" {
		t.Fatal("input modified")
	}
}

func TestApplyOneWithoutFix(t *testing.T) {
	d := diag.New(diag.SevWarning, diag.SpComma, sp(0, 0), "m")
	if _, err := ApplyOne([]byte("x"), d); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("want ErrNoFixes, got %v", err)
	}
}

func TestApplyEditsAscending(t *testing.T) {
	content := []byte("a ,b")
	got, err := ApplyEdits(content, []diag.TextEdit{
		InsertSpace(sp(3, 3)),
		DeleteRun(sp(1, 2), " "),
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a, b" {
		t.Fatalf("got %q", got)
	}
}

func TestApplyEditsErrors(t *testing.T) {
	content := []byte("a  b")
	if _, err := ApplyEdits(content, []diag.TextEdit{DeleteRun(sp(1, 3), "xx")}); !errors.Is(err, ErrStale) {
		t.Fatalf("want ErrStale, got %v", err)
	}
	if _, err := ApplyEdits(content, []diag.TextEdit{DeleteRun(sp(1, 9), "")}); !errors.Is(err, ErrStale) {
		t.Fatalf("want ErrStale for range, got %v", err)
	}
	overlapping := []diag.TextEdit{DeleteRun(sp(0, 3), ""), DeleteRun(sp(2, 4), "")}
	if _, err := ApplyEdits(content, overlapping); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestPlanMergesIdenticalEdits(t *testing.T) {
	run := DeleteRun(sp(12, 13), " ")
	diags := []diag.Diagnostic{
		withEdit(diag.SpCloseAngle, run),
		withEdit(diag.SpComma, run),
		withEdit(diag.SpCloseAngle, DeleteRun(sp(10, 11), " ")),
	}
	b := Plan(diags)
	want := []diag.TextEdit{DeleteRun(sp(10, 11), " "), run}
	if diff := cmp.Diff(want, b.Edits); diff != "" {
		t.Fatalf("edits (-want +got):\n%s", diff)
	}
	if b.Merged != 1 || len(b.Resolved) != 3 || len(b.Deferred) != 0 {
		t.Fatalf("merged=%d resolved=%d deferred=%d", b.Merged, len(b.Resolved), len(b.Deferred))
	}
}

func TestPlanDefersOverlap(t *testing.T) {
	diags := []diag.Diagnostic{
		withEdit(diag.SpOperator, DeleteRun(sp(4, 6), "  ")),
		withEdit(diag.SpComma, InsertSpace(sp(4, 4))),
		withEdit(diag.SpSemicolon, InsertSpace(sp(9, 9))),
	}
	b := Plan(diags)
	if len(b.Edits) != 2 {
		t.Fatalf("want 2 edits, got %v", b.Edits)
	}
	if len(b.Deferred) != 1 || b.Deferred[0].Code != diag.SpOperator {
		t.Fatalf("deferred = %v", b.Deferred)
	}
	if _, err := ApplyEdits([]byte("abcd  efgh"), b.Edits); err != nil {
		t.Fatalf("planned edits must apply: %v", err)
	}
}

func TestPlanSkipsDiagnosticsWithoutFix(t *testing.T) {
	b := Plan([]diag.Diagnostic{diag.New(diag.SevWarning, diag.SpComma, sp(0, 0), "m")})
	if len(b.Skipped) != 1 || len(b.Edits) != 0 {
		t.Fatalf("skipped=%d edits=%d", len(b.Skipped), len(b.Edits))
	}
}

func TestSpansConflict(t *testing.T) {
	cases := []struct {
		a, b diag.TextEdit
		want bool
	}{
		{InsertSpace(sp(3, 3)), InsertSpace(sp(3, 3)), true},
		{InsertSpace(sp(3, 3)), InsertSpace(sp(4, 4)), false},
		{InsertSpace(sp(3, 3)), DeleteRun(sp(3, 5), ""), true},
		{InsertSpace(sp(5, 5)), DeleteRun(sp(3, 5), ""), false},
		{DeleteRun(sp(1, 3), ""), DeleteRun(sp(3, 5), ""), false},
		{DeleteRun(sp(1, 4), ""), DeleteRun(sp(3, 5), ""), true},
		{InsertSpace(sp(4, 4)), DeleteRun(sp(3, 6), ""), true},
		{DeleteRun(sp(3, 6), ""), InsertSpace(sp(3, 3)), true},
		{
			diag.TextEdit{Span: source.Span{File: 1, Start: 3, End: 3}, NewText: " "},
			diag.TextEdit{Span: source.Span{File: 2, Start: 3, End: 3}, NewText: " "},
			false,
		},
	}
	for i, tc := range cases {
		if got := spansConflict(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: spansConflict = %v, want %v", i, got, tc.want)
		}
	}
}
