package observ

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTimerReportKeepsPhaseOrder(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("lex")
	tm.End(a, "12 tokens")
	b := tm.Begin("classify")
	tm.End(b, "")
	tm.End(99, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "lex" || rep.Phases[0].Note != "12 tokens" {
		t.Fatalf("first phase = %+v", rep.Phases[0])
	}
	if !strings.Contains(tm.Summary(), "// 12 tokens") {
		t.Fatalf("summary lost note:\n%s", tm.Summary())
	}
}

func TestMergeSumsByName(t *testing.T) {
	r1 := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "lex", DurationMS: 1}, {Name: "classify", DurationMS: 2, Note: "C# 7.3"}}}
	r2 := Report{TotalMS: 5, Phases: []PhaseReport{{Name: "classify", DurationMS: 4}, {Name: "fix pass 1", DurationMS: 1}}}

	got := Merge(r1, r2)
	want := Report{
		TotalMS: 8,
		Phases: []PhaseReport{
			{Name: "lex", DurationMS: 1},
			{Name: "classify", DurationMS: 6},
			{Name: "fix pass 1", DurationMS: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Merge mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTimerReport(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || len(rep.Phases) != 0 {
		t.Fatalf("empty timer report = %+v", rep)
	}
	if got := Merge(); got.TotalMS != 0 || got.Phases != nil {
		t.Fatalf("Merge() = %+v", got)
	}
}
