package source

import (
	"testing"
)

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{Start: 0, End: 2}, Span{Start: 2, End: 4}, false},
		{"overlap", Span{Start: 0, End: 3}, Span{Start: 2, End: 4}, true},
		{"identical", Span{Start: 1, End: 3}, Span{Start: 1, End: 3}, true},
		{"two points same offset", Point(0, 3), Point(0, 3), false},
		{"point at run start", Point(0, 3), Span{Start: 3, End: 5}, true},
		{"point at run end", Point(0, 5), Span{Start: 3, End: 5}, false},
		{"point inside run", Span{Start: 3, End: 5}, Point(0, 4), true},
		{"different files", Span{File: 1, Start: 0, End: 3}, Span{File: 2, Start: 0, End: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
