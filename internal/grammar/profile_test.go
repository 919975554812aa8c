package grammar

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	cases := map[string]Version{
		"6":       V6,
		"7":       V7,
		"7.3":     V7_3,
		"csharp8": V8,
		" 12 ":    V12,
		"latest":  Latest,
		"cs7.3":   V7_3,
		"preview": Latest,
	}
	for in, want := range cases {
		got, err := ParseVersion(in)
		if err != nil || got != want {
			t.Errorf("ParseVersion(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "x", "7.10", "0", "-1"} {
		if _, err := ParseVersion(bad); !errors.Is(err, ErrBadVersion) {
			t.Errorf("ParseVersion(%q) error = %v, want ErrBadVersion", bad, err)
		}
	}
}

func TestFeatures(t *testing.T) {
	p6 := NewProfile(V6)
	if p6.Tuples() || p6.StackAllocInitializers() {
		t.Fatalf("C# 6 has neither tuples nor stackalloc initializers")
	}
	p7 := NewProfile(V7)
	if !p7.Tuples() || p7.StackAllocInitializers() {
		t.Fatalf("C# 7 has tuples but no stackalloc initializers")
	}
	def := NewProfile(0)
	if def.Version != Default || !def.ImplicitStackAlloc() || def.CollectionExpressions() {
		t.Fatalf("default profile = %v", def)
	}
	if !NewProfile(Latest).CollectionExpressions() {
		t.Fatalf("latest must enable collection expressions")
	}
	if V7_3.String() != "7.3" || V8.String() != "8" || Latest.String() != "latest" {
		t.Fatalf("version strings: %s %s %s", V7_3, V8, Latest)
	}
}
