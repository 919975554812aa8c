package lexer

import (
	"testing"

	"spacelint/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cs", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("expected clean EOF")
	}
}

func TestPeek2AndPeekAt(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if cursor.PeekAt(2) != 'c' || cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt out of range must yield 0")
	}
	cursor.Bump()
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatalf("Peek2 must fail with one byte left")
	}
}

func TestSpanFromResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cs", []byte("α\nβ"))
	cursor := NewCursor(fs.Get(id))

	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("span = %v, want 0-2", sp)
	}
	cursor.Bump()
	m = cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	start, _ := fs.Resolve(cursor.SpanFrom(m))
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("resolved %d:%d, want 2:1", start.Line, start.Col)
	}
}

func TestEatLineBreak(t *testing.T) {
	cursor := NewCursor(createFile("\r\n\n\rx"))
	n := 0
	for cursor.EatLineBreak() {
		n++
	}
	if n != 3 || cursor.Peek() != 'x' {
		t.Fatalf("ate %d breaks, at %q", n, cursor.Peek())
	}
}

func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	cursor.Reset(m)
	if cursor.Peek() != 'h' {
		t.Fatalf("Reset did not rewind")
	}
	if !cursor.Eat('h') || cursor.Eat('x') {
		t.Fatalf("Eat mismatch")
	}
}
