package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"spacelint/internal/diag"
	"spacelint/internal/engine"
	"spacelint/internal/source"
)

func TestCombineDigestSeparatesParts(t *testing.T) {
	var content Digest
	if combineDigest(content, "ab", "c") == combineDigest(content, "a", "bc") {
		t.Fatal("length prefixes must separate parts")
	}
	if combineDigest(content, "x") != combineDigest(content, "x") {
		t.Fatal("digest must be deterministic")
	}
}

func TestCacheKeyTracksContentAndProfile(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.cs", []byte("f(a,b);")))
	b := fs.Get(fs.AddVirtual("b.cs", []byte("f(a, b);")))
	opts := engine.DefaultOptions()
	if CacheKey(a, opts) == CacheKey(b, opts) {
		t.Fatal("content must feed the key")
	}
	other := opts
	other.Profile.Version++
	if CacheKey(a, opts) == CacheKey(a, other) {
		t.Fatal("language version must feed the key")
	}
}

func TestRestampMovesEverySpan(t *testing.T) {
	sp := source.Span{File: 1, Start: 3, End: 4}
	in := []diag.Diagnostic{
		diag.New(diag.SevWarning, diag.SpComma, sp, "m").
			WithToken(sp).
			WithNote(sp, "n").
			WithFix("f", diag.TextEdit{Span: sp, NewText: ""}),
	}
	out := restamp(in, 7)
	d := out[0]
	for _, got := range []source.FileID{d.Primary.File, d.Token.File, d.Notes[0].Span.File, d.Fixes[0].Edits[0].Span.File} {
		if got != 7 {
			t.Fatalf("span left in file %d", got)
		}
	}
	if in[0].Fixes[0].Edits[0].Span.File != 1 || in[0].Notes[0].Span.File != 1 {
		t.Fatal("restamp must not alias the input")
	}
	if restamp(nil, 3) != nil {
		t.Fatal("empty input stays nil")
	}
}

func TestCollectSourceFilesSkipsToolDirs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.cs", "B.CS", "obj/x.cs", ".vs/y.cs", "src/c.cs", "src/d.csx"} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := collectSourceFiles(context.Background(), []string{dir, filepath.Join(dir, "a.cs")}, DefaultExtensions)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		got[i], _ = filepath.Rel(dir, got[i])
	}
	if diff := cmp.Diff([]string{"B.CS", "a.cs", filepath.Join("src", "c.cs")}, got); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
}

func TestDiskCacheSchemaMismatchIsMiss(t *testing.T) {
	c, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := combineDigest(Digest{}, "k")
	if hit, err := c.Get(key, &DiskPayload{}); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}
	if err := c.Put(key, &DiskPayload{Path: "a.cs", Status: uint8(FileSkipped)}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if hit, err := c.Get(key, &out); !hit || err != nil || out.Path != "a.cs" {
		t.Fatalf("hit=%v err=%v payload=%+v", hit, err, out)
	}

	var nilCache *DiskCache
	if hit, err := nilCache.Get(key, &out); hit || err != nil {
		t.Fatal("nil cache must miss silently")
	}
}

func TestFileStatusString(t *testing.T) {
	for st, want := range map[FileStatus]string{FileOK: "ok", FileSkipped: "skipped", FileFailed: "failed", 9: "unknown"} {
		if got := st.String(); got != want {
			t.Errorf("%d: %q, want %q", st, got, want)
		}
	}
}
