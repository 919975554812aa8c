package fuzztests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode"

	"spacelint/internal/engine"
	"spacelint/internal/source"
)

// fixTimeout bounds one FixAll run; exceeding it indicates a hang in the
// classifier look-ahead or the fix loop.
const fixTimeout = 5 * time.Second

// FuzzFixAllIdempotent checks that batch fixing only touches whitespace and
// that fixing fixed text changes nothing.
func FuzzFixAllIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), fixTimeout)
		defer cancel()

		type outcome struct {
			first, second *engine.FixResult
			err           error
		}
		done := make(chan outcome, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.cs", input))
			opts := engine.DefaultOptions()
			first, err := engine.FixAll(file, opts)
			if err != nil {
				done <- outcome{err: err}
				return
			}
			second, err := engine.FixAll(first.File, opts)
			done <- outcome{first: first, second: second, err: err}
		}()

		select {
		case out := <-done:
			if errors.Is(out.err, engine.ErrFixpointNotReached) {
				t.Fatalf("conflicting rules on %q: %v", truncateForLog(input, 200), out.err)
			}
			if out.err != nil {
				// lexical errors and unbalanced or inconsistent streams fail the file
				if out.first == nil {
					return
				}
				t.Fatalf("second FixAll failed: %v", out.err)
			}
			got := string(out.first.File.Content)
			if squeeze(got) != squeeze(string(input)) {
				t.Fatalf("fix changed non-whitespace text of %q", truncateForLog(input, 200))
			}
			if string(out.second.File.Content) != got {
				t.Fatalf("fix is not idempotent for %q", truncateForLog(input, 200))
			}
		case <-ctx.Done():
			t.Fatalf("hang detected: FixAll took longer than %v\ninput (%d bytes): %q",
				fixTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}
