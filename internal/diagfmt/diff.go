package diagfmt

import (
	"io"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff writes a unified diff between the original and fixed text of
// path. Nothing is written when the texts are equal.
func UnifiedDiff(w io.Writer, path string, before, after []byte) error {
	if string(before) == string(after) {
		return nil
	}
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}
