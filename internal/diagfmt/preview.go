package diagfmt

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"spacelint/internal/diag"
	"spacelint/internal/source"
)

type fixEditPreview struct {
	before []string
	after  []string
}

// buildFixEditPreview renders the lines touched by edit before and after
// applying it. Spacing edits never span more than the lines of one gap.
func buildFixEditPreview(fs *source.FileSet, edit diag.TextEdit) (fixEditPreview, error) {
	if fs == nil {
		return fixEditPreview{}, fmt.Errorf("nil FileSet")
	}
	file := fs.Get(edit.Span.File)
	if file == nil {
		return fixEditPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixEditPreview{}, fmt.Errorf("len file content overflow: %w", err)
	}
	if edit.Span.End > size || edit.Span.Start > edit.Span.End {
		return fixEditPreview{}, fmt.Errorf("edit span %s out of range", edit.Span)
	}

	startPos, endPos := fs.Resolve(edit.Span)
	blockStart := file.LineStart(startPos.Line)
	blockEnd := file.LineStart(endPos.Line + 1)
	if blockEnd > size {
		blockEnd = size
	}

	original := file.Content[blockStart:blockEnd]
	relStart := edit.Span.Start - blockStart
	relEnd := edit.Span.End - blockStart

	var after strings.Builder
	after.Grow(len(original) + len(edit.NewText))
	after.Write(original[:relStart])
	after.WriteString(edit.NewText)
	after.Write(original[relEnd:])

	return fixEditPreview{
		before: splitPreviewLines(string(original)),
		after:  splitPreviewLines(after.String()),
	}, nil
}

// splitPreviewLines drops the final line break so "a\n" is one line.
func splitPreviewLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
