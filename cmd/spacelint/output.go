package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"spacelint/internal/diag"
	"spacelint/internal/diagfmt"
	"spacelint/internal/driver"
	"spacelint/internal/ui"
)

type outputFormat string

const (
	formatPretty outputFormat = "pretty"
	formatJSON   outputFormat = "json"
	formatShort  outputFormat = "short"
)

func readFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case formatPretty, formatJSON, formatShort:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected pretty|json|short)", value)
	}
}

type runFunc func(ctx context.Context, paths []string, opts driver.Options) (*driver.Report, error)

// runWithProgress runs op directly or behind the progress view, depending on
// the --ui flag and whether stderr is a terminal.
func runWithProgress(ctx context.Context, uiFlag string, stderr io.Writer, title string, paths []string, opts driver.Options, op runFunc) (*driver.Report, error) {
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, err
	}
	if !shouldUseTUI(mode, stderr) {
		return op(ctx, paths, opts)
	}
	return ui.Run(stderr, title, func(sink driver.ProgressSink) (*driver.Report, error) {
		opts.Progress = sink
		return op(ctx, paths, opts)
	})
}

func printDiagnostics(w io.Writer, ds []diag.Diagnostic, rep *driver.Report, format outputFormat, useColor bool) error {
	switch format {
	case formatJSON:
		return diagfmt.JSON(w, ds, rep.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		})
	case formatShort:
		if len(ds) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(ds, rep.FileSet, false))
		return err
	default:
		diagfmt.PrettyList(w, ds, rep.FileSet, diagfmt.PrettyOpts{
			Color:    useColor,
			PathMode: diagfmt.PathModeRelative,
		})
		return nil
	}
}

// printFailures lists files that could not be processed at all.
func printFailures(w io.Writer, rep *driver.Report) int {
	n := 0
	for i := range rep.Files {
		res := &rep.Files[i]
		if res.Status != driver.FileFailed {
			continue
		}
		n++
		fmt.Fprintf(w, "spacelint: %s: %v\n", res.Path, res.Err)
	}
	return n
}

func printTimings(w io.Writer, rep *driver.Report) {
	t := rep.Timings()
	if len(t.Phases) == 0 {
		return
	}
	fmt.Fprint(w, t.String())
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
