package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"spacelint/internal/diag"
	"spacelint/internal/source"
)

type palette struct {
	path, err, warn, info, code, gutter, caret, note, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.FgMagenta),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
		fix:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders bag.Items() for humans; the bag should be sorted first.
// Each diagnostic prints as
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// followed by the source line with a caret under Primary, then notes and
// fixes. Caret width follows display width (runewidth) and tabs expand to
// TabWidth.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	PrettyList(w, bag.Items(), fs, opts)
}

// PrettyList is Pretty over a plain slice.
func PrettyList(w io.Writer, ds []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i := range ds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &ds[i], fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity.String()), p.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	first := int64(start.Line) - int64(max(opts.Context, 0))
	if first < 1 {
		first = 1
	}
	for ln := uint32(first); ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), expandTabs(f.GetLine(ln), tab))
	}

	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:col], tab))
	width := 1
	if end.Line == start.Line && int(end.Col) > int(start.Col) {
		stop := min(int(end.Col)-1, len(line))
		width = max(1, runewidth.StringWidth(expandTabs(line[:stop], tab))-pad)
	}
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad),
		p.caret.Sprint(strings.Repeat("^", width)))

	if opts.ShowNotes {
		for _, n := range d.Notes {
			pos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s (%d:%d)\n", p.note.Sprint("= note:"), n.Msg, pos.Line, pos.Col)
		}
	}
	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.fix.Sprint("= fix:"), fx.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, e := range fx.Edits {
				pv, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				for _, l := range pv.before {
					fmt.Fprintf(w, "    - %s\n", expandTabs(l, tab))
				}
				for _, l := range pv.after {
					fmt.Fprintf(w, "    + %s\n", expandTabs(l, tab))
				}
			}
		}
	}
}

// expandTabs replaces tabs with spaces up to the next tab stop, measuring
// columns by display width.
func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
