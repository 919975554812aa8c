package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/source"
)

// maxTokenLength bounds a single token; longer tokens become Invalid.
const maxTokenLength = 1 << 20

type Options struct {
	// Reporter receives lexical errors; nil ignores them and keeps lexing.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
