// Package testkit holds checks shared by package tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"spacelint/internal/source"
	"spacelint/internal/token"
)

// CheckTokenInvariants verifies a lexed token list against its file:
// every span belongs to sf and stays in bounds, every text matches the
// bytes under its span, and tokens with their trivia tile the file without
// gaps or overlaps, ending in exactly one EOF.
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token list")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var pos uint32
	check := func(what string, sp source.Span, text string) error {
		if sp.File != sf.ID {
			return fmt.Errorf("%s at %d points to file %d, want %d", what, sp.Start, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > size {
			return fmt.Errorf("%s span out of bounds: %v (size %d)", what, sp, size)
		}
		if sp.Start != pos {
			return fmt.Errorf("%s starts at %d, previous piece ended at %d", what, sp.Start, pos)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != text {
			return fmt.Errorf("%s text %q does not match source %q", what, text, got)
		}
		pos = sp.End
		return nil
	}

	for i, tok := range toks {
		for _, tr := range tok.Leading {
			if err := check("leading "+tr.Kind.String(), tr.Span, tr.Text); err != nil {
				return err
			}
		}
		if tok.Kind == token.EOF {
			if i != len(toks)-1 {
				return fmt.Errorf("EOF at index %d of %d", i, len(toks))
			}
			if tok.Span.Start != tok.Span.End {
				return fmt.Errorf("EOF span is not empty: %v", tok.Span)
			}
		} else if tok.Span.Start == tok.Span.End {
			return fmt.Errorf("empty %s token at %d", tok.Kind, tok.Span.Start)
		}
		if err := check(tok.Kind.String(), tok.Span, tok.Text); err != nil {
			return err
		}
		for _, tr := range tok.Trailing {
			if err := check("trailing "+tr.Kind.String(), tr.Span, tr.Text); err != nil {
				return err
			}
		}
	}
	if toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("token list does not end with EOF")
	}
	if pos != size {
		return fmt.Errorf("tokens cover %d of %d bytes", pos, size)
	}
	return nil
}
