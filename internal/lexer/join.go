package lexer

import (
	"spacelint/internal/diag"
	"spacelint/internal/source"
)

// Joinable reports whether the texts of two adjacent tokens still lex as the
// same two tokens when written with nothing between them. Removing the space
// in "- -x" or "a / /b" would change the token stream, so such gaps must be
// left alone.
func Joinable(left, right string) bool {
	if left == "" || right == "" {
		return true
	}
	file := &source.File{Path: "<join>", Content: []byte(left + right)}
	bag := diag.NewBag(1)
	toks := Tokenize(file, diag.BagReporter{Bag: bag})
	if bag.Len() > 0 || len(toks) != 3 {
		return false
	}
	return toks[0].Text == left && toks[1].Text == right &&
		len(toks[0].Trailing) == 0 && len(toks[1].Leading) == 0
}
