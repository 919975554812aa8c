package driver

import (
	"spacelint/internal/diag"
	"spacelint/internal/lexer"
	"spacelint/internal/source"
	"spacelint/internal/token"
)

// TokenizeResult is the token dump of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file. Lexical errors land in Bag; the token list
// is returned regardless so a dump can show where lexing went wrong.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
