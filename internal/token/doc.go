// Package token defines lexical token kinds and trivia for C#-family sources.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Every source byte belongs to exactly one token or one trivia item, so
//     concatenating Leading + Text + Trailing over all tokens (EOF included)
//     reproduces the file.
//   - Trailing trivia never crosses a line break: it ends with the first
//     TriviaNewline after the token, if any.
//   - '>' is always its own token; '>>' is recovered by the classifier so that
//     nested generic argument lists can close one level at a time.
//   - Predefined type names (int, string, object, ...) lex as KwPredefType.
package token
