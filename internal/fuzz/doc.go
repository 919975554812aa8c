// Package fuzztests houses Go fuzz harnesses for the spacing pipeline
// (source -> lexer -> stream -> classify -> rules -> fix). They guard the
// round-trip of token and trivia text, the absence of hangs and panics on
// arbitrary input, and the idempotence of batch fixing.
package fuzztests
