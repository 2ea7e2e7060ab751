package luaulexer

import (
	"strings"

	"github.com/msix29/luau-lexer/token"
)

// Reconstruct rebuilds source text from a token stream produced by a
// [Lexer]. For input lexed without diagnostics the result equals the input.
//
// Error tokens replayed from the diagnostic queue carry no text and no
// trivia and are skipped. An unexpected character is dropped: its error
// token keeps the surrounding trivia but has no text, so "x\xffy" rebuilds
// as "xy".
func Reconstruct(tokens []token.Token) string {
	var b strings.Builder
	first := true
	for _, tok := range tokens {
		if !scanned(tok) {
			continue
		}
		if first {
			b.WriteString(token.TriviaText(tok.LeadingTrivia))
			first = false
		}
		b.WriteString(tok.Text())
		b.WriteString(token.TriviaText(tok.TrailingTrivia))
	}
	return b.String()
}

// scanned reports whether tok was scanned from the source rather than
// replayed from the diagnostic queue.
func scanned(tok token.Token) bool {
	if _, ok := tok.Kind.(token.ParseError); ok {
		return len(tok.LeadingTrivia) > 0 || len(tok.TrailingTrivia) > 0
	}
	return true
}
