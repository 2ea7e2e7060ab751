package luaulexer

import (
	"unicode"

	"github.com/msix29/luau-lexer/token"
)

// skipTrivia consumes whitespace and comments at the cursor and returns them
// in source order.
func (l *Lexer) skipTrivia() []token.Trivia {
	var trivia []token.Trivia
	for {
		if spaces := l.skipWhitespace(); spaces != "" {
			trivia = append(trivia, token.Spaces(spaces))
			continue
		}
		if l.current() == '-' && l.peek() == '-' {
			trivia = append(trivia, l.scanComment())
			continue
		}
		return trivia
	}
}

// skipWhitespace consumes a run of whitespace and returns it.
func (l *Lexer) skipWhitespace() string {
	start := l.state.offset
	for r := l.current(); r != eof && unicode.IsSpace(r); r = l.current() {
		l.advance(r)
	}
	return l.since(start)
}

// scanComment scans a comment. The cursor must be on "--".
func (l *Lexer) scanComment() token.Comment {
	start, startPos := l.state.offset, l.state.pos
	l.advanceBy(2)
	if l.opensLongBracket() {
		l.scanLongBracket("comment", startPos)
		return token.MultiLineComment(l.since(start))
	}
	for r := l.current(); r != eof && r != '\n' && r != '\r'; r = l.current() {
		l.advance(r)
	}
	return token.SingleLineComment(l.since(start))
}
