package luaulexer

import (
	"fmt"

	"github.com/msix29/luau-lexer/token"
)

// scanString scans a quoted string. The cursor must be on quote.
func (l *Lexer) scanString(quote rune) token.StringLiteral {
	text := l.scanQuoted(quote)
	switch quote {
	case '\'':
		return token.SingleQuotedString(text)
	case '"':
		return token.DoubleQuotedString(text)
	default:
		return token.BacktickString(text)
	}
}

// scanQuoted returns the text of a quoted string, delimiters included.
//
// A quote ends the string unless an odd number of backslashes precede it. A
// line break ends it with an error unless it directly follows the \z
// continuation escape. On error the text scanned so far is returned.
func (l *Lexer) scanQuoted(quote rune) string {
	start, startPos := l.state.offset, l.state.pos
	l.advance(quote)
	body := l.state.offset

	for {
		r := l.current()
		switch {
		case r == eof:
			l.report(token.NewParseError(startPos,
				fmt.Sprintf("missing %c to close string", quote),
				l.state.pos))
			return l.since(start)
		case (r == '\n' || r == '\r') && !l.continuesLine(body):
			l.report(token.NewParseError(startPos,
				fmt.Sprintf(`string must be single line, use \z here or close it with %c`, quote),
				l.state.pos))
			return l.since(start)
		}

		at := l.state.offset
		l.advance(r)
		if r == quote && backslashesBefore(l.src, body, at)%2 == 0 {
			return l.since(start)
		}
	}
}

// continuesLine reports whether the line break at the cursor follows a \z
// escape. The \n of a \r\n pair counts as following whatever the \r follows.
func (l *Lexer) continuesLine(body int) bool {
	off := l.state.offset
	if l.current() == '\n' && off > body && l.src[off-1] == '\r' {
		off--
	}
	if off <= body || l.src[off-1] != 'z' {
		return false
	}
	return backslashesBefore(l.src, body, off-1)%2 == 1
}

// opensLongBracket reports whether the cursor is on "[[" or "[=", the start
// of a bracketed string or comment body.
func (l *Lexer) opensLongBracket() bool {
	if l.current() != '[' {
		return false
	}
	next := l.peek()
	return next == '[' || next == '='
}

// scanLongBracket returns the text of a [==[ ... ]==] construct. what names
// the construct in diagnostics ("string" or "comment"), which are reported
// from position from.
//
// The closing bracket needs exactly as many '=' as the opening one. A ']'
// followed by a different count is ordinary content, and so is a ']'
// escaped by an odd number of backslashes.
func (l *Lexer) scanLongBracket(what string, from token.Position) string {
	start := l.state.offset
	l.advanceBy(1)
	level := 0
	for l.consume('=') {
		level++
	}
	if !l.consume('[') {
		l.report(token.NewParseError(from,
			fmt.Sprintf("missing `[` to open multi-line %s", what),
			l.state.pos))
	}
	body := l.state.offset

	for {
		r := l.current()
		if r == eof {
			l.report(token.NewParseError(from,
				fmt.Sprintf("malformed multi-line %s", what),
				l.state.pos))
			return l.since(start)
		}

		at := l.state.offset
		l.advance(r)
		if r != ']' || backslashesBefore(l.src, body, at)%2 == 1 {
			continue
		}
		n := 0
		for n < level && l.consume('=') {
			n++
		}
		if n == level && l.consume(']') {
			return l.since(start)
		}
	}
}

// backslashesBefore counts the consecutive backslashes that end src[lo:off].
func backslashesBefore(src string, lo, off int) int {
	n := 0
	for i := off - 1; i >= lo && src[i] == '\\'; i-- {
		n++
	}
	return n
}
