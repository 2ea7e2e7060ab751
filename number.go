package luaulexer

import (
	"fmt"

	"github.com/msix29/luau-lexer/token"
)

// scanNumber scans a number literal. The cursor must be on a digit, or on a
// '.' followed by a digit.
func (l *Lexer) scanNumber() token.NumberLiteral {
	if l.current() == '0' {
		switch l.peek() {
		case 'b', 'B':
			return token.BinaryNumber(l.scanRadix("binary", isBinaryDigit))
		case 'x', 'X':
			return token.HexNumber(l.scanRadix("hexadecimal", isHexDigit))
		}
	}
	return token.PlainNumber(l.scanDecimal())
}

// scanRadix scans a prefixed binary or hexadecimal literal. Underscores may
// separate digits. A letter or digit left right after the run is reported
// but not consumed.
func (l *Lexer) scanRadix(name string, isDigit func(rune) bool) string {
	start, startPos := l.state.offset, l.state.pos
	prefix := l.src[start : start+2]
	l.advanceBy(2)

	found := false
	for r := l.current(); isDigit(r) || r == '_'; r = l.current() {
		found = found || r != '_'
		l.advance(r)
	}

	switch {
	case !found:
		l.report(token.NewParseError(startPos,
			fmt.Sprintf("%s numbers must have at least one digit after %q", name, prefix),
			l.state.pos))
	case isIdentifierChar(l.current()):
		l.report(token.NewParseError(startPos,
			fmt.Sprintf("%s numbers must only contain %s digits", name, name),
			l.state.pos.Offset(0, 1)))
	}
	return l.since(start)
}

// scanDecimal scans a plain number: digits and underscores with at most one
// decimal point, then an optional exponent. A second decimal point ends the
// literal and is reported.
func (l *Lexer) scanDecimal() string {
	start := l.state.offset
	seenDot := false
	for {
		r := l.current()
		switch {
		case isDigit(r) || r == '_':
			l.advance(r)
		case r == '.' && !seenDot:
			seenDot = true
			l.advance(r)
		case r == '.':
			l.report(token.NewParseError(l.state.pos,
				"numbers can only have one decimal point",
				l.state.pos.Offset(0, 1)))
			return l.since(start)
		case r == 'e' || r == 'E':
			l.scanExponent()
			return l.since(start)
		default:
			return l.since(start)
		}
	}
}

// scanExponent scans "e", an optional sign and the exponent digits.
func (l *Lexer) scanExponent() {
	startPos := l.state.pos
	l.advanceBy(1)
	if r := l.current(); r == '+' || r == '-' {
		l.advanceBy(1)
	}
	found := false
	for r := l.current(); isDigit(r) || r == '_'; r = l.current() {
		found = found || r != '_'
		l.advance(r)
	}
	if !found {
		l.report(token.NewParseError(startPos,
			"exponents must have at least one digit",
			l.state.pos))
	}
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
