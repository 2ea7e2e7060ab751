package luaulexer

import (
	"fmt"

	"github.com/msix29/luau-lexer/token"
)

// classify scans one token at the cursor and returns its kind. It returns
// false only when the input is exhausted.
//
// Shapes sharing a first character are resolved longest match first: a
// single-character symbol or operator is only tried once every longer form
// starting with that character has been ruled out.
func (l *Lexer) classify() (token.Kind, bool) {
	r := l.current()
	if r == eof {
		return nil, false
	}
	start := l.state.pos

	switch {
	case isDigit(r):
		return l.scanNumber(), true
	case r == '.':
		return l.scanDots(), true
	case r == '\'' || r == '"' || r == '`':
		return l.scanString(r), true
	case l.opensLongBracket():
		return token.MultiLineString(l.scanLongBracket("string", start)), true
	case isIdentifierStart(r):
		return l.scanWord(), true
	}

	if k, ok := l.scanPair(r); ok {
		return k, true
	}
	if sym, ok := token.SymbolFromRune(r); ok {
		l.advanceBy(1)
		return sym, true
	}
	if op, ok := token.OperatorFromRunes(r, l.peek()); ok {
		l.advanceBy(len(op.String()))
		if c, ok := token.CompoundOf(op, l.current()); ok {
			l.advanceBy(1)
			return c, true
		}
		return op, true
	}

	l.advance(r)
	return token.NewParseError(start, fmt.Sprintf("unexpected character %q", r), l.state.pos), true
}

// scanDots resolves a token starting with '.': a number such as .5, the
// ellipsis, the concatenation operator (possibly ..=) or a lone dot.
func (l *Lexer) scanDots() token.Kind {
	next := l.peek()
	switch {
	case isDigit(next):
		return l.scanNumber()
	case next != '.':
		l.advanceBy(1)
		return token.Dot
	case l.peekN(2) == '.':
		l.advanceBy(3)
		return token.Ellipses
	}
	l.advanceBy(2)
	if c, ok := token.CompoundOf(token.Concatenation, l.current()); ok {
		l.advanceBy(1)
		return c
	}
	return token.Concatenation
}

// scanPair matches the two-character tokens that are not an operator
// followed by '='.
func (l *Lexer) scanPair(r rune) (token.Kind, bool) {
	var k token.Kind
	switch next := l.peek(); {
	case r == '>' && next == '=':
		k = token.GreaterThanOrEqualTo
	case r == '<' && next == '=':
		k = token.LessThanOrEqualTo
	case r == '=' && next == '=':
		k = token.EqualEqual
	case r == '-' && next == '>':
		k = token.Arrow
	case r == ':' && next == ':':
		k = token.Typecast
	default:
		return nil, false
	}
	l.advanceBy(2)
	return k, true
}

// scanWord scans an identifier-shaped word and classifies it as a keyword,
// partial keyword, boolean, word operator or plain identifier.
func (l *Lexer) scanWord() token.Kind {
	start := l.state.offset
	for r := l.current(); isIdentifierChar(r); r = l.current() {
		l.advance(r)
	}
	word := l.since(start)

	if kw, ok := token.LookupKeyword(word); ok {
		return kw
	}
	if kw, ok := token.LookupPartialKeyword(word); ok {
		return kw
	}
	switch word {
	case "true":
		return token.Boolean(true)
	case "false":
		return token.Boolean(false)
	}
	if op, ok := token.LookupWordOperator(word); ok {
		return op
	}
	return token.Identifier(word)
}

// isIdentifierStart reports whether r can begin an identifier.
func isIdentifierStart(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r == '_'
}

// isIdentifierChar reports whether r can continue an identifier.
func isIdentifierChar(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}
