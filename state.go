package luaulexer

import (
	"slices"
	"unicode/utf8"

	"github.com/msix29/luau-lexer/token"
)

// eof is returned by the cursor when reading past the end of input.
const eof rune = -1

// ScanState is a snapshot of a [Lexer]'s position, taken with
// [Lexer.SaveState] and restored with [Lexer.SetState]. It also carries the
// trivia waiting to lead the next token and the diagnostics not yet
// reported, so restoring a snapshot replays exactly what followed it.
type ScanState struct {
	offset  int            // byte offset into the source
	pos     token.Position // line/character of offset
	trivia  []token.Trivia // leading trivia for the next token
	pending []token.ParseError
}

// Offset returns the byte offset of the snapshot.
func (s ScanState) Offset() int { return s.offset }

// Position returns the line/character position of the snapshot.
func (s ScanState) Position() token.Position { return s.pos }

// PendingTrivia returns the trivia that will lead the next token.
func (s ScanState) PendingTrivia() []token.Trivia { return slices.Clone(s.trivia) }

// PendingErrors returns the diagnostics that will be reported before the
// next token.
func (s ScanState) PendingErrors() []token.ParseError { return slices.Clone(s.pending) }

// clone returns a copy of s that shares no slices with it.
func (s ScanState) clone() ScanState {
	s.trivia = slices.Clone(s.trivia)
	s.pending = slices.Clone(s.pending)
	return s
}

// current returns the rune at the cursor, or eof.
func (l *Lexer) current() rune {
	r, _ := l.runeAt(l.state.offset)
	return r
}

// peek returns the rune after the cursor, or eof.
func (l *Lexer) peek() rune {
	_, w := l.runeAt(l.state.offset)
	r, _ := l.runeAt(l.state.offset + w)
	return r
}

// peekN returns the rune n runes after the cursor, or eof.
func (l *Lexer) peekN(n int) rune {
	off := l.state.offset
	for range n {
		_, w := l.runeAt(off)
		if w == 0 {
			return eof
		}
		off += w
	}
	r, _ := l.runeAt(off)
	return r
}

// runeAt decodes the rune at byte offset off.
func (l *Lexer) runeAt(off int) (rune, int) {
	if off >= len(l.src) {
		return eof, 0
	}
	if c := l.src[off]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(l.src[off:])
}

// advance moves the cursor past r, which must be the current rune. The
// width comes from the source so invalid UTF-8 bytes advance by one.
func (l *Lexer) advance(r rune) {
	_, w := l.runeAt(l.state.offset)
	if w == 0 {
		return
	}
	l.state.offset += w
	if r == '\n' {
		l.state.pos = l.state.pos.Offset(1, 0).WithCharacter(0)
	} else {
		l.state.pos = l.state.pos.Offset(0, 1)
	}
}

// advanceBy moves the cursor n single-byte runes forward. It is only used for
// fixed ASCII tokens, which never contain a newline.
func (l *Lexer) advanceBy(n int) {
	l.state.offset += n
	l.state.pos = l.state.pos.Offset(0, int32(n))
}

// consume advances past r if it is the current rune.
func (l *Lexer) consume(r rune) bool {
	if l.current() != r {
		return false
	}
	l.advance(r)
	return true
}

// since returns the source text from byte offset start to the cursor.
func (l *Lexer) since(start int) string {
	return l.src[start:l.state.offset]
}
