// Package luaulexer provides a lossless lexer for Luau source code.
//
// Every byte of the input ends up in the token stream: whitespace and
// comments are attached to tokens as trivia and literals keep their exact
// spelling, so [Reconstruct] can rebuild the source from the tokens.
//
// Malformed input never stops the lexer. The offending token is returned
// with as much text as could be scanned, and the diagnostic follows it as a
// separate error token on the next call to [Lexer.NextToken].
package luaulexer

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/msix29/luau-lexer/token"
)

// Lexer tokenizes Luau source. Create with [New] and call [Lexer.NextToken]
// until it returns an [token.EndOfFile] token. A Lexer is not safe for
// concurrent use; use one Lexer per input.
type Lexer struct {
	src    string
	state  ScanState
	logger *slog.Logger
}

// New creates a Lexer for src.
func New(src string, opts ...Option) *Lexer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lexer{
		src:    src,
		state:  ScanState{pos: o.start},
		logger: o.logger,
	}
	l.state.trivia = l.skipTrivia()
	return l
}

// Source returns the original source string.
func (l *Lexer) Source() string { return l.src }

// NextToken returns the next token.
//
// Diagnostics found while scanning a token are returned first, one per call
// and oldest first, as error tokens without trivia. Only when none remain is
// a new token scanned. Once the input is exhausted NextToken keeps returning
// [token.EndOfFile]. The first end of file token leads with the trivia left
// after the last token, or with all of the input if it holds only trivia.
func (l *Lexer) NextToken() token.Token {
	if len(l.state.pending) > 0 {
		e := l.state.pending[0]
		l.state.pending = l.state.pending[1:]
		start, end := e.Span()
		return token.Token{Start: start, Kind: e, End: end}
	}

	start := l.state.pos
	kind, ok := l.classify()
	if !ok {
		eof := token.EmptyToken(token.EndOfFile{})
		eof.LeadingTrivia, l.state.trivia = l.state.trivia, nil
		return eof
	}
	end := l.state.pos

	trailing := l.skipTrivia()
	leading := l.state.trivia
	l.state.trivia = trailing

	return token.Token{
		Start:          start,
		LeadingTrivia:  leading,
		Kind:           kind,
		TrailingTrivia: trailing,
		End:            end,
	}
}

// All returns an iterator over the remaining tokens. The final token yielded
// is the first [token.EndOfFile].
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.NextToken()
			if !yield(tok) || tok.IsEOF() {
				return
			}
		}
	}
}

// SaveState returns a snapshot of the lexer's position, pending trivia and
// pending diagnostics. Pass it to [Lexer.SetState] to rewind.
func (l *Lexer) SaveState() ScanState {
	return l.state.clone()
}

// SetState restores a snapshot taken by [Lexer.SaveState] on the same
// Lexer. Diagnostics queued after the snapshot are discarded and those
// queued before it are restored, so rescanning reports each one once.
func (l *Lexer) SetState(s ScanState) {
	l.state = s.clone()
	l.logger.Debug("lexer state restored",
		slog.Int("offset", s.offset),
		slog.String("position", s.pos.String()),
		slog.Int("pending_errors", len(s.pending)))
}

// report queues e to be returned before the next scanned token.
func (l *Lexer) report(e token.ParseError) {
	l.state.pending = append(l.state.pending, e)
	l.logger.Debug("lex diagnostic",
		slog.String("start", e.Start.String()),
		slog.String("message", e.Message))
}

// Tokenize lexes all of src. The returned slice ends with the
// [token.EndOfFile] token.
func Tokenize(src string, opts ...Option) []token.Token {
	var tokens []token.Token
	for tok := range New(src, opts...).All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Diagnostics joins the errors carried by the error tokens in tokens. It
// returns nil when there are none.
func Diagnostics(tokens []token.Token) error {
	var errs []error
	for _, tok := range tokens {
		if err := tok.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
