// Package token defines the values produced by the Luau lexer: positions,
// tokens, trivia and the closed set of token kinds.
//
// Every kind that carries text stores the exact source spelling, so a token
// stream can be turned back into the input byte for byte. All kinds are
// comparable with ==.
package token

import "strings"

// Kind is the payload of a [Token]. The set of implementations is closed:
// [ParseError], the [Literal] types, [Identifier], the [Comment] types,
// [Keyword], [PartialKeyword], [Symbol], [Operator], [CompoundOperator] and
// [EndOfFile].
type Kind interface {
	// Text returns the exact source text of the kind, or "" for kinds that
	// have none ([ParseError] and [EndOfFile]).
	Text() string
	kind()
}

// Token is a single lexical token together with the trivia around it.
//
// The trailing trivia of one token is also the leading trivia of the next,
// so when rebuilding source only the first token's leading trivia is used.
type Token struct {
	Start          Position
	LeadingTrivia  []Trivia
	Kind           Kind
	TrailingTrivia []Trivia
	End            Position
}

// EmptyToken returns a token of kind k with no trivia and no location.
func EmptyToken(k Kind) Token {
	return Token{Start: MaxPosition, Kind: k, End: MaxPosition}
}

// Is reports whether t has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsEOF reports whether t is the end of file token.
func (t Token) IsEOF() bool { return t.Kind == EndOfFile{} }

// Err returns the diagnostic carried by t, or nil if t is not an error token.
func (t Token) Err() error {
	if e, ok := t.Kind.(ParseError); ok {
		return e
	}
	return nil
}

// Text returns the source text of the token itself, without trivia.
func (t Token) Text() string {
	if t.Kind == nil {
		return ""
	}
	return t.Kind.Text()
}

// Trivia is non-semantic source text kept alongside tokens: a run of
// [Spaces], a [SingleLineComment] or a [MultiLineComment].
type Trivia interface {
	Text() string
	trivia()
}

// Spaces is a maximal run of whitespace, newlines included.
type Spaces string

// Text returns s.
func (s Spaces) Text() string { return string(s) }

func (Spaces) trivia() {}

// TriviaText concatenates the text of every entry in trivia.
func TriviaText(trivia []Trivia) string {
	var b strings.Builder
	for _, tr := range trivia {
		b.WriteString(tr.Text())
	}
	return b.String()
}

// Comment is a Luau comment. It appears either as trivia or as a token kind.
type Comment interface {
	Kind
	Trivia
	comment()
}

// SingleLineComment is a "-- ..." comment, stored with its leading "--" and
// without the terminating line break.
type SingleLineComment string

// MultiLineComment is a "--[[ ... ]]" or "--[==[ ... ]==]" comment, stored
// with its leading "--" and both brackets.
type MultiLineComment string

// Text returns c.
func (c SingleLineComment) Text() string { return string(c) }

// Text returns c.
func (c MultiLineComment) Text() string { return string(c) }

func (SingleLineComment) kind()    {}
func (SingleLineComment) trivia()  {}
func (SingleLineComment) comment() {}
func (MultiLineComment) kind()     {}
func (MultiLineComment) trivia()   {}
func (MultiLineComment) comment()  {}

// Identifier is a name that is neither a keyword, a partial keyword, a
// boolean nor a word operator.
type Identifier string

// Text returns id.
func (id Identifier) Text() string { return string(id) }

func (Identifier) kind() {}

// EndOfFile marks the end of input. Once returned, a lexer keeps returning it.
type EndOfFile struct{}

// Text returns "".
func (EndOfFile) Text() string { return "" }

func (EndOfFile) kind() {}
