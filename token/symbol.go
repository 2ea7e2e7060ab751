package token

import "fmt"

// Symbol is punctuation such as ( or ->.
type Symbol uint8

const (
	OpeningCurlyBrackets Symbol = iota // {
	ClosingCurlyBrackets               // }
	OpeningBrackets                    // [
	ClosingBrackets                    // ]
	OpeningAngleBrackets               // <
	ClosingAngleBrackets               // >
	OpeningParenthesis                 // (
	ClosingParenthesis                 // )
	Semicolon                          // ;
	Colon                              // :
	Equal                              // =
	Comma                              // ,
	Question                           // ?
	Pipe                               // |
	Ampersand                          // &
	Dot                                // .
	Ellipses                           // ...
	Arrow                              // ->
	Typecast                           // ::
)

var symbolNames = [...]string{
	OpeningCurlyBrackets: "{",
	ClosingCurlyBrackets: "}",
	OpeningBrackets:      "[",
	ClosingBrackets:      "]",
	OpeningAngleBrackets: "<",
	ClosingAngleBrackets: ">",
	OpeningParenthesis:   "(",
	ClosingParenthesis:   ")",
	Semicolon:            ";",
	Colon:                ":",
	Equal:                "=",
	Comma:                ",",
	Question:             "?",
	Pipe:                 "|",
	Ampersand:            "&",
	Dot:                  ".",
	Ellipses:             "...",
	Arrow:                "->",
	Typecast:             "::",
}

var symbols = reverse(symbolNames[:], func(i int) Symbol { return Symbol(i) })

// LookupSymbol returns the symbol spelled s.
func LookupSymbol(s string) (Symbol, bool) {
	sym, ok := symbols[s]
	return sym, ok
}

// SymbolFromRune returns the single-character symbol r. Dot is excluded: a
// lone "." is resolved together with "..", "..." and ".5".
func SymbolFromRune(r rune) (Symbol, bool) {
	switch r {
	case '{':
		return OpeningCurlyBrackets, true
	case '}':
		return ClosingCurlyBrackets, true
	case '[':
		return OpeningBrackets, true
	case ']':
		return ClosingBrackets, true
	case '<':
		return OpeningAngleBrackets, true
	case '>':
		return ClosingAngleBrackets, true
	case '(':
		return OpeningParenthesis, true
	case ')':
		return ClosingParenthesis, true
	case ';':
		return Semicolon, true
	case ':':
		return Colon, true
	case '=':
		return Equal, true
	case ',':
		return Comma, true
	case '?':
		return Question, true
	case '|':
		return Pipe, true
	case '&':
		return Ampersand, true
	}
	return 0, false
}

// String returns the spelling of s.
func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", s)
}

// Text returns the spelling of s.
func (s Symbol) Text() string { return s.String() }

func (Symbol) kind() {}
