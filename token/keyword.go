package token

import "fmt"

// Keyword is a word reserved by Luau. It can never be an identifier.
type Keyword uint8

const (
	Local Keyword = iota
	Function
	If
	Elseif
	Then
	Else
	While
	For
	In
	Do
	Break
	Return
	End
	Repeat
	Until
	Nil
)

var keywordNames = [...]string{
	Local:    "local",
	Function: "function",
	If:       "if",
	Elseif:   "elseif",
	Then:     "then",
	Else:     "else",
	While:    "while",
	For:      "for",
	In:       "in",
	Do:       "do",
	Break:    "break",
	Return:   "return",
	End:      "end",
	Repeat:   "repeat",
	Until:    "until",
	Nil:      "nil",
}

var keywords = reverse(keywordNames[:], func(i int) Keyword { return Keyword(i) })

// LookupKeyword returns the keyword spelled s.
func LookupKeyword(s string) (Keyword, bool) {
	k, ok := keywords[s]
	return k, ok
}

// String returns the spelling of k.
func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", k)
}

// Text returns the spelling of k.
func (k Keyword) Text() string { return k.String() }

func (Keyword) kind() {}

// PartialKeyword is a contextual keyword: depending on where it appears it is
// either a keyword or an identifier. The lexer does not decide which.
type PartialKeyword uint8

const (
	Type PartialKeyword = iota
	Continue
	Export
	TypeOf
)

var partialKeywordNames = [...]string{
	Type:     "type",
	Continue: "continue",
	Export:   "export",
	TypeOf:   "typeof",
}

var partialKeywords = reverse(partialKeywordNames[:], func(i int) PartialKeyword { return PartialKeyword(i) })

// LookupPartialKeyword returns the partial keyword spelled s.
func LookupPartialKeyword(s string) (PartialKeyword, bool) {
	k, ok := partialKeywords[s]
	return k, ok
}

// String returns the spelling of k.
func (k PartialKeyword) String() string {
	if int(k) < len(partialKeywordNames) {
		return partialKeywordNames[k]
	}
	return fmt.Sprintf("PartialKeyword(%d)", k)
}

// Text returns the spelling of k.
func (k PartialKeyword) Text() string { return k.String() }

func (PartialKeyword) kind() {}

// reverse builds the spelling-to-value map for an enum's name table.
func reverse[T any](names []string, value func(int) T) map[string]T {
	m := make(map[string]T, len(names))
	for i, name := range names {
		m[name] = value(i)
	}
	return m
}
