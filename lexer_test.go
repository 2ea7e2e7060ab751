package luaulexer

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msix29/luau-lexer/token"
)

// kindsOf lexes src and returns every kind before the end of file.
func kindsOf(t *testing.T, src string) []token.Kind {
	t.Helper()
	var kinds []token.Kind
	for _, tok := range Tokenize(src) {
		if tok.IsEOF() {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

// messagesOf returns the messages of the error tokens in tokens.
func messagesOf(tokens []token.Token) []string {
	var msgs []string
	for _, tok := range tokens {
		if e, ok := tok.Kind.(token.ParseError); ok {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func TestLiteralExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"double_quotes", `"hello"`, []token.Kind{token.DoubleQuotedString(`"hello"`)}},
		{"hex", "0x1A", []token.Kind{token.HexNumber("0x1A")}},
		{"plus_equal", "+=", []token.Kind{token.PlusEqual}},
		{"true", "true", []token.Kind{token.Boolean(true)}},
		{"false", "false", []token.Kind{token.Boolean(false)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tokens := Tokenize(tc.input)
			assert.Equal(t, tc.want, kindsOf(t, tc.input))
			assert.True(t, tokens[len(tokens)-1].IsEOF())
			require.NoError(t, Diagnostics(tokens))
		})
	}
}

func TestExtraDecimalPoint(t *testing.T) {
	t.Parallel()

	l := New("1.2.3")

	tok := l.NextToken()
	assert.Equal(t, token.PlainNumber("1.2"), tok.Kind)
	assert.Equal(t, token.Position{Line: 0, Character: 0}, tok.Start)
	assert.Equal(t, token.Position{Line: 0, Character: 3}, tok.End)

	tok = l.NextToken()
	assert.Equal(t, token.NewParseError(
		token.Position{Line: 0, Character: 3},
		"numbers can only have one decimal point",
		token.Position{Line: 0, Character: 4},
	), tok.Kind)
	assert.Equal(t, token.Position{Line: 0, Character: 3}, tok.Start)
	assert.Equal(t, token.Position{Line: 0, Character: 4}, tok.End)
	assert.Nil(t, tok.LeadingTrivia)
	assert.Nil(t, tok.TrailingTrivia)

	tok = l.NextToken()
	assert.Equal(t, token.PlainNumber(".3"), tok.Kind)
	assert.True(t, l.NextToken().IsEOF())
}

func TestCommentAsLeadingTrivia(t *testing.T) {
	t.Parallel()

	l := New("--hi\nx")
	tok := l.NextToken()
	assert.Equal(t, token.Identifier("x"), tok.Kind)
	assert.Equal(t, []token.Trivia{token.SingleLineComment("--hi"), token.Spaces("\n")}, tok.LeadingTrivia)
	assert.Nil(t, tok.TrailingTrivia)
	assert.Equal(t, token.Position{Line: 1, Character: 0}, tok.Start)
	assert.Equal(t, token.Position{Line: 1, Character: 1}, tok.End)
	assert.True(t, l.NextToken().IsEOF())
}

func TestUnexpectedCharacter(t *testing.T) {
	t.Parallel()

	l := New("@")
	tok := l.NextToken()
	e, ok := tok.Kind.(token.ParseError)
	require.True(t, ok)
	assert.Equal(t, "unexpected character '@'", e.Message)
	assert.Equal(t, token.Position{Line: 0, Character: 0}, tok.Start)
	assert.Equal(t, token.Position{Line: 0, Character: 1}, tok.End)
	assert.Equal(t, tok.Start, e.Start)
	assert.Equal(t, tok.End, e.End)
	assert.True(t, l.NextToken().IsEOF())
}

func TestUnexpectedCharacterKeepsTrivia(t *testing.T) {
	t.Parallel()

	l := New("a @ b")
	assert.Equal(t, token.Identifier("a"), l.NextToken().Kind)

	tok := l.NextToken()
	require.Error(t, tok.Err())
	assert.Equal(t, []token.Trivia{token.Spaces(" ")}, tok.LeadingTrivia)
	assert.Equal(t, []token.Trivia{token.Spaces(" ")}, tok.TrailingTrivia)

	assert.Equal(t, token.Identifier("b"), l.NextToken().Kind)
	assert.True(t, l.NextToken().IsEOF())
}

func TestEndOfFileIsSticky(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "   ", "-- only a comment", "x"} {
		l := New(src)
		tok := l.NextToken()
		for !tok.IsEOF() {
			tok = l.NextToken()
		}
		for range 3 {
			tok := l.NextToken()
			assert.Equal(t, token.EmptyToken(token.EndOfFile{}), tok, "%q", src)
		}
	}
}

func TestEndOfFileLeadsWithRemainingTrivia(t *testing.T) {
	t.Parallel()

	l := New("-- header\n\n")
	tok := l.NextToken()
	assert.True(t, tok.IsEOF())
	assert.Equal(t, []token.Trivia{token.SingleLineComment("-- header"), token.Spaces("\n\n")}, tok.LeadingTrivia)
	assert.Nil(t, tok.TrailingTrivia)
	assert.Equal(t, token.MaxPosition, tok.Start)
	assert.Equal(t, token.MaxPosition, tok.End)

	// Only the first end of file token carries it.
	assert.Equal(t, token.EmptyToken(token.EndOfFile{}), l.NextToken())

	tokens := Tokenize("x -- tail")
	require.Len(t, tokens, 2)
	assert.Equal(t, tokens[0].TrailingTrivia, tokens[1].LeadingTrivia)
}

func TestTriviaSharing(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("local x = 1 -- c\n")
	require.Len(t, tokens, 5)

	assert.Equal(t, token.Local, tokens[0].Kind)
	assert.Nil(t, tokens[0].LeadingTrivia)
	assert.Equal(t, []token.Trivia{token.Spaces(" ")}, tokens[0].TrailingTrivia)
	assert.Equal(t, token.Position{Line: 0, Character: 0}, tokens[0].Start)
	assert.Equal(t, token.Position{Line: 0, Character: 5}, tokens[0].End)

	assert.Equal(t, token.Identifier("x"), tokens[1].Kind)
	assert.Equal(t, tokens[0].TrailingTrivia, tokens[1].LeadingTrivia)
	assert.Equal(t, token.Position{Line: 0, Character: 6}, tokens[1].Start)

	assert.Equal(t, token.Equal, tokens[2].Kind)
	assert.Equal(t, token.PlainNumber("1"), tokens[3].Kind)
	assert.Equal(t, []token.Trivia{
		token.Spaces(" "),
		token.SingleLineComment("-- c"),
		token.Spaces("\n"),
	}, tokens[3].TrailingTrivia)
	assert.Equal(t, token.Position{Line: 0, Character: 11}, tokens[3].End)

	assert.True(t, tokens[4].IsEOF())
}

func TestMultiLinePositions(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("a\n  [[x\ny]] é")
	require.Len(t, tokens, 4)

	assert.Equal(t, token.MultiLineString("[[x\ny]]"), tokens[1].Kind)
	assert.Equal(t, token.Position{Line: 1, Character: 2}, tokens[1].Start)
	assert.Equal(t, token.Position{Line: 2, Character: 3}, tokens[1].End)

	// Non-ASCII characters count as one column each.
	e, ok := tokens[2].Kind.(token.ParseError)
	require.True(t, ok)
	assert.Equal(t, "unexpected character 'é'", e.Message)
	assert.Equal(t, token.Position{Line: 2, Character: 4}, tokens[2].Start)
	assert.Equal(t, token.Position{Line: 2, Character: 5}, tokens[2].End)
}

func TestErrorOrdering(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("0b 'x\n1.2.3 [=x")
	assert.Equal(t, []string{
		`binary numbers must have at least one digit after "0b"`,
		`string must be single line, use \z here or close it with '`,
		"numbers can only have one decimal point",
		"missing `[` to open multi-line string",
		"malformed multi-line string",
	}, messagesOf(tokens))

	// Every diagnostic immediately follows the token whose scan raised it.
	var order []string
	for _, tok := range tokens {
		switch k := tok.Kind.(type) {
		case token.ParseError:
			order = append(order, "error")
		case token.EndOfFile:
			order = append(order, "eof")
		default:
			order = append(order, k.Text())
		}
	}
	assert.Equal(t, []string{
		"0b", "error",
		"'x", "error",
		"1.2", "error",
		".3",
		"[=x", "error", "error",
		"eof",
	}, order)
}

func TestDiagnosticsFromInitialTrivia(t *testing.T) {
	t.Parallel()

	l := New("--[[ never closed")
	tok := l.NextToken()
	e, ok := tok.Kind.(token.ParseError)
	require.True(t, ok)
	assert.Equal(t, "malformed multi-line comment", e.Message)
	assert.Equal(t, token.MinPosition, tok.Start)
	assert.Equal(t, token.Position{Line: 0, Character: 17}, tok.End)

	assert.True(t, l.NextToken().IsEOF())
}

func TestSaveAndSetState(t *testing.T) {
	t.Parallel()

	l := New("a b  c")
	assert.Equal(t, token.Identifier("a"), l.NextToken().Kind)

	saved := l.SaveState()
	assert.Equal(t, 2, saved.Offset())
	assert.Equal(t, token.Position{Line: 0, Character: 2}, saved.Position())
	assert.Equal(t, []token.Trivia{token.Spaces(" ")}, saved.PendingTrivia())

	b1 := l.NextToken()
	c1 := l.NextToken()
	assert.True(t, l.NextToken().IsEOF())

	l.SetState(saved)
	assert.Equal(t, b1, l.NextToken())
	assert.Equal(t, c1, l.NextToken())
	assert.True(t, l.NextToken().IsEOF())
}

func TestSetStateRestoresDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("rewind_before_malformed_token", func(t *testing.T) {
		t.Parallel()
		l := New("x 'oops")
		l.NextToken()
		saved := l.SaveState()
		assert.Empty(t, saved.PendingErrors())

		first := []token.Token{l.NextToken(), l.NextToken(), l.NextToken()}
		l.SetState(saved)
		second := []token.Token{l.NextToken(), l.NextToken(), l.NextToken()}

		assert.Equal(t, first, second)
		assert.Equal(t, []string{"missing ' to close string"}, messagesOf(second))
		assert.True(t, second[2].IsEOF())
	})

	t.Run("rewind_with_queued_diagnostic", func(t *testing.T) {
		t.Parallel()
		l := New("'oops")
		l.NextToken()
		saved := l.SaveState()
		require.Len(t, saved.PendingErrors(), 1)

		require.Error(t, l.NextToken().Err())
		assert.True(t, l.NextToken().IsEOF())

		l.SetState(saved)
		require.Error(t, l.NextToken().Err())
		assert.True(t, l.NextToken().IsEOF())
	})

	t.Run("snapshot_is_isolated", func(t *testing.T) {
		t.Parallel()
		l := New("1..")
		l.NextToken()
		saved := l.SaveState()
		pending := saved.PendingErrors()
		pending[0].Message = "changed"
		assert.Equal(t, "numbers can only have one decimal point", l.NextToken().Kind.(token.ParseError).Message)
	})
}

func TestAllStopsAtEndOfFile(t *testing.T) {
	t.Parallel()

	l := New("a b")
	var kinds []token.Kind
	for tok := range l.All() {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.Identifier("a"), token.Identifier("b"), token.EndOfFile{}}, kinds)

	// Breaking early leaves the rest for later calls.
	l = New("a b c")
	for tok := range l.All() {
		assert.Equal(t, token.Identifier("a"), tok.Kind)
		break
	}
	assert.Equal(t, token.Identifier("b"), l.NextToken().Kind)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "@@@", "'", "\"", "`", "[[", "[=", "[==[ ]=]", "--[[", "--[=",
		"0x", "0b", "1e", "1..2..3", "~", "~~~", "\\", "$!", "\x00\xff\xfe",
		"'\\", "'\\z", "'\\z\r\n", "[[\\]]", "....", "::::", "->->", "\r\r\n",
	}
	for _, src := range inputs {
		tokens := Tokenize(src)
		require.NotEmpty(t, tokens, "%q", src)
		assert.True(t, tokens[len(tokens)-1].IsEOF(), "%q", src)
		assert.LessOrEqual(t, len(tokens), 3*len(src)+1, "%q", src)
		for _, tok := range tokens[:len(tokens)-1] {
			assert.False(t, tok.IsEOF(), "%q: EOF before the end", src)
		}
	}
}

func TestWithStartPosition(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("x\ny", WithStartPosition(token.Position{Line: 10, Character: 4}))
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Position{Line: 10, Character: 4}, tokens[0].Start)
	assert.Equal(t, token.Position{Line: 10, Character: 5}, tokens[0].End)
	assert.Equal(t, token.Position{Line: 11, Character: 0}, tokens[1].Start)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l := New("'abc", WithLogger(logger))
	l.NextToken()
	assert.Contains(t, buf.String(), "lex diagnostic")
	assert.Contains(t, buf.String(), "missing ' to close string")

	l.SetState(l.SaveState())
	assert.Contains(t, buf.String(), "lexer state restored")

	// A nil logger keeps the default.
	assert.NotPanics(t, func() { Tokenize("'x", WithLogger(nil)) })
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	require.NoError(t, Diagnostics(Tokenize("local x = 1")))

	err := Diagnostics(Tokenize("@ 'x"))
	require.Error(t, err)
	require.ErrorIs(t, err, token.ErrSyntax)
	assert.Contains(t, err.Error(), "unexpected character '@'")
	assert.Contains(t, err.Error(), "missing ' to close string")
}

func TestSource(t *testing.T) {
	t.Parallel()

	src := "print('hi')"
	assert.Equal(t, src, New(src).Source())
	assert.True(t, slices.ContainsFunc(Tokenize(src), func(tok token.Token) bool {
		return tok.Kind == token.SingleQuotedString("'hi'")
	}))
}
