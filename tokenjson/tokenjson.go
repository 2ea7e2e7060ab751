// Package tokenjson encodes Luau token streams as JSON and decodes them
// back.
//
// Each token becomes an object with a "kind" tag, its source "text", its
// positions and its trivia. Decoding an encoded stream yields tokens equal
// to the originals.
package tokenjson

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"

	"github.com/msix29/luau-lexer/token"
)

// Sentinel errors.
var (
	// ErrEncode is returned when a token stream cannot be encoded.
	ErrEncode = errors.New("tokenjson: encode error")
	// ErrDecode is returned when JSON input is not a valid token stream.
	ErrDecode = errors.New("tokenjson: decode error")
)

// Kind tags.
const (
	KindError              = "error"
	KindPlainNumber        = "number.plain"
	KindBinaryNumber       = "number.binary"
	KindHexNumber          = "number.hex"
	KindSingleQuotedString = "string.single"
	KindDoubleQuotedString = "string.double"
	KindBacktickString     = "string.backtick"
	KindMultiLineString    = "string.multiline"
	KindBoolean            = "boolean"
	KindIdentifier         = "identifier"
	KindSingleLineComment  = "comment.single"
	KindMultiLineComment   = "comment.multiline"
	KindKeyword            = "keyword"
	KindPartialKeyword     = "partial_keyword"
	KindSymbol             = "symbol"
	KindOperator           = "operator"
	KindCompoundOperator   = "compound_operator"
	KindEndOfFile          = "eof"
	KindSpaces             = "spaces"
)

type wirePosition struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

type wireError struct {
	Message string        `json:"message"`
	Start   wirePosition  `json:"start"`
	End     *wirePosition `json:"end,omitempty"`
}

type wireTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type wireToken struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitzero"`
	Error    *wireError   `json:"error,omitempty"`
	Start    wirePosition `json:"start"`
	End      wirePosition `json:"end"`
	Leading  []wireTrivia `json:"leading_trivia,omitempty"`
	Trailing []wireTrivia `json:"trailing_trivia,omitempty"`
}

// Marshal encodes tokens as a JSON array.
func Marshal(tokens []token.Token, opts ...json.Options) ([]byte, error) {
	wire, err := toWire(tokens)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(wire, opts...)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return out, nil
}

// Encode writes tokens to w as a JSON array.
func Encode(w io.Writer, tokens []token.Token, opts ...json.Options) error {
	wire, err := toWire(tokens)
	if err != nil {
		return err
	}
	if err := json.MarshalWrite(w, wire, opts...); err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

// Unmarshal decodes a JSON array produced by [Marshal].
func Unmarshal(data []byte, opts ...json.Options) ([]token.Token, error) {
	var wire []wireToken
	if err := json.Unmarshal(data, &wire, opts...); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	tokens := make([]token.Token, 0, len(wire))
	for i := range wire {
		tok, err := fromWireToken(&wire[i])
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func toWire(tokens []token.Token) ([]wireToken, error) {
	wire := make([]wireToken, 0, len(tokens))
	for i, tok := range tokens {
		w, err := toWireToken(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %w", ErrEncode, i, err)
		}
		wire = append(wire, w)
	}
	return wire, nil
}

func toWireToken(tok token.Token) (wireToken, error) {
	tag, err := kindTag(tok.Kind)
	if err != nil {
		return wireToken{}, err
	}
	w := wireToken{
		Kind:  tag,
		Text:  tok.Text(),
		Start: wirePos(tok.Start),
		End:   wirePos(tok.End),
	}
	if e, ok := tok.Kind.(token.ParseError); ok {
		w.Error = &wireError{Message: e.Message, Start: wirePos(e.Start)}
		if e.HasEnd {
			end := wirePos(e.End)
			w.Error.End = &end
		}
	}
	if w.Leading, err = wireTrivias(tok.LeadingTrivia); err != nil {
		return wireToken{}, err
	}
	if w.Trailing, err = wireTrivias(tok.TrailingTrivia); err != nil {
		return wireToken{}, err
	}
	return w, nil
}

func kindTag(k token.Kind) (string, error) {
	switch k.(type) {
	case token.ParseError:
		return KindError, nil
	case token.PlainNumber:
		return KindPlainNumber, nil
	case token.BinaryNumber:
		return KindBinaryNumber, nil
	case token.HexNumber:
		return KindHexNumber, nil
	case token.SingleQuotedString:
		return KindSingleQuotedString, nil
	case token.DoubleQuotedString:
		return KindDoubleQuotedString, nil
	case token.BacktickString:
		return KindBacktickString, nil
	case token.MultiLineString:
		return KindMultiLineString, nil
	case token.Boolean:
		return KindBoolean, nil
	case token.Identifier:
		return KindIdentifier, nil
	case token.SingleLineComment:
		return KindSingleLineComment, nil
	case token.MultiLineComment:
		return KindMultiLineComment, nil
	case token.Keyword:
		return KindKeyword, nil
	case token.PartialKeyword:
		return KindPartialKeyword, nil
	case token.Symbol:
		return KindSymbol, nil
	case token.Operator:
		return KindOperator, nil
	case token.CompoundOperator:
		return KindCompoundOperator, nil
	case token.EndOfFile:
		return KindEndOfFile, nil
	}
	return "", fmt.Errorf("unsupported kind %T", k)
}

func wireTrivias(trivia []token.Trivia) ([]wireTrivia, error) {
	if len(trivia) == 0 {
		return nil, nil
	}
	out := make([]wireTrivia, 0, len(trivia))
	for _, tr := range trivia {
		var tag string
		switch tr.(type) {
		case token.Spaces:
			tag = KindSpaces
		case token.SingleLineComment:
			tag = KindSingleLineComment
		case token.MultiLineComment:
			tag = KindMultiLineComment
		default:
			return nil, fmt.Errorf("unsupported trivia %T", tr)
		}
		out = append(out, wireTrivia{Kind: tag, Text: tr.Text()})
	}
	return out, nil
}

func fromWireToken(w *wireToken) (token.Token, error) {
	k, err := decodeKind(w)
	if err != nil {
		return token.Token{}, err
	}
	leading, err := fromWireTrivias(w.Leading)
	if err != nil {
		return token.Token{}, err
	}
	trailing, err := fromWireTrivias(w.Trailing)
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{
		Start:          w.Start.position(),
		LeadingTrivia:  leading,
		Kind:           k,
		TrailingTrivia: trailing,
		End:            w.End.position(),
	}, nil
}

func decodeKind(w *wireToken) (token.Kind, error) {
	switch w.Kind {
	case KindError:
		if w.Error == nil {
			return nil, fmt.Errorf("%w: error token without error object", ErrDecode)
		}
		e := token.NewPointError(w.Error.Start.position(), w.Error.Message)
		if w.Error.End != nil {
			e.End, e.HasEnd = w.Error.End.position(), true
		}
		return e, nil
	case KindPlainNumber:
		return token.PlainNumber(w.Text), nil
	case KindBinaryNumber:
		return token.BinaryNumber(w.Text), nil
	case KindHexNumber:
		return token.HexNumber(w.Text), nil
	case KindSingleQuotedString:
		return token.SingleQuotedString(w.Text), nil
	case KindDoubleQuotedString:
		return token.DoubleQuotedString(w.Text), nil
	case KindBacktickString:
		return token.BacktickString(w.Text), nil
	case KindMultiLineString:
		return token.MultiLineString(w.Text), nil
	case KindBoolean:
		switch w.Text {
		case "true":
			return token.Boolean(true), nil
		case "false":
			return token.Boolean(false), nil
		}
	case KindIdentifier:
		return token.Identifier(w.Text), nil
	case KindSingleLineComment:
		return token.SingleLineComment(w.Text), nil
	case KindMultiLineComment:
		return token.MultiLineComment(w.Text), nil
	case KindKeyword:
		if kw, ok := token.LookupKeyword(w.Text); ok {
			return kw, nil
		}
	case KindPartialKeyword:
		if kw, ok := token.LookupPartialKeyword(w.Text); ok {
			return kw, nil
		}
	case KindSymbol:
		if sym, ok := token.LookupSymbol(w.Text); ok {
			return sym, nil
		}
	case KindOperator:
		if op, ok := token.LookupOperator(w.Text); ok {
			return op, nil
		}
	case KindCompoundOperator:
		if op, ok := token.LookupCompoundOperator(w.Text); ok {
			return op, nil
		}
	case KindEndOfFile:
		return token.EndOfFile{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrDecode, w.Kind)
	}
	return nil, fmt.Errorf("%w: invalid %s %q", ErrDecode, w.Kind, w.Text)
}

func fromWireTrivias(wire []wireTrivia) ([]token.Trivia, error) {
	if len(wire) == 0 {
		return nil, nil
	}
	out := make([]token.Trivia, 0, len(wire))
	for _, w := range wire {
		switch w.Kind {
		case KindSpaces:
			out = append(out, token.Spaces(w.Text))
		case KindSingleLineComment:
			out = append(out, token.SingleLineComment(w.Text))
		case KindMultiLineComment:
			out = append(out, token.MultiLineComment(w.Text))
		default:
			return nil, fmt.Errorf("%w: unknown trivia kind %q", ErrDecode, w.Kind)
		}
	}
	return out, nil
}

func wirePos(p token.Position) wirePosition {
	return wirePosition{Line: p.Line, Character: p.Character}
}

func (p wirePosition) position() token.Position {
	return token.Position{Line: p.Line, Character: p.Character}
}
