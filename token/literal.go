package token

// Literal is a number, string or boolean literal.
type Literal interface {
	Kind
	literal()
}

// NumberLiteral is one of [PlainNumber], [BinaryNumber] or [HexNumber]. The
// stored text is the literal exactly as written, radix prefix included; it is
// never converted to a numeric value.
type NumberLiteral interface {
	Literal
	number()
}

// StringLiteral is one of [SingleQuotedString], [DoubleQuotedString],
// [BacktickString] or [MultiLineString]. The stored text includes the
// delimiters and leaves escape sequences untouched.
type StringLiteral interface {
	Literal
	str()
}

type (
	// PlainNumber is a decimal number such as 1, 1.5, .5, 1_000 or 1e10.
	PlainNumber string
	// BinaryNumber is a number such as 0b1010.
	BinaryNumber string
	// HexNumber is a number such as 0xFF.
	HexNumber string
)

type (
	// SingleQuotedString is a 'string'.
	SingleQuotedString string
	// DoubleQuotedString is a "string".
	DoubleQuotedString string
	// BacktickString is an `interpolated string`.
	BacktickString string
	// MultiLineString is a [[string]] or [==[string]==].
	MultiLineString string
)

// Boolean is the literal true or false.
type Boolean bool

func (n PlainNumber) Text() string  { return string(n) }
func (n BinaryNumber) Text() string { return string(n) }
func (n HexNumber) Text() string    { return string(n) }

func (s SingleQuotedString) Text() string { return string(s) }
func (s DoubleQuotedString) Text() string { return string(s) }
func (s BacktickString) Text() string     { return string(s) }
func (s MultiLineString) Text() string    { return string(s) }

// Text returns "true" or "false".
func (b Boolean) Text() string {
	if b {
		return "true"
	}
	return "false"
}

func (PlainNumber) kind()    {}
func (PlainNumber) literal() {}
func (PlainNumber) number()  {}

func (BinaryNumber) kind()    {}
func (BinaryNumber) literal() {}
func (BinaryNumber) number()  {}

func (HexNumber) kind()    {}
func (HexNumber) literal() {}
func (HexNumber) number()  {}

func (SingleQuotedString) kind()    {}
func (SingleQuotedString) literal() {}
func (SingleQuotedString) str()     {}

func (DoubleQuotedString) kind()    {}
func (DoubleQuotedString) literal() {}
func (DoubleQuotedString) str()     {}

func (BacktickString) kind()    {}
func (BacktickString) literal() {}
func (BacktickString) str()     {}

func (MultiLineString) kind()    {}
func (MultiLineString) literal() {}
func (MultiLineString) str()     {}

func (Boolean) kind()    {}
func (Boolean) literal() {}
