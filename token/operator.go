package token

import "fmt"

// Operator is an arithmetic, comparison, length, concatenation or logical
// operator.
type Operator uint8

const (
	Plus           Operator = iota // +
	Minus                          // -
	Division                       // /
	FloorDivision                  // //
	Multiplication                 // *
	Modulo                         // %
	Exponentiation                 // ^
	Concatenation                  // ..
	NotEqual                       // ~=
	Length                         // #
	And                            // and
	Or                             // or
	Not                            // not
)

var operatorNames = [...]string{
	Plus:           "+",
	Minus:          "-",
	Division:       "/",
	FloorDivision:  "//",
	Multiplication: "*",
	Modulo:         "%",
	Exponentiation: "^",
	Concatenation:  "..",
	NotEqual:       "~=",
	Length:         "#",
	And:            "and",
	Or:             "or",
	Not:            "not",
}

var operators = reverse(operatorNames[:], func(i int) Operator { return Operator(i) })

// LookupOperator returns the operator spelled s.
func LookupOperator(s string) (Operator, bool) {
	op, ok := operators[s]
	return op, ok
}

// LookupWordOperator returns the operator spelled by the word w: and, or or
// not.
func LookupWordOperator(w string) (Operator, bool) {
	switch w {
	case "and":
		return And, true
	case "or":
		return Or, true
	case "not":
		return Not, true
	}
	return 0, false
}

// OperatorFromRunes returns the operator starting with r, given the rune
// that follows it. Only "//" and "~=" need next.
func OperatorFromRunes(r, next rune) (Operator, bool) {
	switch r {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '/':
		if next == '/' {
			return FloorDivision, true
		}
		return Division, true
	case '*':
		return Multiplication, true
	case '%':
		return Modulo, true
	case '^':
		return Exponentiation, true
	case '~':
		if next == '=' {
			return NotEqual, true
		}
	case '#':
		return Length, true
	}
	return 0, false
}

// String returns the spelling of op.
func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return fmt.Sprintf("Operator(%d)", op)
}

// Text returns the spelling of op.
func (op Operator) Text() string { return op.String() }

func (Operator) kind() {}

// CompoundOperator is an operator of two or more characters ending in "=".
type CompoundOperator uint8

const (
	PlusEqual            CompoundOperator = iota // +=
	MinusEqual                                   // -=
	DivisionEqual                                // /=
	FloorDivisionEqual                           // //=
	MultiplicationEqual                          // *=
	ModuloEqual                                  // %=
	ExponentiationEqual                          // ^=
	ConcatenationEqual                           // ..=
	EqualEqual                                   // ==
	LessThanOrEqualTo                            // <=
	GreaterThanOrEqualTo                         // >=
)

var compoundOperatorNames = [...]string{
	PlusEqual:            "+=",
	MinusEqual:           "-=",
	DivisionEqual:        "/=",
	FloorDivisionEqual:   "//=",
	MultiplicationEqual:  "*=",
	ModuloEqual:          "%=",
	ExponentiationEqual:  "^=",
	ConcatenationEqual:   "..=",
	EqualEqual:           "==",
	LessThanOrEqualTo:    "<=",
	GreaterThanOrEqualTo: ">=",
}

var compoundOperators = reverse(compoundOperatorNames[:], func(i int) CompoundOperator { return CompoundOperator(i) })

// LookupCompoundOperator returns the compound operator spelled s.
func LookupCompoundOperator(s string) (CompoundOperator, bool) {
	op, ok := compoundOperators[s]
	return op, ok
}

// CompoundOf returns the compound form of op, such as += for +, if op has
// one and next is '='.
func CompoundOf(op Operator, next rune) (CompoundOperator, bool) {
	if next != '=' {
		return 0, false
	}
	switch op {
	case Plus:
		return PlusEqual, true
	case Minus:
		return MinusEqual, true
	case Division:
		return DivisionEqual, true
	case FloorDivision:
		return FloorDivisionEqual, true
	case Multiplication:
		return MultiplicationEqual, true
	case Modulo:
		return ModuloEqual, true
	case Exponentiation:
		return ExponentiationEqual, true
	case Concatenation:
		return ConcatenationEqual, true
	}
	return 0, false
}

// String returns the spelling of op.
func (op CompoundOperator) String() string {
	if int(op) < len(compoundOperatorNames) {
		return compoundOperatorNames[op]
	}
	return fmt.Sprintf("CompoundOperator(%d)", op)
}

// Text returns the spelling of op.
func (op CompoundOperator) Text() string { return op.String() }

func (CompoundOperator) kind() {}
