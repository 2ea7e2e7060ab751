package token

import (
	"cmp"
	"fmt"
	"math"
)

// Position is a zero-based line/character coordinate in the source text.
// Character counts runes, not bytes.
type Position struct {
	Line      uint32
	Character uint32
}

var (
	// MinPosition is the smallest representable position.
	MinPosition = Position{}
	// MaxPosition is the largest representable position. It marks tokens
	// that have no location in the source, such as [EndOfFile].
	MaxPosition = Position{Line: math.MaxUint32, Character: math.MaxUint32}
)

// Offset returns p moved by lines and characters. Both components saturate
// at 0 and math.MaxUint32 instead of wrapping. When moving to a new line,
// reset the character with [Position.WithCharacter] first.
func (p Position) Offset(lines, characters int32) Position {
	return Position{
		Line:      saturatingAdd(p.Line, lines),
		Character: saturatingAdd(p.Character, characters),
	}
}

// WithLine returns p with its line replaced.
func (p Position) WithLine(line uint32) Position {
	p.Line = line
	return p
}

// WithCharacter returns p with its character replaced.
func (p Position) WithCharacter(character uint32) Position {
	p.Character = character
	return p
}

// IsAfter reports whether p is after or at other.
func (p Position) IsAfter(other Position) bool {
	return p.Line > other.Line ||
		p.Line == other.Line && p.Character >= other.Character
}

// IsBefore reports whether p is before or at other.
func (p Position) IsBefore(other Position) bool {
	return p.Line < other.Line ||
		p.Line == other.Line && p.Character <= other.Character
}

// IsInBounds reports whether p lies within [start, end]. Both bounds are
// inclusive: a position equal to start or end is in bounds.
func (p Position) IsInBounds(start, end Position) bool {
	return p.IsAfter(start) && p.IsBefore(end)
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to,
// or after other. Unlike IsAfter and IsBefore it is a strict total order.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Character, other.Character)
}

// String formats p as "line:character".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

func saturatingAdd(v uint32, delta int32) uint32 {
	sum := int64(v) + int64(delta)
	switch {
	case sum < 0:
		return 0
	case sum > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(sum)
	}
}
