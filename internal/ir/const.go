package ir

import (
	"strconv"
	"strings"
)

// State is one bit of a constant.
type State uint8

const (
	S0 State = iota
	S1
	Sx // unknown
	Sz // high impedance
	Sa // don't care, written '-'
	Sm // marker used by some passes, written 'm'
)

func (s State) Byte() byte {
	switch s {
	case S0:
		return '0'
	case S1:
		return '1'
	case Sx:
		return 'x'
	case Sz:
		return 'z'
	case Sa:
		return '-'
	case Sm:
		return 'm'
	}
	return '?'
}

func (s State) String() string { return string(s.Byte()) }

// StateFromByte maps a value digit to its state; X, Z and M are accepted.
func StateFromByte(b byte) (State, bool) {
	switch b {
	case '0':
		return S0, true
	case '1':
		return S1, true
	case 'x', 'X':
		return Sx, true
	case 'z', 'Z':
		return Sz, true
	case '-':
		return Sa, true
	case 'm', 'M':
		return Sm, true
	}
	return 0, false
}

type ConstKind uint8

const (
	// ConstBits is a sized bit vector such as 4'10xz.
	ConstBits ConstKind = iota + 1
	// ConstInt is a plain decimal integer: 32 bits wide and signed.
	ConstInt
	// ConstString is a quoted string.
	ConstString
)

// IntWidth is the width of a plain integer constant.
const IntWidth = 32

// Const is a constant value. Exactly the field selected by Kind is meaningful.
type Const struct {
	Kind ConstKind
	Bits []State // most significant bit first
	Int  int32
	Str  string
}

// BitsConst builds a bit vector; states are given most significant first.
func BitsConst(states ...State) Const {
	if states == nil {
		states = []State{}
	}
	return Const{Kind: ConstBits, Bits: states}
}

func IntConst(v int32) Const { return Const{Kind: ConstInt, Int: v} }

func StringConst(s string) Const { return Const{Kind: ConstString, Str: s} }

// MustBits parses the digits part of a sized value ("10xz").
func MustBits(digits string) Const {
	states := make([]State, len(digits))
	for i := range len(digits) {
		s, ok := StateFromByte(digits[i])
		if !ok {
			panic("ir: bad bit digit " + strconv.QuoteRune(rune(digits[i])))
		}
		states[i] = s
	}
	return BitsConst(states...)
}

// Width is the number of bits the constant occupies.
func (c Const) Width() int {
	switch c.Kind {
	case ConstBits:
		return len(c.Bits)
	case ConstInt:
		return IntWidth
	case ConstString:
		return 8 * len(c.Str)
	}
	return 0
}

// Signed reports the default signedness: plain integers are signed.
func (c Const) Signed() bool {
	return c.Kind == ConstInt
}

// BitString renders bits most significant first, e.g. "10xz".
func (c Const) BitString() string {
	var b strings.Builder
	b.Grow(len(c.Bits))
	for _, s := range c.Bits {
		b.WriteByte(s.Byte())
	}
	return b.String()
}

// IsFullyDefined reports whether every bit is 0 or 1.
func (c Const) IsFullyDefined() bool {
	if c.Kind != ConstBits {
		return true
	}
	for _, s := range c.Bits {
		if s != S0 && s != S1 {
			return false
		}
	}
	return true
}

func (c Const) String() string {
	switch c.Kind {
	case ConstBits:
		return strconv.Itoa(len(c.Bits)) + "'" + c.BitString()
	case ConstInt:
		return strconv.FormatInt(int64(c.Int), 10)
	case ConstString:
		return strconv.Quote(c.Str)
	}
	return "<invalid const>"
}
