package emit

import (
	"strconv"
	"strings"

	"rtlil/internal/ir"
)

// Const renders a constant the way the lexer reads it back.
func Const(c ir.Const) string {
	switch c.Kind {
	case ir.ConstBits:
		return strconv.Itoa(len(c.Bits)) + "'" + c.BitString()
	case ir.ConstInt:
		return strconv.FormatInt(int64(c.Int), 10)
	case ir.ConstString:
		return Quote(c.Str)
	}
	return "0'"
}

// Quote escapes s as an RTLIL string literal: \n, \t, \", \\ and octal
// escapes for the remaining control bytes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			b.WriteByte('\\')
			b.WriteByte('0' + c>>6)
			b.WriteByte('0' + (c>>3)&7)
			b.WriteByte('0' + c&7)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// SigSpec renders a signal specification. Concatenations are written with an
// explicit stack.
func SigSpec(s ir.SigSpec) string {
	type item struct {
		sig   ir.SigSpec
		lead  bool // part of a concatenation: separated by a space
		close bool
	}
	var b strings.Builder
	stack := []item{{sig: s}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.close {
			b.WriteString(" }")
			continue
		}
		if it.lead {
			b.WriteByte(' ')
		}
		switch v := it.sig.(type) {
		case *ir.WireRef:
			b.WriteString(v.Name.String())
			if r := v.Range; r != nil {
				b.WriteString(" [" + strconv.Itoa(r.Hi))
				if !r.Single {
					b.WriteString(":" + strconv.Itoa(r.Lo))
				}
				b.WriteString("]")
			}
		case *ir.ConstSig:
			b.WriteString(Const(v.Value))
		case *ir.Concat:
			b.WriteString("{")
			stack = append(stack, item{close: true})
			for i := len(v.Parts) - 1; i >= 0; i-- {
				stack = append(stack, item{sig: v.Parts[i], lead: true})
			}
		}
	}
	return b.String()
}
