package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// bumpRune перемещает курсор на размер текущей руны (минимум один байт).
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.limit()])
	usz, err := safecast.Conv[uint32](max(sz, 1))
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

func isDec(b byte) bool   { return b >= '0' && b <= '9' }
func isOctal(b byte) bool { return b >= '0' && b <= '7' }

// isIdentByte: identifiers run to the next whitespace or control byte.
func isIdentByte(b byte) bool { return b > ' ' && b != 0x7f }

func isWordStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isWordContinue(b byte) bool {
	return isWordStart(b) || isDec(b) || b == '.'
}

// isBitChar accepts the digits of a sized value; X and Z are the upper-case
// spellings of x and z.
func isBitChar(b byte) bool {
	switch b {
	case '0', '1', 'x', 'z', 'm', '-', 'X', 'Z', 'M':
		return true
	default:
		return false
	}
}

func (lx *Lexer) isNumberAfterMinus() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '-' && isDec(b1)
}
