package lexer

import (
	"errors"
	"strings"

	"rtlil/internal/diag"
	"rtlil/internal/token"
)

// scanString сканирует "..." вместе с escape-последовательностями.
// Содержимое декодирует Unquote; здесь проверяется только закрывающая кавычка.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			if _, err := Unquote(text); err != nil {
				lx.errLex(diag.LexBadEscape, sp, err.Error())
				return token.Token{Kind: token.Invalid, Span: sp, Text: text}
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: text}
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if lx.cursor.Peek() == '\n' {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			lx.cursor.Bump()
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

var (
	errOctalRange    = errors.New("octal escape out of byte range")
	errEscapeNewline = errors.New("escape before a line break")
)

// Unquote decodes a string literal including its quotes.
// Escapes: \n, \t, up to three octal digits, and \c for any other c
// except a line break.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", errors.New("string literal must be quoted")
	}
	body := lit[1 : len(lit)-1]
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("escape at end of string literal")
		}
		switch c = body[i]; {
		case c == 'n':
			b.WriteByte('\n')
		case c == 't':
			b.WriteByte('\t')
		case c == '\n':
			return "", errEscapeNewline
		case isOctal(c):
			v := 0
			j := i
			for j < len(body) && j < i+3 && isOctal(body[j]) {
				v = v*8 + int(body[j]-'0')
				j++
			}
			if v > 0xff {
				return "", errOctalRange
			}
			b.WriteByte(byte(v))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
