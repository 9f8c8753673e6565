package lexer

import (
	"fmt"

	"rtlil/internal/diag"
	"rtlil/internal/token"
)

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	var kind token.Kind
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	default:
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		text := lx.text(sp)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", text))
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
