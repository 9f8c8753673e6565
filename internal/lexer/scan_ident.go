package lexer

import (
	"rtlil/internal/diag"
	"rtlil/internal/token"
)

// scanIdent сканирует \name или $name: маркер и все байты до пробела.
// Token.Text сохраняет маркер.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	marker := lx.cursor.Bump()

	if lx.cursor.EatWhile(isIdentByte) == 0 {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadIdentifier, sp, "identifier '"+string(marker)+"' has no name")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	kind := token.PublicID
	if marker == '$' {
		kind = token.AutoID
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanWord сканирует голое слово и проверяет его через LookupKeyword.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.EatWhile(isWordContinue)
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Word, Span: sp, Text: text}
}
