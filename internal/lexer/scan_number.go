package lexer

import (
	"rtlil/internal/token"
)

// scanNumber сканирует -?[0-9]+ (IntLit) или [0-9]+'[01xzm-]* (ValueLit).
// Ширина и диапазон проверяются парсером: здесь только форма.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	negative := lx.cursor.Eat('-')
	lx.cursor.EatWhile(isDec)

	if !negative && lx.cursor.Eat('\'') {
		lx.cursor.EatWhile(isBitChar)
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.ValueLit, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
}
