package lexer

import (
	"rtlil/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - '#' до конца строки -> TriviaComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		kind := token.TriviaSpace

		switch b := lx.cursor.Peek(); b {
		case ' ', '\t', '\r', '\v', '\f':
			lx.cursor.EatWhile(func(c byte) bool {
				return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
			})
		case '\n':
			lx.cursor.EatWhile(func(c byte) bool { return c == '\n' })
			kind = token.TriviaNewline
		case '#':
			lx.cursor.EatWhile(func(c byte) bool { return c != '\n' })
			kind = token.TriviaComment
		default:
			return
		}

		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: kind,
			Span: sp,
			Text: lx.text(sp),
		})
	}
}
