package lexer

import (
	"rtlil/internal/source"
	"rtlil/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// trivia перед EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\\' || ch == '$':
		tok = lx.scanIdent()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '-' && lx.isNumberAfterMinus():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case isWordStart(ch):
		tok = lx.scanWord()

	default:
		tok = lx.scanPunct()
	}

	if len(lx.hold) > 0 {
		tok.Leading = lx.hold
		lx.hold = nil
	}
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
