package lexer

import (
	"rtlil/internal/diag"
	"rtlil/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: ошибки не сообщаются, Invalid токены всё равно выдаются
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
