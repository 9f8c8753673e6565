package parser

import (
	"rtlil/internal/diag"
	"rtlil/internal/ir"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect: ожидаем конкретный токен, иначе ошибка с описанием найденного.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(k.Describe())
}

// fail дополняет ошибку кодом и позицией.
func (p *Parser) fail(e *Error) *Error {
	if e.Code == diag.UnknownCode {
		e.Code = defaultCode(e.Kind)
	}
	e.Path = p.file.Path
	e.Pos = p.file.Position(e.Span.Start)
	return e
}

// unexpected описывает текущий токен как ошибку: EOF, Invalid или просто не тот.
func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	switch tok.Kind {
	case token.EOF:
		return p.fail(&Error{
			Kind:     UnexpectedEndOfInput,
			Expected: expected,
			Found:    tok.Quote(),
			Span:     tok.Span,
		})
	case token.Invalid:
		return p.invalidToken(tok, expected)
	}
	return p.fail(&Error{
		Kind:     UnexpectedToken,
		Expected: expected,
		Found:    tok.Quote(),
		Span:     tok.Span,
	})
}

// invalidToken explains an Invalid token with the lexer's diagnostic for it.
func (p *Parser) invalidToken(tok token.Token, expected string) error {
	d, ok := p.lexErrs[tok.Span.Start]
	if !ok || d.Code == diag.LexUnknownChar {
		e := &Error{Kind: UnexpectedToken, Expected: expected, Found: tok.Quote(), Span: tok.Span}
		if ok {
			e.Code = d.Code
		}
		return p.fail(e)
	}
	return p.fail(&Error{
		Kind:     MalformedLiteral,
		Code:     d.Code,
		Literal:  literalKind(d.Code),
		Fragment: tok.Text,
		Reason:   d.Message,
		Span:     tok.Span,
	})
}

func (p *Parser) malformed(tok token.Token, literal string, code diag.Code, reason string) error {
	return p.fail(&Error{
		Kind:     MalformedLiteral,
		Code:     code,
		Literal:  literal,
		Fragment: tok.Text,
		Reason:   reason,
		Span:     tok.Span,
	})
}

// declare registers name in category; a second declaration is DuplicateName.
func (p *Parser) declare(category string, name ir.Ident, sp source.Span) error {
	key := declKey{category: category, name: name}
	if prev, ok := p.decls[key]; ok {
		return p.fail(&Error{
			Kind:     DuplicateName,
			Category: category,
			Name:     name.String(),
			Span:     sp,
			Prev:     prev,
		})
	}
	p.decls[key] = sp
	return nil
}

// clearScope forgets every name of the given categories.
func (p *Parser) clearScope(categories ...string) {
	for key := range p.decls {
		for _, c := range categories {
			if key.category == c {
				delete(p.decls, key)
				break
			}
		}
	}
}

func (p *Parser) checkDepth(depth int, sp source.Span) error {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return p.fail(&Error{Kind: NestingTooDeep, Limit: p.opts.MaxDepth, Span: sp})
	}
	return nil
}
