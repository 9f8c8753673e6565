package parser

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"rtlil/internal/diag"
	"rtlil/internal/ir"
	"rtlil/internal/lexer"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

// maxValueWidth bounds the bit count a sized value may declare.
const maxValueWidth = 1 << 24

func (p *Parser) parseIdent(what string) (ir.Ident, source.Span, error) {
	tok := p.peek()
	var kind ir.IdentKind
	switch tok.Kind {
	case token.PublicID:
		kind = ir.Public
	case token.AutoID:
		kind = ir.AutoGenerated
	default:
		return ir.Ident{}, tok.Span, p.unexpected(what)
	}
	p.advance()
	return ir.NewIdent(kind, tok.Text[1:]), tok.Span, nil
}

// parseInt reads a 32-bit signed decimal integer.
func (p *Parser) parseInt(what string) (int, source.Span, error) {
	tok := p.peek()
	if tok.Kind != token.IntLit {
		return 0, tok.Span, p.unexpected(what)
	}
	p.advance()
	v, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return 0, tok.Span, p.malformed(tok, "integer", diag.LexBadNumber, "does not fit in 32 bits")
	}
	return int(v), tok.Span, nil
}

// parseNonNegative is parseInt for sizes and port numbers.
func (p *Parser) parseNonNegative(what string) (int, error) {
	tok := p.peek()
	n, _, err := p.parseInt(what)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, p.malformed(tok, "integer", diag.LexBadNumber, what+" must not be negative")
	}
	return n, nil
}

func (p *Parser) parseConst(what string) (ir.Const, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		n, _, err := p.parseInt(what)
		if err != nil {
			return ir.Const{}, err
		}
		v, err := safecast.Conv[int32](n)
		if err != nil {
			return ir.Const{}, p.malformed(tok, "integer", diag.LexBadNumber, "does not fit in 32 bits")
		}
		return ir.IntConst(v), nil

	case token.ValueLit:
		p.advance()
		bits, err := decodeValue(tok.Text)
		if err != nil {
			return ir.Const{}, p.malformed(tok, "value", diag.LexBadValue, err.Error())
		}
		return ir.BitsConst(bits...), nil

	case token.StringLit:
		p.advance()
		s, err := lexer.Unquote(tok.Text)
		if err != nil {
			return ir.Const{}, p.malformed(tok, "string", diag.LexBadEscape, err.Error())
		}
		return ir.StringConst(s), nil
	}
	return ir.Const{}, p.unexpected(what)
}

// decodeValue turns "<width>'<digits>" into states, most significant first.
// The digit count must equal the width; a single digit fills the whole width.
func decodeValue(text string) ([]ir.State, error) {
	tick := strings.IndexByte(text, '\'')
	if tick <= 0 {
		return nil, fmt.Errorf("missing width")
	}
	width, err := strconv.Atoi(text[:tick])
	if err != nil || width > maxValueWidth {
		return nil, fmt.Errorf("width %s is too large", text[:tick])
	}
	digits := text[tick+1:]

	switch {
	case len(digits) == width:
	case len(digits) == 1 && width > 0:
	default:
		return nil, fmt.Errorf("%d bits given for width %d", len(digits), width)
	}

	states := make([]ir.State, width)
	if len(digits) != width {
		s, ok := ir.StateFromByte(digits[0])
		if !ok {
			return nil, fmt.Errorf("bad bit %q", digits[0])
		}
		for i := range states {
			states[i] = s
		}
		return states, nil
	}
	for i := range width {
		s, ok := ir.StateFromByte(digits[i])
		if !ok {
			return nil, fmt.Errorf("bad bit %q", digits[i])
		}
		states[i] = s
	}
	return states, nil
}
