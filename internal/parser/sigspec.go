package parser

import (
	"fmt"

	"rtlil/internal/ir"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

// concatFrame is an open '{' waiting for its parts.
type concatFrame struct {
	parts []ir.SigSpec
	open  source.Span
}

// parseSigSpec reads one signal specification:
//
//	<const> | <id> | <id> [<hi>:<lo>] | <id> [<bit>] | { <sigspec>* }
//
// Concatenations are handled with an explicit stack, so nesting depth is
// limited by Options.MaxDepth and memory, never by the goroutine stack.
func (p *Parser) parseSigSpec(what string) (ir.SigSpec, error) {
	var stack []concatFrame
	for {
		tok := p.peek()
		var item ir.SigSpec

		switch {
		case tok.Kind == token.LBrace:
			p.advance()
			if err := p.checkDepth(len(stack)+1, tok.Span); err != nil {
				return nil, err
			}
			stack = append(stack, concatFrame{parts: []ir.SigSpec{}, open: tok.Span})
			continue

		case tok.Kind == token.RBrace && len(stack) > 0:
			p.advance()
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			item = &ir.Concat{Parts: top.parts}

		case tok.IsIdent() || tok.IsLiteral():
			var err error
			if item, err = p.parseSigLeaf(); err != nil {
				return nil, err
			}

		default:
			if len(stack) > 0 {
				return nil, p.unexpected("signal or '}'")
			}
			return nil, p.unexpected(what)
		}

		if len(stack) == 0 {
			return item, nil
		}
		top := &stack[len(stack)-1]
		top.parts = append(top.parts, item)
	}
}

func (p *Parser) parseSigLeaf() (ir.SigSpec, error) {
	tok := p.peek()
	if tok.IsLiteral() {
		c, err := p.parseConst("constant")
		if err != nil {
			return nil, err
		}
		return &ir.ConstSig{Value: c}, nil
	}

	name, _, err := p.parseIdent("wire name")
	if err != nil {
		return nil, err
	}
	ref := &ir.WireRef{Name: name}
	if p.at(token.LBracket) {
		r, err := p.parseBitRange()
		if err != nil {
			return nil, err
		}
		ref.Range = r
	}
	return ref, nil
}

// parseBitRange: [<hi>:<lo>] or [<bit>], indices non-negative and hi >= lo.
func (p *Parser) parseBitRange() (*ir.BitRange, error) {
	open, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}

	hi, err := p.rangeIndex(open.Span)
	if err != nil {
		return nil, err
	}
	r := &ir.BitRange{Hi: hi, Lo: hi, Single: true}

	if p.at(token.Colon) {
		p.advance()
		lo, err := p.rangeIndex(open.Span)
		if err != nil {
			return nil, err
		}
		r.Lo = lo
		r.Single = false
	}

	closeTok := p.peek()
	if closeTok.Kind != token.RBracket {
		if closeTok.Kind == token.EOF {
			return nil, p.unexpected("']'")
		}
		return nil, p.badRange(open.Span.Cover(closeTok.Span), "expected ']'")
	}
	p.advance()

	whole := open.Span.Cover(closeTok.Span)
	if !r.Single && r.Hi < r.Lo {
		return nil, p.badRange(whole, fmt.Sprintf("high index %d is below low index %d", r.Hi, r.Lo))
	}
	return r, nil
}

// rangeIndex reads one index of a bit range; anything but a non-negative
// integer is an InvalidBitRange covering the fragment read so far.
func (p *Parser) rangeIndex(open source.Span) (int, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
	case token.EOF:
		return 0, p.unexpected("bit index")
	default:
		return 0, p.badRange(open.Cover(tok.Span), "index is not an integer")
	}
	n, _, err := p.parseInt("bit index")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, p.badRange(open.Cover(tok.Span), "index is negative")
	}
	return n, nil
}

func (p *Parser) badRange(sp source.Span, reason string) error {
	return p.fail(&Error{
		Kind:     InvalidBitRange,
		Fragment: p.file.Text(sp),
		Reason:   reason,
		Span:     sp,
	})
}
