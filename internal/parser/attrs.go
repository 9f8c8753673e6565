package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

// pendingAttrs collects attribute lines until the next object takes them.
type pendingAttrs struct {
	list  ir.Attrs
	spans []source.Span
}

// parseAttribute: attribute <id> <const>
func (p *Parser) parseAttribute() error {
	if _, err := p.expect(token.KwAttribute); err != nil {
		return err
	}
	name, sp, err := p.parseIdent("attribute name")
	if err != nil {
		return err
	}
	for i, at := range p.attrs.list {
		if at.Name == name {
			return p.fail(&Error{
				Kind:     DuplicateName,
				Category: "attribute",
				Name:     name.String(),
				Span:     sp,
				Prev:     p.attrs.spans[i],
			})
		}
	}
	value, err := p.parseConst("attribute value")
	if err != nil {
		return err
	}
	p.attrs.list = append(p.attrs.list, ir.Attr{Name: name, Value: value})
	p.attrs.spans = append(p.attrs.spans, sp)
	return nil
}

// takeAttrs hands the pending attributes to the object being built.
func (p *Parser) takeAttrs() ir.Attrs {
	list := p.attrs.list
	p.attrs = pendingAttrs{}
	return list
}

// rejectPending fails when attributes are waiting but the next token cannot
// carry them.
func (p *Parser) rejectPending(carrier string) error {
	if len(p.attrs.list) == 0 {
		return nil
	}
	tok := p.peek()
	return p.fail(&Error{
		Kind:     DanglingAttribute,
		Name:     p.attrs.list[0].Name.String(),
		Expected: carrier,
		Found:    tok.Quote(),
		Span:     p.attrs.spans[0],
	})
}
