package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/token"
)

// parseWire: wire <option>* <id> <option>*
//
// Options may follow the name as well; a trailing option with its value
// missing is then reported at the token that stands where the value should.
func (p *Parser) parseWire(m *ir.Module) error {
	p.advance()
	w := &ir.Wire{Width: 1, Attributes: p.takeAttrs()}

	for p.peek().Kind.IsWireOption() {
		if err := p.parseWireOption(w); err != nil {
			return err
		}
	}
	name, sp, err := p.parseIdent("wire option or wire name")
	if err != nil {
		return err
	}
	w.Name = name
	for p.peek().Kind.IsWireOption() {
		if err := p.parseWireOption(w); err != nil {
			return err
		}
	}

	if err := p.declare("wire", name, sp); err != nil {
		return err
	}
	m.Wires.Insert(name, w)
	return nil
}

func (p *Parser) parseWireOption(w *ir.Wire) error {
	opt := p.advance()
	var err error
	switch opt.Kind {
	case token.KwWidth:
		w.Width, err = p.parseNonNegative("wire width")
	case token.KwOffset:
		w.Offset, _, err = p.parseInt("wire offset")
	case token.KwInput:
		w.Input = true
		w.Port, err = p.parseNonNegative("port index")
	case token.KwOutput:
		w.Output = true
		w.Port, err = p.parseNonNegative("port index")
	case token.KwInout:
		w.Inout = true
		w.Port, err = p.parseNonNegative("port index")
	case token.KwUpto:
		w.Upto = true
	case token.KwSigned:
		w.Signed = true
	}
	return err
}
