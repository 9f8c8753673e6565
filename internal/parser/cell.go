package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/token"
)

// parseCell:
//
//	cell <type> <name>
//	  parameter [signed] [real] <id> <const>
//	  connect <port> <sigspec>
//	end
func (p *Parser) parseCell(m *ir.Module) error {
	p.advance()
	c := &ir.Cell{Attributes: p.takeAttrs()}

	typ, _, err := p.parseIdent("cell type")
	if err != nil {
		return err
	}
	name, nameSpan, err := p.parseIdent("cell name")
	if err != nil {
		return err
	}
	if err := p.declare("cell", name, nameSpan); err != nil {
		return err
	}
	c.Type, c.Name = typ, name
	p.clearScope("cell parameter", "cell port")

	for {
		switch p.peek().Kind {
		case token.KwParameter:
			err = p.parseCellParameter(c)
		case token.KwConnect:
			err = p.parseCellConnect(c)
		case token.KwEnd:
			p.advance()
			m.Cells.Insert(name, c)
			return nil
		default:
			return p.unexpected("'parameter', 'connect' or 'end'")
		}
		if err != nil {
			return err
		}
	}
}

func (p *Parser) parseCellParameter(c *ir.Cell) error {
	p.advance()
	var param ir.CellParam
	if p.at(token.KwSigned) {
		p.advance()
		param.Signed = true
	}
	if p.at(token.KwReal) {
		p.advance()
		param.Real = true
	}
	name, sp, err := p.parseIdent("parameter name")
	if err != nil {
		return err
	}
	if err := p.declare("cell parameter", name, sp); err != nil {
		return err
	}
	if param.Value, err = p.parseConst("parameter value"); err != nil {
		return err
	}
	c.Parameters.Insert(name, param)
	return nil
}

func (p *Parser) parseCellConnect(c *ir.Cell) error {
	p.advance()
	port, sp, err := p.parseIdent("port name")
	if err != nil {
		return err
	}
	if err := p.declare("cell port", port, sp); err != nil {
		return err
	}
	sig, err := p.parseSigSpec("port signal")
	if err != nil {
		return err
	}
	c.Connections.Insert(port, sig)
	return nil
}
