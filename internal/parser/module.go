package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/token"
)

var moduleScope = []string{"parameter", "wire", "memory", "cell", "process"}

// parseModule: module <id> <module-stmt>* end
func (p *Parser) parseModule() (*ir.Module, error) {
	if _, err := p.expect(token.KwModule); err != nil {
		return nil, err
	}
	attrs := p.takeAttrs()
	name, nameSpan, err := p.parseIdent("module name")
	if err != nil {
		return nil, err
	}
	if err := p.declare("module", name, nameSpan); err != nil {
		return nil, err
	}
	m := &ir.Module{Name: name, Attributes: attrs}
	p.clearScope(moduleScope...)

	for {
		switch p.peek().Kind {
		case token.KwAttribute:
			err = p.parseAttribute()
		case token.KwParameter:
			err = p.parseModuleParameter(m)
		case token.KwWire:
			err = p.parseWire(m)
		case token.KwMemory:
			err = p.parseMemory(m)
		case token.KwCell:
			err = p.parseCell(m)
		case token.KwProcess:
			err = p.parseProcess(m)
		case token.KwConnect:
			err = p.parseConnect(m)
		case token.KwEnd:
			if err := p.rejectPending("a declaration"); err != nil {
				return nil, err
			}
			p.advance()
			return m, nil
		default:
			return nil, p.unexpected("module statement or 'end'")
		}
		if err != nil {
			return nil, err
		}
	}
}

// parseModuleParameter: parameter <id> [<const>]
func (p *Parser) parseModuleParameter(m *ir.Module) error {
	if err := p.rejectPending("a declaration"); err != nil {
		return err
	}
	p.advance()
	name, sp, err := p.parseIdent("parameter name")
	if err != nil {
		return err
	}
	if err := p.declare("parameter", name, sp); err != nil {
		return err
	}
	var decl ir.ParamDecl
	if p.peek().IsLiteral() {
		c, err := p.parseConst("parameter default")
		if err != nil {
			return err
		}
		decl.Default = &c
	}
	m.Parameters.Insert(name, decl)
	return nil
}

// parseConnect: connect <sigspec> <sigspec>
func (p *Parser) parseConnect(m *ir.Module) error {
	if err := p.rejectPending("a declaration"); err != nil {
		return err
	}
	p.advance()
	lhs, err := p.parseSigSpec("signal to drive")
	if err != nil {
		return err
	}
	rhs, err := p.parseSigSpec("driving signal")
	if err != nil {
		return err
	}
	m.Connections = append(m.Connections, ir.Connection{LHS: lhs, RHS: rhs})
	return nil
}
