package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/token"
)

func isMemoryOption(k token.Kind) bool {
	return k == token.KwWidth || k == token.KwSize || k == token.KwOffset
}

// parseMemory: memory <option>* <id> <option>*
func (p *Parser) parseMemory(m *ir.Module) error {
	p.advance()
	mem := &ir.Memory{Width: 1, Attributes: p.takeAttrs()}

	for isMemoryOption(p.peek().Kind) {
		if err := p.parseMemoryOption(mem); err != nil {
			return err
		}
	}
	name, sp, err := p.parseIdent("memory option or memory name")
	if err != nil {
		return err
	}
	mem.Name = name
	for isMemoryOption(p.peek().Kind) {
		if err := p.parseMemoryOption(mem); err != nil {
			return err
		}
	}

	if err := p.declare("memory", name, sp); err != nil {
		return err
	}
	m.Memories.Insert(name, mem)
	return nil
}

func (p *Parser) parseMemoryOption(mem *ir.Memory) error {
	var err error
	switch p.advance().Kind {
	case token.KwWidth:
		mem.Width, err = p.parseNonNegative("memory width")
	case token.KwSize:
		mem.Size, err = p.parseNonNegative("memory size")
	case token.KwOffset:
		mem.Offset, _, err = p.parseInt("memory offset")
	}
	return err
}
