package parser

import (
	"rtlil/internal/ir"
	"rtlil/internal/token"
)

// switchFrame is an open switch together with the body it belongs to.
type switchFrame struct {
	sw     *ir.Switch
	parent *ir.CaseBody
}

var syncTypes = map[token.Kind]ir.SyncType{
	token.KwLow:     ir.SyncLow,
	token.KwHigh:    ir.SyncHigh,
	token.KwPosedge: ir.SyncPosedge,
	token.KwNegedge: ir.SyncNegedge,
	token.KwEdge:    ir.SyncEdge,
	token.KwAlways:  ir.SyncAlways,
	token.KwInit:    ir.SyncInit,
	token.KwGlobal:  ir.SyncGlobal,
}

// parseProcess:
//
//	process <id>
//	  <assign | switch>*
//	  <sync>*
//	end
func (p *Parser) parseProcess(m *ir.Module) error {
	p.advance()
	proc := &ir.Process{Attributes: p.takeAttrs()}
	name, sp, err := p.parseIdent("process name")
	if err != nil {
		return err
	}
	if err := p.declare("process", name, sp); err != nil {
		return err
	}
	proc.Name = name

	if err := p.parseCaseTree(&proc.Root); err != nil {
		return err
	}
	for p.at(token.KwSync) {
		rule, err := p.parseSync()
		if err != nil {
			return err
		}
		proc.Syncs = append(proc.Syncs, rule)
	}
	if err := p.rejectPending("a switch, case or memwr"); err != nil {
		return err
	}
	if !p.at(token.KwEnd) {
		return p.unexpected("'sync' or 'end'")
	}
	p.advance()

	m.Processes.Insert(name, proc)
	return nil
}

// parseCaseTree fills root with assignments and switches until the process
// level 'sync' or 'end'. Nested switch/case bodies are tracked on an explicit
// stack: body is the list receiving actions, nil between 'switch' and its
// first 'case'.
func (p *Parser) parseCaseTree(root *ir.CaseBody) error {
	var stack []switchFrame
	body := root

	for {
		tok := p.peek()
		switch tok.Kind {
		case token.KwAttribute:
			if err := p.parseAttribute(); err != nil {
				return err
			}

		case token.KwAssign:
			if body == nil {
				return p.unexpected("'case' or 'end'")
			}
			if err := p.rejectPending("a switch or case"); err != nil {
				return err
			}
			p.advance()
			lhs, rhs, err := p.parseSigPair("assigned signal", "assigned value")
			if err != nil {
				return err
			}
			body.Actions = append(body.Actions, &ir.Assign{LHS: lhs, RHS: rhs})

		case token.KwSwitch:
			if body == nil {
				return p.unexpected("'case' or 'end'")
			}
			p.advance()
			if err := p.checkDepth(len(stack)+1, tok.Span); err != nil {
				return err
			}
			sw := &ir.Switch{Attributes: p.takeAttrs()}
			sig, err := p.parseSigSpec("switch signal")
			if err != nil {
				return err
			}
			sw.Signal = sig
			body.Actions = append(body.Actions, sw)
			stack = append(stack, switchFrame{sw: sw, parent: body})
			body = nil

		case token.KwCase:
			if len(stack) == 0 {
				return p.unexpected("'assign', 'switch', 'sync' or 'end'")
			}
			p.advance()
			c := &ir.Case{Attributes: p.takeAttrs()}
			pats, err := p.parseCasePatterns()
			if err != nil {
				return err
			}
			c.Patterns = pats
			top := stack[len(stack)-1]
			top.sw.Cases = append(top.sw.Cases, c)
			body = &c.Body

		case token.KwEnd:
			if len(stack) == 0 {
				return nil
			}
			if err := p.rejectPending("a switch or case"); err != nil {
				return err
			}
			p.advance()
			body = stack[len(stack)-1].parent
			stack = stack[:len(stack)-1]

		case token.KwSync:
			if len(stack) == 0 {
				return nil
			}
			return p.unexpected("'end' closing the switch")

		default:
			switch {
			case len(stack) == 0:
				return p.unexpected("'assign', 'switch', 'sync' or 'end'")
			case body == nil:
				return p.unexpected("'case' or 'end'")
			default:
				return p.unexpected("'assign', 'switch', 'case' or 'end'")
			}
		}
	}
}

// parseCasePatterns: [<sigspec> (, <sigspec>)*]; no patterns is the default case.
func (p *Parser) parseCasePatterns() ([]ir.SigSpec, error) {
	if !p.peek().StartsSigSpec() {
		return nil, nil
	}
	var pats []ir.SigSpec
	for {
		s, err := p.parseSigSpec("case pattern")
		if err != nil {
			return nil, err
		}
		pats = append(pats, s)
		if !p.at(token.Comma) {
			return pats, nil
		}
		p.advance()
	}
}

func (p *Parser) parseSigPair(first, second string) (ir.SigSpec, ir.SigSpec, error) {
	lhs, err := p.parseSigSpec(first)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := p.parseSigSpec(second)
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

// parseSync:
//
//	sync <low|high|posedge|negedge|edge> <sigspec> | sync <always|init|global>
//	  update <sigspec> <sigspec>
//	  <attr>* memwr <id> <addr> <data> <en> <priority>
func (p *Parser) parseSync() (*ir.SyncRule, error) {
	if err := p.rejectPending("a switch, case or memwr"); err != nil {
		return nil, err
	}
	p.advance()

	typ, ok := syncTypes[p.peek().Kind]
	if !ok {
		return nil, p.unexpected("sync type")
	}
	p.advance()
	rule := &ir.SyncRule{Type: typ}
	if typ.HasSignal() {
		sig, err := p.parseSigSpec("sync signal")
		if err != nil {
			return nil, err
		}
		rule.Signal = sig
	}

	for {
		switch p.peek().Kind {
		case token.KwAttribute:
			if err := p.parseAttribute(); err != nil {
				return nil, err
			}
		case token.KwUpdate:
			if err := p.rejectPending("'memwr'"); err != nil {
				return nil, err
			}
			p.advance()
			lhs, rhs, err := p.parseSigPair("updated signal", "update value")
			if err != nil {
				return nil, err
			}
			rule.Updates = append(rule.Updates, ir.Assign{LHS: lhs, RHS: rhs})
		case token.KwMemwr:
			mw, err := p.parseMemWrite()
			if err != nil {
				return nil, err
			}
			rule.MemWrites = append(rule.MemWrites, mw)
		default:
			if err := p.rejectPending("'memwr'"); err != nil {
				return nil, err
			}
			return rule, nil
		}
	}
}

func (p *Parser) parseMemWrite() (*ir.MemWrite, error) {
	p.advance()
	mw := &ir.MemWrite{Attributes: p.takeAttrs()}
	mem, _, err := p.parseIdent("memory name")
	if err != nil {
		return nil, err
	}
	mw.Memory = mem
	if mw.Address, err = p.parseSigSpec("write address"); err != nil {
		return nil, err
	}
	if mw.Data, err = p.parseSigSpec("write data"); err != nil {
		return nil, err
	}
	if mw.Enable, err = p.parseSigSpec("write enable"); err != nil {
		return nil, err
	}
	if mw.Priority, err = p.parseConst("priority mask"); err != nil {
		return nil, err
	}
	return mw, nil
}
