package emit

import (
	"strings"

	"rtlil/internal/ir"
)

type taskKind uint8

const (
	taskAction taskKind = iota
	taskCase
	taskCaseDone
	taskSwitchEnd
)

type task struct {
	kind   taskKind
	action ir.Action
	arm    *ir.Case
}

func (p *printer) printProcess(proc *ir.Process) {
	p.printAttrs(proc.Attributes)
	p.w.Line("process", proc.Name.String())
	p.w.IndentPush()
	p.printCaseBody(&proc.Root)
	for _, s := range proc.Syncs {
		p.printSync(s)
	}
	p.w.IndentPop()
	p.w.Line("end")
}

// printCaseBody обходит дерево switch/case явным стеком задач.
func (p *printer) printCaseBody(body *ir.CaseBody) {
	stack := pushActions(nil, body.Actions)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t.kind {
		case taskAction:
			switch a := t.action.(type) {
			case *ir.Assign:
				p.w.Line("assign", SigSpec(a.LHS), SigSpec(a.RHS))
			case *ir.Switch:
				p.printAttrs(a.Attributes)
				p.w.Line("switch", SigSpec(a.Signal))
				p.w.IndentPush()
				stack = append(stack, task{kind: taskSwitchEnd})
				for i := len(a.Cases) - 1; i >= 0; i-- {
					stack = append(stack, task{kind: taskCase, arm: a.Cases[i]})
				}
			}
		case taskCase:
			p.printAttrs(t.arm.Attributes)
			p.w.Line(caseLine(t.arm))
			p.w.IndentPush()
			stack = append(stack, task{kind: taskCaseDone})
			stack = pushActions(stack, t.arm.Body.Actions)
		case taskCaseDone:
			p.w.IndentPop()
		case taskSwitchEnd:
			p.w.IndentPop()
			p.w.Line("end")
		}
	}
}

func pushActions(stack []task, actions []ir.Action) []task {
	for i := len(actions) - 1; i >= 0; i-- {
		stack = append(stack, task{kind: taskAction, action: actions[i]})
	}
	return stack
}

func caseLine(c *ir.Case) string {
	if c.IsDefault() {
		return "case"
	}
	pats := make([]string, len(c.Patterns))
	for i, s := range c.Patterns {
		pats[i] = SigSpec(s)
	}
	return "case " + strings.Join(pats, " , ")
}

func (p *printer) printSync(s *ir.SyncRule) {
	if s.Type.HasSignal() {
		p.w.Line("sync", s.Type.String(), SigSpec(s.Signal))
	} else {
		p.w.Line("sync", s.Type.String())
	}
	p.w.IndentPush()
	for _, u := range s.Updates {
		p.w.Line("update", SigSpec(u.LHS), SigSpec(u.RHS))
	}
	for _, mw := range s.MemWrites {
		p.printAttrs(mw.Attributes)
		p.w.Line("memwr", mw.Memory.String(), SigSpec(mw.Address), SigSpec(mw.Data), SigSpec(mw.Enable), Const(mw.Priority))
	}
	p.w.IndentPop()
}
