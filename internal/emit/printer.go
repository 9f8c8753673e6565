package emit

import (
	"errors"
	"strconv"

	"rtlil/internal/ir"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
	// SkipAutoIdx drops the autoidx line even when the design has one.
	SkipAutoIdx bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type printer struct {
	w *Writer
}

// Design renders d in the order RTLIL dumps use: autoidx, then every module
// with parameters, wires, memories, cells, processes and connections.
func Design(d *ir.Design, opt Options) ([]byte, error) {
	if d == nil {
		return nil, errors.New("emit: nil design")
	}
	opt = opt.withDefaults()
	p := printer{w: NewWriter(opt)}

	if d.AutoIdx != nil && !opt.SkipAutoIdx {
		p.w.Line("autoidx", strconv.Itoa(*d.AutoIdx))
	}
	for _, m := range d.Modules.All() {
		p.printModule(m)
	}
	return []byte(p.w.String()), nil
}

func (p *printer) printAttrs(attrs ir.Attrs) {
	for _, a := range attrs {
		p.w.Line("attribute", a.Name.String(), Const(a.Value))
	}
}

func (p *printer) printModule(m *ir.Module) {
	p.printAttrs(m.Attributes)
	p.w.Line("module", m.Name.String())
	p.w.IndentPush()

	for name, decl := range m.Parameters.All() {
		if decl.Default != nil {
			p.w.Line("parameter", name.String(), Const(*decl.Default))
		} else {
			p.w.Line("parameter", name.String())
		}
	}
	for _, w := range m.Wires.All() {
		p.printWire(w)
	}
	for _, mem := range m.Memories.All() {
		p.printMemory(mem)
	}
	for _, c := range m.Cells.All() {
		p.printCell(c)
	}
	for _, proc := range m.Processes.All() {
		p.printProcess(proc)
	}
	for _, c := range m.Connections {
		p.w.Line("connect", SigSpec(c.LHS), SigSpec(c.RHS))
	}

	p.w.IndentPop()
	p.w.Line("end")
}

func (p *printer) printWire(w *ir.Wire) {
	p.printAttrs(w.Attributes)
	words := []string{"wire"}
	if w.Width != 1 {
		words = append(words, "width", strconv.Itoa(w.Width))
	}
	if w.Upto {
		words = append(words, "upto")
	}
	if w.Offset != 0 {
		words = append(words, "offset", strconv.Itoa(w.Offset))
	}
	switch {
	case w.Input:
		words = append(words, "input", strconv.Itoa(w.Port))
	case w.Output:
		words = append(words, "output", strconv.Itoa(w.Port))
	case w.Inout:
		words = append(words, "inout", strconv.Itoa(w.Port))
	}
	if w.Signed {
		words = append(words, "signed")
	}
	p.w.Line(append(words, w.Name.String())...)
}

func (p *printer) printMemory(mem *ir.Memory) {
	p.printAttrs(mem.Attributes)
	words := []string{"memory"}
	if mem.Width != 1 {
		words = append(words, "width", strconv.Itoa(mem.Width))
	}
	words = append(words, "size", strconv.Itoa(mem.Size))
	if mem.Offset != 0 {
		words = append(words, "offset", strconv.Itoa(mem.Offset))
	}
	p.w.Line(append(words, mem.Name.String())...)
}

func (p *printer) printCell(c *ir.Cell) {
	p.printAttrs(c.Attributes)
	p.w.Line("cell", c.Type.String(), c.Name.String())
	p.w.IndentPush()
	for name, param := range c.Parameters.All() {
		words := []string{"parameter"}
		if param.Signed {
			words = append(words, "signed")
		}
		if param.Real {
			words = append(words, "real")
		}
		p.w.Line(append(words, name.String(), Const(param.Value))...)
	}
	for port, sig := range c.Connections.All() {
		p.w.Line("connect", port.String(), SigSpec(sig))
	}
	p.w.IndentPop()
	p.w.Line("end")
}
