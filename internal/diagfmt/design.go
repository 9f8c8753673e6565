package diagfmt

import (
	"encoding/json"
	"io"

	"rtlil/internal/emit"
	"rtlil/internal/ir"
)

// DesignJSON: JSON-представление разобранного netlist'а.
// Сигналы и константы пишутся в каноническом текстовом виде.
type DesignJSON struct {
	AutoIdx *int         `json:"autoidx,omitempty"`
	Modules []ModuleJSON `json:"modules"`
}

type AttrJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ParamJSON struct {
	Name    string  `json:"name"`
	Default *string `json:"default,omitempty"`
}

type WireJSON struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Offset     int        `json:"offset,omitempty"`
	Direction  string     `json:"direction,omitempty"`
	Port       int        `json:"port,omitempty"`
	Upto       bool       `json:"upto,omitempty"`
	Signed     bool       `json:"signed,omitempty"`
	Attributes []AttrJSON `json:"attributes,omitempty"`
}

type MemoryJSON struct {
	Name       string     `json:"name"`
	Width      int        `json:"width"`
	Size       int        `json:"size"`
	Offset     int        `json:"offset,omitempty"`
	Attributes []AttrJSON `json:"attributes,omitempty"`
}

type CellParamJSON struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Signed bool   `json:"signed,omitempty"`
	Real   bool   `json:"real,omitempty"`
}

type PortJSON struct {
	Port   string `json:"port"`
	Signal string `json:"signal"`
}

type CellJSON struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Parameters  []CellParamJSON `json:"parameters,omitempty"`
	Connections []PortJSON      `json:"connections,omitempty"`
	Attributes  []AttrJSON      `json:"attributes,omitempty"`
}

type ConnectionJSON struct {
	LHS string `json:"lhs"`
	RHS string `json:"rhs"`
}

type ActionJSON struct {
	Kind       string     `json:"kind"`
	LHS        string     `json:"lhs,omitempty"`
	RHS        string     `json:"rhs,omitempty"`
	Signal     string     `json:"signal,omitempty"`
	Cases      []CaseJSON `json:"cases,omitempty"`
	Attributes []AttrJSON `json:"attributes,omitempty"`
}

type CaseJSON struct {
	Patterns   []string     `json:"patterns,omitempty"`
	Body       []ActionJSON `json:"body,omitempty"`
	Attributes []AttrJSON   `json:"attributes,omitempty"`
}

type MemWriteJSON struct {
	Memory     string     `json:"memory"`
	Address    string     `json:"address"`
	Data       string     `json:"data"`
	Enable     string     `json:"enable"`
	Priority   string     `json:"priority"`
	Attributes []AttrJSON `json:"attributes,omitempty"`
}

type SyncJSON struct {
	Type      string           `json:"type"`
	Signal    string           `json:"signal,omitempty"`
	Updates   []ConnectionJSON `json:"updates,omitempty"`
	MemWrites []MemWriteJSON   `json:"memwr,omitempty"`
}

type ProcessJSON struct {
	Name       string       `json:"name"`
	Body       []ActionJSON `json:"body,omitempty"`
	Syncs      []SyncJSON   `json:"syncs,omitempty"`
	Attributes []AttrJSON   `json:"attributes,omitempty"`
}

type ModuleJSON struct {
	Name        string           `json:"name"`
	Attributes  []AttrJSON       `json:"attributes,omitempty"`
	Parameters  []ParamJSON      `json:"parameters,omitempty"`
	Wires       []WireJSON       `json:"wires,omitempty"`
	Memories    []MemoryJSON     `json:"memories,omitempty"`
	Cells       []CellJSON       `json:"cells,omitempty"`
	Processes   []ProcessJSON    `json:"processes,omitempty"`
	Connections []ConnectionJSON `json:"connections,omitempty"`
}

// BuildDesignJSON переводит design в JSON-структуры без сериализации.
func BuildDesignJSON(d *ir.Design) DesignJSON {
	out := DesignJSON{AutoIdx: d.AutoIdx, Modules: make([]ModuleJSON, 0, d.Modules.Len())}
	for _, m := range d.Modules.All() {
		out.Modules = append(out.Modules, buildModuleJSON(m))
	}
	return out
}

// FormatDesignJSON выводит design в JSON формате
func FormatDesignJSON(w io.Writer, d *ir.Design) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDesignJSON(d))
}

func buildAttrs(attrs ir.Attrs) []AttrJSON {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]AttrJSON, len(attrs))
	for i, a := range attrs {
		out[i] = AttrJSON{Name: a.Name.String(), Value: emit.Const(a.Value)}
	}
	return out
}

func buildModuleJSON(m *ir.Module) ModuleJSON {
	mj := ModuleJSON{Name: m.Name.String(), Attributes: buildAttrs(m.Attributes)}

	for name, decl := range m.Parameters.All() {
		p := ParamJSON{Name: name.String()}
		if decl.Default != nil {
			s := emit.Const(*decl.Default)
			p.Default = &s
		}
		mj.Parameters = append(mj.Parameters, p)
	}
	for _, w := range m.Wires.All() {
		wj := WireJSON{
			Name:       w.Name.String(),
			Width:      w.Width,
			Offset:     w.Offset,
			Upto:       w.Upto,
			Signed:     w.Signed,
			Attributes: buildAttrs(w.Attributes),
		}
		switch {
		case w.Input:
			wj.Direction = "input"
		case w.Output:
			wj.Direction = "output"
		case w.Inout:
			wj.Direction = "inout"
		}
		if w.IsPort() {
			wj.Port = w.Port
		}
		mj.Wires = append(mj.Wires, wj)
	}
	for _, mem := range m.Memories.All() {
		mj.Memories = append(mj.Memories, MemoryJSON{
			Name:       mem.Name.String(),
			Width:      mem.Width,
			Size:       mem.Size,
			Offset:     mem.Offset,
			Attributes: buildAttrs(mem.Attributes),
		})
	}
	for _, c := range m.Cells.All() {
		cj := CellJSON{Type: c.Type.String(), Name: c.Name.String(), Attributes: buildAttrs(c.Attributes)}
		for name, p := range c.Parameters.All() {
			cj.Parameters = append(cj.Parameters, CellParamJSON{
				Name:   name.String(),
				Value:  emit.Const(p.Value),
				Signed: p.Signed,
				Real:   p.Real,
			})
		}
		for port, sig := range c.Connections.All() {
			cj.Connections = append(cj.Connections, PortJSON{Port: port.String(), Signal: emit.SigSpec(sig)})
		}
		mj.Cells = append(mj.Cells, cj)
	}
	for _, p := range m.Processes.All() {
		mj.Processes = append(mj.Processes, buildProcessJSON(p))
	}
	for _, c := range m.Connections {
		mj.Connections = append(mj.Connections, ConnectionJSON{LHS: emit.SigSpec(c.LHS), RHS: emit.SigSpec(c.RHS)})
	}
	return mj
}

func buildProcessJSON(p *ir.Process) ProcessJSON {
	pj := ProcessJSON{
		Name:       p.Name.String(),
		Body:       buildBodyJSON(&p.Root),
		Attributes: buildAttrs(p.Attributes),
	}
	for _, s := range p.Syncs {
		sj := SyncJSON{Type: s.Type.String()}
		if s.Signal != nil {
			sj.Signal = emit.SigSpec(s.Signal)
		}
		for _, u := range s.Updates {
			sj.Updates = append(sj.Updates, ConnectionJSON{LHS: emit.SigSpec(u.LHS), RHS: emit.SigSpec(u.RHS)})
		}
		for _, mw := range s.MemWrites {
			sj.MemWrites = append(sj.MemWrites, MemWriteJSON{
				Memory:     mw.Memory.String(),
				Address:    emit.SigSpec(mw.Address),
				Data:       emit.SigSpec(mw.Data),
				Enable:     emit.SigSpec(mw.Enable),
				Priority:   emit.Const(mw.Priority),
				Attributes: buildAttrs(mw.Attributes),
			})
		}
		pj.Syncs = append(pj.Syncs, sj)
	}
	return pj
}

// buildBodyJSON строит дерево без рекурсии: каждая задача: тело из IR и
// слайс, в который складываются его действия.
func buildBodyJSON(root *ir.CaseBody) []ActionJSON {
	type job struct {
		src *ir.CaseBody
		dst *[]ActionJSON
	}
	var out []ActionJSON
	queue := []job{{src: root, dst: &out}}
	for len(queue) > 0 {
		j := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if len(j.src.Actions) == 0 {
			continue
		}
		*j.dst = make([]ActionJSON, len(j.src.Actions))
		for i, a := range j.src.Actions {
			switch v := a.(type) {
			case *ir.Assign:
				(*j.dst)[i] = ActionJSON{Kind: "assign", LHS: emit.SigSpec(v.LHS), RHS: emit.SigSpec(v.RHS)}
			case *ir.Switch:
				aj := ActionJSON{
					Kind:       "switch",
					Signal:     emit.SigSpec(v.Signal),
					Attributes: buildAttrs(v.Attributes),
				}
				if len(v.Cases) > 0 {
					aj.Cases = make([]CaseJSON, len(v.Cases))
				}
				for k, c := range v.Cases {
					cj := CaseJSON{Attributes: buildAttrs(c.Attributes)}
					for _, pat := range c.Patterns {
						cj.Patterns = append(cj.Patterns, emit.SigSpec(pat))
					}
					aj.Cases[k] = cj
				}
				(*j.dst)[i] = aj
				for k, c := range v.Cases {
					queue = append(queue, job{src: &c.Body, dst: &(*j.dst)[i].Cases[k].Body})
				}
			}
		}
	}
	return out
}
