package ir

// Stats summarizes a design.
type Stats struct {
	Modules     int            `json:"modules" msgpack:"modules"`
	Top         string         `json:"top,omitempty" msgpack:"top"`
	Wires       int            `json:"wires" msgpack:"wires"`
	WireBits    int            `json:"wire_bits" msgpack:"wire_bits"`
	Ports       int            `json:"ports" msgpack:"ports"`
	Memories    int            `json:"memories" msgpack:"memories"`
	Cells       int            `json:"cells" msgpack:"cells"`
	Processes   int            `json:"processes" msgpack:"processes"`
	Connections int            `json:"connections" msgpack:"connections"`
	Switches    int            `json:"switches" msgpack:"switches"`
	MaxDepth    int            `json:"max_switch_depth" msgpack:"max_switch_depth"`
	CellTypes   map[string]int `json:"cell_types,omitempty" msgpack:"cell_types"`
}

// CollectStats counts the objects of d.
func CollectStats(d *Design) Stats {
	var st Stats
	if top, ok := d.Top(); ok {
		st.Top = top.Name.String()
	}
	for _, m := range d.Modules.All() {
		st.Modules++
		st.Wires += m.Wires.Len()
		for _, w := range m.Wires.All() {
			st.WireBits += w.Width
			if w.IsPort() {
				st.Ports++
			}
		}
		st.Memories += m.Memories.Len()
		st.Cells += m.Cells.Len()
		for _, c := range m.Cells.All() {
			if st.CellTypes == nil {
				st.CellTypes = make(map[string]int)
			}
			st.CellTypes[c.Type.String()]++
		}
		st.Processes += m.Processes.Len()
		st.Connections += len(m.Connections)
		for _, p := range m.Processes.All() {
			WalkBody(&p.Root, func(depth int, a Action) bool {
				if _, ok := a.(*Switch); ok {
					st.Switches++
					st.MaxDepth = max(st.MaxDepth, depth+1)
				}
				return true
			})
		}
	}
	return st
}

// Merge adds o into s. Top is kept when already set.
func (s *Stats) Merge(o Stats) {
	s.Modules += o.Modules
	if s.Top == "" {
		s.Top = o.Top
	}
	s.Wires += o.Wires
	s.WireBits += o.WireBits
	s.Ports += o.Ports
	s.Memories += o.Memories
	s.Cells += o.Cells
	s.Processes += o.Processes
	s.Connections += o.Connections
	s.Switches += o.Switches
	s.MaxDepth = max(s.MaxDepth, o.MaxDepth)
	for k, v := range o.CellTypes {
		if s.CellTypes == nil {
			s.CellTypes = make(map[string]int)
		}
		s.CellTypes[k] += v
	}
}
