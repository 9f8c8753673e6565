package ir

// Design is a whole netlist: an optional auto-index counter and its modules.
type Design struct {
	AutoIdx *int
	Modules OrderedMap[Ident, *Module]
}

// Attr is one attribute attached to an object.
type Attr struct {
	Name  Ident
	Value Const
}

// Attrs keeps attributes in declaration order.
type Attrs []Attr

func (a Attrs) Get(name Ident) (Const, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return Const{}, false
}

func (a Attrs) Has(name Ident) bool {
	_, ok := a.Get(name)
	return ok
}

// ParamDecl is a module parameter with an optional default.
type ParamDecl struct {
	Default *Const
}

type Module struct {
	Name        Ident
	Attributes  Attrs
	Parameters  OrderedMap[Ident, ParamDecl]
	Wires       OrderedMap[Ident, *Wire]
	Memories    OrderedMap[Ident, *Memory]
	Cells       OrderedMap[Ident, *Cell]
	Processes   OrderedMap[Ident, *Process]
	Connections []Connection
}

// Wire is a named net bundle.
type Wire struct {
	Name       Ident
	Attributes Attrs
	Width      int // 1 unless declared
	Offset     int
	Port       int // port position; meaningful when a direction flag is set
	Input      bool
	Output     bool
	Inout      bool
	Upto       bool
	Signed     bool
}

// IsPort reports whether any direction flag is set.
func (w *Wire) IsPort() bool {
	return w.Input || w.Output || w.Inout
}

type Memory struct {
	Name       Ident
	Attributes Attrs
	Width      int // 1 unless declared
	Size       int
	Offset     int
}

// CellParam is a parameter value given to a cell instance.
type CellParam struct {
	Value  Const
	Signed bool
	Real   bool
}

type Cell struct {
	Type        Ident
	Name        Ident
	Attributes  Attrs
	Parameters  OrderedMap[Ident, CellParam]
	Connections OrderedMap[Ident, SigSpec]
}

// Connection drives LHS from RHS at module level.
type Connection struct {
	LHS SigSpec
	RHS SigSpec
}

// TopAttr is the attribute that marks the top module of a hierarchy.
var TopAttr = PublicIdent("top")

// Top returns the first module carrying the top attribute.
func (d *Design) Top() (*Module, bool) {
	for _, m := range d.Modules.All() {
		if m.Attributes.Has(TopAttr) {
			return m, true
		}
	}
	return nil, false
}
