package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rtlil/internal/ir"
)

const counterSrc = `# counter with a memory
autoidx 7
attribute \top 1
attribute \src "counter.v:1.1-9.10"
module \counter
  parameter \WIDTH 8
  parameter \MODE
  wire input 1 \clk
  wire width 4 output 2 signed \count
  wire width 4 offset 2 upto $next
  memory width 8 size 16 \mem
  attribute \keep 1
  cell $add $add$counter.v:5$1
    parameter signed \A_SIGNED 0
    parameter real \R "1.5"
    parameter \Y_WIDTH 4
    connect \A \count
    connect \B 4'0001
    connect \Y $next
  end
  connect \count $next
end
`

func TestParseDesign_Counter(t *testing.T) {
	d := mustParse(t, counterSrc)

	if d.AutoIdx == nil || *d.AutoIdx != 7 {
		t.Fatalf("autoidx = %v, want 7", d.AutoIdx)
	}
	m := onlyModule(t, d)
	if m.Name != id(`\counter`) {
		t.Fatalf("module name = %s", m.Name)
	}
	if top, ok := d.Top(); !ok || top != m {
		t.Fatalf("top module not found")
	}
	if v, ok := m.Attributes.Get(id(`\src`)); !ok || v.Str != "counter.v:1.1-9.10" {
		t.Fatalf("src attribute = %v, %v", v, ok)
	}

	width, ok := m.Parameters.Get(id(`\WIDTH`))
	if !ok || width.Default == nil || width.Default.Int != 8 {
		t.Fatalf("WIDTH parameter = %+v", width)
	}
	if mode, _ := m.Parameters.Get(id(`\MODE`)); mode.Default != nil {
		t.Fatalf("MODE must have no default, got %v", *mode.Default)
	}

	wantWires := []string{`\clk`, `\count`, `$next`}
	if diff := cmp.Diff(wantWires, identStrings(m.Wires.Keys())); diff != "" {
		t.Fatalf("wire order mismatch (-want +got):\n%s", diff)
	}
	clk, _ := m.Wires.Get(id(`\clk`))
	if !clk.Input || clk.Port != 1 || clk.Width != 1 || !clk.IsPort() {
		t.Fatalf("clk = %+v", clk)
	}
	count, _ := m.Wires.Get(id(`\count`))
	if !count.Output || count.Port != 2 || count.Width != 4 || !count.Signed {
		t.Fatalf("count = %+v", count)
	}
	next, _ := m.Wires.Get(id(`$next`))
	if next.Width != 4 || next.Offset != 2 || !next.Upto || next.IsPort() || next.Name.IsPublic() {
		t.Fatalf("next = %+v", next)
	}

	mem, ok := m.Memories.Get(id(`\mem`))
	if !ok || mem.Width != 8 || mem.Size != 16 {
		t.Fatalf("mem = %+v", mem)
	}

	cell, ok := m.Cells.Get(id(`$add$counter.v:5$1`))
	if !ok {
		t.Fatalf("cell not found, cells: %v", identStrings(m.Cells.Keys()))
	}
	if cell.Type != id(`$add`) || !cell.Attributes.Has(id(`\keep`)) {
		t.Fatalf("cell = %+v", cell)
	}
	if a, _ := cell.Parameters.Get(id(`\A_SIGNED`)); !a.Signed || a.Real || a.Value.Kind != ir.ConstInt {
		t.Fatalf("A_SIGNED = %+v", a)
	}
	if r, _ := cell.Parameters.Get(id(`\R`)); !r.Real || r.Value.Str != "1.5" {
		t.Fatalf("R = %+v", r)
	}
	if diff := cmp.Diff([]string{`\A`, `\B`, `\Y`}, identStrings(cell.Connections.Keys())); diff != "" {
		t.Fatalf("port order mismatch (-want +got):\n%s", diff)
	}
	b, _ := cell.Connections.Get(id(`\B`))
	if diff := cmp.Diff(ir.SigSpec(ir.Lit(ir.MustBits("0001"))), b); diff != "" {
		t.Fatalf("B connection mismatch (-want +got):\n%s", diff)
	}

	if len(m.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(m.Connections))
	}
	want := ir.Connection{LHS: ir.Ref(id(`\count`)), RHS: ir.Ref(id(`$next`))}
	if diff := cmp.Diff(want, m.Connections[0]); diff != "" {
		t.Fatalf("connection mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDesign_Empty(t *testing.T) {
	for _, src := range []string{"", "\n\n", "# only a comment\n", "autoidx 3\n"} {
		d := mustParse(t, src)
		if d.Modules.Len() != 0 {
			t.Errorf("%q: expected no modules, got %d", src, d.Modules.Len())
		}
	}
}

func TestParseDesign_ModuleOrder(t *testing.T) {
	d := mustParse(t, "module \\b\nend\nmodule \\a\nend\nmodule $c\nend\n")
	got := identStrings(d.Modules.Keys())
	if diff := cmp.Diff([]string{`\b`, `\a`, `$c`}, got); diff != "" {
		t.Fatalf("module order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := d.Top(); ok {
		t.Fatalf("no module carries the top attribute")
	}
}

func TestParseDesign_SameNameInDifferentScopes(t *testing.T) {
	src := `module \a
  wire \x
  cell $and \x
    connect \A \x
  end
  cell $or \y
    connect \A \x
  end
end
module \b
  wire \x
end
`
	d := mustParse(t, src)
	if d.Modules.Len() != 2 {
		t.Fatalf("expected 2 modules, got %d", d.Modules.Len())
	}
}

func TestParseConst(t *testing.T) {
	tests := []struct {
		name string
		lit  string
		want ir.Const
	}{
		{"value", `4'10xz`, ir.BitsConst(ir.S1, ir.S0, ir.Sx, ir.Sz)},
		{"value with marker and dont-care", `3'm-1`, ir.BitsConst(ir.Sm, ir.Sa, ir.S1)},
		{"replicated digit", `5'x`, ir.MustBits("xxxxx")},
		{"empty value", `0'`, ir.BitsConst()},
		{"plain integer", `42`, ir.IntConst(42)},
		{"negative integer", `-5`, ir.IntConst(-5)},
		{"int32 min", `-2147483648`, ir.IntConst(-2147483648)},
		{"string", `"a b"`, ir.StringConst("a b")},
		{"string escapes", `"x\n\t\101\"y"`, ir.StringConst("x\n\tA\"y")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, "module \\m\n  attribute \\v "+tt.lit+"\n  wire \\w\nend\n")
			w, _ := onlyModule(t, d).Wires.Get(id(`\w`))
			got, ok := w.Attributes.Get(id(`\v`))
			if !ok {
				t.Fatalf("attribute missing")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("const mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConst_IntegerWidth(t *testing.T) {
	d := mustParse(t, "module \\m\n  parameter \\P 42\nend\n")
	p, _ := onlyModule(t, d).Parameters.Get(id(`\P`))
	if p.Default.Width() != 32 || !p.Default.Signed() {
		t.Fatalf("plain integer must be a signed 32-bit constant, got width %d signed %v",
			p.Default.Width(), p.Default.Signed())
	}
}

func TestParseAttributes_AttachToNextObject(t *testing.T) {
	src := `module \m
  attribute \a 1
  attribute \b "x"
  wire \w
  wire \v
  attribute \c 0
  memory \mem
  attribute \d 1
  process \p
  end
end
`
	m := onlyModule(t, mustParse(t, src))
	w, _ := m.Wires.Get(id(`\w`))
	if len(w.Attributes) != 2 || w.Attributes[0].Name != id(`\a`) || w.Attributes[1].Name != id(`\b`) {
		t.Fatalf("wire attributes = %+v", w.Attributes)
	}
	if v, _ := m.Wires.Get(id(`\v`)); len(v.Attributes) != 0 {
		t.Fatalf("attributes leaked to the second wire: %+v", v.Attributes)
	}
	if mem, _ := m.Memories.Get(id(`\mem`)); !mem.Attributes.Has(id(`\c`)) {
		t.Fatalf("memory attributes = %+v", mem.Attributes)
	}
	if p, _ := m.Processes.Get(id(`\p`)); !p.Attributes.Has(id(`\d`)) {
		t.Fatalf("process attributes = %+v", p.Attributes)
	}
	if len(m.Attributes) != 0 {
		t.Fatalf("module must not receive inner attributes: %+v", m.Attributes)
	}
}

func TestParseWire_OptionsAfterName(t *testing.T) {
	m := onlyModule(t, mustParse(t, "module \\m\n  wire \\w width 3 inout 4\nend\n"))
	w, _ := m.Wires.Get(id(`\w`))
	if w.Width != 3 || !w.Inout || w.Port != 4 {
		t.Fatalf("wire = %+v", w)
	}
}

// Yosys writes zero-width wires and memories for unused ports.
func TestParseWire_ZeroWidth(t *testing.T) {
	m := onlyModule(t, mustParse(t, "module \\m\n  wire width 0 \\a\n  memory width 0 size 4 \\mem\nend\n"))
	w, _ := m.Wires.Get(id(`\a`))
	if w.Width != 0 {
		t.Fatalf("wire width = %d, want 0", w.Width)
	}
	mem, _ := m.Memories.Get(id(`\mem`))
	if mem.Width != 0 || mem.Size != 4 {
		t.Fatalf("memory = %+v", mem)
	}
}

func TestParseFile_ReportsErrorDiagnostic(t *testing.T) {
	bag := newBag()
	_, err := ParseBytes("bad.il", []byte("module \\m\n  wire \\a\n  wire \\a\nend\n"), Options{Reporter: reporterFor(bag)})
	if err == nil {
		t.Fatalf("expected error")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "first declared here" {
		t.Fatalf("expected a note pointing at the first declaration, got %+v", d.Notes)
	}
}

func identStrings(ids []ir.Ident) []string {
	out := make([]string, len(ids))
	for i, x := range ids {
		out[i] = x.String()
	}
	return out
}
