package emit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rtlil/internal/ir"
	"rtlil/internal/parser"
)

func parseSource(t *testing.T, src string) *ir.Design {
	t.Helper()
	d, err := parser.ParseBytes("emit.il", []byte(src), parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return d
}

const canonical = `autoidx 12
attribute \top 1
module \top
  parameter \W 4
  parameter \NODEF
  attribute \src "top.v:2"
  wire width 4 upto offset 1 input 1 signed \a
  wire output 2 \y
  wire $auto$1
  memory width 8 size 16 offset 2 \mem
  cell $mux $mux$top.v:5$2
    parameter \WIDTH 1
    parameter signed real \R "0.5"
    connect \A 1'0
    connect \B { \a [1] \a [3:2] }
    connect \S { }
    connect \Y $auto$1
  end
  process $proc$top.v:4$1
    assign \y 1'x
    attribute \full_case 1
    switch \a [0]
      case 1'0 , 1'1
        assign \y 1'1
        switch \a [1]
          case
        end
      case
    end
    sync posedge \a [0]
      update \y 1'0
      attribute \src "top.v:9"
      memwr \mem 4'0000 8'xxxxxxxx 8'11111111 0'
    sync always
  end
  connect \y $auto$1
end
module \empty
end
`

func TestDesign_Canonical(t *testing.T) {
	got, err := Design(parseSource(t, canonical), Options{})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if diff := cmp.Diff(canonical, string(got)); diff != "" {
		t.Fatalf("canonical text changed (-want +got):\n%s", diff)
	}
}

func TestDesign_NormalizesLayout(t *testing.T) {
	src := "# comment\nmodule \\m\n\twire   \\a   width 2\n\n\tconnect \\a 2'1\nend"
	got, err := Design(parseSource(t, src), Options{IndentWidth: 4})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	want := "module \\m\n    wire width 2 \\a\n    connect \\a 2'11\nend\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDesign_Tabs(t *testing.T) {
	got, err := Design(parseSource(t, "module \\m\nwire \\a\nend\n"), Options{UseTabs: true})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if string(got) != "module \\m\n\twire \\a\nend\n" {
		t.Fatalf("got %q", got)
	}
}

func TestDesign_SkipAutoIdx(t *testing.T) {
	got, _ := Design(parseSource(t, "autoidx 3\n"), Options{SkipAutoIdx: true})
	if len(got) != 0 {
		t.Fatalf("got %q", got)
	}
}

func TestDesign_Nil(t *testing.T) {
	if _, err := Design(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil design")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", `"plain"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{`q"b\`, `"q\"b\\"`},
		{"\x01\x7f", `"\001\177"`},
		{"utf8 ✓", `"utf8 ✓"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuote_RoundTripsThroughParser(t *testing.T) {
	in := "x\x00y\"z\\\n\t\x1b"
	d := parseSource(t, "attribute \\s "+Quote(in)+"\nmodule \\m\nend\n")
	m := d.Modules.Values()[0]
	got, _ := m.Attributes.Get(ir.PublicIdent("s"))
	if got.Str != in {
		t.Fatalf("got %q, want %q", got.Str, in)
	}
}

func TestSigSpec(t *testing.T) {
	a := ir.PublicIdent("a")
	tests := []struct {
		sig  ir.SigSpec
		want string
	}{
		{ir.Ref(a), `\a`},
		{ir.Slice(a, 3, 0), `\a [3:0]`},
		{ir.Bit(a, 2), `\a [2]`},
		{ir.Lit(ir.IntConst(-3)), `-3`},
		{ir.Cat(), `{ }`},
		{ir.Cat(ir.Cat(ir.Ref(a)), ir.Lit(ir.MustBits("01"))), `{ { \a } 2'01 }`},
	}
	for _, tt := range tests {
		if got := SigSpec(tt.sig); got != tt.want {
			t.Errorf("SigSpec = %q, want %q", got, tt.want)
		}
	}
}

func TestCheckRoundTrip(t *testing.T) {
	ok, msg := CheckRoundTrip(parseSource(t, canonical), Options{})
	if !ok {
		t.Fatalf("round trip failed: %s", msg)
	}
}

func TestCheckRoundTrip_DeepNesting(t *testing.T) {
	const depth = 5000
	sig := strings.Repeat("{ ", depth) + `\a` + strings.Repeat(" }", depth)
	d := parseSource(t, "module \\m\n  connect \\a "+sig+"\nend\n")
	ok, msg := CheckRoundTrip(d, Options{})
	if !ok {
		t.Fatalf("round trip failed: %s", msg)
	}
	out, _ := Design(d, Options{})
	if !strings.Contains(string(out), sig) {
		t.Fatalf("nested concatenation not preserved")
	}
}
