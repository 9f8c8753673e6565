package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rtlil/internal/ir"
)

func parseRHS(t *testing.T, sig string) ir.SigSpec {
	t.Helper()
	m := onlyModule(t, mustParse(t, "module \\m\n  connect \\lhs "+sig+"\nend\n"))
	if len(m.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(m.Connections))
	}
	return m.Connections[0].RHS
}

func TestParseSigSpec(t *testing.T) {
	a, b := id(`\a`), id(`\b`)
	tests := []struct {
		name string
		src  string
		want ir.SigSpec
	}{
		{"wire", `\a`, ir.Ref(a)},
		{"auto wire", `$auto$1`, ir.Ref(id(`$auto$1`))},
		{"slice", `\a [7:4]`, ir.Slice(a, 7, 4)},
		{"single-bit slice", `\a [3:3]`, ir.Slice(a, 3, 3)},
		{"bit", `\a [0]`, ir.Bit(a, 0)},
		{"constant", `2'1x`, ir.Lit(ir.MustBits("1x"))},
		{"integer", `7`, ir.Lit(ir.IntConst(7))},
		{"empty concat", `{ }`, ir.Cat()},
		{"concat", `{ \a [1] 1'0 \b }`, ir.Cat(ir.Bit(a, 1), ir.Lit(ir.MustBits("0")), ir.Ref(b))},
		{"nested concat", `{ { \a } { } \b [2:0] }`, ir.Cat(ir.Cat(ir.Ref(a)), ir.Cat(), ir.Slice(b, 2, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRHS(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("sigspec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSigSpec_IdentifierSwallowsBrace(t *testing.T) {
	e := parseErr(t, "module \\m\n  connect \\lhs {\\a}\nend\n", Options{})
	if e.Kind != UnexpectedToken || !strings.Contains(e.Error(), "expected signal or '}'") {
		t.Fatalf("got %v", e)
	}
}

func TestParseSigSpec_DeepNestingIsIterative(t *testing.T) {
	const depth = 100000
	got := parseRHS(t, strings.Repeat("{ ", depth)+`\x`+strings.Repeat(" }", depth))

	n := 0
	for {
		c, ok := got.(*ir.Concat)
		if !ok {
			break
		}
		if len(c.Parts) != 1 {
			t.Fatalf("level %d has %d parts", n, len(c.Parts))
		}
		got = c.Parts[0]
		n++
	}
	if n != depth {
		t.Fatalf("depth = %d, want %d", n, depth)
	}
	if diff := cmp.Diff(ir.SigSpec(ir.Ref(id(`\x`))), got); diff != "" {
		t.Fatalf("innermost mismatch (-want +got):\n%s", diff)
	}
}
