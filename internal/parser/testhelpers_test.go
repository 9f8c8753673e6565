package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"rtlil/internal/diag"
	"rtlil/internal/ir"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func mustParse(t *testing.T, src string) *ir.Design {
	t.Helper()
	bag := diag.NewBag(16)
	d, err := ParseBytes("test.il", []byte(src), Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("parse failed: %v (diagnostics: %s)", err, diagnosticsSummary(bag))
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return d
}

func parseErr(t *testing.T, src string, opts Options) *Error {
	t.Helper()
	d, err := ParseBytes("test.il", []byte(src), opts)
	if err == nil {
		t.Fatalf("expected parse error, got design with %d modules", d.Modules.Len())
	}
	if d != nil {
		t.Fatalf("design must be nil on error")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *parser.Error", err)
	}
	return perr
}

func onlyModule(t *testing.T, d *ir.Design) *ir.Module {
	t.Helper()
	if d.Modules.Len() != 1 {
		t.Fatalf("expected 1 module, got %d", d.Modules.Len())
	}
	return d.Modules.Values()[0]
}

func id(spelling string) ir.Ident { return ir.MustIdent(spelling) }

func newBag() *diag.Bag { return diag.NewBag(16) }

func reporterFor(bag *diag.Bag) diag.Reporter { return diag.BagReporter{Bag: bag} }
