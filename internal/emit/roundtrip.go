package emit

import (
	"bytes"

	"rtlil/internal/ir"
	"rtlil/internal/parser"
)

// CheckRoundTrip emits d, parses the text back and emits it again; both
// renderings must match byte for byte.
func CheckRoundTrip(d *ir.Design, opt Options) (ok bool, msg string) {
	first, err := Design(d, opt)
	if err != nil {
		return false, "round-trip: emit failed: " + err.Error()
	}
	reparsed, err := parser.ParseBytes("<emitted>", first, parser.Options{})
	if err != nil {
		return false, "round-trip: reparse failed: " + err.Error()
	}
	second, err := Design(reparsed, opt)
	if err != nil {
		return false, "round-trip: second emit failed: " + err.Error()
	}
	if !bytes.Equal(first, second) {
		return false, "round-trip: output differs after reparse"
	}
	return true, "round-trip: OK"
}
