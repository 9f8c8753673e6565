package fuzztests

import (
	"errors"
	"testing"
	"time"

	"rtlil/internal/diag"
	"rtlil/internal/emit"
	"rtlil/internal/parser"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang checks that the parser terminates on any input and that a
// failure is always a *parser.Error.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan error, 1)
		go func() {
			bag := diag.NewBag(128)
			_, err := parser.ParseBytes("fuzz.il", input, parser.Options{
				MaxDepth: 256,
				Reporter: diag.BagReporter{Bag: bag},
			})
			done <- err
		}()

		select {
		case err := <-done:
			var perr *parser.Error
			if err != nil && !errors.As(err, &perr) {
				t.Fatalf("parse error of type %T: %v", err, err)
			}
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzRoundTrip checks that every design the parser accepts prints to text
// that parses back and prints identically.
func FuzzRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		d, err := parser.ParseBytes("fuzz.il", input, parser.Options{MaxDepth: 256})
		if err != nil {
			return
		}
		if ok, msg := emit.CheckRoundTrip(d, emit.Options{}); !ok {
			t.Fatalf("round trip failed: %s\ninput: %q", msg, truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
