// Package testkit holds invariant checks shared by unit and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"rtlil/internal/source"
	"rtlil/internal/token"
)

// CheckTokenInvariants verifies a complete token stream of sf:
//  1. exactly one EOF, last, empty, at the end of the content;
//  2. every other token is non-empty, in bounds and its Text equals its bytes;
//  3. leading trivia plus tokens tile the content without gaps or overlap,
//     except trivia right before EOF which is dropped.
func CheckTokenInvariants(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %v, not EOF", last.Kind)
	}
	if last.Span.Start != last.Span.End || last.Span.End != size {
		return fmt.Errorf("EOF span %v, want empty at %d", last.Span, size)
	}

	var pos uint32
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %d: span points to file %d, want %d", i, tok.Span.File, sf.ID)
		}
		for _, tr := range tok.Leading {
			if tr.Span.Start != pos || tr.Span.End <= tr.Span.Start {
				return fmt.Errorf("token %d: trivia %v does not continue at %d", i, tr.Span, pos)
			}
			pos = tr.Span.End
		}
		if tok.Span.Start != pos {
			return fmt.Errorf("token %d (%v): starts at %d, want %d", i, tok.Kind, tok.Span.Start, pos)
		}
		if tok.Span.End <= tok.Span.Start || tok.Span.End > size {
			return fmt.Errorf("token %d (%v): bad span %v", i, tok.Kind, tok.Span)
		}
		if got := string(sf.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q, content %q", i, tok.Text, got)
		}
		pos = tok.Span.End
	}

	// хвост перед EOF: только пробелы и комментарии
	inComment := false
	for off := pos; off < size; off++ {
		b := sf.Content[off]
		switch {
		case b == '\n':
			inComment = false
		case inComment:
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f':
		default:
			return fmt.Errorf("byte %q at %d not covered by any token", b, off)
		}
	}
	return nil
}
