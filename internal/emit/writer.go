package emit

import (
	"strings"
)

// Writer accumulates output lines with indentation.
type Writer struct {
	opt         Options
	buf         strings.Builder
	indentLevel int
	atLineStart bool
}

func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults(), atLineStart: true}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf.WriteByte('\t')
		}
	} else {
		for range w.indentLevel * w.opt.IndentWidth {
			w.buf.WriteByte(' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes s, indenting it when it starts a line.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf.WriteString(s)
	w.atLineStart = s[len(s)-1] == '\n'
}

// Space separates two words on the current line.
func (w *Writer) Space() {
	if w.atLineStart {
		return
	}
	w.buf.WriteByte(' ')
}

func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// Line writes one indented line made of words.
func (w *Writer) Line(words ...string) {
	for i, s := range words {
		if i > 0 {
			w.Space()
		}
		w.WriteString(s)
	}
	w.Newline()
}

func (w *Writer) IndentPush() {
	w.indentLevel++
}

func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
