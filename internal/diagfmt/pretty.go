package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rtlil/internal/diag"
	"rtlil/internal/source"
)

const tabWidth = 4

type palette struct {
	err    *color.Color
	warn   *color.Color
	info   *color.Color
	code   *color.Color
	caret  *color.Color
	note   *color.Color
	gutter *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.note, p.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, pal)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	if int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode), start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity),
		pal.code.Sprint(d.Code.ID()),
		d.Message)
	writeSnippet(w, f, d.Primary, opts, pal)

	if !opts.ShowNotes && d.Code != diag.ObsTimings {
		return
	}
	for _, n := range d.Notes {
		if int(n.Span.File) >= fs.Len() {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
			continue
		}
		nf := fs.Get(n.Span.File)
		pos, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
			formatPath(nf, fs, opts.PathMode), pos.Line, pos.Col, n.Msg)
		writeSnippet(w, nf, n.Span, opts, pal)
	}
}

// writeSnippet печатает строку span'а (и Context строк перед ней) с
// подчёркиванием; многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	start := f.Position(sp.Start)
	end := f.Position(sp.End)

	first := start.Line
	if ctx, err := safecast.Conv[uint32](opts.Context); err == nil && start.Line > 0 {
		first = start.Line - min(ctx, start.Line-1)
	}
	gutterWidth := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		text := clip(expandTabs(f.GetLine(ln)), opts.Width)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := f.GetLine(start.Line)
	startCol := int(start.Col) - 1
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(int(end.Col)-1, len(line))
	}
	startCol = min(startCol, len(line))
	endCol = max(endCol, startCol)

	pad := runewidth.StringWidth(expandTabs(line[:startCol]))
	width := max(1, runewidth.StringWidth(expandTabs(line[startCol:endCol])))
	marker := "^" + strings.Repeat("~", width-1)

	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprint(strings.Repeat(" ", gutterWidth)+" |"),
		strings.Repeat(" ", pad),
		pal.caret.Sprint(marker))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// clip укорачивает строку до width колонок с учётом широких рун.
func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, int(width), "")
	}
	return runewidth.Truncate(s, int(width), "...")
}
