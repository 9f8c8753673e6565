package diagfmt

import (
	"encoding/json"
	"io"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rtlil/internal/ir"
)

// FileStats: статистика одного файла для вывода.
type FileStats struct {
	Path  string   `json:"path"`
	Stats ir.Stats `json:"stats"`
}

// FormatStatsPretty печатает таблицу счётчиков; числа группируются по
// разрядам (12,345).
func FormatStatsPretty(w io.Writer, files []FileStats, total ir.Stats) error {
	p := message.NewPrinter(language.English)
	for _, f := range files {
		if _, err := p.Fprintf(w, "%s\n", f.Path); err != nil {
			return err
		}
		writeStatsBody(p, w, f.Stats)
	}
	if len(files) > 1 {
		p.Fprintf(w, "total (%d files)\n", len(files))
		writeStatsBody(p, w, total)
	}
	return nil
}

func writeStatsBody(p *message.Printer, w io.Writer, st ir.Stats) {
	if st.Top != "" {
		p.Fprintf(w, "  %-12s %s\n", "top", st.Top)
	}
	rows := []struct {
		name  string
		value int
	}{
		{"modules", st.Modules},
		{"wires", st.Wires},
		{"wire bits", st.WireBits},
		{"ports", st.Ports},
		{"memories", st.Memories},
		{"cells", st.Cells},
		{"processes", st.Processes},
		{"switches", st.Switches},
		{"max depth", st.MaxDepth},
		{"connections", st.Connections},
	}
	for _, r := range rows {
		p.Fprintf(w, "  %-12s %d\n", r.name, r.value)
	}

	types := make([]string, 0, len(st.CellTypes))
	for t := range st.CellTypes {
		types = append(types, t)
	}
	slices.Sort(types)
	for _, t := range types {
		p.Fprintf(w, "    %-24s %d\n", t, st.CellTypes[t])
	}
}

// FormatStatsJSON выводит статистику в JSON формате
func FormatStatsJSON(w io.Writer, files []FileStats, total ir.Stats) error {
	out := struct {
		Files []FileStats `json:"files"`
		Total ir.Stats    `json:"total"`
	}{Files: files, Total: total}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
