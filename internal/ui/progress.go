package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rtlil/internal/driver"
)

// maxRows bounds the file list; older finished files scroll away.
const maxRows = 12

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	failed  int
	width   int
	done    bool
}

type fileItem struct {
	path     string
	status   string
	stage    driver.Stage
	finished bool
	order    int // порядок завершения, 0 пока не завершён
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders check progress
// from events until the channel is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	return newProgressModel(title, files, events)
}

func newProgressModel(title string, files []string, events <-chan driver.Event) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d", m.title, m.finished(), len(m.items))
	if m.failed > 0 {
		header += fmt.Sprintf(", %d failed", m.failed)
	}
	header += ")"
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	for _, item := range m.visible() {
		status := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString("  " + status + " " + truncate(item.path, nameWidth) + "\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

// visible picks rows for the list: every unfinished file first, then the
// most recently finished ones, in input order, at most maxRows.
func (m *progressModel) visible() []fileItem {
	if len(m.items) <= maxRows {
		return m.items
	}
	keep := make([]bool, len(m.items))
	n := 0
	for i, it := range m.items {
		if !it.finished && it.status != "queued" && n < maxRows {
			keep[i] = true
			n++
		}
	}
	for latest := m.finished(); latest > 0 && n < maxRows; latest-- {
		for i, it := range m.items {
			if it.order == latest {
				keep[i] = true
				n++
				break
			}
		}
	}
	for i, it := range m.items {
		if n >= maxRows {
			break
		}
		if !keep[i] && it.status == "queued" {
			keep[i] = true
			n++
		}
	}
	out := make([]fileItem, 0, maxRows)
	for i, it := range m.items {
		if keep[i] {
			out = append(out, it)
		}
	}
	return out
}

func (m *progressModel) finished() int {
	n := 0
	for _, it := range m.items {
		if it.finished {
			n++
		}
	}
	return n
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok || m.items[idx].finished {
		return nil
	}
	item := &m.items[idx]
	item.stage = ev.Stage
	item.status = statusLabel(ev.Stage, ev.Status)
	if isFinal(ev) {
		item.finished = true
		item.order = m.finished()
		if ev.Status == driver.StatusError {
			m.failed++
		}
	}

	total := 0.0
	for _, it := range m.items {
		if it.finished {
			total += 1.0
		} else {
			total += progressFromStage(it.stage)
		}
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

// isFinal reports whether ev ends the file: a loaded file still has to be
// parsed, anything else that completes or fails is terminal.
func isFinal(ev driver.Event) bool {
	switch ev.Status {
	case driver.StatusError:
		return true
	case driver.StatusDone:
		return ev.Stage != driver.StageLoad
	}
	return false
}

func progressFromStage(stage driver.Stage) float64 {
	switch stage {
	case driver.StageLoad:
		return 0.1
	case driver.StageCache:
		return 0.2
	case driver.StageParse:
		return 0.5
	default:
		return 0.0
	}
}

func statusLabel(stage driver.Stage, status driver.Status) string {
	switch status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusError:
		return "error"
	case driver.StatusDone:
		switch stage {
		case driver.StageLoad:
			return "loaded"
		case driver.StageCache:
			return "cached"
		}
		return "ok"
	case driver.StatusWorking:
		switch stage {
		case driver.StageLoad:
			return "loading"
		case driver.StageCache:
			return "cache"
		case driver.StageParse:
			return "parsing"
		}
	}
	return ""
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "ok", "cached":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "loading", "loaded", "cache", "parsing":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
