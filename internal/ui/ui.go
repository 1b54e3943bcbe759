package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hub75hat/actled/internal/model"
)

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

const statusBarWidth = 50

// StatusLine renders one snapshot as a fixed-width line: load percent,
// activity glyph and a bar graph.
func StatusLine(st model.Status) string {
	glyph := " "
	if st.Flashing {
		glyph = flashStyle.Render("*")
	}
	return fmt.Sprintf("CPU: %5.1f%% %s %s", st.Load, glyph, gaugeBar(st.Load, statusBarWidth))
}

// PrintLines writes a continuously overwritten one-line status to w until
// the stream closes, then terminates the line.
func PrintLines(w io.Writer, stream <-chan model.Status) {
	for st := range stream {
		fmt.Fprint(w, "\r"+StatusLine(st))
	}
	fmt.Fprintln(w)
}

// Model renders live snapshots from the monitor loop in a full-screen view.
type Model struct {
	latest  model.Status
	stream  <-chan model.Status
	stop    func()
	started time.Time
	width   int
	height  int
}

// New builds the TUI model over a running status stream; stop cancels the
// monitor when the user quits.
func New(stream <-chan model.Status, stop func()) *Model {
	return &Model{
		stream:  stream,
		stop:    stop,
		started: time.Now(),
		width:   120,
		height:  40,
	}
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/20, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stop()
			return m, tea.Quit
		}
	case tickMsg:
		select {
		case st, ok := <-m.stream:
			if ok {
				m.latest = st
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	st := m.latest
	header := titleStyle.Render("CPU Activity Indicator") + "  " +
		subtleStyle.Render(st.Timestamp.Format("Mon Jan 2 15:04:05 MST 2006"))

	loadCard := card("CPU load", gaugeBar(st.Load, 28))

	state := "idle"
	if st.Flashing {
		state = flashStyle.Render("flashing")
	}
	ledCard := card("LED", state)

	statsCard := card("Flashes",
		fmt.Sprintf("%d total   up %s", st.FlashCount, time.Since(m.started).Round(time.Second)))

	line := lipgloss.JoinHorizontal(lipgloss.Top, loadCard, ledCard, statsCard)
	return lipgloss.JoinVertical(lipgloss.Left, header, line)
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}

// RunTUI starts the Bubble Tea program over the stream and drains any
// remaining snapshots after it exits so the monitor loop can finish.
func RunTUI(stream <-chan model.Status, stop func()) error {
	prog := tea.NewProgram(New(stream, stop), tea.WithAltScreen())
	_, err := prog.Run()
	for range stream {
	}
	return err
}
