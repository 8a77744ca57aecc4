package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingLeft(2)

	clockStyle = lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 4).
		MarginLeft(2).
		MarginTop(1)

	runningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#50FA7B")).
		Bold(true)

	stoppedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB800")).
		Bold(true)

	lapStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00A9E0")).
		PaddingLeft(4)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		PaddingTop(1).
		PaddingLeft(2)

	noteStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Italic(true).
		PaddingLeft(2)
)

type tickMsg struct{}

// model holds the state of the stopwatch TUI
type model struct {
	running bool
	start   boottime.Instant // valid while running
	accum   time.Duration    // time accumulated across previous runs
	laps    []time.Duration
	width   int
	height  int
}

func initialModel() model {
	return model{}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// elapsed returns the total displayed time, combining finished runs
// with the live suspend-aware reading of the current one.
func (m model) elapsed() time.Duration {
	if !m.running {
		return m.accum
	}
	return m.accum + m.start.Elapsed()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The tick only redraws; elapsed time always comes from the
		// clock, so a missed tick never loses time.
		return m, tick()
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ", "enter":
		if m.running {
			m.accum += m.start.Elapsed()
			m.running = false
		} else {
			m.start = boottime.Now()
			m.running = true
		}

	case "l":
		if m.running {
			m.laps = append(m.laps, m.elapsed())
		}

	case "r":
		m.running = false
		m.accum = 0
		m.laps = nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏱  Boottime Stopwatch"))
	b.WriteString("\n")

	state := stoppedStyle.Render("STOPPED")
	if m.running {
		state = runningStyle.Render("RUNNING")
	}
	face := fmt.Sprintf("%s\n\n%s", formatElapsed(m.elapsed()), state)
	b.WriteString(clockStyle.Render(face))
	b.WriteString("\n")

	if len(m.laps) > 0 {
		b.WriteString("\n")
		prev := time.Duration(0)
		for i, lap := range m.laps {
			b.WriteString(lapStyle.Render(fmt.Sprintf("lap %2d  %s  (+%s)",
				i+1, formatElapsed(lap), formatElapsed(lap-prev))))
			b.WriteString("\n")
			prev = lap
		}
	}

	b.WriteString(noteStyle.Render("Sleep the machine while running: suspended time still counts."))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: start/stop • l: lap • r: reset • q: quit"))
	b.WriteString("\n")

	return b.String()
}

func formatElapsed(d time.Duration) string {
	d = d.Round(10 * time.Millisecond)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	cs := d / (10 * time.Millisecond)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
	}
	return fmt.Sprintf("%02d:%02d.%02d", m, s, cs)
}

func startTUI() error {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
