// Package tui is the terminal front-end of the timer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusdeck/internal/core/pomodoro"
)

const (
	defaultInterval = time.Second
	minBarWidth     = 20
	maxBarWidth     = 60
)

var (
	focusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8A76"))
	breakStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#84DCA8"))
	clockStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A85"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
)

// tickMsg carries the generation it was scheduled under. Ticks from an
// older generation were scheduled before a pause or reset and are dropped.
type tickMsg struct {
	generation int
}

// Model drives a pomodoro.Engine from bubbletea's update loop, which is the
// only goroutine that touches the engine.
type Model struct {
	engine     *pomodoro.Engine
	interval   time.Duration
	generation int
	bar        progress.Model
	footer     string
}

// Option configures a Model.
type Option func(*Model)

// WithInterval overrides the tick interval.
func WithInterval(interval time.Duration) Option {
	return func(model *Model) {
		if interval > 0 {
			model.interval = interval
		}
	}
}

// WithFooter sets a line shown under the key help.
func WithFooter(footer string) Option {
	return func(model *Model) {
		model.footer = footer
	}
}

// NewModel wraps engine.
func NewModel(engine *pomodoro.Engine, options ...Option) Model {
	model := Model{
		engine:   engine,
		interval: defaultInterval,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	model.bar.Width = maxBarWidth / 2
	for _, option := range options {
		option(&model)
	}
	return model
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.engine.StartPause()
			m.generation++
			return m, m.scheduleTick()
		case "r":
			m.engine.Reset()
			m.generation++
			return m, nil
		}
	case tickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.engine.Tick()
		return m, m.scheduleTick()
	case tea.WindowSizeMsg:
		width := msg.Width - 12
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width < minBarWidth {
			width = minBarWidth
		}
		m.bar.Width = width
	}
	return m, nil
}

func (m Model) scheduleTick() tea.Cmd {
	if !m.engine.Running() {
		return nil
	}
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	snapshot := m.engine.Snapshot()

	style := focusStyle
	if snapshot.Mode.IsBreak() {
		style = breakStyle
	}
	state := "paused"
	if snapshot.Running {
		state = "running"
	}

	var body strings.Builder
	body.WriteString(style.Render(snapshot.Mode.Label()))
	body.WriteString(dimStyle.Render("  " + state))
	body.WriteString("\n")
	body.WriteString(clockStyle.Render(snapshot.Clock()))
	body.WriteString("\n")
	body.WriteString(m.bar.ViewAs(snapshot.Progress()))
	body.WriteString("\n\n")
	body.WriteString(sessionDots(snapshot))
	body.WriteString(fmt.Sprintf("  Sessions: %d", snapshot.CompletedSessions))

	help := dimStyle.Render("space start/pause • r reset • q quit")
	if m.footer != "" {
		help += "\n" + dimStyle.Render(m.footer)
	}
	return boxStyle.Render(body.String()) + "\n" + help + "\n"
}

func sessionDots(snapshot pomodoro.Snapshot) string {
	filled := snapshot.CyclePosition()
	var dots strings.Builder
	for i := 0; i < snapshot.SessionsUntilLongBreak; i++ {
		if i < filled {
			dots.WriteString("●")
		} else {
			dots.WriteString("○")
		}
	}
	return dots.String()
}
