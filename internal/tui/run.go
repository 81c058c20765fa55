package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/core/pomodoro"
)

// Run shows the timer in the terminal until the user quits.
func Run(engine *pomodoro.Engine, options ...Option) error {
	program := tea.NewProgram(NewModel(engine, options...), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
