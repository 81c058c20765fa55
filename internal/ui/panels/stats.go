package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/model"
	"focusdeck/internal/core/stats"
)

// StatsSource is the statistics state behind StatsPanel.
type StatsSource interface {
	Stats() model.Stats
	ResetStats() error
}

// StatsPanel shows lifetime totals.
type StatsPanel struct {
	source   StatsSource
	onError  func(error)
	sessions *widget.Label
	focus    *widget.Label
	last     *widget.Label
	reset    *widget.Button
	content  fyne.CanvasObject
}

// NewStatsPanel builds the panel from source.
func NewStatsPanel(source StatsSource, onError func(error)) *StatsPanel {
	panel := &StatsPanel{
		source:   source,
		onError:  onError,
		sessions: widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		focus:    widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}),
		last:     widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{}),
	}
	panel.reset = widget.NewButtonWithIcon("Reset stats", theme.DeleteIcon(), func() {
		report(panel.onError, panel.source.ResetStats())
		panel.Refresh()
	})

	panel.content = container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Sessions"), panel.sessions,
			widget.NewLabel("Focus time"), panel.focus,
			widget.NewLabel("Last session"), panel.last,
		),
		panel.reset,
	)
	panel.Refresh()
	return panel
}

// Content returns the root object.
func (panel *StatsPanel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh reloads the totals from source.
func (panel *StatsPanel) Refresh() {
	current := panel.source.Stats()
	panel.sessions.SetText(strconv.Itoa(current.TotalSessions))
	panel.focus.SetText(stats.FormatMinutes(current.TotalFocusMinutes))
	if current.LastSessionAt.IsZero() {
		panel.last.SetText("never")
	} else {
		panel.last.SetText(current.LastSessionAt.Local().Format("Jan 2 15:04"))
	}
}
