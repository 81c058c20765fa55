package panels

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MusicSource is the music toggle behind MusicPanel.
type MusicSource interface {
	MusicPlaying() bool
	ToggleMusic() bool
}

// MusicPanel starts the lofi stream in the browser.
type MusicPanel struct {
	source  MusicSource
	stream  *url.URL
	openURL func(*url.URL) error
	onError func(error)
	status  *widget.Label
	toggle  *widget.Button
	content fyne.CanvasObject
}

// NewMusicPanel builds the panel. openURL is usually fyne.App.OpenURL.
func NewMusicPanel(source MusicSource, streamURL string, openURL func(*url.URL) error, onError func(error)) (*MusicPanel, error) {
	stream, err := url.Parse(streamURL)
	if err != nil {
		return nil, fmt.Errorf("parse music url: %w", err)
	}
	panel := &MusicPanel{
		source:  source,
		stream:  stream,
		openURL: openURL,
		onError: onError,
		status:  widget.NewLabel(""),
	}
	panel.toggle = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), panel.handleToggle)
	panel.content = container.NewVBox(
		widget.NewLabelWithStyle("Lofi beats", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		panel.status,
		panel.toggle,
	)
	panel.Refresh()
	return panel, nil
}

// Content returns the root object.
func (panel *MusicPanel) Content() fyne.CanvasObject {
	return panel.content
}

// Refresh renders the toggle state.
func (panel *MusicPanel) Refresh() {
	if panel.source.MusicPlaying() {
		panel.status.SetText("Playing in your browser")
		panel.toggle.SetText("Stop")
		panel.toggle.SetIcon(theme.MediaStopIcon())
		return
	}
	panel.status.SetText("Stopped")
	panel.toggle.SetText("Play")
	panel.toggle.SetIcon(theme.MediaPlayIcon())
}

func (panel *MusicPanel) handleToggle() {
	if panel.source.ToggleMusic() && panel.openURL != nil {
		if err := panel.openURL(panel.stream); err != nil {
			panel.source.ToggleMusic()
			report(panel.onError, fmt.Errorf("open music stream: %w", err))
		}
	}
	panel.Refresh()
}
