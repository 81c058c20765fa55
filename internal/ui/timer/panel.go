// Package timer renders the countdown panel: phase title, clock, progress
// and the session dots of the current long-break cycle.
package timer

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/pomodoro"
)

// Callbacks are the panel's button handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

var (
	textColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	focusColor    = color.NRGBA{R: 255, G: 138, B: 118, A: 255}
	breakColor    = color.NRGBA{R: 132, G: 220, B: 168, A: 255}
	dotDoneColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	dotEmptyColor = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
)

const (
	titleTextSize = 18
	clockTextSize = 64
	dotDiameter   = 10
)

// Panel is the timer view. Update must run on the Fyne thread.
type Panel struct {
	title       *canvas.Text
	clock       *canvas.Text
	progress    *widget.ProgressBar
	dots        *fyne.Container
	sessions    *widget.Label
	toggle      *widget.Button
	reset       *widget.Button
	settings    *widget.Button
	content     fyne.CanvasObject
	dotCapacity int
}

// New builds the panel with its initial state taken from snapshot.
func New(snapshot pomodoro.Snapshot, callbacks Callbacks) *Panel {
	title := canvas.NewText("", focusColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = titleTextSize

	clock := canvas.NewText("--:--", textColor)
	clock.Alignment = fyne.TextAlignCenter
	clock.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.TextSize = clockTextSize

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	toggle := widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), callbacks.OnToggle)
	toggle.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), callbacks.OnReset)
	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), callbacks.OnSettings)

	panel := &Panel{
		title:    title,
		clock:    clock,
		progress: progress,
		dots:     container.NewHBox(),
		sessions: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		toggle:   toggle,
		reset:    reset,
		settings: settings,
	}

	buttons := container.NewHBox(toggle, reset, settings)
	panel.content = container.New(&panelLayout{},
		title,
		clock,
		progress,
		container.NewCenter(panel.dots),
		panel.sessions,
		container.NewCenter(buttons),
	)

	panel.Update(snapshot)
	return panel
}

// Content returns the root object.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// Update renders snapshot.
func (panel *Panel) Update(snapshot pomodoro.Snapshot) {
	panel.title.Text = snapshot.Mode.Label()
	panel.title.Color = focusColor
	if snapshot.Mode.IsBreak() {
		panel.title.Color = breakColor
	}
	panel.title.Refresh()

	panel.clock.Text = snapshot.Clock()
	panel.clock.Refresh()

	panel.progress.SetValue(snapshot.Progress())

	if snapshot.Running {
		panel.toggle.SetText("Pause")
		panel.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		panel.toggle.SetText("Start")
		panel.toggle.SetIcon(theme.MediaPlayIcon())
	}

	panel.updateDots(snapshot.SessionsUntilLongBreak, snapshot.CyclePosition())
	panel.sessions.SetText(fmt.Sprintf("Sessions: %d", snapshot.CompletedSessions))
}

func (panel *Panel) updateDots(capacity, filled int) {
	if capacity != panel.dotCapacity {
		panel.dots.RemoveAll()
		for i := 0; i < capacity; i++ {
			dot := canvas.NewCircle(dotEmptyColor)
			panel.dots.Add(container.NewGridWrap(fyne.NewSize(dotDiameter, dotDiameter), dot))
		}
		panel.dotCapacity = capacity
	}
	for i, object := range panel.dots.Objects {
		dot := object.(*fyne.Container).Objects[0].(*canvas.Circle)
		fill := dotEmptyColor
		if i < filled {
			fill = dotDoneColor
		}
		if dot.FillColor != fill {
			dot.FillColor = fill
			dot.Refresh()
		}
	}
}

// panelLayout stacks the rows centered, giving spare height to the clock.
type panelLayout struct{}

func (layout *panelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 6 {
		return
	}
	pad := theme.Padding() * 2
	available := size.Width - pad*2
	if available < 0 {
		available = 0
	}

	fixed := float32(0)
	for i, object := range objects {
		if i == 1 {
			continue
		}
		fixed += object.MinSize().Height + pad
	}
	clockHeight := size.Height - fixed - pad
	if clockMin := objects[1].MinSize().Height; clockHeight < clockMin {
		clockHeight = clockMin
	}

	y := pad
	for i, object := range objects {
		height := object.MinSize().Height
		if i == 1 {
			height = clockHeight
		}
		object.Move(fyne.NewPos(pad, y))
		object.Resize(fyne.NewSize(available, height))
		y += height + pad
	}
}

func (layout *panelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	pad := theme.Padding() * 2
	width := float32(0)
	height := pad
	for _, object := range objects {
		objectMin := object.MinSize()
		if objectMin.Width > width {
			width = objectMin.Width
		}
		height += objectMin.Height + pad
	}
	return fyne.NewSize(width+pad*2, height)
}
