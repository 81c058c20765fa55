// Package desk assembles the main widget window: the timer panel over the
// selected gradient with the side panels in tabs.
package desk

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/app"
	"focusdeck/internal/core/background"
	"focusdeck/internal/core/pomodoro"
	"focusdeck/internal/logger"
	"focusdeck/internal/ui/panels"
	"focusdeck/internal/ui/shortcuts"
	"focusdeck/internal/ui/timer"
)

const (
	windowTitle  = "FocusDeck"
	windowWidth  = 760
	windowHeight = 460
	splitOffset  = 0.55
)

// Window is the main widget window.
type Window struct {
	window   fyne.Window
	host     *app.Host
	log      *logger.Logger
	gradient *canvas.LinearGradient
	timer    *timer.Panel
	todos    *panels.TodoPanel
	stats    *panels.StatsPanel
	coffee   *panels.CoffeePanel
	music    *panels.MusicPanel
	scene    *panels.ScenePanel
	tracker  *shortcuts.Tracker
}

// New builds the main window. Closing it hides it; the tray keeps the
// process alive.
func New(fyneApp fyne.App, host *app.Host, log *logger.Logger, onSettings func()) (*Window, error) {
	window := fyneApp.NewWindow(windowTitle)
	if fyneApp.Icon() != nil {
		window.SetIcon(fyneApp.Icon())
	}

	desk := &Window{
		window:  window,
		host:    host,
		log:     log,
		tracker: shortcuts.NewTracker(),
	}
	onError := func(err error) {
		log.Errorw("widget action failed", "error", err)
	}

	runner := host.Runner()
	desk.timer = timer.New(runner.Snapshot(), timer.Callbacks{
		OnToggle:   func() { runner.StartPause() },
		OnReset:    func() { runner.Reset() },
		OnSettings: onSettings,
	})
	desk.todos = panels.NewTodoPanel(host, onError)
	desk.stats = panels.NewStatsPanel(host, onError)
	desk.coffee = panels.NewCoffeePanel(host, onError)
	music, err := panels.NewMusicPanel(host, app.MusicURL, fyneApp.OpenURL, onError)
	if err != nil {
		return nil, fmt.Errorf("build music panel: %w", err)
	}
	desk.music = music
	desk.scene = panels.NewScenePanel(host, desk.applyBackground, onError)

	preset := host.Background()
	desk.gradient = canvas.NewLinearGradient(preset.From, preset.To, 135)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Tasks", theme.ListIcon(), desk.todos.Content()),
		container.NewTabItemWithIcon("Stats", theme.InfoIcon(), desk.stats.Content()),
		container.NewTabItemWithIcon("Extras", theme.SettingsIcon(), container.NewVBox(
			widget.NewCard("Coffee", "", desk.coffee.Content()),
			widget.NewCard("Music", "", desk.music.Content()),
			widget.NewCard("Scene", "", desk.scene.Content()),
		)),
	)
	tabs.OnSelected = func(*container.TabItem) {
		desk.todos.Refresh()
		desk.stats.Refresh()
		desk.coffee.Refresh()
	}

	split := container.NewHSplit(desk.timer.Content(), container.NewPadded(tabs))
	split.Offset = splitOffset
	window.SetContent(container.NewStack(desk.gradient, split))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetCloseIntercept(window.Hide)

	desk.bindKeys()
	return desk, nil
}

// Window returns the underlying Fyne window.
func (desk *Window) Window() fyne.Window {
	return desk.window
}

// Show brings the window forward.
func (desk *Window) Show() {
	desk.window.Show()
	desk.window.RequestFocus()
}

// Apply renders a runner event. It must run on the Fyne thread.
func (desk *Window) Apply(event pomodoro.Event) {
	desk.timer.Update(event.Snapshot)
	if event.Type == pomodoro.EventSessionComplete {
		desk.stats.Refresh()
	}
}

func (desk *Window) applyBackground(preset background.Preset) {
	desk.gradient.StartColor = preset.From
	desk.gradient.EndColor = preset.To
	desk.gradient.Refresh()
}

func (desk *Window) bindKeys() {
	deskCanvas, ok := desk.window.Canvas().(desktop.Canvas)
	if !ok {
		return
	}
	deskCanvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
		desk.tracker.Down(event.Name)
		desk.handleKey(event.Name)
	})
	deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
		desk.tracker.Up(event.Name)
	})
}

func (desk *Window) handleKey(key fyne.KeyName) {
	_, textFocused := desk.window.Canvas().Focused().(*widget.Entry)
	switch shortcuts.Resolve(key, desk.tracker.Modifiers(), textFocused) {
	case shortcuts.ActionToggle:
		desk.host.Runner().StartPause()
	case shortcuts.ActionReset:
		desk.host.Runner().Reset()
	}
}
