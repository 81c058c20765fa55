// Package tray keeps the system tray menu in step with the timer.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"focusdeck/internal/core/pomodoro"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnShow     func()
	OnSettings func()
	OnQuit     func()
}

// Icons are the tray icons per timer state.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
	Break   fyne.Resource
}

// App is the subset of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

const menuTitle = "FocusDeck"

// Manager handles system tray state.
type Manager struct {
	app        App
	callbacks  Callbacks
	icons      Icons
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	menu       *fyne.Menu
	icon       fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnToggle))

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show window", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Settings", invoke(&manager.callbacks.OnSettings)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	app.SetSystemTrayMenu(manager.menu)
	return manager
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

// Update renders snapshot into the status line, the toggle label and the
// icon. It must run on the Fyne thread.
func (manager *Manager) Update(snapshot pomodoro.Snapshot) {
	manager.statusItem.Label = StatusLine(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.app.SetSystemTrayMenu(manager.menu)
	manager.setIcon(manager.iconFor(snapshot))
}

// StatusLine describes snapshot for the tray and window title.
func StatusLine(snapshot pomodoro.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Mode.Label(), snapshot.Clock())
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) iconFor(snapshot pomodoro.Snapshot) fyne.Resource {
	switch {
	case !snapshot.Running:
		return manager.icons.Paused
	case snapshot.Mode.IsBreak():
		return manager.icons.Break
	default:
		return manager.icons.Running
	}
}

func (manager *Manager) setIcon(icon fyne.Resource) {
	if icon == nil || icon == manager.icon {
		return
	}
	manager.icon = icon
	manager.app.SetSystemTrayIcon(icon)
}
