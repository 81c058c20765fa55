package tray

import (
	"testing"

	"fyne.io/fyne/v2"

	"focusdeck/internal/core/pomodoro"
)

type fakeApp struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeApp) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeApp) SetSystemTrayIcon(icon fyne.Resource) {
	app.icons = append(app.icons, icon)
}

func testIcons() Icons {
	return Icons{
		Running: fyne.NewStaticResource("running.png", []byte("r")),
		Paused:  fyne.NewStaticResource("paused.png", []byte("p")),
		Break:   fyne.NewStaticResource("break.png", []byte("b")),
	}
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	app := &fakeApp{}
	calls := map[string]int{}
	New(app, testIcons(), Callbacks{
		OnToggle:   func() { calls["toggle"]++ },
		OnReset:    func() { calls["reset"]++ },
		OnShow:     func() { calls["show"]++ },
		OnSettings: func() { calls["settings"]++ },
		OnQuit:     func() { calls["quit"]++ },
	})
	if len(app.menus) != 1 {
		t.Fatalf("expected menu to be installed once, got %d", len(app.menus))
	}
	menu := app.menus[0]
	for label, key := range map[string]string{
		"Start":       "toggle",
		"Reset":       "reset",
		"Show window": "show",
		"Settings":    "settings",
		"Quit":        "quit",
	} {
		item := findItem(menu, label)
		if item == nil {
			t.Fatalf("missing menu item %q", label)
		}
		item.Action()
		if calls[key] != 1 {
			t.Fatalf("%q did not invoke its callback", label)
		}
	}
}

func TestMenuToleratesMissingCallbacks(t *testing.T) {
	app := &fakeApp{}
	New(app, testIcons(), Callbacks{})
	findItem(app.menus[0], "Quit").Action()
}

func TestUpdateReflectsSnapshot(t *testing.T) {
	app := &fakeApp{}
	icons := testIcons()
	manager := New(app, icons, Callbacks{})

	manager.Update(pomodoro.Snapshot{Mode: pomodoro.ModeWork, Running: true, RemainingSeconds: 754})
	if manager.statusItem.Label != "FOCUS 12:34" {
		t.Fatalf("unexpected status %q", manager.statusItem.Label)
	}
	if manager.toggleItem.Label != "Pause" {
		t.Fatalf("expected Pause, got %q", manager.toggleItem.Label)
	}

	manager.Update(pomodoro.Snapshot{Mode: pomodoro.ModeWork, Running: true, RemainingSeconds: 753})
	manager.Update(pomodoro.Snapshot{Mode: pomodoro.ModeLongBreak, Running: false, RemainingSeconds: 900})
	if manager.statusItem.Label != "LONG BREAK 15:00 (paused)" {
		t.Fatalf("unexpected status %q", manager.statusItem.Label)
	}
	manager.Update(pomodoro.Snapshot{Mode: pomodoro.ModeShortBreak, Running: true, RemainingSeconds: 300})

	want := []fyne.Resource{icons.Running, icons.Paused, icons.Break}
	if len(app.icons) != len(want) {
		t.Fatalf("expected %d icon changes, got %d", len(want), len(app.icons))
	}
	for i := range want {
		if app.icons[i] != want[i] {
			t.Fatalf("icon %d: got %s, want %s", i, app.icons[i].Name(), want[i].Name())
		}
	}
}
