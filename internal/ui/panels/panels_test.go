package panels

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/app"
	"focusdeck/internal/core/background"
	"focusdeck/internal/core/model"
	"focusdeck/internal/core/pomodoro"
	"focusdeck/internal/storage"
)

func newHost(t *testing.T) *app.Host {
	t.Helper()
	host := app.New(storage.NewMemoryStore(), app.Options{
		Clock: pomodoro.NewManualClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)),
	})
	t.Cleanup(func() { _ = host.Close() })
	return host
}

func collectErrors(errs *[]error) func(error) {
	return func(err error) { *errs = append(*errs, err) }
}

func TestTodoPanelAddToggleDelete(t *testing.T) {
	test.NewTempApp(t)
	host := newHost(t)
	var errs []error
	panel := NewTodoPanel(host, collectErrors(&errs))

	panel.entry.SetText("   ")
	test.Tap(panel.add)
	if len(panel.items) != 0 {
		t.Fatalf("blank text should be ignored")
	}

	panel.entry.SetText("draft outline")
	panel.entry.OnSubmitted(panel.entry.Text)
	if len(panel.items) != 1 || panel.entry.Text != "" {
		t.Fatalf("expected one item and a cleared entry, got %d %q", len(panel.items), panel.entry.Text)
	}
	if panel.summary.Text != "1 of 1 open" {
		t.Fatalf("unexpected summary %q", panel.summary.Text)
	}

	row := panel.list.CreateItem()
	panel.bindItem(0, row)
	check := row.(*fyne.Container).Objects[0].(*widget.Check)
	if check.Text != "draft outline" || check.Checked {
		t.Fatalf("unexpected row %q %v", check.Text, check.Checked)
	}
	test.Tap(check)
	if !host.Todos()[0].Completed || panel.summary.Text != "0 of 1 open" {
		t.Fatalf("toggle did not reach the host")
	}

	remove := row.(*fyne.Container).Objects[1].(*widget.Button)
	test.Tap(remove)
	if len(host.Todos()) != 0 || len(panel.items) != 0 {
		t.Fatalf("delete did not reach the host")
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestBindItemDoesNotToggleWhileRendering(t *testing.T) {
	test.NewTempApp(t)
	host := newHost(t)
	if _, err := host.AddTodo("done already"); err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	if err := host.ToggleTodo(host.Todos()[0].ID); err != nil {
		t.Fatalf("ToggleTodo: %v", err)
	}

	panel := NewTodoPanel(host, nil)
	row := panel.list.CreateItem()
	panel.bindItem(0, row)
	panel.bindItem(0, row)
	if !host.Todos()[0].Completed {
		t.Fatalf("binding a row must not flip the item")
	}
}

func TestStatsPanel(t *testing.T) {
	test.NewTempApp(t)
	store := storage.NewMemoryStore()
	if err := store.Set(storage.KeyStats, model.Stats{
		TotalSessions:     6,
		TotalFocusMinutes: 150,
		LastSessionAt:     time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	host := app.New(store, app.Options{Clock: pomodoro.NewManualClock(time.Now())})
	defer host.Close()

	panel := NewStatsPanel(host, nil)
	if panel.sessions.Text != "6" || panel.focus.Text != "2h 30m" || panel.last.Text == "never" {
		t.Fatalf("unexpected labels %q %q %q", panel.sessions.Text, panel.focus.Text, panel.last.Text)
	}

	host.RecordSession(25)
	panel.Refresh()
	if panel.sessions.Text != "7" || panel.focus.Text != "2h 55m" {
		t.Fatalf("unexpected labels after a session %q %q", panel.sessions.Text, panel.focus.Text)
	}

	test.Tap(panel.reset)
	if panel.sessions.Text != "0" || panel.focus.Text != "0m" || panel.last.Text != "never" {
		t.Fatalf("unexpected labels after reset %q %q %q", panel.sessions.Text, panel.focus.Text, panel.last.Text)
	}
}

func TestCoffeePanel(t *testing.T) {
	test.NewTempApp(t)
	panel := NewCoffeePanel(newHost(t), nil)
	if panel.label.Text != "No coffee yet" {
		t.Fatalf("unexpected label %q", panel.label.Text)
	}
	test.Tap(panel.more)
	if panel.label.Text != "1 cup today" {
		t.Fatalf("unexpected label %q", panel.label.Text)
	}
	test.Tap(panel.less)
	test.Tap(panel.less)
	if panel.label.Text != "No coffee yet" {
		t.Fatalf("unexpected label %q", panel.label.Text)
	}
}

func TestMusicPanelOpensStream(t *testing.T) {
	test.NewTempApp(t)
	host := newHost(t)
	var opened []string
	panel, err := NewMusicPanel(host, app.MusicURL, func(u *url.URL) error {
		opened = append(opened, u.String())
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("NewMusicPanel: %v", err)
	}

	test.Tap(panel.toggle)
	if !host.MusicPlaying() || panel.toggle.Text != "Stop" {
		t.Fatalf("expected music on")
	}
	test.Tap(panel.toggle)
	if host.MusicPlaying() || panel.toggle.Text != "Play" {
		t.Fatalf("expected music off")
	}
	if len(opened) != 1 || opened[0] != app.MusicURL {
		t.Fatalf("expected the stream to open once, got %v", opened)
	}
}

func TestMusicPanelRevertsWhenBrowserFails(t *testing.T) {
	test.NewTempApp(t)
	host := newHost(t)
	var errs []error
	panel, err := NewMusicPanel(host, app.MusicURL, func(*url.URL) error {
		return errors.New("no browser")
	}, collectErrors(&errs))
	if err != nil {
		t.Fatalf("NewMusicPanel: %v", err)
	}

	test.Tap(panel.toggle)
	if host.MusicPlaying() || len(errs) != 1 {
		t.Fatalf("expected toggle to revert with one error, playing=%v errs=%v", host.MusicPlaying(), errs)
	}
}

func TestScenePanelSelectsPreset(t *testing.T) {
	test.NewTempApp(t)
	host := newHost(t)
	var applied []background.Preset
	panel := NewScenePanel(host, func(preset background.Preset) {
		applied = append(applied, preset)
	}, nil)

	if panel.selector.Selected != "City" {
		t.Fatalf("expected the stored preset to be selected, got %q", panel.selector.Selected)
	}
	panel.selector.SetSelected("Retro")
	if host.Background().ID != "retro" {
		t.Fatalf("selection did not reach the host")
	}
	if len(applied) != 1 || applied[0].Name != "Retro" {
		t.Fatalf("unexpected onChange calls %+v", applied)
	}
}
