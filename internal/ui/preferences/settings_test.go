package preferences

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"focusdeck/internal/core/model"
)

func TestParsePositiveInt(t *testing.T) {
	cases := map[string]struct {
		value int
		ok    bool
	}{
		"25":  {25, true},
		" 7 ": {7, true},
		"0":   {0, false},
		"-3":  {0, false},
		"abc": {0, false},
		"":    {0, false},
		"1.5": {0, false},
	}
	for input, want := range cases {
		value, ok := parsePositiveInt(input)
		if value != want.value || ok != want.ok {
			t.Fatalf("parsePositiveInt(%q) = %d, %v", input, value, ok)
		}
	}
}

func TestFormApplyKeepsPreviousOnInvalidNumbers(t *testing.T) {
	previous := model.DefaultConfig()
	form := Form{
		Work:                   "50",
		ShortBreak:             "0",
		LongBreak:              "-1",
		SessionsUntilLongBreak: "two",
		AutoStartBreak:         true,
		SoundNotifications:     true,
	}

	config := form.Apply(previous)
	want := previous
	want.WorkDuration = 50
	want.AutoStartBreak = true
	want.SoundNotifications = true
	if config != want {
		t.Fatalf("expected %+v, got %+v", want, config)
	}
}

func TestFormFromConfigRoundsThroughApply(t *testing.T) {
	config := model.Config{
		WorkDuration:           40,
		ShortBreakDuration:     8,
		LongBreakDuration:      20,
		SessionsUntilLongBreak: 3,
		AutoStartWork:          true,
	}
	if got := FormFromConfig(config).Apply(model.DefaultConfig()); got != config {
		t.Fatalf("expected %+v, got %+v", config, got)
	}
}

func TestWindowSaveDeliversEditedConfig(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []model.Config
	prefs := New(app, model.DefaultConfig(), func(config model.Config) error {
		saved = append(saved, config)
		return nil
	})

	prefs.work.SetText("45")
	prefs.sessions.SetText("0")
	test.Tap(prefs.sound)
	test.Tap(prefs.save)

	if len(saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saved))
	}
	got := saved[0]
	if got.WorkDuration != 45 || got.SessionsUntilLongBreak != 4 || !got.SoundNotifications {
		t.Fatalf("unexpected config %+v", got)
	}
	if prefs.sessions.Text != "4" {
		t.Fatalf("expected form to show the applied value, got %q", prefs.sessions.Text)
	}
}

func TestWindowShowsSaveError(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, model.DefaultConfig(), func(model.Config) error {
		return errors.New("disk full")
	})

	prefs.work.SetText("30")
	test.Tap(prefs.save)
	if prefs.status.Text != "disk full" {
		t.Fatalf("expected error to be shown, got %q", prefs.status.Text)
	}
	if prefs.work.Text != "30" {
		t.Fatalf("form should keep the unsaved edit")
	}

	test.Tap(prefs.cancel)
	if prefs.work.Text != "25" || prefs.status.Text != "" {
		t.Fatalf("cancel should restore the stored config")
	}
}
