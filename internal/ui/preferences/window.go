// Package preferences implements the pomodoro settings window.
package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focusdeck/internal/core/model"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	config     model.Config
	onSave     func(model.Config) error
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	sessions   *widget.Entry
	autoBreak  *widget.Check
	autoWork   *widget.Check
	sound      *widget.Check
	status     *widget.Label
	save       *widget.Button
	cancel     *widget.Button
}

// New creates the settings window. onSave receives the edited config; when
// it returns an error the window stays open and shows it.
func New(app fyne.App, config model.Config, onSave func(model.Config) error) *Window {
	window := app.NewWindow("FocusDeck Settings")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		work:       newNumberEntry(),
		shortBreak: newNumberEntry(),
		longBreak:  newNumberEntry(),
		sessions:   newNumberEntry(),
		autoBreak:  widget.NewCheck("Auto-start breaks", nil),
		autoWork:   widget.NewCheck("Auto-start focus sessions", nil),
		sound:      widget.NewCheck("Sound notifications", nil),
		status:     widget.NewLabel(""),
	}
	prefs.status.Importance = widget.DangerImportance
	prefs.status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("Focus (min)", prefs.work),
		widget.NewFormItem("Short break (min)", prefs.shortBreak),
		widget.NewFormItem("Long break (min)", prefs.longBreak),
		widget.NewFormItem("Sessions until long break", prefs.sessions),
	)

	prefs.save = widget.NewButton("Save", prefs.handleSave)
	prefs.save.Importance = widget.HighImportance
	prefs.cancel = widget.NewButton("Cancel", func() {
		prefs.UpdateConfig(prefs.config)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.cancel, layout.NewSpacer(), prefs.save)

	body := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.autoBreak,
		prefs.autoWork,
		prefs.sound,
		prefs.status,
	)
	window.SetContent(container.NewBorder(nil, buttons, nil, nil, body))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateConfig(config)
	return prefs
}

func newNumberEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = func(text string) error {
		if _, ok := parsePositiveInt(text); !ok {
			return errNotPositive
		}
		return nil
	}
	return entry
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateConfig replaces the window values.
func (prefs *Window) UpdateConfig(config model.Config) {
	prefs.config = config
	form := FormFromConfig(config)
	prefs.work.SetText(form.Work)
	prefs.shortBreak.SetText(form.ShortBreak)
	prefs.longBreak.SetText(form.LongBreak)
	prefs.sessions.SetText(form.SessionsUntilLongBreak)
	prefs.autoBreak.SetChecked(form.AutoStartBreak)
	prefs.autoWork.SetChecked(form.AutoStartWork)
	prefs.sound.SetChecked(form.SoundNotifications)
	prefs.status.SetText("")
}

func (prefs *Window) form() Form {
	return Form{
		Work:                   prefs.work.Text,
		ShortBreak:             prefs.shortBreak.Text,
		LongBreak:              prefs.longBreak.Text,
		SessionsUntilLongBreak: prefs.sessions.Text,
		AutoStartBreak:         prefs.autoBreak.Checked,
		AutoStartWork:          prefs.autoWork.Checked,
		SoundNotifications:     prefs.sound.Checked,
	}
}

func (prefs *Window) handleSave() {
	config := prefs.form().Apply(prefs.config)
	if prefs.onSave != nil {
		if err := prefs.onSave(config); err != nil {
			prefs.status.SetText(err.Error())
			return
		}
	}
	prefs.UpdateConfig(config)
	prefs.window.Hide()
}
