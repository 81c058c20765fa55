package desk

import (
	"fyne.io/fyne/v2"

	"focusdeck/internal/core/pomodoro"
)

// Notifier posts a desktop notification describing the phase just entered.
type Notifier struct {
	app      fyne.App
	snapshot func() pomodoro.Snapshot
}

// NewNotifier creates a Notifier. snapshot is read when Notify runs, so the
// Notifier must be wrapped in pomodoro.AsyncNotifier when snapshot locks the
// runner.
func NewNotifier(app fyne.App, snapshot func() pomodoro.Snapshot) *Notifier {
	return &Notifier{app: app, snapshot: snapshot}
}

// Notify sends the notification.
func (notifier *Notifier) Notify() error {
	title, content := Message(notifier.snapshot())
	fyne.Do(func() {
		notifier.app.SendNotification(fyne.NewNotification(title, content))
	})
	return nil
}

// Message describes the phase snapshot is in.
func Message(snapshot pomodoro.Snapshot) (title, content string) {
	switch snapshot.Mode {
	case pomodoro.ModeShortBreak:
		return "Focus session complete", "Time for a short break."
	case pomodoro.ModeLongBreak:
		return "Focus session complete", "You earned a long break."
	default:
		return "Break is over", "Back to focus."
	}
}
