package preferences

import (
	"errors"
	"strconv"
	"strings"

	"focusdeck/internal/core/model"
)

var errNotPositive = errors.New("enter a whole number above zero")

// Form holds the raw values of the settings window.
type Form struct {
	Work                   string
	ShortBreak             string
	LongBreak              string
	SessionsUntilLongBreak string
	AutoStartBreak         bool
	AutoStartWork          bool
	SoundNotifications     bool
}

// FormFromConfig renders config into form values.
func FormFromConfig(config model.Config) Form {
	return Form{
		Work:                   strconv.Itoa(config.WorkDuration),
		ShortBreak:             strconv.Itoa(config.ShortBreakDuration),
		LongBreak:              strconv.Itoa(config.LongBreakDuration),
		SessionsUntilLongBreak: strconv.Itoa(config.SessionsUntilLongBreak),
		AutoStartBreak:         config.AutoStartBreak,
		AutoStartWork:          config.AutoStartWork,
		SoundNotifications:     config.SoundNotifications,
	}
}

// Apply overlays form onto previous. Numeric fields that are not positive
// integers keep their previous value.
func (form Form) Apply(previous model.Config) model.Config {
	config := previous
	if minutes, ok := parsePositiveInt(form.Work); ok {
		config.WorkDuration = minutes
	}
	if minutes, ok := parsePositiveInt(form.ShortBreak); ok {
		config.ShortBreakDuration = minutes
	}
	if minutes, ok := parsePositiveInt(form.LongBreak); ok {
		config.LongBreakDuration = minutes
	}
	if sessions, ok := parsePositiveInt(form.SessionsUntilLongBreak); ok {
		config.SessionsUntilLongBreak = sessions
	}
	config.AutoStartBreak = form.AutoStartBreak
	config.AutoStartWork = form.AutoStartWork
	config.SoundNotifications = form.SoundNotifications
	return config
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
