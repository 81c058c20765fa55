package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid pomodoro config")

// Config contains the timer settings for one engine run.
// Durations are whole minutes.
type Config struct {
	WorkDuration           int  `yaml:"work_duration"`
	ShortBreakDuration     int  `yaml:"short_break_duration"`
	LongBreakDuration      int  `yaml:"long_break_duration"`
	SessionsUntilLongBreak int  `yaml:"sessions_until_long_break"`
	AutoStartBreak         bool `yaml:"auto_start_break"`
	AutoStartWork          bool `yaml:"auto_start_work"`
	SoundNotifications     bool `yaml:"sound_notifications"`
}

// DefaultConfig returns the classic 25/5/15 schedule with a long break every
// fourth session.
func DefaultConfig() Config {
	return Config{
		WorkDuration:           25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		SessionsUntilLongBreak: 4,
	}
}

// Validate reports every field that is out of range.
func (config Config) Validate() error {
	var problems []error
	if config.WorkDuration <= 0 {
		problems = append(problems, fmt.Errorf("%w: work duration must be positive, got %d", ErrInvalidConfig, config.WorkDuration))
	}
	if config.ShortBreakDuration <= 0 {
		problems = append(problems, fmt.Errorf("%w: short break duration must be positive, got %d", ErrInvalidConfig, config.ShortBreakDuration))
	}
	if config.LongBreakDuration <= 0 {
		problems = append(problems, fmt.Errorf("%w: long break duration must be positive, got %d", ErrInvalidConfig, config.LongBreakDuration))
	}
	if config.SessionsUntilLongBreak < 1 {
		problems = append(problems, fmt.Errorf("%w: sessions until long break must be at least 1, got %d", ErrInvalidConfig, config.SessionsUntilLongBreak))
	}
	return errors.Join(problems...)
}

// Normalized replaces each out-of-range field with its default value.
// Boolean flags are kept as they are.
func (config Config) Normalized() Config {
	defaults := DefaultConfig()
	if config.WorkDuration <= 0 {
		config.WorkDuration = defaults.WorkDuration
	}
	if config.ShortBreakDuration <= 0 {
		config.ShortBreakDuration = defaults.ShortBreakDuration
	}
	if config.LongBreakDuration <= 0 {
		config.LongBreakDuration = defaults.LongBreakDuration
	}
	if config.SessionsUntilLongBreak < 1 {
		config.SessionsUntilLongBreak = defaults.SessionsUntilLongBreak
	}
	return config
}
