// Package pomodoro implements the focus/break timer state machine and the
// clock subscription that drives it.
package pomodoro

import (
	"focusdeck/internal/core/model"
)

// Notifier emits the audible cue at a phase boundary.
type Notifier interface {
	Notify() error
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier attaches the cue played at phase boundaries.
func WithNotifier(notifier Notifier) Option {
	return func(engine *Engine) {
		engine.notifier = notifier
	}
}

// WithSessionObserver attaches the session-completed callback.
func WithSessionObserver(observer func(workMinutes int)) Option {
	return func(engine *Engine) {
		engine.onSessionComplete = observer
	}
}

// Engine is the pomodoro state machine. It is driven by Tick once per
// elapsed second and is not safe for concurrent use.
type Engine struct {
	config            model.Config
	mode              Mode
	running           bool
	remaining         int
	completed         int
	notifier          Notifier
	onSessionComplete func(workMinutes int)
}

// New creates an Engine in the initial work phase.
func New(config model.Config, options ...Option) *Engine {
	engine := &Engine{}
	for _, option := range options {
		option(engine)
	}
	engine.Reconfigure(config)
	return engine
}

// SetNotifier replaces the notifier. Nil disables the cue.
func (engine *Engine) SetNotifier(notifier Notifier) {
	engine.notifier = notifier
}

// SetSessionObserver replaces the session-completed callback. Nil detaches it.
func (engine *Engine) SetSessionObserver(observer func(workMinutes int)) {
	engine.onSessionComplete = observer
}

// Reconfigure replaces the configuration and resets all state.
// Out-of-range fields fall back to their defaults.
func (engine *Engine) Reconfigure(config model.Config) {
	engine.config = config.Normalized()
	engine.resetState()
}

// Reset discards all progress and returns to a stopped work phase.
func (engine *Engine) Reset() {
	engine.resetState()
}

// StartPause flips the running flag.
func (engine *Engine) StartPause() {
	engine.running = !engine.running
}

// Tick advances the countdown by one second. The phase transition happens
// on the tick that reaches zero. Ticks while stopped are ignored.
func (engine *Engine) Tick() {
	if !engine.running {
		return
	}
	if engine.remaining > 0 {
		engine.remaining--
		if engine.remaining > 0 {
			return
		}
	}
	engine.finishPhase()
}

func (engine *Engine) finishPhase() {
	engine.notify()

	if engine.mode == ModeWork {
		workMinutes := engine.config.WorkDuration
		engine.completed++
		if engine.completed%engine.config.SessionsUntilLongBreak == 0 {
			engine.mode = ModeLongBreak
		} else {
			engine.mode = ModeShortBreak
		}
		engine.remaining = engine.phaseSeconds(engine.mode)
		engine.running = engine.config.AutoStartBreak
		if engine.onSessionComplete != nil {
			engine.onSessionComplete(workMinutes)
		}
		return
	}

	engine.mode = ModeWork
	engine.remaining = engine.phaseSeconds(ModeWork)
	engine.running = engine.config.AutoStartWork
}

func (engine *Engine) notify() {
	if !engine.config.SoundNotifications || engine.notifier == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	_ = engine.notifier.Notify()
}

func (engine *Engine) resetState() {
	engine.mode = ModeWork
	engine.running = false
	engine.completed = 0
	engine.remaining = engine.phaseSeconds(ModeWork)
}

func (engine *Engine) phaseSeconds(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return engine.config.ShortBreakDuration * 60
	case ModeLongBreak:
		return engine.config.LongBreakDuration * 60
	default:
		return engine.config.WorkDuration * 60
	}
}

// Config returns the active configuration.
func (engine *Engine) Config() model.Config {
	return engine.config
}

// RemainingSeconds returns the seconds left in the current phase.
func (engine *Engine) RemainingSeconds() int {
	return engine.remaining
}

// Running reports whether the countdown is active.
func (engine *Engine) Running() bool {
	return engine.running
}

// Mode returns the current phase kind.
func (engine *Engine) Mode() Mode {
	return engine.mode
}

// CompletedSessions returns the number of work phases finished since the
// last reset.
func (engine *Engine) CompletedSessions() int {
	return engine.completed
}

// TotalPhaseDuration returns the full length of the current phase in seconds.
func (engine *Engine) TotalPhaseDuration() int {
	return engine.phaseSeconds(engine.mode)
}

// Progress returns the elapsed share of the current phase.
func (engine *Engine) Progress() float64 {
	return progress(engine.TotalPhaseDuration(), engine.remaining)
}

// Snapshot copies the current state.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:                   engine.mode,
		Running:                engine.running,
		RemainingSeconds:       engine.remaining,
		TotalSeconds:           engine.TotalPhaseDuration(),
		CompletedSessions:      engine.completed,
		SessionsUntilLongBreak: engine.config.SessionsUntilLongBreak,
	}
}

func progress(total, remaining int) float64 {
	if total <= 0 {
		return 1
	}
	value := float64(total-remaining) / float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
