package pomodoro

import "time"

// Mode is the kind of the current phase.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// IsBreak reports whether the mode is one of the break phases.
func (mode Mode) IsBreak() bool {
	return mode == ModeShortBreak || mode == ModeLongBreak
}

// Label returns the heading shown for the mode.
func (mode Mode) Label() string {
	switch mode {
	case ModeShortBreak:
		return "SHORT BREAK"
	case ModeLongBreak:
		return "LONG BREAK"
	default:
		return "FOCUS"
	}
}

// EventType defines the type of Runner event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventToggle          EventType = "toggle"
	EventPhaseChange     EventType = "phase_change"
	EventSessionComplete EventType = "session_complete"
	EventReset           EventType = "reset"
)

// Snapshot is a copy of the engine state at one instant.
type Snapshot struct {
	Mode                   Mode
	Running                bool
	RemainingSeconds       int
	TotalSeconds           int
	CompletedSessions      int
	SessionsUntilLongBreak int
}

// Progress returns the elapsed share of the current phase in [0, 1].
func (snapshot Snapshot) Progress() float64 {
	return progress(snapshot.TotalSeconds, snapshot.RemainingSeconds)
}

// Clock renders the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatTime(snapshot.RemainingSeconds)
}

// CyclePosition returns how many sessions of the current long-break cycle
// are done.
func (snapshot Snapshot) CyclePosition() int {
	if snapshot.SessionsUntilLongBreak <= 0 {
		return 0
	}
	return snapshot.CompletedSessions % snapshot.SessionsUntilLongBreak
}

// Event represents a Runner update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// WorkMinutes is set on EventSessionComplete.
	WorkMinutes int
	At          time.Time
}
