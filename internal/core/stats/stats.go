// Package stats records completed focus sessions.
package stats

import (
	"fmt"
	"time"

	"focusdeck/internal/core/model"
)

// Tracker accumulates lifetime focus statistics.
type Tracker struct {
	stats model.Stats
	now   func() time.Time
}

// NewTracker creates a tracker starting from stats.
func NewTracker(stats model.Stats) *Tracker {
	stats.TotalSessions = max(stats.TotalSessions, 0)
	stats.TotalFocusMinutes = max(stats.TotalFocusMinutes, 0)
	return &Tracker{stats: stats, now: time.Now}
}

// Record adds one completed session of focusMinutes.
func (tracker *Tracker) Record(focusMinutes int) model.Stats {
	tracker.stats.TotalSessions++
	tracker.stats.TotalFocusMinutes += max(focusMinutes, 0)
	tracker.stats.LastSessionAt = tracker.now().UTC()
	return tracker.stats
}

// Reset clears all counters.
func (tracker *Tracker) Reset() model.Stats {
	tracker.stats = model.Stats{}
	return tracker.stats
}

// Stats returns the current counters.
func (tracker *Tracker) Stats() model.Stats {
	return tracker.stats
}

// FormatMinutes renders minutes as "45m", "2h" or "1h 30m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}
