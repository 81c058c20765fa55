package stats

import (
	"testing"
	"time"

	"focusdeck/internal/core/model"
)

func TestRecordAccumulates(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.FixedZone("X", 7200))
	tracker := NewTracker(model.Stats{TotalSessions: 2, TotalFocusMinutes: 50})
	tracker.now = func() time.Time { return now }

	got := tracker.Record(25)
	if got.TotalSessions != 3 || got.TotalFocusMinutes != 75 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if !got.LastSessionAt.Equal(now) || got.LastSessionAt.Location() != time.UTC {
		t.Fatalf("expected last session at %v in UTC, got %v", now, got.LastSessionAt)
	}
	if tracker.Stats() != got {
		t.Fatalf("Stats() disagrees with Record result")
	}

	if got := tracker.Record(-5); got.TotalSessions != 4 || got.TotalFocusMinutes != 75 {
		t.Fatalf("negative minutes must count as zero: %+v", got)
	}
}

func TestResetClears(t *testing.T) {
	tracker := NewTracker(model.Stats{TotalSessions: 9, TotalFocusMinutes: 225, LastSessionAt: time.Now()})
	if got := tracker.Reset(); got != (model.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestNewTrackerClampsNegativeCounters(t *testing.T) {
	tracker := NewTracker(model.Stats{TotalSessions: -1, TotalFocusMinutes: -30})
	if got := tracker.Stats(); got.TotalSessions != 0 || got.TotalFocusMinutes != 0 {
		t.Fatalf("expected clamped stats, got %+v", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		0:   "0m",
		45:  "45m",
		60:  "1h",
		90:  "1h 30m",
		120: "2h",
		125: "2h 5m",
	}
	for minutes, want := range cases {
		if got := FormatMinutes(minutes); got != want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}
