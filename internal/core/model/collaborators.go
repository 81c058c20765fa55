package model

import "time"

// Todo is a single entry of the task list.
type Todo struct {
	ID        string    `yaml:"id"`
	Text      string    `yaml:"text"`
	Completed bool      `yaml:"completed"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Stats holds lifetime focus statistics.
type Stats struct {
	TotalSessions     int       `yaml:"total_sessions"`
	TotalFocusMinutes int       `yaml:"total_focus_minutes"`
	LastSessionAt     time.Time `yaml:"last_session_at,omitempty"`
}
