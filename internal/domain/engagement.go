package domain

import "time"

// EngagementEvent records a single tracked user action for the
// gamification layer. Tracking is best-effort; nothing in the request
// path waits on it.
type EngagementEvent struct {
	ID       int64
	Email    string
	Action   string
	Metadata string // JSON-encoded free-form attributes
	At       time.Time
}

// EngagementSummary aggregates a user's engagement for profile display.
type EngagementSummary struct {
	Email        string
	TotalXP      int64
	Level        int
	LevelTitle   string
	Achievements []Achievement
	ActionCounts map[string]int64
}

// Achievement is an earned gamification badge.
type Achievement struct {
	Key         string
	Title       string
	Description string
}

// DailyEngagement is one row of the nightly rollup.
type DailyEngagement struct {
	Day    string // YYYY-MM-DD
	Action string
	Count  int64
}
