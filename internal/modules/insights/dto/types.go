package dto

import "time"

type MoodBreakdown struct {
	Happy   int
	Neutral int
	Sad     int
}

type ActivityDay struct {
	Day   time.Time
	Label string
	Count int
}

// Summary is the full insights view: totals, streaks per practice,
// mood distribution, and the last seven days of activity.
type Summary struct {
	TotalEntries   int
	TotalSessions  int
	EntryStreak    int
	SessionStreak  int
	Moods          MoodBreakdown
	WeeklyActivity []ActivityDay
}
