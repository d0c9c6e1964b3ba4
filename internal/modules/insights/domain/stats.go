// Package domain holds the derived-statistics computations: streaks,
// mood distribution, and weekly activity. Everything here is a pure
// function over already-loaded records; no I/O, no shared state, safe
// to call repeatedly and concurrently.
package domain

import (
	"time"

	"innerwork/internal/platform/calendar"
)

const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// Histogram counts entries per known mood. Unknown or empty moods are
// excluded from every bucket, so the bucket sum can be smaller than
// the number of entries.
type Histogram struct {
	Happy   int
	Neutral int
	Sad     int
}

func (h Histogram) Total() int {
	return h.Happy + h.Neutral + h.Sad
}

// DayBucket is one day of the weekly activity chart.
type DayBucket struct {
	Day   time.Time
	Label string
	Count int
}

// WeeklyWindow is the number of calendar days covered by WeeklyActivity.
const WeeklyWindow = 7

// Streak returns the length of the run of consecutive active calendar
// days ending at today or yesterday, as seen from ref. A day is active
// when at least one date falls on it. The scan walks backward and
// stops at the first inactive day; earlier gaps in history are
// irrelevant. Zero dates are never active. Neither today nor yesterday
// active means 0.
func Streak(dates []time.Time, ref time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	active := activeDays(dates, ref)
	if len(active) == 0 {
		return 0
	}

	day := calendar.DayOf(ref, ref)
	if !active[day] {
		day = day.AddDate(0, 0, -1)
		if !active[day] {
			return 0
		}
	}

	streak := 0
	for active[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MoodHistogram buckets moods into happy/neutral/sad, silently
// skipping anything else.
func MoodHistogram(moods []string) Histogram {
	h := Histogram{}
	for _, mood := range moods {
		switch mood {
		case MoodHappy:
			h.Happy++
		case MoodNeutral:
			h.Neutral++
		case MoodSad:
			h.Sad++
		}
	}
	return h
}

// WeeklyActivity returns exactly WeeklyWindow buckets, oldest first,
// covering ref-6d through ref inclusive. Each bucket counts the
// entries plus sessions dated on that calendar day; records outside
// the window contribute nothing.
func WeeklyActivity(entryDates, sessionDates []time.Time, ref time.Time) []DayBucket {
	counts := map[time.Time]int{}
	for _, d := range entryDates {
		if day := calendar.DayOf(d, ref); !day.IsZero() {
			counts[day]++
		}
	}
	for _, d := range sessionDates {
		if day := calendar.DayOf(d, ref); !day.IsZero() {
			counts[day]++
		}
	}

	buckets := make([]DayBucket, 0, WeeklyWindow)
	start := calendar.DayOf(ref, ref).AddDate(0, 0, -(WeeklyWindow - 1))
	for i := 0; i < WeeklyWindow; i++ {
		day := start.AddDate(0, 0, i)
		buckets = append(buckets, DayBucket{
			Day:   day,
			Label: calendar.Label(day),
			Count: counts[day],
		})
	}
	return buckets
}

func activeDays(dates []time.Time, ref time.Time) map[time.Time]bool {
	active := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		if day := calendar.DayOf(d, ref); !day.IsZero() {
			active[day] = true
		}
	}
	return active
}
