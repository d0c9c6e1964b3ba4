// Package calendar is the single home for calendar-day normalization.
// Every day-granularity comparison in the codebase goes through DayOf
// or SameDay so that streaks and activity buckets can never round a
// timestamp two different ways.
package calendar

import "time"

// DayOf truncates t to midnight in the reference instant's location.
// A zero time stays zero, so records with unparseable dates never
// match any calendar day.
func DayOf(t time.Time, ref time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	local := t.In(ref.Location())
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// SameDay reports whether a and b fall on the same calendar day as
// seen from ref's location.
func SameDay(a, b, ref time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return DayOf(a, ref).Equal(DayOf(b, ref))
}

// Key renders a stable day key (2006-01-02) used by scratch state to
// detect day rollover.
func Key(t time.Time) string {
	return t.Format("2006-01-02")
}

// Label renders the short human label used by the weekly activity
// chart, e.g. "Fri 8/29".
func Label(t time.Time) string {
	return t.Format("Mon 1/2")
}
