package domain_test

import (
	"testing"
	"time"

	"innerwork/internal/modules/insights/domain"
)

var ref = time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return ref.AddDate(0, 0, -n)
}

func TestStreakScenarios(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"three consecutive ending today", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"today with gap before older record", []time.Time{daysAgo(0), daysAgo(3)}, 1},
		{"yesterday only", []time.Time{daysAgo(1)}, 1},
		{"two days ago only", []time.Time{daysAgo(2)}, 0},
		{"run ending yesterday", []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}, 3},
		{"zero dates ignored", []time.Time{{}, {}}, 0},
		{"duplicates on one day count once", []time.Time{daysAgo(0), daysAgo(0), daysAgo(1)}, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.Streak(tc.dates, ref); got != tc.want {
				t.Fatalf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStreakGapStopsScan(t *testing.T) {
	t.Parallel()
	// A record today does not demand yesterday be active; the backward
	// scan just stops at the first inactive day. This is deliberately
	// not a strict unbroken-since-first-record definition.
	dates := []time.Time{daysAgo(0), daysAgo(2), daysAgo(3), daysAgo(4)}
	if got := domain.Streak(dates, ref); got != 1 {
		t.Fatalf("expected streak 1 at first gap, got %d", got)
	}
}

func TestStreakMonotonicUnderTodayRecord(t *testing.T) {
	t.Parallel()
	withYesterday := []time.Time{daysAgo(1), daysAgo(2)}
	before := domain.Streak(withYesterday, ref)
	after := domain.Streak(append(withYesterday, daysAgo(0)), ref)
	if after != before+1 {
		t.Fatalf("adding today should extend streak %d to %d, got %d", before, before+1, after)
	}

	gapped := []time.Time{daysAgo(3)}
	if got := domain.Streak(append(gapped, daysAgo(0)), ref); got != 1 {
		t.Fatalf("adding today after a gap should yield 1, got %d", got)
	}
}

func TestStreakUsesRefLocationForDayBoundaries(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*3600)
	localRef := time.Date(2026, 8, 29, 8, 0, 0, 0, loc)
	// 23:00 UTC on the 28th is 09:00 on the 29th in UTC+10.
	dates := []time.Time{time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)}
	if got := domain.Streak(dates, localRef); got != 1 {
		t.Fatalf("expected record to count as today in ref zone, got streak %d", got)
	}
}

func TestMoodHistogram(t *testing.T) {
	t.Parallel()
	h := domain.MoodHistogram([]string{"happy", "happy", "sad", ""})
	if h.Happy != 2 || h.Neutral != 0 || h.Sad != 1 {
		t.Fatalf("unexpected histogram: %+v", h)
	}
	if h.Total() != 3 {
		t.Fatalf("expected total 3 excluding blank mood, got %d", h.Total())
	}

	junk := domain.MoodHistogram([]string{"ecstatic", "HAPPY", "?"})
	if junk.Total() != 0 {
		t.Fatalf("unknown moods must land in no bucket, got %+v", junk)
	}

	if got := domain.MoodHistogram(nil); got.Total() != 0 {
		t.Fatalf("empty input must yield all-zero buckets, got %+v", got)
	}
}

func TestWeeklyActivityBuckets(t *testing.T) {
	t.Parallel()
	entries := []time.Time{daysAgo(0), daysAgo(0), daysAgo(6)}
	sessions := []time.Time{daysAgo(0), daysAgo(3), daysAgo(7), {}}

	buckets := domain.WeeklyActivity(entries, sessions, ref)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	for i := 1; i < len(buckets); i++ {
		if !buckets[i].Day.After(buckets[i-1].Day) {
			t.Fatalf("buckets must be ordered oldest to newest")
		}
	}
	if buckets[6].Count != 3 {
		t.Fatalf("today should count 2 entries + 1 session, got %d", buckets[6].Count)
	}
	if buckets[3].Count != 1 {
		t.Fatalf("ref-3d should count 1 session, got %d", buckets[3].Count)
	}
	if buckets[0].Count != 1 {
		t.Fatalf("oldest bucket should count 1 entry, got %d", buckets[0].Count)
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	// The 8-day-old session and the zero date are outside the window.
	if total != 5 {
		t.Fatalf("expected 5 in-window records, got %d", total)
	}

	if buckets[6].Label != "Sat 8/29" {
		t.Fatalf("unexpected label: %s", buckets[6].Label)
	}
}

func TestWeeklyActivityEmptyInput(t *testing.T) {
	t.Parallel()
	buckets := domain.WeeklyActivity(nil, nil, ref)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.Count != 0 {
			t.Fatalf("expected all-zero buckets, got %+v", b)
		}
	}
}

func TestComputationsAreIdempotent(t *testing.T) {
	t.Parallel()
	dates := []time.Time{daysAgo(0), daysAgo(1), daysAgo(4)}
	if a, b := domain.Streak(dates, ref), domain.Streak(dates, ref); a != b {
		t.Fatalf("streak not idempotent: %d vs %d", a, b)
	}
	moods := []string{"sad", "neutral"}
	if a, b := domain.MoodHistogram(moods), domain.MoodHistogram(moods); a != b {
		t.Fatalf("histogram not idempotent: %+v vs %+v", a, b)
	}
	w1 := domain.WeeklyActivity(dates, dates, ref)
	w2 := domain.WeeklyActivity(dates, dates, ref)
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("weekly activity not idempotent at bucket %d", i)
		}
	}
}
