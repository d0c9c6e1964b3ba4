package usecase

import (
	"context"
	"time"

	"innerwork/internal/modules/insights/domain"
	"innerwork/internal/modules/insights/dto"
	insightsin "innerwork/internal/modules/insights/port/in"
	journalin "innerwork/internal/modules/journal/port/in"
	ritualin "innerwork/internal/modules/ritual/port/in"
	"innerwork/internal/platform/clock"
)

// Interactor loads both record collections through their inbound ports
// and feeds the pure statistics functions. All calendar math is
// anchored at the clock's current instant.
type Interactor struct {
	journal journalin.Usecase
	ritual  ritualin.Usecase
	clock   clock.Clock
}

func NewInteractor(journal journalin.Usecase, ritual ritualin.Usecase, clock clock.Clock) insightsin.Usecase {
	return &Interactor{journal: journal, ritual: ritual, clock: clock}
}

func (i *Interactor) Summary(ctx context.Context) (dto.Summary, error) {
	entries, err := i.journal.ListEntries(ctx)
	if err != nil {
		return dto.Summary{}, err
	}
	sessions, err := i.ritual.ListSessions(ctx)
	if err != nil {
		return dto.Summary{}, err
	}

	entryDates := make([]time.Time, 0, len(entries))
	moods := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryDates = append(entryDates, entry.Date)
		moods = append(moods, entry.Mood)
	}
	sessionDates := make([]time.Time, 0, len(sessions))
	for _, session := range sessions {
		sessionDates = append(sessionDates, session.Date)
	}

	now := i.clock.Now()
	histogram := domain.MoodHistogram(moods)
	weekly := domain.WeeklyActivity(entryDates, sessionDates, now)

	summary := dto.Summary{
		TotalEntries:  len(entries),
		TotalSessions: len(sessions),
		EntryStreak:   domain.Streak(entryDates, now),
		SessionStreak: domain.Streak(sessionDates, now),
		Moods: dto.MoodBreakdown{
			Happy:   histogram.Happy,
			Neutral: histogram.Neutral,
			Sad:     histogram.Sad,
		},
		WeeklyActivity: make([]dto.ActivityDay, 0, len(weekly)),
	}
	for _, bucket := range weekly {
		summary.WeeklyActivity = append(summary.WeeklyActivity, dto.ActivityDay{
			Day:   bucket.Day,
			Label: bucket.Label,
			Count: bucket.Count,
		})
	}
	return summary, nil
}
