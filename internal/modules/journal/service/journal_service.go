package service

import (
	"context"

	"innerwork/internal/modules/journal/domain"
	"innerwork/internal/platform/calendar"
	"innerwork/internal/platform/clock"
	"innerwork/internal/platform/id"
)

type JournalService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewJournalService(clock clock.Clock, idGen id.Generator) *JournalService {
	return &JournalService{clock: clock, idGen: idGen}
}

// NewEntry stamps identity, time, and the day's prompt onto a raw
// reflection. Validation happens after the media payload is resolved.
func (s *JournalService) NewEntry(_ context.Context, prompt, text string, mood domain.Mood, kind domain.MediaKind) domain.Entry {
	return domain.Entry{
		ID:        s.idGen.New(),
		Date:      s.clock.Now(),
		Prompt:    prompt,
		Text:      text,
		Mood:      mood,
		MediaKind: kind,
	}
}

// Today returns the current calendar-day key used by scratch state.
func (s *JournalService) Today() string {
	return calendar.Key(s.clock.Now())
}
