package service

import (
	"context"

	"innerwork/internal/modules/ritual/domain"
	"innerwork/internal/platform/calendar"
	"innerwork/internal/platform/clock"
	"innerwork/internal/platform/id"
)

type RitualService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewRitualService(clock clock.Clock, idGen id.Generator) *RitualService {
	return &RitualService{clock: clock, idGen: idGen}
}

// NewSession stamps identity and time onto a repetition set for the
// current goal. Validation runs in the usecase once assembled.
func (s *RitualService) NewSession(_ context.Context, goal string, kind domain.Kind, repetitions []string) domain.Session {
	return domain.Session{
		ID:          s.idGen.New(),
		Date:        s.clock.Now(),
		Goal:        goal,
		Kind:        kind,
		Repetitions: repetitions,
	}
}

// Today returns the current calendar-day key used by scratch state.
func (s *RitualService) Today() string {
	return calendar.Key(s.clock.Now())
}
