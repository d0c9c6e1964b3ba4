package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"innerwork/internal/modules/ritual/domain"
	apperrors "innerwork/internal/platform/errors"
)

func validSession(kind domain.Kind) domain.Session {
	reps := make([]string, kind.RequiredCount())
	for i := range reps {
		reps[i] = "I am financially free"
	}
	return domain.Session{
		ID:          "s-1",
		Date:        time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC),
		Goal:        "I am financially free",
		Kind:        kind,
		Repetitions: reps,
	}
}

func TestRequiredCounts(t *testing.T) {
	t.Parallel()
	want := map[domain.Kind]int{
		domain.KindMorning:   3,
		domain.KindAfternoon: 6,
		domain.KindNight:     9,
	}
	for kind, count := range want {
		if got := kind.RequiredCount(); got != count {
			t.Errorf("%s: required count = %d, want %d", kind, got, count)
		}
	}
	if got := domain.Kind("dusk").RequiredCount(); got != 0 {
		t.Errorf("unknown kind required count = %d, want 0", got)
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*domain.Session)
		ok     bool
	}{
		{"morning with three reps", func(*domain.Session) {}, true},
		{"missing id", func(s *domain.Session) { s.ID = "" }, false},
		{"zero date", func(s *domain.Session) { s.Date = time.Time{} }, false},
		{"blank goal", func(s *domain.Session) { s.Goal = "   " }, false},
		{"unknown kind", func(s *domain.Session) { s.Kind = "dusk" }, false},
		{"too few repetitions", func(s *domain.Session) { s.Repetitions = s.Repetitions[:2] }, false},
		{"too many repetitions", func(s *domain.Session) { s.Repetitions = append(s.Repetitions, "extra") }, false},
		{"blank repetition", func(s *domain.Session) { s.Repetitions[1] = "  " }, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session := validSession(domain.KindMorning)
			tt.mutate(&session)
			err := session.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected validation error")
				}
				if !errors.Is(err, apperrors.ErrInvalidInput) {
					t.Fatalf("error should wrap ErrInvalidInput: %v", err)
				}
			}
		})
	}
}

func TestNightSessionNeedsNineRepetitions(t *testing.T) {
	t.Parallel()
	session := validSession(domain.KindNight)
	if err := session.Validate(); err != nil {
		t.Fatalf("nine repetitions should pass: %v", err)
	}
	session.Repetitions = session.Repetitions[:6]
	err := session.Validate()
	if err == nil || !strings.Contains(err.Error(), "exactly 9") {
		t.Fatalf("expected nine-repetition error, got %v", err)
	}
}

func TestDayStateRollover(t *testing.T) {
	t.Parallel()
	state := domain.DayState{
		Day:       "2026-08-28",
		Goal:      "I am calm under pressure",
		Completed: map[domain.Kind]bool{domain.KindMorning: true},
	}

	same := state.Rollover("2026-08-28")
	if same.Goal != state.Goal || !same.Completed[domain.KindMorning] {
		t.Fatalf("same-day rollover must keep state: %+v", same)
	}

	next := state.Rollover("2026-08-29")
	if next.Goal != "" || len(next.Completed) != 0 || next.Day != "2026-08-29" {
		t.Fatalf("new-day rollover must reset: %+v", next)
	}
}

func TestMarkDoneDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	state := domain.DayState{Day: "2026-08-29", Goal: "g", Completed: map[domain.Kind]bool{}}
	done := state.MarkDone(domain.KindAfternoon)
	if !done.Completed[domain.KindAfternoon] {
		t.Fatalf("slot not marked: %+v", done)
	}
	if state.Completed[domain.KindAfternoon] {
		t.Fatalf("receiver mutated: %+v", state)
	}
}
