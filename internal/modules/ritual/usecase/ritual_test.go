package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	ritualadapter "innerwork/internal/modules/ritual/adapter/out"
	"innerwork/internal/modules/ritual/domain"
	"innerwork/internal/modules/ritual/dto"
	ritualin "innerwork/internal/modules/ritual/port/in"
	"innerwork/internal/modules/ritual/service"
	"innerwork/internal/modules/ritual/usecase"
	apperrors "innerwork/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return "session-" + string(rune('0'+s.n))
}

type fakeProjector struct {
	upserts []domain.Session
	removed []string
	resets  int
}

func (f *fakeProjector) Reset(context.Context) error { f.resets++; return nil }
func (f *fakeProjector) UpsertSession(_ context.Context, s domain.Session) error {
	f.upserts = append(f.upserts, s)
	return nil
}
func (f *fakeProjector) RemoveSession(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

func newRitual(t *testing.T, clk *fakeClock) (ritualin.Usecase, *fakeProjector) {
	t.Helper()
	journal := t.TempDir()
	projector := &fakeProjector{}
	uc := usecase.NewInteractor(
		service.NewRitualService(clk, &seqID{}),
		ritualadapter.NewVaultSessionStore(journal),
		projector,
		ritualadapter.NewFileDayStateStore(journal+"/.innerwork"),
	)
	return uc, projector
}

func repetitions(kind domain.Kind, text string) []string {
	reps := make([]string, kind.RequiredCount())
	for i := range reps {
		reps[i] = text
	}
	return reps
}

func TestCompleteSessionRequiresAGoal(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)}
	uc, _ := newRitual(t, clk)

	_, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "morning",
		Repetitions: repetitions(domain.KindMorning, "I am free"),
	})
	if !errors.Is(err, apperrors.ErrNoGoal) {
		t.Fatalf("expected ErrNoGoal, got %v", err)
	}
}

func TestGoalThenCompleteLifecycle(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)}
	uc, projector := newRitual(t, clk)

	status, err := uc.SetGoal(context.Background(), dto.SetGoalInput{Goal: "I am financially free"})
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if status.Goal != "I am financially free" || status.Morning || status.Afternoon || status.Night {
		t.Fatalf("fresh day status wrong: %+v", status)
	}

	done, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "morning",
		Repetitions: repetitions(domain.KindMorning, "I am financially free"),
	})
	if err != nil {
		t.Fatalf("complete morning: %v", err)
	}
	if done.Goal != "I am financially free" || done.Kind != "morning" {
		t.Fatalf("unexpected session: %+v", done)
	}
	if len(projector.upserts) != 1 {
		t.Fatalf("expected one projection upsert, got %d", len(projector.upserts))
	}

	status, err = uc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !status.Morning || status.Afternoon || status.Night {
		t.Fatalf("morning flag not set: %+v", status)
	}

	_, err = uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "morning",
		Repetitions: repetitions(domain.KindMorning, "I am financially free"),
	})
	if !errors.Is(err, apperrors.ErrSessionDone) {
		t.Fatalf("second morning today must fail with ErrSessionDone, got %v", err)
	}
}

func TestCompleteSessionValidatesRepetitions(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)}
	uc, _ := newRitual(t, clk)
	if _, err := uc.SetGoal(context.Background(), dto.SetGoalInput{Goal: "g"}); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	_, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "afternoon",
		Repetitions: repetitions(domain.KindMorning, "g"),
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("three reps for an afternoon session must fail, got %v", err)
	}

	_, err = uc.CompleteSession(context.Background(), dto.CompleteSessionInput{Kind: "dusk"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown kind must fail, got %v", err)
	}
}

func TestDayRolloverResetsGoalAndFlags(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 28, 22, 0, 0, 0, time.UTC)}
	uc, _ := newRitual(t, clk)

	if _, err := uc.SetGoal(context.Background(), dto.SetGoalInput{Goal: "old goal"}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if _, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "night",
		Repetitions: repetitions(domain.KindNight, "old goal"),
	}); err != nil {
		t.Fatalf("complete night: %v", err)
	}

	clk.now = clk.now.AddDate(0, 0, 1)
	status, err := uc.Status(context.Background())
	if err != nil {
		t.Fatalf("status next day: %v", err)
	}
	if status.Day != "2026-08-29" || status.Goal != "" || status.Night {
		t.Fatalf("new day must reset scratch state: %+v", status)
	}

	listed, err := uc.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("history must keep yesterday's session: %+v", listed)
	}
}

func TestDeleteSessionRemovesNoteAndProjection(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)}
	uc, projector := newRitual(t, clk)

	if _, err := uc.SetGoal(context.Background(), dto.SetGoalInput{Goal: "g"}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	done, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
		Kind:        "morning",
		Repetitions: repetitions(domain.KindMorning, "g"),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := uc.DeleteSession(context.Background(), done.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(projector.removed) != 1 || projector.removed[0] != done.ID {
		t.Fatalf("expected projection removal, got %v", projector.removed)
	}
	if err := uc.DeleteSession(context.Background(), done.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
}

func TestReindexRebuildsProjection(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)}
	uc, projector := newRitual(t, clk)

	if _, err := uc.SetGoal(context.Background(), dto.SetGoalInput{Goal: "g"}); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	for _, kind := range []domain.Kind{domain.KindMorning, domain.KindAfternoon} {
		if _, err := uc.CompleteSession(context.Background(), dto.CompleteSessionInput{
			Kind:        string(kind),
			Repetitions: repetitions(kind, "g"),
		}); err != nil {
			t.Fatalf("complete %s: %v", kind, err)
		}
	}
	projector.upserts = nil

	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 || len(projector.upserts) != 2 {
		t.Fatalf("expected reset + 2 upserts, got resets=%d upserts=%d", projector.resets, len(projector.upserts))
	}
}
