package usecase

import (
	"context"
	"fmt"
	"strings"

	"innerwork/internal/modules/ritual/domain"
	"innerwork/internal/modules/ritual/dto"
	ritualin "innerwork/internal/modules/ritual/port/in"
	ritualout "innerwork/internal/modules/ritual/port/out"
	"innerwork/internal/modules/ritual/service"
	apperrors "innerwork/internal/platform/errors"
)

type Interactor struct {
	svc       *service.RitualService
	sessions  ritualout.SessionStore
	projector ritualout.SessionIndexProjector
	dayState  ritualout.DayStateStore
}

func NewInteractor(
	svc *service.RitualService,
	sessions ritualout.SessionStore,
	projector ritualout.SessionIndexProjector,
	dayState ritualout.DayStateStore,
) ritualin.Usecase {
	return &Interactor{
		svc:       svc,
		sessions:  sessions,
		projector: projector,
		dayState:  dayState,
	}
}

func (i *Interactor) SetGoal(ctx context.Context, input dto.SetGoalInput) (dto.StatusOutput, error) {
	goal := strings.TrimSpace(input.Goal)
	if goal == "" {
		return dto.StatusOutput{}, fmt.Errorf("%w: goal must not be blank", apperrors.ErrInvalidInput)
	}
	state, err := i.todayState(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	state.Goal = goal
	if err := i.dayState.Save(ctx, state); err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatus(state), nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	state, err := i.todayState(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatus(state), nil
}

// CompleteSession records one repetition set for today's goal. Each
// slot can be completed once per day; history keeps every past set.
func (i *Interactor) CompleteSession(ctx context.Context, input dto.CompleteSessionInput) (dto.SessionOutput, error) {
	kind := domain.Kind(input.Kind)
	if err := kind.Validate(); err != nil {
		return dto.SessionOutput{}, err
	}
	state, err := i.todayState(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if strings.TrimSpace(state.Goal) == "" {
		return dto.SessionOutput{}, apperrors.ErrNoGoal
	}
	if state.Completed[kind] {
		return dto.SessionOutput{}, apperrors.ErrSessionDone
	}

	session := i.svc.NewSession(ctx, state.Goal, kind, input.Repetitions)
	if err := session.Validate(); err != nil {
		return dto.SessionOutput{}, err
	}

	notePath, err := i.sessions.Save(ctx, domain.SessionDocument{Session: session})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session.NotePath = notePath
	if err := i.projector.UpsertSession(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.dayState.Save(ctx, state.MarkDone(kind)); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	docs, err := i.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toOutput(doc.Session))
	}
	return out, nil
}

func (i *Interactor) DeleteSession(ctx context.Context, sessionID string) error {
	if err := i.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	return i.projector.RemoveSession(ctx, sessionID)
}

func (i *Interactor) Reindex(ctx context.Context) error {
	docs, err := i.sessions.List(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := i.projector.UpsertSession(ctx, doc.Session); err != nil {
			return err
		}
	}
	return nil
}

// todayState loads the scratch record and rolls it over to the current
// day, persisting the reset so a crashed write never resurrects
// yesterday's goal.
func (i *Interactor) todayState(ctx context.Context) (domain.DayState, error) {
	state, err := i.dayState.Load(ctx)
	if err != nil {
		return domain.DayState{}, err
	}
	today := i.svc.Today()
	rolled := state.Rollover(today)
	if rolled.Day != state.Day {
		if err := i.dayState.Save(ctx, rolled); err != nil {
			return domain.DayState{}, err
		}
	}
	return rolled, nil
}

func toStatus(state domain.DayState) dto.StatusOutput {
	return dto.StatusOutput{
		Day:       state.Day,
		Goal:      state.Goal,
		Morning:   state.Completed[domain.KindMorning],
		Afternoon: state.Completed[domain.KindAfternoon],
		Night:     state.Completed[domain.KindNight],
	}
}

func toOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          session.ID,
		Date:        session.Date,
		Goal:        session.Goal,
		Kind:        string(session.Kind),
		Repetitions: session.Repetitions,
		NotePath:    session.NotePath,
	}
}
