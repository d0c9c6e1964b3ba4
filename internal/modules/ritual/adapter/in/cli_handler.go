package in

import (
	"context"

	"innerwork/internal/modules/ritual/dto"
	ritualin "innerwork/internal/modules/ritual/port/in"
)

type CLIHandler struct {
	usecase ritualin.Usecase
}

func NewCLIHandler(usecase ritualin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetGoal(ctx context.Context, goal string) (dto.StatusOutput, error) {
	return h.usecase.SetGoal(ctx, dto.SetGoalInput{Goal: goal})
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) CompleteSession(ctx context.Context, kind string, repetitions []string) (dto.SessionOutput, error) {
	return h.usecase.CompleteSession(ctx, dto.CompleteSessionInput{Kind: kind, Repetitions: repetitions})
}

func (h CLIHandler) ListSessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.ListSessions(ctx)
}

func (h CLIHandler) DeleteSession(ctx context.Context, id string) error {
	return h.usecase.DeleteSession(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
