package in

import (
	"context"

	"innerwork/internal/modules/ritual/dto"
)

type Usecase interface {
	SetGoal(ctx context.Context, input dto.SetGoalInput) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	CompleteSession(ctx context.Context, input dto.CompleteSessionInput) (dto.SessionOutput, error)
	ListSessions(ctx context.Context) ([]dto.SessionOutput, error)
	DeleteSession(ctx context.Context, id string) error
	Reindex(ctx context.Context) error
}
