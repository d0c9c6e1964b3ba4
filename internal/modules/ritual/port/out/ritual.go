package out

import (
	"context"

	"innerwork/internal/modules/ritual/domain"
)

type SessionStore interface {
	Save(ctx context.Context, document domain.SessionDocument) (string, error)
	FindByID(ctx context.Context, id string) (domain.SessionDocument, error)
	List(ctx context.Context) ([]domain.SessionDocument, error)
	Delete(ctx context.Context, id string) error
}

type SessionIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertSession(ctx context.Context, session domain.Session) error
	RemoveSession(ctx context.Context, id string) error
}

type DayStateStore interface {
	Load(ctx context.Context) (domain.DayState, error)
	Save(ctx context.Context, state domain.DayState) error
}
