package out

import (
	"context"

	"innerwork/internal/modules/journal/domain"
)

type EntryStore interface {
	Save(ctx context.Context, document domain.EntryDocument) (string, error)
	FindByID(ctx context.Context, id string) (domain.EntryDocument, error)
	List(ctx context.Context) ([]domain.EntryDocument, error)
	Delete(ctx context.Context, id string) error
}

type EntryIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertEntry(ctx context.Context, entry domain.Entry) error
	RemoveEntry(ctx context.Context, id string) error
}

type PromptStateStore interface {
	Load(ctx context.Context) (domain.DayPrompt, error)
	Save(ctx context.Context, state domain.DayPrompt) error
}

type MediaStore interface {
	Write(ctx context.Context, entryID string, kind domain.MediaKind, payload []byte) (string, error)
	Remove(ctx context.Context, path string) error
}
