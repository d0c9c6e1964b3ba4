package in

import (
	"context"

	"innerwork/internal/modules/journal/dto"
)

type Usecase interface {
	PromptToday(ctx context.Context) (dto.PromptOutput, error)
	AddEntry(ctx context.Context, input dto.AddEntryInput) (dto.EntryOutput, error)
	ListEntries(ctx context.Context) ([]dto.EntryOutput, error)
	GetEntry(ctx context.Context, id string) (dto.EntryOutput, error)
	DeleteEntry(ctx context.Context, id string) error
	Reindex(ctx context.Context) error
}
