package in

import (
	"context"

	"innerwork/internal/modules/journal/dto"
	journalin "innerwork/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) PromptToday(ctx context.Context) (dto.PromptOutput, error) {
	return h.usecase.PromptToday(ctx)
}

func (h CLIHandler) AddEntry(ctx context.Context, text, mood, mediaKind, mediaBase64 string) (dto.EntryOutput, error) {
	return h.usecase.AddEntry(ctx, dto.AddEntryInput{
		Text:        text,
		Mood:        mood,
		MediaKind:   mediaKind,
		MediaBase64: mediaBase64,
	})
}

func (h CLIHandler) ListEntries(ctx context.Context) ([]dto.EntryOutput, error) {
	return h.usecase.ListEntries(ctx)
}

func (h CLIHandler) GetEntry(ctx context.Context, id string) (dto.EntryOutput, error) {
	return h.usecase.GetEntry(ctx, id)
}

func (h CLIHandler) DeleteEntry(ctx context.Context, id string) error {
	return h.usecase.DeleteEntry(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
