package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"innerwork/internal/modules/journal/domain"
	"innerwork/internal/modules/journal/dto"
	journalin "innerwork/internal/modules/journal/port/in"
	journalout "innerwork/internal/modules/journal/port/out"
	"innerwork/internal/modules/journal/service"
)

type Interactor struct {
	svc         *service.JournalService
	entries     journalout.EntryStore
	projector   journalout.EntryIndexProjector
	promptState journalout.PromptStateStore
	media       journalout.MediaStore
}

func NewInteractor(
	svc *service.JournalService,
	entries journalout.EntryStore,
	projector journalout.EntryIndexProjector,
	promptState journalout.PromptStateStore,
	media journalout.MediaStore,
) journalin.Usecase {
	return &Interactor{
		svc:         svc,
		entries:     entries,
		projector:   projector,
		promptState: promptState,
		media:       media,
	}
}

// PromptToday rolls the prompt scratch state over to the current day
// and persists the pick so the same prompt is shown all day.
func (i *Interactor) PromptToday(ctx context.Context) (dto.PromptOutput, error) {
	today := i.svc.Today()
	state, err := i.promptState.Load(ctx)
	if err != nil {
		return dto.PromptOutput{}, err
	}
	rolled := state.Rollover(today)
	if rolled != state {
		if err := i.promptState.Save(ctx, rolled); err != nil {
			return dto.PromptOutput{}, err
		}
	}
	return dto.PromptOutput{Day: rolled.Day, Prompt: rolled.Prompt}, nil
}

func (i *Interactor) AddEntry(ctx context.Context, input dto.AddEntryInput) (dto.EntryOutput, error) {
	prompt, err := i.PromptToday(ctx)
	if err != nil {
		return dto.EntryOutput{}, err
	}

	mood := domain.Mood(input.Mood)
	if mood == "" {
		mood = domain.MoodNeutral
	}
	kind := domain.MediaKind(input.MediaKind)
	if kind == "" {
		kind = domain.MediaNone
	}

	entry := i.svc.NewEntry(ctx, prompt.Prompt, input.Text, mood, kind)

	if kind != domain.MediaNone {
		payload, decodeErr := decodePayload(input.MediaBase64)
		if decodeErr != nil {
			return dto.EntryOutput{}, decodeErr
		}
		path, writeErr := i.media.Write(ctx, entry.ID, kind, payload)
		if writeErr != nil {
			return dto.EntryOutput{}, writeErr
		}
		entry.MediaPath = path
	}

	if err := entry.Validate(); err != nil {
		return dto.EntryOutput{}, err
	}

	notePath, err := i.entries.Save(ctx, domain.EntryDocument{Entry: entry})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	entry.NotePath = notePath
	if err := i.projector.UpsertEntry(ctx, entry); err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) ListEntries(ctx context.Context) ([]dto.EntryOutput, error) {
	docs, err := i.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryOutput, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toOutput(doc.Entry))
	}
	return out, nil
}

func (i *Interactor) GetEntry(ctx context.Context, entryID string) (dto.EntryOutput, error) {
	doc, err := i.entries.FindByID(ctx, entryID)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(doc.Entry), nil
}

// DeleteEntry removes exactly one entry: its note, its payload file
// when present, and its projection row.
func (i *Interactor) DeleteEntry(ctx context.Context, entryID string) error {
	doc, err := i.entries.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := i.entries.Delete(ctx, entryID); err != nil {
		return err
	}
	if doc.Entry.MediaPath != "" {
		if err := i.media.Remove(ctx, doc.Entry.MediaPath); err != nil {
			return err
		}
	}
	return i.projector.RemoveEntry(ctx, entryID)
}

func (i *Interactor) Reindex(ctx context.Context) error {
	docs, err := i.entries.List(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := i.projector.UpsertEntry(ctx, doc.Entry); err != nil {
			return err
		}
	}
	return nil
}

// decodePayload accepts raw base64 or a full data URI, matching what
// recorder plugins emit.
func decodePayload(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("media payload is required for a recording")
	}
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode media payload: %w", err)
	}
	return payload, nil
}

func toOutput(entry domain.Entry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:        entry.ID,
		Date:      entry.Date,
		Prompt:    entry.Prompt,
		Text:      entry.Text,
		Mood:      string(entry.Mood),
		MediaKind: string(entry.MediaKind),
		MediaPath: entry.MediaPath,
		NotePath:  entry.NotePath,
	}
}
