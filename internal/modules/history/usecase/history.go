package usecase

import (
	"context"
	"fmt"
	"sort"

	"innerwork/internal/modules/history/dto"
	historyin "innerwork/internal/modules/history/port/in"
	journalin "innerwork/internal/modules/journal/port/in"
	ritualin "innerwork/internal/modules/ritual/port/in"
	apperrors "innerwork/internal/platform/errors"
)

// Interactor merges both record collections into one timeline. It
// talks to the owning modules only through their inbound ports.
type Interactor struct {
	journal journalin.Usecase
	ritual  ritualin.Usecase
}

func NewInteractor(journal journalin.Usecase, ritual ritualin.Usecase) historyin.Usecase {
	return &Interactor{journal: journal, ritual: ritual}
}

// List returns the merged timeline, newest first. An unknown filter is
// rejected rather than silently treated as "all".
func (i *Interactor) List(ctx context.Context, filter string) ([]dto.Item, error) {
	switch filter {
	case "", dto.FilterAll, dto.FilterJournal, dto.FilterRitual:
	default:
		return nil, fmt.Errorf("%w: unknown history filter %q", apperrors.ErrInvalidInput, filter)
	}

	var items []dto.Item
	if filter == "" || filter == dto.FilterAll || filter == dto.FilterJournal {
		entries, err := i.journal.ListEntries(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			items = append(items, dto.Item{
				ID:       entry.ID,
				Category: dto.CategoryJournal,
				Date:     entry.Date,
				Title:    entry.Prompt,
				Detail:   entry.Text,
				Mood:     entry.Mood,
			})
		}
	}
	if filter == "" || filter == dto.FilterAll || filter == dto.FilterRitual {
		sessions, err := i.ritual.ListSessions(ctx)
		if err != nil {
			return nil, err
		}
		for _, session := range sessions {
			items = append(items, dto.Item{
				ID:       session.ID,
				Category: dto.CategoryRitual,
				Date:     session.Date,
				Title:    session.Goal,
				Detail:   session.Kind,
			})
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Date.After(items[b].Date)
	})
	return items, nil
}

// Delete dispatches to the module that owns the record.
func (i *Interactor) Delete(ctx context.Context, id, category string) error {
	switch category {
	case dto.CategoryJournal:
		return i.journal.DeleteEntry(ctx, id)
	case dto.CategoryRitual:
		return i.ritual.DeleteSession(ctx, id)
	}
	return fmt.Errorf("%w: unknown history category %q", apperrors.ErrInvalidInput, category)
}
