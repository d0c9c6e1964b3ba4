package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"innerwork/internal/modules/journal/domain"
	journalout "innerwork/internal/modules/journal/port/out"
)

// FilePromptStateStore persists the day-prompt scratch record. A
// missing or unreadable file degrades to the zero state so the next
// rollover repicks.
type FilePromptStateStore struct {
	path string
}

func NewFilePromptStateStore(statePath string) journalout.PromptStateStore {
	return &FilePromptStateStore{path: filepath.Join(statePath, "today-prompt.json")}
}

func (s *FilePromptStateStore) Load(_ context.Context) (domain.DayPrompt, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DayPrompt{}, nil
		}
		return domain.DayPrompt{}, fmt.Errorf("read prompt state: %w", err)
	}
	state := domain.DayPrompt{}
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.DayPrompt{}, nil
	}
	return state, nil
}

func (s *FilePromptStateStore) Save(_ context.Context, state domain.DayPrompt) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prompt state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write prompt state: %w", err)
	}
	return nil
}
