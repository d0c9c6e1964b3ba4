package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"innerwork/internal/modules/ritual/domain"
	ritualout "innerwork/internal/modules/ritual/port/out"
)

// FileDayStateStore persists the ritual's "today" scratch record. A
// missing or unreadable file degrades to the zero state so the next
// rollover starts a fresh day.
type FileDayStateStore struct {
	path string
}

func NewFileDayStateStore(statePath string) ritualout.DayStateStore {
	return &FileDayStateStore{path: filepath.Join(statePath, "today-ritual.json")}
}

func (s *FileDayStateStore) Load(_ context.Context) (domain.DayState, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DayState{}, nil
		}
		return domain.DayState{}, fmt.Errorf("read ritual state: %w", err)
	}
	state := domain.DayState{}
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.DayState{}, nil
	}
	return state, nil
}

func (s *FileDayStateStore) Save(_ context.Context, state domain.DayState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ritual state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write ritual state: %w", err)
	}
	return nil
}
