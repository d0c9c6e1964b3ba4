package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"innerwork/internal/modules/journal/domain"
	journalout "innerwork/internal/modules/journal/port/out"
)

// FileMediaStore writes recording payloads as sibling files instead of
// inlining base64 into note frontmatter. The payload stays opaque; the
// extension only hints at the container for external players.
type FileMediaStore struct {
	mediaPath string
}

func NewFileMediaStore(mediaPath string) journalout.MediaStore {
	return &FileMediaStore{mediaPath: mediaPath}
}

func (s *FileMediaStore) Write(_ context.Context, entryID string, kind domain.MediaKind, payload []byte) (string, error) {
	if err := os.MkdirAll(s.mediaPath, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	path := filepath.Join(s.mediaPath, fmt.Sprintf("%s-%s.webm", entryID, kind))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write media payload: %w", err)
	}
	return path, nil
}

func (s *FileMediaStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove media payload: %w", err)
	}
	return nil
}
