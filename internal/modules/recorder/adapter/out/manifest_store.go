package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"innerwork/internal/modules/recorder/domain"
	recorderout "innerwork/internal/modules/recorder/port/out"
)

// FileManifestStore reads recorder manifests from
// recorders/recorders.json under the journal. Relative binary paths
// resolve against the journal directory.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(basePath string) recorderout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: filepath.Join(basePath, "recorders", "recorders.json")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read recorder manifest store: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode recorder manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifests[i].Binary))
		}
	}
	return manifests, nil
}
