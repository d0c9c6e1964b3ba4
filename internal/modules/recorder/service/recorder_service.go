package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"innerwork/internal/modules/recorder/domain"
	"innerwork/internal/modules/recorder/dto"
	recorderout "innerwork/internal/modules/recorder/port/out"
)

type RecorderService struct {
	store recorderout.ManifestStore
	host  recorderout.Host
}

func NewRecorderService(store recorderout.ManifestStore, host recorderout.Host) *RecorderService {
	return &RecorderService{store: store, host: host}
}

func (s *RecorderService) List(ctx context.Context) ([]dto.RecorderInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecorderInfo, 0, len(manifests))
	for _, m := range manifests {
		kinds := make([]string, 0, len(m.Kinds))
		for _, k := range m.Kinds {
			kinds = append(kinds, string(k))
		}
		out = append(out, dto.RecorderInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Kinds: kinds})
	}
	return out, nil
}

// Doctor reports per-recorder health without failing the whole run on
// one broken manifest.
func (s *RecorderService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *RecorderService) Capture(ctx context.Context, input dto.CaptureInput) (dto.CaptureOutput, error) {
	kind := domain.CaptureKind(input.Kind)
	manifest, err := s.getRunnableManifest(ctx, input.RecorderName, kind)
	if err != nil {
		return dto.CaptureOutput{}, err
	}
	req := domain.CaptureRequest{Kind: kind, MaxSeconds: input.MaxSeconds}
	if err := req.Validate(); err != nil {
		return dto.CaptureOutput{}, err
	}

	result, err := s.host.Capture(ctx, manifest, req)
	if err != nil {
		return dto.CaptureOutput{}, err
	}
	if err := result.Validate(); err != nil {
		return dto.CaptureOutput{}, err
	}
	if result.Kind != kind {
		return dto.CaptureOutput{}, fmt.Errorf("capture kind mismatch: want=%s got=%s", kind, result.Kind)
	}
	return dto.CaptureOutput{
		RecorderName:  input.RecorderName,
		Kind:          string(result.Kind),
		MIME:          result.MIME,
		PayloadBase64: result.PayloadBase64,
	}, nil
}

func (s *RecorderService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate recorder name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *RecorderService) getRunnableManifest(ctx context.Context, name string, kind domain.CaptureKind) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("recorder %q not found", name)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRecorderDisabled, name)
	}
	if err := kind.Validate(); err != nil {
		return domain.Manifest{}, err
	}
	if !manifest.SupportsKind(kind) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrKindUnsupported, kind)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	if s.host != nil {
		if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRecorderTimeout, name)
			}
			return domain.Manifest{}, err
		}
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read recorder binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
