package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"innerwork/internal/modules/recorder/domain"
	"innerwork/internal/modules/recorder/dto"
	"innerwork/internal/modules/recorder/service"
)

type staticStore struct {
	manifests []domain.Manifest
}

func (s *staticStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	lifecycleErr error
	result       domain.CaptureResult
	captureErr   error
	captured     []domain.CaptureRequest
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error {
	return f.lifecycleErr
}

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version, Kinds: m.Kinds}, nil
}

func (f *fakeHost) Capture(_ context.Context, _ domain.Manifest, req domain.CaptureRequest) (domain.CaptureResult, error) {
	f.captured = append(f.captured, req)
	if f.captureErr != nil {
		return domain.CaptureResult{}, f.captureErr
	}
	return f.result, nil
}

func writeBinary(t *testing.T) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recorder-bin")
	payload := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func manifest(t *testing.T, name string) domain.Manifest {
	t.Helper()
	binary, sum := writeBinary(t)
	return domain.Manifest{
		Name:    name,
		Version: "1.0.0",
		Binary:  binary,
		SHA256:  sum,
		Enabled: true,
		Kinds:   []domain.CaptureKind{domain.CaptureAudio},
	}
}

func TestCaptureHappyPath(t *testing.T) {
	t.Parallel()
	host := &fakeHost{result: domain.CaptureResult{
		Kind:          domain.CaptureAudio,
		MIME:          "audio/webm",
		PayloadBase64: "AAAA",
	}}
	svc := service.NewRecorderService(&staticStore{manifests: []domain.Manifest{manifest(t, "reference")}}, host)

	out, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "reference", Kind: "audio", MaxSeconds: 30})
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if out.MIME != "audio/webm" || out.PayloadBase64 != "AAAA" || out.Kind != "audio" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(host.captured) != 1 || host.captured[0].MaxSeconds != 30 {
		t.Fatalf("capture request not forwarded: %+v", host.captured)
	}
}

func TestCaptureRejections(t *testing.T) {
	t.Parallel()
	good := manifest(t, "reference")
	disabled := manifest(t, "disabled")
	disabled.Enabled = false
	tampered := manifest(t, "tampered")
	tampered.SHA256 = strings.Repeat("00", 32)
	host := &fakeHost{result: domain.CaptureResult{Kind: domain.CaptureAudio, MIME: "audio/webm", PayloadBase64: "AAAA"}}
	svc := service.NewRecorderService(&staticStore{manifests: []domain.Manifest{good, disabled, tampered}}, host)

	if _, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "missing", Kind: "audio"}); err == nil {
		t.Fatalf("unknown recorder must fail")
	}
	if _, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "disabled", Kind: "audio"}); !errors.Is(err, domain.ErrRecorderDisabled) {
		t.Fatalf("disabled recorder: got %v", err)
	}
	if _, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "tampered", Kind: "audio"}); !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("tampered binary: got %v", err)
	}
	if _, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "reference", Kind: "video"}); !errors.Is(err, domain.ErrKindUnsupported) {
		t.Fatalf("unsupported kind: got %v", err)
	}
}

func TestCaptureRejectsKindMismatchFromRecorder(t *testing.T) {
	t.Parallel()
	host := &fakeHost{result: domain.CaptureResult{Kind: domain.CaptureVideo, MIME: "video/webm", PayloadBase64: "AAAA"}}
	svc := service.NewRecorderService(&staticStore{manifests: []domain.Manifest{manifest(t, "reference")}}, host)

	_, err := svc.Capture(context.Background(), dto.CaptureInput{RecorderName: "reference", Kind: "audio"})
	if err == nil || !strings.Contains(err.Error(), "kind mismatch") {
		t.Fatalf("expected kind mismatch error, got %v", err)
	}
}

func TestDoctorReportsPerRecorder(t *testing.T) {
	t.Parallel()
	good := manifest(t, "good")
	missing := manifest(t, "missing-binary")
	missing.Binary = filepath.Join(t.TempDir(), "nope")
	tampered := manifest(t, "tampered")
	tampered.SHA256 = strings.Repeat("00", 32)
	invalid := domain.Manifest{Name: "broken"}

	svc := service.NewRecorderService(&staticStore{manifests: []domain.Manifest{good, missing, tampered, invalid}}, &fakeHost{})
	results, err := svc.Doctor(context.Background())
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	byName := map[string]dto.DoctorResult{}
	for _, r := range results {
		byName[r.Name] = r
	}
	if r := byName["good"]; !r.BinaryReachable || !r.ChecksumValid || !r.LifecycleOK || r.Error != "" {
		t.Fatalf("good recorder should be healthy: %+v", r)
	}
	if r := byName["missing-binary"]; r.BinaryReachable || r.Error == "" {
		t.Fatalf("missing binary not reported: %+v", r)
	}
	if r := byName["tampered"]; !r.BinaryReachable || r.ChecksumValid || r.Error != "checksum mismatch" {
		t.Fatalf("tampered binary not reported: %+v", r)
	}
	if r := byName["broken"]; r.Error == "" {
		t.Fatalf("invalid manifest not reported: %+v", r)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	m := manifest(t, "dup")
	svc := service.NewRecorderService(&staticStore{manifests: []domain.Manifest{m, m}}, &fakeHost{})
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("duplicate names must fail")
	}
}
