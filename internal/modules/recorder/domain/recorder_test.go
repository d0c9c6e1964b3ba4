package domain_test

import (
	"strings"
	"testing"

	"innerwork/internal/modules/recorder/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:    "reference",
		Version: "1.0.0",
		Binary:  "/usr/local/bin/innerwork-recorder",
		SHA256:  strings.Repeat("ab", 32),
		Enabled: true,
		Kinds:   []domain.CaptureKind{domain.CaptureAudio, domain.CaptureVideo},
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*domain.Manifest)
		ok     bool
	}{
		{"valid", func(*domain.Manifest) {}, true},
		{"missing name", func(m *domain.Manifest) { m.Name = "" }, false},
		{"missing version", func(m *domain.Manifest) { m.Version = "" }, false},
		{"missing binary", func(m *domain.Manifest) { m.Binary = "" }, false},
		{"uppercase sha", func(m *domain.Manifest) { m.SHA256 = strings.Repeat("AB", 32) }, false},
		{"short sha", func(m *domain.Manifest) { m.SHA256 = "abcd" }, false},
		{"no kinds", func(m *domain.Manifest) { m.Kinds = nil }, false},
		{"unknown kind", func(m *domain.Manifest) { m.Kinds = []domain.CaptureKind{"screen"} }, false},
		{"duplicate kind", func(m *domain.Manifest) {
			m.Kinds = []domain.CaptureKind{domain.CaptureAudio, domain.CaptureAudio}
		}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			manifest := validManifest()
			tt.mutate(&manifest)
			err := manifest.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestSupportsKind(t *testing.T) {
	t.Parallel()
	manifest := validManifest()
	manifest.Kinds = []domain.CaptureKind{domain.CaptureAudio}
	if !manifest.SupportsKind(domain.CaptureAudio) {
		t.Fatalf("audio should be supported")
	}
	if manifest.SupportsKind(domain.CaptureVideo) {
		t.Fatalf("video should not be supported")
	}
}

func TestCaptureResultValidate(t *testing.T) {
	t.Parallel()
	result := domain.CaptureResult{Kind: domain.CaptureAudio, MIME: "audio/webm", PayloadBase64: "AAAA"}
	if err := result.Validate(); err != nil {
		t.Fatalf("expected valid result: %v", err)
	}
	result.PayloadBase64 = ""
	if err := result.Validate(); err == nil {
		t.Fatalf("empty payload must fail")
	}
}
