package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// CaptureKind is the media type a recorder can produce. It matches the
// journal's media kinds so a capture result can feed an entry directly.
type CaptureKind string

const (
	CaptureAudio CaptureKind = "audio"
	CaptureVideo CaptureKind = "video"
)

var (
	ErrRecorderDisabled = errors.New("recorder is disabled")
	ErrChecksumMismatch = errors.New("recorder checksum mismatch")
	ErrKindUnsupported  = errors.New("recorder does not support capture kind")
	ErrRecorderTimeout  = errors.New("recorder timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed recorder binary. Recorders are
// out-of-process capture tools spoken to over the plugin protocol.
type Manifest struct {
	Name    string        `json:"name"`
	Version string        `json:"version"`
	Binary  string        `json:"binary"`
	SHA256  string        `json:"sha256"`
	Enabled bool          `json:"enabled"`
	Kinds   []CaptureKind `json:"kinds"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("recorder name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("recorder version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("recorder binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("recorder sha256 must be lowercase 64-char hex")
	}
	if len(m.Kinds) == 0 {
		return fmt.Errorf("recorder capture kinds are required")
	}
	seen := map[CaptureKind]struct{}{}
	for _, kind := range m.Kinds {
		if err := kind.Validate(); err != nil {
			return err
		}
		if _, ok := seen[kind]; ok {
			return fmt.Errorf("duplicate capture kind: %s", kind)
		}
		seen[kind] = struct{}{}
	}
	return nil
}

func (k CaptureKind) Validate() error {
	switch k {
	case CaptureAudio, CaptureVideo:
		return nil
	default:
		return fmt.Errorf("unknown capture kind: %s", k)
	}
}

func (m Manifest) SupportsKind(kind CaptureKind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Kinds   []CaptureKind
}

type CaptureRequest struct {
	Kind       CaptureKind
	MaxSeconds int
}

func (r CaptureRequest) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.MaxSeconds < 0 {
		return fmt.Errorf("max seconds must not be negative")
	}
	return nil
}

// CaptureResult is the recorder's wire payload. The host never
// inspects the bytes; PayloadBase64 is handed to the journal as-is.
type CaptureResult struct {
	Kind          CaptureKind
	MIME          string
	PayloadBase64 string
}

func (r CaptureResult) Validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if r.MIME == "" {
		return fmt.Errorf("capture mime type is required")
	}
	if r.PayloadBase64 == "" {
		return fmt.Errorf("capture payload is required")
	}
	return nil
}
