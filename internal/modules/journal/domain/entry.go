package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

type MediaKind string

const (
	MediaNone  MediaKind = "none"
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// Entry is one shadow-work reflection. Entries are immutable once
// written; the only lifecycle operation after save is deletion.
type Entry struct {
	ID        string
	Date      time.Time
	Prompt    string
	Text      string
	Mood      Mood
	MediaKind MediaKind
	MediaPath string
	NotePath  string
}

func (m Mood) Validate() error {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return nil
	default:
		return fmt.Errorf("unsupported mood %q", string(m))
	}
}

func (k MediaKind) Validate() error {
	switch k {
	case MediaNone, MediaAudio, MediaVideo:
		return nil
	default:
		return fmt.Errorf("unsupported media kind %q", string(k))
	}
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if err := e.Mood.Validate(); err != nil {
		return err
	}
	if err := e.MediaKind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Text) == "" && e.MediaKind == MediaNone {
		return fmt.Errorf("entry needs a written response or a recording")
	}
	if e.MediaKind != MediaNone && e.MediaPath == "" {
		return fmt.Errorf("media kind %s without a stored payload", e.MediaKind)
	}
	return nil
}

// EntryDocument pairs an entry with its rendered note body.
type EntryDocument struct {
	Entry Entry
	Body  string
}
