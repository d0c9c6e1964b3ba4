package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "innerwork/internal/platform/errors"
)

const SchemaVersion = 1

// Kind is the time-of-day slot of a manifestation session.
type Kind string

const (
	KindMorning   Kind = "morning"
	KindAfternoon Kind = "afternoon"
	KindNight     Kind = "night"
)

// Kinds lists the slots in their daily order.
var Kinds = []Kind{KindMorning, KindAfternoon, KindNight}

// RequiredCount returns how many written repetitions the slot demands:
// three in the morning, six in the afternoon, nine at night.
func (k Kind) RequiredCount() int {
	switch k {
	case KindMorning:
		return 3
	case KindAfternoon:
		return 6
	case KindNight:
		return 9
	}
	return 0
}

func (k Kind) Validate() error {
	switch k {
	case KindMorning, KindAfternoon, KindNight:
		return nil
	}
	return fmt.Errorf("%w: unknown session kind %q", apperrors.ErrInvalidInput, k)
}

// Session is one completed repetition set. Sessions are append-only;
// the only mutation is deletion by id.
type Session struct {
	ID          string
	Date        time.Time
	Goal        string
	Kind        Kind
	Repetitions []string
	NotePath    string
}

func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	if s.Date.IsZero() {
		return fmt.Errorf("%w: session date is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(s.Goal) == "" {
		return fmt.Errorf("%w: session goal is required", apperrors.ErrInvalidInput)
	}
	if err := s.Kind.Validate(); err != nil {
		return err
	}
	if want := s.Kind.RequiredCount(); len(s.Repetitions) != want {
		return fmt.Errorf("%w: %s session needs exactly %d repetitions, got %d",
			apperrors.ErrInvalidInput, s.Kind, want, len(s.Repetitions))
	}
	for i, rep := range s.Repetitions {
		if strings.TrimSpace(rep) == "" {
			return fmt.Errorf("%w: repetition %d is blank", apperrors.ErrInvalidInput, i+1)
		}
	}
	return nil
}

// SessionDocument pairs a session with its rendered note body.
type SessionDocument struct {
	Session Session
	Body    string
}
