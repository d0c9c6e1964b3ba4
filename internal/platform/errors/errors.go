package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoGoal       = errors.New("no goal set for today")
	ErrSessionDone  = errors.New("session already completed today")
)
