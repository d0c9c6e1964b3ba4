package dto

import "time"

type SetGoalInput struct {
	Goal string
}

type CompleteSessionInput struct {
	Kind        string
	Repetitions []string
}

type SessionOutput struct {
	ID          string
	Date        time.Time
	Goal        string
	Kind        string
	Repetitions []string
	NotePath    string
}

// StatusOutput describes today's ritual progress.
type StatusOutput struct {
	Day       string
	Goal      string
	Morning   bool
	Afternoon bool
	Night     bool
}
