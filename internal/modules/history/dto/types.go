package dto

import "time"

const (
	FilterAll     = "all"
	FilterJournal = "journal"
	FilterRitual  = "ritual"
)

const (
	CategoryJournal = "journal"
	CategoryRitual  = "ritual"
)

// Item is one record in the merged timeline. Title is the prompt for
// a journal entry and the goal for a ritual session; Detail carries
// the response text or the session kind.
type Item struct {
	ID       string
	Category string
	Date     time.Time
	Title    string
	Detail   string
	Mood     string
}
