package dto

import "time"

type AddEntryInput struct {
	Text        string
	Mood        string
	MediaKind   string
	MediaBase64 string
}

type EntryOutput struct {
	ID        string
	Date      time.Time
	Prompt    string
	Text      string
	Mood      string
	MediaKind string
	MediaPath string
	NotePath  string
}

type PromptOutput struct {
	Day    string
	Prompt string
}
