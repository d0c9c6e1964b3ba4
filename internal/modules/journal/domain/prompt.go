package domain

import "hash/fnv"

// PromptDeck is the built-in deck of daily reflection prompts.
var PromptDeck = []string{
	"What aspect of yourself are you avoiding today?",
	"What emotions are you suppressing right now?",
	"What would you do if you weren't afraid of judgment?",
	"What patterns keep repeating in your life?",
	"What truth are you avoiding?",
	"What do you need to forgive yourself for?",
	"What makes you feel vulnerable?",
	"What belief is holding you back?",
	"What would your authentic self say right now?",
	"What are you grateful for today?",
}

// DayPrompt is the persisted "today" scratch record for the prompt
// selector: once a prompt is picked for a day it is reused for the
// rest of that day.
type DayPrompt struct {
	Day    string `json:"day"`
	Prompt string `json:"prompt"`
}

// PickPrompt selects the deck prompt for a day key. The choice is a
// stable hash of the key so every load of the same day agrees even if
// the scratch file is lost.
func PickPrompt(dayKey string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(dayKey))
	return PromptDeck[h.Sum32()%uint32(len(PromptDeck))]
}

// Rollover returns the scratch state valid for today: unchanged when
// the stored day matches, otherwise a fresh pick for the new day.
func (p DayPrompt) Rollover(dayKey string) DayPrompt {
	if p.Day == dayKey && p.Prompt != "" {
		return p
	}
	return DayPrompt{Day: dayKey, Prompt: PickPrompt(dayKey)}
}
