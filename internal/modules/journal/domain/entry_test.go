package domain_test

import (
	"strings"
	"testing"
	"time"

	"innerwork/internal/modules/journal/domain"
)

func validEntry() domain.Entry {
	return domain.Entry{
		ID:        "e-1",
		Date:      time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		Prompt:    "What truth are you avoiding?",
		Text:      "wrote something honest",
		Mood:      domain.MoodNeutral,
		MediaKind: domain.MediaNone,
	}
}

func TestEntryValidate(t *testing.T) {
	t.Parallel()
	if err := validEntry().Validate(); err != nil {
		t.Fatalf("entry should be valid: %v", err)
	}

	noID := validEntry()
	noID.ID = ""
	if err := noID.Validate(); err == nil {
		t.Fatalf("missing id should fail")
	}

	badMood := validEntry()
	badMood.Mood = "ecstatic"
	if err := badMood.Validate(); err == nil {
		t.Fatalf("unknown mood should fail")
	}

	empty := validEntry()
	empty.Text = "   "
	if err := empty.Validate(); err == nil {
		t.Fatalf("blank text without media should fail")
	}

	recorded := validEntry()
	recorded.Text = ""
	recorded.MediaKind = domain.MediaAudio
	recorded.MediaPath = "media/e-1.webm"
	if err := recorded.Validate(); err != nil {
		t.Fatalf("recording without text should be valid: %v", err)
	}

	recorded.MediaPath = ""
	if err := recorded.Validate(); err == nil {
		t.Fatalf("media kind without payload should fail")
	}
}

func TestMediaKindValidate(t *testing.T) {
	t.Parallel()
	for _, k := range []domain.MediaKind{domain.MediaNone, domain.MediaAudio, domain.MediaVideo} {
		if err := k.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", k, err)
		}
	}
	if err := domain.MediaKind("hologram").Validate(); err == nil {
		t.Fatalf("unknown media kind should fail")
	}
}

func TestPickPromptIsStablePerDay(t *testing.T) {
	t.Parallel()
	a := domain.PickPrompt("2026-08-29")
	b := domain.PickPrompt("2026-08-29")
	if a != b {
		t.Fatalf("same day must pick the same prompt: %q vs %q", a, b)
	}
	found := false
	for _, p := range domain.PromptDeck {
		if p == a {
			found = true
		}
	}
	if !found {
		t.Fatalf("picked prompt must come from the deck: %q", a)
	}
}

func TestPickPromptStaysInDeck(t *testing.T) {
	t.Parallel()
	deck := map[string]bool{}
	for _, p := range domain.PromptDeck {
		deck[p] = true
	}
	// Walk a year of day keys; every hash, including ones with the high
	// bit set, must land on a deck index.
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		key := day.Format("2006-01-02")
		if !deck[domain.PickPrompt(key)] {
			t.Fatalf("prompt for %s is not from the deck", key)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestDayPromptRollover(t *testing.T) {
	t.Parallel()
	day1 := domain.DayPrompt{}.Rollover("2026-08-28")
	if day1.Day != "2026-08-28" || day1.Prompt == "" {
		t.Fatalf("fresh rollover should pick a prompt: %+v", day1)
	}

	same := day1.Rollover("2026-08-28")
	if same != day1 {
		t.Fatalf("same-day rollover must be a no-op")
	}

	day2 := day1.Rollover("2026-08-29")
	if day2.Day != "2026-08-29" {
		t.Fatalf("new day should replace the stored day: %+v", day2)
	}
	if strings.TrimSpace(day2.Prompt) == "" {
		t.Fatalf("new day must carry a prompt")
	}
}
