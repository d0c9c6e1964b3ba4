// Package slug derives the filename fragment of a note from its text:
// the goal for a ritual session note, the prompt for an entry note.
package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases the input and collapses every non-alphanumeric run
// to a single dash, keeping note names portable across filesystems.
// Goal and prompt text is free-form, so blank input still yields a
// usable name.
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
