// Package id issues the identifiers stamped onto journal entries and
// ritual sessions. Records are addressed by these ids everywhere: note
// frontmatter, projection rows, and the history timeline.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque record identifiers. Services take this as a
// seam so tests can pin deterministic ids.
type Generator interface {
	New() string
}

// RandomHex issues 32-char hex ids. Collisions within a journal are
// what matters here, not global uniqueness, so 128 random bits is
// plenty.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
