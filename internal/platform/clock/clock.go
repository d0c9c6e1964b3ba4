package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local time; calendar-day comparisons depend on
// the instant's location, so local is the right default for a
// single-user journal.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
