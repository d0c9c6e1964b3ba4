package domain

// DayState is the persisted "today" scratch record for the ritual: the
// goal being manifested and which slots are already done. It carries
// no history; completed sessions live as notes.
type DayState struct {
	Day       string        `json:"day"`
	Goal      string        `json:"goal"`
	Completed map[Kind]bool `json:"completed"`
}

// Rollover returns the scratch state valid for today: unchanged when
// the stored day matches, otherwise a blank slate for the new day.
func (s DayState) Rollover(dayKey string) DayState {
	if s.Day == dayKey {
		if s.Completed == nil {
			s.Completed = map[Kind]bool{}
		}
		return s
	}
	return DayState{Day: dayKey, Completed: map[Kind]bool{}}
}

// MarkDone returns a copy with the slot flagged complete.
func (s DayState) MarkDone(kind Kind) DayState {
	completed := make(map[Kind]bool, len(s.Completed)+1)
	for k, v := range s.Completed {
		completed[k] = v
	}
	completed[kind] = true
	return DayState{Day: s.Day, Goal: s.Goal, Completed: completed}
}
