package models

// Preferences are the user-level settings analytics may read.
type Preferences struct {
	BodyWeight *float64 `json:"bodyWeight,omitempty"` // kg
	Timezone   string   `json:"timezone,omitempty"`   // IANA timezone name or "Local"
}

// AppState is everything a command needs, loaded once from storage and passed by reference.
type AppState struct {
	Events      []Event     `json:"events"`
	Checkins    []string    `json:"checkins"`
	Preferences Preferences `json:"preferences"`
}

// EventsWithStatus returns the events in the given status, in source order.
func (s *AppState) EventsWithStatus(status EventStatus) []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming returns the single upcoming event, if any.
func (s *AppState) Upcoming() (Event, bool) {
	for _, e := range s.Events {
		if e.Status == EventStatusUpcoming {
			return e, true
		}
	}
	return Event{}, false
}
