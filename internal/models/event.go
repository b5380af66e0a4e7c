package models

import "time"

type EventType string

const (
	EventTypeMountain EventType = "Mountain"
	EventTypeUltra    EventType = "Ultra"
	EventTypeUrban    EventType = "Urban"
)

// EventTypes lists the recognised event types in display order.
var EventTypes = []EventType{EventTypeMountain, EventTypeUltra, EventTypeUrban}

// Valid reports whether t is one of the recognised event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeMountain, EventTypeUltra, EventTypeUrban:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusCompleted EventStatus = "completed"
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusWishlist  EventStatus = "wishlist"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusCompleted, EventStatusUpcoming, EventStatusWishlist:
		return true
	}
	return false
}

// Event is a single race or challenge on the CV. Optional metrics are pointers;
// read them through the accessor methods so missing values behave uniformly.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        EventType   `json:"type"`
	Status      EventStatus `json:"status"`
	Distance    *float64    `json:"distance"`  // km
	Elevation   *float64    `json:"elevation"` // m
	Difficulty  int         `json:"difficulty"`
	Time        string      `json:"time,omitempty"` // HH:MM:SS or HH:MM
	Completions int         `json:"completions"`
	Date        string      `json:"date,omitempty"` // YYYY-MM-DD
	Location    string      `json:"location,omitempty"`
	Notes       string      `json:"notes,omitempty"`

	TrainingPlan  *Plan        `json:"trainingPlan,omitempty"`
	TrainingWeeks []WeekStatus `json:"trainingWeeks,omitempty"`
	Phase         string       `json:"phase,omitempty"`
	Week          int          `json:"week,omitempty"`
	Progress      int          `json:"progress,omitempty"` // 0-100

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	DeletedAt *string   `json:"deleted_at,omitempty"` // RFC3339, set by soft delete
}

// DistanceKm returns the distance, or 0 when it was never recorded.
func (e Event) DistanceKm() float64 {
	if e.Distance == nil || *e.Distance < 0 {
		return 0
	}
	return *e.Distance
}

// ElevationM returns the elevation gain, or 0 when it was never recorded.
func (e Event) ElevationM() float64 {
	if e.Elevation == nil || *e.Elevation < 0 {
		return 0
	}
	return *e.Elevation
}

// CompletionCount returns how many times the event was finished, never less than 1.
func (e Event) CompletionCount() int {
	if e.Completions < 1 {
		return 1
	}
	return e.Completions
}

// DifficultyLevel returns the difficulty clamped to [1,5].
func (e Event) DifficultyLevel() int {
	return ClampDifficulty(e.Difficulty)
}

// HasDate reports whether the event carries a date usable for bucketing.
func (e Event) HasDate() bool {
	return len(e.Date) >= 10
}

// Day returns the YYYY-MM-DD part of the date.
func (e Event) Day() string {
	if !e.HasDate() {
		return ""
	}
	return e.Date[:10]
}

func (e Event) IsDeleted() bool {
	return e.DeletedAt != nil
}

func (e Event) IsCompleted() bool {
	return e.Status == EventStatusCompleted
}

// ClampDifficulty bounds a difficulty rating to [1,5].
func ClampDifficulty(d int) int {
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

// Float returns a pointer to v, for populating optional metrics.
func Float(v float64) *float64 {
	return &v
}
