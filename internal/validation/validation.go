package validation

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/utils"
)

// FieldError describes one invalid field on a record.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateEvent reports every problem with e as a single combined error.
// Use multierr.Errors to get the individual FieldErrors back.
func ValidateEvent(e models.Event) error {
	var err error

	if strings.TrimSpace(e.Name) == "" {
		err = multierr.Append(err, fieldErr("name", "is required"))
	}
	if !e.Type.Valid() {
		err = multierr.Append(err, fieldErr("type", "unknown event type %q", e.Type))
	}
	if !e.Status.Valid() {
		err = multierr.Append(err, fieldErr("status", "unknown status %q", e.Status))
	}
	if e.Difficulty < 1 || e.Difficulty > 5 {
		err = multierr.Append(err, fieldErr("difficulty", "must be between 1 and 5, got %d", e.Difficulty))
	}
	if e.Distance != nil && *e.Distance < 0 {
		err = multierr.Append(err, fieldErr("distance", "must not be negative"))
	}
	if e.Elevation != nil && *e.Elevation < 0 {
		err = multierr.Append(err, fieldErr("elevation", "must not be negative"))
	}
	if e.Completions < 0 || (e.IsCompleted() && e.Completions < 1) {
		err = multierr.Append(err, fieldErr("completions", "completed events need at least one completion, got %d", e.Completions))
	}
	if e.Date != "" && (!e.HasDate() || !utils.ValidateDateFormat(e.Day())) {
		err = multierr.Append(err, fieldErr("date", "%q is not a YYYY-MM-DD date", e.Date))
	}
	if e.Time != "" {
		if _, ok := analytics.ParseTime(e.Time); !ok {
			err = multierr.Append(err, fieldErr("time", "%q is not HH:MM:SS or HH:MM", e.Time))
		}
	}
	if e.TrainingPlan != nil && len(e.TrainingWeeks) != e.TrainingPlan.TotalWeeks {
		err = multierr.Append(err, fieldErr("trainingWeeks", "has %d entries for a %d-week plan",
			len(e.TrainingWeeks), e.TrainingPlan.TotalWeeks))
	}

	return err
}

// ValidateCheckin requires a YYYY-MM-DD date falling on a Monday.
func ValidateCheckin(date string) error {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return fieldErr("week", "%q is not a YYYY-MM-DD date", date)
	}
	if t.Weekday() != time.Monday {
		return fieldErr("week", "%s is a %s, check-ins are keyed by Monday (%s)",
			date, t.Weekday(), utils.MondayOf(t).Format(constants.DateFormat))
	}
	return nil
}

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidEvent       ConflictType = "invalid_event"
	ConflictDuplicateEventName ConflictType = "duplicate_event_name"
	ConflictMultipleUpcoming   ConflictType = "multiple_upcoming"
	ConflictInvalidCheckin     ConflictType = "invalid_checkin"
)

// Conflict represents a detected problem across the stored data
type Conflict struct {
	Type        ConflictType `json:"type"`
	Description string       `json:"description"`
	EventIDs    []string     `json:"eventIds,omitempty"`
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict `json:"conflicts"`
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks a whole data set for problems a single-record check can't see.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateState checks every event and check-in, plus cross-record rules:
// event names are unique and at most one event is upcoming.
func (v *Validator) ValidateState(state *models.AppState) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	names := make(map[string][]string)
	var nameOrder []string
	var upcoming []string

	for _, e := range state.Events {
		for _, fe := range multierr.Errors(ValidateEvent(e)) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidEvent,
				Description: fmt.Sprintf("Event %q: %v", e.Name, fe),
				EventIDs:    []string{e.ID},
			})
		}

		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key != "" {
			if _, seen := names[key]; !seen {
				nameOrder = append(nameOrder, key)
			}
			names[key] = append(names[key], e.ID)
		}
		if e.Status == models.EventStatusUpcoming {
			upcoming = append(upcoming, e.ID)
		}
	}

	for _, key := range nameOrder {
		if ids := names[key]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateEventName,
				Description: fmt.Sprintf("Duplicate event name: %q (IDs: %v)", key, ids),
				EventIDs:    ids,
			})
		}
	}

	if len(upcoming) > 1 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictMultipleUpcoming,
			Description: fmt.Sprintf("%d events are upcoming, only one can carry the active plan (IDs: %v)", len(upcoming), upcoming),
			EventIDs:    upcoming,
		})
	}

	for _, c := range state.Checkins {
		if err := ValidateCheckin(c); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidCheckin,
				Description: fmt.Sprintf("Check-in %v", err),
			})
		}
	}

	return result
}
