package validation

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/planner"
)

func validEvent() models.Event {
	return models.Event{
		ID:          "1",
		Name:        "UTMB",
		Type:        models.EventTypeMountain,
		Status:      models.EventStatusCompleted,
		Distance:    models.Float(171),
		Elevation:   models.Float(10000),
		Difficulty:  5,
		Time:        "38:12:00",
		Completions: 1,
		Date:        "2025-08-29",
	}
}

func fieldsOf(err error) []string {
	var fields []string
	for _, e := range multierr.Errors(err) {
		var fe *FieldError
		if errors.As(e, &fe) {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

func TestValidateEvent_Valid(t *testing.T) {
	if err := ValidateEvent(validEvent()); err != nil {
		t.Errorf("ValidateEvent() = %v, want nil", err)
	}

	wishlist := models.Event{Name: "Tor des Géants", Type: models.EventTypeMountain, Status: models.EventStatusWishlist, Difficulty: 5}
	if err := ValidateEvent(wishlist); err != nil {
		t.Errorf("ValidateEvent(wishlist without metrics) = %v, want nil", err)
	}
}

func TestValidateEvent_SingleField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Event)
		field  string
	}{
		{"blank name", func(e *models.Event) { e.Name = "  " }, "name"},
		{"unknown type", func(e *models.Event) { e.Type = "Trail" }, "type"},
		{"unknown status", func(e *models.Event) { e.Status = "abandoned" }, "status"},
		{"difficulty too low", func(e *models.Event) { e.Difficulty = 0 }, "difficulty"},
		{"difficulty too high", func(e *models.Event) { e.Difficulty = 6 }, "difficulty"},
		{"negative distance", func(e *models.Event) { e.Distance = models.Float(-1) }, "distance"},
		{"negative elevation", func(e *models.Event) { e.Elevation = models.Float(-10) }, "elevation"},
		{"completed without completions", func(e *models.Event) { e.Completions = 0 }, "completions"},
		{"bad date", func(e *models.Event) { e.Date = "29/08/2025" }, "date"},
		{"short date", func(e *models.Event) { e.Date = "2025" }, "date"},
		{"bad time", func(e *models.Event) { e.Time = "38h" }, "time"},
		{"week array mismatch", func(e *models.Event) {
			*e = planner.AttachPlan(*e, planner.New().GeneratePlanForEvent(*e))
			e.TrainingWeeks = e.TrainingWeeks[:2]
		}, "trainingWeeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)

			fields := fieldsOf(ValidateEvent(e))
			if len(fields) != 1 || fields[0] != tt.field {
				t.Errorf("fields = %v, want [%s]", fields, tt.field)
			}
		})
	}
}

func TestValidateEvent_CollectsAllProblems(t *testing.T) {
	e := models.Event{Type: "Road", Status: "done", Difficulty: 9, Distance: models.Float(-5), Time: "late"}

	err := ValidateEvent(e)
	if err == nil {
		t.Fatal("expected error")
	}

	want := []string{"name", "type", "status", "difficulty", "distance", "time"}
	got := fieldsOf(err)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("fields = %v, want %v", got, want)
	}
}

func TestValidateCheckin(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2026-10-12", false},
		{"2026-10-14", true},
		{"2026-10-18", true},
		{"12-10-2026", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateCheckin(tt.date)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCheckin(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
		}
	}

	if err := ValidateCheckin("2026-10-14"); err == nil || !strings.Contains(err.Error(), "2026-10-12") {
		t.Errorf("expected the error to suggest the Monday, got %v", err)
	}
}

func TestValidateState(t *testing.T) {
	a := validEvent()
	b := validEvent()
	b.ID = "2"
	b.Name = "utmb "
	c := models.Event{ID: "3", Name: "Lavaredo", Type: models.EventTypeUltra, Status: models.EventStatusUpcoming, Difficulty: 4}
	d := models.Event{ID: "4", Name: "Berlin", Type: models.EventTypeUrban, Status: models.EventStatusUpcoming, Difficulty: 2}

	state := &models.AppState{
		Events:   []models.Event{a, b, c, d},
		Checkins: []string{"2026-10-12", "2026-10-13"},
	}

	result := New().ValidateState(state)
	if !result.HasConflicts() {
		t.Fatal("expected conflicts")
	}

	counts := make(map[ConflictType]int)
	for _, conflict := range result.Conflicts {
		counts[conflict.Type]++
	}
	if counts[ConflictDuplicateEventName] != 1 {
		t.Errorf("duplicate name conflicts = %d, want 1", counts[ConflictDuplicateEventName])
	}
	if counts[ConflictMultipleUpcoming] != 1 {
		t.Errorf("multiple upcoming conflicts = %d, want 1", counts[ConflictMultipleUpcoming])
	}
	if counts[ConflictInvalidCheckin] != 1 {
		t.Errorf("invalid check-in conflicts = %d, want 1", counts[ConflictInvalidCheckin])
	}
	if counts[ConflictInvalidEvent] != 0 {
		t.Errorf("invalid event conflicts = %d, want 0", counts[ConflictInvalidEvent])
	}

	if !strings.HasPrefix(result.FormatReport(), "Conflicts detected:") {
		t.Errorf("unexpected report: %s", result.FormatReport())
	}
}

func TestValidateState_Clean(t *testing.T) {
	state := &models.AppState{Events: []models.Event{validEvent()}, Checkins: []string{"2026-10-12"}}

	result := New().ValidateState(state)
	if result.HasConflicts() {
		t.Errorf("unexpected conflicts: %s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", result.FormatReport())
	}
}
