package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/enduro/internal/models"
)

func completedOn(date string, distance float64, difficulty int) models.Event {
	return models.Event{
		ID:         "evt-" + date,
		Name:       "Run on " + date,
		Type:       models.EventTypeUltra,
		Status:     models.EventStatusCompleted,
		Distance:   models.Float(distance),
		Difficulty: difficulty,
		Date:       date,
	}
}

func TestComputeRecovery_NoEvents(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	for _, events := range [][]models.Event{
		nil,
		{{Name: "Someday", Status: models.EventStatusWishlist, Date: "2026-10-16"}},
		{{Name: "Undated", Status: models.EventStatusCompleted}},
	} {
		got := ComputeRecovery(events, now)
		assert.Equal(t, models.RecoveryFresh, got.Score)
		assert.Equal(t, "No events logged yet", got.Message)
		assert.Nil(t, got.DaysSinceLast)
		assert.Nil(t, got.AvgGap)
		assert.Zero(t, got.RecentLoad)
	}
}

func TestComputeRecovery_Classification(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		events    []models.Event
		wantScore models.RecoveryScore
		wantDays  int
		wantLoad  float64
	}{
		{
			name:      "two days ago is fatigued regardless of load",
			events:    []models.Event{completedOn("2026-10-15", 10, 3)},
			wantScore: models.RecoveryFatigued,
			wantDays:  2,
			wantLoad:  1.0,
		},
		{
			name:      "within a week under heavy load",
			events:    []models.Event{completedOn("2026-10-12", 40, 3)},
			wantScore: models.RecoveryFatigued,
			wantDays:  5,
			wantLoad:  4.0,
		},
		{
			name:      "within a week under light load",
			events:    []models.Event{completedOn("2026-10-12", 10, 3)},
			wantScore: models.RecoveryModerate,
			wantDays:  5,
			wantLoad:  1.0,
		},
		{
			name:      "three weeks out with load above two",
			events:    []models.Event{completedOn("2026-09-27", 30, 3)},
			wantScore: models.RecoveryModerate,
			wantDays:  20,
			wantLoad:  3.0,
		},
		{
			name:      "three weeks out with light load",
			events:    []models.Event{completedOn("2026-09-27", 10, 3)},
			wantScore: models.RecoveryFresh,
			wantDays:  20,
			wantLoad:  1.0,
		},
		{
			name:      "outside the load window",
			events:    []models.Event{completedOn("2026-09-07", 100, 5)},
			wantScore: models.RecoveryFresh,
			wantDays:  40,
			wantLoad:  0,
		},
		{
			name:      "future dates clamp to zero days",
			events:    []models.Event{completedOn("2026-10-20", 10, 3)},
			wantScore: models.RecoveryFatigued,
			wantDays:  0,
			wantLoad:  0,
		},
		{
			name:      "difficulty is clamped",
			events:    []models.Event{completedOn("2026-09-27", 10, 9)},
			wantScore: models.RecoveryFresh,
			wantDays:  20,
			wantLoad:  5.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRecovery(tt.events, now)
			assert.Equal(t, tt.wantScore, got.Score)
			require.NotNil(t, got.DaysSinceLast)
			assert.Equal(t, tt.wantDays, *got.DaysSinceLast)
			assert.InDelta(t, tt.wantLoad, got.RecentLoad, 1e-9)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestComputeRecovery_AverageGap(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		completedOn("2026-10-01", 10, 3),
		completedOn("2026-09-11", 10, 3),
		completedOn("2026-09-01", 10, 3),
		completedOn("2026-09-11", 21, 3), // same day, no gap
		{Name: "Planned", Status: models.EventStatusUpcoming, Date: "2026-10-16"},
	}

	got := ComputeRecovery(events, now)

	require.NotNil(t, got.AvgGap)
	assert.InDelta(t, 15.0, *got.AvgGap, 1e-9)
	require.NotNil(t, got.DaysSinceLast)
	assert.Equal(t, 16, *got.DaysSinceLast)
	assert.InDelta(t, 1.0, got.RecentLoad, 1e-9)
	assert.Equal(t, models.RecoveryFresh, got.Score)
}

func TestComputeRecovery_SingleEventHasNoGap(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	got := ComputeRecovery([]models.Event{completedOn("2026-10-01", 10, 3)}, now)

	assert.Nil(t, got.AvgGap)
}

func TestComputeRecovery_OneGapHasNoAverage(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		completedOn("2026-09-01", 10, 3),
		completedOn("2026-10-01", 10, 3),
	}

	got := ComputeRecovery(events, now)

	assert.Nil(t, got.AvgGap)
	require.NotNil(t, got.DaysSinceLast)
	assert.Equal(t, 16, *got.DaysSinceLast)
}
