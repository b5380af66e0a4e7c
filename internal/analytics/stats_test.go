package analytics

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/enduro/internal/models"
)

var statsNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func sampleEvents() []models.Event {
	return []models.Event{
		{
			ID:          "a",
			Name:        "Matterhorn Ultraks",
			Type:        models.EventTypeMountain,
			Status:      models.EventStatusCompleted,
			Distance:    models.Float(50),
			Elevation:   models.Float(3000),
			Difficulty:  4,
			Time:        "06:00:00",
			Completions: 2,
			Date:        "2026-05-10",
		},
		{
			ID:         "b",
			Name:       "Chicago Marathon",
			Type:       models.EventTypeUrban,
			Status:     models.EventStatusCompleted,
			Distance:   models.Float(42.195),
			Elevation:  models.Float(100),
			Difficulty: 2,
			Time:       "03:30:00",
			Date:       "2025-10-05",
		},
		{
			ID:       "c",
			Name:     "Western States",
			Type:     models.EventTypeUltra,
			Status:   models.EventStatusUpcoming,
			Distance: models.Float(161),
			Date:     "2027-06-26",
		},
	}
}

func TestComputeStats_Totals(t *testing.T) {
	s := ComputeStats(sampleEvents(), models.Preferences{}, statsNow)

	assert.InDelta(t, 142.195, s.TotalDistance, 1e-9)
	assert.InDelta(t, 6100.0, s.TotalElevation, 1e-9)
	assert.Equal(t, 3, s.TotalEvents)
}

func TestComputeStats_Records(t *testing.T) {
	s := ComputeStats(sampleEvents(), models.Preferences{}, statsNow)

	require.Len(t, s.Records, len(RecordCategories))

	want := map[models.RecordCategory]string{
		models.RecordLongestDistance:   "a",
		models.RecordMostElevation:     "a",
		models.RecordHighestDifficulty: "a",
		models.RecordMostCompletions:   "a",
		models.RecordFastestPace:       "b",
	}
	for category, id := range want {
		rec := s.Records[category]
		require.NotNil(t, rec, "record %s", category)
		assert.Equal(t, id, rec.EventID, "record %s", category)
	}

	assert.InDelta(t, 50.0, s.Records[models.RecordLongestDistance].Value, 1e-9)
	assert.InDelta(t, 12600/42.195, s.Records[models.RecordFastestPace].Value, 1e-9)
	assert.Equal(t, "2025-10-05", s.Records[models.RecordFastestPace].Date)
}

func TestComputeStats_RecordTiesKeepFirst(t *testing.T) {
	events := []models.Event{
		{ID: "first", Status: models.EventStatusCompleted, Distance: models.Float(30), Difficulty: 3},
		{ID: "second", Status: models.EventStatusCompleted, Distance: models.Float(30), Difficulty: 3},
	}

	s := ComputeStats(events, models.Preferences{}, statsNow)

	assert.Equal(t, "first", s.Records[models.RecordLongestDistance].EventID)
	assert.Equal(t, "first", s.Records[models.RecordHighestDifficulty].EventID)
}

func TestComputeStats_MissingMetricsHaveNoRecord(t *testing.T) {
	events := []models.Event{
		{ID: "bare", Name: "Fun run", Status: models.EventStatusCompleted},
	}

	s := ComputeStats(events, models.Preferences{}, statsNow)

	assert.Nil(t, s.Records[models.RecordLongestDistance])
	assert.Nil(t, s.Records[models.RecordMostElevation])
	assert.Nil(t, s.Records[models.RecordFastestPace])
	assert.NotNil(t, s.Records[models.RecordHighestDifficulty])
	assert.Zero(t, s.TotalDistance)
	assert.Equal(t, 1, s.TotalEvents)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil, models.Preferences{}, statsNow)

	assert.Zero(t, s.TotalEvents)
	assert.Zero(t, s.TotalDistance)
	assert.NotNil(t, s.Timeline)
	assert.Empty(t, s.Timeline)
	assert.NotNil(t, s.FunFacts)
	assert.Empty(t, s.FunFacts)
	for _, category := range RecordCategories {
		rec, ok := s.Records[category]
		assert.True(t, ok, "category %s missing", category)
		assert.Nil(t, rec)
	}
	assert.Nil(t, s.YearOverYear.DistancePct)
	assert.False(t, s.CurrentYear.HasYearDates)
}

func TestComputeStats_YearOverYear(t *testing.T) {
	s := ComputeStats(sampleEvents(), models.Preferences{}, statsNow)

	assert.Equal(t, 2026, s.CurrentYear.Year)
	assert.True(t, s.CurrentYear.HasYearDates)
	assert.Equal(t, 2, s.CurrentYear.Events)
	assert.InDelta(t, 100.0, s.CurrentYear.Distance, 1e-9)

	assert.Equal(t, 2025, s.PreviousYear.Year)
	assert.Equal(t, 1, s.PreviousYear.Events)

	require.NotNil(t, s.YearOverYear.EventsPct)
	assert.InDelta(t, 100.0, *s.YearOverYear.EventsPct, 1e-9)
	require.NotNil(t, s.YearOverYear.ElevationPct)
	assert.InDelta(t, 5900.0, *s.YearOverYear.ElevationPct, 1e-9)

	require.Len(t, s.Years, 2)
	assert.Equal(t, 2025, s.Years[0].Year)
	assert.Equal(t, 2026, s.Years[1].Year)
}

func TestComputeStats_UndatedFallback(t *testing.T) {
	events := []models.Event{
		{ID: "x", Status: models.EventStatusCompleted, Distance: models.Float(20)},
		{ID: "y", Status: models.EventStatusCompleted, Distance: models.Float(10), Completions: 3},
	}

	s := ComputeStats(events, models.Preferences{}, statsNow)

	assert.False(t, s.CurrentYear.HasYearDates)
	assert.Equal(t, 4, s.CurrentYear.Events)
	assert.InDelta(t, 50.0, s.CurrentYear.Distance, 1e-9)
	assert.Zero(t, s.PreviousYear.Events)
	assert.Nil(t, s.YearOverYear.EventsPct)
	assert.Empty(t, s.Years)
	assert.Empty(t, s.Timeline)
}

func TestComputeStats_ByType(t *testing.T) {
	s := ComputeStats(sampleEvents(), models.Preferences{}, statsNow)

	require.Len(t, s.ByType, len(models.EventTypes))
	byType := make(map[models.EventType]models.TypeStats)
	for _, ts := range s.ByType {
		byType[ts.Type] = ts
	}
	assert.Equal(t, 2, byType[models.EventTypeMountain].Events)
	assert.Zero(t, byType[models.EventTypeUltra].Events)
	assert.Equal(t, 1, byType[models.EventTypeUrban].Events)
}

func TestComputeStats_FunFacts(t *testing.T) {
	events := []models.Event{
		{ID: "z", Type: models.EventTypeUltra, Status: models.EventStatusCompleted, Distance: models.Float(100), Elevation: models.Float(8849)},
	}

	s := ComputeStats(events, models.Preferences{BodyWeight: models.Float(60)}, statsNow)
	facts := strings.Join(s.FunFacts, "\n")

	assert.Contains(t, facts, "Earth")
	assert.Contains(t, facts, "2.4 marathons")
	assert.Contains(t, facts, "6,000 kcal")
	assert.Contains(t, facts, "1.00x the height of Everest")
	assert.Contains(t, facts, "favourite terrain is Ultra with 1 event.")

	s = ComputeStats(events, models.Preferences{}, statsNow)
	assert.Contains(t, strings.Join(s.FunFacts, "\n"), "7,000 kcal")
}

func TestComputeStats_Timeline(t *testing.T) {
	s := ComputeStats(sampleEvents(), models.Preferences{}, statsNow)

	require.Len(t, s.Timeline, 6)
	assert.Equal(t, "b", s.Timeline[0].EventID)
	assert.Equal(t, "a", s.Timeline[5].EventID)
}

func randomEvents(seed int64, n int) []models.Event {
	faker := gofakeit.New(seed)
	statuses := []string{
		string(models.EventStatusCompleted),
		string(models.EventStatusCompleted),
		string(models.EventStatusUpcoming),
		string(models.EventStatusWishlist),
	}
	types := []string{"Mountain", "Ultra", "Urban", "Trail"}
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	events := make([]models.Event, 0, n)
	for i := 0; i < n; i++ {
		e := models.Event{
			ID:          faker.UUID(),
			Name:        fmt.Sprintf("%s %s", faker.City(), faker.RandomString([]string{"Trail", "Marathon", "Skyrace"})),
			Type:        models.EventType(faker.RandomString(types)),
			Status:      models.EventStatus(faker.RandomString(statuses)),
			Difficulty:  faker.IntRange(-1, 7),
			Completions: faker.IntRange(0, 4),
		}
		if faker.Bool() {
			e.Distance = models.Float(faker.Float64Range(0, 170))
		}
		if faker.Bool() {
			e.Elevation = models.Float(faker.Float64Range(0, 10000))
		}
		if faker.Bool() {
			e.Time = fmt.Sprintf("%02d:%02d:%02d", faker.IntRange(0, 40), faker.IntRange(0, 59), faker.IntRange(0, 59))
		}
		if faker.Number(0, 4) > 0 {
			e.Date = faker.DateRange(start, statsNow).Format("2006-01-02")
		}
		events = append(events, e)
	}
	return events
}

func TestComputeStats_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		events := randomEvents(seed, 60)
		before := make([]models.Event, len(events))
		copy(before, events)

		first := ComputeStats(events, models.Preferences{}, statsNow)
		second := ComputeStats(events, models.Preferences{}, statsNow)

		assert.Equal(t, first, second, "seed %d", seed)
		assert.Equal(t, before, events, "seed %d: input reordered or modified", seed)
	}
}

func TestComputeStats_TimelineMonotonic(t *testing.T) {
	for seed := int64(10); seed <= 20; seed++ {
		s := ComputeStats(randomEvents(seed, 80), models.Preferences{}, statsNow)

		last := make(map[models.RecordCategory]float64)
		prevDate := ""
		for i, entry := range s.Timeline {
			if v, ok := last[entry.Category]; ok {
				assert.Greater(t, entry.Value, v, "seed %d entry %d", seed, i)
			}
			last[entry.Category] = entry.Value
			assert.GreaterOrEqual(t, entry.Date, prevDate, "seed %d entry %d", seed, i)
			prevDate = entry.Date
		}
	}
}
