package analytics

import "github.com/julianstephens/enduro/internal/models"

// RecordCategories lists the personal record categories in display order.
var RecordCategories = []models.RecordCategory{
	models.RecordLongestDistance,
	models.RecordMostElevation,
	models.RecordHighestDifficulty,
	models.RecordMostCompletions,
	models.RecordFastestPace,
}

type recordRule struct {
	category models.RecordCategory
	value    func(models.Event) (float64, bool)
	// lower values win
	lowerWins bool
}

var recordRules = []recordRule{
	{
		category: models.RecordLongestDistance,
		value: func(e models.Event) (float64, bool) {
			return e.DistanceKm(), e.DistanceKm() > 0
		},
	},
	{
		category: models.RecordMostElevation,
		value: func(e models.Event) (float64, bool) {
			return e.ElevationM(), e.ElevationM() > 0
		},
	},
	{
		category: models.RecordHighestDifficulty,
		value: func(e models.Event) (float64, bool) {
			return float64(e.DifficultyLevel()), true
		},
	},
	{
		category: models.RecordMostCompletions,
		value: func(e models.Event) (float64, bool) {
			return float64(e.CompletionCount()), true
		},
	},
	{
		category:  models.RecordFastestPace,
		lowerWins: true,
		value: func(e models.Event) (float64, bool) {
			pace := CalcPace(e.Time, e.DistanceKm())
			if pace == nil {
				return 0, false
			}
			return *pace, true
		},
	},
}

// personalRecords returns one entry per category. Categories nobody qualifies
// for map to nil. On ties the earlier event keeps the record.
func personalRecords(completed []models.Event) map[models.RecordCategory]*models.Record {
	records := make(map[models.RecordCategory]*models.Record, len(recordRules))
	for _, rule := range recordRules {
		var best *models.Record
		for _, e := range completed {
			v, ok := rule.value(e)
			if !ok {
				continue
			}
			if best != nil {
				if rule.lowerWins && v >= best.Value {
					continue
				}
				if !rule.lowerWins && v <= best.Value {
					continue
				}
			}
			best = &models.Record{
				EventID:   e.ID,
				EventName: e.Name,
				Date:      e.Day(),
				Value:     v,
			}
		}
		records[rule.category] = best
	}
	return records
}

// prTimeline walks dated events chronologically and emits an entry each time
// distance, elevation or difficulty beats its running maximum.
func prTimeline(completed []models.Event) []models.TimelineEntry {
	timeline := make([]models.TimelineEntry, 0)

	var maxDistance, maxElevation, maxDifficulty float64
	for _, e := range datedEvents(completed) {
		track := func(category models.RecordCategory, value float64, running *float64) {
			if value <= *running {
				return
			}
			*running = value
			timeline = append(timeline, models.TimelineEntry{
				Category:  category,
				Value:     value,
				EventID:   e.ID,
				EventName: e.Name,
				Date:      e.Day(),
			})
		}
		track(models.RecordDistance, e.DistanceKm(), &maxDistance)
		track(models.RecordElevation, e.ElevationM(), &maxElevation)
		track(models.RecordDifficulty, float64(e.DifficultyLevel()), &maxDifficulty)
	}

	return timeline
}
