package analytics

import (
	"fmt"
	"time"

	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/utils"
)

// ComputeRecovery scores readiness from the spacing and load of completed,
// dated events relative to now.
func ComputeRecovery(events []models.Event, now time.Time) models.RecoveryResult {
	loc := now.Location()
	today := utils.StartOfDay(now)

	type datedEvent struct {
		event models.Event
		day   time.Time
	}
	var dated []datedEvent
	for _, e := range datedEvents(completedEvents(events)) {
		d, err := utils.ParseDateInLocation(e.Date, loc)
		if err != nil {
			continue
		}
		dated = append(dated, datedEvent{event: e, day: d})
	}

	if len(dated) == 0 {
		return models.RecoveryResult{
			Score:   models.RecoveryFresh,
			Message: "No events logged yet",
		}
	}

	daysSince := utils.DaysBetween(dated[len(dated)-1].day, today)
	if daysSince < 0 {
		daysSince = 0
	}

	var gapSum, gapCount int
	for i := 1; i < len(dated); i++ {
		if g := utils.DaysBetween(dated[i-1].day, dated[i].day); g > 0 {
			gapSum += g
			gapCount++
		}
	}
	// A single gap is not an average.
	var avgGap *float64
	if gapCount >= 2 {
		v := float64(gapSum) / float64(gapCount)
		avgGap = &v
	}

	var load float64
	for _, d := range dated {
		ago := utils.DaysBetween(d.day, today)
		if ago < 0 || ago > constants.RecoveryWindowDays {
			continue
		}
		load += (d.event.DistanceKm() / constants.StandardEventDistanceKm) *
			(float64(d.event.DifficultyLevel()) / constants.StandardEventDifficulty)
	}

	score := scoreRecovery(daysSince, load)
	return models.RecoveryResult{
		Score:         score,
		Message:       recoveryMessage(score, daysSince, load),
		DaysSinceLast: &daysSince,
		AvgGap:        avgGap,
		RecentLoad:    load,
	}
}

func scoreRecovery(daysSince int, load float64) models.RecoveryScore {
	switch {
	case daysSince <= constants.FatiguedDays:
		return models.RecoveryFatigued
	case daysSince <= constants.FatiguedLoadDays && load > constants.FatiguedLoadThreshold:
		return models.RecoveryFatigued
	case daysSince <= constants.ModerateDays || load > constants.ModerateLoadThreshold:
		return models.RecoveryModerate
	default:
		return models.RecoveryFresh
	}
}

func recoveryMessage(score models.RecoveryScore, daysSince int, load float64) string {
	since := fmt.Sprintf("Last event %d %s ago, 30-day load %.1f.", daysSince, plural(daysSince, "day", "days"), load)
	switch score {
	case models.RecoveryFatigued:
		return since + " Prioritise rest and easy movement."
	case models.RecoveryModerate:
		return since + " Easy to moderate training is fine."
	default:
		return since + " You're fresh and ready for a hard block."
	}
}
