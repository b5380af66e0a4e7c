package analytics

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
)

const (
	earthCircumferenceKm = 40075.0
	marathonKm           = 42.195
	everestM             = 8849.0
	// kcal per kg of body weight per km
	kcalPerKgKm = 1.0
)

// funFacts turns the snapshot totals into short sentences for the stats view.
func funFacts(s models.StatsSnapshot, prefs models.Preferences) []string {
	facts := make([]string, 0, 5)
	if s.TotalEvents == 0 {
		return facts
	}

	if s.TotalDistance > 0 {
		facts = append(facts, fmt.Sprintf("You've covered %s km, %.1f%% of the way around the Earth.",
			humanize.CommafWithDigits(s.TotalDistance, 1), s.TotalDistance/earthCircumferenceKm*100))

		if marathons := s.TotalDistance / marathonKm; marathons >= 1 {
			facts = append(facts, fmt.Sprintf("That's the same as %.1f marathons back to back.", marathons))
		}

		weight := constants.DefaultBodyWeightKg
		if prefs.BodyWeight != nil && *prefs.BodyWeight > 0 {
			weight = *prefs.BodyWeight
		}
		kcal := int64(math.Round(s.TotalDistance * weight * kcalPerKgKm))
		facts = append(facts, fmt.Sprintf("Roughly %s kcal burned along the way at %.0f kg.", humanize.Comma(kcal), weight))
	}

	if s.TotalElevation > 0 {
		facts = append(facts, fmt.Sprintf("You've climbed %s m, %.2fx the height of Everest.",
			humanize.Comma(int64(math.Round(s.TotalElevation))), s.TotalElevation/everestM))
	}

	if fav, ok := favouriteType(s.ByType); ok {
		facts = append(facts, fmt.Sprintf("Your favourite terrain is %s with %d %s.",
			fav.Type, fav.Events, plural(fav.Events, "event", "events")))
	}

	return facts
}

// favouriteType picks the type with the most completions; the first type wins ties.
func favouriteType(byType []models.TypeStats) (models.TypeStats, bool) {
	var best models.TypeStats
	found := false
	for _, ts := range byType {
		if ts.Events > best.Events {
			best = ts
			found = true
		}
	}
	return best, found
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
