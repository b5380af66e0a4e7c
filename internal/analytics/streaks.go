package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/utils"
)

const week = 7 * 24 * time.Hour

// ComputeStreaks counts consecutive weekly check-ins. Each check-in is folded
// onto the Monday of its week; unparseable entries are ignored. The current
// streak is zero unless the latest check-in belongs to now's week.
func ComputeStreaks(checkins []string, now time.Time) models.Streaks {
	loc := now.Location()
	tolerance := time.Duration(constants.StreakToleranceSeconds) * time.Second

	seen := make(map[string]bool, len(checkins))
	weeks := make([]time.Time, 0, len(checkins))
	for _, c := range checkins {
		d, err := utils.ParseDateInLocation(c, loc)
		if err != nil {
			continue
		}
		monday := utils.MondayOf(d)
		key := monday.Format(constants.DateFormat)
		if seen[key] {
			continue
		}
		seen[key] = true
		weeks = append(weeks, monday)
	}
	if len(weeks) == 0 {
		return models.Streaks{}
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Before(weeks[j])
	})

	consecutive := func(a, b time.Time) bool {
		diff := b.Sub(a) - week
		return diff >= -tolerance && diff <= tolerance
	}

	longest, run := 1, 1
	for i := 1; i < len(weeks); i++ {
		if consecutive(weeks[i-1], weeks[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// run now holds the streak ending at the latest check-in.
	current := 0
	last := weeks[len(weeks)-1]
	gap := utils.MondayOf(now).Sub(last)
	if gap >= -tolerance && gap < week-tolerance {
		current = run
	}

	return models.Streaks{Current: current, Longest: longest}
}
