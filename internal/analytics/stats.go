package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/utils"
)

// ComputeStats aggregates completed events into a fresh snapshot. Events in any
// other status are ignored. now decides which calendar year is "current".
func ComputeStats(events []models.Event, prefs models.Preferences, now time.Time) models.StatsSnapshot {
	completed := completedEvents(events)

	snapshot := models.StatsSnapshot{
		Records:  personalRecords(completed),
		Timeline: prTimeline(completed),
		ByType:   typeBreakdown(completed),
	}

	for _, e := range completed {
		n := e.CompletionCount()
		snapshot.TotalDistance += e.DistanceKm() * float64(n)
		snapshot.TotalElevation += e.ElevationM() * float64(n)
		snapshot.TotalEvents += n
	}

	snapshot.CurrentYear, snapshot.PreviousYear, snapshot.Years = yearStats(completed, now.Year())
	snapshot.YearOverYear = models.YearOverYear{
		DistancePct:  percentChange(snapshot.CurrentYear.Distance, snapshot.PreviousYear.Distance),
		ElevationPct: percentChange(snapshot.CurrentYear.Elevation, snapshot.PreviousYear.Elevation),
		EventsPct:    percentChange(float64(snapshot.CurrentYear.Events), float64(snapshot.PreviousYear.Events)),
	}
	snapshot.FunFacts = funFacts(snapshot, prefs)

	return snapshot
}

// completedEvents copies the completed events so later sorting never touches the caller's slice.
func completedEvents(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.IsCompleted() {
			out = append(out, e)
		}
	}
	return out
}

// datedEvents returns the events with a parseable date, stable-sorted ascending by date.
func datedEvents(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.HasDate() && utils.ValidateDateFormat(e.Day()) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day() < out[j].Day()
	})
	return out
}

func eventYear(e models.Event) (int, bool) {
	if !e.HasDate() {
		return 0, false
	}
	t, err := time.Parse(constants.DateFormat, e.Day())
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

func addToYear(ys *models.YearStats, e models.Event) {
	n := e.CompletionCount()
	ys.Distance += e.DistanceKm() * float64(n)
	ys.Elevation += e.ElevationM() * float64(n)
	ys.Events += n
}

// yearStats returns the current and previous year plus every dated year in ascending order.
// When nothing is dated in the current year, the whole completed set stands in for it.
func yearStats(completed []models.Event, currentYear int) (current, previous models.YearStats, years []models.YearStats) {
	byYear := make(map[int]*models.YearStats)
	for _, e := range completed {
		year, ok := eventYear(e)
		if !ok {
			continue
		}
		ys, exists := byYear[year]
		if !exists {
			ys = &models.YearStats{Year: year, HasYearDates: true}
			byYear[year] = ys
		}
		addToYear(ys, e)
	}

	if ys, ok := byYear[currentYear]; ok {
		current = *ys
	} else {
		current = models.YearStats{Year: currentYear, HasYearDates: false}
		for _, e := range completed {
			addToYear(&current, e)
		}
	}

	previous = models.YearStats{Year: currentYear - 1}
	if ys, ok := byYear[currentYear-1]; ok {
		previous = *ys
	}

	years = make([]models.YearStats, 0, len(byYear))
	for _, ys := range byYear {
		years = append(years, *ys)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})

	return current, previous, years
}

// percentChange is nil when there is no previous value to compare against.
func percentChange(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

func typeBreakdown(completed []models.Event) []models.TypeStats {
	out := make([]models.TypeStats, 0, len(models.EventTypes))
	for _, t := range models.EventTypes {
		ts := models.TypeStats{Type: t}
		for _, e := range completed {
			if e.Type != t {
				continue
			}
			n := e.CompletionCount()
			ts.Events += n
			ts.Distance += e.DistanceKm() * float64(n)
		}
		out = append(out, ts)
	}
	return out
}
