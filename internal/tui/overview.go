package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/models"
)

var recordLabels = map[models.RecordCategory]string{
	models.RecordLongestDistance:   "Longest distance",
	models.RecordMostElevation:     "Most elevation",
	models.RecordHighestDifficulty: "Highest difficulty",
	models.RecordMostCompletions:   "Most completions",
	models.RecordFastestPace:       "Fastest pace",
}

const placeholder = "—"

func recordValue(cat models.RecordCategory, v float64) string {
	switch cat {
	case models.RecordLongestDistance:
		return humanize.CommafWithDigits(v, 1) + " km"
	case models.RecordMostElevation:
		return humanize.Comma(int64(v)) + " m"
	case models.RecordFastestPace:
		return analytics.FormatPace(&v)
	case models.RecordMostCompletions:
		return fmt.Sprintf("%.0fx", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func pct(p *float64) string {
	if p == nil {
		return placeholder
	}
	return fmt.Sprintf("%+.1f%%", *p)
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label), value)
}

func (m Model) renderOverview() string {
	s := m.stats
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Totals"))
	b.WriteString("\n")
	line(&b, "Events", humanize.Comma(int64(s.TotalEvents)))
	line(&b, "Distance", humanize.CommafWithDigits(s.TotalDistance, 1)+" km")
	line(&b, "Elevation", humanize.Comma(int64(s.TotalElevation))+" m")

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Personal records"))
	b.WriteString("\n")
	for _, cat := range analytics.RecordCategories {
		r := s.Records[cat]
		if r == nil {
			line(&b, recordLabels[cat], placeholder)
			continue
		}
		line(&b, recordLabels[cat], fmt.Sprintf("%s  %s", recordValue(cat, r.Value), mutedStyle.Render(r.EventName)))
	}

	b.WriteString("\n")
	yearTitle := fmt.Sprintf("This year (%d)", m.now.Year())
	if !s.CurrentYear.HasYearDates {
		yearTitle = "All time (no dated events this year)"
	}
	b.WriteString(sectionStyle.Render(yearTitle))
	b.WriteString("\n")
	line(&b, "Events", fmt.Sprintf("%d  %s", s.CurrentYear.Events, mutedStyle.Render(pct(s.YearOverYear.EventsPct))))
	line(&b, "Distance", fmt.Sprintf("%s km  %s", humanize.CommafWithDigits(s.CurrentYear.Distance, 1), mutedStyle.Render(pct(s.YearOverYear.DistancePct))))
	line(&b, "Elevation", fmt.Sprintf("%s m  %s", humanize.Comma(int64(s.CurrentYear.Elevation)), mutedStyle.Render(pct(s.YearOverYear.ElevationPct))))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Consistency"))
	b.WriteString("\n")
	line(&b, "Current streak", weeks(m.streaks.Current))
	line(&b, "Longest streak", weeks(m.streaks.Longest))

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Recovery"))
	b.WriteString("\n")
	score := string(m.recovery.Score)
	line(&b, "Status", recoveryStyles[score].Render(score))
	line(&b, "", m.recovery.Message)
	if m.recovery.DaysSinceLast != nil {
		line(&b, "Days since last", fmt.Sprintf("%d", *m.recovery.DaysSinceLast))
	}
	line(&b, "30-day load", fmt.Sprintf("%.1f", m.recovery.RecentLoad))

	if m.upcoming != nil {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Next up"))
		b.WriteString("\n")
		e := m.upcoming
		line(&b, e.Name, fmt.Sprintf("week %d, %s phase, %d%% done", e.Week, e.Phase, e.Progress))
	}

	if len(s.FunFacts) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Fun facts"))
		b.WriteString("\n")
		for _, f := range s.FunFacts {
			fmt.Fprintf(&b, "  • %s\n", f)
		}
	}

	return b.String()
}

func weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}
