package insights

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/models"
)

func snapshot(ctx *cli.Context) (models.StatsSnapshot, error) {
	state, err := ctx.State()
	if err != nil {
		return models.StatsSnapshot{}, err
	}
	now, err := ctx.Now()
	if err != nil {
		return models.StatsSnapshot{}, err
	}
	return analytics.ComputeStats(state.Events, state.Preferences, now), nil
}

var recordLabels = map[models.RecordCategory]string{
	models.RecordLongestDistance:   "Longest distance",
	models.RecordMostElevation:     "Most elevation",
	models.RecordHighestDifficulty: "Highest difficulty",
	models.RecordMostCompletions:   "Most completions",
	models.RecordFastestPace:       "Fastest pace",
}

func formatRecordValue(cat models.RecordCategory, v float64) string {
	switch cat {
	case models.RecordLongestDistance, models.RecordDistance:
		return fmt.Sprintf("%s km", humanize.CommafWithDigits(v, 1))
	case models.RecordMostElevation, models.RecordElevation:
		return fmt.Sprintf("%s m", humanize.Comma(int64(v)))
	case models.RecordFastestPace:
		return analytics.FormatPace(&v)
	case models.RecordMostCompletions:
		return fmt.Sprintf("%.0fx", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

type StatsShowCmd struct {
	cli.OutputFlags
}

func (c *StatsShowCmd) Run(ctx *cli.Context) error {
	s, err := snapshot(ctx)
	if err != nil {
		return err
	}
	if ok, err := ctx.Emit(c.OutputFlags, s); ok {
		return err
	}

	if s.TotalEvents == 0 {
		ctx.Println("No completed events yet. Log one with 'enduro event add --status completed'.")
		return nil
	}

	ctx.Println(cli.TitleStyle.Render("Totals"))
	ctx.Field("Events", s.TotalEvents)
	ctx.Field("Distance", fmt.Sprintf("%s km", humanize.CommafWithDigits(s.TotalDistance, 1)))
	ctx.Field("Elevation", fmt.Sprintf("%s m", humanize.Comma(int64(s.TotalElevation))))

	ctx.Println()
	ctx.Println(cli.TitleStyle.Render("Personal records"))
	for _, cat := range analytics.RecordCategories {
		r := s.Records[cat]
		if r == nil {
			ctx.Field(recordLabels[cat], cli.Placeholder)
			continue
		}
		ctx.Field(recordLabels[cat], fmt.Sprintf("%s  %s", formatRecordValue(cat, r.Value), cli.MutedStyle.Render(r.EventName)))
	}

	ctx.Println()
	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("%d vs %d", s.CurrentYear.Year, s.CurrentYear.Year-1)))
	if !s.CurrentYear.HasYearDates {
		ctx.Println(cli.MutedStyle.Render("  No dated events this year, showing all events."))
	}
	ctx.Field("Events", fmt.Sprintf("%d vs %d  %s", s.CurrentYear.Events, s.PreviousYear.Events, cli.FormatPct(s.YearOverYear.EventsPct)))
	ctx.Field("Distance", fmt.Sprintf("%.1f vs %.1f km  %s", s.CurrentYear.Distance, s.PreviousYear.Distance, cli.FormatPct(s.YearOverYear.DistancePct)))
	ctx.Field("Elevation", fmt.Sprintf("%.0f vs %.0f m  %s", s.CurrentYear.Elevation, s.PreviousYear.Elevation, cli.FormatPct(s.YearOverYear.ElevationPct)))

	ctx.Println()
	ctx.Println(cli.TitleStyle.Render("By type"))
	for _, ts := range s.ByType {
		ctx.Field(string(ts.Type), fmt.Sprintf("%d events, %.1f km", ts.Events, ts.Distance))
	}

	if len(s.FunFacts) > 0 {
		ctx.Println()
		ctx.Println(cli.TitleStyle.Render("Fun facts"))
		for _, f := range s.FunFacts {
			ctx.Printf("  • %s\n", f)
		}
	}
	return nil
}

type StatsTimelineCmd struct {
	cli.OutputFlags
}

func (c *StatsTimelineCmd) Run(ctx *cli.Context) error {
	s, err := snapshot(ctx)
	if err != nil {
		return err
	}
	if ok, err := ctx.Emit(c.OutputFlags, s.Timeline); ok {
		return err
	}

	if len(s.Timeline) == 0 {
		ctx.Println("No records yet. Completed events need a date to appear on the timeline.")
		return nil
	}
	for _, entry := range s.Timeline {
		ctx.Printf("%s  %-10s %-12s %s\n", entry.Date, entry.Category, formatRecordValue(entry.Category, entry.Value), entry.EventName)
	}
	return nil
}

type StatsYearsCmd struct {
	cli.OutputFlags
}

func (c *StatsYearsCmd) Run(ctx *cli.Context) error {
	s, err := snapshot(ctx)
	if err != nil {
		return err
	}
	if ok, err := ctx.Emit(c.OutputFlags, s.Years); ok {
		return err
	}

	if len(s.Years) == 0 {
		ctx.Println("No dated completed events yet.")
		return nil
	}
	for _, y := range s.Years {
		ctx.Printf("%d  %3d events  %8.1f km  %7.0f m\n", y.Year, y.Events, y.Distance, y.Elevation)
	}
	return nil
}
