package events

import (
	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
)

type EventShowCmd struct {
	cli.OutputFlags
	Event string `arg:"" help:"Event ID, ID prefix or name."`
}

func (c *EventShowCmd) Run(ctx *cli.Context) error {
	e, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}
	if ok, err := ctx.Emit(c.OutputFlags, e); ok {
		return err
	}

	ctx.Println(cli.TitleStyle.Render(e.Name))
	ctx.Field("ID", e.ID)
	ctx.Field("Type", e.Type)
	ctx.Field("Status", cli.StatusBadge(e.Status))
	ctx.Field("Date", cli.OrPlaceholder(e.Date))
	ctx.Field("Location", cli.OrPlaceholder(e.Location))
	ctx.Field("Distance", cli.FormatKm(e.Distance))
	ctx.Field("Elevation", cli.FormatMeters(e.Elevation))
	ctx.Field("Difficulty", e.DifficultyLevel())
	ctx.Field("Finish time", analytics.FormatDuration(e.Time))
	ctx.Field("Pace", cli.EventPace(e))
	ctx.Field("Completions", e.CompletionCount())
	if e.Notes != "" {
		ctx.Field("Notes", e.Notes)
	}

	if e.TrainingPlan != nil {
		ctx.Println()
		ctx.Printf("  %s week %d of %d, %s phase, %d%% complete\n",
			cli.LabelStyle.Render("Training:"), e.Week, e.TrainingPlan.TotalWeeks, cli.OrPlaceholder(e.Phase), e.Progress)
	}
	return nil
}
