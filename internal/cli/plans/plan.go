package plans

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/planner"
)

// targetEvent resolves ref, or the upcoming event when ref is empty.
func targetEvent(ctx *cli.Context, ref string) (models.Event, error) {
	if strings.TrimSpace(ref) != "" {
		return ctx.ResolveEvent(ref)
	}
	state, err := ctx.State()
	if err != nil {
		return models.Event{}, err
	}
	e, ok := state.Upcoming()
	if !ok {
		return models.Event{}, fmt.Errorf("no upcoming event, promote one with 'enduro event promote'")
	}
	return e, nil
}

type PlanShowCmd struct {
	cli.OutputFlags
	Event string `arg:"" optional:"" help:"Event ID, ID prefix or name. Defaults to the upcoming event."`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	e, err := targetEvent(ctx, c.Event)
	if err != nil {
		return err
	}
	if e.TrainingPlan == nil {
		return fmt.Errorf("%q has no training plan", e.Name)
	}
	if ok, err := ctx.Emit(c.OutputFlags, e.TrainingPlan); ok {
		return err
	}

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("%s: %d-week plan", e.Name, e.TrainingPlan.TotalWeeks)))
	ctx.Printf("Week %d, %s phase, %d%% complete\n\n", e.Week, cli.OrPlaceholder(e.Phase), e.Progress)
	renderWeeks(ctx, *e.TrainingPlan, planner.NormalizeWeeks(e.TrainingWeeks, e.TrainingPlan.TotalWeeks), e.Week)
	return nil
}

func renderWeeks(ctx *cli.Context, plan models.Plan, statuses []models.WeekStatus, current int) {
	for _, w := range plan.WeeklyPlan {
		marker := "  "
		if w.Week == current {
			marker = cli.WarningStyle.Render("▶ ")
		}
		status := ""
		if statuses != nil {
			status = " " + cli.WeekBadge(statuses[w.Week-1])
		}
		ctx.Printf("%sW%-2d %-5s %3d km  %s%s\n", marker, w.Week, w.Phase, w.TargetKm, w.Focus, status)
		if w.Notes != "" {
			ctx.Printf("       %s\n", cli.MutedStyle.Render(w.Notes))
		}
	}
}

type PlanMarkCmd struct {
	Week   int    `arg:"" help:"Plan week (1-based)."`
	Status string `arg:"" help:"Week outcome (done|skipped|pending)." enum:"done,skipped,pending"`
	Event  string `short:"e" help:"Event ID, ID prefix or name. Defaults to the upcoming event."`
}

func (c *PlanMarkCmd) Run(ctx *cli.Context) error {
	e, err := targetEvent(ctx, c.Event)
	if err != nil {
		return err
	}
	status, err := models.ParseWeekStatus(c.Status)
	if err != nil {
		return err
	}

	updated, err := planner.SetWeekStatus(e, c.Week, status)
	if err != nil {
		return err
	}
	updated.UpdatedAt = ctx.Clock().UTC()
	if err := ctx.Store.UpdateEvent(updated); err != nil {
		return err
	}
	logger.Info("Marked plan week", "event", updated.ID, "week", c.Week, "status", c.Status)

	ctx.Printf("Week %d marked %s. %s is now at week %d (%s), %d%% complete.\n",
		c.Week, c.Status, updated.Name, updated.Week, updated.Phase, updated.Progress)
	return nil
}

type PlanPreviewCmd struct {
	cli.OutputFlags
	Distance   *float64 `short:"d" help:"Distance in km."`
	Elevation  *float64 `short:"e" help:"Elevation gain in m."`
	Difficulty int      `short:"D" help:"Difficulty (1-5)." default:"3"`
	Type       string   `short:"t" help:"Event type (Mountain|Ultra|Urban). Defaults to the configured type."`
}

// Run prints the plan an event with these characteristics would get,
// without storing anything.
func (c *PlanPreviewCmd) Run(ctx *cli.Context) error {
	eventType := models.EventType(c.Type)
	if c.Type == "" {
		eventType = ctx.Config.EventType()
	}

	plan := ctx.Generator.GeneratePlan(planner.Input{
		Distance:   c.Distance,
		Difficulty: c.Difficulty,
		Type:       eventType,
		Elevation:  c.Elevation,
	})
	if ok, err := ctx.Emit(c.OutputFlags, plan); ok {
		return err
	}

	ctx.Println(cli.TitleStyle.Render(fmt.Sprintf("%d-week %s plan", plan.TotalWeeks, eventType)))
	for _, ph := range plan.Phases {
		ctx.Printf("  %-6s %2d weeks  %s\n", ph.Name, ph.Weeks, cli.MutedStyle.Render(ph.Description))
	}
	ctx.Println()
	renderWeeks(ctx, plan, nil, 0)
	return nil
}
