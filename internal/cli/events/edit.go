package events

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/planner"
)

type EventEditCmd struct {
	Event       string   `arg:"" help:"Event ID, ID prefix or name."`
	Name        *string  `help:"New name."`
	Type        *string  `short:"t" help:"Event type (Mountain|Ultra|Urban)."`
	Distance    *float64 `short:"d" help:"Distance in km."`
	Elevation   *float64 `short:"e" help:"Elevation gain in m."`
	Difficulty  *int     `short:"D" help:"Difficulty (1-5)."`
	Time        *string  `help:"Finish time (HH:MM:SS or HH:MM); empty clears it."`
	Date        *string  `help:"Event date (YYYY-MM-DD); empty clears it."`
	Completions *int     `short:"c" help:"Number of times completed."`
	Location    *string  `short:"l" help:"Location."`
	Notes       *string  `short:"n" help:"Notes."`

	ClearDistance  bool `help:"Remove the recorded distance."`
	ClearElevation bool `help:"Remove the recorded elevation."`
}

func (c *EventEditCmd) Validate() error {
	if c.ClearDistance && c.Distance != nil {
		return fmt.Errorf("--distance and --clear-distance are mutually exclusive")
	}
	if c.ClearElevation && c.Elevation != nil {
		return fmt.Errorf("--elevation and --clear-elevation are mutually exclusive")
	}
	return nil
}

func (c *EventEditCmd) Run(ctx *cli.Context) error {
	event, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}

	updated, changed := c.apply(event)
	if !changed {
		ctx.Println("No changes specified.")
		return nil
	}

	// A plan follows the event it was generated for.
	if updated.TrainingPlan != nil && planInputsChanged(event, updated) {
		updated = planner.ReplacePlan(updated, ctx.Generator.GeneratePlanForEvent(updated))
		ctx.Printf("Regenerated training plan: %d weeks.\n", updated.TrainingPlan.TotalWeeks)
	}

	if err := save(ctx, updated); err != nil {
		return err
	}
	ctx.Printf("Updated event: %s\n", updated.Name)
	return nil
}

func (c *EventEditCmd) apply(e models.Event) (models.Event, bool) {
	changed := false
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
			changed = true
		}
	}

	setString(&e.Name, c.Name)
	setString(&e.Time, c.Time)
	setString(&e.Date, c.Date)
	setString(&e.Location, c.Location)
	if c.Notes != nil {
		e.Notes = *c.Notes
		changed = true
	}
	if c.Type != nil {
		e.Type = models.EventType(*c.Type)
		changed = true
	}
	if c.Distance != nil {
		e.Distance = models.Float(*c.Distance)
		changed = true
	}
	if c.ClearDistance {
		e.Distance = nil
		changed = true
	}
	if c.Elevation != nil {
		e.Elevation = models.Float(*c.Elevation)
		changed = true
	}
	if c.ClearElevation {
		e.Elevation = nil
		changed = true
	}
	if c.Difficulty != nil {
		e.Difficulty = *c.Difficulty
		changed = true
	}
	if c.Completions != nil {
		e.Completions = *c.Completions
		changed = true
	}
	return e, changed
}

func planInputsChanged(before, after models.Event) bool {
	return before.Type != after.Type ||
		before.Difficulty != after.Difficulty ||
		!sameFloat(before.Distance, after.Distance) ||
		!sameFloat(before.Elevation, after.Elevation)
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
