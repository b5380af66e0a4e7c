package events

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/validation"
)

type EventCompleteCmd struct {
	Event string `arg:"" help:"Event ID, ID prefix or name."`
	Time  string `help:"Finish time (HH:MM:SS or HH:MM)."`
	Date  string `help:"Date the event was finished (YYYY-MM-DD). Defaults to the event date, then today."`
}

// Run marks a wishlist or upcoming event as finished. An attached plan is
// kept as a record of the build-up.
func (c *EventCompleteCmd) Run(ctx *cli.Context) error {
	event, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}
	if event.IsCompleted() {
		return fmt.Errorf("%q is already completed, use 'enduro event repeat' to log another finish", event.Name)
	}

	event.Status = models.EventStatusCompleted
	event.Completions = event.CompletionCount()
	if t := strings.TrimSpace(c.Time); t != "" {
		event.Time = t
	}
	switch {
	case strings.TrimSpace(c.Date) != "":
		event.Date = strings.TrimSpace(c.Date)
	case event.Date == "":
		if event.Date, err = ctx.Today(); err != nil {
			return err
		}
	}

	if err := save(ctx, event); err != nil {
		return err
	}
	ctx.Printf("%s %s completed", cli.SuccessStyle.Render("✓"), event.Name)
	if event.Time != "" {
		ctx.Printf(" in %s (%s)", analytics.FormatDuration(event.Time), cli.EventPace(event))
	}
	ctx.Println()
	return nil
}

type EventRepeatCmd struct {
	Event string `arg:"" help:"Event ID, ID prefix or name."`
	Time  string `help:"Finish time of this repeat; kept when it beats the recorded time."`
	Date  string `help:"Date of this repeat (YYYY-MM-DD); becomes the event date."`
}

// Run logs one more finish of a completed event.
func (c *EventRepeatCmd) Run(ctx *cli.Context) error {
	event, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}
	if !event.IsCompleted() {
		return fmt.Errorf("%q has not been completed yet, use 'enduro event complete' first", event.Name)
	}

	event.Completions = event.CompletionCount() + 1
	if date := strings.TrimSpace(c.Date); date != "" {
		event.Date = date
	}

	improved := false
	if t := strings.TrimSpace(c.Time); t != "" {
		secs, ok := analytics.ParseTime(t)
		if !ok {
			return fmt.Errorf("invalid time %q (expected HH:MM:SS or HH:MM)", t)
		}
		best, hasBest := analytics.ParseTime(event.Time)
		if !hasBest || secs < best {
			event.Time = t
			improved = true
		}
	}

	if err := save(ctx, event); err != nil {
		return err
	}
	ctx.Printf("%s %s completed %d times\n", cli.SuccessStyle.Render("✓"), event.Name, event.Completions)
	if improved {
		ctx.Printf("New best time: %s\n", analytics.FormatDuration(event.Time))
	}
	return nil
}

func save(ctx *cli.Context, e models.Event) error {
	if err := validation.ValidateEvent(e); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	e.UpdatedAt = ctx.Clock().UTC()
	if err := ctx.Store.UpdateEvent(e); err != nil {
		return err
	}
	logger.Info("Updated event", "id", e.ID, "status", e.Status, "completions", e.Completions)
	return nil
}
