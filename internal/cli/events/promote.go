package events

import (
	"fmt"
	"time"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/planner"
	"github.com/julianstephens/enduro/internal/validation"
)

type EventPromoteCmd struct {
	Event   string `arg:"" help:"Event ID, ID prefix or name."`
	Replace bool   `help:"Move the current upcoming event back to the wishlist."`
}

func (c *EventPromoteCmd) Run(ctx *cli.Context) error {
	event, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}

	promoted, demoted, err := Promote(ctx, event, c.Replace)
	if err != nil {
		return err
	}
	reportPromotion(ctx, promoted, demoted)
	return nil
}

// currentUpcoming returns the upcoming event other than id. It is an error
// for one to exist unless replace is set.
func currentUpcoming(ctx *cli.Context, id string, replace bool) (*models.Event, error) {
	all, err := ctx.Store.GetAllEvents()
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.ID == id || e.Status != models.EventStatusUpcoming {
			continue
		}
		if !replace {
			return nil, fmt.Errorf("%q is already the upcoming event, use --replace to move it back to the wishlist", e.Name)
		}
		return &e, nil
	}
	return nil, nil
}

// Promote generates a plan for e, attaches it and stores e as the upcoming
// event. With replace, the event it displaces loses its plan and returns to
// the wishlist; that event is returned as well.
func Promote(ctx *cli.Context, e models.Event, replace bool) (models.Event, *models.Event, error) {
	switch e.Status {
	case models.EventStatusCompleted:
		return e, nil, fmt.Errorf("%q is already completed", e.Name)
	case models.EventStatusUpcoming:
		return e, nil, fmt.Errorf("%q is already upcoming", e.Name)
	}

	current, err := currentUpcoming(ctx, e.ID, replace)
	if err != nil {
		return e, nil, err
	}

	now := ctx.Clock().UTC()
	plan := ctx.Generator.GeneratePlanForEvent(e)
	promoted := planner.AttachPlan(e, plan)
	promoted.UpdatedAt = now
	if err := validation.ValidateEvent(promoted); err != nil {
		return e, nil, fmt.Errorf("invalid event: %w", err)
	}

	var demoted *models.Event
	if current != nil {
		d, err := demote(ctx, *current, now)
		if err != nil {
			return e, nil, err
		}
		demoted = &d
	}

	if err := ctx.Store.UpdateEvent(promoted); err != nil {
		if demoted != nil {
			if rerr := ctx.Store.UpdateEvent(*current); rerr != nil {
				logger.Error("Failed to restore demoted event", "id", current.ID, "error", rerr)
			}
		}
		return e, nil, err
	}
	logger.Info("Promoted event", "id", promoted.ID, "weeks", plan.TotalWeeks)
	return promoted, demoted, nil
}

// demote moves the upcoming event back to the wishlist without its plan.
func demote(ctx *cli.Context, current models.Event, now time.Time) (models.Event, error) {
	d := planner.DetachPlan(current)
	d.Status = models.EventStatusWishlist
	d.UpdatedAt = now
	if err := ctx.Store.UpdateEvent(d); err != nil {
		return current, fmt.Errorf("failed to move %q back to the wishlist: %w", d.Name, err)
	}
	logger.Info("Demoted upcoming event", "id", d.ID)
	return d, nil
}

func reportPromotion(ctx *cli.Context, promoted models.Event, demoted *models.Event) {
	if demoted != nil {
		ctx.Printf("Moved %s back to the wishlist.\n", demoted.Name)
	}
	plan := promoted.TrainingPlan
	ctx.Printf("%s is now upcoming with a %d-week plan (ID: %s)\n", promoted.Name, plan.TotalWeeks, promoted.ID)
	for _, ph := range plan.Phases {
		ctx.Printf("  %-6s %2d weeks  %s\n", ph.Name, ph.Weeks, cli.MutedStyle.Render(ph.Description))
	}
}
