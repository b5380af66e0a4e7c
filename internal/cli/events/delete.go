package events

import (
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
)

type EventDeleteCmd struct {
	Event string `arg:"" help:"Event ID, ID prefix or name."`
}

func (c *EventDeleteCmd) Run(ctx *cli.Context) error {
	event, err := ctx.ResolveEvent(c.Event)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteEvent(event.ID); err != nil {
		return err
	}
	logger.Info("Deleted event", "id", event.ID)

	ctx.Printf("Deleted event: %s (restore with 'enduro event restore %s')\n", event.Name, event.ID)
	return nil
}

type EventRestoreCmd struct {
	ID      string `arg:"" help:"ID of the deleted event."`
	Replace bool   `help:"Move the current upcoming event back to the wishlist when restoring an upcoming event."`
}

func (c *EventRestoreCmd) Run(ctx *cli.Context) error {
	deleted, err := ctx.Store.GetDeletedEvents()
	if err != nil {
		return err
	}
	var target *models.Event
	for i := range deleted {
		if deleted[i].ID == c.ID {
			target = &deleted[i]
			break
		}
	}

	// Only one event may be upcoming; check before anything is written.
	var current *models.Event
	if target != nil && target.Status == models.EventStatusUpcoming {
		if current, err = currentUpcoming(ctx, target.ID, c.Replace); err != nil {
			return err
		}
	}

	if err := ctx.Store.RestoreEvent(c.ID); err != nil {
		return err
	}
	if current != nil {
		d, err := demote(ctx, *current, ctx.Clock().UTC())
		if err != nil {
			if derr := ctx.Store.DeleteEvent(c.ID); derr != nil {
				logger.Error("Failed to re-delete restored event", "id", c.ID, "error", derr)
			}
			return err
		}
		ctx.Printf("Moved %s back to the wishlist.\n", d.Name)
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}
	logger.Info("Restored event", "id", event.ID)

	ctx.Printf("Restored event: %s\n", event.Name)
	return nil
}
