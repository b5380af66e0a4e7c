package events

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/models"
)

type EventListCmd struct {
	cli.OutputFlags
	Status  string `short:"s" help:"Only show events with this status (completed|upcoming|wishlist)."`
	Type    string `short:"t" help:"Only show events of this type (Mountain|Ultra|Urban)."`
	Deleted bool   `help:"Show deleted events instead."`
}

func (c *EventListCmd) Validate() error {
	if c.Status != "" && !models.EventStatus(c.Status).Valid() {
		return fmt.Errorf("unknown status %q", c.Status)
	}
	if c.Type != "" && !models.EventType(c.Type).Valid() {
		return fmt.Errorf("unknown event type %q", c.Type)
	}
	return nil
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	var all []models.Event
	var err error
	if c.Deleted {
		all, err = ctx.Store.GetDeletedEvents()
	} else {
		all, err = ctx.Store.GetAllEvents()
	}
	if err != nil {
		return err
	}

	events := []models.Event{}
	for _, e := range all {
		if c.Status != "" && string(e.Status) != c.Status {
			continue
		}
		if c.Type != "" && string(e.Type) != c.Type {
			continue
		}
		events = append(events, e)
	}

	if ok, err := ctx.Emit(c.OutputFlags, events); ok {
		return err
	}

	if len(events) == 0 {
		if c.Deleted {
			ctx.Println("No deleted events.")
		} else {
			ctx.Println("No events found. Add one with 'enduro event add'.")
		}
		return nil
	}

	ctx.Println(renderTable(events))
	return nil
}

func renderTable(events []models.Event) string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Name,
			string(e.Type),
			string(e.Status),
			cli.OrPlaceholder(e.Date),
			cli.FormatKm(e.Distance),
			cli.FormatMeters(e.Elevation),
			fmt.Sprintf("%d", e.DifficultyLevel()),
			analytics.FormatDuration(e.Time),
			fmt.Sprintf("%d", e.CompletionCount()),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(cli.LabelStyle).
		Headers("ID", "NAME", "TYPE", "STATUS", "DATE", "DISTANCE", "ELEVATION", "DIFF", "TIME", "DONE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cli.TitleStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

// shortID is enough of an ID to resolve it by prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
