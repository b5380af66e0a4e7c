package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/validation"
)

type EventAddCmd struct {
	Name        string   `arg:"" optional:"" help:"Event name."`
	Type        string   `short:"t" help:"Event type (Mountain|Ultra|Urban). Defaults to the configured type."`
	Status      string   `short:"s" help:"Status (completed|upcoming|wishlist)." enum:"completed,upcoming,wishlist" default:"wishlist"`
	Distance    *float64 `short:"d" help:"Distance in km."`
	Elevation   *float64 `short:"e" help:"Elevation gain in m."`
	Difficulty  int      `short:"D" help:"Difficulty (1-5)." default:"3"`
	Time        string   `help:"Finish time (HH:MM:SS or HH:MM)."`
	Date        string   `help:"Event date (YYYY-MM-DD)."`
	Completions int      `short:"c" help:"Number of times completed." default:"1"`
	Location    string   `short:"l" help:"Where the event takes place."`
	Notes       string   `short:"n" help:"Free-form notes."`
	Replace     bool     `help:"When adding an upcoming event, move the current upcoming event back to the wishlist."`
	Interactive bool     `short:"i" help:"Fill in the event with an interactive form."`
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	if c.Type == "" {
		c.Type = string(ctx.Config.EventType())
	}
	if c.Interactive {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	now := ctx.Clock().UTC()
	event := models.Event{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(c.Name),
		Type:        models.EventType(c.Type),
		Status:      models.EventStatus(c.Status),
		Distance:    c.Distance,
		Elevation:   c.Elevation,
		Difficulty:  c.Difficulty,
		Time:        strings.TrimSpace(c.Time),
		Completions: c.Completions,
		Date:        strings.TrimSpace(c.Date),
		Location:    c.Location,
		Notes:       c.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Upcoming events get their plan through the same path as promote.
	upcoming := event.Status == models.EventStatusUpcoming
	if upcoming {
		event.Status = models.EventStatusWishlist
	}

	if err := validation.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	if upcoming {
		if _, err := currentUpcoming(ctx, event.ID, c.Replace); err != nil {
			return err
		}
	}
	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}
	logger.Info("Added event", "id", event.ID, "name", event.Name)

	if upcoming {
		promoted, demoted, err := Promote(ctx, event, c.Replace)
		if err != nil {
			return err
		}
		reportPromotion(ctx, promoted, demoted)
		return nil
	}

	ctx.Printf("Added event: %s (ID: %s)\n", event.Name, event.ID)
	return nil
}

func (c *EventAddCmd) runForm() error {
	distance := formatOptional(c.Distance)
	elevation := formatOptional(c.Elevation)
	difficulty := strconv.Itoa(c.Difficulty)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&c.Name).Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
			huh.NewSelect[string]().Title("Type").Options(typeOptions()...).Value(&c.Type),
			huh.NewSelect[string]().Title("Status").Options(
				huh.NewOption("Wishlist", string(models.EventStatusWishlist)),
				huh.NewOption("Upcoming", string(models.EventStatusUpcoming)),
				huh.NewOption("Completed", string(models.EventStatusCompleted)),
			).Value(&c.Status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Distance (km)").Value(&distance).Validate(validateOptionalFloat),
			huh.NewInput().Title("Elevation gain (m)").Value(&elevation).Validate(validateOptionalFloat),
			huh.NewSelect[string]().Title("Difficulty").Options(huh.NewOptions("1", "2", "3", "4", "5")...).Value(&difficulty),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&c.Date),
			huh.NewInput().Title("Finish time (HH:MM:SS)").Value(&c.Time),
		),
		huh.NewGroup(
			huh.NewInput().Title("Location").Value(&c.Location),
			huh.NewText().Title("Notes").Value(&c.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("form cancelled: %w", err)
	}

	var err error
	if c.Distance, err = parseOptionalFloat(distance); err != nil {
		return err
	}
	if c.Elevation, err = parseOptionalFloat(elevation); err != nil {
		return err
	}
	c.Difficulty, _ = strconv.Atoi(difficulty)
	return nil
}

func typeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.EventTypes))
	for _, t := range models.EventTypes {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}
	return opts
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}

func validateOptionalFloat(s string) error {
	v, err := parseOptionalFloat(s)
	if err != nil {
		return err
	}
	if v != nil && *v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
