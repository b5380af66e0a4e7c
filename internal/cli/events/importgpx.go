package events

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/gpx"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/validation"
)

type EventImportGPXCmd struct {
	File       string `arg:"" type:"existingfile" help:"GPX file to import."`
	Name       string `help:"Event name. Defaults to the track name, then the file name."`
	Type       string `short:"t" help:"Event type (Mountain|Ultra|Urban). Defaults to the configured type."`
	Difficulty int    `short:"D" help:"Difficulty (1-5)." default:"3"`
	Date       string `help:"Event date (YYYY-MM-DD)."`
	Location   string `short:"l" help:"Where the event takes place."`
}

// Run creates a wishlist event from the route's distance and climbing.
func (c *EventImportGPXCmd) Run(ctx *cli.Context) error {
	track, err := gpx.ParseFile(c.File)
	if err != nil {
		return err
	}
	if len(track.TrackPoints) == 0 {
		return fmt.Errorf("%s contains no track points", c.File)
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = strings.TrimSpace(track.Name)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(c.File), filepath.Ext(c.File))
	}
	eventType := models.EventType(c.Type)
	if c.Type == "" {
		eventType = ctx.Config.EventType()
	}

	now := ctx.Clock().UTC()
	event := models.Event{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        eventType,
		Status:      models.EventStatusWishlist,
		Distance:    models.Float(math.Round(track.Distance*100) / 100),
		Elevation:   models.Float(math.Round(track.ElevationGain)),
		Difficulty:  c.Difficulty,
		Completions: 1,
		Date:        strings.TrimSpace(c.Date),
		Location:    c.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validation.ValidateEvent(event); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}
	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}
	logger.Info("Imported GPX route", "file", c.File, "points", len(track.TrackPoints), "id", event.ID)

	ctx.Printf("Imported %s: %s, %s of climbing (ID: %s)\n",
		event.Name, cli.FormatKm(event.Distance), cli.FormatMeters(event.Elevation), event.ID)
	return nil
}
