package prefs

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/utils"
)

type PrefsShowCmd struct {
	cli.OutputFlags
}

func (c *PrefsShowCmd) Run(ctx *cli.Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	if ok, err := ctx.Emit(c.OutputFlags, prefs); ok {
		return err
	}

	ctx.Println("Current Preferences:")
	if prefs.BodyWeight != nil {
		ctx.Field("Body weight", fmt.Sprintf("%.1f kg", *prefs.BodyWeight))
	} else {
		ctx.Field("Body weight", fmt.Sprintf("%s (fun facts assume %.0f kg)", cli.Placeholder, constants.DefaultBodyWeightKg))
	}
	ctx.Field("Timezone", cli.OrPlaceholder(prefs.Timezone))
	return nil
}

type PrefsSetCmd struct {
	BodyWeight      *float64 `help:"Body weight in kg, used for calorie estimates."`
	ClearBodyWeight bool     `help:"Forget the body weight."`
	Timezone        *string  `help:"IANA timezone name, or Local."`
}

func (c *PrefsSetCmd) Validate() error {
	if c.BodyWeight != nil && c.ClearBodyWeight {
		return fmt.Errorf("--body-weight and --clear-body-weight are mutually exclusive")
	}
	if c.BodyWeight != nil && *c.BodyWeight <= 0 {
		return fmt.Errorf("body weight must be positive")
	}
	if c.Timezone != nil && !utils.ValidateTimezone(strings.TrimSpace(*c.Timezone)) {
		return fmt.Errorf("unknown timezone %q", *c.Timezone)
	}
	return nil
}

func (c *PrefsSetCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	updated := false
	if c.BodyWeight != nil {
		w := *c.BodyWeight
		prefs.BodyWeight = &w
		updated = true
	}
	if c.ClearBodyWeight {
		prefs.BodyWeight = nil
		updated = true
	}
	if c.Timezone != nil {
		prefs.Timezone = strings.TrimSpace(*c.Timezone)
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use 'enduro prefs show' to view preferences or flags to update them.")
		return nil
	}
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	logger.Info("Preferences updated")
	ctx.Println("Preferences updated successfully.")
	return nil
}
