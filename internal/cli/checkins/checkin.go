package checkins

import (
	"strings"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/utils"
	"github.com/julianstephens/enduro/internal/validation"
)

// weekKey folds a date onto its Monday; an empty date means this week.
func weekKey(ctx *cli.Context, date string) (string, error) {
	now, err := ctx.Now()
	if err != nil {
		return "", err
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return utils.CurrentWeekKey(now), nil
	}
	t, err := utils.ParseDateInLocation(date, now.Location())
	if err != nil {
		return "", err
	}
	week := utils.MondayOf(t).Format(constants.DateFormat)
	return week, validation.ValidateCheckin(week)
}

type CheckinAddCmd struct {
	Date string `arg:"" optional:"" help:"Any date in the week to check in (YYYY-MM-DD). Defaults to this week."`
}

func (c *CheckinAddCmd) Run(ctx *cli.Context) error {
	week, err := weekKey(ctx, c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Store.AddCheckin(week); err != nil {
		return err
	}
	logger.Info("Checked in", "week", week)

	ctx.Printf("%s Checked in for the week of %s\n", cli.SuccessStyle.Render("✓"), week)
	return nil
}

type CheckinRemoveCmd struct {
	Date string `arg:"" help:"Any date in the week to remove (YYYY-MM-DD)."`
}

func (c *CheckinRemoveCmd) Run(ctx *cli.Context) error {
	week, err := weekKey(ctx, c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteCheckin(week); err != nil {
		return err
	}
	logger.Info("Removed check-in", "week", week)

	ctx.Printf("Removed check-in for the week of %s\n", week)
	return nil
}

type CheckinListCmd struct {
	cli.OutputFlags
}

func (c *CheckinListCmd) Run(ctx *cli.Context) error {
	weeks, err := ctx.Store.GetCheckins()
	if err != nil {
		return err
	}
	if weeks == nil {
		weeks = []string{}
	}
	if ok, err := ctx.Emit(c.OutputFlags, weeks); ok {
		return err
	}

	if len(weeks) == 0 {
		ctx.Println("No check-ins yet. Record this week with 'enduro checkin add'.")
		return nil
	}
	for _, w := range weeks {
		ctx.Println(w)
	}
	return nil
}
