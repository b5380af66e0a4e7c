package insights

import (
	"fmt"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/models"
)

type StreakCmd struct {
	cli.OutputFlags
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	checkins, err := ctx.Store.GetCheckins()
	if err != nil {
		return err
	}
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	streaks := analytics.ComputeStreaks(checkins, now)
	if ok, err := ctx.Emit(c.OutputFlags, streaks); ok {
		return err
	}

	ctx.Field("Current streak", weeks(streaks.Current))
	ctx.Field("Longest streak", weeks(streaks.Longest))
	return nil
}

func weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

type RecoveryCmd struct {
	cli.OutputFlags
}

func (c *RecoveryCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return err
	}
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	r := analytics.ComputeRecovery(events, now)
	if ok, err := ctx.Emit(c.OutputFlags, r); ok {
		return err
	}

	ctx.Printf("%s %s\n", scoreBadge(r.Score), r.Message)
	if r.DaysSinceLast != nil {
		ctx.Field("Days since", *r.DaysSinceLast)
	}
	if r.AvgGap != nil {
		ctx.Field("Average gap", fmt.Sprintf("%.1f days", *r.AvgGap))
	}
	ctx.Field("30-day load", fmt.Sprintf("%.1f", r.RecentLoad))
	return nil
}

func scoreBadge(s models.RecoveryScore) string {
	switch s {
	case models.RecoveryFatigued:
		return cli.DangerStyle.Render("FATIGUED")
	case models.RecoveryModerate:
		return cli.WarningStyle.Render("MODERATE")
	default:
		return cli.SuccessStyle.Render("FRESH")
	}
}
