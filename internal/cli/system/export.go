package system

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/enduro/internal/analytics"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/export"
	"github.com/julianstephens/enduro/internal/logger"
)

type ExportCmd struct {
	What   string `arg:"" enum:"state,stats,plan" default:"state" help:"What to export (state|stats|plan)."`
	Format string `short:"f" enum:"json,yaml" default:"json" help:"Output format (json|yaml)."`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	v, err := c.payload(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = ctx.Out
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, v); err != nil {
		return err
	}
	if c.Output != "" {
		logger.Info("Exported data", "what", c.What, "format", format, "path", c.Output)
		ctx.Printf("Exported %s to %s\n", c.What, c.Output)
	}
	return nil
}

func (c *ExportCmd) payload(ctx *cli.Context) (any, error) {
	state, err := ctx.State()
	if err != nil {
		return nil, err
	}

	switch c.What {
	case "stats":
		now, err := ctx.Now()
		if err != nil {
			return nil, err
		}
		return analytics.ComputeStats(state.Events, state.Preferences, now), nil
	case "plan":
		e, ok := state.Upcoming()
		if !ok || e.TrainingPlan == nil {
			return nil, fmt.Errorf("no upcoming event with a training plan, promote one with 'enduro event promote'")
		}
		return e.TrainingPlan, nil
	default:
		return state, nil
	}
}
