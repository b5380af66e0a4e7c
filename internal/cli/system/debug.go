package system

import (
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/export"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/storage"
)

type DebugCmd struct {
	Paths     *DebugPathsCmd     `cmd:"" help:"Show data, log and backend details."`
	DumpEvent *DebugDumpEventCmd `cmd:"" help:"Dump a stored event as JSON, including soft-deleted ones."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"data":    ctx.Store.GetConfigPath(),
		"backend": storage.Backend(ctx.Store),
		"log":     logger.LogPath(),
	}
	return export.Write(ctx.Out, export.FormatJSON, output)
}

type DebugDumpEventCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (cmd *DebugDumpEventCmd) Run(ctx *cli.Context) error {
	e, err := ctx.Store.GetEvent(cmd.ID)
	if err == nil {
		return export.Write(ctx.Out, export.FormatJSON, e)
	}

	deleted, derr := ctx.Store.GetDeletedEvents()
	if derr != nil {
		return derr
	}
	for _, d := range deleted {
		if d.ID == cmd.ID {
			return export.Write(ctx.Out, export.FormatJSON, d)
		}
	}
	return err
}
