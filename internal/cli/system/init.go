package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing data file before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if _, err := os.Stat(path); err == nil {
		if !c.Force {
			return fmt.Errorf("storage already initialized at %s (use --force to start over)", path)
		}
		// Close first so SQLite releases the file.
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing data file: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing data file: %w", err)
		}
		logger.Warn("Deleted existing data file", "path", path)
		ctx.Printf("Deleted existing data file at: %s\n", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing data file: %w", err)
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// The configured timezone becomes the starting preference.
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	prefs.Timezone = ctx.Config.Timezone
	if err := ctx.Store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	logger.Info("Initialized storage", "path", path, "backend", storage.Backend(ctx.Store))
	ctx.Printf("Initialized enduro %s storage at: %s\n", storage.Backend(ctx.Store), path)
	return nil
}
