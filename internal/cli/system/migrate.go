package system

import (
	"fmt"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		ctx.Printf("Nothing to migrate: %s storage has no schema.\n", storage.Backend(ctx.Store))
		return nil
	}

	count, err := sqliteStore.Migrate()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
		return nil
	}
	logger.Info("Applied migrations", "count", count)
	ctx.Printf("Successfully applied %d migration(s).\n", count)
	return nil
}
