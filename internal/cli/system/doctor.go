package system

import (
	"fmt"

	"github.com/julianstephens/enduro/internal/backup"
	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/storage"
	"github.com/julianstephens/enduro/internal/utils"
	"github.com/julianstephens/enduro/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsData checks are skipped when the data file can't be loaded.
	needsData bool
	// warnOnly failures don't fail the run.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Data file reachable", run: checkReachable},
	{name: "Schema version", needsData: true, run: checkSchemaVersion},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data validation", needsData: true, run: checkValidation},
	{name: "Clock/timezone", needsData: true, run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true

	for _, c := range checks {
		if c.needsData && !reachable {
			ctx.Printf("%s %s: SKIPPED (data file not reachable)\n", cli.MutedStyle.Render("⊘"), c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("%s %s: OK\n", cli.SuccessStyle.Render("✓"), c.name)
		case c.warnOnly:
			ctx.Printf("%s %s: WARNING\n", cli.WarningStyle.Render("⚠"), c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("%s %s: FAIL\n", cli.DangerStyle.Render("✗"), c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Data file reachable" {
				reachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load data file: %w", err)
	}
	if _, err := ctx.Store.GetPreferences(); err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON files are version-checked on load.
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'enduro migrate')", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'enduro backup create'")
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	state, err := ctx.State()
	if err != nil {
		return err
	}
	result := validation.New().ValidateState(state)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'enduro validate' for details", len(result.Conflicts))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	prefs, err := ctx.Store.GetPreferences()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(prefs.Timezone) {
		return fmt.Errorf("unknown timezone preference %q (fix with 'enduro prefs set --timezone')", prefs.Timezone)
	}

	now, err := ctx.Now()
	if err != nil {
		return err
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}
