package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/enduro/internal/cli"
	"github.com/julianstephens/enduro/internal/cli/backups"
	"github.com/julianstephens/enduro/internal/cli/checkins"
	"github.com/julianstephens/enduro/internal/cli/events"
	"github.com/julianstephens/enduro/internal/cli/insights"
	"github.com/julianstephens/enduro/internal/cli/plans"
	"github.com/julianstephens/enduro/internal/cli/prefs"
	"github.com/julianstephens/enduro/internal/cli/system"
	"github.com/julianstephens/enduro/internal/config"
	"github.com/julianstephens/enduro/internal/constants"
	apperrors "github.com/julianstephens/enduro/internal/errors"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/storage"
)

var CLI struct {
	Version    kong.VersionFlag
	ConfigFile string `help:"Config file path (defaults to $ENDURO_CONFIG or ~/.config/enduro/config.toml)." type:"path"`
	Data       string `help:"Override the data file from the config (.json for JSON storage, anything else for SQLite)." type:"path"`
	Verbose    bool   `short:"v" help:"Log debug output to stderr as well as the log file."`

	Init     system.InitCmd     `cmd:"" help:"Initialize enduro storage."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check stored events and check-ins for conflicts."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the dashboard." default:"1"`
	Export   system.ExportCmd   `cmd:"" help:"Export data as JSON or YAML."`
	DebugCmd system.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`

	Event struct {
		Add       events.EventAddCmd       `cmd:"" help:"Add an event."`
		List      events.EventListCmd      `cmd:"" help:"List events." default:"1"`
		Show      events.EventShowCmd      `cmd:"" help:"Show an event."`
		Edit      events.EventEditCmd      `cmd:"" help:"Edit an event."`
		Delete    events.EventDeleteCmd    `cmd:"" help:"Delete an event."`
		Restore   events.EventRestoreCmd   `cmd:"" help:"Restore a deleted event."`
		Complete  events.EventCompleteCmd  `cmd:"" help:"Mark an event as completed."`
		Repeat    events.EventRepeatCmd    `cmd:"" help:"Log another finish of a completed event."`
		Promote   events.EventPromoteCmd   `cmd:"" help:"Make an event the upcoming goal and generate its training plan."`
		ImportGPX events.EventImportGPXCmd `cmd:"" name:"import-gpx" help:"Create a wishlist event from a GPX track."`
	} `cmd:"" help:"Manage events."`

	Plan struct {
		Show    plans.PlanShowCmd    `cmd:"" help:"Show the training plan." default:"1"`
		Mark    plans.PlanMarkCmd    `cmd:"" help:"Mark a plan week done, skipped or pending."`
		Preview plans.PlanPreviewCmd `cmd:"" help:"Preview a plan without saving anything."`
	} `cmd:"" help:"Training plans."`

	Stats struct {
		Show     insights.StatsShowCmd     `cmd:"" help:"Totals, records and year over year." default:"1"`
		Timeline insights.StatsTimelineCmd `cmd:"" help:"Personal record timeline."`
		Years    insights.StatsYearsCmd    `cmd:"" help:"Per-year breakdown."`
	} `cmd:"" help:"Career statistics."`

	Checkin struct {
		Add    checkins.CheckinAddCmd    `cmd:"" help:"Check in a training week." default:"withargs"`
		Remove checkins.CheckinRemoveCmd `cmd:"" help:"Remove a weekly check-in."`
		List   checkins.CheckinListCmd   `cmd:"" help:"List check-ins."`
	} `cmd:"" help:"Weekly training check-ins."`
	Streak   insights.StreakCmd   `cmd:"" help:"Show weekly check-in streaks."`
	Recovery insights.RecoveryCmd `cmd:"" help:"Estimate recovery from recent events."`

	Prefs struct {
		Show prefs.PrefsShowCmd `cmd:"" help:"Show preferences." default:"1"`
		Set  prefs.PrefsSetCmd  `cmd:"" help:"Update preferences."`
	} `cmd:"" help:"Manage preferences."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data file backups."`
}

// These commands open the data file themselves.
var selfLoading = map[string]bool{
	"init":    true,
	"migrate": true,
	"doctor":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Endurance CV, training planner and trajectory analytics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(config.ResolvePath(CLI.ConfigFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}
	if CLI.Data != "" {
		cfg.DataPath = CLI.Data
	}
	if CLI.Verbose {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	store := storage.Open(cfg.DataPath)
	appCtx := cli.NewContext(store, cfg)
	logger.Debug("Starting", "command", ctx.Command(), "data", cfg.DataPath, "backend", storage.Backend(store))

	command := strings.Fields(ctx.Command())
	if len(command) > 0 && !selfLoading[command[0]] {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close data file", "error", closeErr)
	}
	if err != nil {
		apperrors.Fatal(err)
	}
}
