package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/dedededepepi/koala/internal/backup"
	"github.com/dedededepepi/koala/internal/cli"
	"github.com/dedededepepi/koala/internal/constants"
	"github.com/dedededepepi/koala/internal/errors"
	"github.com/dedededepepi/koala/internal/logger"
	"github.com/dedededepepi/koala/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data file path. A .json extension selects the plain-JSON backend; anything else is SQLite." type:"path" env:"KOALA_DATA" default:"~/.local/share/koala/koala.db"`
	Debug   bool   `help:"Enable debug logging." env:"KOALA_DEBUG"`

	Tui          cli.TuiCmd           `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Log          cli.LogCmd           `cmd:"" help:"Log an urge (interactive form when no outcome flag is given)."`
	List         cli.TriggerListCmd   `cmd:"" help:"Show logged entries, newest first."`
	Edit         cli.TriggerEditCmd   `cmd:"" help:"Edit a logged entry."`
	Delete       cli.TriggerDeleteCmd `cmd:"" help:"Delete a logged entry."`
	Today        cli.TodayCmd         `cmd:"" help:"Show today's numbers."`
	Stats        cli.StatsCmd         `cmd:"" help:"Show period stats, streak, and top triggers."`
	Achievements cli.AchievementsCmd  `cmd:"" help:"Show achievement progress."`
	Settings     cli.SettingsCmd      `cmd:"" help:"View or change settings."`
	Export       cli.ExportCmd        `cmd:"" help:"Export all data as a backup document."`
	Import       cli.ImportCmd        `cmd:"" help:"Import a backup document, replacing stored data."`
	Clear        cli.ClearCmd         `cmd:"" help:"Delete all logged entries."`
	Surf         cli.SurfCmd          `cmd:"" help:"Start an urge-surf countdown."`
	Remind       cli.RemindCmd        `cmd:"" help:"Run the daily reminder loop."`
	Doctor       cli.DoctorCmd        `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	_ = godotenv.Load() // KOALA_DATA, KOALA_DEBUG

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local-first OCD urge tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: filepath.Dir(CLI.Data)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var backend storage.Backend
	if strings.HasSuffix(CLI.Data, ".json") {
		backend = storage.NewFileBackend(CLI.Data)
	} else {
		sqlite := storage.NewSQLiteBackend(CLI.Data)
		if err := sqlite.Open(); err != nil {
			errors.Fatal(err)
		}
		backend = sqlite
	}
	defer backend.Close()

	triggers := storage.NewTriggerStore(backend)
	settings := storage.NewSettingsStore(backend)
	achievements := storage.NewAchievementStore(backend, triggers)

	appCtx := &cli.Context{
		Triggers:     triggers,
		Settings:     settings,
		Achievements: achievements,
		Backup:       backup.NewManager(triggers, settings, achievements),
		DataPath:     CLI.Data,
	}

	errors.Fatal(ctx.Run(appCtx))
}
