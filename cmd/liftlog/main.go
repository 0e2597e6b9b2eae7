package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/acormier/liftlog/internal/auth"
	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/cli/account"
	"github.com/acormier/liftlog/internal/cli/dashboard"
	"github.com/acormier/liftlog/internal/cli/logs"
	"github.com/acormier/liftlog/internal/cli/plans"
	"github.com/acormier/liftlog/internal/cli/system"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/errors"
	"github.com/acormier/liftlog/internal/logger"
	"github.com/acormier/liftlog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json path selects the JSON snapshot store; anything else selects SQLite." default:"~/.config/liftlog/liftlog.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd      `cmd:"" help:"Initialize liftlog storage with sample data."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run consistency checks on stored data."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Login    account.LoginCmd    `cmd:"" help:"Log in (simulated)."`
	Register account.RegisterCmd `cmd:"" help:"Create an account (simulated)."`
	Logout   account.LogoutCmd   `cmd:"" help:"Log out."`
	Whoami   account.WhoamiCmd   `cmd:"" help:"Show the active session."`
	Profile  account.ProfileCmd  `cmd:"" help:"Update the user profile."`
	Plan     struct {
		Add      plans.PlanAddCmd    `cmd:"" help:"Create a workout plan."`
		List     plans.PlanListCmd   `cmd:"" help:"List workout plans."`
		Show     plans.PlanShowCmd   `cmd:"" help:"Show a plan and its exercises."`
		Edit     plans.PlanEditCmd   `cmd:"" help:"Edit a plan."`
		Delete   plans.PlanDeleteCmd `cmd:"" help:"Delete a plan."`
		Exercise struct {
			Add    plans.ExerciseAddCmd    `cmd:"" help:"Add an exercise to a plan."`
			Edit   plans.ExerciseEditCmd   `cmd:"" help:"Edit an exercise."`
			Delete plans.ExerciseDeleteCmd `cmd:"" help:"Remove an exercise from a plan."`
		} `cmd:"" help:"Manage plan exercises."`
	} `cmd:"" help:"Manage workout plans."`
	Log struct {
		Add    logs.LogAddCmd    `cmd:"" help:"Log a completed workout."`
		List   logs.LogListCmd   `cmd:"" help:"Browse workout history with filters and pages."`
		Edit   logs.LogEditCmd   `cmd:"" help:"Edit a workout log."`
		Delete logs.LogDeleteCmd `cmd:"" help:"Delete a workout log."`
	} `cmd:"" help:"Manage workout logs."`
	Stats    dashboard.StatsCmd    `cmd:"" help:"Show weekly stats."`
	Chart    dashboard.ChartCmd    `cmd:"" help:"Show the 7-day activity chart."`
	Calendar dashboard.CalendarCmd `cmd:"" help:"Show the workout calendar."`
}

// expandHome expands a leading ~ in the config path.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Workout plan and progress tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store: store,
		Auth:  auth.NewService(store),
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
