package logs

import (
	"fmt"
	"time"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/models"
)

type LogEditCmd struct {
	ID       string  `arg:"" help:"Workout log id."`
	Date     *string `short:"d" help:"New workout date (YYYY-MM-DD)."`
	Duration *int    `short:"t" help:"New total duration in minutes."`
	Notes    *string `short:"n" help:"New notes."`
}

func (c *LogEditCmd) Validate() error {
	if c.Date != nil {
		if _, err := time.ParseInLocation(constants.DateFormat, *c.Date, time.Local); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Duration != nil && *c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return nil
}

func (c *LogEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.FindLog(c.ID); err != nil {
		return err
	}
	if c.Date == nil && c.Duration == nil && c.Notes == nil {
		return fmt.Errorf("nothing to update (see 'liftlog log edit --help')")
	}

	patch := models.LogPatch{
		TotalDuration: c.Duration,
		Notes:         c.Notes,
	}
	if c.Date != nil {
		date, _ := time.ParseInLocation(constants.DateFormat, *c.Date, time.Local)
		patch.Date = &date
	}

	if err := ctx.Store.UpdateLog(c.ID, patch); err != nil {
		return err
	}
	fmt.Println("Workout log updated.")
	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Workout log id."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.FindLog(c.ID); err != nil {
		return err
	}
	if err := ctx.Store.DeleteLog(c.ID); err != nil {
		return err
	}
	fmt.Println("Workout log deleted.")
	return nil
}
