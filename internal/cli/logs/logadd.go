package logs

import (
	"fmt"
	"time"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/models"
)

type LogAddCmd struct {
	Plan     string `arg:"" help:"Plan id to log a workout against."`
	Date     string `short:"d" help:"Workout date (YYYY-MM-DD, default today)."`
	Duration int    `short:"t" default:"0" help:"Total duration in minutes (default: sum of exercise durations)."`
	Notes    string `short:"n" help:"Free-text notes."`
}

func (c *LogAddCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.FindPlan(c.Plan)
	if err != nil {
		return err
	}
	if len(plan.Exercises) == 0 {
		return fmt.Errorf("plan %q has no exercises to log", plan.Name)
	}

	date := time.Now()
	if c.Date != "" {
		date, _ = time.ParseInLocation(constants.DateFormat, c.Date, time.Local)
	}

	// Snapshot the plan's exercises at their defaults. The snapshot is
	// independent of the plan from here on.
	exercises := make([]models.LoggedExercise, len(plan.Exercises))
	total := 0
	for i, ex := range plan.Exercises {
		exercises[i] = models.LoggedExercise{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Category:     ex.Category,
			Sets:         ex.DefaultSets,
			Reps:         ex.DefaultReps,
			Weight:       ex.Weight,
			Duration:     10,
		}
		total += exercises[i].Duration
	}
	if c.Duration > 0 {
		total = c.Duration
	}

	log, err := ctx.Store.AddLog(models.LogDraft{
		Date:          date,
		Exercises:     exercises,
		TotalDuration: total,
		Notes:         c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged %q on %s (%s, %d exercises)\n",
		plan.Name, log.Date.Format(constants.DateFormat), cli.FormatDuration(log.TotalDuration), len(log.Exercises))
	return nil
}
