package logs

import (
	"fmt"
	"time"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/history"
	"github.com/acormier/liftlog/internal/models"
)

type LogListCmd struct {
	Date     string `short:"d" help:"Only show workouts on this date (YYYY-MM-DD)."`
	Category string `short:"c" help:"Only show workouts containing this category."`
	Exercise string `short:"x" help:"Only show workouts containing this exercise name (substring)."`
	Page     int    `short:"p" default:"1" help:"Page number."`
	PageSize int    `default:"5" help:"Entries per page."`
	All      bool   `short:"a" help:"Show all matching entries without pagination."`
}

func (c *LogListCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.ParseInLocation(constants.DateFormat, c.Date, time.Local); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Category != "" {
		if _, err := models.ParseCategory(c.Category); err != nil {
			return err
		}
	}
	if c.Page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1")
	}
	return nil
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	filter := history.Filter{
		Date:     c.Date,
		Category: models.Category(c.Category),
		Exercise: c.Exercise,
	}
	filtered := filter.Apply(logs)

	if len(filtered) == 0 {
		if filter.Active() {
			fmt.Println("No workouts match the current filters.")
		} else {
			fmt.Println("No workouts logged yet. Log one with 'liftlog log add'.")
		}
		return nil
	}

	page := filtered
	if !c.All {
		pager := history.NewPager(filtered, c.PageSize)
		pager.GoToPage(c.Page)
		page = pager.Page()
		defer fmt.Printf("\nPage %d of %d (%d workouts)\n", pager.CurrentPage(), pager.TotalPages(), len(filtered))
	}

	for _, l := range page {
		printLog(l)
	}
	return nil
}

func printLog(l models.WorkoutLog) {
	fmt.Printf("%s  %s  %s  (%d exercises)\n",
		l.ID, l.Date.Format(constants.DateFormat), cli.FormatDuration(l.TotalDuration), len(l.Exercises))
	for _, ex := range l.Exercises {
		fmt.Printf("    %-20s %dx%d @ %gkg  [%s]\n",
			ex.ExerciseName, ex.Sets, ex.Reps, ex.Weight, ex.Category)
	}
	if l.Notes != "" {
		fmt.Printf("    Notes: %s\n", l.Notes)
	}
}
