package dashboard

import (
	"fmt"
	"time"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/stats"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM, default current)."`
}

func (c *CalendarCmd) Validate() error {
	if c.Month != "" {
		if _, err := time.ParseInLocation("2006-01", c.Month, time.Local); err != nil {
			return fmt.Errorf("invalid month format (expected YYYY-MM): %w", err)
		}
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}
	index := stats.CalendarIndex(logs)

	first := time.Now()
	if c.Month != "" {
		first, _ = time.ParseInLocation("2006-01", c.Month, time.Local)
	}
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)

	fmt.Println(first.Format("January 2006"))
	fmt.Println(dayLabelStyle.Render("Sun Mon Tue Wed Thu Fri Sat"))

	// Leading blanks up to the first weekday
	line := ""
	for i := 0; i < int(first.Weekday()); i++ {
		line += "    "
	}

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%3d", day.Day())
		if bucket := index[day.Format(constants.DateFormat)]; len(bucket) > 0 {
			cell = markedDayStyle.Render(cell)
		}
		line += cell + " "
		if day.Weekday() == time.Saturday {
			fmt.Println(line)
			line = ""
		}
	}
	if line != "" {
		fmt.Println(line)
	}

	// Per-day summary for days with workouts
	fmt.Println()
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		key := day.Format(constants.DateFormat)
		bucket := index[key]
		if len(bucket) == 0 {
			continue
		}
		total := 0
		for _, l := range bucket {
			total += l.TotalDuration
		}
		fmt.Printf("%s  %d workout(s), %s\n", key, len(bucket), cli.FormatDuration(total))
	}
	return nil
}
