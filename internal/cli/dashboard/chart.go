package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/stats"
)

const chartBarWidth = 30

type ChartCmd struct{}

func (c *ChartCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	lineData, barData := stats.ChartSeries(logs, time.Now())

	maxDuration := 0
	for _, p := range barData {
		if p.Duration > maxDuration {
			maxDuration = p.Duration
		}
	}

	fmt.Println("Last 7 days")
	fmt.Println()
	for i, p := range barData {
		width := 0
		if maxDuration > 0 {
			width = p.Duration * chartBarWidth / maxDuration
		}
		bar := barStyle.Render(strings.Repeat("█", width))
		pad := strings.Repeat(" ", chartBarWidth-width)
		fmt.Printf("%s %s%s %6s  %d workout(s), volume %.0f\n",
			dayLabelStyle.Render(p.Day), bar, pad,
			cli.FormatDuration(p.Duration),
			p.Workouts,
			lineData[i].Volume)
	}
	return nil
}
