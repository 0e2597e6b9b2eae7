package dashboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	now := time.Now()
	count := stats.WeeklyWorkoutCount(logs, now)
	duration := stats.WeeklyTotalDuration(logs, now)
	volume := stats.WeeklyVolume(logs, now)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Workouts this week", fmt.Sprintf("%d", count)),
		statCard("Total time", cli.FormatDuration(duration)),
		statCard("Total sets", fmt.Sprintf("%d", volume.Sets)),
		statCard("Total reps", fmt.Sprintf("%d", volume.Reps)),
	)
	fmt.Println(cards)
	return nil
}

func statCard(title, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	))
}
