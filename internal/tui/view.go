package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/stats"
)

const viewChartWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	if m.state == constants.StateDashboard {
		tabs = []string{activeTabStyle.Render("Dashboard"), inactiveTabStyle.Render("History")}
	} else {
		tabs = []string{inactiveTabStyle.Render("Dashboard"), activeTabStyle.Render("History")}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	if m.state == constants.StateDashboard {
		body = m.dashboardView()
	} else {
		body = m.historyView()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) dashboardView() string {
	now := time.Now()
	count := stats.WeeklyWorkoutCount(m.logs, now)
	duration := stats.WeeklyTotalDuration(m.logs, now)
	volume := stats.WeeklyVolume(m.logs, now)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Workouts", fmt.Sprintf("%d", count)),
		statCard("Minutes", fmt.Sprintf("%d", duration)),
		statCard("Sets", fmt.Sprintf("%d", volume.Sets)),
		statCard("Reps", fmt.Sprintf("%d", volume.Reps)),
	)

	_, barData := stats.ChartSeries(m.logs, now)
	maxDuration := 0
	for _, p := range barData {
		if p.Duration > maxDuration {
			maxDuration = p.Duration
		}
	}

	var chart strings.Builder
	chart.WriteString(logHeaderStyle.Render("Last 7 days"))
	chart.WriteString("\n")
	for _, p := range barData {
		width := 0
		if maxDuration > 0 {
			width = p.Duration * viewChartWidth / maxDuration
		}
		chart.WriteString(fmt.Sprintf("%s %s %dm\n",
			mutedStyle.Render(p.Day), strings.Repeat("█", width), p.Duration))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", chart.String())
}

func statCard(title, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	))
}

func (m Model) historyView() string {
	var b strings.Builder

	if m.filter.Active() {
		b.WriteString(filterStyle.Render(fmt.Sprintf("Filter: category=%s", m.filter.Category)))
		b.WriteString("\n\n")
	}

	page := m.pager.Page()
	if len(page) == 0 {
		b.WriteString(mutedStyle.Render("No workouts match the current filters."))
		b.WriteString("\n")
	}
	for _, l := range page {
		b.WriteString(logHeaderStyle.Render(fmt.Sprintf("%s  %dm", l.Date.Format(constants.DateFormat), l.TotalDuration)))
		b.WriteString("\n")
		for _, ex := range l.Exercises {
			b.WriteString(fmt.Sprintf("  %-20s %dx%d @ %gkg  %s\n",
				ex.ExerciseName, ex.Sets, ex.Reps, ex.Weight, mutedStyle.Render(string(ex.Category))))
		}
		if l.Notes != "" {
			b.WriteString(mutedStyle.Render("  " + l.Notes))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.paginator.View())
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  page %d of %d (%d workouts)",
		m.pager.CurrentPage(), m.pager.TotalPages(), m.pager.Len())))

	return b.String()
}
