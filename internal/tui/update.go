package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/history"
	"github.com/acormier/liftlog/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			if m.state == constants.StateDashboard {
				m.state = constants.StateHistory
			} else {
				m.state = constants.StateDashboard
			}
			return m, nil
		}

		if m.state == constants.StateHistory {
			return m.updateHistory(msg)
		}
	}

	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextPage):
		m.pager.Next()
		m.syncPaginator()

	case key.Matches(msg, m.keys.PrevPage):
		m.pager.Prev()
		m.syncPaginator()

	case key.Matches(msg, m.keys.FirstPage):
		m.pager.Reset()
		m.syncPaginator()

	case key.Matches(msg, m.keys.Category):
		categories := models.Categories()
		m.categoryIdx++
		if m.categoryIdx >= len(categories) {
			m.categoryIdx = -1
			m.filter.Category = ""
		} else {
			m.filter.Category = categories[m.categoryIdx]
		}
		m.applyFilter()

	case key.Matches(msg, m.keys.ClearFilters):
		m.categoryIdx = -1
		m.filter = history.Filter{}
		m.applyFilter()
	}

	return m, nil
}
