package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/history"
	"github.com/acormier/liftlog/internal/models"
	"github.com/acormier/liftlog/internal/storage"
)

// Model is the interactive dashboard/history browser. The history tab runs
// the same filter and pager the 'log list' command uses; the paginator
// component only mirrors the pager for display.
type Model struct {
	store storage.Provider
	state constants.SessionState
	keys  KeyMap
	help  help.Model

	logs        []models.WorkoutLog
	filter      history.Filter
	pager       *history.Pager[models.WorkoutLog]
	paginator   paginator.Model
	categoryIdx int // index into models.Categories(); -1 means no category filter

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider) (Model, error) {
	logs, err := store.GetAllLogs()
	if err != nil {
		return Model{}, err
	}

	pager := history.NewPager(logs, constants.DefaultPageSize)

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.SetTotalPages(len(logs))
	pg.PerPage = constants.DefaultPageSize

	m := Model{
		store:       store,
		state:       constants.StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logs:        logs,
		pager:       pager,
		paginator:   pg,
		categoryIdx: -1,
	}
	m.syncPaginator()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// applyFilter re-filters the log collection and resets the pager to page 1
// so stale page numbers never survive a filter change.
func (m *Model) applyFilter() {
	m.pager.SetItems(m.filter.Apply(m.logs))
	m.syncPaginator()
}

// syncPaginator mirrors the pager state into the display-only paginator
// component.
func (m *Model) syncPaginator() {
	items := m.pager.Len()
	if items < 1 {
		items = 1
	}
	m.paginator.PerPage = constants.DefaultPageSize
	m.paginator.SetTotalPages(items)
	m.paginator.Page = m.pager.CurrentPage() - 1
}
