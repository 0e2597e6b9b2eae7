package cli

import (
	"fmt"

	"github.com/acormier/liftlog/internal/auth"
	"github.com/acormier/liftlog/internal/models"
	"github.com/acormier/liftlog/internal/storage"
)

type Context struct {
	Store storage.Provider
	Auth  *auth.Service
}

// RequireUser returns the active session user or an error telling the user
// to log in.
func (c *Context) RequireUser() (models.User, error) {
	user, ok, err := c.Auth.CurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, fmt.Errorf("not logged in, run 'liftlog login' first")
	}
	return user, nil
}

// FindPlan looks up a plan by id and surfaces a not-found error for the user.
// The store itself treats unknown ids as no-ops; the CLI checks up front so
// the user gets feedback instead of silence.
func (c *Context) FindPlan(id string) (models.WorkoutPlan, error) {
	plan, found, err := c.Store.GetPlan(id)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	if !found {
		return models.WorkoutPlan{}, fmt.Errorf("plan not found: %s", id)
	}
	return plan, nil
}

// FindLog looks up a workout log by id, with the same caller-facing
// not-found behavior as FindPlan.
func (c *Context) FindLog(id string) (models.WorkoutLog, error) {
	logs, err := c.Store.GetAllLogs()
	if err != nil {
		return models.WorkoutLog{}, err
	}
	for _, l := range logs {
		if l.ID == id {
			return l, nil
		}
	}
	return models.WorkoutLog{}, fmt.Errorf("workout log not found: %s", id)
}

// FormatDuration formats a minute count as "1h 15m" / "45m".
func FormatDuration(minutes int) string {
	if minutes >= 60 {
		h := minutes / 60
		m := minutes % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", minutes)
}
