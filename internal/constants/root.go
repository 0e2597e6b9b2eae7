package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "liftlog"
	DefaultConfigPath = "~/.config/liftlog/liftlog.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultPageSize is the number of log entries shown per page in history views
	DefaultPageSize = 5

	// ChartDays is the number of calendar days covered by the dashboard charts
	ChartDays = 7

	// MinPasswordLen is the minimum accepted password length for the simulated login
	MinPasswordLen = 6

	// LoginDelay is the artificial latency applied to simulated auth calls
	LoginDelay = 1 * time.Second

	// Session States
	StateDashboard SessionState = iota
	StateHistory
	StateFilter
	StateConfirmDelete
)
