// Package history filters the workout log collection and slices it into
// pages for the history views.
package history

import (
	"sort"
	"strings"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/models"
)

// Filter holds the three optional log predicates. A zero-valued field is
// inactive and matches everything; active predicates combine with AND.
type Filter struct {
	Date     string          // exact calendar day, YYYY-MM-DD
	Category models.Category // any logged exercise in this category
	Exercise string          // case-insensitive substring of any logged exercise name
}

// Active reports whether any predicate is set.
func (f Filter) Active() bool {
	return f.Date != "" || f.Category != "" || f.Exercise != ""
}

// Matches reports whether the log satisfies every active predicate.
func (f Filter) Matches(log models.WorkoutLog) bool {
	if f.Date != "" && log.Date.Format(constants.DateFormat) != f.Date {
		return false
	}

	if f.Category != "" {
		found := false
		for _, ex := range log.Exercises {
			if ex.Category == f.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Exercise != "" {
		needle := strings.ToLower(f.Exercise)
		found := false
		for _, ex := range log.Exercises {
			if strings.Contains(strings.ToLower(ex.ExerciseName), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Apply returns the logs satisfying every active predicate, preserving
// order. With no active predicate the full collection is returned as is.
func (f Filter) Apply(logs []models.WorkoutLog) []models.WorkoutLog {
	if !f.Active() {
		return logs
	}
	filtered := []models.WorkoutLog{}
	for _, l := range logs {
		if f.Matches(l) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// ExerciseNames returns the sorted set of distinct exercise names appearing
// in the logs.
func ExerciseNames(logs []models.WorkoutLog) []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range logs {
		for _, ex := range l.Exercises {
			if !seen[ex.ExerciseName] {
				seen[ex.ExerciseName] = true
				names = append(names, ex.ExerciseName)
			}
		}
	}
	sort.Strings(names)
	return names
}
