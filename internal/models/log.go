package models

import (
	"fmt"
	"strings"
	"time"
)

// LoggedExercise is one exercise as actually performed in a workout. It is a
// snapshot taken at logging time: the id and name refer to the plan exercise it
// came from, but later changes to (or deletion of) that plan never alter it.
type LoggedExercise struct {
	ExerciseID   string   `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	Category     Category `json:"category"`
	Sets         int      `json:"sets"`
	Reps         int      `json:"reps"`
	Weight       float64  `json:"weight"`   // kg
	Duration     int      `json:"duration"` // minutes
}

func (e *LoggedExercise) Validate() error {
	if strings.TrimSpace(e.ExerciseName) == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category: %s", e.Category)
	}
	if e.Sets < 0 || e.Reps < 0 || e.Weight < 0 || e.Duration < 0 {
		return fmt.Errorf("sets, reps, weight, and duration cannot be negative")
	}
	return nil
}

// WorkoutLog is a record of one completed workout session.
type WorkoutLog struct {
	ID            string           `json:"id"`
	Date          time.Time        `json:"date"`
	Exercises     []LoggedExercise `json:"exercises"`
	TotalDuration int              `json:"total_duration"` // minutes
	Notes         string           `json:"notes,omitempty"`
}

func (l *WorkoutLog) Validate() error {
	if l.Date.IsZero() {
		return fmt.Errorf("log date cannot be empty")
	}
	if l.TotalDuration < 0 {
		return fmt.Errorf("total duration cannot be negative")
	}
	for i := range l.Exercises {
		if err := l.Exercises[i].Validate(); err != nil {
			return fmt.Errorf("exercise %d: %w", i+1, err)
		}
	}
	return nil
}

// Day returns the log's local calendar day in YYYY-MM-DD form.
func (l *WorkoutLog) Day() string {
	return l.Date.Format("2006-01-02")
}

// LogDraft is the caller-supplied portion of a new workout log; the store
// assigns the id.
type LogDraft struct {
	Date          time.Time
	Exercises     []LoggedExercise
	TotalDuration int
	Notes         string
}

// LogPatch carries partial updates for a workout log. Nil fields retain the
// prior value. Exercises, when set, replaces the whole snapshot list.
type LogPatch struct {
	Date          *time.Time        `json:"date,omitempty"`
	Exercises     *[]LoggedExercise `json:"exercises,omitempty"`
	TotalDuration *int              `json:"total_duration,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
}

// Apply merges the patch into l.
func (p LogPatch) Apply(l *WorkoutLog) {
	if p.Date != nil {
		l.Date = *p.Date
	}
	if p.Exercises != nil {
		l.Exercises = *p.Exercises
	}
	if p.TotalDuration != nil {
		l.TotalDuration = *p.TotalDuration
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}
