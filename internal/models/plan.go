package models

import (
	"fmt"
	"strings"
	"time"
)

// Exercise is a template entry within a plan: default sets/reps/weight for one
// movement. Exercises are exclusively owned by their plan and are never shared.
type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	DefaultSets int      `json:"default_sets"`
	DefaultReps int      `json:"default_reps"`
	Weight      float64  `json:"weight"` // kg
}

func (e *Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category: %s", e.Category)
	}
	if e.DefaultSets < 0 || e.DefaultReps < 0 {
		return fmt.Errorf("sets and reps cannot be negative")
	}
	if e.Weight < 0 {
		return fmt.Errorf("weight cannot be negative")
	}
	return nil
}

// WorkoutPlan is a named, reusable template of exercises. Exercise order is
// insertion order and is meaningful for display only.
type WorkoutPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *WorkoutPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name cannot be empty")
	}
	for i := range p.Exercises {
		if err := p.Exercises[i].Validate(); err != nil {
			return fmt.Errorf("exercise %d: %w", i+1, err)
		}
	}
	return nil
}

// FindExercise returns the exercise with the given id, or false if no such
// exercise exists in the plan.
func (p *WorkoutPlan) FindExercise(id string) (Exercise, bool) {
	for _, e := range p.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// ExercisePatch carries partial updates for an exercise. Nil fields retain the
// prior value (merge semantics).
type ExercisePatch struct {
	Name        *string   `json:"name,omitempty"`
	Category    *Category `json:"category,omitempty"`
	DefaultSets *int      `json:"default_sets,omitempty"`
	DefaultReps *int      `json:"default_reps,omitempty"`
	Weight      *float64  `json:"weight,omitempty"`
}

// Apply merges the patch into e.
func (p ExercisePatch) Apply(e *Exercise) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.DefaultSets != nil {
		e.DefaultSets = *p.DefaultSets
	}
	if p.DefaultReps != nil {
		e.DefaultReps = *p.DefaultReps
	}
	if p.Weight != nil {
		e.Weight = *p.Weight
	}
}

// PlanPatch carries partial updates for a plan. Nil fields retain the prior
// value. Exercises, when set, replaces the whole exercise list.
type PlanPatch struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	Exercises   *[]Exercise `json:"exercises,omitempty"`
}

// Apply merges the patch into pl.
func (p PlanPatch) Apply(pl *WorkoutPlan) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.Exercises != nil {
		pl.Exercises = *p.Exercises
	}
}
