package plans

import (
	"fmt"
	"strings"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/models"
)

type ExerciseAddCmd struct {
	Plan     string  `arg:"" help:"Plan id."`
	Name     string  `arg:"" help:"Exercise name."`
	Category string  `short:"c" required:"" help:"Category (Chest|Back|Legs|Shoulders|Arms|Core|Cardio)."`
	Sets     int     `short:"s" default:"3" help:"Default sets."`
	Reps     int     `short:"r" default:"10" help:"Default reps."`
	Weight   float64 `short:"w" default:"0" help:"Default weight in kg."`
}

func (c *ExerciseAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if _, err := models.ParseCategory(c.Category); err != nil {
		return err
	}
	if c.Sets < 0 || c.Reps < 0 {
		return fmt.Errorf("sets and reps cannot be negative")
	}
	if c.Weight < 0 {
		return fmt.Errorf("weight cannot be negative")
	}
	return nil
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.FindPlan(c.Plan); err != nil {
		return err
	}

	exercise, err := ctx.Store.AddExercise(c.Plan, models.Exercise{
		Name:        c.Name,
		Category:    models.Category(c.Category),
		DefaultSets: c.Sets,
		DefaultReps: c.Reps,
		Weight:      c.Weight,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s)\n", exercise.Name, exercise.ID)
	return nil
}

type ExerciseEditCmd struct {
	Plan     string   `arg:"" help:"Plan id."`
	ID       string   `arg:"" help:"Exercise id."`
	Name     *string  `short:"n" help:"New exercise name."`
	Category *string  `short:"c" help:"New category."`
	Sets     *int     `short:"s" help:"New default sets."`
	Reps     *int     `short:"r" help:"New default reps."`
	Weight   *float64 `short:"w" help:"New default weight in kg."`
}

func (c *ExerciseEditCmd) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("exercise name cannot be empty")
	}
	if c.Category != nil {
		if _, err := models.ParseCategory(*c.Category); err != nil {
			return err
		}
	}
	return nil
}

func (c *ExerciseEditCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.FindPlan(c.Plan)
	if err != nil {
		return err
	}
	if _, found := plan.FindExercise(c.ID); !found {
		return fmt.Errorf("exercise not found: %s", c.ID)
	}

	patch := models.ExercisePatch{
		Name:        c.Name,
		DefaultSets: c.Sets,
		DefaultReps: c.Reps,
		Weight:      c.Weight,
	}
	if c.Category != nil {
		cat := models.Category(*c.Category)
		patch.Category = &cat
	}

	if err := ctx.Store.UpdateExercise(c.Plan, c.ID, patch); err != nil {
		return err
	}
	fmt.Println("Exercise updated.")
	return nil
}

type ExerciseDeleteCmd struct {
	Plan string `arg:"" help:"Plan id."`
	ID   string `arg:"" help:"Exercise id."`
}

func (c *ExerciseDeleteCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.FindPlan(c.Plan)
	if err != nil {
		return err
	}
	exercise, found := plan.FindExercise(c.ID)
	if !found {
		return fmt.Errorf("exercise not found: %s", c.ID)
	}

	if err := ctx.Store.DeleteExercise(c.Plan, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %q from %q.\n", exercise.Name, plan.Name)
	return nil
}
