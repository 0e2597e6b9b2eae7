package storage

import (
	"fmt"
	"time"

	"github.com/acormier/liftlog/internal/models"
)

// Seed data installed on first load so a fresh install has something to show.
// It is fully deterministic apart from the clock: the same ids and values are
// produced on every install, with log dates laid out relative to now.

// SeedPlans returns the sample workout plans.
func SeedPlans() []models.WorkoutPlan {
	return []models.WorkoutPlan{
		{
			ID:          "1",
			Name:        "Push Day",
			Description: "Chest, shoulders, and triceps workout",
			Exercises: []models.Exercise{
				{ID: "1", Name: "Bench Press", Category: models.CategoryChest, DefaultSets: 4, DefaultReps: 10, Weight: 60},
				{ID: "2", Name: "Shoulder Press", Category: models.CategoryShoulders, DefaultSets: 3, DefaultReps: 12, Weight: 25},
				{ID: "3", Name: "Tricep Dips", Category: models.CategoryArms, DefaultSets: 3, DefaultReps: 15, Weight: 0},
			},
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		},
		{
			ID:          "2",
			Name:        "Pull Day",
			Description: "Back and biceps workout",
			Exercises: []models.Exercise{
				{ID: "4", Name: "Deadlift", Category: models.CategoryBack, DefaultSets: 4, DefaultReps: 8, Weight: 80},
				{ID: "5", Name: "Pull Ups", Category: models.CategoryBack, DefaultSets: 3, DefaultReps: 10, Weight: 0},
				{ID: "6", Name: "Bicep Curls", Category: models.CategoryArms, DefaultSets: 3, DefaultReps: 12, Weight: 15},
			},
			CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
		},
		{
			ID:          "3",
			Name:        "Leg Day",
			Description: "Complete lower body workout",
			Exercises: []models.Exercise{
				{ID: "7", Name: "Squats", Category: models.CategoryLegs, DefaultSets: 4, DefaultReps: 10, Weight: 70},
				{ID: "8", Name: "Leg Press", Category: models.CategoryLegs, DefaultSets: 3, DefaultReps: 12, Weight: 100},
				{ID: "9", Name: "Lunges", Category: models.CategoryLegs, DefaultSets: 3, DefaultReps: 10, Weight: 20},
			},
			CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local),
		},
	}
}

// SeedLogs returns sample workout logs covering the 14 days up to now, cycling
// through the sample plans. Every fourth day is a rest day. Logs are returned
// in canonical most-recent-first order.
func SeedLogs(now time.Time) []models.WorkoutLog {
	plans := SeedPlans()
	var logs []models.WorkoutLog

	for i := 0; i < 14; i++ {
		if i%4 == 3 {
			continue // rest day
		}

		date := now.AddDate(0, 0, -i)
		plan := plans[i%3]

		exercises := make([]models.LoggedExercise, len(plan.Exercises))
		for j, ex := range plan.Exercises {
			exercises[j] = models.LoggedExercise{
				ExerciseID:   ex.ID,
				ExerciseName: ex.Name,
				Category:     ex.Category,
				Sets:         ex.DefaultSets + i%2,
				Reps:         ex.DefaultReps + i%3,
				Weight:       ex.Weight + float64(i%5),
				Duration:     5 + (i+j)%10,
			}
		}

		log := models.WorkoutLog{
			ID:            fmt.Sprintf("log-%d", i),
			Date:          date,
			Exercises:     exercises,
			TotalDuration: 45 + (i*7)%30,
		}
		if i == 0 {
			log.Notes = "Great session today!"
		}

		logs = append(logs, log)
	}

	return logs
}
