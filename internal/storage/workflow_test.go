package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/acormier/liftlog/internal/history"
	"github.com/acormier/liftlog/internal/models"
	"github.com/acormier/liftlog/internal/stats"
)

// Walks a full user session against each provider: build a plan, log a
// workout from it, watch the weekly figures move, then delete the plan and
// confirm history and aggregates are untouched.
func TestWorkoutWorkflow(t *testing.T) {
	providers := map[string]func(t *testing.T) Provider{
		"json": func(t *testing.T) Provider {
			store := NewJSONStore(filepath.Join(t.TempDir(), "liftlog.json"))
			if err := store.Load(); err != nil {
				t.Fatalf("failed to load store: %v", err)
			}
			return store
		},
		"sqlite": func(t *testing.T) Provider {
			store := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
			if err := store.Init(); err != nil {
				t.Fatalf("failed to initialize store: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			return store
		},
	}

	for name, setup := range providers {
		t.Run(name, func(t *testing.T) {
			store := setup(t)
			now := time.Now()

			plan, err := store.AddPlan("Push Day B", "Variation with incline work")
			if err != nil {
				t.Fatalf("failed to add plan: %v", err)
			}
			bench, err := store.AddExercise(plan.ID, models.Exercise{
				Name:        "Incline Bench Press",
				Category:    models.CategoryChest,
				DefaultSets: 4,
				DefaultReps: 8,
				Weight:      50,
			})
			if err != nil {
				t.Fatalf("failed to add exercise: %v", err)
			}

			logsBefore, err := store.GetAllLogs()
			if err != nil {
				t.Fatalf("failed to get logs: %v", err)
			}
			countBefore := stats.WeeklyWorkoutCount(logsBefore, now)
			volumeBefore := stats.WeeklyVolume(logsBefore, now)

			// log the workout with the plan's defaults snapshotted
			log, err := store.AddLog(models.LogDraft{
				Date: now,
				Exercises: []models.LoggedExercise{{
					ExerciseID:   bench.ID,
					ExerciseName: bench.Name,
					Category:     bench.Category,
					Sets:         bench.DefaultSets,
					Reps:         bench.DefaultReps,
					Weight:       bench.Weight,
					Duration:     15,
				}},
				TotalDuration: 45,
			})
			if err != nil {
				t.Fatalf("failed to add log: %v", err)
			}

			logs, err := store.GetAllLogs()
			if err != nil {
				t.Fatalf("failed to get logs: %v", err)
			}
			if logs[0].ID != log.ID {
				t.Errorf("expected new log first, got %s", logs[0].ID)
			}

			if got := stats.WeeklyWorkoutCount(logs, now); got != countBefore+1 {
				t.Errorf("weekly workout count = %d, want %d", got, countBefore+1)
			}
			volume := stats.WeeklyVolume(logs, now)
			if volume.Sets != volumeBefore.Sets+4 {
				t.Errorf("weekly sets = %d, want %d", volume.Sets, volumeBefore.Sets+4)
			}
			if volume.Reps != volumeBefore.Reps+32 {
				t.Errorf("weekly reps = %d, want %d", volume.Reps, volumeBefore.Reps+32)
			}

			// the snapshot is findable by exercise name
			filter := history.Filter{Exercise: "incline"}
			matched := filter.Apply(logs)
			if len(matched) != 1 || matched[0].ID != log.ID {
				t.Errorf("expected exercise filter to find the new log, got %v", matched)
			}

			// deleting the plan leaves history and aggregates alone
			if err := store.DeletePlan(plan.ID); err != nil {
				t.Fatalf("failed to delete plan: %v", err)
			}
			if _, found, _ := store.GetPlan(plan.ID); found {
				t.Error("expected plan to be gone after delete")
			}

			logsAfter, err := store.GetAllLogs()
			if err != nil {
				t.Fatalf("failed to get logs after plan delete: %v", err)
			}
			if len(logsAfter) != len(logs) {
				t.Fatalf("log count changed from %d to %d after plan delete", len(logs), len(logsAfter))
			}
			if got := stats.WeeklyVolume(logsAfter, now); got != volume {
				t.Errorf("weekly volume changed after plan delete: %+v vs %+v", got, volume)
			}
			matched = filter.Apply(logsAfter)
			if len(matched) != 1 || matched[0].Exercises[0].ExerciseName != "Incline Bench Press" {
				t.Error("log snapshot lost its exercise name after plan delete")
			}
		})
	}
}
