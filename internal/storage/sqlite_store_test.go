package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/acormier/liftlog/internal/models"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	tempDir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(tempDir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreSeedsOnInit(t *testing.T) {
	store := setupTestSQLiteStore(t)

	plans, err := store.GetAllPlans()
	if err != nil {
		t.Fatalf("failed to get plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 seeded plans, got %d", len(plans))
	}
	if len(plans[0].Exercises) != 3 {
		t.Errorf("expected 3 exercises in first seed plan, got %d", len(plans[0].Exercises))
	}

	logs, err := store.GetAllLogs()
	if err != nil {
		t.Fatalf("failed to get logs: %v", err)
	}
	if len(logs) != 11 {
		t.Fatalf("expected 11 seeded logs, got %d", len(logs))
	}
	// canonical order is most recent first
	if logs[0].ID != "log-0" {
		t.Errorf("expected today's seed log first, got %s", logs[0].ID)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Date.After(logs[i-1].Date) {
			t.Errorf("logs out of order at index %d: %v after %v", i, logs[i].Date, logs[i-1].Date)
		}
	}
}

func TestSQLiteStorePlanCRUD(t *testing.T) {
	store := setupTestSQLiteStore(t)

	plan, err := store.AddPlan("Full Body", "Everything in one session")
	if err != nil {
		t.Fatalf("failed to add plan: %v", err)
	}

	got, found, err := store.GetPlan(plan.ID)
	if err != nil {
		t.Fatalf("failed to get plan: %v", err)
	}
	if !found {
		t.Fatal("expected plan to be found")
	}
	if got.Name != "Full Body" {
		t.Errorf("expected plan name Full Body, got %s", got.Name)
	}
	if !got.CreatedAt.Equal(plan.CreatedAt) {
		t.Errorf("created_at changed across round trip: %v vs %v", got.CreatedAt, plan.CreatedAt)
	}

	description := "Three compound lifts"
	if err := store.UpdatePlan(plan.ID, models.PlanPatch{Description: &description}); err != nil {
		t.Fatalf("failed to update plan: %v", err)
	}
	got, _, _ = store.GetPlan(plan.ID)
	if got.Description != "Three compound lifts" {
		t.Errorf("expected updated description, got %s", got.Description)
	}
	if got.Name != "Full Body" {
		t.Errorf("name changed by unrelated patch: %s", got.Name)
	}

	if err := store.DeletePlan(plan.ID); err != nil {
		t.Fatalf("failed to delete plan: %v", err)
	}
	_, found, _ = store.GetPlan(plan.ID)
	if found {
		t.Error("expected plan to be gone after delete")
	}
}

func TestSQLiteStoreDeletePlanCascadesExercisesOnly(t *testing.T) {
	store := setupTestSQLiteStore(t)

	logsBefore, _ := store.GetAllLogs()

	// plan 1 owns exercises 1-3 and seed logs snapshot them
	if err := store.DeletePlan("1"); err != nil {
		t.Fatalf("failed to delete plan: %v", err)
	}

	// plan exercises are gone with the plan
	var count int
	if err := store.db.QueryRow("SELECT count(*) FROM exercises WHERE plan_id = ?", "1").Scan(&count); err != nil {
		t.Fatalf("failed to count exercises: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 exercises for deleted plan, got %d", count)
	}

	// log snapshots are untouched
	logsAfter, _ := store.GetAllLogs()
	if len(logsAfter) != len(logsBefore) {
		t.Fatalf("log count changed from %d to %d after plan delete", len(logsBefore), len(logsAfter))
	}
	for i := range logsBefore {
		if len(logsAfter[i].Exercises) != len(logsBefore[i].Exercises) {
			t.Errorf("log %s exercise snapshot changed after plan delete", logsBefore[i].ID)
		}
	}
}

func TestSQLiteStoreExerciseCRUD(t *testing.T) {
	store := setupTestSQLiteStore(t)

	ex, err := store.AddExercise("2", models.Exercise{
		Name:        "Barbell Rows",
		Category:    models.CategoryBack,
		DefaultSets: 4,
		DefaultReps: 8,
		Weight:      50,
	})
	if err != nil {
		t.Fatalf("failed to add exercise: %v", err)
	}
	if ex.ID == "" {
		t.Fatal("expected generated exercise id")
	}

	plan, _, _ := store.GetPlan("2")
	// appended after the three seed exercises
	if len(plan.Exercises) != 4 {
		t.Fatalf("expected 4 exercises, got %d", len(plan.Exercises))
	}
	if plan.Exercises[3].Name != "Barbell Rows" {
		t.Errorf("expected new exercise last, got %s", plan.Exercises[3].Name)
	}

	weight := 55.0
	if err := store.UpdateExercise("2", ex.ID, models.ExercisePatch{Weight: &weight}); err != nil {
		t.Fatalf("failed to update exercise: %v", err)
	}
	plan, _, _ = store.GetPlan("2")
	updated, found := plan.FindExercise(ex.ID)
	if !found {
		t.Fatal("expected exercise to be found after update")
	}
	if updated.Weight != 55 {
		t.Errorf("expected weight 55, got %g", updated.Weight)
	}
	if updated.DefaultSets != 4 {
		t.Errorf("sets changed by unrelated patch: %d", updated.DefaultSets)
	}

	if err := store.DeleteExercise("2", ex.ID); err != nil {
		t.Fatalf("failed to delete exercise: %v", err)
	}
	plan, _, _ = store.GetPlan("2")
	if _, found := plan.FindExercise(ex.ID); found {
		t.Error("expected exercise to be gone after delete")
	}
}

func TestSQLiteStoreAddExerciseUnknownPlan(t *testing.T) {
	store := setupTestSQLiteStore(t)

	ex, err := store.AddExercise("no-such-plan", models.Exercise{
		Name:     "Ghost Lift",
		Category: models.CategoryCore,
	})
	if err != nil {
		t.Fatalf("expected nil error for unknown plan, got %v", err)
	}
	if ex.ID != "" {
		t.Errorf("expected zero-valued exercise for unknown plan, got %+v", ex)
	}
}

func TestSQLiteStoreLogRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	date := time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)
	log, err := store.AddLog(models.LogDraft{
		Date: date,
		Exercises: []models.LoggedExercise{
			{ExerciseID: "7", ExerciseName: "Squats", Category: models.CategoryLegs, Sets: 5, Reps: 5, Weight: 102.5, Duration: 15},
			{ExerciseID: "8", ExerciseName: "Leg Press", Category: models.CategoryLegs, Sets: 3, Reps: 12, Weight: 110, Duration: 10},
		},
		TotalDuration: 55,
		Notes:         "Heavy day",
	})
	if err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reloaded := NewSQLiteStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reloaded.Close()

	logs, err := reloaded.GetAllLogs()
	if err != nil {
		t.Fatalf("failed to get logs after reload: %v", err)
	}
	got := logs[0]
	if got.ID != log.ID {
		t.Fatalf("expected new log first after reload, got %s", got.ID)
	}
	if !got.Date.Equal(date) {
		t.Errorf("date changed across reload: %v vs %v", got.Date, date)
	}
	if got.Notes != "Heavy day" || got.TotalDuration != 55 {
		t.Errorf("log fields changed across reload: %+v", got)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("expected 2 logged exercises, got %d", len(got.Exercises))
	}
	if got.Exercises[0].ExerciseName != "Squats" || got.Exercises[0].Weight != 102.5 {
		t.Errorf("first logged exercise changed across reload: %+v", got.Exercises[0])
	}
	if got.Exercises[1].ExerciseName != "Leg Press" {
		t.Errorf("exercise order changed across reload: %+v", got.Exercises[1])
	}
}

func TestSQLiteStoreLogPatchMerge(t *testing.T) {
	store := setupTestSQLiteStore(t)

	logs, _ := store.GetAllLogs()
	target := logs[0]

	duration := 70
	if err := store.UpdateLog(target.ID, models.LogPatch{TotalDuration: &duration}); err != nil {
		t.Fatalf("failed to update log: %v", err)
	}

	logs, _ = store.GetAllLogs()
	if logs[0].TotalDuration != 70 {
		t.Errorf("expected duration 70, got %d", logs[0].TotalDuration)
	}
	if !logs[0].Date.Equal(target.Date) {
		t.Error("date changed by unrelated patch")
	}
	if len(logs[0].Exercises) != len(target.Exercises) {
		t.Error("exercise snapshot changed by unrelated patch")
	}

	exercises := []models.LoggedExercise{
		{ExerciseID: "1", ExerciseName: "Bench Press", Category: models.CategoryChest, Sets: 3, Reps: 8, Weight: 65, Duration: 12},
	}
	if err := store.UpdateLog(target.ID, models.LogPatch{Exercises: &exercises}); err != nil {
		t.Fatalf("failed to replace log exercises: %v", err)
	}
	logs, _ = store.GetAllLogs()
	if len(logs[0].Exercises) != 1 || logs[0].Exercises[0].Weight != 65 {
		t.Errorf("expected replaced exercise list, got %v", logs[0].Exercises)
	}
}

func TestSQLiteStoreUnknownIDIsNoOp(t *testing.T) {
	store := setupTestSQLiteStore(t)

	notes := "ghost"
	if err := store.UpdateLog("no-such-id", models.LogPatch{Notes: &notes}); err != nil {
		t.Errorf("expected nil error updating unknown log, got %v", err)
	}
	if err := store.DeleteLog("no-such-id"); err != nil {
		t.Errorf("expected nil error deleting unknown log, got %v", err)
	}
	if err := store.UpdatePlan("no-such-id", models.PlanPatch{Name: &notes}); err != nil {
		t.Errorf("expected nil error updating unknown plan, got %v", err)
	}
	if err := store.UpdateExercise("1", "no-such-id", models.ExercisePatch{Name: &notes}); err != nil {
		t.Errorf("expected nil error updating unknown exercise, got %v", err)
	}
}

func TestSQLiteStoreUser(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, found, err := store.GetUser(); err != nil || found {
		t.Fatalf("expected no user on fresh store, found=%v err=%v", found, err)
	}

	if err := store.SaveUser(models.User{ID: "u-1", Email: "sam@example.com", Name: "sam", FitnessGoal: "strength"}); err != nil {
		t.Fatalf("failed to save user: %v", err)
	}

	// saving again replaces the single session identity
	if err := store.SaveUser(models.User{ID: "u-2", Email: "alex@example.com", Name: "alex"}); err != nil {
		t.Fatalf("failed to replace user: %v", err)
	}

	got, found, err := store.GetUser()
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if !found || got.ID != "u-2" || got.Email != "alex@example.com" {
		t.Errorf("unexpected user: found=%v %+v", found, got)
	}

	if err := store.DeleteUser(); err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}
	if _, found, _ := store.GetUser(); found {
		t.Error("expected user to be gone after delete")
	}
}
