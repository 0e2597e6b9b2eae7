package storage

import "github.com/acormier/liftlog/internal/models"

// Provider is the storage backend for the user profile, workout plans, and
// workout logs. Every mutator persists synchronously before returning; the
// mutation call is itself the persist point.
//
// Mutations referencing an unknown id are silent no-ops and return nil. This
// is deliberate: callers hold ids from prior reads, so the store stays
// forgiving rather than surfacing not-found errors. The policy applies
// uniformly to every id-keyed mutator.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// User
	GetUser() (models.User, bool, error)
	SaveUser(models.User) error
	DeleteUser() error

	// Plans
	GetAllPlans() ([]models.WorkoutPlan, error)
	GetPlan(id string) (models.WorkoutPlan, bool, error)
	AddPlan(name, description string) (models.WorkoutPlan, error)
	UpdatePlan(id string, patch models.PlanPatch) error
	DeletePlan(id string) error
	AddExercise(planID string, exercise models.Exercise) (models.Exercise, error)
	UpdateExercise(planID, exerciseID string, patch models.ExercisePatch) error
	DeleteExercise(planID, exerciseID string) error

	// Logs. GetAllLogs returns the canonical most-recent-first order;
	// AddLog inserts at the front.
	GetAllLogs() ([]models.WorkoutLog, error)
	AddLog(draft models.LogDraft) (models.WorkoutLog, error)
	UpdateLog(id string, patch models.LogPatch) error
	DeleteLog(id string) error

	// Utils
	GetConfigPath() string
}
