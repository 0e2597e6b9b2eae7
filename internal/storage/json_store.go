package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/acormier/liftlog/internal/models"
)

// JSONStore persists state as three independently-keyed JSON snapshots in the
// config directory: user.json, plans.json, and logs.json. Each mutation
// rewrites only the affected snapshot.
type JSONStore struct {
	path   string
	loaded bool
	user   *models.User
	plans  []models.WorkoutPlan
	logs   []models.WorkoutLog
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) dir() string {
	return filepath.Dir(s.path)
}

func (s *JSONStore) userFile() string  { return filepath.Join(s.dir(), "user.json") }
func (s *JSONStore) plansFile() string { return filepath.Join(s.dir(), "plans.json") }
func (s *JSONStore) logsFile() string  { return filepath.Join(s.dir(), "logs.json") }

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.plansFile()); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.dir())
	}

	s.plans = SeedPlans()
	s.logs = SeedLogs(time.Now())
	s.loaded = true

	if err := s.savePlans(); err != nil {
		return err
	}
	return s.saveLogs()
}

// Load reads the persisted snapshots. When no plan/log state exists yet the
// store is seeded with sample data and the seed is persisted immediately.
func (s *JSONStore) Load() error {
	if err := os.MkdirAll(s.dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	plansExist := fileExists(s.plansFile())
	logsExist := fileExists(s.logsFile())

	if plansExist && logsExist {
		if err := readJSON(s.plansFile(), &s.plans); err != nil {
			return fmt.Errorf("failed to load plans: %w", err)
		}
		if err := readJSON(s.logsFile(), &s.logs); err != nil {
			return fmt.Errorf("failed to load logs: %w", err)
		}
	} else {
		s.plans = SeedPlans()
		s.logs = SeedLogs(time.Now())
		s.loaded = true
		if err := s.savePlans(); err != nil {
			return err
		}
		if err := s.saveLogs(); err != nil {
			return err
		}
	}

	if fileExists(s.userFile()) {
		var user models.User
		if err := readJSON(s.userFile(), &user); err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		s.user = &user
	}

	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) savePlans() error {
	return writeJSON(s.plansFile(), s.plans)
}

func (s *JSONStore) saveLogs() error {
	return writeJSON(s.logsFile(), s.logs)
}

func (s *JSONStore) saveUser() error {
	return writeJSON(s.userFile(), s.user)
}

func (s *JSONStore) checkLoaded() error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetUser() (models.User, bool, error) {
	if err := s.checkLoaded(); err != nil {
		return models.User{}, false, err
	}
	if s.user == nil {
		return models.User{}, false, nil
	}
	return *s.user, true, nil
}

func (s *JSONStore) SaveUser(user models.User) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	s.user = &user
	return s.saveUser()
}

func (s *JSONStore) DeleteUser() error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	s.user = nil
	if fileExists(s.userFile()) {
		if err := os.Remove(s.userFile()); err != nil {
			return fmt.Errorf("failed to remove user storage: %w", err)
		}
	}
	return nil
}

func (s *JSONStore) GetAllPlans() ([]models.WorkoutPlan, error) {
	if err := s.checkLoaded(); err != nil {
		return nil, err
	}
	plans := make([]models.WorkoutPlan, len(s.plans))
	copy(plans, s.plans)
	return plans, nil
}

func (s *JSONStore) GetPlan(id string) (models.WorkoutPlan, bool, error) {
	if err := s.checkLoaded(); err != nil {
		return models.WorkoutPlan{}, false, err
	}
	for _, p := range s.plans {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.WorkoutPlan{}, false, nil
}

func (s *JSONStore) AddPlan(name, description string) (models.WorkoutPlan, error) {
	if err := s.checkLoaded(); err != nil {
		return models.WorkoutPlan{}, err
	}

	plan := models.WorkoutPlan{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Exercises:   []models.Exercise{},
		CreatedAt:   time.Now(),
	}
	s.plans = append(s.plans, plan)
	return plan, s.savePlans()
}

func (s *JSONStore) UpdatePlan(id string, patch models.PlanPatch) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.plans {
		if s.plans[i].ID == id {
			patch.Apply(&s.plans[i])
			return s.savePlans()
		}
	}
	return nil // unknown id: no-op
}

func (s *JSONStore) DeletePlan(id string) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return s.savePlans()
		}
	}
	return nil
}

func (s *JSONStore) AddExercise(planID string, exercise models.Exercise) (models.Exercise, error) {
	if err := s.checkLoaded(); err != nil {
		return models.Exercise{}, err
	}
	for i := range s.plans {
		if s.plans[i].ID == planID {
			exercise.ID = uuid.New().String()
			s.plans[i].Exercises = append(s.plans[i].Exercises, exercise)
			return exercise, s.savePlans()
		}
	}
	return models.Exercise{}, nil
}

func (s *JSONStore) UpdateExercise(planID, exerciseID string, patch models.ExercisePatch) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.plans {
		if s.plans[i].ID != planID {
			continue
		}
		for j := range s.plans[i].Exercises {
			if s.plans[i].Exercises[j].ID == exerciseID {
				patch.Apply(&s.plans[i].Exercises[j])
				return s.savePlans()
			}
		}
		return nil
	}
	return nil
}

func (s *JSONStore) DeleteExercise(planID, exerciseID string) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.plans {
		if s.plans[i].ID != planID {
			continue
		}
		for j := range s.plans[i].Exercises {
			if s.plans[i].Exercises[j].ID == exerciseID {
				s.plans[i].Exercises = append(s.plans[i].Exercises[:j], s.plans[i].Exercises[j+1:]...)
				return s.savePlans()
			}
		}
		return nil
	}
	return nil
}

func (s *JSONStore) GetAllLogs() ([]models.WorkoutLog, error) {
	if err := s.checkLoaded(); err != nil {
		return nil, err
	}
	logs := make([]models.WorkoutLog, len(s.logs))
	copy(logs, s.logs)
	return logs, nil
}

func (s *JSONStore) AddLog(draft models.LogDraft) (models.WorkoutLog, error) {
	if err := s.checkLoaded(); err != nil {
		return models.WorkoutLog{}, err
	}

	log := models.WorkoutLog{
		ID:            uuid.New().String(),
		Date:          draft.Date,
		Exercises:     draft.Exercises,
		TotalDuration: draft.TotalDuration,
		Notes:         draft.Notes,
	}
	if log.Exercises == nil {
		log.Exercises = []models.LoggedExercise{}
	}
	// Most-recent-first is the canonical storage order
	s.logs = append([]models.WorkoutLog{log}, s.logs...)
	return log, s.saveLogs()
}

func (s *JSONStore) UpdateLog(id string, patch models.LogPatch) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.logs {
		if s.logs[i].ID == id {
			patch.Apply(&s.logs[i])
			return s.saveLogs()
		}
	}
	return nil
}

func (s *JSONStore) DeleteLog(id string) error {
	if err := s.checkLoaded(); err != nil {
		return err
	}
	for i := range s.logs {
		if s.logs[i].ID == id {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			return s.saveLogs()
		}
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
