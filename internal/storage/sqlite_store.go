package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/acormier/liftlog/internal/models"
)

// schemaVersion is the current SQLite schema version. Bump it together with a
// change to the schema statements below.
const schemaVersion = 1

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		fitness_goal TEXT NOT NULL DEFAULT '',
		avatar TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id TEXT NOT NULL,
		plan_id TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		default_sets INTEGER NOT NULL,
		default_reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (plan_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS workout_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		total_duration INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		seq INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS logged_exercises (
		log_id TEXT NOT NULL REFERENCES workout_logs(id) ON DELETE CASCADE,
		exercise_id TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		category TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight REAL NOT NULL,
		duration INTEGER NOT NULL,
		position INTEGER NOT NULL
	)`,
}

// SQLiteStore persists state in a local SQLite database. Workout log recency
// is tracked with a monotonically increasing seq column so the canonical
// most-recent-first order survives reloads.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return s.seedIfEmpty()
}

// Load opens the database, creating and seeding it first if it does not exist
// yet. Schema version mismatches are surfaced as errors rather than migrated.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Init()
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return s.seedIfEmpty()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM schema_version").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) validateSchemaVersion() error {
	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	return nil
}

// seedIfEmpty installs the deterministic sample data when no plans or logs
// have been persisted yet.
func (s *SQLiteStore) seedIfEmpty() error {
	var planCount, logCount int
	if err := s.db.QueryRow("SELECT count(*) FROM plans").Scan(&planCount); err != nil {
		return err
	}
	if err := s.db.QueryRow("SELECT count(*) FROM workout_logs").Scan(&logCount); err != nil {
		return err
	}
	if planCount > 0 || logCount > 0 {
		return nil
	}

	for _, plan := range SeedPlans() {
		if err := s.insertPlan(plan); err != nil {
			return fmt.Errorf("failed to seed plans: %w", err)
		}
	}

	logs := SeedLogs(time.Now())
	// Seed logs are ordered most-recent-first; insert oldest first so seq
	// assignment matches recency.
	for i := len(logs) - 1; i >= 0; i-- {
		if err := s.insertLog(logs[i]); err != nil {
			return fmt.Errorf("failed to seed logs: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) GetUser() (models.User, bool, error) {
	row := s.db.QueryRow("SELECT id, email, name, fitness_goal, avatar FROM users LIMIT 1")

	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.FitnessGoal, &u.Avatar)
	if err == sql.ErrNoRows {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *SQLiteStore) SaveUser(user models.User) error {
	// Single active user: replace whatever session identity exists
	if _, err := s.db.Exec("DELETE FROM users"); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, name, fitness_goal, avatar)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, user.Name, user.FitnessGoal, user.Avatar)
	return err
}

func (s *SQLiteStore) DeleteUser() error {
	_, err := s.db.Exec("DELETE FROM users")
	return err
}

func (s *SQLiteStore) insertPlan(plan models.WorkoutPlan) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO plans (id, name, description, created_at)
		VALUES (?, ?, ?, ?)`,
		plan.ID, plan.Name, plan.Description, plan.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return err
	}

	for i, ex := range plan.Exercises {
		_, err = tx.Exec(`
			INSERT INTO exercises (id, plan_id, name, category, default_sets, default_reps, weight, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			ex.ID, plan.ID, ex.Name, string(ex.Category), ex.DefaultSets, ex.DefaultReps, ex.Weight, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) scanPlanRow(row *sql.Row) (models.WorkoutPlan, error) {
	var p models.WorkoutPlan
	var createdAt string

	err := row.Scan(&p.ID, &p.Name, &p.Description, &createdAt)
	if err != nil {
		return models.WorkoutPlan{}, err
	}

	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) planExercises(planID string) ([]models.Exercise, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, default_sets, default_reps, weight
		FROM exercises WHERE plan_id = ? ORDER BY position`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		var category string
		if err := rows.Scan(&e.ID, &e.Name, &category, &e.DefaultSets, &e.DefaultReps, &e.Weight); err != nil {
			return nil, err
		}
		e.Category = models.Category(category)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (s *SQLiteStore) GetAllPlans() ([]models.WorkoutPlan, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, created_at
		FROM plans ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []models.WorkoutPlan{}
	for rows.Next() {
		var p models.WorkoutPlan
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &createdAt); err != nil {
			return nil, err
		}
		p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		plans[i].Exercises, err = s.planExercises(plans[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (s *SQLiteStore) GetPlan(id string) (models.WorkoutPlan, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, created_at
		FROM plans WHERE id = ?`, id)

	p, err := s.scanPlanRow(row)
	if err == sql.ErrNoRows {
		return models.WorkoutPlan{}, false, nil
	}
	if err != nil {
		return models.WorkoutPlan{}, false, err
	}

	p.Exercises, err = s.planExercises(p.ID)
	if err != nil {
		return models.WorkoutPlan{}, false, err
	}
	return p, true, nil
}

func (s *SQLiteStore) AddPlan(name, description string) (models.WorkoutPlan, error) {
	plan := models.WorkoutPlan{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Exercises:   []models.Exercise{},
		CreatedAt:   time.Now(),
	}
	if err := s.insertPlan(plan); err != nil {
		return models.WorkoutPlan{}, err
	}
	return plan, nil
}

func (s *SQLiteStore) UpdatePlan(id string, patch models.PlanPatch) error {
	plan, found, err := s.GetPlan(id)
	if err != nil {
		return err
	}
	if !found {
		return nil // unknown id: no-op
	}

	patch.Apply(&plan)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE plans SET name = ?, description = ? WHERE id = ?`,
		plan.Name, plan.Description, plan.ID)
	if err != nil {
		return err
	}

	if patch.Exercises != nil {
		if _, err := tx.Exec("DELETE FROM exercises WHERE plan_id = ?", plan.ID); err != nil {
			return err
		}
		for i, ex := range plan.Exercises {
			_, err = tx.Exec(`
				INSERT INTO exercises (id, plan_id, name, category, default_sets, default_reps, weight, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				ex.ID, plan.ID, ex.Name, string(ex.Category), ex.DefaultSets, ex.DefaultReps, ex.Weight, i)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeletePlan(id string) error {
	// ON DELETE CASCADE removes the plan's exercises; workout logs keep their
	// snapshots untouched
	_, err := s.db.Exec("DELETE FROM plans WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) AddExercise(planID string, exercise models.Exercise) (models.Exercise, error) {
	_, found, err := s.GetPlan(planID)
	if err != nil {
		return models.Exercise{}, err
	}
	if !found {
		return models.Exercise{}, nil
	}

	var position int
	err = s.db.QueryRow("SELECT count(*) FROM exercises WHERE plan_id = ?", planID).Scan(&position)
	if err != nil {
		return models.Exercise{}, err
	}

	exercise.ID = uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO exercises (id, plan_id, name, category, default_sets, default_reps, weight, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		exercise.ID, planID, exercise.Name, string(exercise.Category),
		exercise.DefaultSets, exercise.DefaultReps, exercise.Weight, position)
	if err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (s *SQLiteStore) UpdateExercise(planID, exerciseID string, patch models.ExercisePatch) error {
	row := s.db.QueryRow(`
		SELECT id, name, category, default_sets, default_reps, weight
		FROM exercises WHERE plan_id = ? AND id = ?`, planID, exerciseID)

	var e models.Exercise
	var category string
	err := row.Scan(&e.ID, &e.Name, &category, &e.DefaultSets, &e.DefaultReps, &e.Weight)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	e.Category = models.Category(category)

	patch.Apply(&e)

	_, err = s.db.Exec(`
		UPDATE exercises SET name = ?, category = ?, default_sets = ?, default_reps = ?, weight = ?
		WHERE plan_id = ? AND id = ?`,
		e.Name, string(e.Category), e.DefaultSets, e.DefaultReps, e.Weight, planID, exerciseID)
	return err
}

func (s *SQLiteStore) DeleteExercise(planID, exerciseID string) error {
	_, err := s.db.Exec("DELETE FROM exercises WHERE plan_id = ? AND id = ?", planID, exerciseID)
	return err
}

func (s *SQLiteStore) insertLog(log models.WorkoutLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int
	if err := tx.QueryRow("SELECT coalesce(max(seq), 0) + 1 FROM workout_logs").Scan(&seq); err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO workout_logs (id, date, total_duration, notes, seq)
		VALUES (?, ?, ?, ?, ?)`,
		log.ID, log.Date.Format(time.RFC3339Nano), log.TotalDuration, log.Notes, seq)
	if err != nil {
		return err
	}

	for i, ex := range log.Exercises {
		_, err = tx.Exec(`
			INSERT INTO logged_exercises (log_id, exercise_id, exercise_name, category, sets, reps, weight, duration, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			log.ID, ex.ExerciseID, ex.ExerciseName, string(ex.Category), ex.Sets, ex.Reps, ex.Weight, ex.Duration, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) logExercises(logID string) ([]models.LoggedExercise, error) {
	rows, err := s.db.Query(`
		SELECT exercise_id, exercise_name, category, sets, reps, weight, duration
		FROM logged_exercises WHERE log_id = ? ORDER BY position`, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []models.LoggedExercise{}
	for rows.Next() {
		var e models.LoggedExercise
		var category string
		if err := rows.Scan(&e.ExerciseID, &e.ExerciseName, &category, &e.Sets, &e.Reps, &e.Weight, &e.Duration); err != nil {
			return nil, err
		}
		e.Category = models.Category(category)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (s *SQLiteStore) GetAllLogs() ([]models.WorkoutLog, error) {
	rows, err := s.db.Query(`
		SELECT id, date, total_duration, notes
		FROM workout_logs ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.WorkoutLog{}
	for rows.Next() {
		var l models.WorkoutLog
		var date string
		if err := rows.Scan(&l.ID, &date, &l.TotalDuration, &l.Notes); err != nil {
			return nil, err
		}
		l.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range logs {
		logs[i].Exercises, err = s.logExercises(logs[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return logs, nil
}

func (s *SQLiteStore) AddLog(draft models.LogDraft) (models.WorkoutLog, error) {
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
	if err := s.insertLog(log); err != nil {
		return models.WorkoutLog{}, err
	}
	return log, nil
}

func (s *SQLiteStore) UpdateLog(id string, patch models.LogPatch) error {
	row := s.db.QueryRow("SELECT id, date, total_duration, notes FROM workout_logs WHERE id = ?", id)

	var l models.WorkoutLog
	var date string
	err := row.Scan(&l.ID, &date, &l.TotalDuration, &l.Notes)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	l.Date, err = time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	l.Exercises, err = s.logExercises(id)
	if err != nil {
		return err
	}

	patch.Apply(&l)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE workout_logs SET date = ?, total_duration = ?, notes = ? WHERE id = ?`,
		l.Date.Format(time.RFC3339Nano), l.TotalDuration, l.Notes, id)
	if err != nil {
		return err
	}

	if patch.Exercises != nil {
		if _, err := tx.Exec("DELETE FROM logged_exercises WHERE log_id = ?", id); err != nil {
			return err
		}
		for i, ex := range l.Exercises {
			_, err = tx.Exec(`
				INSERT INTO logged_exercises (log_id, exercise_id, exercise_name, category, sets, reps, weight, duration, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, ex.ExerciseID, ex.ExerciseName, string(ex.Category), ex.Sets, ex.Reps, ex.Weight, ex.Duration, i)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteLog(id string) error {
	_, err := s.db.Exec("DELETE FROM workout_logs WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
