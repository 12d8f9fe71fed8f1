// Package manifest records pipeline runs and their per-stage outcomes
// in a SQLite database inside the working directory.
package manifest

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Stage is the recorded outcome of one pipeline stage.
type Stage struct {
	// Name of the stage, eg "reference-retrieval"
	Name string

	// Status is "ran" or "skipped"
	Status string

	// Artifact is the path the stage produced, if any
	Artifact string
}

// Run is one recorded pipeline run.
type Run struct {
	ID       int64
	Started  time.Time
	Finished time.Time
	Stages   []Stage
}

// Store manages the run manifest SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the manifest database at path, creating the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started TEXT NOT NULL,
			finished TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS stages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			artifact TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stages_run_id ON stages(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun inserts a new run row and returns its id.
func (s *Store) BeginRun() (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (started) VALUES (?)`,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run start: %w", err)
	}
	return res.LastInsertId()
}

// RecordStage appends a stage outcome to a run.
func (s *Store) RecordStage(runID int64, name, status, artifact string) error {
	_, err := s.db.Exec(
		`INSERT INTO stages (run_id, name, status, artifact) VALUES (?, ?, ?, ?)`,
		runID, name, status, artifact,
	)
	if err != nil {
		return fmt.Errorf("recording stage %s: %w", name, err)
	}
	return nil
}

// FinishRun stamps a run's finish time.
func (s *Store) FinishRun(runID int64) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), runID,
	)
	if err != nil {
		return fmt.Errorf("recording run finish: %w", err)
	}
	return nil
}

// Runs returns every recorded run, oldest first, stages included.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT id, started, COALESCE(finished, '') FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, finished string
		if err := rows.Scan(&r.ID, &started, &finished); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Started, _ = time.Parse(time.RFC3339, started)
		if finished != "" {
			r.Finished, _ = time.Parse(time.RFC3339, finished)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		stages, err := s.runStages(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Stages = stages
	}

	return runs, nil
}

func (s *Store) runStages(runID int64) ([]Stage, error) {
	rows, err := s.db.Query(
		`SELECT name, status, COALESCE(artifact, '') FROM stages WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stages: %w", err)
	}
	defer rows.Close()

	var stages []Stage
	for rows.Next() {
		var st Stage
		if err := rows.Scan(&st.Name, &st.Status, &st.Artifact); err != nil {
			return nil, fmt.Errorf("scanning stage: %w", err)
		}
		stages = append(stages, st)
	}
	return stages, rows.Err()
}
