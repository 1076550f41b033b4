package runindex

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	config_hash  TEXT NOT NULL,
	algorithm    TEXT NOT NULL,
	model_id     TEXT NOT NULL,
	status       TEXT NOT NULL,
	last_step    INTEGER NOT NULL DEFAULT 0,
	event_log    TEXT,
	started_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);
`

// #endregion schema

// #region statuses

// Run statuses. A run is created as running and ends in exactly one of the
// terminal states.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// #endregion statuses

// #region run-record

// RunRecord is one row of the run registry: the durable, queryable summary
// of a training run. The event log stays the canonical telemetry record;
// this index exists so tools can list and resume runs without replaying
// every log.
type RunRecord struct {
	RunID      string
	ConfigHash string
	Algorithm  string
	ModelID    string
	Status     string
	LastStep   int
	EventLog   string
	StartedAt  time.Time
	UpdatedAt  time.Time
}

// #endregion run-record

// #region store

// Store manages the run registry in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region create

// CreateRun registers a new run as running. Re-registering an existing
// run id (a resume) refreshes its status and timestamps in place.
func (s *Store) CreateRun(rec RunRecord) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	started := rec.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, config_hash, algorithm, model_id, status, last_step, event_log, started_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
			status = excluded.status,
			last_step = excluded.last_step,
			updated_at = excluded.updated_at`,
		rec.RunID, rec.ConfigHash, rec.Algorithm, rec.ModelID, StatusRunning,
		rec.LastStep, rec.EventLog, started.Format(time.RFC3339Nano), now,
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// #endregion create

// #region update

// UpdateProgress advances a run's last recorded step.
func (s *Store) UpdateProgress(runID string, lastStep int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET last_step = ?, updated_at = ? WHERE run_id = ?`,
		lastStep, time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

// SetStatus moves a run to a terminal (or back to running) status.
func (s *Store) SetStatus(runID, status string, lastStep int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET status = ?, last_step = ?, updated_at = ? WHERE run_id = ?`,
		status, lastStep, time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}

// #endregion update

// #region queries

// GetRun retrieves a single run by id.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT run_id, config_hash, algorithm, model_id, status, last_step, event_log, started_at, updated_at
		 FROM runs WHERE run_id = ?`, runID,
	)
	return scanRun(row)
}

// ListRuns returns the most recently updated runs.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, config_hash, algorithm, model_id, status, last_step, event_log, started_at, updated_at
		 FROM runs ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Resumable returns interrupted runs: still marked running (crashed) or
// failed with progress past step zero.
func (s *Store) Resumable() ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, config_hash, algorithm, model_id, status, last_step, event_log, started_at, updated_at
		 FROM runs WHERE status IN (?, ?) AND last_step > 0 ORDER BY updated_at DESC`,
		StatusRunning, StatusFailed,
	)
	if err != nil {
		return nil, fmt.Errorf("list resumable: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion queries

// #region helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (RunRecord, error) {
	var rec RunRecord
	var eventLog sql.NullString
	var startedStr, updatedStr string
	err := row.Scan(&rec.RunID, &rec.ConfigHash, &rec.Algorithm, &rec.ModelID,
		&rec.Status, &rec.LastStep, &eventLog, &startedStr, &updatedStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("scan run: %w", err)
	}
	if eventLog.Valid {
		rec.EventLog = eventLog.String
	}
	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return rec, nil
}

// #endregion helpers
