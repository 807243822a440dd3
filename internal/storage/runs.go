package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run kinds.
const (
	KindCycle    = "cycle"
	KindScramble = "scramble"
)

// Run is one recorded harness or scramble run.
type Run struct {
	RunID       string
	Kind        string
	Sequence    string // Move names separated by spaces
	MoveCap     *int64
	Moves       int64
	Repetitions int64
	Solved      bool
	Seed        *uint64
	StartedAt   time.Time
	DurationMs  int64
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and returns its generated ID.
// StartedAt defaults to now when zero.
func (r *RunRepository) Create(run Run) (string, error) {
	id := uuid.New().String()
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	var seed *int64
	if run.Seed != nil {
		v := int64(*run.Seed)
		seed = &v
	}

	_, err := r.db.Exec(`
		INSERT INTO runs (run_id, kind, sequence, move_cap, moves, repetitions, solved, seed, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, run.Kind, run.Sequence, run.MoveCap, run.Moves, run.Repetitions,
		run.Solved, seed, startedAt.UTC().Format(timeLayout), run.DurationMs)

	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}

	return id, nil
}

// timeLayout keeps a fixed width so started_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `run_id, kind, sequence, move_cap, moves, repetitions, solved, seed, started_at, duration_ms`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var startedAtStr string
	var seed sql.NullInt64

	err := row.Scan(
		&run.RunID, &run.Kind, &run.Sequence, &run.MoveCap,
		&run.Moves, &run.Repetitions, &run.Solved, &seed,
		&startedAtStr, &run.DurationMs,
	)
	if err != nil {
		return Run{}, err
	}

	run.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if seed.Valid {
		v := uint64(seed.Int64)
		run.Seed = &v
	}

	return run, nil
}

// Get retrieves a run by ID. It returns nil if no such run exists.
func (r *RunRepository) Get(runID string) (*Run, error) {
	row := r.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &run, nil
}

// Latest retrieves the most recent run, or nil if there are none.
func (r *RunRepository) Latest() (*Run, error) {
	row := r.db.QueryRow(`SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC LIMIT 1`)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	return &run, nil
}

// List retrieves recent runs, newest first.
func (r *RunRepository) List(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// Count returns the number of stored runs.
func (r *RunRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Delete deletes a run.
func (r *RunRepository) Delete(runID string) error {
	_, err := r.db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}
