// Package archive persists completed decode runs in SQLite for later
// inspection. It is write-once record keeping: nothing in the decode path
// ever reads archived state back, and a session never resumes from it.
package archive

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"peeler/internal/session"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decode_runs (
	run_id            TEXT PRIMARY KEY,
	original_text     TEXT NOT NULL,
	final_text        TEXT NOT NULL,
	status            TEXT NOT NULL,
	reason            TEXT,
	iterations        INTEGER NOT NULL,
	max_iterations    INTEGER NOT NULL,
	encoding_chain    TEXT NOT NULL,
	confidence_scores TEXT NOT NULL,
	history           TEXT NOT NULL,
	created_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decode_runs_created
ON decode_runs(created_at);
`

// #endregion schema

// #region store-struct

// Store manages the decode-run archive in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the archive database and runs migrations.
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

// #endregion store-struct

// #region save-run

// SaveRun inserts one completed run export.
func (s *Store) SaveRun(e session.Export) error {
	chainJSON, err := json.Marshal(e.EncodingChain)
	if err != nil {
		return fmt.Errorf("marshal chain: %w", err)
	}
	scoresJSON, err := json.Marshal(e.ConfidenceScores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	historyJSON, err := json.Marshal(e.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO decode_runs
		 (run_id, original_text, final_text, status, reason, iterations,
		  max_iterations, encoding_chain, confidence_scores, history, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.OriginalText, e.FinalText, string(e.Status),
		nullIfEmpty(e.Reason), e.Iterations, e.MaxIterations,
		string(chainJSON), string(scoresJSON), string(historyJSON),
		e.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// #endregion save-run

// #region get-run

// GetRun retrieves one archived run by ID.
func (s *Store) GetRun(runID string) (session.Export, error) {
	row := s.db.QueryRow(
		`SELECT run_id, original_text, final_text, status, reason, iterations,
		        max_iterations, encoding_chain, confidence_scores, history, created_at
		 FROM decode_runs WHERE run_id = ?`, runID,
	)
	e, err := scanRun(row)
	if err != nil {
		return session.Export{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return e, nil
}

// #endregion get-run

// #region list-runs

// ListRuns returns the most recent archived runs.
func (s *Store) ListRuns(limit int) ([]session.Export, error) {
	rows, err := s.db.Query(
		`SELECT run_id, original_text, final_text, status, reason, iterations,
		        max_iterations, encoding_chain, confidence_scores, history, created_at
		 FROM decode_runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []session.Export
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, e)
	}
	return runs, rows.Err()
}

// #endregion list-runs

// #region helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (session.Export, error) {
	var e session.Export
	var reason sql.NullString
	var chainJSON, scoresJSON, historyJSON, createdStr string

	err := row.Scan(&e.RunID, &e.OriginalText, &e.FinalText, &e.Status,
		&reason, &e.Iterations, &e.MaxIterations,
		&chainJSON, &scoresJSON, &historyJSON, &createdStr)
	if err != nil {
		return session.Export{}, err
	}

	if reason.Valid {
		e.Reason = reason.String
	}
	if err := json.Unmarshal([]byte(chainJSON), &e.EncodingChain); err != nil {
		return session.Export{}, fmt.Errorf("unmarshal chain: %w", err)
	}
	if err := json.Unmarshal([]byte(scoresJSON), &e.ConfidenceScores); err != nil {
		return session.Export{}, fmt.Errorf("unmarshal scores: %w", err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &e.History); err != nil {
		return session.Export{}, fmt.Errorf("unmarshal history: %w", err)
	}
	e.StartedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	e.Complete = e.Status == session.StatusComplete

	return e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
