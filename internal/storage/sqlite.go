// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hangman/internal/config"
)

// Run outcomes recorded with each entry.
const (
	OutcomeGameOver  = "game_over"  // Ran out of guesses
	OutcomeCompleted = "completed"  // Beat every level
	OutcomeAbandoned = "abandoned"  // Quit or restarted mid-run
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run represents a single finished run.
type Run struct {
	ID        int64
	SessionID string
	Pack      string
	Player    string
	Score     int
	Level     int // Highest 1-based level reached
	Outcome   string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			pack TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack ON runs(pack);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (session_id, pack, player, score, level, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.SessionID, run.Pack, run.Player, run.Score, run.Level, run.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, session_id, pack, player, score, level, outcome, created_at`

// TopRuns retrieves the top N runs for the given pack.
// Results are ordered by score descending, then by level reached.
func (s *Store) TopRuns(pack string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pack = ?
		 ORDER BY score DESC, level DESC, id ASC
		 LIMIT ?`,
		pack, limit,
	)
}

// SessionRuns retrieves the runs of one session, newest first.
func (s *Store) SessionRuns(sessionID string) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE session_id = ?
		 ORDER BY id DESC`,
		sessionID,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Pack, &r.Player, &r.Score, &r.Level, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the given pack.
// Returns 0 and false if no runs exist.
func (s *Store) HighScore(pack string) (int, bool, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE pack = ?",
		pack,
	).Scan(&score)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, false, nil
	}

	return int(score.Int64), true, nil
}

// ClearRuns deletes all runs for the given pack.
func (s *Store) ClearRuns(pack string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// PackStats contains aggregated statistics for a word pack.
type PackStats struct {
	Pack       string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	Completed  int // Runs that beat every level
	LastPlayed time.Time
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(pack string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(outcome = ?), 0), MAX(created_at)
		 FROM runs WHERE pack = ?`,
		OutcomeCompleted, pack,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &stats.Completed, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllPackStats retrieves statistics for all packs that have been played.
func (s *Store) GetAllPackStats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack, COUNT(*), MAX(score), AVG(score), MAX(level), SUM(outcome = ?), MAX(created_at)
		 FROM runs
		 GROUP BY pack`,
		OutcomeCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var lastPlayed any
		if err := rows.Scan(&ps.Pack, &ps.RunsCount, &ps.HighScore, &ps.AvgScore, &ps.BestLevel, &ps.Completed, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Pack] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
