// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Winner codes stored with each match.
const (
	WinnerNone  = 0
	WinnerLeft  = 1
	WinnerRight = 2
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents a single finished match.
type MatchRecord struct {
	ID          int64
	MatchID     string // assigned on save when empty
	LeftDriver  string
	RightDriver string
	LeftScore   int
	RightScore  int
	Winner      int // WinnerLeft or WinnerRight
	WinScore    int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Totals contains aggregated statistics over all stored matches.
type Totals struct {
	Matches    int
	LeftWins   int
	RightWins  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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
	// SQLite allows one writer; SSH sessions share this store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			left_driver TEXT NOT NULL,
			right_driver TEXT NOT NULL,
			left_score INTEGER NOT NULL DEFAULT 0,
			right_score INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL,
			win_score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
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

// SaveResult records a finished match and returns its match ID.
func (s *Store) SaveResult(rec MatchRecord) (string, error) {
	if rec.Winner != WinnerLeft && rec.Winner != WinnerRight {
		return "", fmt.Errorf("storage: match has no winner (code %d)", rec.Winner)
	}
	if rec.MatchID == "" {
		rec.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, left_driver, right_driver, left_score, right_score, winner, win_score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID,
		rec.LeftDriver,
		rec.RightDriver,
		rec.LeftScore,
		rec.RightScore,
		rec.Winner,
		rec.WinScore,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	return rec.MatchID, nil
}

// ResultByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) ResultByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, left_driver, right_driver, left_score, right_score,
		        winner, win_score, duration_ms, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &rec, nil
}

// RecentResults retrieves the most recent matches, newest first.
func (s *Store) RecentResults(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, left_driver, right_driver, left_score, right_score,
		        winner, win_score, duration_ms, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinTotals returns how many matches each side has won.
func (s *Store) WinTotals() (Totals, error) {
	var t Totals
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM matches`,
		WinnerLeft, WinnerRight,
	).Scan(&t.Matches, &t.LeftWins, &t.RightWins, &lastPlayed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get win totals: %w", err)
	}

	t.LastPlayed = parseTime(lastPlayed)
	return t, nil
}

// ClearResults deletes all stored matches.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (MatchRecord, error) {
	var rec MatchRecord
	var durationMS int64
	var createdAt any

	err := row.Scan(
		&rec.ID,
		&rec.MatchID,
		&rec.LeftDriver,
		&rec.RightDriver,
		&rec.LeftScore,
		&rec.RightScore,
		&rec.Winner,
		&rec.WinScore,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return MatchRecord{}, err
	}

	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
