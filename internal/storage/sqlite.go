// Package storage keeps a journal of finished attempts in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The default database lives in memory and disappears with the process.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Outcome values stored in the journal.
const (
	OutcomeGameOver      = "game_over"
	OutcomeLevelComplete = "level_complete"
)

// Store manages the SQLite database connection for the attempt journal.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Attempt is one finished run of a level.
type Attempt struct {
	ID        int64
	GameID    string // "runner" or "runner_endless"
	Level     int
	LevelID   string
	Outcome   string
	Score     int
	Frames    int
	Attempt   int // 1-based attempt number within the session
	CreatedAt time.Time
}

// LevelSummary aggregates the attempts of one level.
type LevelSummary struct {
	GameID      string
	LevelID     string
	Attempts    int
	Completions int
	BestScore   int
	AvgScore    float64
}

// Open creates or opens a SQLite database. An empty dsn or MemoryDSN opens an
// in-memory database; anything else is a file path whose parent directories
// are created as needed.
func Open(dsn string) (*Store, error) {
	memory := dsn == "" || dsn == MemoryDSN
	if memory {
		dsn = MemoryDSN
	} else {
		path, err := expandHome(dsn)
		if err != nil {
			return nil, err
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			level_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			attempt INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_game_id ON attempts(game_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(game_id, score DESC);
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

// RecordAttempt stores a finished attempt and returns its row ID.
func (s *Store) RecordAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO attempts (game_id, level, level_id, outcome, score, frames, attempt)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.GameID, a.Level, a.LevelID, a.Outcome, a.Score, a.Frames, a.Attempt,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopAttempts retrieves the best N attempts for the given game.
// Ties keep insertion order.
func (s *Store) TopAttempts(gameID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level, level_id, outcome, score, frames, attempt, created_at
		 FROM attempts
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.GameID, &a.Level, &a.LevelID, &a.Outcome,
			&a.Score, &a.Frames, &a.Attempt, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest score for the given game, or 0 without attempts.
func (s *Store) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM attempts WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Count returns the number of recorded attempts.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM attempts").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count attempts: %w", err)
	}
	return n, nil
}

// Summary aggregates attempts per game and level, ordered by game then level.
func (s *Store) Summary() ([]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT game_id, level_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(score), AVG(score)
		 FROM attempts
		 GROUP BY game_id, level_id
		 ORDER BY game_id, MIN(level), level_id`,
		OutcomeLevelComplete,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize attempts: %w", err)
	}
	defer rows.Close()

	var out []LevelSummary
	for rows.Next() {
		var ls LevelSummary
		if err := rows.Scan(&ls.GameID, &ls.LevelID, &ls.Attempts, &ls.Completions,
			&ls.BestScore, &ls.AvgScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		out = append(out, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// parseTime handles both time.Time and string datetime values.
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
