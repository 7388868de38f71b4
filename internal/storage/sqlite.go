// Package storage provides SQLite-based persistence for finished game results.
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

// sqliteTimeLayout is the format of CURRENT_TIMESTAMP values.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID        int64
	SessionID string
	BoardSize int
	Agent     string
	Score     int
	MaxTile   int
	Moves     int
	EndReason string
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one board size.
type Stats struct {
	BoardSize  int
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestTile   int
	LastPlayed time.Time
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			board_size INTEGER NOT NULL,
			agent TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_size ON results(board_size);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(board_size, score DESC);
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

// SaveResult records a finished session. An empty SessionID is filled in.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.SessionID == "" {
		r.SessionID = NewSessionID()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, board_size, agent, score, max_tile, moves, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.BoardSize, r.Agent, r.Score, r.MaxTile, r.Moves, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best results for a board size, highest score first.
func (s *Store) TopResults(boardSize, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, board_size, agent, score, max_tile, moves, end_reason, created_at
		 FROM results
		 WHERE board_size = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		boardSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.BoardSize,
			&r.Agent,
			&r.Score,
			&r.MaxTile,
			&r.Moves,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultBySession retrieves a result by its session ID.
// Returns nil without error when no such session was recorded.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	var r Result
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, session_id, board_size, agent, score, max_tile, moves, end_reason, created_at
		 FROM results
		 WHERE session_id = ?`,
		sessionID,
	).Scan(
		&r.ID,
		&r.SessionID,
		&r.BoardSize,
		&r.Agent,
		&r.Score,
		&r.MaxTile,
		&r.Moves,
		&r.EndReason,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// HighScore returns the highest score for a board size.
// Returns 0 if no results exist.
func (s *Store) HighScore(boardSize int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE board_size = ?",
		boardSize,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a board size.
func (s *Store) Stats(boardSize int) (*Stats, error) {
	stats := &Stats{BoardSize: boardSize}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(max_tile), 0)
		 FROM results WHERE board_size = ?`,
		boardSize,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestTile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE board_size = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		boardSize,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// BoardSizes returns every board size with at least one result, ascending.
func (s *Store) BoardSizes() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT board_size FROM results ORDER BY board_size`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board sizes: %w", err)
	}
	defer rows.Close()

	var sizes []int
	for rows.Next() {
		var size int
		if err := rows.Scan(&size); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sizes = append(sizes, size)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sizes, nil
}

// ClearResults deletes all results for a board size.
func (s *Store) ClearResults(boardSize int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE board_size = ?", boardSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
