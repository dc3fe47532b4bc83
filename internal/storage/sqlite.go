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

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// ErrNotFound is returned when a match lookup has no result.
var ErrNotFound = errors.New("storage: match not found")

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is a single finished match.
type MatchRecord struct {
	ID        int64
	MatchID   string
	Winner    int // 1 or 2
	Score1    int
	Score2    int
	Rounds    int
	CreatedAt time.Time
}

// Summary converts the record back into the shape games report.
func (r MatchRecord) Summary() core.MatchSummary {
	return core.MatchSummary{
		ID:     r.MatchID,
		Winner: r.Winner,
		Score1: r.Score1,
		Score2: r.Score2,
		Rounds: r.Rounds,
	}
}

// Stats contains aggregated statistics over all stored matches.
type Stats struct {
	Matches     int
	Player1Wins int
	Player2Wins int
	TotalRounds int
	LongestGame int // Most rounds in a single match
}

// AvgRounds returns the mean number of rounds per match.
func (s Stats) AvgRounds() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Matches)
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record. Saving the same match ID twice fails.
func (s *Store) SaveMatch(m core.MatchSummary) (int64, error) {
	if m.ID == "" {
		return 0, errors.New("storage: match summary has no id")
	}
	if m.Winner != 1 && m.Winner != 2 {
		return 0, fmt.Errorf("storage: invalid winner %d", m.Winner)
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (match_id, winner, score1, score2, rounds)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Winner, m.Score1, m.Score2, m.Rounds,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match by its match ID.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, winner, score1, score2, rounds, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	r, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, winner, score1, score2, rounds, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GetStats retrieves aggregated statistics over all matches.
func (s *Store) GetStats() (*Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(rounds), 0),
			COALESCE(MAX(rounds), 0)
		 FROM matches`,
	).Scan(&st.Matches, &st.Player1Wins, &st.Player2Wins, &st.TotalRounds, &st.LongestGame)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return &st, nil
}

// ClearMatches deletes the whole match history.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var r MatchRecord
	var createdAt any
	if err := sc.Scan(&r.ID, &r.MatchID, &r.Winner, &r.Score1, &r.Score2, &r.Rounds, &createdAt); err != nil {
		return MatchRecord{}, err
	}

	// The driver may hand back either a time.Time or the raw text
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
