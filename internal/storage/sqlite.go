// Package storage keeps the session ledger of finished matches in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// MemoryDSN is an in-memory database that lives as long as its connection.
const MemoryDSN = ":memory:"

// ErrNotFound is returned when a match ID is not in the ledger.
var ErrNotFound = errors.New("storage: match not found")

// Store manages the SQLite connection of the ledger.
type Store struct {
	db *sql.DB
}

// MatchEntry is one finished match.
type MatchEntry struct {
	ID         int64
	MatchID    string
	LeftScore  int
	RightScore int
	Winner     string
	Ticks      int64
	Duration   time.Duration
	CreatedAt  time.Time
}

// Standings counts wins per side.
type Standings struct {
	Matches   int
	LeftWins  int
	RightWins int
}

// Open opens the ledger at dsn and runs migrations.
// An empty dsn means MemoryDSN. The pool is pinned to a single connection so
// an in-memory database survives for the life of the Store.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

// OpenMemory opens a fresh in-memory ledger.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. An in-memory ledger is discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match and returns its row ID.
func (s *Store) SaveMatch(e MatchEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (match_id, left_score, right_score, winner, ticks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.MatchID, e.LeftScore, e.RightScore, e.Winner, e.Ticks, e.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveMatchResult implements pong.ResultRecorder.
func (s *Store) SaveMatchResult(r pong.MatchResult) error {
	_, err := s.SaveMatch(MatchEntry{
		MatchID:    r.MatchID.String(),
		LeftScore:  r.Score.Left,
		RightScore: r.Score.Right,
		Winner:     r.Winner.String(),
		Ticks:      int64(min(r.Ticks, 1<<62)), //nolint:gosec // clamped
		Duration:   r.Duration,
	})
	return err
}

var _ pong.ResultRecorder = (*Store)(nil)

// RecentMatches returns the latest matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, left_score, right_score, winner, ticks, duration_ms, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		e, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// MatchByID looks a match up by its match ID.
func (s *Store) MatchByID(matchID string) (MatchEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, left_score, right_score, winner, ticks, duration_ms, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)
	e, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MatchEntry{}, ErrNotFound
	}
	return e, err
}

// Standings returns the wins per side over the whole ledger.
func (s *Store) Standings() (Standings, error) {
	var st Standings
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)
		 FROM matches`,
		registry.Left.String(), registry.Right.String(),
	).Scan(&st.Matches, &st.LeftWins, &st.RightWins)
	if err != nil {
		return Standings{}, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	return st, nil
}

// Clear deletes every recorded match.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchEntry, error) {
	var e MatchEntry
	var durationMS int64
	var createdAt any
	if err := sc.Scan(&e.ID, &e.MatchID, &e.LeftScore, &e.RightScore, &e.Winner, &e.Ticks, &durationMS, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MatchEntry{}, err
		}
		return MatchEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Duration = time.Duration(durationMS) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
