// Package storage provides SQLite-based persistence for game scores and
// daily puzzle results. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// DailyRun represents one attempt at a daily puzzle.
type DailyRun struct {
	ID        int64
	Date      string // puzzle date, "2006-01-02"
	Seed      int32
	Ticks     int
	Deaths    int
	Won       bool
	Score     int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS daily_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_daily_runs_date ON daily_runs(date);
		CREATE INDEX IF NOT EXISTS idx_daily_runs_best ON daily_runs(date, score DESC);
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveDailyRun records one attempt at a daily puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveDailyRun(run DailyRun) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO daily_runs (date, seed, ticks, deaths, won, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Date, run.Seed, run.Ticks, run.Deaths, run.Won, run.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save daily run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RunsForDate retrieves all attempts at one day's puzzle, best first.
func (s *Store) RunsForDate(date string) ([]DailyRun, error) {
	rows, err := s.db.Query(
		`SELECT id, date, seed, ticks, deaths, won, score, created_at
		 FROM daily_runs
		 WHERE date = ?
		 ORDER BY score DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query daily runs: %w", err)
	}
	defer rows.Close()

	return scanDailyRuns(rows)
}

// BestRunForDate returns the highest-scoring winning run for a date, or nil
// if the day's puzzle was never solved.
func (s *Store) BestRunForDate(date string) (*DailyRun, error) {
	var run DailyRun
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, date, seed, ticks, deaths, won, score, created_at
		 FROM daily_runs
		 WHERE date = ? AND won = 1
		 ORDER BY score DESC
		 LIMIT 1`,
		date,
	).Scan(&run.ID, &run.Date, &run.Seed, &run.Ticks, &run.Deaths, &run.Won, &run.Score, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best daily run: %w", err)
	}

	run.CreatedAt = parseCreatedAt(createdAt)
	return &run, nil
}

// RecentDailyRuns retrieves the most recent daily puzzle attempts.
func (s *Store) RecentDailyRuns(limit int) ([]DailyRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, date, seed, ticks, deaths, won, score, created_at
		 FROM daily_runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query daily runs: %w", err)
	}
	defer rows.Close()

	return scanDailyRuns(rows)
}

// SolvedStreak counts consecutive solved daily puzzles ending at the given
// date, walking backwards one day at a time.
func (s *Store) SolvedStreak(endDate string) (int, error) {
	day, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, fmt.Errorf("storage: bad date %q: %w", endDate, err)
	}

	streak := 0
	for {
		var won bool
		err := s.db.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM daily_runs WHERE date = ? AND won = 1)",
			day.Format("2006-01-02"),
		).Scan(&won)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot query streak: %w", err)
		}
		if !won {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func scanDailyRuns(rows *sql.Rows) ([]DailyRun, error) {
	var runs []DailyRun
	for rows.Next() {
		var run DailyRun
		var createdAt any
		if err := rows.Scan(&run.ID, &run.Date, &run.Seed, &run.Ticks, &run.Deaths, &run.Won, &run.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = parseCreatedAt(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseCreatedAt handles both time.Time and string values from the driver.
func parseCreatedAt(v any) time.Time {
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

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}
