// Package history persists finished solver runs in SQLite and answers
// simple reporting queries over them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// Run is one finished self-play game.
type Run struct {
	ID        string    `json:"id"`
	Secret    string    `json:"secret"`
	Mode      string    `json:"mode"` // random | daily | fixed | http
	Date      string    `json:"date"` // YYYY-MM-DD (UTC)
	Rounds    int       `json:"rounds"`
	Guesses   []string  `json:"guesses"` // "crane:YGGXG" per round
	ElapsedMs int       `json:"elapsedMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRun builds a Run from the rounds of a solved game.
func NewRun(id string, secret game.Word, mode string, rounds []game.Round, started time.Time) Run {
	gs := make([]string, len(rounds))
	for i, r := range rounds {
		gs[i] = r.Guess.String() + ":" + r.Code.String()
	}
	return Run{
		ID:        id,
		Secret:    secret.String(),
		Mode:      mode,
		Date:      started.UTC().Format("2006-01-02"),
		Rounds:    len(rounds),
		Guesses:   gs,
		ElapsedMs: int(time.Since(started).Milliseconds()),
	}
}

// Stats summarises every recorded run.
type Stats struct {
	Runs      int     `json:"runs"`
	AvgRounds float64 `json:"avgRounds"`
	MaxRounds int     `json:"maxRounds"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertRun stores r. A second insert with the same ID is ignored.
func (s *Store) InsertRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO runs (id, secret, mode, date, rounds, guesses, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Secret, r.Mode, r.Date, r.Rounds, strings.Join(r.Guesses, ","), r.ElapsedMs,
	)
	return err
}

// Recent returns the newest runs first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(ctx, `
        SELECT id, secret, mode, date, rounds, guesses, elapsed_ms, created_at
        FROM runs
        ORDER BY created_at DESC, id ASC
        LIMIT ?`, limit)
}

// Leaderboard returns the runs for date with the fewest rounds first.
// Ties go to the faster run, then the earlier one.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(ctx, `
        SELECT id, secret, mode, date, rounds, guesses, elapsed_ms, created_at
        FROM runs
        WHERE date=?
        ORDER BY rounds ASC, elapsed_ms ASC, created_at ASC
        LIMIT ?`, date, limit)
}

// Stats aggregates over all runs. An empty table yields zero values.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(AVG(rounds), 0), COALESCE(MAX(rounds), 0) FROM runs`,
	).Scan(&st.Runs, &st.AvgRounds, &st.MaxRounds)
	return st, err
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var r Run
		var guesses, created string
		if err := rows.Scan(&r.ID, &r.Secret, &r.Mode, &r.Date, &r.Rounds, &guesses, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("run %s: created_at: %w", r.ID, err)
		}
		r.CreatedAt = ts
		out = append(out, r)
	}
	return out, rows.Err()
}
