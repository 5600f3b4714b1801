// Package results persists finished solver runs to SQLite.
//
// The answer of a run is never stored in plain text: only a bcrypt hash is
// kept, so history can be checked against a word without leaking answers.
package results

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/solver"
)

// startedLayout is fixed width so started_at sorts as text in time order.
const startedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one finished game as stored.
type Run struct {
	ID         string
	BatchID    string // groups runs of one bench invocation; empty for single plays
	StartedAt  time.Time
	Seed       int64
	Status     solver.Status
	Tries      int
	MaxTries   int
	History    []string // WORD:FEEDBACK per guess
	AnswerHash string
}

// Summary aggregates stored runs.
type Summary struct {
	Games        int
	Won          int
	Exhausted    int
	NoCandidates int
	MeanTries    float64 // over won games
}

// Store is the SQLite-backed run history.
type Store struct{ db *sql.DB }

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// FromSolver captures a finished solver as a Run.
func FromSolver(sv *solver.Solver, started time.Time, seed int64) Run {
	hist := sv.History()
	out := make([]string, 0, len(hist))
	for _, h := range hist {
		out = append(out, h.String())
	}
	return Run{
		StartedAt: started.UTC(),
		Seed:      seed,
		Status:    sv.Status(),
		Tries:     sv.Tries(),
		MaxTries:  sv.MaxTries(),
		History:   out,
	}
}

// Save stores r. A missing ID is filled with a new UUID; a non-empty answer
// is stored as a bcrypt hash.
func (s *Store) Save(ctx context.Context, r Run, answer string) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	if answer != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(strings.ToUpper(answer)), bcrypt.MinCost)
		if err != nil {
			return r, fmt.Errorf("hash answer: %w", err)
		}
		r.AnswerHash = string(h)
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO runs (id, batch_id, started_at, seed, status, tries, max_tries, history, answer_hash)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, nullable(r.BatchID), r.StartedAt.UTC().Format(startedLayout), r.Seed, string(r.Status),
		r.Tries, r.MaxTries, strings.Join(r.History, ","), r.AnswerHash,
	)
	if err != nil {
		return r, fmt.Errorf("insert run: %w", err)
	}
	return r, nil
}

// List returns the most recent runs first. limit <= 0 means 20.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, COALESCE(batch_id, ''), started_at, seed, status, tries, max_tries, history, answer_hash
        FROM runs
        ORDER BY started_at DESC, id
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var (
			r       Run
			started string
			status  string
			hist    string
		)
		if err := rows.Scan(&r.ID, &r.BatchID, &started, &r.Seed, &status, &r.Tries, &r.MaxTries, &hist, &r.AnswerHash); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(startedLayout, started)
		r.Status = solver.Status(status)
		if hist != "" {
			r.History = strings.Split(hist, ",")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary aggregates all runs, or only those of batchID when non-empty.
func (s *Store) Summary(ctx context.Context, batchID string) (Summary, error) {
	q := `
        SELECT COUNT(1),
               COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
               COALESCE(AVG(CASE WHEN status = ? THEN tries END), 0)
        FROM runs`
	won := string(solver.StatusWon)
	args := []any{won, string(solver.StatusLostExhausted), string(solver.StatusLostNoCandidates), won}
	if batchID != "" {
		q += ` WHERE batch_id = ?`
		args = append(args, batchID)
	}
	var sum Summary
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&sum.Games, &sum.Won, &sum.Exhausted, &sum.NoCandidates, &sum.MeanTries)
	return sum, err
}

// MatchesAnswer reports whether word is the answer recorded for r.
func MatchesAnswer(r Run, word string) bool {
	if r.AnswerHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(r.AnswerHash), []byte(strings.ToUpper(word))) == nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
