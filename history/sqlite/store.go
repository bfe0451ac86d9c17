// Package sqlite provides a SQLite-backed persistent roll log.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/dice-roller/history/sqlite/migrations"
)

var (
	// ErrPathRequired is returned by Open for an empty database path.
	ErrPathRequired = errors.New("storage path is required")
	// ErrInvalidRecord is returned when a record carries an impossible face value.
	ErrInvalidRecord = errors.New("invalid roll record")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("storage is closed")
)

// Record is one settled roll.
type Record struct {
	Value    int
	Bounces  int
	Steps    int
	RolledAt time.Time
}

// Stats summarizes every stored roll.
type Stats struct {
	Total    int
	Counts   [6]int // Counts[v-1] is the number of rolls showing v
	Average  float64
	MaxSteps int
}

// Store persists settled rolls in SQLite.
type Store struct {
	mu    sync.RWMutex
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite roll store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle. Safe on a nil store and on repeated calls.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}

// Append inserts one roll.
func (s *Store) Append(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.Value < 1 || rec.Value > 6 {
		return fmt.Errorf("%w: value %d", ErrInvalidRecord, rec.Value)
	}
	rolledAt := rec.RolledAt
	if rolledAt.IsZero() {
		rolledAt = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sqlDB == nil {
		return ErrClosed
	}

	if _, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO rolls (value, bounces, steps, rolled_at) VALUES (?, ?, ?, ?)`,
		rec.Value, rec.Bounces, rec.Steps, toMillis(rolledAt),
	); err != nil {
		return fmt.Errorf("append roll: %w", err)
	}
	return nil
}

// Recent returns up to limit rolls, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sqlDB == nil {
		return nil, ErrClosed
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT value, bounces, steps, rolled_at FROM rolls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent rolls: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var rolledAt int64
		if err := rows.Scan(&rec.Value, &rec.Bounces, &rec.Steps, &rolledAt); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		rec.RolledAt = fromMillis(rolledAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rolls: %w", err)
	}
	return out, nil
}

// Stats aggregates face counts, average and the slowest roll.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sqlDB == nil {
		return Stats{}, ErrClosed
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT value, COUNT(*), MAX(steps) FROM rolls GROUP BY value`)
	if err != nil {
		return Stats{}, fmt.Errorf("query roll stats: %w", err)
	}
	defer rows.Close()

	var st Stats
	sum := 0
	for rows.Next() {
		var value, count, maxSteps int
		if err := rows.Scan(&value, &count, &maxSteps); err != nil {
			return Stats{}, fmt.Errorf("scan roll stats: %w", err)
		}
		if value < 1 || value > 6 {
			continue
		}
		st.Counts[value-1] = count
		st.Total += count
		sum += value * count
		if maxSteps > st.MaxSteps {
			st.MaxSteps = maxSteps
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate roll stats: %w", err)
	}
	if st.Total > 0 {
		st.Average = float64(sum) / float64(st.Total)
	}
	return st, nil
}
