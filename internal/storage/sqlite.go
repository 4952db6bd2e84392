package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
)

// SQLiteStore keeps every period as one row of a key-value table.
type SQLiteStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and brings
// its schema up to date.
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.WithField("path", path).Debug("opened sqlite work log store")
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load reads the row for p.
func (s *SQLiteStore) Load(ctx context.Context, p model.Period) ([]model.DailyEntry, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM periods WHERE key = ?`, p.Key()).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying period %s: %w", p.Key(), err)
	}

	var entries []model.DailyEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return nil, false, fmt.Errorf("decoding period %s: %w", p.Key(), err)
	}
	s.logger.WithFields(logrus.Fields{
		"period":  p.Key(),
		"entries": len(entries),
	}).Debug("loaded work log row")
	return entries, true, nil
}

// Save upserts the row for p.
func (s *SQLiteStore) Save(ctx context.Context, p model.Period, entries []model.DailyEntry) error {
	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding period %s: %w", p.Key(), err)
	}

	query := `
	INSERT INTO periods (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, query, p.Key(), string(value), updatedAt); err != nil {
		return fmt.Errorf("saving period %s: %w", p.Key(), err)
	}
	s.logger.WithField("period", p.Key()).Debug("saved work log row")
	return nil
}

// Delete removes the row for p.
func (s *SQLiteStore) Delete(ctx context.Context, p model.Period) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM periods WHERE key = ?`, p.Key()); err != nil {
		return fmt.Errorf("deleting period %s: %w", p.Key(), err)
	}
	return nil
}

// Keys lists stored period keys in ascending order.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM periods ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
