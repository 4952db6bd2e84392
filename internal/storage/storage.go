// Package storage persists work logs as a flat mapping from a period key
// ("year-month") to the serialized list of that month's daily entries.
// Writes replace the whole value; the last write for a key wins.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/work-hours-tracker/internal/config"
	"github.com/Tiliavir/work-hours-tracker/internal/model"
)

// Store is a keyed work log store.
type Store interface {
	// Load returns the entries stored for p and whether any were found.
	Load(ctx context.Context, p model.Period) ([]model.DailyEntry, bool, error)
	// Save replaces the entries stored for p.
	Save(ctx context.Context, p model.Period, entries []model.DailyEntry) error
	// Delete removes p. Deleting a missing period is not an error.
	Delete(ctx context.Context, p model.Period) error
	// Keys lists the stored period keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns the store selected by cfg, rooted at the data directory base.
func Open(base string, cfg config.StorageConfig, logger *logrus.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(filepath.Join(base, "data"), logger), nil
	case config.BackendSQLite:
		path := cfg.SQLitePath
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}
		return NewSQLiteStore(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// LoadYear loads every stored month of year, in month order.
func LoadYear(ctx context.Context, s Store, year int) (map[model.Period][]model.DailyEntry, []model.Period, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, nil, err
	}
	data := map[model.Period][]model.DailyEntry{}
	var order []model.Period
	for _, k := range keys {
		p, err := model.ParsePeriodKey(k)
		if err != nil || p.Year != year {
			continue
		}
		entries, ok, err := s.Load(ctx, p)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		if _, seen := data[p]; !seen {
			order = append(order, p)
		}
		data[p] = entries
	}
	sortPeriods(order)
	return data, order, nil
}

func sortPeriods(ps []model.Period) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Year != ps[j].Year {
			return ps[i].Year < ps[j].Year
		}
		return ps[i].Month < ps[j].Month
	})
}
