package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/work-hours-tracker/internal/model"
)

// monthFile is the top-level structure stored in each monthly JSON file.
type monthFile struct {
	Period  string             `json:"period"`
	Entries []model.DailyEntry `json:"entries"`
}

// FileStore keeps one human-readable JSON file per period in a directory.
type FileStore struct {
	dir    string
	logger *logrus.Logger
}

// NewFileStore returns a store writing to dir. The directory is created on
// the first save.
func NewFileStore(dir string, logger *logrus.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// path returns the file for the given period.
func (s *FileStore) path(p model.Period) string {
	return filepath.Join(s.dir, p.Key()+".json")
}

// Load reads the file for p. A missing file is reported as not found.
func (s *FileStore) Load(_ context.Context, p model.Period) ([]model.DailyEntry, bool, error) {
	path := s.path(p)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var mf monthFile
	if err := json.Unmarshal(data, &mf); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		s.logger.WithFields(logrus.Fields{
			"period": p.Key(),
			"backup": backupPath,
		}).Warn("corrupt work log file moved aside")
		return nil, false, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	s.logger.WithFields(logrus.Fields{
		"period":  p.Key(),
		"entries": len(mf.Entries),
	}).Debug("loaded work log file")
	return mf.Entries, true, nil
}

// Save atomically writes the file for p.
func (s *FileStore) Save(_ context.Context, p model.Period, entries []model.DailyEntry) error {
	path := s.path(p)
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(monthFile{Period: p.Key(), Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	s.logger.WithField("period", p.Key()).Debug("saved work log file")
	return nil
}

// Delete removes the file for p.
func (s *FileStore) Delete(_ context.Context, p model.Period) error {
	if err := os.Remove(s.path(p)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error deleting %s: %w", p.Key(), err)
	}
	return nil
}

// Keys lists the periods that have a file. Files whose names are not period
// keys (backups, temp files) are ignored.
func (s *FileStore) Keys(_ context.Context) ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error listing %s: %w", s.dir, err)
	}

	var keys []string
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		p, err := model.ParsePeriodKey(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		keys = append(keys, p.Key())
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op; files are not held open between calls.
func (s *FileStore) Close() error {
	return nil
}
