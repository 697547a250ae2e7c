package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cleared-dev/expense-tracker/internal/auditlog"
	"github.com/cleared-dev/expense-tracker/internal/model"
)

// DefaultPath is the data file used when none is configured.
const DefaultPath = "expenses.json"

// Store is the in-memory, insertion-ordered list of expenses backed by a JSON file.
// Every successful Add rewrites the whole file.
type Store struct {
	path     string
	expenses []model.Expense
	auditLog string
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Store over expenses, persisting to path.
func New(path string, expenses []model.Expense, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:     path,
		expenses: expenses,
		logger:   logger.With("component", "store"),
		now:      time.Now,
	}
}

// SetAuditLog enables appending a row to the CSV log at path for every Add.
func (s *Store) SetAuditLog(path string) {
	s.auditLog = path
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// All returns a copy of the stored expenses in insertion order.
func (s *Store) All() []model.Expense {
	return slices.Clone(s.expenses)
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Add appends e and saves the full store. If saving fails the expense is
// not kept in memory either.
func (s *Store) Add(e model.Expense) error {
	next := append(slices.Clone(s.expenses), e)
	if err := Save(s.path, next); err != nil {
		return err
	}
	s.expenses = next
	s.logger.Debug("expense added", "date", e.Date, "category", e.Category, "count", len(next))

	if s.auditLog != "" {
		entry := auditlog.Entry{Timestamp: s.now(), Action: auditlog.ActionAdd, Expense: e}
		if err := auditlog.Append(s.auditLog, []auditlog.Entry{entry}); err != nil {
			s.logger.Warn("failed to write audit log", "path", s.auditLog, "error", err)
		}
	}
	return nil
}

// Load reads expenses from path. A missing file yields an empty list and no
// error. Undecodable content yields an error wrapping ErrCorrupt; the file is
// left as is.
func Load(path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening expenses %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := DecodeExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("loading expenses %s: %w", path, err)
	}
	return expenses, nil
}

// fileMode returns the permissions of the existing file at path, or 0644.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// Save replaces the file at path with expenses. The new content is written
// to a temporary file in the same directory and renamed into place. An
// existing file keeps its permissions.
func Save(path string, expenses []model.Expense) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving expenses %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := EncodeExpenses(tmp, expenses); err != nil {
		tmp.Close()
		return fmt.Errorf("saving expenses %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving expenses %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, fileMode(path)); err != nil {
		return fmt.Errorf("saving expenses %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("saving expenses %s: %w", path, err)
	}
	return nil
}
