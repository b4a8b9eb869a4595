package store

import (
	"bytes"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/errors"
	"github.com/Iron-Ham/hubdeck/internal/logging"
)

// document is the on-disk layout.
type document struct {
	Columns []column.Column `yaml:"columns"`
}

// Store holds the ordered columns of a deck backed by a YAML file.
// It is safe for concurrent use.
type Store struct {
	path   string
	logger *logging.Logger

	mu      sync.RWMutex
	columns []column.Column
}

// Open loads the store at path. A missing file yields an empty store; the
// file is created on the first save.
func Open(path string, logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Store{
		path:   path,
		logger: logger.WithComponent("store"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Reload replaces the in-memory columns with the file contents.
func (s *Store) Reload() error {
	columns, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.columns = columns
	s.mu.Unlock()

	s.logger.Debug("columns loaded", "path", s.path, "count", len(columns))
	return nil
}

func (s *Store) read() ([]column.Column, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewStoreError("failed to read columns", err).WithPath(s.path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewStoreError("failed to decode columns",
			errors.Join(errors.ErrStoreCorrupted, err)).WithPath(s.path)
	}
	if err := validate(doc.Columns); err != nil {
		return nil, errors.NewStoreError("invalid columns", err).WithPath(s.path)
	}
	return doc.Columns, nil
}

// validate rejects missing and duplicate IDs.
func validate(columns []column.Column) error {
	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if c.ID == "" {
			return errors.NewValidationError("column has no id").WithField("columns").WithValue(i)
		}
		if seen[c.ID] {
			return errors.NewValidationError("duplicate column id").WithField("id").WithValue(c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// save writes the columns to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := yaml.Marshal(document{Columns: s.columns})
	if err != nil {
		return errors.NewStoreError("failed to encode columns", err).WithPath(s.path)
	}
	if err := atomicWriteFile(s.path, data, 0644); err != nil {
		return errors.NewStoreError("failed to save columns", err).WithPath(s.path)
	}
	return nil
}

// Columns returns the columns in deck order.
func (s *Store) Columns() []column.Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.columns)
}

// Len returns the number of columns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.columns)
}

// Column returns the column with the given ID and its position.
func (s *Store) Column(id string) (column.Column, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return column.Column{}, -1, errors.NewNotFoundError("column", id)
	}
	return s.columns[i], i, nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.columns, func(c column.Column) bool { return c.ID == id })
}

// Add appends a column, assigning an ID when it has none.
func (s *Store) Add(col column.Column) (column.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if col.ID == "" {
		col.ID = NewID()
	}
	if s.indexOf(col.ID) >= 0 {
		return column.Column{}, errors.NewValidationError("duplicate column id").WithField("id").WithValue(col.ID)
	}

	s.columns = append(s.columns, col)
	if err := s.save(); err != nil {
		s.columns = s.columns[:len(s.columns)-1]
		return column.Column{}, err
	}
	s.logger.Info("column added", "column_id", col.ID, "type", string(col.Type))
	return col, nil
}

// UpdateFilters applies fn to a copy of the column's filters and saves.
func (s *Store) UpdateFilters(id string, fn func(column.Filters) column.Filters) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("column", id)
	}

	prev := s.columns[i].Filters
	s.columns[i].Filters = fn(prev)
	if err := s.save(); err != nil {
		s.columns[i].Filters = prev
		return err
	}
	return nil
}

// Move places the column at index, shifting the others.
func (s *Store) Move(id string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.indexOf(id)
	if from < 0 {
		return errors.NewNotFoundError("column", id)
	}
	if index < 0 || index >= len(s.columns) {
		return errors.NewValidationError("cannot move column").
			WithField("index").
			WithValue(index).
			WithCause(errors.ErrIndexOutOfRange)
	}
	if from == index {
		return nil
	}

	prev := slices.Clone(s.columns)
	col := s.columns[from]
	s.columns = slices.Delete(s.columns, from, from+1)
	s.columns = slices.Insert(s.columns, index, col)
	if err := s.save(); err != nil {
		s.columns = prev
		return err
	}
	s.logger.Info("column moved", "column_id", id, "from", from, "to", index)
	return nil
}

// Remove deletes the column.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("column", id)
	}

	prev := slices.Clone(s.columns)
	s.columns = slices.Delete(s.columns, i, i+1)
	if err := s.save(); err != nil {
		s.columns = prev
		return err
	}
	s.logger.Info("column deleted", "column_id", id)
	return nil
}
