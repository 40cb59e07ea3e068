package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"reldb/common"
	"reldb/schema"
)

// TableRecord is the self-describing persisted form of one table: schema,
// rows in insertion order, and the names of indexed columns. Index entries
// themselves are not persisted; they are rebuilt from the rows at load time.
type TableRecord struct {
	Name    string           `json:"name"`
	Columns schema.Schema    `json:"columns"`
	Rows    [][]schema.Value `json:"rows"`
	Indexes []string         `json:"indexes,omitempty"`
}

// Store persists each table as its own JSON artifact under a data directory.
// Per-table granularity keeps one table's corruption or size from affecting
// the others, and makes DROP TABLE a plain file removal.
type Store struct {
	dataDir string
}

// New creates a store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", common.ErrStorageIO, err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) tableFile(name string) string {
	return filepath.Join(s.dataDir, name+".json")
}

// Save writes the complete current state of one table. The record is written
// to a temporary file first and renamed over the target, so a concurrent
// reader never observes a half-written artifact.
func (s *Store) Save(rec *TableRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding table '%s': %v", common.ErrStorageIO, rec.Name, err)
	}

	target := s.tableFile(rec.Name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: writing table '%s': %v", common.ErrStorageIO, rec.Name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replacing table '%s': %v", common.ErrStorageIO, rec.Name, err)
	}
	return nil
}

// Load reads a table's persisted state back. It returns ErrTableNotFound if
// no artifact exists and ErrCorruptData if the artifact does not decode into
// a valid schema plus type-correct rows.
func (s *Store) Load(name string) (*TableRecord, error) {
	data, err := os.ReadFile(s.tableFile(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", common.ErrTableNotFound, name)
		}
		return nil, fmt.Errorf("%w: reading table '%s': %v", common.ErrStorageIO, name, err)
	}

	var rec TableRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: table '%s': %v", common.ErrCorruptData, name, err)
	}
	if err := validateRecord(&rec, name); err != nil {
		return nil, err
	}
	return &rec, nil
}

// validateRecord rejects artifacts whose contents disagree with themselves.
func validateRecord(rec *TableRecord, name string) error {
	if rec.Name != name {
		return fmt.Errorf("%w: artifact for '%s' names table '%s'", common.ErrCorruptData, name, rec.Name)
	}
	if err := rec.Columns.Validate(); err != nil {
		return fmt.Errorf("%w: table '%s': %v", common.ErrCorruptData, name, err)
	}
	for i, row := range rec.Rows {
		if err := rec.Columns.CheckRow(row); err != nil {
			return fmt.Errorf("%w: table '%s' row %d: %v", common.ErrCorruptData, name, i, err)
		}
	}
	for _, col := range rec.Indexes {
		if _, err := rec.Columns.ColumnIndex(col); err != nil {
			return fmt.Errorf("%w: table '%s' indexes unknown column '%s'", common.ErrCorruptData, name, col)
		}
	}
	return nil
}

// Delete removes the persisted artifact for a dropped table. It is a no-op
// when the artifact is already absent.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.tableFile(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: deleting table '%s': %v", common.ErrStorageIO, name, err)
	}
	return nil
}

// List returns the names of all persisted tables, in directory order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing tables: %v", common.ErrStorageIO, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}
