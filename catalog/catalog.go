package catalog

import (
	"fmt"
	"log/slog"
	"sort"

	"reldb/common"
	"reldb/schema"
	"reldb/storage"
	"reldb/table"
)

// Catalog is the process-lifetime registry of live tables, keyed by name. It
// is loaded once from storage at startup and is the single in-memory source
// of truth for the rest of the session.
type Catalog struct {
	tables map[string]*table.Table
	store  *storage.Store
}

// Open loads every persisted table from the store. A table whose artifact is
// corrupt or unreadable is skipped with a warning rather than failing the
// whole startup; all other tables still load.
func Open(store *storage.Store) (*Catalog, error) {
	c := &Catalog{
		tables: make(map[string]*table.Table),
		store:  store,
	}

	names, err := store.List()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		rec, err := store.Load(name)
		if err != nil {
			slog.Warn("skipping unloadable table", "table", name, "error", err)
			continue
		}
		t, err := table.FromRecord(rec)
		if err != nil {
			slog.Warn("skipping unloadable table", "table", name, "error", err)
			continue
		}
		c.tables[name] = t
	}
	return c, nil
}

// Create registers a new empty table and persists its initial state.
func (c *Catalog) Create(name string, columns schema.Schema) (*table.Table, error) {
	if _, exists := c.tables[name]; exists {
		return nil, fmt.Errorf("%w: '%s'", common.ErrTableExists, name)
	}

	t, err := table.New(name, columns)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(t.Record()); err != nil {
		return nil, err
	}

	c.tables[name] = t
	return t, nil
}

// Drop removes a table from the catalog and deletes its persisted artifact.
// The table is terminal after this; any later operation that resolves it by
// name gets ErrTableNotFound.
func (c *Catalog) Drop(name string) error {
	if _, exists := c.tables[name]; !exists {
		return fmt.Errorf("%w: '%s'", common.ErrTableNotFound, name)
	}
	delete(c.tables, name)
	return c.store.Delete(name)
}

// Get resolves a table by name.
func (c *Catalog) Get(name string) (*table.Table, error) {
	t, exists := c.tables[name]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", common.ErrTableNotFound, name)
	}
	return t, nil
}

// Names returns the live table names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close flushes every live table's current state to storage.
func (c *Catalog) Close() error {
	var firstErr error
	for _, t := range c.tables {
		if err := c.store.Save(t.Record()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
