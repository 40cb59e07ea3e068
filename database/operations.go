package database

import (
	"reldb/schema"
	"reldb/table"
)

// CreateTable registers a new table and persists its initial empty state.
func (db *Database) CreateTable(name string, columns schema.Schema) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.catalog.Create(name, columns)
	return err
}

// DropTable removes a table and its backing artifact.
func (db *Database) DropTable(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.catalog.Drop(name)
}

// Insert adds one row to the named table and persists the new state.
// Returns the number of rows inserted.
func (db *Database) Insert(tableName string, values []schema.Value) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.catalog.Get(tableName)
	if err != nil {
		return 0, err
	}
	count, err := t.Insert(values)
	if err != nil {
		return 0, err
	}
	return count, db.store.Save(t.Record())
}

// Select returns filtered, projected rows from the named table.
func (db *Database) Select(tableName string, projection []string, where *table.Where) (*table.ResultSet, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	t, err := db.catalog.Get(tableName)
	if err != nil {
		return nil, err
	}
	return t.Select(projection, where)
}

// Update changes matching rows and persists the new state. Returns the
// number of rows updated.
func (db *Database) Update(tableName string, set map[string]schema.Value, where *table.Where) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.catalog.Get(tableName)
	if err != nil {
		return 0, err
	}
	count, err := t.Update(set, where)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	return count, db.store.Save(t.Record())
}

// Delete removes matching rows and persists the new state. Returns the
// number of rows deleted.
func (db *Database) Delete(tableName string, where *table.Where) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.catalog.Get(tableName)
	if err != nil {
		return 0, err
	}
	count, err := t.Delete(where)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	return count, db.store.Save(t.Record())
}

// CreateIndex builds a hash index on a column and persists the table so the
// index survives a restart.
func (db *Database) CreateIndex(tableName, column string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	t, err := db.catalog.Get(tableName)
	if err != nil {
		return err
	}
	if err := t.CreateIndex(column); err != nil {
		return err
	}
	return db.store.Save(t.Record())
}

// JoinTables runs a nested-loop inner equality join between two tables.
func (db *Database) JoinTables(leftName, rightName, leftColumn, rightColumn string) (*table.ResultSet, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	left, err := db.catalog.Get(leftName)
	if err != nil {
		return nil, err
	}
	right, err := db.catalog.Get(rightName)
	if err != nil {
		return nil, err
	}
	return left.Join(right, leftColumn, rightColumn)
}

// GetTable resolves a table for read-only schema inspection.
func (db *Database) GetTable(name string) (*table.Table, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.catalog.Get(name)
}
