package database

import (
	"sync"

	"reldb/catalog"
	"reldb/storage"
)

// Database is the engine facade the front ends talk to. Beneath it the core
// is single-threaded by design; the mutex here is the exclusion boundary
// that lets the HTTP front end serve simultaneous requests while only one
// operation is ever in flight against the catalog.
type Database struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	store   *storage.Store
}

// New opens the database rooted at dataDir, loading all persisted tables.
func New(dataDir string) (*Database, error) {
	store, err := storage.New(dataDir)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(store)
	if err != nil {
		return nil, err
	}
	return &Database{catalog: cat, store: store}, nil
}

// Close flushes all live tables to storage.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.catalog.Close()
}

// Tables returns the live table names, sorted.
func (db *Database) Tables() []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.catalog.Names()
}
