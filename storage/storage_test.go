package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reldb/common"
	"reldb/schema"
)

func testRecord() *TableRecord {
	return &TableRecord{
		Name: "users",
		Columns: schema.Schema{
			{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
			{Name: "name", Type: schema.TypeText},
			{Name: "score", Type: schema.TypeFloat},
		},
		Rows: [][]schema.Value{
			{schema.Int(1), schema.Text("Alice"), schema.Float(9.5)},
			{schema.Int(2), schema.Text("Bob"), schema.Float(7.25)},
		},
		Indexes: []string{"name"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	rec := testRecord()
	require.NoError(t, store.Save(rec))

	back, err := store.Load("users")
	require.NoError(t, err)

	assert.Equal(t, rec.Name, back.Name)
	assert.Equal(t, rec.Columns, back.Columns)
	assert.Equal(t, rec.Indexes, back.Indexes)
	require.Len(t, back.Rows, len(rec.Rows))
	for i := range rec.Rows {
		for j := range rec.Rows[i] {
			assert.True(t, rec.Rows[i][j].Equal(back.Rows[i][j]),
				"row %d col %d changed across the round trip", i, j)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, common.ErrTableNotFound)
}

func TestLoad_CorruptBytes(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	_, err = store.Load("bad")
	assert.ErrorIs(t, err, common.ErrCorruptData)
}

func TestLoad_RowDisagreesWithSchema(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	// A TEXT value in an INT column must not load.
	artifact := `{
	  "name": "users",
	  "columns": [{"name": "id", "type": "INT"}],
	  "rows": [[{"t": "TEXT", "v": "oops"}]]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(artifact), 0644))

	_, err = store.Load("users")
	assert.ErrorIs(t, err, common.ErrCorruptData)
}

func TestLoad_WrongArity(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	artifact := `{
	  "name": "users",
	  "columns": [{"name": "id", "type": "INT"}, {"name": "name", "type": "TEXT"}],
	  "rows": [[{"t": "INT", "v": 1}]]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte(artifact), 0644))

	_, err = store.Load("users")
	assert.ErrorIs(t, err, common.ErrCorruptData)
}

func TestDelete_Idempotent(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(testRecord()))
	require.NoError(t, store.Delete("users"))
	// Second delete of an absent artifact is a no-op.
	require.NoError(t, store.Delete("users"))

	_, err = store.Load("users")
	assert.ErrorIs(t, err, common.ErrTableNotFound)
}

func TestList(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	rec := testRecord()
	require.NoError(t, store.Save(rec))
	rec2 := testRecord()
	rec2.Name = "orders"
	require.NoError(t, store.Save(rec2))

	names, err = store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users", "orders"}, names)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(testRecord()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}
