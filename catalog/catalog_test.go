package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reldb/common"
	"reldb/schema"
	"reldb/storage"
)

func openCatalog(t *testing.T, dir string) *Catalog {
	t.Helper()
	store, err := storage.New(dir)
	require.NoError(t, err)
	cat, err := Open(store)
	require.NoError(t, err)
	return cat
}

func userColumns() schema.Schema {
	return schema.Schema{
		{Name: "id", Type: schema.TypeInt, PrimaryKey: true},
		{Name: "name", Type: schema.TypeText},
	}
}

func TestCreateGetDrop(t *testing.T) {
	cat := openCatalog(t, t.TempDir())

	_, err := cat.Create("users", userColumns())
	require.NoError(t, err)

	tbl, err := cat.Get("users")
	require.NoError(t, err)
	assert.Equal(t, "users", tbl.Name)

	_, err = cat.Create("users", userColumns())
	assert.ErrorIs(t, err, common.ErrTableExists)

	require.NoError(t, cat.Drop("users"))
	_, err = cat.Get("users")
	assert.ErrorIs(t, err, common.ErrTableNotFound)

	err = cat.Drop("users")
	assert.ErrorIs(t, err, common.ErrTableNotFound)
}

func TestCreateDropCreateLeavesNoResidue(t *testing.T) {
	dir := t.TempDir()
	cat := openCatalog(t, dir)

	tbl, err := cat.Create("users", userColumns())
	require.NoError(t, err)
	_, err = tbl.Insert([]schema.Value{schema.Int(1), schema.Text("Alice")})
	require.NoError(t, err)
	require.NoError(t, cat.Close())

	require.NoError(t, cat.Drop("users"))

	// Same name again: fresh table, no rows, no artifact leftovers.
	tbl, err = cat.Create("users", userColumns())
	require.NoError(t, err)
	assert.Zero(t, tbl.RowCount())

	reopened := openCatalog(t, dir)
	tbl, err = reopened.Get("users")
	require.NoError(t, err)
	assert.Zero(t, tbl.RowCount())
}

func TestOpenLoadsPersistedTables(t *testing.T) {
	dir := t.TempDir()
	cat := openCatalog(t, dir)

	tbl, err := cat.Create("users", userColumns())
	require.NoError(t, err)
	_, err = tbl.Insert([]schema.Value{schema.Int(1), schema.Text("Alice")})
	require.NoError(t, err)
	require.NoError(t, cat.Close())

	reopened := openCatalog(t, dir)
	tbl, err = reopened.Get("users")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, []string{"users"}, reopened.Names())
}

func TestOpenSkipsCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	cat := openCatalog(t, dir)

	_, err := cat.Create("good", userColumns())
	require.NoError(t, err)
	require.NoError(t, cat.Close())

	// A corrupt artifact must not prevent the rest of the catalog from
	// loading.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{broken"), 0644))

	reopened := openCatalog(t, dir)
	assert.Equal(t, []string{"good"}, reopened.Names())

	_, err = reopened.Get("bad")
	assert.ErrorIs(t, err, common.ErrTableNotFound)
}
