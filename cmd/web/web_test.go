package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reldb/database"
)

func newApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	db, err := database.New(dir)
	require.NoError(t, err)
	return New(db, dir)
}

func do(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func createUsers(t *testing.T, app *App) {
	t.Helper()
	rec := do(t, app, http.MethodPost, "/tables", `{
		"name": "users",
		"columns": ["id", "name", "email"],
		"types": ["INT", "TEXT", "TEXT"],
		"primary_key": "id",
		"unique_constraints": ["email"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealthAndTableListing(t *testing.T) {
	app := newApp(t)

	rec := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeBody(t, rec)["status"])

	createUsers(t, app)
	rec = do(t, app, http.MethodGet, "/tables", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"users"}, decodeBody(t, rec)["tables"])
}

func TestInsertAndQuery(t *testing.T) {
	app := newApp(t)
	createUsers(t, app)

	rec := do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [1, "Alice", "a@x.com"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, app, http.MethodPost, "/query", `{"table_name": "users", "where": {"name": "Alice"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(1), payload["count"])

	rows := payload["data"].([]any)
	row := rows[0].(map[string]any)
	assert.Equal(t, "a@x.com", row["email"])
}

func TestStatusMapping(t *testing.T) {
	app := newApp(t)
	createUsers(t, app)

	rec := do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [1, "Alice", "a@x.com"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Duplicate primary key is a conflict.
	rec = do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [1, "Bob", "b@x.com"]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["detail"], "id")

	// Duplicate table name is a conflict.
	rec = do(t, app, http.MethodPost, "/tables", `{"name": "users", "columns": ["x"], "types": ["INT"]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Missing table is 404.
	rec = do(t, app, http.MethodPost, "/query", `{"table_name": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Wrong arity is a bad request.
	rec = do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [2]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong type is a bad request: TEXT into the INT id column.
	rec = do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": ["2", "Bob", "b@x.com"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Compound WHERE is rejected.
	rec = do(t, app, http.MethodPost, "/query", `{"table_name": "users", "where": {"a": 1, "b": 2}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteRows(t *testing.T) {
	app := newApp(t)
	createUsers(t, app)

	rec := do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [1, "Alice", "a@x.com"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, app, http.MethodPut, "/rows", `{"table_name": "users", "set_values": {"name": "Alicia"}, "where": {"id": 1}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])

	rec = do(t, app, http.MethodDelete, "/rows", `{"table_name": "users", "where": {"id": 1}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
}

func TestJoinEndpoint(t *testing.T) {
	app := newApp(t)

	rec := do(t, app, http.MethodPost, "/tables", `{
		"name": "users",
		"columns": ["id", "name", "city_id"],
		"types": ["INT", "TEXT", "INT"],
		"primary_key": "id"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, app, http.MethodPost, "/tables", `{
		"name": "cities",
		"columns": ["id", "name"],
		"types": ["INT", "TEXT"],
		"primary_key": "id"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, app, http.MethodPost, "/rows", `{"table_name": "users", "values": [1, "Alice", 10]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, app, http.MethodPost, "/rows", `{"table_name": "cities", "values": [10, "NYC"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, app, http.MethodPost, "/join", `{
		"left_table": "users",
		"right_table": "cities",
		"left_column": "city_id",
		"right_column": "id"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(1), payload["count"])

	row := payload["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Alice", row["users.name"])
	assert.Equal(t, "NYC", row["cities.name"])

	rec = do(t, app, http.MethodPost, "/join", `{
		"left_table": "users",
		"right_table": "missing",
		"left_column": "city_id",
		"right_column": "id"
	}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTableInfoAndDrop(t *testing.T) {
	app := newApp(t)
	createUsers(t, app)

	rec := do(t, app, http.MethodGet, "/tables/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "users", payload["name"])
	assert.Equal(t, "id", payload["primary_key"])
	assert.Equal(t, float64(0), payload["row_count"])

	rec = do(t, app, http.MethodDelete, "/tables/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, app, http.MethodGet, "/tables/users", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
