package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"reldb/common"
	"reldb/database"
	"reldb/schema"
	"reldb/table"
)

// App is the HTTP front end: a thin adapter that shapes JSON requests into
// engine commands and renders payloads or {"detail": ...} errors back.
type App struct {
	db      *database.Database
	dataDir string
}

// New creates the app over an open database.
func New(db *database.Database, dataDir string) *App {
	return &App{db: db, dataDir: dataDir}
}

// Routes registers all endpoints on a fresh mux.
func (a *App) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", a.handleRoot)
	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/tables", a.handleTables)
	mux.HandleFunc("/tables/", a.handleTable)
	mux.HandleFunc("/rows", a.handleRows)
	mux.HandleFunc("/query", a.handleQuery)
	mux.HandleFunc("/join", a.handleJoin)
	return mux
}

// tableCreate mirrors the original API shape: parallel column/type lists
// plus optional constraint column names.
type tableCreate struct {
	Name              string   `json:"name"`
	Columns           []string `json:"columns"`
	Types             []string `json:"types"`
	PrimaryKey        string   `json:"primary_key,omitempty"`
	UniqueConstraints []string `json:"unique_constraints,omitempty"`
}

type rowInsert struct {
	TableName string `json:"table_name"`
	Values    []any  `json:"values"`
}

type rowUpdate struct {
	TableName string         `json:"table_name"`
	SetValues map[string]any `json:"set_values"`
	Where     map[string]any `json:"where,omitempty"`
}

type rowDelete struct {
	TableName string         `json:"table_name"`
	Where     map[string]any `json:"where,omitempty"`
}

type queryRequest struct {
	TableName string         `json:"table_name"`
	Columns   []string       `json:"columns,omitempty"`
	Where     map[string]any `json:"where,omitempty"`
}

type joinRequest struct {
	LeftTable   string `json:"left_table"`
	RightTable  string `json:"right_table"`
	LeftColumn  string `json:"left_column"`
	RightColumn string `json:"right_column"`
}

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "reldb API",
		"endpoints": map[string]string{
			"tables":       "/tables",
			"create_table": "/tables (POST)",
			"insert":       "/rows (POST)",
			"update":       "/rows (PUT)",
			"delete":       "/rows (DELETE)",
			"query":        "/query (POST)",
			"join":         "/join (POST)",
			"health":       "/health",
		},
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"data_path": a.dataDir,
		"tables":    len(a.db.Tables()),
	})
}

func (a *App) handleTables(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"tables": a.db.Tables()})

	case http.MethodPost:
		var req tableCreate
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		columns, err := req.schema()
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := a.db.CreateTable(req.Name, columns); err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message":    fmt.Sprintf("Table '%s' created", req.Name),
			"table_name": req.Name,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

// schema assembles full column definitions from the parallel lists.
func (t *tableCreate) schema() (schema.Schema, error) {
	if len(t.Columns) != len(t.Types) {
		return nil, errors.New("columns and types must have the same length")
	}
	unique := make(map[string]bool, len(t.UniqueConstraints))
	for _, name := range t.UniqueConstraints {
		unique[name] = true
	}

	cols := make(schema.Schema, len(t.Columns))
	for i, name := range t.Columns {
		cols[i] = schema.Column{
			Name:       name,
			Type:       schema.ColumnType(t.Types[i]),
			PrimaryKey: name == t.PrimaryKey && t.PrimaryKey != "",
			Unique:     unique[name],
		}
	}
	return cols, nil
}

func (a *App) handleTable(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/tables/"):]
	if name == "" {
		writeError(w, http.StatusNotFound, errors.New("missing table name"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := a.db.GetTable(name)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"name":        t.Name,
			"columns":     t.Columns,
			"primary_key": t.Columns.PrimaryKey(),
			"indexes":     t.IndexedColumns(),
			"row_count":   t.RowCount(),
		})

	case http.MethodDelete:
		if err := a.db.DropTable(name); err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("Table '%s' dropped", name),
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (a *App) handleRows(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req rowInsert
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		values, err := toValues(req.Values)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		count, err := a.db.Insert(req.TableName, values)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": fmt.Sprintf("%d row inserted", count),
		})

	case http.MethodPut:
		var req rowUpdate
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		set := make(map[string]schema.Value, len(req.SetValues))
		for col, raw := range req.SetValues {
			v, err := schema.FromNative(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			set[col] = v
		}
		where, err := toWhere(req.Where)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		count, err := a.db.Update(req.TableName, set, where)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("%d row(s) updated", count),
			"count":   count,
		})

	case http.MethodDelete:
		var req rowDelete
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		where, err := toWhere(req.Where)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		count, err := a.db.Delete(req.TableName, where)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("%d row(s) deleted", count),
			"count":   count,
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	}
}

func (a *App) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var req queryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	where, err := toWhere(req.Where)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rs, err := a.db.Select(req.TableName, req.Columns, where)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	data := make([]map[string]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		obj := make(map[string]any, len(row))
		for i, v := range row {
			obj[rs.Columns[i]] = v.Native()
		}
		data = append(data, obj)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "count": len(data)})
}

func (a *App) handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}

	var req joinRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rs, err := a.db.JoinTables(req.LeftTable, req.RightTable, req.LeftColumn, req.RightColumn)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	data := make([]map[string]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		obj := make(map[string]any, len(row))
		for i, v := range row {
			obj[rs.Columns[i]] = v.Native()
		}
		data = append(data, obj)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "count": len(data)})
}

// decode reads a JSON body with numbers preserved as json.Number, so the
// INT/FLOAT distinction survives into schema.FromNative.
func decode(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("bad request body: %w", err)
	}
	return nil
}

// toValues converts a decoded JSON array into engine values.
func toValues(raw []any) ([]schema.Value, error) {
	values := make([]schema.Value, len(raw))
	for i, r := range raw {
		v, err := schema.FromNative(r)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// toWhere converts the {"column": value} filter object. Exactly one
// condition is supported; compound predicates are out of scope.
func toWhere(raw map[string]any) (*table.Where, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) > 1 {
		return nil, errors.New("only a single WHERE condition is supported")
	}
	for col, val := range raw {
		v, err := schema.FromNative(val)
		if err != nil {
			return nil, err
		}
		return &table.Where{Column: col, Value: v}, nil
	}
	return nil, nil
}

// fail maps an engine error onto its HTTP status category and logs it.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		slog.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeError(w, status, err)
}

// statusFor maps the engine's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrTableNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrTableExists),
		errors.Is(err, common.ErrConstraintViolation),
		errors.Is(err, common.ErrIndexExists):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnknownColumn),
		errors.Is(err, common.ErrInvalidSchema),
		errors.Is(err, common.ErrArityMismatch),
		errors.Is(err, common.ErrTypeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrStorageIO),
		errors.Is(err, common.ErrCorruptData):
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}
