package executor

import (
	"strings"

	"reldb/database"
	"reldb/parser"
)

// Executor runs SQL-ish text against the database and renders results as
// REPL output lines.
type Executor struct {
	db *database.Database
}

// New creates an executor bound to a database.
func New(db *database.Database) *Executor {
	return &Executor{db: db}
}

// Execute parses and runs one statement, returning the rendered result.
func (e *Executor) Execute(sql string) (string, error) {
	cmd, err := parser.ParseCommand(sql)
	if err != nil {
		return "", err
	}

	result, err := e.db.Execute(cmd)
	if err != nil {
		return "", err
	}
	return render(result), nil
}

// render formats a command result: the status message for mutations, or a
// header line plus one line per row for queries.
func render(result *database.Result) string {
	if result.Columns == nil {
		return result.Message
	}
	if len(result.Rows) == 0 {
		return "No results"
	}

	var b strings.Builder
	b.WriteString(strings.Join(result.Columns, " | "))
	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, " | "))
	}
	return b.String()
}
