package database

import (
	"fmt"

	"reldb/schema"
	"reldb/table"
)

// Operation names a structured command kind.
type Operation string

const (
	OpCreateTable Operation = "CREATE_TABLE"
	OpDropTable   Operation = "DROP_TABLE"
	OpInsert      Operation = "INSERT"
	OpSelect      Operation = "SELECT"
	OpUpdate      Operation = "UPDATE"
	OpDelete      Operation = "DELETE"
	OpCreateIndex Operation = "CREATE_INDEX"
	OpJoin        Operation = "JOIN"
)

// JoinSpec names the second table and the two join columns.
type JoinSpec struct {
	OtherTable  string
	LeftColumn  string
	RightColumn string
}

// Command is the structured form of one request, as produced by the SQL
// parser or assembled directly by a front end. Which fields are meaningful
// depends on Operation.
type Command struct {
	Operation   Operation
	TableName   string
	Columns     schema.Schema           // CREATE_TABLE
	Values      []schema.Value          // INSERT
	Projection  []string                // SELECT; empty means all columns
	Where       *table.Where            // SELECT, UPDATE, DELETE
	Set         map[string]schema.Value // UPDATE
	IndexColumn string                  // CREATE_INDEX
	Join        *JoinSpec               // JOIN
}

// Result is the payload side of a completed command: a status message for
// mutations, or columns plus rows for queries.
type Result struct {
	Message string
	Count   int
	Columns []string
	Rows    [][]schema.Value
}

// Execute dispatches a structured command to the matching engine operation.
func (db *Database) Execute(cmd *Command) (*Result, error) {
	switch cmd.Operation {
	case OpCreateTable:
		if err := db.CreateTable(cmd.TableName, cmd.Columns); err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Table '%s' created", cmd.TableName)}, nil

	case OpDropTable:
		if err := db.DropTable(cmd.TableName); err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Table '%s' dropped", cmd.TableName)}, nil

	case OpInsert:
		count, err := db.Insert(cmd.TableName, cmd.Values)
		if err != nil {
			return nil, err
		}
		return &Result{Count: count, Message: fmt.Sprintf("%d row inserted", count)}, nil

	case OpSelect:
		rs, err := db.Select(cmd.TableName, cmd.Projection, cmd.Where)
		if err != nil {
			return nil, err
		}
		return &Result{Columns: rs.Columns, Rows: rs.Rows, Count: len(rs.Rows)}, nil

	case OpUpdate:
		count, err := db.Update(cmd.TableName, cmd.Set, cmd.Where)
		if err != nil {
			return nil, err
		}
		return &Result{Count: count, Message: fmt.Sprintf("%d row(s) updated", count)}, nil

	case OpDelete:
		count, err := db.Delete(cmd.TableName, cmd.Where)
		if err != nil {
			return nil, err
		}
		return &Result{Count: count, Message: fmt.Sprintf("%d row(s) deleted", count)}, nil

	case OpCreateIndex:
		if err := db.CreateIndex(cmd.TableName, cmd.IndexColumn); err != nil {
			return nil, err
		}
		return &Result{Message: fmt.Sprintf("Index created on '%s'", cmd.IndexColumn)}, nil

	case OpJoin:
		if cmd.Join == nil {
			return nil, fmt.Errorf("join command missing join clause")
		}
		rs, err := db.JoinTables(cmd.TableName, cmd.Join.OtherTable, cmd.Join.LeftColumn, cmd.Join.RightColumn)
		if err != nil {
			return nil, err
		}
		return &Result{Columns: rs.Columns, Rows: rs.Rows, Count: len(rs.Rows)}, nil
	}

	return nil, fmt.Errorf("unsupported operation: %s", cmd.Operation)
}
