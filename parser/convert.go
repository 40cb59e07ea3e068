package parser

import (
	"fmt"
	"strings"

	"reldb/database"
	"reldb/schema"
	"reldb/table"
)

// ParseCommand parses one SQL-ish line all the way to the structured command
// form the engine consumes.
func ParseCommand(sql string) (*database.Command, error) {
	stmt, err := Parse(sql)
	if err != nil {
		return nil, err
	}
	return stmt.Command()
}

// Command lowers a parsed statement into a database.Command.
func (s *Statement) Command() (*database.Command, error) {
	switch {
	case s.CreateTable != nil:
		cols := make(schema.Schema, len(s.CreateTable.Columns))
		for i, def := range s.CreateTable.Columns {
			cols[i] = schema.Column{
				Name:       def.Name,
				Type:       schema.ColumnType(strings.ToUpper(def.Type)),
				PrimaryKey: def.PrimaryKey,
				Unique:     def.Unique,
			}
		}
		return &database.Command{
			Operation: database.OpCreateTable,
			TableName: s.CreateTable.Name,
			Columns:   cols,
		}, nil

	case s.CreateIndex != nil:
		return &database.Command{
			Operation:   database.OpCreateIndex,
			TableName:   s.CreateIndex.Table,
			IndexColumn: s.CreateIndex.Column,
		}, nil

	case s.DropTable != nil:
		return &database.Command{
			Operation: database.OpDropTable,
			TableName: s.DropTable.Name,
		}, nil

	case s.Insert != nil:
		values := make([]schema.Value, len(s.Insert.Values))
		for i, lit := range s.Insert.Values {
			values[i] = lit.Value()
		}
		return &database.Command{
			Operation: database.OpInsert,
			TableName: s.Insert.Table,
			Values:    values,
		}, nil

	case s.Select != nil:
		return s.Select.command()

	case s.Update != nil:
		set := make(map[string]schema.Value, len(s.Update.Set))
		for _, assign := range s.Update.Set {
			set[assign.Column] = assign.Value.Value()
		}
		return &database.Command{
			Operation: database.OpUpdate,
			TableName: s.Update.Table,
			Set:       set,
			Where:     s.Update.Where.filter(),
		}, nil

	case s.Delete != nil:
		return &database.Command{
			Operation: database.OpDelete,
			TableName: s.Delete.Table,
			Where:     s.Delete.Where.filter(),
		}, nil
	}

	return nil, fmt.Errorf("invalid SQL: empty statement")
}

func (s *SelectStmt) command() (*database.Command, error) {
	if s.Join == nil {
		var projection []string
		if !s.Star {
			projection = s.Columns
		}
		return &database.Command{
			Operation:  database.OpSelect,
			TableName:  s.Table,
			Projection: projection,
			Where:      s.Where.filter(),
		}, nil
	}

	if !s.Star {
		return nil, fmt.Errorf("invalid SQL: JOIN supports only SELECT *")
	}
	if s.Where != nil {
		return nil, fmt.Errorf("invalid SQL: JOIN does not support WHERE")
	}
	leftCol, err := qualifiedColumn(s.Join.Left, s.Table)
	if err != nil {
		return nil, err
	}
	rightCol, err := qualifiedColumn(s.Join.Right, s.Join.Table)
	if err != nil {
		return nil, err
	}
	return &database.Command{
		Operation: database.OpJoin,
		TableName: s.Table,
		Join: &database.JoinSpec{
			OtherTable:  s.Join.Table,
			LeftColumn:  leftCol,
			RightColumn: rightCol,
		},
	}, nil
}

// qualifiedColumn strips a table qualifier from an ON operand, insisting that
// any qualifier present names the side's table.
func qualifiedColumn(name, tableName string) (string, error) {
	qualifier, column, found := strings.Cut(name, ".")
	if !found {
		return name, nil
	}
	if !strings.EqualFold(qualifier, tableName) {
		return "", fmt.Errorf("invalid SQL: '%s' does not belong to table '%s'", name, tableName)
	}
	return column, nil
}

func (w *WhereClause) filter() *table.Where {
	if w == nil {
		return nil
	}
	return &table.Where{Column: w.Column, Value: w.Value.Value()}
}

// Value converts a source literal into the engine's tagged value form.
func (l Literal) Value() schema.Value {
	switch {
	case l.Str != nil:
		s := *l.Str
		if len(s) >= 2 {
			s = s[1 : len(s)-1] // strip surrounding quotes
		}
		return schema.Text(s)
	case l.True:
		return schema.Bool(true)
	case l.False:
		return schema.Bool(false)
	case l.Float != nil:
		f := *l.Float
		if l.Minus {
			f = -f
		}
		return schema.Float(f)
	case l.Int != nil:
		i := *l.Int
		if l.Minus {
			i = -i
		}
		return schema.Int(i)
	}
	return schema.Value{}
}
