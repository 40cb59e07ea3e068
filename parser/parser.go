package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// sqlLexer tokenizes the SQL-ish command language. Float must precede Int so
// "1.5" is one token, and Ident admits one dotted segment for the qualified
// column names JOIN uses (users.city_id).
var sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Float", Pattern: `\d+\.\d*([eE][-+]?\d+)?|\d+[eE][-+]?\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)?`},
	{Name: "Punct", Pattern: `[(),=*\-]`},
})

var sqlParser = participle.MustBuild[Statement](
	participle.Lexer(sqlLexer),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(3),
)

// Statement is the root grammar rule: exactly one command form.
type Statement struct {
	CreateTable *CreateTableStmt `parser:"  @@"`
	CreateIndex *CreateIndexStmt `parser:"| @@"`
	DropTable   *DropTableStmt   `parser:"| @@"`
	Insert      *InsertStmt      `parser:"| @@"`
	Select      *SelectStmt      `parser:"| @@"`
	Update      *UpdateStmt      `parser:"| @@"`
	Delete      *DeleteStmt      `parser:"| @@"`
}

// CreateTableStmt: CREATE TABLE name (col TYPE [PRIMARY KEY] [UNIQUE], ...)
type CreateTableStmt struct {
	Name    string      `parser:"'CREATE' 'TABLE' @Ident"`
	Columns []ColumnDef `parser:"'(' @@ (',' @@)* ')'"`
}

// ColumnDef is one column definition inside CREATE TABLE.
type ColumnDef struct {
	Name       string `parser:"@Ident"`
	Type       string `parser:"@('INT' | 'TEXT' | 'FLOAT' | 'BOOL')"`
	PrimaryKey bool   `parser:"( @('PRIMARY' 'KEY')"`
	Unique     bool   `parser:"| @'UNIQUE' )*"`
}

// CreateIndexStmt: CREATE INDEX ON table (column)
type CreateIndexStmt struct {
	Table  string `parser:"'CREATE' 'INDEX' 'ON' @Ident"`
	Column string `parser:"'(' @Ident ')'"`
}

// DropTableStmt: DROP TABLE name
type DropTableStmt struct {
	Name string `parser:"'DROP' 'TABLE' @Ident"`
}

// InsertStmt: INSERT INTO table VALUES (v1, v2, ...)
type InsertStmt struct {
	Table  string    `parser:"'INSERT' 'INTO' @Ident"`
	Values []Literal `parser:"'VALUES' '(' @@ (',' @@)* ')'"`
}

// SelectStmt covers both plain selects and the single-join form:
//
//	SELECT cols|* FROM table [WHERE col = v]
//	SELECT * FROM left [INNER] JOIN right ON left.col = right.col
type SelectStmt struct {
	Star    bool         `parser:"'SELECT' ( @'*'"`
	Columns []string     `parser:"| @Ident (',' @Ident)* )"`
	Table   string       `parser:"'FROM' @Ident"`
	Join    *JoinClause  `parser:"@@?"`
	Where   *WhereClause `parser:"('WHERE' @@)?"`
}

// JoinClause: [INNER] JOIN table ON left.col = right.col
type JoinClause struct {
	Inner bool   `parser:"@'INNER'?"`
	Table string `parser:"'JOIN' @Ident"`
	Left  string `parser:"'ON' @Ident"`
	Right string `parser:"'=' @Ident"`
}

// UpdateStmt: UPDATE table SET col = v [, col = v ...] [WHERE col = v]
type UpdateStmt struct {
	Table string       `parser:"'UPDATE' @Ident 'SET'"`
	Set   []Assignment `parser:"@@ (',' @@)*"`
	Where *WhereClause `parser:"('WHERE' @@)?"`
}

// Assignment is one col = value pair in a SET clause.
type Assignment struct {
	Column string  `parser:"@Ident '='"`
	Value  Literal `parser:"@@"`
}

// DeleteStmt: DELETE FROM table [WHERE col = v]
type DeleteStmt struct {
	Table string       `parser:"'DELETE' 'FROM' @Ident"`
	Where *WhereClause `parser:"('WHERE' @@)?"`
}

// WhereClause is the sole predicate form: one column equals one literal.
type WhereClause struct {
	Column string  `parser:"@Ident '='"`
	Value  Literal `parser:"@@"`
}

// Literal is a typed source literal. The token class decides the type: a
// quoted string is TEXT, a number with a decimal point or exponent is FLOAT,
// a bare number is INT, true/false are BOOL.
type Literal struct {
	Str   *string  `parser:"  @String"`
	True  bool     `parser:"| @'TRUE'"`
	False bool     `parser:"| @'FALSE'"`
	Minus bool     `parser:"| ( @'-'?"`
	Float *float64 `parser:"    ( @Float"`
	Int   *int64   `parser:"    | @Int ) )"`
}

// Parse turns one SQL-ish line into its grammar form.
func Parse(sql string) (*Statement, error) {
	stmt, err := sqlParser.ParseString("", sql)
	if err != nil {
		return nil, fmt.Errorf("invalid SQL: %w", err)
	}
	return stmt, nil
}
