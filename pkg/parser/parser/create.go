package parser

import (
	"github.com/superhawk610/sqlit/pkg/catalog/schema"
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
	"github.com/superhawk610/sqlit/pkg/table"
)

// CreateStatementParser parses
//
//	CREATE TABLE [IF NOT EXISTS] name (column_def, ...) [;]
type CreateStatementParser struct{}

func (p *CreateStatementParser) Parse(l *lexer.Lexer) (statements.Statement, error) {
	if err := expectKeywords(l, "create", "table"); err != nil {
		return nil, err
	}
	if err := l.Space1(); err != nil {
		return nil, err
	}

	ifNotExists := optionalKeywords(l, "if", "not", "exists")

	tableName, err := parseName(l)
	if err != nil {
		return nil, err
	}
	if err := l.Space1(); err != nil {
		return nil, err
	}

	defs, err := parseParenthesized(l, parseColumnDef)
	if err != nil {
		return nil, err
	}
	parseTerminator(l)

	t, err := buildTable(tableName, defs)
	if err != nil {
		return nil, err
	}

	stmt := statements.NewCreateStatement(t, ifNotExists)
	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// buildTable aggregates the column declarations, enforcing exactly one
// primary key. Autoincrement is taken from the primary key column only.
func buildTable(name string, defs []columnDef) (*table.Table, error) {
	columns := make([]schema.Column, 0, len(defs))
	primaryKey := -1
	autoIncrement := false

	for i, def := range defs {
		if def.isPrimaryKey {
			if primaryKey >= 0 {
				return nil, statements.NewValidationError(
					statements.CreateTable, def.column.Name, "only one primary key may be specified")
			}
			primaryKey = i
			autoIncrement = def.wantsAutoIncrement
		}
		columns = append(columns, def.column)
	}

	if primaryKey < 0 {
		return nil, statements.NewValidationError(statements.CreateTable, name, "no primary key specified")
	}

	return table.NewTableFromColumns(name, columns, primaryKey, autoIncrement)
}
