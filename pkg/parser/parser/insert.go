package parser

import (
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
	"github.com/superhawk610/sqlit/pkg/types"
)

// InsertParser parses
//
//	INSERT INTO name (column, ...) VALUES (value, ...)[, (value, ...)]* [;]
type InsertParser struct{}

func (p *InsertParser) Parse(l *lexer.Lexer) (statements.Statement, error) {
	if err := expectKeywords(l, "insert", "into"); err != nil {
		return nil, err
	}
	if err := l.Space1(); err != nil {
		return nil, err
	}

	tableName, err := parseName(l)
	if err != nil {
		return nil, err
	}
	l.Space0()

	columns, err := parseParenthesized(l, parseName)
	if err != nil {
		return nil, err
	}

	l.Space0()
	if _, err := l.Keyword("values"); err != nil {
		return nil, err
	}
	l.Space0()

	rows, err := parseList(l, parseValueTuple)
	if err != nil {
		return nil, err
	}
	parseTerminator(l)

	stmt := statements.NewInsertStatement(tableName, columns)
	for _, row := range rows {
		stmt.AddValues(row)
	}

	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func parseValueTuple(l *lexer.Lexer) ([]types.Field, error) {
	return parseParenthesized(l, parseValue)
}
