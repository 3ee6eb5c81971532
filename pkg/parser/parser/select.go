package parser

import (
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
)

// SelectParser parses
//
//	SELECT [ALL | DISTINCT] (* | name, ...) FROM name [;]
type SelectParser struct{}

func (p *SelectParser) Parse(l *lexer.Lexer) (statements.Statement, error) {
	if _, err := l.Keyword("select"); err != nil {
		return nil, err
	}
	if err := l.Space1(); err != nil {
		return nil, err
	}

	distinct := false
	if optionalKeywords(l, "distinct") {
		distinct = true
	} else {
		optionalKeywords(l, "all")
	}

	fields, err := parseSelectFields(l)
	if err != nil {
		return nil, err
	}

	if err := l.Space1(); err != nil {
		return nil, err
	}
	if _, err := l.Keyword("from"); err != nil {
		return nil, err
	}
	if err := l.Space1(); err != nil {
		return nil, err
	}

	tableName, err := parseName(l)
	if err != nil {
		return nil, err
	}
	parseTerminator(l)

	stmt := statements.NewSelectStatement(tableName, fields, distinct)
	if err := stmt.Validate(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func parseSelectFields(l *lexer.Lexer) (statements.SelectFields, error) {
	if _, err := l.Symbol("*"); err == nil {
		return statements.AllFields(), nil
	}

	names, err := parseList(l, parseName)
	if err != nil {
		return statements.SelectFields{}, err
	}
	return statements.SomeFields(names...), nil
}
