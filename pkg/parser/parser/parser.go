package parser

import (
	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
)

// statementParser parses one statement kind starting at the lexer's
// current position.
type statementParser interface {
	Parse(l *lexer.Lexer) (statements.Statement, error)
}

// ParseStatement parses a SQL statement string and returns the corresponding Statement object.
// The leading word picks the statement kind:
//   - CREATE TABLE: Define new table schemas
//   - SELECT: Project columns of a table
//   - INSERT: Add new rows to a table
//
// The chosen parser must consume the whole input. Every failure is returned
// as a *dberror.DBError with code INVALID_QUERY whose cause is either a
// *lexer.SyntaxError or a *statements.ValidationError.
func ParseStatement(sql string) (statements.Statement, error) {
	l := lexer.NewLexer(sql)
	if l.AtEOF() {
		return nil, dberror.NewInvalidQuery("empty input", nil)
	}

	var p statementParser
	switch l.PeekWord() {
	case "create":
		p = &CreateStatementParser{}
	case "select":
		p = &SelectParser{}
	case "insert":
		p = &InsertParser{}
	default:
		return nil, dberror.NewInvalidQuery("unrecognized input", nil)
	}

	stmt, err := p.Parse(l)
	if err != nil {
		return nil, dberror.NewInvalidQuery(err.Error(), err)
	}

	if err := l.ExpectEOF(); err != nil {
		return nil, dberror.NewInvalidQuery(err.Error(), err)
	}
	return stmt, nil
}
