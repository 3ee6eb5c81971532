// Package parser converts SQL text into typed statements.
//
// ParseStatement is the single entry point. It looks at the leading word of
// the input, runs the matching statement parser over the lexer primitives and
// requires that the whole input is consumed.
//
// # Supported statements
//
//   - CREATE TABLE [IF NOT EXISTS] with INTEGER, REAL, TEXT and BLOB columns
//     and the PRIMARY KEY [AUTOINCREMENT], DEFAULT, NOT NULL and UNIQUE
//     column constraints
//   - SELECT [ALL | DISTINCT] with * or a column list
//   - INSERT INTO ... VALUES with one or more value tuples
//
// Keywords are case-insensitive. Whitespace is significant: it is required
// between keywords and names, and optional inside parentheses, around commas
// and before a trailing semicolon.
//
// # Usage
//
//	stmt, err := parser.ParseStatement("SELECT id, name FROM users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Type-switch on *statements.SelectStatement, *statements.CreateStatement, etc.
//
// # Error handling
//
// Failures are returned as *dberror.DBError with code INVALID_QUERY. The
// cause is a *lexer.SyntaxError carrying the failing position, or a
// *statements.ValidationError for well-formed input that breaks a rule such
// as declaring two primary keys. The parser does not panic on malformed
// input.
package parser
