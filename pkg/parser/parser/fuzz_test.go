package parser

import (
	"errors"
	"testing"

	dberror "github.com/superhawk610/sqlit/pkg/error"
)

func FuzzParseStatement(f *testing.F) {
	// Seed corpus: representative statements plus common malformed inputs.
	seeds := []string{
		"SELECT * FROM users",
		"SELECT DISTINCT id, name FROM users;",
		"SELECT ALL a FROM t",
		`CREATE TABLE "t" (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT DEFAULT 'x')`,
		"CREATE TABLE IF NOT EXISTS t (a REAL NOT NULL UNIQUE PRIMARY KEY, b BLOB)",
		"INSERT INTO t (a, b) VALUES (1, 'x'), (2.5, 'y')",
		// Truncated / malformed
		"SELECT",
		"INSERT INTO",
		"CREATE TABLE",
		"",
		"SELECT * FROM",
		"CREATE TABLE t (",
		`SELECT "`,
		"INSERT INTO t (a) VALUES ('",
		"select distinct * from t",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// ParseStatement must never panic on arbitrary input.
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ParseStatement panicked on %q: %v", input, r)
			}
		}()

		stmt, err := ParseStatement(input)
		if err != nil {
			var dbErr *dberror.DBError
			if !errors.As(err, &dbErr) || dbErr.Code != dberror.CodeInvalidQuery {
				t.Errorf("ParseStatement(%q) returned non INVALID_QUERY error %v", input, err)
			}
			return
		}
		if stmt == nil {
			t.Errorf("ParseStatement(%q) returned nil statement without error", input)
		}
	})
}
