package parser

import (
	"testing"

	"github.com/superhawk610/sqlit/pkg/parser/statements"
)

func TestParseStatement_Select(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		table    string
		all      bool
		fields   []string
		distinct bool
	}{
		{"star", "SELECT * FROM t", "t", true, nil, false},
		{"single column", "SELECT id FROM users", "users", false, []string{"id"}, false},
		{"column list", "SELECT id, name FROM users", "users", false, []string{"id", "name"}, false},
		{"no space after comma", "SELECT id,name FROM users", "users", false, []string{"id", "name"}, false},
		{"request order kept", "SELECT name , id FROM users", "users", false, []string{"name", "id"}, false},
		{"distinct", "SELECT DISTINCT id FROM t", "t", false, []string{"id"}, true},
		{"all modifier", "SELECT ALL id FROM t", "t", false, []string{"id"}, false},
		{"all with star", "SELECT ALL * FROM t", "t", true, nil, false},
		{"quoted names", `SELECT "id", name FROM "t"`, "t", false, []string{"id", "name"}, false},
		{"column named like modifier", "SELECT allowed FROM t", "t", false, []string{"allowed"}, false},
		{"semicolon", "select distinct a from t;", "t", false, []string{"a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseStatement(tt.sql)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sel, ok := stmt.(*statements.SelectStatement)
			if !ok {
				t.Fatalf("expected *SelectStatement, got %T", stmt)
			}

			if sel.TableName != tt.table {
				t.Errorf("TableName = %q, want %q", sel.TableName, tt.table)
			}
			if sel.Distinct != tt.distinct {
				t.Errorf("Distinct = %v, want %v", sel.Distinct, tt.distinct)
			}
			if sel.Fields.IsAll() != tt.all {
				t.Fatalf("IsAll() = %v, want %v", sel.Fields.IsAll(), tt.all)
			}

			got := sel.Fields.Names()
			if len(got) != len(tt.fields) {
				t.Fatalf("Names() = %v, want %v", got, tt.fields)
			}
			for i := range got {
				if got[i] != tt.fields[i] {
					t.Errorf("Names()[%d] = %q, want %q", i, got[i], tt.fields[i])
				}
			}
		})
	}
}

func TestParseStatement_SelectDistinctStar(t *testing.T) {
	_, err := ParseStatement("SELECT DISTINCT * FROM t")
	expectInvalidQuery(t, err, "cannot select distinct on *")

	if _, err := ParseStatement("SELECT DISTINCT id FROM t"); err != nil {
		t.Errorf("SELECT DISTINCT id should parse, got %v", err)
	}
}

func TestParseStatement_SelectErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"missing fields", "SELECT FROM t"},
		{"missing from", "SELECT * t"},
		{"missing table", "SELECT * FROM"},
		{"trailing comma", "SELECT a, FROM t"},
		{"no space before from", "SELECT *FROM t"},
		{"where clause", "SELECT * FROM t WHERE id = 1"},
		{"unbalanced quote", `SELECT "a FROM t`},
		{"two tables", "SELECT * FROM t, u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatement(tt.sql)
			expectInvalidQuery(t, err, "expected")
		})
	}
}
