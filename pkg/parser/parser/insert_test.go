package parser

import (
	"testing"

	"github.com/superhawk610/sqlit/pkg/parser/statements"
	"github.com/superhawk610/sqlit/pkg/types"
)

func TestParseStatement_Insert(t *testing.T) {
	stmt, err := ParseStatement(`INSERT INTO "users" (id, name, score) VALUES (1, 'ann', 2.5), ( 2 ,'bob',3. );`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ins, ok := stmt.(*statements.InsertStatement)
	if !ok {
		t.Fatalf("expected *InsertStatement, got %T", stmt)
	}

	if ins.TableName != "users" {
		t.Errorf("TableName = %q", ins.TableName)
	}
	if len(ins.Columns) != 3 || ins.Columns[2] != "score" {
		t.Errorf("Columns = %v", ins.Columns)
	}

	expected := [][]types.Field{
		{types.NewIntField(1), types.NewTextField("ann"), types.NewRealField(2.5)},
		{types.NewIntField(2), types.NewTextField("bob"), types.NewRealField(3)},
	}
	if len(ins.Values) != len(expected) {
		t.Fatalf("got %d rows, want %d", len(ins.Values), len(expected))
	}
	for i, row := range expected {
		for j, want := range row {
			if !types.FieldsEqual(ins.Values[i][j], want) {
				t.Errorf("Values[%d][%d] = %v, want %v", i, j, ins.Values[i][j], want)
			}
		}
	}
}

func TestParseStatement_InsertCompact(t *testing.T) {
	stmt, err := ParseStatement("insert into t(a)values(1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stmt.String(); got != "INSERT INTO t (a) VALUES (1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseStatement_InsertErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{"too few values", "INSERT INTO t (a, b) VALUES (1)", "expected 2 values, got 1"},
		{"too many values", "INSERT INTO t (a) VALUES (1), (2, 3)", "expected 1 values, got 2"},
		{"missing into", "INSERT t (a) VALUES (1)", "expected"},
		{"missing columns", "INSERT INTO t VALUES (1)", "expected"},
		{"missing values keyword", "INSERT INTO t (a) (1)", "expected"},
		{"empty tuple", "INSERT INTO t (a) VALUES ()", "expected"},
		{"bare identifier value", "INSERT INTO t (a) VALUES (x)", "expected"},
		{"integer overflow", "INSERT INTO t (a) VALUES (99999999999999999999)", "expected"},
		{"unterminated text", "INSERT INTO t (a) VALUES ('abc)", "expected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatement(tt.sql)
			expectInvalidQuery(t, err, tt.want)
		})
	}
}
