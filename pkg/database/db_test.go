package database

import (
	"errors"
	"sync"
	"testing"

	"github.com/superhawk610/sqlit/pkg/catalog"
	"github.com/superhawk610/sqlit/pkg/catalog/schema"
	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/parser/parser"
	"github.com/superhawk610/sqlit/pkg/table"
	"github.com/superhawk610/sqlit/pkg/types"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := Open("test_db")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustExec(t *testing.T, db *Database, sql string) QueryResult {
	t.Helper()
	res, err := db.ExecuteQuery(sql)
	if err != nil {
		t.Fatalf("ExecuteQuery(%q) error = %v", sql, err)
	}
	if !res.Success {
		t.Fatalf("ExecuteQuery(%q) unsuccessful: %s", sql, res.Message)
	}
	return res
}

func tableNames(t *testing.T, db *Database) []string {
	t.Helper()
	names, err := db.GetTables()
	if err != nil {
		t.Fatalf("GetTables() error = %v", err)
	}
	return names
}

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !dberror.IsCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expectErr  bool
	}{
		{"plain name", "main", false},
		{"path like", "/tmp/data.db", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(tt.identifier)
			if tt.expectErr {
				expectCode(t, err, dberror.CodeConnectionFailure)
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if db.Name() != tt.identifier {
				t.Errorf("Name() = %q, want %q", db.Name(), tt.identifier)
			}
			if len(tableNames(t, db)) != 0 {
				t.Error("new database should have no tables")
			}
		})
	}
}

func TestExecuteQuery_SelectProjection(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)")
	mustExec(t, db, "INSERT INTO t (id) VALUES (1)")
	mustExec(t, db, "INSERT INTO t (id, name) VALUES (2, 'x')")

	res := mustExec(t, db, "SELECT name, id FROM t")

	if len(res.Columns) != 2 || res.Columns[0] != "id" || res.Columns[1] != "name" {
		t.Fatalf("Columns = %v, want [id name]", res.Columns)
	}
	expected := [][]string{{"1", "NULL"}, {"2", "x"}}
	if len(res.Rows) != len(expected) {
		t.Fatalf("got %d rows, want %d", len(res.Rows), len(expected))
	}
	for i := range expected {
		for j := range expected[i] {
			if res.Rows[i][j] != expected[i][j] {
				t.Errorf("Rows[%d][%d] = %q, want %q", i, j, res.Rows[i][j], expected[i][j])
			}
		}
	}
	if res.Message != "2 row(s) returned" {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestExecuteQuery_SelectStarAndDistinct(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY, kind TEXT DEFAULT 'a', score REAL)")
	mustExec(t, db, "INSERT INTO t (id) VALUES (1), (2)")
	mustExec(t, db, "INSERT INTO t (id, kind, score) VALUES (3, 'b', 1.5), (4, 'a', 2.0)")

	star := mustExec(t, db, "SELECT * FROM t")
	if len(star.Columns) != 3 || len(star.Rows) != 4 {
		t.Fatalf("SELECT * returned %v columns and %d rows", star.Columns, len(star.Rows))
	}
	if star.Rows[0][1] != "a" || star.Rows[0][2] != "NULL" {
		t.Errorf("first row = %v, want default kind and empty score", star.Rows[0])
	}

	distinct := mustExec(t, db, "SELECT DISTINCT kind FROM t")
	if len(distinct.Rows) != 2 || distinct.Rows[0][0] != "a" || distinct.Rows[1][0] != "b" {
		t.Errorf("SELECT DISTINCT kind = %v, want [[a] [b]]", distinct.Rows)
	}

	all := mustExec(t, db, "SELECT ALL kind FROM t")
	if len(all.Rows) != 4 {
		t.Errorf("SELECT ALL kind returned %d rows, want 4", len(all.Rows))
	}
}

func TestExecuteQuery_Errors(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY)")

	tests := []struct {
		name string
		sql  string
		code string
	}{
		{"parse error", "SELEC * FROM t", dberror.CodeInvalidQuery},
		{"distinct star", "SELECT DISTINCT * FROM t", dberror.CodeInvalidQuery},
		{"select missing table", "SELECT * FROM nope", dberror.CodeTableNotFound},
		{"insert missing table", "INSERT INTO nope (id) VALUES (1)", dberror.CodeTableNotFound},
		{"insert unknown column", "INSERT INTO t (ghost) VALUES (1)", dberror.CodeInvalidInsert},
		{"create duplicate", "CREATE TABLE t (id INTEGER PRIMARY KEY)", dberror.CodeTableAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecuteQuery(tt.sql)
			expectCode(t, err, tt.code)
		})
	}

	stats := db.GetStatistics()
	if stats.ErrorCount != int64(len(tests)) {
		t.Errorf("ErrorCount = %d, want %d", stats.ErrorCount, len(tests))
	}
	if stats.RowCount != 0 {
		t.Errorf("failed inserts must not add rows, RowCount = %d", stats.RowCount)
	}
}

func TestExecuteQuery_CreateIfNotExists(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)")

	res := mustExec(t, db, "CREATE TABLE IF NOT EXISTS t (other BLOB PRIMARY KEY)")
	if res.Message != "Table t already exists, skipped" {
		t.Errorf("Message = %q", res.Message)
	}

	def, err := db.GetTableSchema("t")
	if err != nil {
		t.Fatalf("GetTableSchema() error = %v", err)
	}
	if def != "CREATE TABLE t (id INTEGER PRIMARY KEY, name TEXT)" {
		t.Errorf("existing table changed: %s", def)
	}
}

func TestExecuteQuery_TableAlreadyExistsHint(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY)")

	_, err := db.ExecuteQuery("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	var dbErr *dberror.DBError
	if !errors.As(err, &dbErr) {
		t.Fatalf("expected *DBError, got %v", err)
	}
	if dbErr.Hint == "" {
		t.Error("expected a hint suggesting IF NOT EXISTS")
	}
}

func TestDatabase_ProgrammaticAPI(t *testing.T) {
	db := setupDatabase(t)

	sch, err := schema.NewSchemaBuilder().
		AddAutoIncrement("id").
		AddColumn("email", types.TextType).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	res, err := db.CreateTable(table.NewTable("accounts", sch), false)
	if err != nil || res != catalog.Created {
		t.Fatalf("CreateTable() = %v, %v", res, err)
	}
	res, err = db.CreateTable(table.NewTable("accounts", sch), true)
	if err != nil || res != catalog.Skipped {
		t.Fatalf("CreateTable(ifNotExists) = %v, %v", res, err)
	}

	if err := db.Insert("accounts", map[string]types.Field{
		"email": types.NewTextField("a@example.com"),
		"id":    types.NewIntField(10),
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	expectCode(t, db.Insert("missing", nil), dberror.CodeTableNotFound)

	result, err := db.Select("accounts", []string{"email"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	rows := result.Rows()
	if len(rows) != 1 || rows[0][0].String() != "a@example.com" {
		t.Errorf("Select() rows = %v", rows)
	}

	_, err = db.Select("missing", nil)
	expectCode(t, err, dberror.CodeTableNotFound)
}

func TestDatabase_Statistics(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE b (id INTEGER PRIMARY KEY)")
	mustExec(t, db, "CREATE TABLE a (id INTEGER PRIMARY KEY)")
	mustExec(t, db, "INSERT INTO a (id) VALUES (1), (2), (3)")
	mustExec(t, db, "SELECT id FROM a")

	stats := db.GetStatistics()
	if stats.Name != "test_db" {
		t.Errorf("Name = %q", stats.Name)
	}
	if stats.TableCount != 2 || stats.Tables[0] != "a" || stats.Tables[1] != "b" {
		t.Errorf("Tables = %v", stats.Tables)
	}
	if stats.QueriesExecuted != 4 {
		t.Errorf("QueriesExecuted = %d, want 4", stats.QueriesExecuted)
	}
	if stats.RowsInserted != 3 || stats.RowCount != 3 {
		t.Errorf("RowsInserted = %d, RowCount = %d, want 3", stats.RowsInserted, stats.RowCount)
	}
	if stats.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d", stats.ErrorCount)
	}
}

func TestDatabase_Close(t *testing.T) {
	db, err := Open("closing")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY)")

	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	_, err = db.ExecuteQuery("SELECT * FROM t")
	expectCode(t, err, dberror.CodeConnectionFailure)
	expectCode(t, db.Insert("t", nil), dberror.CodeConnectionFailure)

	_, err = db.GetTables()
	expectCode(t, err, dberror.CodeConnectionFailure)
	_, err = db.GetTableSchema("t")
	expectCode(t, err, dberror.CodeConnectionFailure)
}

func TestExecute_SameStatementOnTwoDatabases(t *testing.T) {
	stmt, err := parser.ParseStatement("CREATE TABLE t (id INTEGER PRIMARY KEY)")
	if err != nil {
		t.Fatalf("ParseStatement() error = %v", err)
	}

	first := setupDatabase(t)
	second := setupDatabase(t)
	for _, db := range []*Database{first, second} {
		if _, err := db.Execute(stmt); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}

	if err := first.Insert("t", map[string]types.Field{"id": types.NewIntField(1)}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	res := mustExec(t, second, "SELECT id FROM t")
	if len(res.Rows) != 0 {
		t.Errorf("rows leaked between databases: %v", res.Rows)
	}
	if got := first.GetStatistics().RowCount; got != 1 {
		t.Errorf("first RowCount = %d, want 1", got)
	}
}

func TestExecuteQuery_DistinctKeepsRowsWithQuotes(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE d (id INTEGER PRIMARY KEY, a TEXT, b TEXT)")

	rows := []map[string]types.Field{
		{"id": types.NewIntField(1), "a": types.NewTextField("p"), "b": types.NewTextField("q'\x001:'r")},
		{"id": types.NewIntField(2), "a": types.NewTextField("p'\x001:'q"), "b": types.NewTextField("r")},
	}
	for _, row := range rows {
		if err := db.Insert("d", row); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	res := mustExec(t, db, "SELECT DISTINCT a, b FROM d")
	if len(res.Rows) != 2 {
		t.Errorf("DISTINCT kept %d rows, want 2: %v", len(res.Rows), res.Rows)
	}
}

func TestDatabase_ConcurrentAccess(t *testing.T) {
	db := setupDatabase(t)
	mustExec(t, db, "CREATE TABLE t (id INTEGER PRIMARY KEY, worker INTEGER)")

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				if err := db.Insert("t", map[string]types.Field{
					"id":     types.NewIntField(int64(w*perWorker + i)),
					"worker": types.NewIntField(int64(w)),
				}); err != nil {
					t.Errorf("Insert() error = %v", err)
					return
				}
				if _, err := db.ExecuteQuery("SELECT worker FROM t"); err != nil {
					t.Errorf("ExecuteQuery() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	res := mustExec(t, db, "SELECT * FROM t")
	if len(res.Rows) != workers*perWorker {
		t.Errorf("got %d rows, want %d", len(res.Rows), workers*perWorker)
	}
	for i, row := range res.Rows {
		if len(row) != 2 {
			t.Fatalf("row %d has %d slots", i, len(row))
		}
	}
}
