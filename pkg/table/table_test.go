package table

import (
	"testing"

	"github.com/superhawk610/sqlit/pkg/catalog/schema"
	"github.com/superhawk610/sqlit/pkg/tuple"
	"github.com/superhawk610/sqlit/pkg/types"
)

// newTestTable builds (id INTEGER PRIMARY KEY, name TEXT).
func newTestTable(t *testing.T) *Table {
	t.Helper()
	sch, err := schema.NewSchemaBuilder().
		AddPrimaryKey("id", types.IntegerType).
		AddColumn("name", types.TextType).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return NewTable("users", sch)
}

func mustInsert(t *testing.T, tbl *Table, values map[string]types.Field) {
	t.Helper()
	if err := tbl.Insert(values); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
}

func TestSelectProjectsInDeclaredOrder(t *testing.T) {
	tbl := newTestTable(t)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1)})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(2), "name": types.NewTextField("x")})

	result := tbl.Select([]string{"name", "id"})

	if got := result.ColumnNames(); len(got) != 2 || got[0] != "id" || got[1] != "name" {
		t.Fatalf("ColumnNames() = %v, want [id name]", got)
	}

	expected := []*tuple.Tuple{
		tuple.NewBuilder(result.TupleDesc).AddInt(1).AddNull().MustBuild(),
		tuple.NewBuilder(result.TupleDesc).AddInt(2).AddText("x").MustBuild(),
	}
	if result.NumRows() != len(expected) {
		t.Fatalf("NumRows() = %d, want %d", result.NumRows(), len(expected))
	}
	for i, want := range expected {
		if !result.Tuples[i].Equals(want) {
			t.Errorf("row %d = %v, want %v", i, result.Tuples[i], want)
		}
	}
}

func TestSelectUnknownAndPartialNames(t *testing.T) {
	tbl := newTestTable(t)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1), "name": types.NewTextField("a")})

	tests := []struct {
		name      string
		requested []string
		wantCols  int
	}{
		{"only unknown", []string{"nope"}, 0},
		{"unknown mixed in", []string{"nope", "name"}, 1},
		{"empty request", nil, 0},
		{"duplicates", []string{"id", "id"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tbl.Select(tt.requested)
			if result.TupleDesc.NumFields() != tt.wantCols {
				t.Fatalf("projected %d columns, want %d", result.TupleDesc.NumFields(), tt.wantCols)
			}
			if result.NumRows() != 1 {
				t.Fatalf("NumRows() = %d, want 1", result.NumRows())
			}
			if result.Tuples[0].NumFields() != tt.wantCols {
				t.Errorf("row has %d fields, want %d", result.Tuples[0].NumFields(), tt.wantCols)
			}
		})
	}
}

func TestInsertUsesDefaults(t *testing.T) {
	sch, err := schema.BuildColumns(
		schema.ColumnDef{Column: schema.NewColumn("id", types.IntegerType), IsPrimaryKey: true},
		schema.ColumnDef{Column: schema.Column{
			Name: "status", Type: types.TextType, Default: types.NewTextField("new"), AllowNull: true,
		}},
	)
	if err != nil {
		t.Fatalf("BuildColumns() error = %v", err)
	}
	tbl := NewTable("jobs", sch)

	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1)})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(2), "status": types.NewTextField("done")})
	mustInsert(t, tbl, map[string]types.Field{"ghost": types.NewIntField(9)})

	rows := tbl.SelectAll().Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	wantStatus := []string{"new", "done", "new"}
	for i, row := range rows {
		if len(row) != 2 {
			t.Fatalf("row %d has %d slots", i, len(row))
		}
		if got := row[1].String(); got != wantStatus[i] {
			t.Errorf("row %d status = %q, want %q", i, got, wantStatus[i])
		}
	}
	if rows[2][0] != nil {
		t.Errorf("row 2 id = %v, want empty", rows[2][0])
	}
}

func TestInsertDoesNotEnforceTypes(t *testing.T) {
	tbl := newTestTable(t)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewTextField("not a number")})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewTextField("not a number")})

	if tbl.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", tbl.NumRows())
	}
}

func TestSelectReturnsCopies(t *testing.T) {
	tbl := newTestTable(t)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1)})

	first := tbl.SelectAll()
	if err := first.Tuples[0].SetField(0, types.NewIntField(99)); err != nil {
		t.Fatalf("SetField() error = %v", err)
	}

	again := tbl.SelectAll()
	f, _ := again.Tuples[0].GetField(0)
	if !f.Equals(types.NewIntField(1)) {
		t.Errorf("stored row was mutated through a result: %v", f)
	}
}

func TestSelectedFieldsAreIndependent(t *testing.T) {
	sch, err := schema.NewSchemaBuilder().
		AddPrimaryKey("id", types.IntegerType).
		Add(schema.ColumnDef{Column: schema.Column{
			Name: "b", Type: types.TextType, Default: types.NewTextField("dflt"), AllowNull: true,
		}}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	tbl := NewTable("t", sch)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1)})

	first := tbl.SelectAll()
	id, _ := first.Tuples[0].GetField(0)
	b, _ := first.Tuples[0].GetField(1)
	id.(*types.IntField).Value = 99
	b.(*types.TextField).Value = "mutated"

	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(2)})

	rows := tbl.SelectAll().Rows()
	want := [][]string{{"1", "dflt"}, {"2", "dflt"}}
	for i := range want {
		for j := range want[i] {
			if got := rows[i][j].String(); got != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, got, want[i][j])
			}
		}
	}
}

func TestInsertCopiesSuppliedValues(t *testing.T) {
	tbl := newTestTable(t)
	name := types.NewTextField("alice")
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1), "name": name})

	name.Value = "changed"

	f, _ := tbl.SelectAll().Tuples[0].GetField(1)
	if f.String() != "alice" {
		t.Errorf("stored value = %q, want alice", f.String())
	}
}

func TestResultDistinctDoesNotMergeQuotedText(t *testing.T) {
	sch, err := schema.NewSchemaBuilder().
		AddPrimaryKey("id", types.IntegerType).
		AddColumn("a", types.TextType).
		AddColumn("b", types.TextType).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	tbl := NewTable("d", sch)
	mustInsert(t, tbl, map[string]types.Field{
		"id": types.NewIntField(1), "a": types.NewTextField("p"), "b": types.NewTextField("q'\x001:'r"),
	})
	mustInsert(t, tbl, map[string]types.Field{
		"id": types.NewIntField(2), "a": types.NewTextField("p'\x001:'q"), "b": types.NewTextField("r"),
	})
	mustInsert(t, tbl, map[string]types.Field{
		"id": types.NewIntField(3), "a": types.NewTextField("p"), "b": types.NewTextField("q'\x001:'r"),
	})

	result := tbl.Select([]string{"a", "b"}).Distinct()
	if result.NumRows() != 2 {
		t.Errorf("Distinct() kept %d rows, want 2", result.NumRows())
	}
}

func TestResultDistinct(t *testing.T) {
	tbl := newTestTable(t)
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(1), "name": types.NewTextField("a")})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(2), "name": types.NewTextField("a")})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(3)})
	mustInsert(t, tbl, map[string]types.Field{"id": types.NewIntField(4)})

	result := tbl.Select([]string{"name"}).Distinct()
	if result.NumRows() != 2 {
		t.Fatalf("Distinct() kept %d rows, want 2", result.NumRows())
	}
	if f, _ := result.Tuples[0].GetField(0); f == nil || f.String() != "a" {
		t.Errorf("first distinct row = %v, want a", f)
	}
	if f, _ := result.Tuples[1].GetField(0); f != nil {
		t.Errorf("second distinct row = %v, want empty", f)
	}
}

func TestTableAccessors(t *testing.T) {
	tbl, err := NewTableFromColumns("t", []schema.Column{
		schema.NewColumn("id", types.IntegerType),
		schema.NewColumn("data", types.BlobType),
	}, 0, true)
	if err != nil {
		t.Fatalf("NewTableFromColumns() error = %v", err)
	}

	if tbl.Name() != "t" || tbl.PrimaryKey() != 0 || !tbl.AutoIncrement() {
		t.Errorf("accessors = %q %d %v", tbl.Name(), tbl.PrimaryKey(), tbl.AutoIncrement())
	}
	if len(tbl.Columns()) != 2 || tbl.NumRows() != 0 {
		t.Errorf("Columns() = %d, NumRows() = %d", len(tbl.Columns()), tbl.NumRows())
	}
	if got := tbl.String(); got != "CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, data BLOB)" {
		t.Errorf("String() = %q", got)
	}

	if _, err := NewTableFromColumns("bad", nil, 0, false); err == nil {
		t.Error("expected empty column list to fail")
	}
}
