package table

import (
	"fmt"
	"log/slog"

	"github.com/superhawk610/sqlit/pkg/catalog/schema"
	"github.com/superhawk610/sqlit/pkg/logging"
	"github.com/superhawk610/sqlit/pkg/tuple"
	"github.com/superhawk610/sqlit/pkg/types"
)

// Table is a named schema together with its rows in insertion order. Every
// stored row has exactly one slot per declared column.
//
// A Table is not safe for concurrent use; callers serialise access.
type Table struct {
	name   string
	schema *schema.Schema
	rows   []*tuple.Tuple
	log    *slog.Logger
}

// NewTable creates an empty table with the given schema.
func NewTable(name string, sch *schema.Schema) *Table {
	return &Table{
		name:   name,
		schema: sch,
		rows:   make([]*tuple.Tuple, 0),
		log:    logging.WithTable(name),
	}
}

// NewTableFromColumns validates the columns and creates an empty table.
func NewTableFromColumns(name string, columns []schema.Column, primaryKey int, autoIncrement bool) (*Table, error) {
	sch, err := schema.NewSchema(columns, primaryKey, autoIncrement)
	if err != nil {
		return nil, err
	}
	return NewTable(name, sch), nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Schema returns the table schema.
func (t *Table) Schema() *schema.Schema {
	return t.schema
}

// Columns returns the declared columns in order.
func (t *Table) Columns() []schema.Column {
	cols := make([]schema.Column, len(t.schema.Columns))
	copy(cols, t.schema.Columns)
	return cols
}

// PrimaryKey returns the index of the primary key column.
func (t *Table) PrimaryKey() int {
	return t.schema.PrimaryKey
}

// AutoIncrement reports whether the primary key was declared AUTOINCREMENT.
func (t *Table) AutoIncrement() bool {
	return t.schema.AutoIncrement
}

// NumRows returns the number of stored rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Insert appends one row. Each declared column takes the supplied value,
// else its default, else stays empty. Names that match no column are
// ignored; declared types, NOT NULL and UNIQUE are not checked.
func (t *Table) Insert(values map[string]types.Field) error {
	row := tuple.NewTuple(t.schema.TupleDesc)

	for i, col := range t.schema.Columns {
		value := col.Default
		if v, ok := values[col.Name]; ok && v != nil {
			value = v
		}
		if value == nil {
			continue
		}
		if err := row.SetField(i, value); err != nil {
			return fmt.Errorf("failed to set column '%s': %w", col.Name, err)
		}
	}

	t.rows = append(t.rows, row)
	t.log.Debug("row inserted", "rows", len(t.rows))
	return nil
}

// Select projects every row onto the requested columns. Columns appear in
// declaration order regardless of the order of names, and unknown names are
// ignored. The returned tuples are copies.
func (t *Table) Select(names []string) *Result {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	indices := make([]int, 0, len(t.schema.Columns))
	for i, col := range t.schema.Columns {
		if _, ok := wanted[col.Name]; ok {
			indices = append(indices, i)
		}
	}

	// indices come from the schema, so projection cannot fail
	desc, _ := t.schema.TupleDesc.Project(indices)
	result := &Result{
		TupleDesc: desc,
		Tuples:    make([]*tuple.Tuple, 0, len(t.rows)),
	}
	for _, row := range t.rows {
		projected, _ := row.Project(indices)
		result.Tuples = append(result.Tuples, projected)
	}

	t.log.Debug("rows selected", "columns", len(indices), "rows", len(result.Tuples))
	return result
}

// SelectAll projects every row onto every column.
func (t *Table) SelectAll() *Result {
	return t.Select(t.schema.ColumnNames())
}

// String renders the table as a CREATE TABLE statement.
func (t *Table) String() string {
	return fmt.Sprintf("CREATE TABLE %s %s", t.name, t.schema.Definitions())
}
