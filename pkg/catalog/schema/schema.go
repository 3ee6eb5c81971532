package schema

import (
	"fmt"
	"strings"

	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/tuple"
	"github.com/superhawk610/sqlit/pkg/types"
)

// Schema is the ordered column list of a table together with its primary key.
// Column order defines the shape of every row and the order of projections.
type Schema struct {
	Columns       []Column
	PrimaryKey    int  // Index into Columns
	AutoIncrement bool // Recorded only; no values are generated
	TupleDesc     *tuple.TupleDescription

	// Fast lookup index
	fieldNameToIndex map[string]int
}

// NewSchema validates the declaration and derives the row description.
func NewSchema(columns []Column, primaryKey int, autoIncrement bool) (*Schema, error) {
	if len(columns) == 0 {
		return nil, dberror.NewInvalidSchema("schema must have at least one column")
	}
	if primaryKey < 0 || primaryKey >= len(columns) {
		return nil, dberror.NewInvalidSchema(
			fmt.Sprintf("primary key index %d out of range [0, %d)", primaryKey, len(columns)))
	}

	fieldTypes := make([]types.Type, len(columns))
	fieldNames := make([]string, len(columns))
	fieldNameToIndex := make(map[string]int, len(columns))

	for i, col := range columns {
		if col.Name == "" {
			return nil, dberror.NewInvalidSchema(fmt.Sprintf("column %d has an empty name", i))
		}
		if !types.IsValidType(col.Type) {
			return nil, dberror.NewInvalidSchema(fmt.Sprintf("column '%s' has an invalid type", col.Name))
		}
		fieldTypes[i] = col.Type
		fieldNames[i] = col.Name
		if _, exists := fieldNameToIndex[col.Name]; !exists {
			fieldNameToIndex[col.Name] = i
		}
	}

	td, err := tuple.NewTupleDesc(fieldTypes, fieldNames)
	if err != nil {
		return nil, fmt.Errorf("failed to create tuple description: %w", err)
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Schema{
		Columns:          cols,
		PrimaryKey:       primaryKey,
		AutoIncrement:    autoIncrement,
		TupleDesc:        td,
		fieldNameToIndex: fieldNameToIndex,
	}, nil
}

// NumColumns returns the number of declared columns.
func (s *Schema) NumColumns() int {
	return len(s.Columns)
}

// ColumnIndex returns the position of the named column.
func (s *Schema) ColumnIndex(name string) (int, bool) {
	i, ok := s.fieldNameToIndex[name]
	return i, ok
}

// HasColumn reports whether a column with the given name is declared.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.fieldNameToIndex[name]
	return ok
}

// ColumnNames returns the column names in declaration order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// PrimaryKeyColumn returns the primary key declaration.
func (s *Schema) PrimaryKeyColumn() Column {
	return s.Columns[s.PrimaryKey]
}

// Equals compares columns, primary key and autoincrement flag.
func (s *Schema) Equals(other *Schema) bool {
	if other == nil || len(s.Columns) != len(other.Columns) {
		return false
	}
	if s.PrimaryKey != other.PrimaryKey || s.AutoIncrement != other.AutoIncrement {
		return false
	}
	for i := range s.Columns {
		if !s.Columns[i].Equals(other.Columns[i]) {
			return false
		}
	}
	return true
}

// Definitions renders the parenthesised column list of a CREATE TABLE
// statement, with the primary key clause on the key column.
func (s *Schema) Definitions() string {
	defs := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		def := col.Definition()
		if i == s.PrimaryKey {
			def = withPrimaryKey(col, s.AutoIncrement)
		}
		defs[i] = def
	}
	return "(" + strings.Join(defs, ", ") + ")"
}

func withPrimaryKey(col Column, autoIncrement bool) string {
	head := col.Name + " " + col.Type.String() + " PRIMARY KEY"
	if autoIncrement {
		head += " AUTOINCREMENT"
	}
	rest := strings.TrimPrefix(col.Definition(), col.Name+" "+col.Type.String())
	return head + rest
}
