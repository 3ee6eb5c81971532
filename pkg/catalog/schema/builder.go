package schema

import (
	dberror "github.com/superhawk610/sqlit/pkg/error"
	"github.com/superhawk610/sqlit/pkg/types"
)

// ColumnDef defines a column for schema building
type ColumnDef struct {
	Column
	IsPrimaryKey    bool
	IsAutoIncrement bool
}

// SchemaBuilder helps construct table schemas by hand with less boilerplate
type SchemaBuilder struct {
	columns []ColumnDef
}

// NewSchemaBuilder creates a new schema builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{columns: make([]ColumnDef, 0)}
}

// AddColumn adds a regular nullable column
func (sb *SchemaBuilder) AddColumn(name string, fieldType types.Type) *SchemaBuilder {
	return sb.Add(ColumnDef{Column: NewColumn(name, fieldType)})
}

// AddPrimaryKey adds a primary key column
func (sb *SchemaBuilder) AddPrimaryKey(name string, fieldType types.Type) *SchemaBuilder {
	return sb.Add(ColumnDef{Column: NewColumn(name, fieldType), IsPrimaryKey: true})
}

// AddAutoIncrement adds an autoincrement integer column (implies primary key)
func (sb *SchemaBuilder) AddAutoIncrement(name string) *SchemaBuilder {
	return sb.Add(ColumnDef{
		Column:          NewColumn(name, types.IntegerType),
		IsPrimaryKey:    true,
		IsAutoIncrement: true,
	})
}

// Add appends a fully specified column definition
func (sb *SchemaBuilder) Add(def ColumnDef) *SchemaBuilder {
	sb.columns = append(sb.columns, def)
	return sb
}

// Build constructs the schema. Exactly one column must be flagged as the
// primary key; its autoincrement flag becomes the table's.
func (sb *SchemaBuilder) Build() (*Schema, error) {
	columns := make([]Column, 0, len(sb.columns))
	primaryKey := -1
	autoIncrement := false

	for i, def := range sb.columns {
		if def.IsPrimaryKey {
			if primaryKey >= 0 {
				return nil, dberror.NewInvalidSchema("only one primary key may be specified")
			}
			primaryKey = i
			autoIncrement = def.IsAutoIncrement
		}
		columns = append(columns, def.Column)
	}

	if primaryKey < 0 {
		return nil, dberror.NewInvalidSchema("no primary key specified")
	}
	return NewSchema(columns, primaryKey, autoIncrement)
}

// BuildColumns is a convenience function for simple schema creation
func BuildColumns(defs ...ColumnDef) (*Schema, error) {
	builder := NewSchemaBuilder()
	for _, def := range defs {
		builder.Add(def)
	}
	return builder.Build()
}
