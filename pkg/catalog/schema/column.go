package schema

import (
	"strings"

	"github.com/superhawk610/sqlit/pkg/types"
)

// Column is a single column declaration of a table.
type Column struct {
	Name      string      // Column name
	Type      types.Type  // Declared data type
	Default   types.Field // Value used when an insert omits the column; nil = none
	AllowNull bool        // False when declared NOT NULL
	Unique    bool        // True when declared UNIQUE
}

// NewColumn returns a nullable, non-unique column without a default.
func NewColumn(name string, fieldType types.Type) Column {
	return Column{
		Name:      name,
		Type:      fieldType,
		AllowNull: true,
	}
}

// Equals compares two declarations field by field.
func (c Column) Equals(other Column) bool {
	return c.Name == other.Name &&
		c.Type == other.Type &&
		c.AllowNull == other.AllowNull &&
		c.Unique == other.Unique &&
		types.FieldsEqual(c.Default, other.Default)
}

// Definition renders the column as it would appear in CREATE TABLE, without
// any primary key clause.
func (c Column) Definition() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteByte(' ')
	sb.WriteString(c.Type.String())

	if c.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(c.Default.Literal())
	}
	if !c.AllowNull {
		sb.WriteString(" NOT NULL")
	}
	if c.Unique {
		sb.WriteString(" UNIQUE")
	}
	return sb.String()
}
