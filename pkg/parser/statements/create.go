package statements

import (
	"github.com/superhawk610/sqlit/pkg/table"
)

// CreateStatement carries a fully built, empty table ready to be registered.
type CreateStatement struct {
	BaseStatement
	Table       *table.Table
	IfNotExists bool
}

func NewCreateStatement(t *table.Table, ifNotExists bool) *CreateStatement {
	return &CreateStatement{
		BaseStatement: NewBaseStatement(CreateTable),
		Table:         t,
		IfNotExists:   ifNotExists,
	}
}

// TableName returns the name of the table to create.
func (cts *CreateStatement) TableName() string {
	if cts.Table == nil {
		return ""
	}
	return cts.Table.Name()
}

func (cts *CreateStatement) Validate() error {
	if cts.Table == nil {
		return NewValidationError(CreateTable, "Table", "table definition is required")
	}
	if err := cts.requireNonEmpty("TableName", cts.Table.Name(), "table name cannot be empty"); err != nil {
		return err
	}
	return cts.requireNonEmptySlice("Columns", len(cts.Table.Columns()), "at least one column is required")
}

func (cts *CreateStatement) String() string {
	var sb statementBuilder
	sb.WriteString("CREATE TABLE ")
	sb.writeIf(cts.IfNotExists, "IF NOT EXISTS ")
	sb.WriteString(cts.TableName())
	if cts.Table != nil {
		sb.WriteString(" ")
		sb.WriteString(cts.Table.Schema().Definitions())
	}
	return sb.String()
}
