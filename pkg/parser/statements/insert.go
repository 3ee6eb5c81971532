package statements

import (
	"fmt"

	"github.com/superhawk610/sqlit/pkg/types"
)

// InsertStatement represents a SQL INSERT statement with table name, column names, and values.
type InsertStatement struct {
	BaseStatement
	TableName string          // The target table name for the INSERT operation
	Columns   []string        // Column names to insert data into
	Values    [][]types.Field // Rows of values, each matching Columns by position
}

// NewInsertStatement creates a new INSERT statement
func NewInsertStatement(tableName string, columns []string) *InsertStatement {
	return &InsertStatement{
		BaseStatement: NewBaseStatement(Insert),
		TableName:     tableName,
		Columns:       columns,
		Values:        make([][]types.Field, 0),
	}
}

// AddValues adds a row of values to be inserted
func (s *InsertStatement) AddValues(values []types.Field) {
	s.Values = append(s.Values, values)
}

// ValueCount returns the number of rows to be inserted
func (s *InsertStatement) ValueCount() int {
	return len(s.Values)
}

// Rows pairs every values tuple with the column list.
func (s *InsertStatement) Rows() []map[string]types.Field {
	rows := make([]map[string]types.Field, len(s.Values))
	for i, values := range s.Values {
		row := make(map[string]types.Field, len(s.Columns))
		for j, col := range s.Columns {
			if j < len(values) {
				row[col] = values[j]
			}
		}
		rows[i] = row
	}
	return rows
}

// Validate checks if the statement is valid
func (s *InsertStatement) Validate() error {
	if err := s.requireNonEmpty("TableName", s.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := s.requireNonEmptySlice("Columns", len(s.Columns), "at least one column is required"); err != nil {
		return err
	}
	if err := s.requireNonEmptySlice("Values", len(s.Values), "at least one row of values is required"); err != nil {
		return err
	}

	for i, row := range s.Values {
		if len(row) != len(s.Columns) {
			return NewValidationError(
				Insert,
				fmt.Sprintf("Values[%d]", i),
				fmt.Sprintf("expected %d values, got %d", len(s.Columns), len(row)),
			)
		}
	}
	return nil
}

// String returns a string representation of the INSERT statement
func (s *InsertStatement) String() string {
	var sb statementBuilder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.TableName)
	sb.WriteString(" (")
	sb.writeList(s.Columns)
	sb.WriteString(") VALUES ")

	for i, row := range s.Values {
		sb.writeIf(i > 0, ", ")
		literals := make([]string, len(row))
		for j, v := range row {
			literals[j] = v.Literal()
		}
		sb.WriteString("(")
		sb.writeList(literals)
		sb.WriteString(")")
	}
	return sb.String()
}
