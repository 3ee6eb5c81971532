package database

import (
	"fmt"

	"github.com/superhawk610/sqlit/pkg/catalog"
	"github.com/superhawk610/sqlit/pkg/table"
	"github.com/superhawk610/sqlit/pkg/tuple"
	"github.com/superhawk610/sqlit/pkg/utils/functools"
)

// NullDisplay is how an empty slot is rendered.
const NullDisplay = "NULL"

// ResultFormatter handles formatting of query execution results
type ResultFormatter struct{}

// NewResultFormatter creates a new instance of ResultFormatter
func NewResultFormatter() *ResultFormatter {
	return &ResultFormatter{}
}

// FormatSelect converts a projection to rows of display strings
func (f *ResultFormatter) FormatSelect(result *table.Result) QueryResult {
	if result == nil || result.TupleDesc == nil {
		return QueryResult{
			Success: true,
			Message: "Query returned no results",
			Rows:    [][]string{},
		}
	}

	numFields := result.TupleDesc.NumFields()
	columns := make([]string, numFields)
	for i := range numFields {
		name, _ := result.TupleDesc.GetFieldName(i)
		if name == "" {
			name = fmt.Sprintf("col_%d", i)
		}
		columns[i] = name
	}

	rows := functools.Map(result.Tuples, func(t *tuple.Tuple) []string {
		row := make([]string, numFields)
		for i := range numFields {
			field, err := t.GetField(i)
			if err != nil || field == nil {
				row[i] = NullDisplay
			} else {
				row[i] = field.String()
			}
		}
		return row
	})
	if rows == nil {
		rows = [][]string{}
	}

	return QueryResult{
		Success: true,
		Columns: columns,
		Rows:    rows,
		Message: fmt.Sprintf("%d row(s) returned", len(rows)),
	}
}

// FormatInsert reports the number of appended rows
func (f *ResultFormatter) FormatInsert(rowsAffected int) QueryResult {
	return QueryResult{
		Success:      true,
		RowsAffected: rowsAffected,
		Message:      fmt.Sprintf("%d row(s) inserted", rowsAffected),
	}
}

// FormatCreate reports whether the table was created or already existed
func (f *ResultFormatter) FormatCreate(tableName string, res catalog.CreateResult) QueryResult {
	msg := fmt.Sprintf("Table %s created successfully", tableName)
	if res == catalog.Skipped {
		msg = fmt.Sprintf("Table %s already exists, skipped", tableName)
	}
	return QueryResult{
		Success: true,
		Message: msg,
	}
}
