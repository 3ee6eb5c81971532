package tuple

import (
	"fmt"
	"strings"

	"github.com/superhawk610/sqlit/pkg/types"
)

// TupleDescription describes the shape of a tuple: the declared type and name
// of every slot, in order. A description may be empty when a projection
// matched no columns.
type TupleDescription struct {
	// Types contains the declared type of each field in order
	Types []types.Type
	// FieldNames contains the name of each field
	FieldNames []string
}

// NewTupleDesc creates a new TupleDescription given field types and names.
// Both slices are copied and must have the same length.
func NewTupleDesc(fieldTypes []types.Type, fieldNames []string) (*TupleDescription, error) {
	if len(fieldNames) != len(fieldTypes) {
		return nil, fmt.Errorf("field names length (%d) must match field types length (%d)",
			len(fieldNames), len(fieldTypes))
	}

	for i, t := range fieldTypes {
		if !types.IsValidType(t) {
			return nil, fmt.Errorf("field %d has invalid type %v", i, t)
		}
	}

	typesCopy := make([]types.Type, len(fieldTypes))
	copy(typesCopy, fieldTypes)

	namesCopy := make([]string, len(fieldNames))
	copy(namesCopy, fieldNames)

	return &TupleDescription{
		Types:      typesCopy,
		FieldNames: namesCopy,
	}, nil
}

// NumFields returns the number of fields in this tuple descriptor.
func (td *TupleDescription) NumFields() int {
	return len(td.Types)
}

// GetFieldName returns the name of the ith field.
func (td *TupleDescription) GetFieldName(i int) (string, error) {
	if i < 0 || i >= len(td.FieldNames) {
		return "", fmt.Errorf("field index %d out of bounds [0, %d)", i, len(td.FieldNames))
	}
	return td.FieldNames[i], nil
}

// FindFieldIndex returns the position of the named field.
func (td *TupleDescription) FindFieldIndex(name string) (int, error) {
	for i, n := range td.FieldNames {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("field %q not found", name)
}

// Project builds a new description made of the given field positions, in
// the order provided.
func (td *TupleDescription) Project(indices []int) (*TupleDescription, error) {
	fieldTypes := make([]types.Type, 0, len(indices))
	fieldNames := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(td.Types) {
			return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(td.Types))
		}
		fieldTypes = append(fieldTypes, td.Types[i])
		fieldNames = append(fieldNames, td.FieldNames[i])
	}
	return &TupleDescription{Types: fieldTypes, FieldNames: fieldNames}, nil
}

// Equals reports whether two descriptions have the same names and types in
// the same order.
func (td *TupleDescription) Equals(other *TupleDescription) bool {
	if other == nil || len(td.Types) != len(other.Types) {
		return false
	}
	for i := range td.Types {
		if td.Types[i] != other.Types[i] || td.FieldNames[i] != other.FieldNames[i] {
			return false
		}
	}
	return true
}

// String renders the description as "name(TYPE), ...".
func (td *TupleDescription) String() string {
	parts := make([]string, len(td.Types))
	for i, t := range td.Types {
		parts[i] = fmt.Sprintf("%s(%s)", td.FieldNames[i], t)
	}
	return strings.Join(parts, ", ")
}
