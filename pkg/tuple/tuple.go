package tuple

import (
	"fmt"
	"strings"

	"github.com/superhawk610/sqlit/pkg/types"
)

// Tuple represents a row of data. The number of slots is fixed by its
// description when the tuple is created; a nil slot is an absent value.
type Tuple struct {
	TupleDesc *TupleDescription // Shape of this tuple
	fields    []types.Field     // The actual field values
}

// NewTuple creates a new tuple with one empty slot per field of td.
func NewTuple(td *TupleDescription) *Tuple {
	return &Tuple{
		TupleDesc: td,
		fields:    make([]types.Field, td.NumFields()),
	}
}

// SetField stores a copy of field in the ith slot. Passing nil clears the
// slot. Values are not checked against the declared column type.
func (t *Tuple) SetField(i int, field types.Field) error {
	if i < 0 || i >= len(t.fields) {
		return fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	t.fields[i] = types.CloneField(field)
	return nil
}

// GetField returns the value of the ith field, or nil when the slot is empty.
func (t *Tuple) GetField(i int) (types.Field, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// NumFields returns the number of slots in the tuple.
func (t *Tuple) NumFields() int {
	return len(t.fields)
}

// Fields returns a copy of the slot values.
func (t *Tuple) Fields() []types.Field {
	out := make([]types.Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Project returns a new tuple holding copies of the given slots in the
// order provided.
func (t *Tuple) Project(indices []int) (*Tuple, error) {
	td, err := t.TupleDesc.Project(indices)
	if err != nil {
		return nil, err
	}

	projected := NewTuple(td)
	for j, i := range indices {
		projected.fields[j] = types.CloneField(t.fields[i])
	}
	return projected, nil
}

// Equals reports whether both tuples hold equal values slot by slot.
func (t *Tuple) Equals(other *Tuple) bool {
	if other == nil || len(t.fields) != len(other.fields) {
		return false
	}
	for i := range t.fields {
		if !types.FieldsEqual(t.fields[i], other.fields[i]) {
			return false
		}
	}
	return true
}

// Hash combines the field hashes. Equal tuples hash equally; unequal tuples
// may collide, so callers confirm with Equals.
func (t *Tuple) Hash() uint32 {
	h := uint32(17)
	for _, f := range t.fields {
		var fh uint32
		if f != nil {
			fh = f.Hash()
		}
		h = h*31 + fh
	}
	return h
}

// String returns a tab separated rendering of the tuple.
func (t *Tuple) String() string {
	parts := make([]string, len(t.fields))
	for i, field := range t.fields {
		if field != nil {
			parts[i] = field.String()
		} else {
			parts[i] = "null"
		}
	}
	return strings.Join(parts, "\t") + "\n"
}
