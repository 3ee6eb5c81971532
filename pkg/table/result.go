package table

import (
	"slices"

	"github.com/superhawk610/sqlit/pkg/tuple"
	"github.com/superhawk610/sqlit/pkg/types"
)

// Result is the output of a projection: the projected description and one
// tuple per stored row.
type Result struct {
	TupleDesc *tuple.TupleDescription
	Tuples    []*tuple.Tuple
}

// ColumnNames returns the projected column names in order.
func (r *Result) ColumnNames() []string {
	names := make([]string, len(r.TupleDesc.FieldNames))
	copy(names, r.TupleDesc.FieldNames)
	return names
}

// NumRows returns the number of projected rows.
func (r *Result) NumRows() int {
	return len(r.Tuples)
}

// Rows returns the projected values; nil entries are empty slots.
func (r *Result) Rows() [][]types.Field {
	rows := make([][]types.Field, len(r.Tuples))
	for i, t := range r.Tuples {
		rows[i] = t.Fields()
	}
	return rows
}

// Distinct returns a result without duplicate rows, keeping the first
// occurrence of each. Rows are bucketed by hash and compared with Equals.
func (r *Result) Distinct() *Result {
	buckets := make(map[uint32][]*tuple.Tuple, len(r.Tuples))
	out := &Result{TupleDesc: r.TupleDesc, Tuples: make([]*tuple.Tuple, 0, len(r.Tuples))}
	for _, t := range r.Tuples {
		h := t.Hash()
		if slices.ContainsFunc(buckets[h], t.Equals) {
			continue
		}
		buckets[h] = append(buckets[h], t)
		out.Tuples = append(out.Tuples, t)
	}
	return out
}
