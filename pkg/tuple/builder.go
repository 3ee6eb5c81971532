package tuple

import (
	"fmt"

	"github.com/superhawk610/sqlit/pkg/types"
)

// Builder provides a fluent interface for constructing tuples
type Builder struct {
	tuple        *Tuple
	currentIndex int
	err          error
}

// NewBuilder creates a new tuple builder with the given description
func NewBuilder(td *TupleDescription) *Builder {
	return &Builder{tuple: NewTuple(td)}
}

// AddInt adds an integer field at the current index
func (b *Builder) AddInt(value int64) *Builder {
	return b.add(types.NewIntField(value))
}

// AddText adds a text field at the current index
func (b *Builder) AddText(value string) *Builder {
	return b.add(types.NewTextField(value))
}

// AddReal adds a real field at the current index
func (b *Builder) AddReal(value float64) *Builder {
	return b.add(types.NewRealField(value))
}

// AddBlob adds a blob field at the current index
func (b *Builder) AddBlob(value []byte) *Builder {
	return b.add(types.NewBlobField(value))
}

// AddNull leaves the slot at the current index empty
func (b *Builder) AddNull() *Builder {
	return b.add(nil)
}

// AddField adds an arbitrary field at the current index
func (b *Builder) AddField(field types.Field) *Builder {
	return b.add(field)
}

func (b *Builder) add(field types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.tuple.SetField(b.currentIndex, field); err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}
	b.currentIndex++
	return b
}

// Build returns the tuple, failing if any slot was left unvisited
func (b *Builder) Build() (*Tuple, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.currentIndex != b.tuple.NumFields() {
		return nil, fmt.Errorf("expected %d fields, got %d", b.tuple.NumFields(), b.currentIndex)
	}
	return b.tuple, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Tuple {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
