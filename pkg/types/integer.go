package types

import (
	"encoding/binary"
	"strconv"
)

// IntField holds a 64-bit signed integer.
type IntField struct {
	Value int64
}

func NewIntField(value int64) *IntField {
	return &IntField{Value: value}
}

func (f *IntField) Type() Type {
	return IntegerType
}

func (f *IntField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *IntField) Literal() string {
	return f.String()
}

func (f *IntField) Equals(other Field) bool {
	otherInt, ok := other.(*IntField)
	if !ok {
		return false
	}
	return f.Value == otherInt.Value
}

func (f *IntField) Hash() uint32 {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, uint64(f.Value)) // #nosec G115
	return fnvHash(IntegerType, bytes)
}

func (f *IntField) Clone() Field {
	return &IntField{Value: f.Value}
}
