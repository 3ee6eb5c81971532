package types

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// RealField holds a 64-bit floating point value.
type RealField struct {
	Value float64
}

func NewRealField(value float64) *RealField {
	return &RealField{Value: value}
}

func (f *RealField) Type() Type {
	return RealType
}

func (f *RealField) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// Literal always carries a decimal point so that it parses back as a real.
func (f *RealField) Literal() string {
	s := f.String()
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func (f *RealField) Equals(other Field) bool {
	otherReal, ok := other.(*RealField)
	if !ok {
		return false
	}
	return f.Value == otherReal.Value
}

func (f *RealField) Hash() uint32 {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, math.Float64bits(f.Value))
	return fnvHash(RealType, bytes)
}

func (f *RealField) Clone() Field {
	return &RealField{Value: f.Value}
}
