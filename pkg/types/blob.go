package types

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// BlobField holds an opaque byte sequence. There is no literal syntax for
// blobs, so they only enter the store through the Go API.
type BlobField struct {
	Value []byte
}

// NewBlobField copies value so later writes by the caller are not observed.
func NewBlobField(value []byte) *BlobField {
	b := make([]byte, len(value))
	copy(b, value)
	return &BlobField{Value: b}
}

func (f *BlobField) Type() Type {
	return BlobType
}

func (f *BlobField) String() string {
	return hex.EncodeToString(f.Value)
}

// Literal uses the x'..' form for display only.
func (f *BlobField) Literal() string {
	return "x'" + strings.ToUpper(f.String()) + "'"
}

func (f *BlobField) Equals(other Field) bool {
	otherBlob, ok := other.(*BlobField)
	if !ok {
		return false
	}
	return bytes.Equal(f.Value, otherBlob.Value)
}

func (f *BlobField) Hash() uint32 {
	return fnvHash(BlobType, f.Value)
}

func (f *BlobField) Clone() Field {
	return NewBlobField(f.Value)
}
