package types

// Type is the scalar type tag declared for a column.
type Type int

const (
	IntegerType Type = iota
	TextType
	RealType
	BlobType
)

// String returns the SQL spelling of the type.
func (t Type) String() string {
	switch t {
	case IntegerType:
		return "INTEGER"
	case TextType:
		return "TEXT"
	case RealType:
		return "REAL"
	case BlobType:
		return "BLOB"
	default:
		return "UNKNOWN"
	}
}

// IsValidType reports whether t is one of the declared column types.
func IsValidType(t Type) bool {
	return t >= IntegerType && t <= BlobType
}
