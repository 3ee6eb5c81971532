package types

// Field is a single non-null scalar value. An absent value is represented by
// a nil Field in the slot that would hold it, never by a Field itself.
type Field interface {
	// Type returns the scalar tag of the value.
	Type() Type

	// String renders the value for display. Text is rendered without quotes.
	String() string

	// Literal renders the value as it would be written in a statement.
	Literal() string

	// Equals reports whether other holds the same tag and the same value.
	Equals(other Field) bool

	Hash() uint32

	// Clone returns an independent copy of the value.
	Clone() Field
}

// FieldsEqual compares two possibly-empty slots.
func FieldsEqual(a, b Field) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// CloneField copies a possibly-empty slot.
func CloneField(f Field) Field {
	if f == nil {
		return nil
	}
	return f.Clone()
}
