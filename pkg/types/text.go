package types

// TextField holds a string value.
type TextField struct {
	Value string
}

func NewTextField(value string) *TextField {
	return &TextField{Value: value}
}

func (f *TextField) Type() Type {
	return TextType
}

func (f *TextField) String() string {
	return f.Value
}

// Literal wraps the value in single quotes. Embedded quotes are not escaped
// since the grammar has no escape sequence for them.
func (f *TextField) Literal() string {
	return "'" + f.Value + "'"
}

func (f *TextField) Equals(other Field) bool {
	otherText, ok := other.(*TextField)
	if !ok {
		return false
	}
	return f.Value == otherText.Value
}

func (f *TextField) Hash() uint32 {
	return fnvHash(TextType, []byte(f.Value))
}

func (f *TextField) Clone() Field {
	return &TextField{Value: f.Value}
}
