package statements

// SelectFields is either every column (*) or an ordered list of names.
type SelectFields struct {
	all   bool
	names []string
}

// AllFields selects every column.
func AllFields() SelectFields {
	return SelectFields{all: true}
}

// SomeFields selects the named columns.
func SomeFields(names ...string) SelectFields {
	cp := make([]string, len(names))
	copy(cp, names)
	return SelectFields{names: cp}
}

// IsAll reports whether the selection is *.
func (f SelectFields) IsAll() bool {
	return f.all
}

// Names returns a copy of the requested names; empty for *.
func (f SelectFields) Names() []string {
	cp := make([]string, len(f.names))
	copy(cp, f.names)
	return cp
}

func (f SelectFields) String() string {
	if f.all {
		return "*"
	}
	var sb statementBuilder
	sb.writeList(f.names)
	return sb.String()
}

type SelectStatement struct {
	BaseStatement
	TableName string
	Fields    SelectFields
	Distinct  bool
}

func NewSelectStatement(tableName string, fields SelectFields, distinct bool) *SelectStatement {
	return &SelectStatement{
		BaseStatement: NewBaseStatement(Select),
		TableName:     tableName,
		Fields:        fields,
		Distinct:      distinct,
	}
}

func (ss *SelectStatement) Validate() error {
	if err := ss.requireNonEmpty("TableName", ss.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if ss.Fields.IsAll() {
		if ss.Distinct {
			return NewValidationError(Select, "Fields", "cannot select distinct on *")
		}
		return nil
	}
	return ss.requireNonEmptySlice("Fields", len(ss.Fields.names), "at least one column is required")
}

func (ss *SelectStatement) String() string {
	var sb statementBuilder
	sb.WriteString("SELECT ")
	sb.writeIf(ss.Distinct, "DISTINCT ")
	sb.WriteString(ss.Fields.String())
	sb.WriteString(" FROM ")
	sb.WriteString(ss.TableName)
	return sb.String()
}
