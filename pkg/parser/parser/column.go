package parser

import (
	"fmt"

	"github.com/superhawk610/sqlit/pkg/catalog/schema"
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/parser/statements"
)

// columnDef is a parsed column declaration before the table-level primary key
// checks run.
type columnDef struct {
	column             schema.Column
	isPrimaryKey       bool
	wantsAutoIncrement bool
}

type constraintKind string

const (
	constraintPrimaryKey constraintKind = "primary key"
	constraintDefault    constraintKind = "default"
	constraintNotNull    constraintKind = "not null"
	constraintUnique     constraintKind = "unique"
)

// parseColumnDef parses "<name> <type> (<ws> <constraint>)*". Constraints may
// appear in any order but each kind at most once.
func parseColumnDef(l *lexer.Lexer) (columnDef, error) {
	nameTok, err := l.Ident()
	if err != nil {
		return columnDef{}, err
	}
	if err := l.Space1(); err != nil {
		return columnDef{}, err
	}
	fieldType, err := parseDataType(l)
	if err != nil {
		return columnDef{}, err
	}

	def := columnDef{column: schema.NewColumn(nameTok.Value, fieldType)}
	seen := make(map[constraintKind]bool)

	for {
		start := l.Pos()
		if l.Space1() != nil {
			break
		}

		kind, matched, err := parseConstraint(l, &def)
		if err != nil {
			return columnDef{}, err
		}
		if !matched {
			l.SetPos(start)
			break
		}

		if seen[kind] {
			return columnDef{}, statements.NewValidationError(
				statements.CreateTable,
				def.column.Name,
				fmt.Sprintf("duplicate %s constraint on column %s", kind, def.column.Name),
			)
		}
		seen[kind] = true
	}

	return def, nil
}

// parseConstraint applies one constraint to def. It reports matched=false
// without consuming input when no constraint keyword is present; once a
// leading keyword matches, the rest of the constraint is required.
func parseConstraint(l *lexer.Lexer, def *columnDef) (constraintKind, bool, error) {
	switch l.PeekWord() {
	case "primary":
		if err := expectKeywords(l, "primary", "key"); err != nil {
			return "", false, err
		}
		def.isPrimaryKey = true
		start := l.Pos()
		if l.Space1() == nil {
			if _, err := l.Keyword("autoincrement"); err == nil {
				def.wantsAutoIncrement = true
			} else {
				l.SetPos(start)
			}
		}
		return constraintPrimaryKey, true, nil

	case "default":
		if err := expectKeywords(l, "default"); err != nil {
			return "", false, err
		}
		if err := l.Space1(); err != nil {
			return "", false, err
		}
		value, err := parseValue(l)
		if err != nil {
			return "", false, err
		}
		def.column.Default = value
		return constraintDefault, true, nil

	case "not":
		if err := expectKeywords(l, "not", "null"); err != nil {
			return "", false, err
		}
		def.column.AllowNull = false
		return constraintNotNull, true, nil

	case "unique":
		if err := expectKeywords(l, "unique"); err != nil {
			return "", false, err
		}
		def.column.Unique = true
		return constraintUnique, true, nil

	default:
		return "", false, nil
	}
}
