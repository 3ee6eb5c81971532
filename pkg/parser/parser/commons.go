package parser

import (
	"github.com/superhawk610/sqlit/pkg/parser/lexer"
	"github.com/superhawk610/sqlit/pkg/types"
)

// expectKeywords matches the keywords in order with mandatory whitespace
// between them.
func expectKeywords(l *lexer.Lexer, kws ...string) error {
	for i, kw := range kws {
		if i > 0 {
			if err := l.Space1(); err != nil {
				return err
			}
		}
		if _, err := l.Keyword(kw); err != nil {
			return err
		}
	}
	return nil
}

// optionalKeywords matches the keyword sequence followed by whitespace, or
// consumes nothing and reports false.
func optionalKeywords(l *lexer.Lexer, kws ...string) bool {
	start := l.Pos()
	if expectKeywords(l, kws...) != nil || l.Space1() != nil {
		l.SetPos(start)
		return false
	}
	return true
}

// separator consumes "<ws>,<ws>" or nothing, reporting whether it matched.
func separator(l *lexer.Lexer) bool {
	start := l.Pos()
	l.Space0()
	if _, err := l.Symbol(","); err != nil {
		l.SetPos(start)
		return false
	}
	l.Space0()
	return true
}

// parseList parses one or more items separated by commas.
func parseList[T any](l *lexer.Lexer, item func(*lexer.Lexer) (T, error)) ([]T, error) {
	first, err := item(l)
	if err != nil {
		return nil, err
	}

	items := []T{first}
	for separator(l) {
		next, err := item(l)
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return items, nil
}

// parseParenthesized parses "(<ws>item, ...<ws>)".
func parseParenthesized[T any](l *lexer.Lexer, item func(*lexer.Lexer) (T, error)) ([]T, error) {
	if _, err := l.Symbol("("); err != nil {
		return nil, err
	}
	l.Space0()

	items, err := parseList(l, item)
	if err != nil {
		return nil, err
	}

	l.Space0()
	if _, err := l.Symbol(")"); err != nil {
		return nil, err
	}
	return items, nil
}

// parseName parses a table or column name, optionally double quoted.
func parseName(l *lexer.Lexer) (string, error) {
	tok, err := l.QuotedIdent()
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

// parseValue parses a single literal.
func parseValue(l *lexer.Lexer) (types.Field, error) {
	return l.Value()
}

// parseTerminator consumes an optional trailing semicolon.
func parseTerminator(l *lexer.Lexer) {
	start := l.Pos()
	l.Space0()
	if _, err := l.Symbol(";"); err != nil {
		l.SetPos(start)
	}
}

// parseDataType parses one of the column type keywords.
func parseDataType(l *lexer.Lexer) (types.Type, error) {
	tok, err := l.OneOfKeywords("integer", "real", "text", "blob")
	if err != nil {
		return 0, err
	}

	switch tok.Value {
	case "integer":
		return types.IntegerType, nil
	case "real":
		return types.RealType, nil
	case "text":
		return types.TextType, nil
	default:
		return types.BlobType, nil
	}
}
