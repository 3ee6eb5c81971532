package lexer

type TokenType int

const (
	IDENTIFIER TokenType = iota
	KEYWORD
	STRING
	INTEGER
	REAL
	SYMBOL
	WHITESPACE
	EOF
)

var tokenTypeNames = map[TokenType]string{
	IDENTIFIER: "IDENTIFIER",
	KEYWORD:    "KEYWORD",
	STRING:     "STRING",
	INTEGER:    "INTEGER",
	REAL:       "REAL",
	SYMBOL:     "SYMBOL",
	WHITESPACE: "WHITESPACE",
	EOF:        "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a recognized slice of the input. For KEYWORD tokens Value is the
// lowercase canonical form; for STRING tokens it excludes the quotes; for
// IDENTIFIER tokens it excludes any surrounding double quotes.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}
