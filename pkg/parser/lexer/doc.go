// Package lexer implements the grammar primitives of SQLit's SQL dialect.
//
// A Lexer walks a single statement byte by byte. Each primitive (Ident,
// QuotedIdent, Keyword, Literal/Value, Symbol, Space0/Space1) either consumes
// the text it recognises and returns a Token, or fails with a *SyntaxError and
// leaves the position where it was.
//
// # Usage
//
//	l := lexer.NewLexer(`select "users" ;`)
//	kw, _ := l.Keyword("SELECT") // kw.Value == "select"
//	_ = l.Space1()
//	name, _ := l.QuotedIdent()   // name.Value == "users"
//
// # Whitespace
//
// Whitespace is never skipped implicitly. Statement parsers call Space1 where
// the grammar requires separation and Space0 where it merely allows it, which
// keeps matches unambiguous without a separate tokenizing pass.
//
// # Normalization
//
// NewLexer trims surrounding whitespace but preserves case. Keywords are
// compared case-insensitively and reported in lowercase; identifiers and text
// literals keep the spelling they were written with.
package lexer
