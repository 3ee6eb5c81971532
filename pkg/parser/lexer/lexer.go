package lexer

import (
	"strconv"
	"strings"

	"github.com/superhawk610/sqlit/pkg/types"
)

// Lexer exposes the grammar primitives over a single statement. Unlike a
// classic tokenizer it never skips whitespace on its own: every caller states
// whether whitespace is mandatory (Space1) or optional (Space0) between two
// tokens. Each primitive either consumes input and returns a token, or returns
// a *SyntaxError and leaves the position untouched, so callers can backtrack
// with Pos/SetPos.
type Lexer struct {
	input  string
	pos    int
	length int
}

// NewLexer creates a Lexer over the trimmed input. Case is preserved; keyword
// matching is case-insensitive at the primitive level instead.
func NewLexer(input string) *Lexer {
	processedInput := strings.TrimSpace(input)
	return &Lexer{
		input:  processedInput,
		pos:    0,
		length: len(processedInput),
	}
}

// Pos returns the current byte offset into the trimmed input.
func (l *Lexer) Pos() int {
	return l.pos
}

// SetPos moves the lexer to pos. Positions outside [0, length] are ignored.
func (l *Lexer) SetPos(pos int) {
	if pos >= 0 && pos <= l.length {
		l.pos = pos
	}
}

// AtEOF reports whether the whole input has been consumed.
func (l *Lexer) AtEOF() bool {
	return l.pos >= l.length
}

// Remaining returns the unconsumed input.
func (l *Lexer) Remaining() string {
	return l.input[l.pos:]
}

// ExpectEOF fails unless the whole input has been consumed.
func (l *Lexer) ExpectEOF() error {
	if !l.AtEOF() {
		return l.errorAt("end of input")
	}
	return nil
}

// Ident matches a run of one or more ASCII letters, digits or underscores.
func (l *Lexer) Ident() (Token, error) {
	start := l.pos
	end := l.scanWhile(start, isIdentChar)
	if end == start {
		return Token{}, l.errorAt("identifier")
	}
	l.pos = end
	return Token{Type: IDENTIFIER, Value: l.input[start:end], Position: start}, nil
}

// QuotedIdent matches an identifier optionally wrapped in double quotes. An
// opening quote requires a closing one.
func (l *Lexer) QuotedIdent() (Token, error) {
	start := l.pos
	if start >= l.length || l.input[start] != '"' {
		return l.Ident()
	}

	l.pos++
	tok, err := l.Ident()
	if err != nil {
		l.pos = start
		return Token{}, err
	}
	if l.pos >= l.length || l.input[l.pos] != '"' {
		err := l.errorAt(`closing '"'`)
		l.pos = start
		return Token{}, err
	}
	l.pos++

	tok.Position = start
	return tok, nil
}

// Keyword matches kw case-insensitively and returns its lowercase canonical
// form. The keyword must end at a word boundary, so "FROM" does not match
// the start of "FROMAGE".
func (l *Lexer) Keyword(kw string) (Token, error) {
	start := l.pos
	end := start + len(kw)
	if end > l.length || !strings.EqualFold(l.input[start:end], kw) {
		return Token{}, l.errorAt(strings.ToUpper(kw))
	}
	if end < l.length && isIdentChar(l.input[end]) {
		return Token{}, l.errorAt(strings.ToUpper(kw))
	}
	l.pos = end
	return Token{Type: KEYWORD, Value: strings.ToLower(kw), Position: start}, nil
}

// OneOfKeywords tries each keyword in order and returns the first match.
func (l *Lexer) OneOfKeywords(kws ...string) (Token, error) {
	for _, kw := range kws {
		if tok, err := l.Keyword(kw); err == nil {
			return tok, nil
		}
	}
	expected := make([]string, len(kws))
	for i, kw := range kws {
		expected[i] = strings.ToUpper(kw)
	}
	return Token{}, l.errorAt("one of " + strings.Join(expected, ", "))
}

// Symbol matches the literal punctuation sym.
func (l *Lexer) Symbol(sym string) (Token, error) {
	start := l.pos
	if !strings.HasPrefix(l.input[start:], sym) {
		return Token{}, l.errorAt("'" + sym + "'")
	}
	l.pos += len(sym)
	return Token{Type: SYMBOL, Value: sym, Position: start}, nil
}

// Space1 consumes one or more whitespace characters.
func (l *Lexer) Space1() error {
	end := l.scanWhile(l.pos, isSpace)
	if end == l.pos {
		return l.errorAt("whitespace")
	}
	l.pos = end
	return nil
}

// Space0 consumes any whitespace, possibly none.
func (l *Lexer) Space0() {
	l.pos = l.scanWhile(l.pos, isSpace)
}

// Literal matches a value literal. Alternatives are tried in order: a
// single-quoted text literal with at least one character and no escapes, a
// real literal (digits, '.', optional digits), then an integer literal.
func (l *Lexer) Literal() (Token, error) {
	start := l.pos

	if start < l.length && l.input[start] == '\'' {
		closing := strings.IndexByte(l.input[start+1:], '\'')
		if closing > 0 {
			end := start + 1 + closing
			l.pos = end + 1
			return Token{Type: STRING, Value: l.input[start+1 : end], Position: start}, nil
		}
	}

	digitsEnd := l.scanWhile(start, isDigit)
	if digitsEnd == start {
		return Token{}, l.errorAt("value")
	}

	if digitsEnd < l.length && l.input[digitsEnd] == '.' {
		end := l.scanWhile(digitsEnd+1, isDigit)
		l.pos = end
		return Token{Type: REAL, Value: l.input[start:end], Position: start}, nil
	}

	l.pos = digitsEnd
	return Token{Type: INTEGER, Value: l.input[start:digitsEnd], Position: start}, nil
}

// Value matches a literal and converts it to a field.
func (l *Lexer) Value() (types.Field, error) {
	start := l.pos
	tok, err := l.Literal()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case STRING:
		return types.NewTextField(tok.Value), nil
	case REAL:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			l.pos = start
			return nil, l.errorAt("real value")
		}
		return types.NewRealField(f), nil
	default:
		i, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			l.pos = start
			return nil, l.errorAt("64-bit integer value")
		}
		return types.NewIntField(i), nil
	}
}

// PeekWord returns the leading run of ASCII letters, lowercased, without
// consuming it. It returns "" when the input does not start with a letter.
func (l *Lexer) PeekWord() string {
	end := l.scanWhile(l.pos, isLetter)
	return strings.ToLower(l.input[l.pos:end])
}

func (l *Lexer) scanWhile(from int, pred func(byte) bool) int {
	i := from
	for i < l.length && pred(l.input[i]) {
		i++
	}
	return i
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
