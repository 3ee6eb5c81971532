package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	keywords = []string{
		"SELECT", "DISTINCT", "FROM", "INSERT", "INTO", "VALUES", "CREATE",
		"TABLE", "IF", "NOT", "EXISTS", "PRIMARY", "KEY", "AUTOINCREMENT",
		"UNIQUE", "NULL", "DEFAULT",
	}

	dataTypes = []string{
		"INTEGER", "REAL", "TEXT", "BLOB",
	}

	punctuation = []string{
		"*", "(", ")", ",", ";",
	}
)

// SQLHighlighter provides syntax highlighting for SQL queries
type SQLHighlighter struct {
	keywords    map[string]bool
	dataTypes   map[string]bool
	punctuation map[string]bool

	keywordStyle lipgloss.Style
	typeStyle    lipgloss.Style
	stringStyle  lipgloss.Style
	numberStyle  lipgloss.Style
	punctStyle   lipgloss.Style
	commentStyle lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	h := &SQLHighlighter{
		keywords:    make(map[string]bool),
		dataTypes:   make(map[string]bool),
		punctuation: make(map[string]bool),
	}

	for _, kw := range keywords {
		h.keywords[kw] = true
		h.keywords[strings.ToLower(kw)] = true
	}

	for _, dt := range dataTypes {
		h.dataTypes[dt] = true
		h.dataTypes[strings.ToLower(dt)] = true
	}

	for _, p := range punctuation {
		h.punctuation[p] = true
	}

	h.keywordStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF79C6")).
		Bold(true)

	h.typeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD")).
		Bold(true)

	h.stringStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	h.numberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#BD93F9"))

	h.punctStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB86C"))

	h.commentStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6272A4")).
		Italic(true)

	return h
}

// Highlight renders sql with each word styled by its role. Whitespace is
// collapsed to single spaces, and line comments run to the end of the line.
func (h *SQLHighlighter) Highlight(sql string) string {
	lines := strings.Split(sql, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, h.highlightLine(line))
	}
	return strings.Join(out, "\n")
}

func (h *SQLHighlighter) highlightLine(line string) string {
	code, comment, hasComment := strings.Cut(line, "--")

	words := strings.Fields(code)
	highlighted := make([]string, 0, len(words)+1)

	for _, word := range words {
		cleanWord := strings.TrimRight(word, ",;()")
		cleanWord = strings.TrimLeft(cleanWord, "(")

		switch {
		case h.keywords[cleanWord]:
			highlighted = append(highlighted, h.keywordStyle.Render(word))
		case h.dataTypes[cleanWord]:
			highlighted = append(highlighted, h.typeStyle.Render(word))
		case strings.HasPrefix(cleanWord, "'") && strings.HasSuffix(cleanWord, "'"):
			highlighted = append(highlighted, h.stringStyle.Render(word))
		case isNumeric(cleanWord):
			highlighted = append(highlighted, h.numberStyle.Render(word))
		case h.punctuation[word]:
			highlighted = append(highlighted, h.punctStyle.Render(word))
		default:
			highlighted = append(highlighted, word)
		}
	}

	if hasComment {
		highlighted = append(highlighted, h.commentStyle.Render("--"+comment))
	}

	return strings.Join(highlighted, " ")
}

// isNumeric checks if a string represents a number
func isNumeric(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune("0123456789.-", c) {
			return false
		}
	}
	return s != "" && s != "-" && s != "."
}
