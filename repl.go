package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/superhawk610/sqlit/pkg/database"
	"github.com/superhawk610/sqlit/pkg/parser/parser"
	"github.com/superhawk610/sqlit/pkg/ui/base"
	"github.com/superhawk610/sqlit/pkg/utils/functools"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/chzyer/readline"
)

// repl evaluates one input line at a time against a database and writes
// the outcome to out.
type repl struct {
	db  *database.Database
	out io.Writer

	header lipgloss.Style
	border lipgloss.Style
	errMsg lipgloss.Style
	muted  lipgloss.Style
}

func newREPL(db *database.Database, out io.Writer, palette base.ColorPalette) *repl {
	return &repl{
		db:     db,
		out:    out,
		header: lipgloss.NewStyle().Foreground(palette.Primary).Bold(true).Padding(0, 1),
		border: lipgloss.NewStyle().Foreground(palette.Muted),
		errMsg: lipgloss.NewStyle().Foreground(palette.Error),
		muted:  lipgloss.NewStyle().Foreground(palette.Muted),
	}
}

// runPlainMode reads statements with readline until EOF or an exit command.
func runPlainMode(db *database.Database, palette base.ColorPalette) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlit> ",
		HistoryFile:     filepath.Join(os.TempDir(), "sqlit.history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	r := newREPL(db, l.Stdout(), palette)
	fmt.Fprintf(r.out, "Connected to %s. Type \\h for help.\n", db.Name())

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if quit := r.handle(line); quit {
			return nil
		}
	}
}

// handle evaluates a single line and reports whether the session should end.
func (r *repl) handle(line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return false
	case trimmed == "quit" || trimmed == "exit" || trimmed == `\q`:
		return true
	case trimmed == `\h`:
		r.printHelp()
	case trimmed == `\dt`:
		r.listTables()
	case strings.HasPrefix(trimmed, `\d `):
		r.describeTable(strings.TrimSpace(trimmed[len(`\d `):]))
	case strings.HasPrefix(trimmed, `\p `):
		r.parseOnly(strings.TrimSpace(trimmed[len(`\p `):]))
	case trimmed == `\s`:
		r.printStatistics()
	default:
		r.execute(trimmed)
	}
	return false
}

func (r *repl) execute(input string) {
	if len(database.SplitStatements(input)) > 1 {
		results, err := r.db.ExecuteScript(context.Background(), input)
		for _, res := range results {
			r.printResult(res)
		}
		if err != nil {
			r.printError(err)
		}
		return
	}

	res, err := r.db.ExecuteQuery(input)
	if err != nil {
		r.printError(err)
		return
	}
	r.printResult(res)
}

// parseOnly prints the canonical form of a statement without running it.
func (r *repl) parseOnly(input string) {
	stmt, err := parser.ParseStatement(input)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintln(r.out, stmt.String())
}

func (r *repl) listTables() {
	names, err := r.db.GetTables()
	if err != nil {
		r.printError(err)
		return
	}
	rows := functools.Map(names, func(name string) []string { return []string{name} })
	r.printTable([]string{"Table"}, rows)
	fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("%d table(s)", len(rows))))
}

func (r *repl) describeTable(name string) {
	def, err := r.db.GetTableSchema(name)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintln(r.out, def)
}

func (r *repl) printStatistics() {
	stats := r.db.GetStatistics()
	r.printTable([]string{"Metric", "Value"}, [][]string{
		{"Database Name", stats.Name},
		{"Total Tables", fmt.Sprint(stats.TableCount)},
		{"Total Rows", fmt.Sprint(stats.RowCount)},
		{"Queries Executed", fmt.Sprint(stats.QueriesExecuted)},
		{"Rows Inserted", fmt.Sprint(stats.RowsInserted)},
		{"Errors", fmt.Sprint(stats.ErrorCount)},
	})
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `Statements: CREATE TABLE, INSERT INTO, SELECT (separate several with ;)
  \dt        list tables
  \d NAME    show a table definition
  \p SQL     parse only, print the normalized statement
  \s         show statistics
  \q         quit`)
}

func (r *repl) printResult(res database.QueryResult) {
	if len(res.Columns) > 0 {
		r.printTable(res.Columns, res.Rows)
	}
	fmt.Fprintln(r.out, r.muted.Render(res.Message))
}

func (r *repl) printTable(columns []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(columns...).
		Rows(rows...)

	fmt.Fprintln(r.out, t.Render())
}

func (r *repl) printError(err error) {
	fmt.Fprintln(r.out, r.errMsg.Render("Error: "+truncateString(err.Error(), 200)))
}
