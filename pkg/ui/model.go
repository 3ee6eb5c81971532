package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/superhawk610/sqlit/pkg/database"
	"github.com/superhawk610/sqlit/pkg/ui/base"
	"github.com/superhawk610/sqlit/pkg/utils/functools"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	editorHeight   = 6
	minColumnWidth = 10
	maxColumnWidth = 30
)

// Model represents the application state
type Model struct {
	database    *database.Database
	queryEditor textarea.Model
	resultTable table.Model
	spinner     spinner.Model
	help        help.Model
	highlighter *SQLHighlighter
	styles      styles

	width      int
	height     int
	executing  bool
	showHelp   bool
	lastQuery  string
	lastResult database.QueryResult
	lastError  error

	queryHistory []string
	historyPos   int

	lastQueryTime time.Duration
	keys          keyMap
}

// NewModel builds the terminal UI around db, rendered with palette.
func NewModel(db *database.Database, palette base.ColorPalette) Model {
	st := newStyles(palette)

	ta := textarea.New()
	ta.Placeholder = "CREATE TABLE, INSERT INTO or SELECT ... (ctrl+e to run)"
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(editorHeight)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(palette.BgLight)
	ta.FocusedStyle.Placeholder = st.muted
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(palette.TextPrimary)
	ta.FocusedStyle.LineNumber = st.muted

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Results", Width: 80}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(palette.Primary).
		BorderBottom(true).
		Bold(true).
		Foreground(palette.Primary)
	s.Selected = s.Selected.
		Foreground(palette.BgDark).
		Background(palette.Secondary).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(palette.Primary)

	return Model{
		database:     db,
		queryEditor:  ta,
		resultTable:  t,
		spinner:      sp,
		help:         help.New(),
		highlighter:  NewSQLHighlighter(),
		styles:       st,
		keys:         keys,
		queryHistory: make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		if m.executing {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			query := m.queryEditor.Value()
			if strings.TrimSpace(query) != "" {
				m.executing = true
				return m, tea.Batch(m.spinner.Tick, m.executeQuery(query))
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.queryEditor.SetValue("")
			m.lastQuery = ""
			m.lastResult = database.QueryResult{}
			m.lastError = nil
			return m, nil

		case key.Matches(msg, m.keys.ShowTables):
			return m, m.showTables()

		case key.Matches(msg, m.keys.ShowStats):
			return m, m.showStatistics()

		case key.Matches(msg, m.keys.HistoryPrev):
			m.recallHistory(-1)
			return m, nil

		case key.Matches(msg, m.keys.HistoryNext):
			m.recallHistory(1)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case queryResultMsg:
		m.executing = false
		m.lastQuery = msg.query
		m.lastResult = msg.result
		m.lastError = msg.err
		m.lastQueryTime = msg.duration

		if msg.err == nil && msg.record {
			m.queryHistory = append(m.queryHistory, msg.query)
		}
		m.historyPos = len(m.queryHistory)
		m.updateResultDisplay()
		return m, nil

	case spinner.TickMsg:
		if m.executing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if !m.executing {
		var cmd tea.Cmd
		m.queryEditor, cmd = m.queryEditor.Update(msg)
		cmds = append(cmds, cmd)

		m.resultTable, cmd = m.resultTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderQueryEditor(),
	}

	switch {
	case m.executing:
		sections = append(sections, m.renderExecuting())
	case m.lastError != nil:
		sections = append(sections, m.renderError())
	case len(m.lastResult.Columns) > 0:
		sections = append(sections, m.renderResultTable())
	case m.lastResult.Message != "":
		sections = append(sections, m.renderMessage())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return m.styles.app.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{m.keys.Execute, m.keys.Clear, m.keys.HistoryPrev, m.keys.HistoryNext},
		{m.keys.ShowTables, m.keys.ShowStats, m.keys.Help, m.keys.Quit},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(m.styles.palette.Primary).
		Padding(1, 2).
		Background(m.styles.palette.BgMedium).
		Render(helpText)
}

func (m Model) renderHeader() string {
	info := m.database.GetStatistics()

	title := m.styles.title.Render("sqlit")
	badge := m.styles.dbBadge.Render(info.Name)
	summary := m.styles.secondary.Render(fmt.Sprintf("Tables: %d | Rows: %d | Queries: %d",
		info.TableCount, info.RowCount, info.QueriesExecuted))

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge, "  ", summary)

	separator := strings.Repeat("─", max(m.width-4, 0))
	return header + "\n" + lipgloss.NewStyle().
		Foreground(m.styles.palette.BgLight).
		Render(separator)
}

func (m Model) renderQueryEditor() string {
	label := m.styles.label.Render("SQL Query Editor")
	editor := m.styles.editor.Render(m.queryEditor.View())
	return fmt.Sprintf("%s\n%s", label, editor)
}

func (m Model) renderExecuting() string {
	content := lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " Executing query...")

	return lipgloss.NewStyle().
		Foreground(m.styles.palette.Primary).
		Padding(1, 0).
		Render(content)
}

func (m Model) renderError() string {
	icon := m.styles.errBadge.Render(" ERROR ")
	message := lipgloss.NewStyle().
		Foreground(m.styles.palette.Error).
		Render(m.lastError.Error())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.palette.Error).
		Padding(0, 1).
		Render(fmt.Sprintf("%s %s", icon, message))
}

func (m Model) renderQueryEcho() string {
	if m.lastQuery == "" {
		return ""
	}
	return m.styles.muted.Render("> ") + m.highlighter.Highlight(m.lastQuery) + "\n"
}

func (m Model) renderResultTable() string {
	header := lipgloss.NewStyle().
		Foreground(m.styles.palette.Accent).
		Bold(true).
		Render(fmt.Sprintf("%s (%d rows in %v)",
			m.lastResult.Message, len(m.lastResult.Rows), m.lastQueryTime))

	return m.renderQueryEcho() + header + "\n" + m.resultTable.View()
}

func (m Model) renderMessage() string {
	icon := m.styles.success.Render(" OK ")
	message := m.lastResult.Message

	body := lipgloss.NewStyle().
		Foreground(m.styles.palette.Accent).
		Padding(1, 0).
		Render(fmt.Sprintf("%s %s", icon, message))

	return m.renderQueryEcho() + body
}

func (m Model) renderStatusBar() string {
	status := "● Connected"

	timer := ""
	if m.lastQueryTime > 0 {
		timer = fmt.Sprintf(" | Last query: %v", m.lastQueryTime)
	}
	if n := len(m.queryHistory); n > 0 {
		timer += fmt.Sprintf(" | History: %d", n)
	}

	content := lipgloss.NewStyle().
		Foreground(m.styles.palette.Accent).
		Render(status) +
		m.styles.muted.Render(timer+" | Press Ctrl+H for help")

	return m.styles.statusBar.
		Width(max(m.width-4, 0)).
		Render(content)
}

func (m Model) calculateColumnWidth(columnName string, index int) int {
	width := len(columnName) + 2
	for _, row := range m.lastResult.Rows {
		if index < len(row) {
			width = max(width, len(row[index])+2)
		}
	}
	return base.Clamp(width, minColumnWidth, maxColumnWidth)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	resultHeight := max(m.height-editorHeight-12, 3)

	m.queryEditor.SetWidth(max(m.width-6, 10))
	m.resultTable.SetHeight(resultHeight)
}

// updateResultDisplay loads the last result into the table component. It
// runs from Update so the table keeps its cursor state between renders.
func (m *Model) updateResultDisplay() {
	if m.lastError != nil || len(m.lastResult.Columns) == 0 {
		m.resultTable.Blur()
		return
	}

	columns := make([]table.Column, len(m.lastResult.Columns))
	for i, col := range m.lastResult.Columns {
		columns[i] = table.Column{Title: col, Width: m.calculateColumnWidth(col, i)}
	}

	rows := make([]table.Row, len(m.lastResult.Rows))
	for i, row := range m.lastResult.Rows {
		cells := make(table.Row, len(row))
		for j, cell := range row {
			cells[j] = base.TruncateString(cell, columns[j].Width)
		}
		rows[i] = cells
	}

	// Rows must be cleared first; the table renders rows against the
	// current column count.
	m.resultTable.SetRows(nil)
	m.resultTable.SetColumns(columns)
	m.resultTable.SetRows(rows)
	m.resultTable.GotoTop()

	if len(rows) > 0 {
		m.resultTable.Focus()
	} else {
		m.resultTable.Blur()
	}
}

// recallHistory moves through executed queries, loading the selected one
// into the editor. Moving past the newest entry clears the editor.
func (m *Model) recallHistory(delta int) {
	if len(m.queryHistory) == 0 {
		return
	}

	m.historyPos = base.Clamp(m.historyPos+delta, 0, len(m.queryHistory))
	if m.historyPos == len(m.queryHistory) {
		m.queryEditor.SetValue("")
		return
	}
	m.queryEditor.SetValue(m.queryHistory[m.historyPos])
}

type queryResultMsg struct {
	query    string
	result   database.QueryResult
	err      error
	duration time.Duration
	record   bool
}

// executeQuery runs the editor contents. A single statement goes through
// ExecuteQuery; several are run as a script and the last result is shown.
func (m Model) executeQuery(query string) tea.Cmd {
	db := m.database
	return func() tea.Msg {
		start := time.Now()
		msg := queryResultMsg{query: strings.TrimSpace(query), record: true}

		if len(database.SplitStatements(query)) <= 1 {
			msg.result, msg.err = db.ExecuteQuery(query)
		} else {
			results, err := db.ExecuteScript(context.Background(), query)
			msg.err = err
			if len(results) > 0 {
				msg.result = results[len(results)-1]
				msg.result.Message = fmt.Sprintf("%s (%d statements executed)",
					msg.result.Message, len(results))
			}
		}

		msg.duration = time.Since(start)
		return msg
	}
}

// showTables lists every table with its definition.
func (m Model) showTables() tea.Cmd {
	db := m.database
	return func() tea.Msg {
		start := time.Now()
		names, err := db.GetTables()
		if err != nil {
			return queryResultMsg{err: err}
		}

		rows, err := functools.MapWithError(names, func(name string) ([]string, error) {
			definition, err := db.GetTableSchema(name)
			if err != nil {
				return nil, err
			}
			return []string{name, definition}, nil
		})
		if err != nil {
			return queryResultMsg{err: err}
		}

		return queryResultMsg{
			result: database.QueryResult{
				Success: true,
				Columns: []string{"Table", "Definition"},
				Rows:    rows,
				Message: fmt.Sprintf("%d table(s)", len(rows)),
			},
			duration: time.Since(start),
		}
	}
}

// showStatistics displays database statistics
func (m Model) showStatistics() tea.Cmd {
	db := m.database
	return func() tea.Msg {
		start := time.Now()
		stats := db.GetStatistics()

		rows := [][]string{
			{"Database Name", stats.Name},
			{"Total Tables", fmt.Sprintf("%d", stats.TableCount)},
			{"Total Rows", fmt.Sprintf("%d", stats.RowCount)},
			{"Queries Executed", fmt.Sprintf("%d", stats.QueriesExecuted)},
			{"Rows Inserted", fmt.Sprintf("%d", stats.RowsInserted)},
			{"Errors", fmt.Sprintf("%d", stats.ErrorCount)},
		}
		if len(stats.Tables) > 0 {
			rows = append(rows, []string{"Tables", strings.Join(stats.Tables, ", ")})
		}

		return queryResultMsg{
			result: database.QueryResult{
				Success: true,
				Columns: []string{"Metric", "Value"},
				Rows:    rows,
				Message: "Database statistics",
			},
			duration: time.Since(start),
		}
	}
}
