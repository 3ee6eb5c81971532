package ui

import (
	"github.com/superhawk610/sqlit/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

// styles holds every lipgloss style the model renders with, derived from
// one palette.
type styles struct {
	palette base.ColorPalette

	app       lipgloss.Style
	title     lipgloss.Style
	dbBadge   lipgloss.Style
	statusBar lipgloss.Style
	success   lipgloss.Style
	errBadge  lipgloss.Style
	editor    lipgloss.Style
	label     lipgloss.Style
	muted     lipgloss.Style
	secondary lipgloss.Style
}

func newStyles(p base.ColorPalette) styles {
	return styles{
		palette: p,

		app: lipgloss.NewStyle().
			Background(p.BgDark).
			Foreground(p.TextPrimary).
			Padding(1, 2),

		title: lipgloss.NewStyle().
			Background(p.Primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1),

		dbBadge: lipgloss.NewStyle().
			Background(p.Secondary).
			Foreground(p.BgDark).
			Bold(true).
			Padding(0, 1).
			MarginRight(2),

		statusBar: lipgloss.NewStyle().
			Background(p.BgMedium).
			Foreground(p.TextSecondary).
			Padding(0, 1),

		success: lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.BgDark).
			Bold(true).
			Padding(0, 1),

		errBadge: lipgloss.NewStyle().
			Background(p.Error).
			Foreground(p.TextPrimary).
			Bold(true).
			Padding(0, 1),

		editor: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		label: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		secondary: lipgloss.NewStyle().
			Foreground(p.TextSecondary),
	}
}
