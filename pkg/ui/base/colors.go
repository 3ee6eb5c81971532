package base

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorPalette defines a consistent color scheme
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	BgDark        lipgloss.Color
	BgMedium      lipgloss.Color
	BgLight       lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Accent:    lipgloss.Color("#10B981"), // Emerald
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	BgDark:        lipgloss.Color("#0F172A"),
	BgMedium:      lipgloss.Color("#1E293B"),
	BgLight:       lipgloss.Color("#334155"),
	TextPrimary:   lipgloss.Color("#F8FAFC"),
	TextSecondary: lipgloss.Color("#CBD5E1"),
}

// LightPalette is an optional light theme palette
var LightPalette = ColorPalette{
	Primary:   lipgloss.Color("#5A56E0"), // Lighter Purple
	Secondary: lipgloss.Color("#EE6FF8"), // Pink
	Accent:    lipgloss.Color("#02BA84"), // Green
	Error:     lipgloss.Color("#FF5F56"), // Red
	Muted:     lipgloss.Color("#9B9B9B"), // Gray

	BgDark:        lipgloss.Color("#FFFFFF"),
	BgMedium:      lipgloss.Color("#F1F5F9"),
	BgLight:       lipgloss.Color("#E2E8F0"),
	TextPrimary:   lipgloss.Color("#0F172A"),
	TextSecondary: lipgloss.Color("#334155"),
}

// PaletteByName resolves a theme name given on the command line.
func PaletteByName(name string) (ColorPalette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark":
		return DarkPalette, nil
	case "light":
		return LightPalette, nil
	default:
		return ColorPalette{}, fmt.Errorf("unknown theme %q (expected dark or light)", name)
	}
}
