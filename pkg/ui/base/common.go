package base

import "strings"

// TruncateString truncates a string to maxWidth with ellipsis
func TruncateString(s string, maxWidth int) string {
	if len(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return s[:maxWidth]
	}
	return s[:maxWidth-3] + "..."
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// CenterString centers a string within the given width
func CenterString(s string, width int) string {
	if len(s) >= width {
		return s
	}
	leftPad := (width - len(s)) / 2
	rightPad := width - len(s) - leftPad
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", rightPad)
}
