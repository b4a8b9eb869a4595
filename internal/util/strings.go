// Package util provides shared terminal string helpers.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// ANSI escape codes and wide characters are measured correctly.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, "...")
}

// FitANSI truncates or right-pads s to exactly width visual columns.
func FitANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateANSI(s, width)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
