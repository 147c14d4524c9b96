package menu

import "github.com/charmbracelet/lipgloss"

// Colors used in the menu picker.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the menu picker.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(colorMuted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1),
		Normal: lipgloss.NewStyle().
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
