// Package ui holds the terminal styles for the export transcript.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains the styles used by the ctt export transcript
type Styles struct {
	// Banner lines naming the projects
	Heading lipgloss.Style
	Project lipgloss.Style
	Hint    lipgloss.Style

	// One line per exported interval
	Bullet lipgloss.Style
	Item   lipgloss.Style

	// Final status lines
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns styles bound to w. Color is detected from w unless
// mode is "always" or "never".
func NewStyles(w io.Writer, mode string) Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	// Color palette
	primary := lipgloss.Color("99")     // Purple
	muted := lipgloss.Color("240")      // Gray
	success := lipgloss.Color("82")     // Green
	warning := lipgloss.Color("214")    // Orange
	errorColor := lipgloss.Color("196") // Red

	return Styles{
		Heading: r.NewStyle().
			Bold(true),
		Project: r.NewStyle().
			Foreground(primary).
			Bold(true),
		Hint: r.NewStyle().
			Foreground(muted),

		Bullet: r.NewStyle().
			Foreground(muted),
		Item: r.NewStyle(),

		Success: r.NewStyle().
			Foreground(success).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(warning),
		Error: r.NewStyle().
			Foreground(errorColor),
	}
}
