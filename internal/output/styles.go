package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette. All ANSI 256 colors used by the CLI are named here; use
// these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, versions, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "updated" status.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "removed" status.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for the "invalid" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles mapping tree concepts to presentation.
var (
	// StyleNoun styles identifiable nouns (module names, versions, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (created, linked, copied, removed).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, arrows).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status constants.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusRemoved = "removed"
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// StatusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusValid:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusUpdated:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	case StatusInvalid:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatStatusLine renders "<noun>  <status>" with the noun in cyan and the
// status color-coded.
func FormatStatusLine(noun, status string) string {
	return StyleNoun.Render(noun) + "  " + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// ConfigureColor turns styling off when noColor is set, when NO_COLOR is
// present in the environment, or when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	_, envNoColor := os.LookupEnv("NO_COLOR")
	if noColor || envNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
