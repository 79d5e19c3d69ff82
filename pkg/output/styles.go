package output

import "github.com/charmbracelet/lipgloss"

// Color palette - Modern, balanced colors
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	// Table row colors - hex format for consistency
	colorTableOdd  = lipgloss.Color("#FCFCFA") // Light gray
	colorTableEven = lipgloss.Color("#A0A0A0") // Medium gray
)

var (
	// valueStyle renders secondary information in a muted tone.
	// Used for: footers, row counts, supporting text.
	valueStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// errorStyle renders error messages with high visibility.
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// warningStyle renders warnings, including dropped-field and
	// degraded-session notices.
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	// successStyle renders success confirmations.
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)

// Table styles
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				Padding(0, 1)

	tableOddRowStyle = lipgloss.NewStyle().
				Foreground(colorTableOdd).
				Padding(0, 1)

	tableEvenRowStyle = lipgloss.NewStyle().
				Foreground(colorTableEven).
				Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)
)
