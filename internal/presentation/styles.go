package presentation

import "github.com/charmbracelet/lipgloss"

var (
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	warningColor = lipgloss.Color("#F59E0B")
	infoColor    = lipgloss.Color("#06B6D4")
	pathColor    = lipgloss.Color("#60A5FA")

	foundStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	countStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	extStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(pathColor)

	summaryStyle = lipgloss.NewStyle().
			Background(successColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	iconMoved  = "✔"
	iconFailed = "✘"
)
