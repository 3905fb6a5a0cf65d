package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	fulfilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	rejectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	defaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle      = lipgloss.NewStyle().MarginTop(1)
)

// StatusIcon returns a short glyph for a status.
func StatusIcon(status string) string {
	switch status {
	case "fulfilled":
		return fulfilledStyle.Render("✔")
	case "pending":
		return pendingStyle.Render("…")
	case "rejected":
		return rejectedStyle.Render("✖")
	default:
		return defaultStyle.Render("•")
	}
}
