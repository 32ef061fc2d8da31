package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	activeTab    = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTab  = lipgloss.NewStyle().Faint(true)
)

// strengthColors maps a PasswordStrength score (1..4) to the meter color,
// weakest to strongest.
var strengthColors = []lipgloss.Color{
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#f59e0b"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#06b6d4"),
}
