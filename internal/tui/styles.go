package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen    = lipgloss.Color("#00FF99")
	colorPurple   = lipgloss.Color("#874BFD")
	colorTextMain = lipgloss.Color("#E2E8F0")
	colorTextSub  = lipgloss.Color("#64748B")
	colorDanger   = lipgloss.Color("#FF0055")
	colorWarning  = lipgloss.Color("#F59E0B")

	subtle   = lipgloss.NewStyle().Foreground(colorTextSub)
	dimStyle = lipgloss.NewStyle().Foreground(colorTextSub)
	special  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	danger   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warning  = lipgloss.NewStyle().Foreground(colorWarning)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true).
			Padding(0, 1)

	iconSafe = lipgloss.NewStyle().Foreground(colorGreen).SetString("✓")

	listSelectedStyle = lipgloss.NewStyle().
				Foreground(colorTextMain).
				Background(lipgloss.Color("#331832")).
				Bold(true)

	listNormalStyle = lipgloss.NewStyle().
			Foreground(colorTextSub)

	detailsHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true).
				Underline(true)

	detailsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTextSub).
			Padding(1, 2)
)

func helpStyle(s string) string {
	return subtle.Render(s)
}
