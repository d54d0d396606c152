package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxDetailFiles = 15

func (m Model) viewDetails() string {
	if m.cursor < 0 || m.cursor >= len(m.findings) {
		return "No finding selected"
	}
	f := m.findings[m.cursor]

	header := detailsHeaderStyle.Render(fmt.Sprintf("%s : %s", strings.ToUpper(f.Kind), f.Subject))

	info := fmt.Sprintf("%-10s %s\n%-10s %d file(s)", "PROBLEM:", f.Detail, "AFFECTED:", len(f.Files))

	files := f.Files
	truncated := false
	if len(files) > maxDetailFiles {
		files = files[:maxDetailFiles]
		truncated = true
	}
	var fileRows []string
	for _, file := range files {
		fileRows = append(fileRows, "  "+file)
	}
	if truncated {
		fileRows = append(fileRows, "  ...")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		info,
		"",
		dimStyle.Render(strings.Join(fileRows, "\n")),
		"",
		strings.Repeat("─", 50),
		helpStyle("enter/b: back to list • q: quit"),
	)
	return detailsBoxStyle.Render(content)
}
