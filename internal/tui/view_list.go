package tui

import (
	"fmt"
	"strings"

	"github.com/reuselint/reuselint/pkg/version"
)

func (m Model) viewList() string {
	s := strings.Builder{}

	verdict := special.Render("COMPLIANT")
	if !m.report.Compliant() {
		verdict = warning.Render("NOT COMPLIANT")
	}
	s.WriteString(titleStyle.Render("REUSE "+version.SpecVersion+" • "+m.root) + " " + verdict + "\n")

	summary := fmt.Sprintf("  %d findings | copyright %d/%d | licensing %d/%d",
		len(m.findings),
		m.report.CountWithCopyright(), m.report.TotalFiles(),
		m.report.CountWithLicensing(), m.report.TotalFiles(),
	)
	s.WriteString(dimStyle.Render(summary) + "\n\n")

	if len(m.findings) == 0 {
		s.WriteString("   " + iconSafe.Render() + subtle.Render("  Nothing to fix.") + "\n")
		s.WriteString("\n" + helpStyle("q: quit") + "\n")
		return s.String()
	}

	headerTxt := fmt.Sprintf("  %-30s | %-16s | %s", "SUBJECT", "PROBLEM", "DETAIL")
	s.WriteString(dimStyle.Render(headerTxt) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 70)) + "\n")

	start, end := m.calculateWindow(len(m.findings))
	for i := start; i < end; i++ {
		f := m.findings[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		subject := f.Subject
		if len(subject) > 30 {
			subject = subject[:27] + "..."
		}

		base := fmt.Sprintf("%-30s | %-16s | %s", subject, f.Kind, f.Detail)
		if f.severe {
			base = danger.Render(base)
		}
		line := cursor + base

		if i == m.cursor {
			s.WriteString(listSelectedStyle.Render(line) + "\n")
		} else {
			s.WriteString(listNormalStyle.Render(line) + "\n")
		}
	}
	if end < len(m.findings) {
		s.WriteString(dimStyle.Render("   ...") + "\n")
	}

	s.WriteString("\n" + helpStyle("enter: details • j/k: move • q: quit") + "\n")
	return s.String()
}

func (m Model) calculateWindow(total int) (int, int) {
	windowSize := m.height - 9
	if windowSize < 5 {
		windowSize = 5
	}

	start := m.cursor - windowSize/2
	if start < 0 {
		start = 0
	}

	end := start + windowSize
	if end > total {
		end = total
		start = end - windowSize
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
