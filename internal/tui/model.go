// Package tui is the interactive findings browser behind lint
// --interactive: a spinner while the scan runs, then a windowed list of
// findings with a details pane.
package tui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reuselint/reuselint/internal/report"
)

type ViewState int

const (
	ViewStateList ViewState = iota
	ViewStateDetails
)

// Finding is one row of the browser: a single problem the scan found.
type Finding struct {
	Kind    string
	Subject string
	Detail  string
	Files   []string

	severe bool
}

// ScanFunc produces the report the browser displays.
type ScanFunc func(context.Context) (*report.ProjectReport, error)

type Model struct {
	spinner spinner.Model
	run     ScanFunc
	root    string

	// state
	state    ViewState
	scanning bool
	quitting bool
	err      error
	width    int
	height   int

	// data
	report   *report.ProjectReport
	findings []Finding

	// navigation
	cursor int
}

type scanDoneMsg struct {
	report *report.ProjectReport
	err    error
}

// NewModel builds the browser for root. The run callback performs the
// actual scan; Init invokes it once.
func NewModel(root string, run ScanFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = special

	return Model{
		spinner:  s,
		run:      run,
		root:     root,
		scanning: true,
		state:    ViewStateList,
	}
}

// Report returns the scan result, nil until the scan has finished.
// Callers read it off the final model to set the exit code.
func (m Model) Report() *report.ProjectReport {
	return m.report
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startScan)
}

func (m Model) startScan() tea.Msg {
	rep, err := m.run(context.Background())
	return scanDoneMsg{report: rep, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.state == ViewStateDetails {
				m.state = ViewStateList
			} else if len(m.findings) > 0 {
				m.state = ViewStateDetails
			}
		case "esc", "b":
			m.state = ViewStateList
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case scanDoneMsg:
		m.scanning = false
		m.err = msg.err
		m.report = msg.report
		if msg.report != nil {
			m.findings = newFindings(msg.report)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("\n  %s\n\n  %s\n", danger.Render("Scan failed: "+m.err.Error()), helpStyle("q: quit"))
	}
	if m.scanning {
		return fmt.Sprintf("\n\n   %s Scanning %s...\n\n   %s\n", m.spinner.View(), m.root, helpStyle("q: quit"))
	}
	if m.state == ViewStateDetails {
		return m.viewDetails()
	}
	return m.viewList()
}

// newFindings flattens the report's classifications into browser rows,
// in the order the plain formatter prints its sections.
func newFindings(rep *report.ProjectReport) []Finding {
	var out []Finding
	for _, lic := range sortedKeys(rep.BadLicenses) {
		out = append(out, Finding{
			Kind:    "bad license",
			Subject: lic,
			Detail:  "not an SPDX identifier",
			Files:   rep.BadLicenses[lic],
			severe:  true,
		})
	}
	for _, lic := range rep.DeprecatedLicenses {
		out = append(out, Finding{
			Kind:    "deprecated",
			Subject: lic,
			Detail:  "deprecated SPDX identifier",
			Files:   []string{licensePath(rep, lic)},
		})
	}
	for _, lic := range rep.LicensesWithoutExtension {
		out = append(out, Finding{
			Kind:    "no extension",
			Subject: lic,
			Detail:  "license file has no extension",
			Files:   []string{licensePath(rep, lic)},
		})
	}
	for _, lic := range sortedKeys(rep.MissingLicenses) {
		out = append(out, Finding{
			Kind:    "missing license",
			Subject: lic,
			Detail:  "referenced but absent from the license directory",
			Files:   rep.MissingLicenses[lic],
			severe:  true,
		})
	}
	for _, lic := range rep.UnusedLicenses {
		out = append(out, Finding{
			Kind:    "unused license",
			Subject: lic,
			Detail:  "present but never referenced",
			Files:   []string{licensePath(rep, lic)},
		})
	}
	for _, expr := range sortedKeys(rep.UnparsableExpressions) {
		out = append(out, Finding{
			Kind:    "unparsable",
			Subject: expr,
			Detail:  "license expression does not parse",
			Files:   rep.UnparsableExpressions[expr],
			severe:  true,
		})
	}
	for _, file := range rep.ReadErrors {
		out = append(out, Finding{
			Kind:    "read error",
			Subject: file,
			Detail:  "file could not be read",
			Files:   []string{file},
			severe:  true,
		})
	}
	for _, fr := range rep.Files {
		switch {
		case !fr.HasCopyright() && !fr.HasLicensing():
			out = append(out, Finding{
				Kind:    "no information",
				Subject: fr.Name,
				Detail:  "neither copyright nor licensing",
				Files:   []string{fr.Name},
			})
		case !fr.HasCopyright():
			out = append(out, Finding{
				Kind:    "no copyright",
				Subject: fr.Name,
				Detail:  "licensing without copyright",
				Files:   []string{fr.Name},
			})
		case !fr.HasLicensing():
			out = append(out, Finding{
				Kind:    "no licensing",
				Subject: fr.Name,
				Detail:  "copyright without licensing",
				Files:   []string{fr.Name},
			})
		}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func licensePath(rep *report.ProjectReport, lic string) string {
	if p, ok := rep.Licenses[lic]; ok {
		return p
	}
	return lic
}
