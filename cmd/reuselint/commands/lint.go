package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/format"
	"github.com/reuselint/reuselint/internal/report"
	"github.com/reuselint/reuselint/internal/scan"
	"github.com/reuselint/reuselint/internal/tui"
	"github.com/reuselint/reuselint/pkg/version"
)

var (
	lintFormat      string
	lintQuiet       bool
	lintInteractive bool
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the project tree for REUSE compliance",
	Long: `Lint the project tree for compliance with version ` + version.SpecVersion + ` of the REUSE
Specification.

The following criteria are checked:

- Are there bad (unrecognised, not compliant with SPDX) licenses in
  the project?
- Are there deprecated licenses in the project?
- Are there license files in the LICENSES/ directory without file
  extension?
- Are licenses referred to inside of the project but not included in
  the LICENSES/ directory?
- Are licenses included in the LICENSES/ directory but never used
  inside of the project?
- Are there read errors?
- Do all files have valid copyright and licensing information?

Exits 1 when the project is not compliant.`,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := format.ParseFormat(lintFormat)
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		sc, err := scan.New(cmd.Context(), scan.WithConfig(config))
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		if lintInteractive {
			runInteractive(cmd.Context(), sc)
			return
		}

		rep, _, err := sc.Run(cmd.Context())
		sc.Close(cmd.Context())
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		if !lintQuiet {
			out, err := format.Render(f, rep)
			if err != nil {
				fmt.Printf("[ERROR] %v\n", err)
				os.Exit(1)
			}
			os.Stdout.Write(out)
		}
		if !rep.Compliant() {
			os.Exit(1)
		}
	},
}

// runInteractive hands the scan to the findings browser. The exit code
// still reflects compliance after the browser is closed.
func runInteractive(ctx context.Context, sc *scan.Scanner) {
	model := tui.NewModel(config.Root, func(ctx context.Context) (*report.ProjectReport, error) {
		rep, _, err := sc.Run(ctx)
		return rep, err
	})
	final, err := tea.NewProgram(model).Run()
	sc.Close(ctx)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok {
		rep := m.Report()
		if rep != nil && !rep.Compliant() {
			os.Exit(1)
		}
	}
}

func init() {
	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", "plain", "Output format: plain, lines, json or yaml")
	lintCmd.Flags().BoolVarP(&lintQuiet, "quiet", "q", false, "Suppress output, keep only the exit code")
	lintCmd.Flags().BoolVarP(&lintInteractive, "interactive", "i", false, "Browse findings in the terminal UI")
	lintCmd.MarkFlagsMutuallyExclusive("quiet", "format", "interactive")
	rootCmd.AddCommand(lintCmd)
}
