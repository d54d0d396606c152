package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/format"
	"github.com/reuselint/reuselint/internal/scan"
)

var lintFileQuiet bool

var lintFileCmd = &cobra.Command{
	Use:   "lint-file FILE...",
	Short: "Lint individual files for REUSE compliance",
	Long: `Lint individual files for REUSE compliance. The specified FILEs are
checked for the presence of copyright and licensing information, and
whether the found licenses are included in the LICENSES/ directory.

Exits 1 when any of the files is not compliant.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subset, err := subsetPaths(config.Root, args)
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		cfg := config
		cfg.Subset = subset
		sc, err := scan.New(cmd.Context(), scan.WithConfig(cfg))
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		rep, _, err := sc.Run(cmd.Context())
		sc.Close(cmd.Context())
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		if !lintFileQuiet {
			os.Stdout.Write(format.RenderLinesSubset(rep))
		}
		if !rep.CompliantSubset() {
			os.Exit(1)
		}
	},
}

// subsetPaths turns the FILE arguments into root-relative slash paths.
// Every argument must exist and live inside root.
func subsetPaths(root string, args []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	subset := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(absRoot, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("%q is not inside of %q", arg, root)
		}
		subset = append(subset, filepath.ToSlash(rel))
	}
	return subset, nil
}

func init() {
	lintFileCmd.Flags().BoolVarP(&lintFileQuiet, "quiet", "q", false, "Suppress output, keep only the exit code")
	rootCmd.AddCommand(lintFileCmd)
}
