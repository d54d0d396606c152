package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/catalog"
)

var supportedLicensesCmd = &cobra.Command{
	Use:   "supported-licenses",
	Short: "List all licenses on the SPDX License List",
	Run: func(cmd *cobra.Command, args []string) {
		entries := catalog.Default().Licenses()

		width := 0
		for _, e := range entries {
			if len(e.ID) > width {
				width = len(e.ID)
			}
		}
		for _, e := range entries {
			fmt.Printf("%-*s    %s\n", width, e.ID, e.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(supportedLicensesCmd)
}
