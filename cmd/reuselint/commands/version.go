package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/catalog"
	"github.com/reuselint/reuselint/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", version.AppName, version.Current)
		fmt.Printf("REUSE Specification %s\n", version.SpecVersion)
		fmt.Printf("SPDX License List %s\n", catalog.ListVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
