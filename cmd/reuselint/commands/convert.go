package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/convert"
	"github.com/reuselint/reuselint/internal/manifest"
)

var convertDep5Cmd = &cobra.Command{
	Use:   "convert-dep5",
	Short: "Convert .reuse/dep5 to REUSE.toml",
	Long: `Convert the deprecated ` + manifest.Dep5Path + ` file to an equivalent REUSE.toml
at the project root. The dep5 file is removed afterwards.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert.Dep5(config.Root); err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[SUCCESS] %s converted to REUSE.toml\n", manifest.Dep5Path)
	},
}

func init() {
	rootCmd.AddCommand(convertDep5Cmd)
}
