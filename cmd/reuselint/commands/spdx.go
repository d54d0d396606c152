package commands

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/reuselint/reuselint/internal/scan"
	"github.com/reuselint/reuselint/internal/spdxdoc"
)

var (
	spdxOutput        string
	spdxCreatorPerson string
	spdxCreatorOrg    string
)

// Conventional SPDX file names, per the SPDX conformance clause. The
// walker ignores matching files, so a generated document never pollutes
// the next scan.
var spdxNamePattern = regexp.MustCompile(`\.spdx(\.(rdf|json|xml|ya?ml))?$`)

var spdxCmd = &cobra.Command{
	Use:   "spdx",
	Short: "Generate an SPDX bill of materials",
	Long: `Generate an SPDX 2.1 tag-value bill of materials for the project:
one file entry per covered file with its checksum and licensing, plus
the extracted text of every LicenseRef- license.`,
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := scan.New(cmd.Context(), scan.WithConfig(config))
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

		doc, err := spdxdoc.Build(rep, spdxdoc.Options{
			CreatorPerson:       spdxCreatorPerson,
			CreatorOrganization: spdxCreatorOrg,
		})
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}

		if spdxOutput == "" || spdxOutput == "-" {
			os.Stdout.Write(doc)
			return
		}
		if !spdxNamePattern.MatchString(spdxOutput) {
			fmt.Printf("[WARN] %s does not match a common SPDX file pattern (*.spdx)\n", spdxOutput)
		}
		if err := os.WriteFile(spdxOutput, doc, 0o644); err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("[SUCCESS] SPDX document written: %s\n", spdxOutput)
	},
}

func init() {
	spdxCmd.Flags().StringVarP(&spdxOutput, "output", "o", "", "File to write to (default stdout)")
	spdxCmd.Flags().StringVar(&spdxCreatorPerson, "creator-person", "", "Name of the person signing off on the SPDX report")
	spdxCmd.Flags().StringVar(&spdxCreatorOrg, "creator-organization", "", "Name of the organization signing off on the SPDX report")
	rootCmd.AddCommand(spdxCmd)
}
