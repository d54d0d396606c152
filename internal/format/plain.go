package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reuselint/reuselint/internal/record"
	"github.com/reuselint/reuselint/internal/report"
	"github.com/reuselint/reuselint/pkg/version"
)

func renderPlain(rep *report.ProjectReport) []byte {
	var b strings.Builder

	writeFileMap(&b, "BAD LICENSES", rep.BadLicenses)
	writeList(&b, "DEPRECATED LICENSES", "The following licenses are deprecated by SPDX:", rep.DeprecatedLicenses)
	writeList(&b, "LICENSES WITHOUT FILE EXTENSION", "The following licenses have no file extension:", rep.LicensesWithoutExtension)
	writeFileMap(&b, "MISSING LICENSES", rep.MissingLicenses)
	writeList(&b, "UNUSED LICENSES", "The following licenses are not used:", rep.UnusedLicenses)
	writeFileMap(&b, "UNPARSABLE EXPRESSIONS", rep.UnparsableExpressions)
	writeList(&b, "READ ERRORS", "Could not read:", rep.ReadErrors)
	writeNoInfo(&b, rep)
	writeSummary(&b, rep)

	return []byte(b.String())
}

func writeFileMap(b *strings.Builder, header string, m map[string][]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(b, "# %s\n", header)
	for _, key := range sortedKeys(m) {
		fmt.Fprintf(b, "\n'%s' found in:\n", key)
		for _, file := range m[key] {
			fmt.Fprintf(b, "* %s\n", file)
		}
	}
	b.WriteString("\n\n")
}

func writeList(b *strings.Builder, header, intro string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "# %s\n\n%s\n", header, intro)
	for _, item := range items {
		fmt.Fprintf(b, "* %s\n", item)
	}
	b.WriteString("\n\n")
}

func writeNoInfo(b *strings.Builder, rep *report.ProjectReport) {
	both := rep.FilesWithoutInfo()
	noCopyright := excluding(rep.FilesWithoutCopyright(), both)
	noLicensing := excluding(rep.FilesWithoutLicensing(), both)
	if len(both)+len(noCopyright)+len(noLicensing) == 0 {
		return
	}
	b.WriteString("# MISSING COPYRIGHT AND LICENSING INFORMATION\n\n")
	writeNoInfoGroup(b, "The following files have no copyright and licensing information:", both)
	writeNoInfoGroup(b, "The following files have no copyright information:", noCopyright)
	writeNoInfoGroup(b, "The following files have no licensing information:", noLicensing)
	b.WriteString("\n")
}

func writeNoInfoGroup(b *strings.Builder, intro string, files []string) {
	if len(files) == 0 {
		return
	}
	b.WriteString(intro + "\n")
	for _, file := range files {
		fmt.Fprintf(b, "* %s\n", file)
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, rep *report.ProjectReport) {
	b.WriteString("# SUMMARY\n\n")
	rows := []struct{ label, value string }{
		{"Bad licenses:", joined(sortedKeys(rep.BadLicenses))},
		{"Deprecated licenses:", joined(rep.DeprecatedLicenses)},
		{"Licenses without file extension:", joined(rep.LicensesWithoutExtension)},
		{"Missing licenses:", joined(sortedKeys(rep.MissingLicenses))},
		{"Unused licenses:", joined(rep.UnusedLicenses)},
		{"Unparsable expressions:", joined(sortedKeys(rep.UnparsableExpressions))},
		{"Used licenses:", joined(rep.UsedLicenses)},
		{"Read errors:", strconv.Itoa(len(rep.ReadErrors))},
		{"Files with copyright information:", fmt.Sprintf("%d / %d", rep.CountWithCopyright(), rep.TotalFiles())},
		{"Files with license information:", fmt.Sprintf("%d / %d", rep.CountWithLicensing(), rep.TotalFiles())},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "* %s %s\n", row.label, row.value)
	}
	b.WriteString("\n")
	if rep.Compliant() {
		fmt.Fprintf(b, "Congratulations! Your project is compliant with version %s of the REUSE Specification :-)\n", version.SpecVersion)
	} else {
		fmt.Fprintf(b, "Unfortunately, your project is not compliant with version %s of the REUSE Specification :-(\n", version.SpecVersion)
	}
}

func joined(items []string) string {
	if len(items) == 0 {
		return "0"
	}
	return strings.Join(items, ", ")
}

// excluding returns items without the members of drop, keeping order.
func excluding(items, drop []string) []string {
	dropSet := record.NewSet(drop...)
	var out []string
	for _, v := range items {
		if !dropSet.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
