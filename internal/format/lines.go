package format

import (
	"fmt"
	"strings"

	"github.com/reuselint/reuselint/internal/record"
	"github.com/reuselint/reuselint/internal/report"
)

// renderLines emits one "path: finding" line per problem. A compliant
// report renders to nothing.
func renderLines(rep *report.ProjectReport) []byte {
	var b strings.Builder

	for _, lic := range sortedKeys(rep.BadLicenses) {
		for _, file := range rep.BadLicenses[lic] {
			fmt.Fprintf(&b, "%s: bad license %s\n", file, lic)
		}
	}
	for _, lic := range rep.DeprecatedLicenses {
		fmt.Fprintf(&b, "%s: deprecated license\n", licensePath(rep, lic))
	}
	for _, lic := range rep.LicensesWithoutExtension {
		fmt.Fprintf(&b, "%s: license without file extension\n", licensePath(rep, lic))
	}
	for _, lic := range sortedKeys(rep.MissingLicenses) {
		for _, file := range rep.MissingLicenses[lic] {
			fmt.Fprintf(&b, "%s: missing license %s\n", file, lic)
		}
	}
	for _, lic := range rep.UnusedLicenses {
		fmt.Fprintf(&b, "%s: unused license\n", licensePath(rep, lic))
	}
	for _, expr := range sortedKeys(rep.UnparsableExpressions) {
		for _, file := range rep.UnparsableExpressions[expr] {
			fmt.Fprintf(&b, "%s: unparsable license expression '%s'\n", file, expr)
		}
	}
	for _, path := range rep.ReadErrors {
		fmt.Fprintf(&b, "%s: read error\n", path)
	}

	both := record.NewSet(rep.FilesWithoutInfo()...)
	for _, file := range rep.FilesWithoutInfo() {
		fmt.Fprintf(&b, "%s: no copyright and licensing information\n", file)
	}
	for _, file := range rep.FilesWithoutCopyright() {
		if !both.Has(file) {
			fmt.Fprintf(&b, "%s: no copyright information\n", file)
		}
	}
	for _, file := range rep.FilesWithoutLicensing() {
		if !both.Has(file) {
			fmt.Fprintf(&b, "%s: no licensing information\n", file)
		}
	}

	return []byte(b.String())
}

// RenderLinesSubset renders the findings of a restricted scan, one per
// line. Only findings attributable to the scanned files themselves are
// printed; tree-wide inventory findings are not theirs to answer for.
func RenderLinesSubset(rep *report.ProjectReport) []byte {
	var b strings.Builder

	for _, lic := range sortedKeys(rep.MissingLicenses) {
		for _, file := range rep.MissingLicenses[lic] {
			fmt.Fprintf(&b, "%s: missing license %s\n", file, lic)
		}
	}
	for _, path := range rep.ReadErrors {
		fmt.Fprintf(&b, "%s: read error\n", path)
	}
	for _, file := range rep.FilesWithoutCopyright() {
		fmt.Fprintf(&b, "%s: no copyright information\n", file)
	}
	for _, file := range rep.FilesWithoutLicensing() {
		fmt.Fprintf(&b, "%s: no licensing information\n", file)
	}

	return []byte(b.String())
}

func licensePath(rep *report.ProjectReport, lic string) string {
	if p, ok := rep.Licenses[lic]; ok {
		return p
	}
	return lic
}
