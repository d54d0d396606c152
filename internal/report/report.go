// Package report builds the compliance report: the resolved licensing
// view of every covered file, classified against the license
// inventory.
package report

import (
	"context"

	"github.com/reuselint/reuselint/internal/catalog"
	"github.com/reuselint/reuselint/internal/pool"
	"github.com/reuselint/reuselint/internal/project"
	"github.com/reuselint/reuselint/internal/record"
)

// FileReport is the resolved copyright and licensing answer for one
// covered file. All slices are sorted.
type FileReport struct {
	Name         string   `json:"name" yaml:"name"`
	Copyrights   []string `json:"copyrights" yaml:"copyrights"`
	Expressions  []string `json:"license_expressions" yaml:"license_expressions"`
	Contributors []string `json:"contributors,omitempty" yaml:"contributors,omitempty"`
	Licenses     []string `json:"licenses" yaml:"licenses"`
	Unparsable   []string `json:"unparsable_expressions,omitempty" yaml:"unparsable_expressions,omitempty"`
}

// HasCopyright reports whether the file resolved any copyright line.
func (f FileReport) HasCopyright() bool { return len(f.Copyrights) > 0 }

// HasLicensing reports whether the file resolved any license
// expression.
func (f FileReport) HasLicensing() bool { return len(f.Expressions) > 0 }

// ProjectReport is the scan outcome for a whole tree: one FileReport
// per readable covered file plus the classification sets. Two runs
// over identical input produce identical reports; every map value and
// slice is sorted.
type ProjectReport struct {
	Root  string       `json:"root" yaml:"root"`
	Files []FileReport `json:"files" yaml:"files"`

	// BadLicenses maps unrecognized inventory identifiers to the
	// license file and every covered file referencing them.
	BadLicenses              map[string][]string `json:"bad_licenses" yaml:"bad_licenses"`
	DeprecatedLicenses       []string            `json:"deprecated_licenses" yaml:"deprecated_licenses"`
	LicensesWithoutExtension []string            `json:"licenses_without_extension" yaml:"licenses_without_extension"`
	// MissingLicenses maps identifiers used by files but absent from
	// the inventory to the files using them.
	MissingLicenses map[string][]string `json:"missing_licenses" yaml:"missing_licenses"`
	UnusedLicenses  []string            `json:"unused_licenses" yaml:"unused_licenses"`
	// UnparsableExpressions maps malformed expressions to the files
	// carrying them. The files' parseable evidence is kept.
	UnparsableExpressions map[string][]string `json:"unparsable_expressions" yaml:"unparsable_expressions"`
	ReadErrors            []string            `json:"read_errors" yaml:"read_errors"`

	// UsedLicenses are all identifiers appearing in any covered file,
	// inventoried or not.
	UsedLicenses []string `json:"used_licenses" yaml:"used_licenses"`
	// Licenses maps every inventory identifier to its license file.
	Licenses map[string]string `json:"licenses" yaml:"licenses"`
}

// Options tunes report generation.
type Options struct {
	// Jobs is the worker pool size. Zero means one worker per CPU;
	// one disables concurrency.
	Jobs int
}

// Generate scans every covered file of proj and classifies the results
// against the inventory. Per-file read errors become report data, so
// Generate always returns a complete report.
func Generate(ctx context.Context, proj *project.Project, opts Options) *ProjectReport {
	rep := &ProjectReport{
		Root:                     proj.Root,
		Files:                    make([]FileReport, 0, len(proj.Files)),
		BadLicenses:              map[string][]string{},
		DeprecatedLicenses:       []string{},
		LicensesWithoutExtension: []string{},
		MissingLicenses:          map[string][]string{},
		UnusedLicenses:           []string{},
		UnparsableExpressions:    map[string][]string{},
		ReadErrors:               []string{},
		UsedLicenses:             []string{},
		Licenses:                 map[string]string{},
	}

	results := make([]fileResult, len(proj.Files))
	workers := pool.New(opts.Jobs)
	workers.Start(ctx)
	for i, rel := range proj.Files {
		i, rel := i, rel
		workers.Submit(func(ctx context.Context) {
			results[i] = scanOne(ctx, proj, rel)
		})
	}
	workers.Wait()
	workers.Stop()

	// proj.Files is sorted, so collecting in index order keeps every
	// derived list sorted without a second pass.
	used := record.NewSet()
	usedBy := make(map[string]record.Set)
	unparsable := make(map[string]record.Set)
	for i, res := range results {
		rel := proj.Files[i]
		if res.err != nil {
			rep.ReadErrors = append(rep.ReadErrors, rel)
			continue
		}
		rep.Files = append(rep.Files, res.report)
		for _, atom := range res.report.Licenses {
			used.Add(atom)
			addFile(usedBy, atom, rel)
		}
		for _, expr := range res.report.Unparsable {
			addFile(unparsable, expr, rel)
		}
	}
	rep.UsedLicenses = used.Sorted()
	rep.UnparsableExpressions = freeze(unparsable)

	bad := make(map[string]record.Set)
	for _, lic := range proj.Inventory.Records() {
		id := lic.Identifier
		rep.Licenses[id] = lic.Path
		if !lic.KnownSPDX && !catalog.IsLicenseRef(id) {
			files := record.NewSet(lic.Path)
			files.AddSet(usedBy[id])
			bad[id] = files
		}
		if lic.Deprecated {
			rep.DeprecatedLicenses = append(rep.DeprecatedLicenses, id)
		}
		if lic.KnownSPDX && !lic.HasExtension {
			rep.LicensesWithoutExtension = append(rep.LicensesWithoutExtension, id)
		}
		if !used.Has(id) {
			rep.UnusedLicenses = append(rep.UnusedLicenses, id)
		}
	}
	rep.BadLicenses = freeze(bad)

	missing := make(map[string]record.Set)
	for atom, files := range usedBy {
		if !proj.Inventory.Has(atom) {
			missing[atom] = files
		}
	}
	rep.MissingLicenses = freeze(missing)

	return rep
}

type fileResult struct {
	report FileReport
	err    error
}

func scanOne(ctx context.Context, proj *project.Project, rel string) fileResult {
	if err := ctx.Err(); err != nil {
		return fileResult{err: err}
	}
	scan, err := proj.InfoOf(rel)
	if err != nil {
		return fileResult{err: err}
	}

	fr := FileReport{
		Name:         rel,
		Copyrights:   scan.Info.Copyrights.Sorted(),
		Expressions:  scan.Info.Expressions.Sorted(),
		Contributors: scan.Info.Contributors.Sorted(),
	}
	atoms := record.NewSet()
	unparsable := record.NewSet(scan.Unparsable...)
	for _, expr := range fr.Expressions {
		res := proj.Validator.Validate(expr)
		if !res.Parsed {
			unparsable.Add(expr)
			continue
		}
		atoms.Add(res.Atoms...)
	}
	fr.Licenses = atoms.Sorted()
	fr.Unparsable = unparsable.Sorted()
	return fileResult{report: fr}
}

func addFile(m map[string]record.Set, key, file string) {
	s, ok := m[key]
	if !ok {
		s = record.NewSet()
		m[key] = s
	}
	s.Add(file)
}

func freeze(m map[string]record.Set) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = v.Sorted()
	}
	return out
}

// TotalFiles is the number of covered files that could be read.
func (r *ProjectReport) TotalFiles() int { return len(r.Files) }

// CountWithCopyright is the number of files with at least one
// copyright line.
func (r *ProjectReport) CountWithCopyright() int {
	return r.TotalFiles() - len(r.FilesWithoutCopyright())
}

// CountWithLicensing is the number of files with at least one license
// expression.
func (r *ProjectReport) CountWithLicensing() int {
	return r.TotalFiles() - len(r.FilesWithoutLicensing())
}

// FilesWithoutCopyright lists files that resolved no copyright line.
func (r *ProjectReport) FilesWithoutCopyright() []string {
	var out []string
	for _, f := range r.Files {
		if !f.HasCopyright() {
			out = append(out, f.Name)
		}
	}
	return out
}

// FilesWithoutLicensing lists files that resolved no license
// expression.
func (r *ProjectReport) FilesWithoutLicensing() []string {
	var out []string
	for _, f := range r.Files {
		if !f.HasLicensing() {
			out = append(out, f.Name)
		}
	}
	return out
}

// FilesWithoutInfo lists files with neither copyright nor licensing
// information.
func (r *ProjectReport) FilesWithoutInfo() []string {
	var out []string
	for _, f := range r.Files {
		if !f.HasCopyright() && !f.HasLicensing() {
			out = append(out, f.Name)
		}
	}
	return out
}

// Compliant reports whether the scan found nothing to complain about:
// every classification set is empty and every file carries both
// copyright and licensing information.
func (r *ProjectReport) Compliant() bool {
	return len(r.BadLicenses) == 0 &&
		len(r.DeprecatedLicenses) == 0 &&
		len(r.LicensesWithoutExtension) == 0 &&
		len(r.MissingLicenses) == 0 &&
		len(r.UnusedLicenses) == 0 &&
		len(r.UnparsableExpressions) == 0 &&
		len(r.ReadErrors) == 0 &&
		len(r.FilesWithoutCopyright()) == 0 &&
		len(r.FilesWithoutLicensing()) == 0
}

// CompliantSubset is the compliance question for a restricted scan.
// Tree-wide inventory findings (unused, deprecated or bad license
// files) are left out: a file subset cannot be blamed for them.
func (r *ProjectReport) CompliantSubset() bool {
	return len(r.MissingLicenses) == 0 &&
		len(r.ReadErrors) == 0 &&
		len(r.FilesWithoutCopyright()) == 0 &&
		len(r.FilesWithoutLicensing()) == 0
}
