// Package project loads one source tree for scanning: its covered
// files, license inventory, annotation manifests, legacy manifest, and
// VCS strategy. A loaded Project answers the licensing facts of any
// file in the tree.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reuselint/reuselint/internal/catalog"
	"github.com/reuselint/reuselint/internal/expression"
	"github.com/reuselint/reuselint/internal/extract"
	"github.com/reuselint/reuselint/internal/inventory"
	"github.com/reuselint/reuselint/internal/manifest"
	"github.com/reuselint/reuselint/internal/record"
	"github.com/reuselint/reuselint/internal/resolve"
	"github.com/reuselint/reuselint/internal/vcs"
	"github.com/reuselint/reuselint/internal/walker"
)

// Config adjusts loading. The zero value scans everything with the
// bundled identifier catalog.
type Config struct {
	// LicensesDir overrides the license-storage directory name.
	LicensesDir string
	// Subset restricts covered files to these root-relative paths.
	Subset []string
	// Catalog overrides the bundled identifier table.
	Catalog *catalog.Catalog
	// VCS overrides detection, mainly for tests.
	VCS                     vcs.Strategy
	IncludeSubmodules       bool
	IncludeMesonSubprojects bool
	// SuppressDeprecation drops the legacy-manifest deprecation warning.
	SuppressDeprecation bool
}

// Project is a loaded source tree.
type Project struct {
	Root      string
	Files     []string
	Inventory *inventory.Inventory
	Validator *expression.Validator
	Manifests []*manifest.ReuseTOML
	Legacy    *manifest.Dep5
	VCS       vcs.Strategy

	// Warnings collects everything recoverable the load ran into:
	// dropped manifests, unresolvable license files, the legacy
	// manifest deprecation note. Render order is load order.
	Warnings []string

	extractor           *extract.Extractor
	suppressDeprecation bool
}

// FileScan is the resolved answer for one file plus the expression
// lines in its content that failed to parse.
type FileScan struct {
	Info       record.FileInfo
	Unparsable []string
}

// Load reads the tree under root. Fatal conditions are a missing or
// unlistable root and an unlistable or contradictory license
// directory; everything else degrades to a warning.
func Load(ctx context.Context, root string, cfg Config) (*Project, error) {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	licensesDir := cfg.LicensesDir
	if licensesDir == "" {
		licensesDir = inventory.DefaultDir
	}
	strategy := cfg.VCS
	if strategy == nil {
		strategy = vcs.Detect(ctx, root)
	}

	p := &Project{Root: root, VCS: strategy, suppressDeprecation: cfg.SuppressDeprecation}

	inv, err := inventory.Scan(root, licensesDir, cat)
	if err != nil {
		return nil, err
	}
	p.Inventory = inv
	p.Warnings = append(p.Warnings, inv.Warnings...)
	p.Validator = expression.NewValidator(inv.Catalog())
	p.extractor = extract.New(p.Validator)

	res, err := walker.Walk(root, walker.Options{
		LicensesDir:             licensesDir,
		Subset:                  cfg.Subset,
		IncludeSubmodules:       cfg.IncludeSubmodules,
		IncludeMesonSubprojects: cfg.IncludeMesonSubprojects,
		VCS:                     strategy,
	})
	if err != nil {
		return nil, err
	}
	p.Files = res.Files

	for _, rel := range res.Manifests {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			p.warnf("dropping %s: %v", rel, err)
			continue
		}
		m, err := manifest.ParseReuseTOML(rel, content)
		if err != nil {
			p.warnf("dropping %s: %v", rel, err)
			continue
		}
		if bad, expr := p.invalidExpression(m); bad {
			p.warnf("dropping %s: invalid license expression %q", rel, expr)
			continue
		}
		p.Manifests = append(p.Manifests, m)
	}

	p.loadLegacy()
	return p, nil
}

// invalidExpression reports the first annotation expression in m that
// does not conform to the grammar. One bad expression invalidates the
// whole manifest.
func (p *Project) invalidExpression(m *manifest.ReuseTOML) (bool, string) {
	for _, entry := range m.Entries {
		for _, expr := range entry.Expressions.Sorted() {
			if !p.Validator.Validate(expr).Parsed {
				return true, expr
			}
		}
	}
	return false, ""
}

func (p *Project) loadLegacy() {
	content, err := os.ReadFile(filepath.Join(p.Root, filepath.FromSlash(manifest.Dep5Path)))
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		p.warnf("dropping %s: %v", manifest.Dep5Path, err)
		return
	}
	d, err := manifest.ParseDep5(manifest.Dep5Path, content)
	if err != nil {
		p.warnf("dropping %s: %v", manifest.Dep5Path, err)
		return
	}
	p.Legacy = d
	if !p.suppressDeprecation {
		p.warnf("%s is deprecated, migrate to REUSE.toml (see the convert-dep5 command)", manifest.Dep5Path)
	}
}

func (p *Project) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// InfoOf gathers and resolves every evidence record applying to the
// root-relative path rel. The file's own content is read through its
// .license sidecar when one exists, never both. Read failures are
// returned to the caller as that file's read error.
func (p *Project) InfoOf(rel string) (FileScan, error) {
	var records []record.Evidence
	var unparsable []string

	source := rel
	kind := record.SourceFileHeader
	if sidecar := rel + ".license"; p.isFile(sidecar) {
		source = sidecar
		kind = record.SourceDotLicense
	}
	text, err := extract.ReadHeader(filepath.Join(p.Root, filepath.FromSlash(source)))
	if err != nil {
		return FileScan{}, err
	}
	ev, bad := p.extractor.Extract(text)
	ev.Kind = kind
	ev.SourcePath = source
	unparsable = append(unparsable, bad...)
	if !ev.Empty() {
		records = append(records, ev)
	}

	for _, m := range p.Manifests {
		if mev, ok := m.InfoOf(rel); ok {
			records = append(records, mev)
		}
	}
	if p.Legacy != nil {
		if lev, ok := p.Legacy.InfoOf(rel); ok {
			records = append(records, lev)
		}
	}

	return FileScan{Info: resolve.Resolve(rel, records), Unparsable: unparsable}, nil
}

func (p *Project) isFile(rel string) bool {
	info, err := os.Stat(filepath.Join(p.Root, filepath.FromSlash(rel)))
	return err == nil && info.Mode().IsRegular()
}
