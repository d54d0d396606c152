// Package inventory catalogues the license texts declared in the
// project's license-storage directory.
//
// Every regular file one level deep in the directory is a candidate
// record. The identifier is the file name minus its final extension;
// extensionless files named after a recognized identifier are accepted
// but flagged, and LicenseRef- files register their identifier into the
// working catalog so expressions referencing them validate.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/reuselint/reuselint/internal/catalog"
)

// DefaultDir is the conventional license-storage directory name.
const DefaultDir = "LICENSES"

// ErrDuplicateLicense reports two files resolving to one identifier.
// This aborts the run: the project cannot state which text governs.
var ErrDuplicateLicense = errors.New("duplicate license identifier")

// Record is one declared license text.
type Record struct {
	Identifier   string
	Path         string // root-relative, forward slashes
	KnownSPDX    bool
	Deprecated   bool
	HasExtension bool
}

// Inventory holds the declared licenses of one project.
type Inventory struct {
	records map[string]Record
	cat     *catalog.Catalog

	// Warnings collects identifier-resolution complaints for the caller
	// to log. Sorted.
	Warnings []string
}

// Scan reads the license-storage directory dirName under root, one
// level deep. A missing directory yields an empty inventory; any other
// enumeration failure, or a duplicate identifier, is returned as an
// error and aborts the run.
func Scan(root, dirName string, base *catalog.Catalog) (*Inventory, error) {
	inv := &Inventory{records: make(map[string]Record), cat: base}

	entries, err := os.ReadDir(filepath.Join(root, dirName))
	if errors.Is(err, fs.ErrNotExist) {
		return inv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dirName, err)
	}

	var refs []catalog.Entry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasSuffix(name, ".license") {
			continue
		}
		rel := path.Join(dirName, name)
		rec := resolve(name, rel, base)
		if other, ok := inv.records[rec.Identifier]; ok {
			return nil, fmt.Errorf("%w: %s is the identifier of both %s and %s",
				ErrDuplicateLicense, rec.Identifier, other.Path, rec.Path)
		}
		if !rec.KnownSPDX && !catalog.IsLicenseRef(rec.Identifier) {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf(
				"could not resolve SPDX identifier of %s, resolving to %s", rel, rec.Identifier))
		}
		if catalog.IsLicenseRef(rec.Identifier) {
			refs = append(refs, catalog.Entry{ID: rec.Identifier, Name: rec.Identifier})
		}
		inv.records[rec.Identifier] = rec
	}

	if len(refs) > 0 {
		inv.cat = base.Extend(refs...)
	}
	sort.Strings(inv.Warnings)
	return inv, nil
}

// resolve determines the identifier and flags for one candidate file.
func resolve(name, rel string, base *catalog.Catalog) Record {
	ext := path.Ext(name)
	if ext == name {
		// Dotfile; no extension, no stem.
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)

	rec := Record{Identifier: stem, Path: rel, HasExtension: ext != ""}
	if lic, ok := base.License(stem); ok {
		rec.KnownSPDX = true
		rec.Deprecated = lic.Deprecated
	} else if exc, ok := base.Exception(stem); ok {
		rec.KnownSPDX = true
		rec.Deprecated = exc.Deprecated
	}
	return rec
}

// Lookup returns the record for an identifier.
func (inv *Inventory) Lookup(identifier string) (Record, bool) {
	rec, ok := inv.records[identifier]
	return rec, ok
}

// Has reports whether a license text is declared for the identifier.
func (inv *Inventory) Has(identifier string) bool {
	_, ok := inv.records[identifier]
	return ok
}

// Records returns all records sorted by identifier.
func (inv *Inventory) Records() []Record {
	out := make([]Record, 0, len(inv.records))
	for _, rec := range inv.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// Len returns the number of declared licenses.
func (inv *Inventory) Len() int {
	return len(inv.records)
}

// Catalog returns the working catalog: the base identifier table
// extended with every LicenseRef- identifier found in the directory.
func (inv *Inventory) Catalog() *catalog.Catalog {
	return inv.cat
}
