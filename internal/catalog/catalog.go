// Package catalog resolves SPDX license and exception identifiers
// against a bundled snapshot of the SPDX License List.
package catalog

import (
	"regexp"
	"sort"
)

//go:generate go run ./gen

// Entry is a single identifier from the SPDX License List.
type Entry struct {
	ID         string
	Name       string
	Deprecated bool
}

// Reference returns the canonical URL for the identifier on spdx.org.
func (e Entry) Reference() string {
	return "https://spdx.org/licenses/" + e.ID + ".html"
}

// Catalog holds the known license and exception identifiers. The zero
// value knows nothing; construct one with Default or New.
type Catalog struct {
	licenses   map[string]Entry
	exceptions map[string]Entry
}

// Default returns a Catalog backed by the bundled SPDX License List
// snapshot.
func Default() *Catalog {
	return New(licenseData, exceptionData)
}

// New builds a Catalog from explicit entries. Callers that need a
// trimmed or extended identifier set, tests included, construct their
// own instead of relying on the bundled data.
func New(licenses, exceptions []Entry) *Catalog {
	c := &Catalog{
		licenses:   make(map[string]Entry, len(licenses)),
		exceptions: make(map[string]Entry, len(exceptions)),
	}
	for _, e := range licenses {
		c.licenses[e.ID] = e
	}
	for _, e := range exceptions {
		c.exceptions[e.ID] = e
	}
	return c
}

// Extend returns a copy of c with extra license entries added. The
// receiver is not modified.
func (c *Catalog) Extend(extra ...Entry) *Catalog {
	out := &Catalog{
		licenses:   make(map[string]Entry, len(c.licenses)+len(extra)),
		exceptions: make(map[string]Entry, len(c.exceptions)),
	}
	for id, e := range c.licenses {
		out.licenses[id] = e
	}
	for id, e := range c.exceptions {
		out.exceptions[id] = e
	}
	for _, e := range extra {
		out.licenses[e.ID] = e
	}
	return out
}

// License looks up a license identifier. Matching is exact and
// case-sensitive: "GPL-3.0" and "GPL-3.0-only" are distinct entries,
// and a deprecated identifier never aliases to its successor.
func (c *Catalog) License(id string) (Entry, bool) {
	e, ok := c.licenses[id]
	return e, ok
}

// Exception looks up a license exception identifier.
func (c *Catalog) Exception(id string) (Entry, bool) {
	e, ok := c.exceptions[id]
	return e, ok
}

// HasLicense reports whether id is a known license identifier.
func (c *Catalog) HasLicense(id string) bool {
	_, ok := c.licenses[id]
	return ok
}

// Licenses returns all license entries sorted by identifier.
func (c *Catalog) Licenses() []Entry {
	out := make([]Entry, 0, len(c.licenses))
	for _, e := range c.licenses {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListVersion returns the SPDX License List version the bundled data
// was generated from.
func ListVersion() string {
	return listVersion
}

var licenseRefPattern = regexp.MustCompile(`^LicenseRef-[a-zA-Z0-9.-]+$`)

// IsLicenseRef reports whether id is a custom identifier in the
// LicenseRef- namespace. Such identifiers are valid without appearing
// in the License List.
func IsLicenseRef(id string) bool {
	return licenseRefPattern.MatchString(id)
}
