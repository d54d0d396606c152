// Package convert rewrites the deprecated dep5 manifest as an
// equivalent REUSE.toml.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/reuselint/reuselint/internal/manifest"
	"github.com/reuselint/reuselint/internal/record"
	"github.com/reuselint/reuselint/internal/walker"
)

type tomlAnnotation struct {
	Path       any    `toml:"path"`
	Precedence string `toml:"precedence"`
	Copyright  any    `toml:"SPDX-FileCopyrightText,omitempty"`
	License    string `toml:"SPDX-License-Identifier,omitempty"`
	Comment    string `toml:"SPDX-FileComment,omitempty"`
}

type tomlDocument struct {
	Version          int              `toml:"version"`
	PackageName      string           `toml:"SPDX-PackageName,omitempty"`
	PackageSupplier  any              `toml:"SPDX-PackageSupplier,omitempty"`
	DownloadLocation string           `toml:"SPDX-PackageDownloadLocation,omitempty"`
	PackageComment   string           `toml:"SPDX-PackageComment,omitempty"`
	Annotations      []tomlAnnotation `toml:"annotations"`
}

// Dep5 converts root's legacy manifest in place: it writes an
// equivalent REUSE.toml at the root and deletes .reuse/dep5.
func Dep5(root string) error {
	src := filepath.Join(root, filepath.FromSlash(manifest.Dep5Path))
	content, err := os.ReadFile(src)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no %s file", manifest.Dep5Path)
	}
	if err != nil {
		return err
	}
	d, err := manifest.ParseDep5(manifest.Dep5Path, content)
	if err != nil {
		return err
	}
	out, err := Render(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, walker.ManifestName), out, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}

// Render serializes the REUSE.toml equivalent of a parsed dep5
// manifest. Every annotation gets aggregate precedence: dep5
// information never overrode file contents, and aggregate preserves
// that.
func Render(d *manifest.Dep5) ([]byte, error) {
	doc := tomlDocument{
		Version:          manifest.ReuseTOMLVersion,
		PackageName:      d.Header.UpstreamName,
		DownloadLocation: d.Header.Source,
		PackageComment:   d.Header.Disclaimer,
	}
	if len(d.Header.UpstreamContact) > 0 {
		doc.PackageSupplier = collapse(d.Header.UpstreamContact)
	}
	for _, s := range d.Stanzas {
		a := tomlAnnotation{
			Path:       collapse(expandAll(s.Patterns)),
			Precedence: string(record.PrecedenceAggregate),
			License:    s.Expression,
			Comment:    s.Comment,
		}
		if lines := s.Copyrights.Sorted(); len(lines) > 0 {
			a.Copyright = collapse(lines)
		}
		doc.Annotations = append(doc.Annotations, a)
	}
	return toml.Marshal(doc)
}

// collapse mirrors the usual REUSE.toml style of writing a single
// value as a scalar rather than a one-element array.
func collapse(items []string) any {
	if len(items) == 1 {
		return items[0]
	}
	return items
}

func expandAll(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = expandAsterisks(p)
	}
	return out
}

// expandAsterisks translates the glob dialect. A lone "*" crosses
// directory separators in dep5, which REUSE.toml spells "**"; longer
// runs pass through untouched.
func expandAsterisks(pattern string) string {
	var b strings.Builder
	run := 0
	flush := func() {
		if run == 1 {
			b.WriteString("**")
		} else if run > 1 {
			b.WriteString(strings.Repeat("*", run))
		}
		run = 0
	}
	for _, r := range pattern {
		if r == '*' {
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
