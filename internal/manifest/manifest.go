// Package manifest parses the two global licensing mechanisms: the
// REUSE.toml annotation manifest and the deprecated .reuse/dep5 file.
package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"

	"github.com/reuselint/reuselint/internal/copyright"
	"github.com/reuselint/reuselint/internal/record"
)

// ReuseTOMLVersion is the only manifest schema version this tool
// reads and writes.
const ReuseTOMLVersion = 1

// ParseError describes a manifest that could not be used. The source
// path lets callers log which manifest was dropped.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Entry is one annotation rule from a REUSE.toml manifest. Patterns are
// relative to the manifest's directory.
type Entry struct {
	Patterns    []string
	Precedence  record.Precedence
	Copyrights  record.Set
	Expressions record.Set
}

// Matches reports whether any of the entry's patterns covers rel. The
// dialect is doublestar's: "**" spans any number of directories, "*"
// stays within one path segment, "\" escapes.
func (e *Entry) Matches(rel string) bool {
	for _, p := range e.Patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// ReuseTOML is one parsed REUSE.toml manifest.
type ReuseTOML struct {
	Path    string // relative to the project root, e.g. "sub/REUSE.toml"
	Version int
	Entries []Entry
}

// Dir returns the manifest's directory relative to the root, "" for the
// root manifest.
func (m *ReuseTOML) Dir() string {
	d := path.Dir(m.Path)
	if d == "." {
		return ""
	}
	return d
}

// Depth returns the number of directories between the root and the
// manifest. Deeper manifests are more specific.
func (m *ReuseTOML) Depth() int {
	d := m.Dir()
	if d == "" {
		return 0
	}
	return strings.Count(d, "/") + 1
}

// InfoOf returns the manifest's contribution for the file at rel
// (relative to the project root). Within one manifest the last matching
// annotation entry wins.
func (m *ReuseTOML) InfoOf(rel string) (record.Evidence, bool) {
	sub, ok := m.covers(rel)
	if !ok {
		return record.Evidence{}, false
	}
	var found *Entry
	for i := range m.Entries {
		if m.Entries[i].Matches(sub) {
			found = &m.Entries[i]
		}
	}
	if found == nil {
		return record.Evidence{}, false
	}
	ev := record.NewEvidence(record.SourceReuseTOML, m.Path)
	ev.Precedence = found.Precedence
	ev.Depth = m.Depth()
	ev.Copyrights = found.Copyrights.Clone()
	ev.Expressions = found.Expressions.Clone()
	return ev, true
}

// covers rewrites rel into the manifest's own coordinate space. A
// manifest never covers files outside its directory.
func (m *ReuseTOML) covers(rel string) (string, bool) {
	dir := m.Dir()
	if dir == "" {
		return rel, true
	}
	sub, ok := strings.CutPrefix(rel, dir+"/")
	if !ok {
		return "", false
	}
	return sub, true
}

type tomlAnnotation struct {
	Path       any    `toml:"path"`
	Precedence string `toml:"precedence"`
	Copyright  any    `toml:"SPDX-FileCopyrightText"`
	License    any    `toml:"SPDX-License-Identifier"`
}

type tomlFile struct {
	Version     int              `toml:"version"`
	Annotations []tomlAnnotation `toml:"annotations"`
}

// ParseReuseTOML decodes one REUSE.toml. Copyright values are
// normalized to their prefix-less form; expressions are kept verbatim
// for later validation.
func ParseReuseTOML(relPath string, content []byte) (*ReuseTOML, error) {
	var f tomlFile
	if err := toml.Unmarshal(content, &f); err != nil {
		return nil, &ParseError{Source: relPath, Err: err}
	}
	if f.Version != ReuseTOMLVersion {
		return nil, &ParseError{Source: relPath, Err: fmt.Errorf("unsupported version %d, want %d", f.Version, ReuseTOMLVersion)}
	}

	m := &ReuseTOML{Path: relPath, Version: f.Version}
	for i, a := range f.Annotations {
		patterns, err := stringList(a.Path)
		if err != nil {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("annotations[%d].path: %w", i, err)}
		}
		if len(patterns) == 0 {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("annotations[%d] has no path", i)}
		}
		precedence := record.Precedence(a.Precedence)
		if a.Precedence == "" {
			precedence = record.PrecedenceClosest
		}
		if !precedence.Valid() {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("annotations[%d]: unknown precedence %q", i, a.Precedence)}
		}
		copyrights, err := stringList(a.Copyright)
		if err != nil {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("annotations[%d].SPDX-FileCopyrightText: %w", i, err)}
		}
		expressions, err := stringList(a.License)
		if err != nil {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("annotations[%d].SPDX-License-Identifier: %w", i, err)}
		}

		entry := Entry{
			Patterns:    patterns,
			Precedence:  precedence,
			Copyrights:  record.NewSet(),
			Expressions: record.NewSet(expressions...),
		}
		for _, line := range copyrights {
			entry.Copyrights.Add(copyright.Normalize(line))
		}
		m.Entries = append(m.Entries, entry)
	}
	return m, nil
}

// stringList coerces a TOML value that may be a string or an array of
// strings.
func stringList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return t, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", v)
	}
}
