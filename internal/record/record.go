// Package record defines the evidence model shared by the extraction,
// resolution, and reporting layers: string sets, evidence records, and
// the resolved per-file result.
package record

import "sort"

// SourceKind identifies the channel a piece of evidence came from.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	// SourceFileHeader is a tag found in the file's own content.
	SourceFileHeader
	// SourceDotLicense is a tag found in an adjacent .license sidecar.
	SourceDotLicense
	// SourceReuseTOML is an annotation entry from a REUSE.toml manifest.
	SourceReuseTOML
	// SourceDep5 is a stanza from the deprecated .reuse/dep5 manifest.
	SourceDep5
)

func (k SourceKind) String() string {
	switch k {
	case SourceFileHeader:
		return "file header"
	case SourceDotLicense:
		return ".license file"
	case SourceReuseTOML:
		return "REUSE.toml"
	case SourceDep5:
		return ".reuse/dep5"
	default:
		return "unknown"
	}
}

// Precedence is an annotation entry's merge strategy.
type Precedence string

const (
	// PrecedenceClosest keeps only the deepest manifest's contribution
	// when several manifests cover the same file. The default.
	PrecedenceClosest Precedence = "closest"
	// PrecedenceOverride makes the entry the entire result for covered
	// files, discarding all less specific evidence.
	PrecedenceOverride Precedence = "override"
	// PrecedenceAggregate unions the entry with every other applicable
	// record.
	PrecedenceAggregate Precedence = "aggregate"
)

// Valid reports whether p is one of the three defined strategies.
func (p Precedence) Valid() bool {
	switch p {
	case PrecedenceClosest, PrecedenceOverride, PrecedenceAggregate:
		return true
	}
	return false
}

// Set is a deduplicating set of strings with sorted iteration.
type Set map[string]struct{}

// NewSet builds a Set from items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

// Add inserts items into the set.
func (s Set) Add(items ...string) {
	for _, v := range items {
		s[v] = struct{}{}
	}
}

// AddSet inserts every member of o into the set.
func (s Set) AddSet(o Set) {
	for v := range o {
		s[v] = struct{}{}
	}
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.AddSet(s)
	return out
}

// Equal reports whether s and o have identical members.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for v := range s {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// Evidence is one source's contribution of copyright and licensing
// facts about a file. The three sets are always non-nil.
type Evidence struct {
	Kind         SourceKind
	SourcePath   string // file the evidence was read from; may differ from the subject
	Precedence   Precedence
	Depth        int // directory depth of the contributing manifest
	Copyrights   Set
	Expressions  Set
	Contributors Set
}

// NewEvidence returns an Evidence with empty, non-nil sets.
func NewEvidence(kind SourceKind, sourcePath string) Evidence {
	return Evidence{
		Kind:         kind,
		SourcePath:   sourcePath,
		Precedence:   PrecedenceClosest,
		Copyrights:   NewSet(),
		Expressions:  NewSet(),
		Contributors: NewSet(),
	}
}

// Empty reports whether the record carries no facts at all.
func (e Evidence) Empty() bool {
	return e.Copyrights.Empty() && e.Expressions.Empty() && e.Contributors.Empty()
}

// FileInfo is the resolved copyright and licensing answer for one file.
type FileInfo struct {
	Path         string
	Copyrights   Set
	Expressions  Set
	Contributors Set
}

// NewFileInfo returns a FileInfo with empty, non-nil sets.
func NewFileInfo(path string) FileInfo {
	return FileInfo{
		Path:         path,
		Copyrights:   NewSet(),
		Expressions:  NewSet(),
		Contributors: NewSet(),
	}
}

// HasCopyright reports whether any copyright line was resolved.
func (i FileInfo) HasCopyright() bool {
	return !i.Copyrights.Empty()
}

// HasLicensing reports whether any license expression was resolved.
func (i FileInfo) HasLicensing() bool {
	return !i.Expressions.Empty()
}
