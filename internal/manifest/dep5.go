package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/reuselint/reuselint/internal/copyright"
	"github.com/reuselint/reuselint/internal/record"
)

// Dep5Path is the fixed location of the deprecated global manifest,
// relative to the project root.
const Dep5Path = ".reuse/dep5"

// Header carries the package-level fields of the manifest's first
// paragraph. The resolver ignores them; the REUSE.toml converter maps
// them onto SPDX-Package keys.
type Header struct {
	UpstreamName    string
	UpstreamContact []string
	Source          string
	Disclaimer      string
}

// Stanza is one Files paragraph of a dep5 manifest.
type Stanza struct {
	Patterns   []string
	Copyrights record.Set
	Expression string
	Comment    string

	regexps []*regexp.Regexp
}

// Matches reports whether the stanza covers rel. The dialect is the
// Debian copyright-format one: "*" matches anything including "/",
// "?" matches a single character.
func (s *Stanza) Matches(rel string) bool {
	for _, re := range s.regexps {
		if re.MatchString(rel) {
			return true
		}
	}
	return false
}

// Dep5 is the parsed deprecated global manifest.
type Dep5 struct {
	Path    string
	Header  Header
	Stanzas []Stanza
}

// InfoOf returns the manifest's contribution for the file at rel. The
// last matching stanza wins, mirroring how the Debian format layers
// general stanzas before specific ones.
func (d *Dep5) InfoOf(rel string) (record.Evidence, bool) {
	var found *Stanza
	for i := range d.Stanzas {
		if d.Stanzas[i].Matches(rel) {
			found = &d.Stanzas[i]
		}
	}
	if found == nil {
		return record.Evidence{}, false
	}
	ev := record.NewEvidence(record.SourceDep5, d.Path)
	ev.Precedence = record.PrecedenceAggregate
	ev.Copyrights = found.Copyrights.Clone()
	if found.Expression != "" {
		ev.Expressions.Add(found.Expression)
	}
	return ev, true
}

// ParseDep5 decodes a Debian-control style dep5 manifest: paragraphs
// separated by blank lines, "Field: value" lines, continuation lines
// indented by a space or tab. Only Files, Copyright and License matter;
// the header paragraph and standalone License paragraphs are skipped.
func ParseDep5(relPath string, content []byte) (*Dep5, error) {
	d := &Dep5{Path: relPath}

	type paragraph struct {
		fields map[string][]string
		order  int
	}
	var (
		paragraphs []paragraph
		current    *paragraph
		lastField  string
	)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case strings.TrimSpace(line) == "":
			current = nil
			lastField = ""
		case line[0] == ' ' || line[0] == '\t':
			if current == nil || lastField == "" {
				return nil, &ParseError{Source: relPath, Err: fmt.Errorf("line %d: continuation without a field", lineNo)}
			}
			value := strings.TrimSpace(line)
			if value == "." {
				value = ""
			}
			current.fields[lastField] = append(current.fields[lastField], value)
		default:
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, &ParseError{Source: relPath, Err: fmt.Errorf("line %d: expected \"Field: value\"", lineNo)}
			}
			if current == nil {
				paragraphs = append(paragraphs, paragraph{fields: make(map[string][]string)})
				current = &paragraphs[len(paragraphs)-1]
			}
			lastField = name
			current.fields[name] = append(current.fields[name], strings.TrimSpace(value))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Source: relPath, Err: err}
	}

	for i, p := range paragraphs {
		files, ok := p.fields["Files"]
		if !ok {
			if i == 0 {
				d.Header = headerFrom(p.fields)
			}
			continue
		}
		stanza := Stanza{Copyrights: record.NewSet()}
		for _, line := range files {
			stanza.Patterns = append(stanza.Patterns, strings.Fields(line)...)
		}
		if len(stanza.Patterns) == 0 {
			return nil, &ParseError{Source: relPath, Err: fmt.Errorf("a Files paragraph lists no patterns")}
		}
		for _, pattern := range stanza.Patterns {
			stanza.regexps = append(stanza.regexps, dep5PatternRegexp(pattern))
		}
		for _, line := range p.fields["Copyright"] {
			if line == "" {
				continue
			}
			stanza.Copyrights.Add(copyright.Normalize(line))
		}
		// Only the first License line is the expression; any further
		// lines are verbatim license text.
		if lics := p.fields["License"]; len(lics) > 0 {
			stanza.Expression = strings.TrimSpace(lics[0])
		}
		stanza.Comment = joinLines(p.fields["Comment"])
		d.Stanzas = append(d.Stanzas, stanza)
	}
	return d, nil
}

func headerFrom(fields map[string][]string) Header {
	var h Header
	if v := fields["Upstream-Name"]; len(v) > 0 {
		h.UpstreamName = v[0]
	}
	for _, line := range fields["Upstream-Contact"] {
		if line != "" {
			h.UpstreamContact = append(h.UpstreamContact, line)
		}
	}
	if v := fields["Source"]; len(v) > 0 {
		h.Source = v[0]
	}
	h.Disclaimer = joinLines(fields["Disclaimer"])
	return h
}

// joinLines reassembles a multi-line field body. The field line itself
// is often empty, with the body entirely in continuation lines.
func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// dep5PatternRegexp translates a Debian copyright-format glob into an
// anchored regular expression.
func dep5PatternRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^`)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}
