// Package copyright parses copyright notices into years and holder
// statement, normalizes away the recognized prefixes, and merges
// notices that name the same holder into a single year range.
package copyright

import (
	"regexp"
	"sort"
	"strings"
)

var (
	spdxPrefix = regexp.MustCompile(`^SPDX-(?:File|Snippet)CopyrightText:[ \t]*`)
	// Decorations that may follow the SPDX tag, or stand alone as the
	// whole prefix: the word Copyright with optional (C)/© and the bare
	// © glyph.
	decorPrefix = regexp.MustCompile(`^(?:Copyright(?:[ \t]+(?:\([Cc]\)|©))?|\([Cc]\)|©)[ \t]*`)
	barePrefix  = regexp.MustCompile(`^(?:Copyright(?:[ \t]+(?:\([Cc]\)|©))?|©)[ \t]*`)
	yearToken   = regexp.MustCompile(`^(\d{4})(?:[ \t]*-[ \t]*(\d{4}))?`)
)

// Span is a single year or an inclusive year range.
type Span struct {
	From string
	To   string // empty for a single year
}

// String renders the span with no spaces around the hyphen.
func (s Span) String() string {
	if s.To == "" {
		return s.From
	}
	return s.From + "-" + s.To
}

// Notice is one parsed copyright notice.
type Notice struct {
	Years     []Span
	Statement string
}

// Value renders the notice in its normalized, prefix-less form:
// "2016-2018 Jane Doe".
func (n Notice) Value() string {
	if len(n.Years) == 0 {
		return n.Statement
	}
	parts := make([]string, len(n.Years))
	for i, s := range n.Years {
		parts[i] = s.String()
	}
	years := strings.Join(parts, ", ")
	if n.Statement == "" {
		return years
	}
	return years + " " + n.Statement
}

// Parse interprets line as a copyright notice. It accepts the SPDX tag
// forms, the bare "Copyright"/© forms, and prefix-less "year holder"
// values as found in manifest entries. Parse never fails; in the worst
// case the whole line becomes the statement.
func Parse(line string) Notice {
	rest := strings.TrimSpace(line)
	if m := spdxPrefix.FindString(rest); m != "" {
		rest = rest[len(m):]
		if d := decorPrefix.FindString(rest); d != "" {
			rest = rest[len(d):]
		}
	} else if m := barePrefix.FindString(rest); m != "" {
		rest = rest[len(m):]
	}
	years, rest := consumeYears(rest)
	return Notice{Years: years, Statement: strings.TrimSpace(rest)}
}

// Normalize strips any recognized prefix and renders line in the bare
// "years statement" form. Surrounding whitespace in year ranges is
// dropped; the holder string is preserved verbatim.
func Normalize(line string) string {
	return Parse(line).Value()
}

// consumeYears reads leading year tokens: a year, a year range, or a
// comma-separated list of those. A token glued to the statement or
// malformed terminates consumption without touching the remainder.
func consumeYears(s string) ([]Span, string) {
	var spans []Span
	rest := s
	for {
		m := yearToken.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		after := rest[len(m[0]):]
		if after != "" && after[0] != ',' && after[0] != ' ' && after[0] != '\t' {
			break
		}
		span := Span{From: m[1], To: m[2]}
		if span.To == span.From {
			span.To = ""
		}
		spans = append(spans, span)
		rest = after
		if strings.HasPrefix(rest, ",") {
			rest = strings.TrimLeft(rest[1:], " \t")
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		break
	}
	return spans, rest
}

// Merge collapses notices that share a statement into one notice whose
// single span runs from the earliest to the latest year seen. Output is
// sorted and rendered per Value.
func Merge(lines []string) []string {
	type group struct {
		min, max string
	}
	groups := make(map[string]*group)
	for _, line := range lines {
		n := Parse(line)
		g, ok := groups[n.Statement]
		if !ok {
			g = &group{}
			groups[n.Statement] = g
		}
		for _, span := range n.Years {
			lo, hi := span.From, span.To
			if hi == "" {
				hi = lo
			}
			if g.min == "" || lo < g.min {
				g.min = lo
			}
			if hi > g.max {
				g.max = hi
			}
		}
	}

	out := make([]string, 0, len(groups))
	for statement, g := range groups {
		n := Notice{Statement: statement}
		if g.min != "" {
			span := Span{From: g.min}
			if g.max != g.min {
				span.To = g.max
			}
			n.Years = []Span{span}
		}
		out = append(out, n.Value())
	}
	sort.Strings(out)
	return out
}
