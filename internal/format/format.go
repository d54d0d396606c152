// Package format renders a project report for human or machine
// consumption. Four serializations are supported: plain (the sectioned
// text report), lines (one finding per line, grep-friendly), json and
// yaml.
package format

import (
	"fmt"
	"sort"

	"github.com/reuselint/reuselint/internal/report"
)

// Format identifies an output serialization.
type Format string

const (
	Plain Format = "plain"
	Lines Format = "lines"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Plain, Lines, JSON, YAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want plain, lines, json or yaml)", s)
}

// Render serializes rep in the requested format.
func Render(f Format, rep *report.ProjectReport) ([]byte, error) {
	switch f {
	case Plain:
		return renderPlain(rep), nil
	case Lines:
		return renderLines(rep), nil
	case JSON:
		return renderJSON(rep)
	case YAML:
		return renderYAML(rep)
	}
	return nil, fmt.Errorf("unknown output format %q", f)
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
