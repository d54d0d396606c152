// Command gen regenerates ../data.go from the SPDX license-list-data
// repository. Run it through go generate in the catalog package when a
// new License List version is published.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"
)

const (
	defaultLicensesURL   = "https://raw.githubusercontent.com/spdx/license-list-data/main/json/licenses.json"
	defaultExceptionsURL = "https://raw.githubusercontent.com/spdx/license-list-data/main/json/exceptions.json"
)

type entry struct {
	ID         string
	Name       string
	Deprecated bool
}

type licensesFile struct {
	ListVersion string `json:"licenseListVersion"`
	Licenses    []struct {
		ID         string `json:"licenseId"`
		Name       string `json:"name"`
		Deprecated bool   `json:"isDeprecatedLicenseId"`
	} `json:"licenses"`
}

type exceptionsFile struct {
	ListVersion string `json:"licenseListVersion"`
	Exceptions  []struct {
		ID         string `json:"licenseExceptionId"`
		Name       string `json:"name"`
		Deprecated bool   `json:"isDeprecatedLicenseId"`
	} `json:"exceptions"`
}

var fileTemplate = template.Must(template.New("data").Parse(`// Code generated by gen. DO NOT EDIT.
// Source: https://github.com/spdx/license-list-data json/licenses.json, json/exceptions.json

package catalog

const listVersion = {{printf "%q" .Version}}

var licenseData = []Entry{
{{- range .Licenses}}
	{ID: {{printf "%q" .ID}}, Name: {{printf "%q" .Name}}{{if .Deprecated}}, Deprecated: true{{end}}},
{{- end}}
}

var exceptionData = []Entry{
{{- range .Exceptions}}
	{ID: {{printf "%q" .ID}}, Name: {{printf "%q" .Name}}{{if .Deprecated}}, Deprecated: true{{end}}},
{{- end}}
}
`))

func fetchJSON(url string, v any) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

func main() {
	licensesURL := flag.String("licenses", defaultLicensesURL, "URL of licenses.json")
	exceptionsURL := flag.String("exceptions", defaultExceptionsURL, "URL of exceptions.json")
	out := flag.String("out", "data.go", "output file")
	flag.Parse()

	var lf licensesFile
	if err := fetchJSON(*licensesURL, &lf); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
	var ef exceptionsFile
	if err := fetchJSON(*exceptionsURL, &ef); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
	if lf.ListVersion != ef.ListVersion {
		fmt.Fprintf(os.Stderr, "[WARN] list version mismatch: licenses %s, exceptions %s\n", lf.ListVersion, ef.ListVersion)
	}

	data := struct {
		Version    string
		Licenses   []entry
		Exceptions []entry
	}{Version: lf.ListVersion}
	for _, l := range lf.Licenses {
		data.Licenses = append(data.Licenses, entry{ID: l.ID, Name: l.Name, Deprecated: l.Deprecated})
	}
	for _, e := range ef.Exceptions {
		data.Exceptions = append(data.Exceptions, entry{ID: e.ID, Name: e.Name, Deprecated: e.Deprecated})
	}
	// The upstream list orders identifiers case-insensitively; keep that
	// order so regeneration produces minimal diffs.
	byID := func(s []entry) func(i, j int) bool {
		return func(i, j int) bool {
			li, lj := strings.ToLower(s[i].ID), strings.ToLower(s[j].ID)
			if li != lj {
				return li < lj
			}
			return s[i].ID < s[j].ID
		}
	}
	sort.Slice(data.Licenses, byID(data.Licenses))
	sort.Slice(data.Exceptions, byID(data.Exceptions))

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] rendering template: %v\n", err)
		os.Exit(1)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] formatting output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, formatted, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("[INFO] wrote %s (%d licenses, %d exceptions, list version %s)\n",
		*out, len(data.Licenses), len(data.Exceptions), lf.ListVersion)
}
