package format

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reuselint/reuselint/internal/report"
)

func nonCompliantReport() *report.ProjectReport {
	return &report.ProjectReport{
		Root: "/projects/demo",
		Files: []report.FileReport{
			{Name: "docs/notes.md"},
			{Name: "docs/todo.md", Expressions: []string{"GPL-3.0"}, Licenses: []string{"GPL-3.0"}},
			{Name: "src/broken.h", Copyrights: []string{"2020 Jane Doe"}, Unparsable: []string{"MIT AND"}},
			{Name: "src/legacy.c", Copyrights: []string{"2019 Acme Corp"}, Expressions: []string{"fancy-license"}, Licenses: []string{"fancy-license"}},
			{Name: "src/main.c", Copyrights: []string{"2021 Jane Doe"}, Expressions: []string{"MIT"}, Licenses: []string{"MIT"}},
			{Name: "src/tool.py", Copyrights: []string{"2022 Jane Doe"}, Expressions: []string{"0BSD"}, Licenses: []string{"0BSD"}},
		},
		BadLicenses: map[string][]string{
			"fancy-license": {"LICENSES/fancy-license.txt", "src/legacy.c"},
		},
		DeprecatedLicenses:       []string{"GPL-3.0"},
		LicensesWithoutExtension: []string{"MIT"},
		MissingLicenses: map[string][]string{
			"0BSD": {"src/tool.py"},
		},
		UnusedLicenses: []string{"CC0-1.0"},
		UnparsableExpressions: map[string][]string{
			"MIT AND": {"src/broken.h"},
		},
		ReadErrors:   []string{"assets/blob.bin"},
		UsedLicenses: []string{"0BSD", "GPL-3.0", "MIT", "fancy-license"},
		Licenses: map[string]string{
			"MIT":           "LICENSES/MIT",
			"CC0-1.0":       "LICENSES/CC0-1.0.txt",
			"GPL-3.0":       "LICENSES/GPL-3.0.txt",
			"fancy-license": "LICENSES/fancy-license.txt",
		},
	}
}

func compliantReport() *report.ProjectReport {
	return &report.ProjectReport{
		Root: "/projects/demo",
		Files: []report.FileReport{
			{Name: "main.go", Copyrights: []string{"2024 Jane Doe"}, Expressions: []string{"MIT"}, Licenses: []string{"MIT"}},
		},
		BadLicenses:              map[string][]string{},
		DeprecatedLicenses:       []string{},
		LicensesWithoutExtension: []string{},
		MissingLicenses:          map[string][]string{},
		UnusedLicenses:           []string{},
		UnparsableExpressions:    map[string][]string{},
		ReadErrors:               []string{},
		UsedLicenses:             []string{"MIT"},
		Licenses:                 map[string]string{"MIT": "LICENSES/MIT.txt"},
	}
}

func TestPlainNonCompliant(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "plain_noncompliant", renderPlain(nonCompliantReport()))
}

func TestPlainCompliant(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "plain_compliant", renderPlain(compliantReport()))
}

func TestLinesNonCompliant(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "lines_noncompliant", renderLines(nonCompliantReport()))
}

func TestLinesCompliantIsEmpty(t *testing.T) {
	assert.Empty(t, renderLines(compliantReport()))
}

func TestLinesSubset(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "lines_subset", RenderLinesSubset(nonCompliantReport()))
}

func TestLinesSubsetCompliantIsEmpty(t *testing.T) {
	assert.Empty(t, RenderLinesSubset(compliantReport()))
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(JSON, nonCompliantReport())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, false, doc["compliant"])
	assert.Equal(t, "3.3", doc["reuse_spec_version"])

	rep, ok := doc["report"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rep["bad_licenses"], "fancy-license")

	sum, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(6), sum["total_files"])
	assert.Equal(t, float64(4), sum["files_with_copyright_info"])
}

func TestRenderYAML(t *testing.T) {
	out, err := Render(YAML, compliantReport())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, true, doc["compliant"])
	assert.Equal(t, "3.3", doc["reuse_spec_version"])
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"plain", "lines", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
