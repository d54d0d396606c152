package format

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/reuselint/reuselint/internal/report"
	"github.com/reuselint/reuselint/pkg/version"
)

// document is the machine-readable envelope around a project report.
type document struct {
	Version     string                `json:"reuselint_version" yaml:"reuselint_version"`
	SpecVersion string                `json:"reuse_spec_version" yaml:"reuse_spec_version"`
	Compliant   bool                  `json:"compliant" yaml:"compliant"`
	Summary     summary               `json:"summary" yaml:"summary"`
	Report      *report.ProjectReport `json:"report" yaml:"report"`
}

type summary struct {
	TotalFiles         int `json:"total_files" yaml:"total_files"`
	FilesWithCopyright int `json:"files_with_copyright_info" yaml:"files_with_copyright_info"`
	FilesWithLicensing int `json:"files_with_licensing_info" yaml:"files_with_licensing_info"`
}

func newDocument(rep *report.ProjectReport) document {
	return document{
		Version:     version.Current,
		SpecVersion: version.SpecVersion,
		Compliant:   rep.Compliant(),
		Summary: summary{
			TotalFiles:         rep.TotalFiles(),
			FilesWithCopyright: rep.CountWithCopyright(),
			FilesWithLicensing: rep.CountWithLicensing(),
		},
		Report: rep,
	}
}

func renderJSON(rep *report.ProjectReport) ([]byte, error) {
	out, err := json.MarshalIndent(newDocument(rep), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func renderYAML(rep *report.ProjectReport) ([]byte, error) {
	return yaml.Marshal(newDocument(rep))
}
