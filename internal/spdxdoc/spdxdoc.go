// Package spdxdoc serializes a scan into an SPDX 2.1 tag-value bill
// of materials.
package spdxdoc

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reuselint/reuselint/internal/catalog"
	"github.com/reuselint/reuselint/internal/report"
	"github.com/reuselint/reuselint/pkg/version"
)

// Options controls document metadata.
type Options struct {
	// CreatorPerson and CreatorOrganization fill the Creator fields.
	// Empty values render as "Anonymous ()".
	CreatorPerson       string
	CreatorOrganization string

	now   func() time.Time
	newID func() string
}

func (o Options) clock() time.Time {
	if o.now != nil {
		return o.now()
	}
	return time.Now()
}

func (o Options) namespace() string {
	if o.newID != nil {
		return o.newID()
	}
	return uuid.New().String()
}

// Build renders the bill of materials for a scanned project. File
// checksums are computed from the current file contents, so Build
// fails if a reported file has disappeared since the scan.
func Build(rep *report.ProjectReport, opts Options) ([]byte, error) {
	var b strings.Builder

	b.WriteString("SPDXVersion: SPDX-2.1\n")
	b.WriteString("DataLicense: CC0-1.0\n")
	b.WriteString("SPDXID: SPDXRef-DOCUMENT\n")
	fmt.Fprintf(&b, "DocumentName: %s\n", filepath.Base(rep.Root))
	fmt.Fprintf(&b, "DocumentNamespace: http://spdx.org/spdxdocs/spdx-v2.1-%s\n", opts.namespace())
	fmt.Fprintf(&b, "Creator: Person: %s\n", creator(opts.CreatorPerson))
	fmt.Fprintf(&b, "Creator: Organization: %s\n", creator(opts.CreatorOrganization))
	fmt.Fprintf(&b, "Creator: Tool: %s-%s\n", version.AppName, version.Current)
	fmt.Fprintf(&b, "Created: %s\n", opts.clock().UTC().Format("2006-01-02T15:04:05Z"))
	b.WriteString("CreatorComment: <text>This document was created automatically using available reuse information consistent with REUSE.</text>\n")

	files := make([]spdxFile, 0, len(rep.Files))
	for _, fr := range rep.Files {
		sf, err := newSPDXFile(rep.Root, fr)
		if err != nil {
			return nil, err
		}
		files = append(files, sf)
	}

	for _, sf := range files {
		fmt.Fprintf(&b, "Relationship: SPDXRef-DOCUMENT describes %s\n", sf.id)
	}

	for _, sf := range files {
		fmt.Fprintf(&b, "\nFileName: %s\n", sf.name)
		fmt.Fprintf(&b, "SPDXID: %s\n", sf.id)
		fmt.Fprintf(&b, "FileChecksum: SHA1: %s\n", sf.sha1)
		b.WriteString("LicenseConcluded: NOASSERTION\n")
		for _, lic := range sf.report.Licenses {
			fmt.Fprintf(&b, "LicenseInfoInFile: %s\n", lic)
		}
		if len(sf.report.Copyrights) > 0 {
			fmt.Fprintf(&b, "FileCopyrightText: <text>%s</text>\n", strings.Join(sf.report.Copyrights, "\n"))
		} else {
			b.WriteString("FileCopyrightText: NONE\n")
		}
	}

	// Extracted texts for local license references.
	ids := make([]string, 0, len(rep.Licenses))
	for id := range rep.Licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !catalog.IsLicenseRef(id) {
			continue
		}
		text, err := os.ReadFile(filepath.Join(rep.Root, filepath.FromSlash(rep.Licenses[id])))
		if err != nil {
			return nil, fmt.Errorf("reading license text of %s: %w", id, err)
		}
		fmt.Fprintf(&b, "\nLicenseID: %s\n", id)
		b.WriteString("LicenseName: NOASSERTION\n")
		fmt.Fprintf(&b, "ExtractedText: <text>%s</text>\n", text)
	}

	return []byte(b.String()), nil
}

type spdxFile struct {
	report report.FileReport
	name   string
	id     string
	sha1   string
}

func newSPDXFile(root string, fr report.FileReport) (spdxFile, error) {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(fr.Name)))
	if err != nil {
		return spdxFile{}, fmt.Errorf("checksumming %s: %w", fr.Name, err)
	}
	sum := sha1.Sum(content)
	digest := hex.EncodeToString(sum[:])
	name := "./" + fr.Name
	id := md5.Sum([]byte(name + digest))
	return spdxFile{
		report: fr,
		name:   name,
		id:     "SPDXRef-" + hex.EncodeToString(id[:]),
		sha1:   digest,
	}, nil
}

func creator(name string) string {
	switch {
	case name == "":
		return "Anonymous ()"
	case strings.Contains(name, "("):
		return name
	default:
		return name + " ()"
	}
}
