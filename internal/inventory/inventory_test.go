package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reuselint/reuselint/internal/catalog"
)

func writeLicenses(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, DefaultDir)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("license text\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScan(t *testing.T) {
	root := writeLicenses(t, "MIT.txt", "GPL-3.0-or-later.txt", "bad-license.txt")

	inv, err := Scan(root, DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if inv.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", inv.Len())
	}

	// 1. Known identifiers resolve from the stem and keep their flags.
	rec, ok := inv.Lookup("MIT")
	if !ok || !rec.KnownSPDX || rec.Deprecated || !rec.HasExtension {
		t.Errorf("unexpected MIT record: %+v", rec)
	}
	if rec.Path != "LICENSES/MIT.txt" {
		t.Errorf("path = %q", rec.Path)
	}
	// 2. A dotted identifier is not cut at its inner dots.
	if !inv.Has("GPL-3.0-or-later") {
		t.Error("GPL-3.0-or-later not found")
	}
	// 3. Unknown identifiers are recorded, flagged, and warned about.
	rec, ok = inv.Lookup("bad-license")
	if !ok || rec.KnownSPDX {
		t.Errorf("unexpected bad-license record: %+v", rec)
	}
	if len(inv.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", inv.Warnings)
	}
}

func TestScanDeprecated(t *testing.T) {
	root := writeLicenses(t, "GPL-3.0.txt")

	inv, err := Scan(root, DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec, _ := inv.Lookup("GPL-3.0")
	if !rec.KnownSPDX || !rec.Deprecated {
		t.Errorf("expected known deprecated record, got %+v", rec)
	}
}

func TestScanWithoutExtension(t *testing.T) {
	root := writeLicenses(t, "MIT")

	inv, err := Scan(root, DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := inv.Lookup("MIT")
	if !ok || !rec.KnownSPDX || rec.HasExtension {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(inv.Warnings) != 0 {
		t.Errorf("extensionless known id must not warn: %v", inv.Warnings)
	}
}

func TestScanLicenseRef(t *testing.T) {
	root := writeLicenses(t, "LicenseRef-Proprietary.txt")

	base := catalog.Default()
	inv, err := Scan(root, DefaultDir, base)
	if err != nil {
		t.Fatal(err)
	}

	// 1. The record itself stays outside the SPDX list.
	rec, ok := inv.Lookup("LicenseRef-Proprietary")
	if !ok || rec.KnownSPDX {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(inv.Warnings) != 0 {
		t.Errorf("LicenseRef must not warn: %v", inv.Warnings)
	}
	// 2. The working catalog gains the identifier; the base is untouched.
	if !inv.Catalog().HasLicense("LicenseRef-Proprietary") {
		t.Error("working catalog missing the LicenseRef entry")
	}
	if base.HasLicense("LicenseRef-Proprietary") {
		t.Error("base catalog was mutated")
	}
}

func TestScanDuplicateIdentifierFatal(t *testing.T) {
	root := writeLicenses(t, "MIT.txt", "MIT")

	_, err := Scan(root, DefaultDir, catalog.Default())
	if !errors.Is(err, ErrDuplicateLicense) {
		t.Fatalf("expected ErrDuplicateLicense, got %v", err)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	inv, err := Scan(t.TempDir(), DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if inv.Len() != 0 {
		t.Errorf("expected empty inventory, got %d records", inv.Len())
	}
}

func TestScanSkipsSidecarsAndSubdirectories(t *testing.T) {
	root := writeLicenses(t, "MIT.txt", "MIT.txt.license")
	if err := os.Mkdir(filepath.Join(root, DefaultDir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	inv, err := Scan(root, DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if inv.Len() != 1 {
		t.Errorf("expected only MIT, got %d records", inv.Len())
	}
}

func TestRecordsSorted(t *testing.T) {
	root := writeLicenses(t, "MIT.txt", "0BSD.txt", "Apache-2.0.txt")

	inv, err := Scan(root, DefaultDir, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	records := inv.Records()
	for i := 1; i < len(records); i++ {
		if records[i-1].Identifier >= records[i].Identifier {
			t.Fatalf("records not sorted: %q before %q", records[i-1].Identifier, records[i].Identifier)
		}
	}
}
