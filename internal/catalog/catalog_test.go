package catalog

import (
	"sort"
	"testing"
)

func TestDefaultLookups(t *testing.T) {
	c := Default()

	// 1. A current identifier resolves.
	e, ok := c.License("MIT")
	if !ok {
		t.Fatal("MIT not found in bundled catalog")
	}
	if e.Name != "MIT License" {
		t.Errorf("MIT name = %q, want %q", e.Name, "MIT License")
	}
	if e.Deprecated {
		t.Error("MIT flagged deprecated")
	}

	// 2. A deprecated identifier resolves but carries the flag. It must
	// not alias to its "-only" successor.
	e, ok = c.License("GPL-3.0")
	if !ok {
		t.Fatal("GPL-3.0 not found in bundled catalog")
	}
	if !e.Deprecated {
		t.Error("GPL-3.0 not flagged deprecated")
	}
	e, ok = c.License("GPL-3.0-only")
	if !ok {
		t.Fatal("GPL-3.0-only not found in bundled catalog")
	}
	if e.Deprecated {
		t.Error("GPL-3.0-only flagged deprecated")
	}

	// 3. Unknown identifiers miss.
	if _, ok := c.License("Not-A-License"); ok {
		t.Error("Not-A-License resolved unexpectedly")
	}

	// 4. Exceptions live in a separate namespace.
	if _, ok := c.Exception("Classpath-exception-2.0"); !ok {
		t.Error("Classpath-exception-2.0 not found")
	}
	if _, ok := c.License("Classpath-exception-2.0"); ok {
		t.Error("exception identifier resolved as a license")
	}
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	base := New([]Entry{{ID: "MIT", Name: "MIT License"}}, nil)
	ext := base.Extend(Entry{ID: "LicenseRef-Custom", Name: "LicenseRef-Custom"})

	if !ext.HasLicense("LicenseRef-Custom") {
		t.Error("extended catalog missing added entry")
	}
	if base.HasLicense("LicenseRef-Custom") {
		t.Error("Extend mutated the receiver")
	}
	if !ext.HasLicense("MIT") {
		t.Error("extended catalog lost base entry")
	}
}

func TestLicensesSorted(t *testing.T) {
	c := Default()
	entries := c.Licenses()
	if len(entries) == 0 {
		t.Fatal("bundled catalog is empty")
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	if !sort.StringsAreSorted(ids) {
		t.Error("Licenses() not sorted by identifier")
	}
}

func TestIsLicenseRef(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"LicenseRef-MyLicense", true},
		{"LicenseRef-my.license-1.0", true},
		{"LicenseRef-", false},
		{"LicenseRef-with space", false},
		{"MIT", false},
		{"licenseRef-lowercase", false},
	}
	for _, tc := range cases {
		if got := IsLicenseRef(tc.id); got != tc.want {
			t.Errorf("IsLicenseRef(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestReference(t *testing.T) {
	e := Entry{ID: "Apache-2.0", Name: "Apache License 2.0"}
	want := "https://spdx.org/licenses/Apache-2.0.html"
	if got := e.Reference(); got != want {
		t.Errorf("Reference() = %q, want %q", got, want)
	}
}
