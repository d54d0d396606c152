package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reuselint/reuselint/internal/catalog"
)

func testValidator() *Validator {
	cat := catalog.New(
		[]catalog.Entry{
			{ID: "MIT", Name: "MIT License"},
			{ID: "Apache-2.0", Name: "Apache License 2.0"},
			{ID: "GPL-2.0-or-later", Name: "GNU General Public License v2.0 or later"},
			{ID: "GPL-3.0-only", Name: "GNU General Public License v3.0 only"},
			{ID: "GPL-3.0", Name: "GNU General Public License v3.0 only", Deprecated: true},
			{ID: "GPL-2.0+", Name: "GNU General Public License v2.0 or later", Deprecated: true},
		},
		[]catalog.Entry{
			{ID: "Classpath-exception-2.0", Name: "Classpath exception 2.0"},
		},
	)
	return NewValidator(cat)
}

func TestValidateSimple(t *testing.T) {
	v := testValidator()

	res := v.Validate("MIT")
	assert.True(t, res.Parsed)
	assert.False(t, res.IsCompound)
	assert.Equal(t, []string{"MIT"}, res.Atoms)
	assert.Empty(t, res.Unknown)
	assert.Empty(t, res.Deprecated)
}

func TestValidateCompound(t *testing.T) {
	v := testValidator()

	cases := []struct {
		expr  string
		atoms []string
	}{
		{"MIT AND Apache-2.0", []string{"Apache-2.0", "MIT"}},
		{"MIT  AND   Apache-2.0", []string{"Apache-2.0", "MIT"}},
		{"(MIT AND Apache-2.0)", []string{"Apache-2.0", "MIT"}},
		{"(MIT) AND (Apache-2.0)", []string{"Apache-2.0", "MIT"}},
		{"MIT OR (Apache-2.0 AND GPL-3.0-only)", []string{"Apache-2.0", "GPL-3.0-only", "MIT"}},
		{"GPL-2.0-or-later WITH Classpath-exception-2.0", []string{"Classpath-exception-2.0", "GPL-2.0-or-later"}},
	}
	for _, tc := range cases {
		res := v.Validate(tc.expr)
		assert.True(t, res.Parsed, "expression %q should parse", tc.expr)
		assert.True(t, res.IsCompound, "expression %q should be compound", tc.expr)
		assert.Equal(t, tc.atoms, res.Atoms, "atoms of %q", tc.expr)
		assert.Empty(t, res.Unknown, "unknown atoms of %q", tc.expr)
	}
}

func TestValidateMalformed(t *testing.T) {
	v := testValidator()

	malformed := []string{
		"",
		"MIT AND",
		"AND MIT",
		"MIT Apache-2.0",
		"MIT and Apache-2.0",
		"(MIT",
		"MIT)",
		"MIT WITH",
		"(MIT OR Apache-2.0) WITH Classpath-exception-2.0",
		"MIT OR OR Apache-2.0",
		"MIT; Apache-2.0",
	}
	for _, expr := range malformed {
		res := v.Validate(expr)
		assert.False(t, res.Parsed, "expression %q should not parse", expr)
		assert.NotEmpty(t, res.Err, "expression %q should carry a reason", expr)
	}
}

func TestValidateExactIdentifierMatching(t *testing.T) {
	v := testValidator()

	// GPL-3.0 is its own (deprecated) identifier. It must not alias to
	// GPL-3.0-only.
	res := v.Validate("GPL-3.0")
	assert.True(t, res.Parsed)
	assert.Equal(t, []string{"GPL-3.0"}, res.Atoms)
	assert.Equal(t, []string{"GPL-3.0"}, res.Deprecated)
	assert.Empty(t, res.Unknown)
}

func TestValidatePlusSuffix(t *testing.T) {
	v := testValidator()

	// GPL-2.0+ is a catalog identifier of its own.
	res := v.Validate("GPL-2.0+")
	assert.True(t, res.Parsed)
	assert.Equal(t, []string{"GPL-2.0+"}, res.Atoms)
	assert.Equal(t, []string{"GPL-2.0+"}, res.Deprecated)

	// An uncatalogued or-later form stays one atom, reported unknown.
	res = v.Validate("Apache-2.0+")
	assert.True(t, res.Parsed)
	assert.Equal(t, []string{"Apache-2.0+"}, res.Atoms)
	assert.Equal(t, []string{"Apache-2.0+"}, res.Unknown)

	// A dangling plus is not an identifier.
	res = v.Validate("+")
	assert.False(t, res.Parsed)
}

func TestValidateLicenseRef(t *testing.T) {
	v := testValidator()

	res := v.Validate("LicenseRef-Proprietary")
	assert.True(t, res.Parsed)
	assert.Equal(t, []string{"LicenseRef-Proprietary"}, res.Atoms)
	assert.Empty(t, res.Unknown, "LicenseRef- identifiers are accepted unconditionally")

	res = v.Validate("MIT AND LicenseRef-Internal-1.0")
	assert.True(t, res.Parsed)
	assert.Equal(t, []string{"LicenseRef-Internal-1.0", "MIT"}, res.Atoms)
	assert.Empty(t, res.Unknown)
}

func TestValidateUnknownAtom(t *testing.T) {
	v := testValidator()

	res := v.Validate("MIT AND Not-A-License")
	assert.True(t, res.Parsed, "unknown identifiers still parse")
	assert.Equal(t, []string{"MIT", "Not-A-License"}, res.Atoms)
	assert.Equal(t, []string{"Not-A-License"}, res.Unknown)
}
