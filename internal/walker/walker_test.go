package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type fakeVCS struct {
	ignored    map[string]bool
	submodules map[string]bool
}

func (f fakeVCS) Name() string { return "fake" }

func (f fakeVCS) Ignored(rel string) bool { return f.ignored[rel] }

func (f fakeVCS) Submodule(rel string) bool { return f.submodules[rel] }

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestWalkPrunesConventionalPaths(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.c":          "int main(void) {}\n",
		"README.md":           "hello\n",
		"LICENSES/MIT.txt":    "text\n",
		".git/config":         "x\n",
		".reuse/dep5":         "Files: *\n",
		"COPYING":             "x\n",
		"LICENSE-MIT":         "x\n",
		"LICENCE.txt":         "x\n",
		"main.c.license":      "x\n",
		"doc/manual.spdx":     "x\n",
		"doc/sbom.spdx.json":  "x\n",
		"CAL-1.0.txt":         "x\n",
		"SHL-2.1.json":        "x\n",
		".hgtags":             "x\n",
		"docs/CALENDAR.md":    "not the license\n",
		"REUSE.toml":          "version = 1\n",
		"vendor/REUSE.toml":   "version = 1\n",
		"vendor/blob.bin":     "x\n",
		"subprojects/x.wrap":  "x\n",
		"subprojects/dep/a.c": "x\n",
	})

	res, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// 1. Covered files: sorted, with every conventional exclusion applied.
	wantFiles := []string{
		"README.md",
		"docs/CALENDAR.md",
		"src/main.c",
		"subprojects/x.wrap",
		"vendor/blob.bin",
	}
	if !reflect.DeepEqual(res.Files, wantFiles) {
		t.Errorf("files = %v, want %v", res.Files, wantFiles)
	}
	// 2. Manifests collected separately, topmost first.
	wantManifests := []string{"REUSE.toml", "vendor/REUSE.toml"}
	if !reflect.DeepEqual(res.Manifests, wantManifests) {
		t.Errorf("manifests = %v, want %v", res.Manifests, wantManifests)
	}
}

func TestWalkMesonSubprojectsFlag(t *testing.T) {
	root := writeTree(t, map[string]string{
		"subprojects/dep/a.c": "x\n",
		"subprojects/x.wrap":  "x\n",
	})

	res, err := Walk(root, Options{IncludeMesonSubprojects: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"subprojects/dep/a.c", "subprojects/x.wrap"}
	if !reflect.DeepEqual(res.Files, want) {
		t.Errorf("files = %v, want %v", res.Files, want)
	}
}

func TestWalkSkipsZeroSizeAndSymlinks(t *testing.T) {
	root := writeTree(t, map[string]string{"real.c": "x\n"})
	if err := os.WriteFile(filepath.Join(root, "empty.c"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "real.c"), filepath.Join(root, "link.c")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res, err := Walk(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Files, []string{"real.c"}) {
		t.Errorf("files = %v", res.Files)
	}
}

func TestWalkVCSPruning(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.c":      "x\n",
		"build/out.o":     "x\n",
		"scratch.log":     "x\n",
		"vendor/lib/a.c":  "x\n",
		"vendor/lib/.git": "gitdir: elsewhere\n",
	})

	strategy := fakeVCS{
		ignored:    map[string]bool{"build": true, "scratch.log": true},
		submodules: map[string]bool{"vendor/lib": true},
	}

	res, err := Walk(root, Options{VCS: strategy})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Files, []string{"src/main.c"}) {
		t.Errorf("files = %v", res.Files)
	}

	// Submodules come back with the flag.
	res, err = Walk(root, Options{VCS: strategy, IncludeSubmodules: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"src/main.c", "vendor/lib/a.c"}
	if !reflect.DeepEqual(res.Files, want) {
		t.Errorf("files = %v, want %v", res.Files, want)
	}
}

func TestWalkIgnoredManifestDropped(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/a.c":        "x\n",
		"gen/REUSE.toml": "version = 1\n",
		"REUSE.toml":     "version = 1\n",
	})

	res, err := Walk(root, Options{VCS: fakeVCS{ignored: map[string]bool{"gen": true}}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Manifests, []string{"REUSE.toml"}) {
		t.Errorf("manifests = %v", res.Manifests)
	}
}

func TestWalkSubset(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.c":     "x\n",
		"src/util.c":     "x\n",
		"doc/guide.md":   "x\n",
		"doc/REUSE.toml": "version = 1\n",
	})

	res, err := Walk(root, Options{Subset: []string{"src/main.c"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Files, []string{"src/main.c"}) {
		t.Errorf("files = %v", res.Files)
	}
	// Manifest discovery only prunes directories no subset file lives in.
	if len(res.Manifests) != 0 {
		t.Errorf("manifests = %v", res.Manifests)
	}

	res, err = Walk(root, Options{Subset: []string{"doc/guide.md"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Manifests, []string{"doc/REUSE.toml"}) {
		t.Errorf("manifests = %v", res.Manifests)
	}
}

func TestWalkFatalRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "gone"), Options{}); err == nil {
		t.Fatal("expected error for missing root")
	}
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Walk(file, Options{}); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestWalkCustomLicensesDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"legal/MIT.txt": "text\n",
		"src/a.c":       "x\n",
	})

	res, err := Walk(root, Options{LicensesDir: "legal"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Files, []string{"src/a.c"}) {
		t.Errorf("files = %v", res.Files)
	}
}
