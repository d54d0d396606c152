// Package walker enumerates a project's covered files: the files that
// must carry licensing information. It prunes VCS metadata, license
// storage, build detritus, and anything the VCS itself ignores, and
// collects annotation manifests found along the way.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/reuselint/reuselint/internal/vcs"
)

// ManifestName is the per-directory annotation manifest file name.
const ManifestName = "REUSE.toml"

var ignoreDirPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\.git$`),
	regexp.MustCompile(`^\.hg$`),
	regexp.MustCompile(`^\.sl$`),
	regexp.MustCompile(`^\.reuse$`),
}

var ignoreFilePatterns = []*regexp.Regexp{
	// LICENSE, LICENSE-MIT, LICENCE.txt and the COPYING family.
	regexp.MustCompile(`^LICEN[CS]E([-.].*)?$`),
	regexp.MustCompile(`^COPYING([-.].*)?$`),
	// .git appears as a file inside submodule checkouts.
	regexp.MustCompile(`^\.git$`),
	regexp.MustCompile(`^\.hgtags$`),
	regexp.MustCompile(`\.license$`),
	// These license texts embed SPDX tags in their own body; stray
	// copies are excluded by name.
	regexp.MustCompile(`^CAL-1\.0(-Combined-Work-Exception)?(\..+)?$`),
	regexp.MustCompile(`^SHL-2\.1(\..+)?$`),
	// SPDX documents.
	regexp.MustCompile(`\.spdx$`),
	regexp.MustCompile(`\.spdx\.(rdf|json|xml|ya?ml)$`),
}

// Options adjusts a walk. The zero value scans everything under root
// with no VCS pruning.
type Options struct {
	// LicensesDir is the license-storage directory name to prune.
	// Empty means LICENSES.
	LicensesDir string
	// Subset restricts covered files to these root-relative paths when
	// non-empty. Manifest collection is unaffected.
	Subset                  []string
	IncludeSubmodules       bool
	IncludeMesonSubprojects bool
	VCS                     vcs.Strategy
}

// Result lists what a walk found, deterministically sorted.
type Result struct {
	// Files are the covered files, lexicographic.
	Files []string
	// Manifests are the annotation manifest paths, topmost first.
	Manifests []string
}

// Walk enumerates root. A root that does not exist or is not a
// directory is a fatal error; unreadable subdirectories are skipped.
func Walk(root string, opts Options) (Result, error) {
	var res Result

	info, err := os.Stat(root)
	if err != nil {
		return res, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("scanning %s: not a directory", root)
	}

	licensesDir := opts.LicensesDir
	if licensesDir == "" {
		licensesDir = "LICENSES"
	}
	strategy := opts.VCS
	if strategy == nil {
		strategy = vcs.None{}
	}
	subset := make(map[string]struct{}, len(opts.Subset))
	for _, p := range opts.Subset {
		subset[path.Clean(filepath.ToSlash(p))] = struct{}{}
	}

	err = filepath.WalkDir(root, func(abs string, d fs.DirEntry, err error) error {
		if err != nil {
			if abs == root {
				return err
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, abs)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := path.Base(rel)

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			if name == licensesDir {
				return fs.SkipDir
			}
			for _, pattern := range ignoreDirPatterns {
				if pattern.MatchString(name) {
					return fs.SkipDir
				}
			}
			if !opts.IncludeMesonSubprojects && path.Base(path.Dir(rel)) == "subprojects" {
				return fs.SkipDir
			}
			if !opts.IncludeSubmodules && strategy.Submodule(rel) {
				return fs.SkipDir
			}
			if len(subset) > 0 && !coversSubset(subset, rel) {
				return fs.SkipDir
			}
			if strategy.Ignored(rel) {
				return fs.SkipDir
			}
			return nil
		}

		if strategy.Ignored(rel) {
			return nil
		}
		if name == ManifestName {
			res.Manifests = append(res.Manifests, rel)
			return nil
		}
		if len(subset) > 0 {
			if _, ok := subset[rel]; !ok {
				return nil
			}
		}
		for _, pattern := range ignoreFilePatterns {
			if pattern.MatchString(name) {
				return nil
			}
		}
		if fi, err := d.Info(); err == nil && fi.Size() == 0 {
			return nil
		}
		res.Files = append(res.Files, rel)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(res.Files)
	sort.Slice(res.Manifests, func(i, j int) bool {
		di, dj := strings.Count(res.Manifests[i], "/"), strings.Count(res.Manifests[j], "/")
		if di != dj {
			return di < dj
		}
		return res.Manifests[i] < res.Manifests[j]
	})
	return res, nil
}

// coversSubset reports whether any subset path lives under dir.
func coversSubset(subset map[string]struct{}, dir string) bool {
	prefix := dir + "/"
	for p := range subset {
		if p == dir || strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
