// Package vcs interrogates the version control system holding the
// project, if any. It supplies the set of ignored paths, submodule
// detection, and project root discovery. All answers are computed once
// per run with a single subprocess call per question.
package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Strategy answers VCS questions for one project tree. Paths are
// root-relative with forward slashes.
type Strategy interface {
	Name() string
	Ignored(rel string) bool
	Submodule(rel string) bool
}

// execOutput runs a command in dir and returns its stdout. Swappable in
// tests.
var execOutput = func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.Output()
}

// Detect picks the strategy for root: Git, then Mercurial, then none.
func Detect(ctx context.Context, root string) Strategy {
	if _, err := exec.LookPath("git"); err == nil {
		if _, err := execOutput(ctx, root, "git", "rev-parse", "--is-inside-work-tree"); err == nil {
			return newGit(ctx, root)
		}
	}
	if _, err := exec.LookPath("hg"); err == nil {
		if _, err := execOutput(ctx, root, "hg", "root"); err == nil {
			return newMercurial(ctx, root)
		}
	}
	return None{}
}

// FindRoot locates the repository root enclosing dir, falling back to
// dir itself when no VCS is found.
func FindRoot(ctx context.Context, dir string) string {
	if _, err := exec.LookPath("git"); err == nil {
		if out, err := execOutput(ctx, dir, "git", "rev-parse", "--show-toplevel"); err == nil {
			if root := strings.TrimSpace(string(out)); root != "" {
				return root
			}
		}
	}
	if _, err := exec.LookPath("hg"); err == nil {
		if out, err := execOutput(ctx, dir, "hg", "root"); err == nil {
			if root := strings.TrimSpace(string(out)); root != "" {
				return root
			}
		}
	}
	return dir
}

// None is the strategy for trees outside any VCS.
type None struct{}

func (None) Name() string { return "none" }

func (None) Ignored(string) bool { return false }

func (None) Submodule(string) bool { return false }

// Git asks git once for every ignored path and answers lookups from
// that set. Ignored directories are listed once, not per contained
// file.
type Git struct {
	root    string
	ignored map[string]struct{}
}

func newGit(ctx context.Context, root string) *Git {
	g := &Git{root: root, ignored: make(map[string]struct{})}
	out, err := execOutput(ctx, root, "git",
		"ls-files", "--exclude-standard", "--ignored", "--others", "--directory",
		// Counter-intuitively needed so untracked directories holding
		// only ignored files are listed as directories.
		"--no-empty-directory",
		"-z")
	if err == nil {
		for _, p := range splitNull(out) {
			g.ignored[strings.TrimSuffix(p, "/")] = struct{}{}
		}
	}
	return g
}

func (g *Git) Name() string { return "git" }

func (g *Git) Ignored(rel string) bool {
	_, ok := g.ignored[rel]
	return ok
}

// Submodule reports whether rel is a submodule checkout, recognized by
// the .git file (not directory) git places inside one.
func (g *Git) Submodule(rel string) bool {
	info, err := os.Lstat(filepath.Join(g.root, filepath.FromSlash(rel), ".git"))
	return err == nil && info.Mode().IsRegular()
}

// Mercurial mirrors Git with hg status. hg lists every ignored file
// individually, never a collapsed directory.
type Mercurial struct {
	root    string
	ignored map[string]struct{}
}

func newMercurial(ctx context.Context, root string) *Mercurial {
	m := &Mercurial{root: root, ignored: make(map[string]struct{})}
	out, err := execOutput(ctx, root, "hg", "status", "--ignored", "--no-status", "--print0")
	if err == nil {
		for _, p := range splitNull(out) {
			m.ignored[p] = struct{}{}
		}
	}
	return m
}

func (m *Mercurial) Name() string { return "hg" }

func (m *Mercurial) Ignored(rel string) bool {
	_, ok := m.ignored[rel]
	return ok
}

func (m *Mercurial) Submodule(string) bool { return false }

func splitNull(out []byte) []string {
	var paths []string
	for _, p := range strings.Split(string(out), "\x00") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, filepath.ToSlash(p))
		}
	}
	return paths
}
