// Package generator installs registry components into a project as plain
// Go source the project then owns.
//
// Files are rewritten to the target package name and gofmt-ed on the way
// out:
//
//	inst := generator.New(generator.Options{Out: os.Stdout})
//	written, err := inst.Install(entry, "internal/ui", "ui")
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pthm/hxui"
)

var (
	// ErrExists is returned when an install would replace a file whose
	// content differs and Overwrite is off.
	ErrExists = errors.New("generator: file exists")
	// ErrModified is returned when Remove finds a file changed since it was
	// installed and Overwrite is off.
	ErrModified = errors.New("generator: file modified")
	// ErrPackageMismatch is returned when the target directory already
	// holds a different Go package.
	ErrPackageMismatch = errors.New("generator: package mismatch")
)

// Options configures the installer.
type Options struct {
	// DryRun reports what would change without touching the filesystem.
	DryRun bool
	// Overwrite replaces differing files on Install and removes modified
	// files on Remove.
	Overwrite bool
	// Out receives one line per file action. Nil discards them.
	Out io.Writer
}

// Installer writes and removes component files.
type Installer struct {
	opts Options
	fset *token.FileSet
}

// New creates a new installer.
func New(opts Options) *Installer {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Installer{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// action is a planned change to one file.
type action struct {
	path    string
	content []byte
	verb    string // "create", "overwrite", "unchanged"
}

// Install writes entry's files into dir as package pkg and returns the paths
// written (or that would be written on a dry run). Files already present
// with identical content are skipped. Nothing is written if any file
// conflicts.
func (g *Installer) Install(entry hxui.Entry, dir, pkg string) ([]string, error) {
	if !token.IsIdentifier(pkg) || token.IsKeyword(pkg) {
		return nil, fmt.Errorf("generator: %q is not a valid package name", pkg)
	}
	if existing, err := PackageName(dir); err != nil {
		return nil, err
	} else if existing != "" && existing != pkg {
		return nil, fmt.Errorf("%w: %s holds package %s, not %s", ErrPackageMismatch, dir, existing, pkg)
	}

	plan, err := g.plan(entry, dir, pkg)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, a := range plan {
		if a.verb == "overwrite" && !g.opts.Overwrite {
			conflicts = append(conflicts, a.path)
		}
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s (use overwrite to replace)", ErrExists, strings.Join(conflicts, ", "))
	}

	if !g.opts.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	var written []string
	for _, a := range plan {
		g.report(a.verb, a.path)
		if a.verb == "unchanged" {
			continue
		}
		written = append(written, a.path)
		if g.opts.DryRun {
			continue
		}
		if err := os.WriteFile(a.path, a.content, 0o644); err != nil {
			return written, err
		}
	}
	return written, nil
}

func (g *Installer) plan(entry hxui.Entry, dir, pkg string) ([]action, error) {
	plan := make([]action, 0, len(entry.Files))
	for _, f := range entry.Files {
		if f.Name != filepath.Base(f.Name) {
			return nil, fmt.Errorf("generator: %s: file name %q must not contain a path", entry.Name, f.Name)
		}
		content, err := g.rewrite(f, pkg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}

		path := filepath.Join(dir, f.Name)
		verb := "create"
		current, err := os.ReadFile(path)
		switch {
		case err == nil && bytes.Equal(current, content):
			verb = "unchanged"
		case err == nil:
			verb = "overwrite"
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
		plan = append(plan, action{path: path, content: content, verb: verb})
	}
	return plan, nil
}

// Remove deletes entry's files from dir, except those named in keep (files
// shared with other installed components). Files edited since install are
// left alone unless Overwrite is set. It returns the removed paths.
func (g *Installer) Remove(entry hxui.Entry, dir string, keep ...string) ([]string, error) {
	pkg, err := PackageName(dir)
	if err != nil {
		return nil, err
	}

	kept := make(map[string]bool, len(keep))
	for _, name := range keep {
		kept[name] = true
	}

	var targets []string
	for _, f := range entry.Files {
		if kept[f.Name] {
			continue
		}
		path := filepath.Join(dir, f.Name)
		current, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !g.opts.Overwrite {
			want, err := g.rewrite(f, pkg)
			if err != nil {
				return nil, err
			}
			if !bytes.Equal(current, want) {
				return nil, fmt.Errorf("%w: %s", ErrModified, path)
			}
		}
		targets = append(targets, path)
	}

	for _, path := range targets {
		g.report("remove", path)
		if g.opts.DryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}
	return targets, nil
}

// Installed reports whether entry's primary file is present in dir.
func Installed(entry hxui.Entry, dir string) bool {
	if len(entry.Files) == 0 {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, entry.Files[0].Name))
	return err == nil
}

// PackageName returns the package declared by the non-test Go files in
// dir, or "" when there are none.
func PackageName(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	fset := token.NewFileSet()
	names := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			return "", err
		}
		names[file.Name.Name] = true
	}

	switch len(names) {
	case 0:
		return "", nil
	case 1:
		for name := range names {
			return name, nil
		}
	}
	found := make([]string, 0, len(names))
	for name := range names {
		found = append(found, name)
	}
	sort.Strings(found)
	return "", fmt.Errorf("%w: %s holds packages %s", ErrPackageMismatch, dir, strings.Join(found, ", "))
}
