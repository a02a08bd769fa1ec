package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"strings"

	"github.com/pthm/hxui"
)

// rewrite renames the package clause of a Go source file and formats it.
// Non-Go files are returned unchanged.
func (g *Installer) rewrite(f hxui.File, pkg string) ([]byte, error) {
	if !strings.HasSuffix(f.Name, ".go") {
		return f.Content, nil
	}

	file, err := parser.ParseFile(g.fset, f.Name, f.Content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Name, err)
	}
	file.Name.Name = pkg

	var buf bytes.Buffer
	if err := format.Node(&buf, g.fset, file); err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Name, err)
	}
	return buf.Bytes(), nil
}

// report prints one line per file action.
func (g *Installer) report(verb, path string) {
	prefix := ""
	if g.opts.DryRun {
		prefix = "(dry run) "
	}
	fmt.Fprintf(g.opts.Out, "%s%-9s %s\n", prefix, verb, path)
}
