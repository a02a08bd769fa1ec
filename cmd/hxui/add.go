package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/generator"
)

type addOptions struct {
	dir       string
	pkg       string
	overwrite bool
	dryRun    bool
}

func newAddCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <component>...",
		Short: "Copy components into your project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Target directory (default from hxui.yaml)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Target package name (default from hxui.yaml)")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace files that differ from the registry")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview changes without writing files")

	return cmd
}

func runAdd(cmd *cobra.Command, rootFlags *rootFlags, names []string, opts *addOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	dir := valueOrFallback(opts.dir, app.Config.Dir)
	pkg := valueOrFallback(opts.pkg, app.Config.Package)

	entries := make([]hxui.Entry, 0, len(names))
	for _, name := range names {
		entry, err := app.Registry.Get(name)
		if err != nil {
			return newCommandError("add", fmt.Sprintf("looking up component %q", name), err, "Run 'hxui list' to view available components.")
		}
		entries = append(entries, entry)
	}

	inst := generator.New(generator.Options{
		DryRun:    opts.dryRun,
		Overwrite: opts.overwrite,
		Out:       cmd.OutOrStdout(),
	})

	deps := make(map[string]bool)
	for _, entry := range entries {
		written, err := inst.Install(entry, dir, pkg)
		if err != nil {
			return newCommandError("add", fmt.Sprintf("installing %s into %s", entry.Name, dir), err, "Pass --overwrite to replace changed files, or --package to match the target directory.")
		}
		app.Log.Info("installed component", "component", entry.Name, "dir", dir, "files", len(written))
		for _, dep := range entry.Dependencies {
			deps[dep] = true
		}
	}

	if len(deps) > 0 {
		sorted := make([]string, 0, len(deps))
		for dep := range deps {
			sorted = append(sorted, dep)
		}
		sort.Strings(sorted)
		fmt.Fprintln(cmd.OutOrStdout(), "\nThe components import:")
		for _, dep := range sorted {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", dep)
		}
	}
	return nil
}
