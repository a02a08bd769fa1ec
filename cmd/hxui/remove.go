package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/generator"
)

type removeOptions struct {
	dir    string
	force  bool
	dryRun bool
}

func newRemoveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <component>...",
		Short: "Delete installed components from your project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Target directory (default from hxui.yaml)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Remove files even if they were edited")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview changes without deleting files")

	return cmd
}

func runRemove(cmd *cobra.Command, rootFlags *rootFlags, names []string, opts *removeOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}
	dir := valueOrFallback(opts.dir, app.Config.Dir)

	removing := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := app.Registry.Get(name); err != nil {
			return newCommandError("remove", fmt.Sprintf("looking up component %q", name), err, "Run 'hxui list' to view available components.")
		}
		removing[name] = true
	}

	// Files shared with components that stay installed are kept.
	var keep []string
	for _, entry := range app.Registry.List() {
		if removing[entry.Name] || !generator.Installed(entry, dir) {
			continue
		}
		for _, f := range entry.Files {
			keep = append(keep, f.Name)
		}
	}

	inst := generator.New(generator.Options{
		DryRun:    opts.dryRun,
		Overwrite: opts.force,
		Out:       cmd.OutOrStdout(),
	})
	for _, name := range names {
		entry, _ := app.Registry.Get(name)
		removed, err := inst.Remove(entry, dir, keep...)
		if err != nil {
			return newCommandError("remove", fmt.Sprintf("removing %s from %s", name, dir), err, "Pass --force to delete edited files.")
		}
		app.Log.Info("removed component", "component", name, "dir", dir, "files", len(removed))
	}
	return nil
}
