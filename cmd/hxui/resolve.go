package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/definition"
	"github.com/pthm/hxui/lib/variants"
)

type resolveOptions struct {
	set        []string
	class      []string
	schemaFile string
	fragments  bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [component [schema]]",
		Short: "Print the classes a variant selection resolves to",
		Example: `  hxui resolve button --set size=sm --set icon=true
  hxui resolve dialog dialog-content --set size=lg --class mt-4
  hxui resolve --schema badge.yaml --set tone=danger`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Select an option as axis=option (repeatable)")
	cmd.Flags().StringArrayVar(&opts.class, "class", nil, "Extra classes merged last (repeatable)")
	cmd.Flags().StringVar(&opts.schemaFile, "schema", "", "Resolve against a YAML schema file instead of a component")
	cmd.Flags().BoolVar(&opts.fragments, "fragments", false, "Print the unmerged fragments, one per line")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *resolveOptions) error {
	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("resolve", "parsing --set", err, "Use --set axis=option, for example --set size=sm.")
	}

	schema, err := resolveSchema(cmd, rootFlags, args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.fragments {
		for _, f := range schema.Fragments(sel, opts.class...) {
			fmt.Fprintln(out, f)
		}
		return nil
	}
	fmt.Fprintln(out, schema.Resolve(sel, opts.class...))
	return nil
}

func resolveSchema(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *resolveOptions) (*variants.Schema, error) {
	if opts.schemaFile != "" {
		if len(args) > 0 {
			return nil, newCommandError("resolve", "reading arguments", errors.New("a component cannot be combined with --schema"), "Drop the component name or the --schema flag.")
		}
		schema, err := definition.Load(opts.schemaFile)
		if err != nil {
			return nil, newCommandError("resolve", "loading "+opts.schemaFile, err, "Fix the schema definition and try again.")
		}
		return schema, nil
	}

	if len(args) == 0 {
		return nil, newCommandError("resolve", "reading arguments", errors.New("no component given"), "Name a component or pass --schema file.yaml.")
	}

	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return nil, err
	}
	entry, err := app.Registry.Get(args[0])
	if err != nil {
		return nil, newCommandError("resolve", fmt.Sprintf("looking up component %q", args[0]), err, "Run 'hxui list' to view available components.")
	}

	schemaName := ""
	if len(args) == 2 {
		schemaName = args[1]
	}
	schema, err := entry.Schema(schemaName)
	if err != nil {
		return nil, newCommandError("resolve", fmt.Sprintf("selecting a schema of %q", entry.Name), err,
			fmt.Sprintf("%s declares: %s", entry.Name, valueOrFallback(strings.Join(entry.SchemaNames(), ", "), "no schemas")))
	}
	return schema, nil
}

func parseSelection(pairs []string) (variants.Selection, error) {
	sel := make(variants.Selection, len(pairs))
	for _, pair := range pairs {
		axis, option, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("invalid selection %q", pair)
		}
		sel[axis] = strings.TrimSpace(option)
	}
	return sel, nil
}
