package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/lib/definition"
)

type showOptions struct {
	schema string
	source bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <component>",
		Short: "Show a component's files, dependencies and variant schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "Only print the named schema, as YAML")
	cmd.Flags().BoolVar(&opts.source, "source", false, "Print the component source")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, name string, opts *showOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	entry, err := app.Registry.Get(name)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up component %q", name), err, "Run 'hxui list' to view available components.")
	}

	out := cmd.OutOrStdout()

	if opts.schema != "" {
		schema, err := entry.Schema(opts.schema)
		if err != nil {
			return newCommandError("show", fmt.Sprintf("looking up schema %q", opts.schema), err,
				fmt.Sprintf("%s declares: %s", entry.Name, valueOrFallback(strings.Join(entry.SchemaNames(), ", "), "no schemas")))
		}
		data, err := definition.Marshal(schema)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if opts.source {
		if len(entry.Files) == 0 {
			return nil
		}
		_, err := out.Write(entry.Files[0].Content)
		return err
	}

	fmt.Fprintf(out, "Component: %s\n", entry.Name)
	fmt.Fprintf(out, "Description: %s\n", valueOrFallback(entry.Description, "(none)"))

	fmt.Fprintln(out, "\nFiles:")
	for _, f := range entry.Files {
		fmt.Fprintf(out, "  %s (%d bytes)\n", f.Name, len(f.Content))
	}

	fmt.Fprintln(out, "\nDependencies:")
	for _, dep := range entry.Dependencies {
		fmt.Fprintf(out, "  %s\n", dep)
	}

	names := entry.SchemaNames()
	if len(names) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\nSchemas:")
	for _, schemaName := range names {
		schema, _ := entry.Schema(schemaName)
		fmt.Fprintf(out, "  %s\n", schemaName)
		for _, axis := range schema.Axes() {
			options := make([]string, len(axis.Options))
			for i, o := range axis.Options {
				options[i] = o.Name
				if o.Name == axis.Default {
					options[i] += "*"
				}
			}
			fmt.Fprintf(out, "    %s: %s\n", axis.Name, strings.Join(options, " | "))
		}
		if rules := schema.Compound(); len(rules) > 0 {
			fmt.Fprintf(out, "    compound rules: %d\n", len(rules))
		}
	}
	return nil
}
