package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	entries := app.Registry.List()
	if opts.jsonOutput {
		return renderListJSON(cmd, entries)
	}
	return renderListTable(cmd, entries)
}

func renderListTable(cmd *cobra.Command, entries []hxui.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components available.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tSCHEMAS\tFILES\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n",
			e.Name,
			valueOrFallback(strings.Join(e.SchemaNames(), ","), "-"),
			len(e.Files),
			e.Description,
		)
	}
	return writer.Flush()
}

type listJSONComponent struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Schemas      []string `json:"schemas"`
	Files        []string `json:"files"`
	Dependencies []string `json:"dependencies"`
}

type listJSONPayload struct {
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, entries []hxui.Entry) error {
	payload := listJSONPayload{
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, e := range entries {
		files := make([]string, len(e.Files))
		for j, f := range e.Files {
			files[j] = f.Name
		}
		payload.Components[i] = listJSONComponent{
			Name:         e.Name,
			Description:  e.Description,
			Schemas:      e.SchemaNames(),
			Files:        files,
			Dependencies: e.Dependencies,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
