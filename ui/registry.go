package ui

import (
	"embed"
	"fmt"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/variants"
)

// Component sources distributed by the registry.
//
//go:embed alert.go button.go card.go dialog.go input.go element.go icons.go
var sources embed.FS

// Shared by every component.
var sharedFiles = []string{"element.go", "icons.go"}

var commonDeps = []string{
	"github.com/a-h/templ",
	"github.com/google/uuid",
	"github.com/pthm/hxui/lib/classes",
	"github.com/pthm/hxui/lib/variants",
}

type entryDef struct {
	name        string
	description string
	file        string
	schemas     map[string]*variants.Schema
}

var entryDefs = []entryDef{
	{
		name:        "alert",
		description: "Callout for user attention with a type-specific icon.",
		file:        "alert.go",
		schemas:     map[string]*variants.Schema{"alert": AlertVariants},
	},
	{
		name:        "button",
		description: "Button with variant, intent, size and icon-only styles and a loading state.",
		file:        "button.go",
		schemas:     map[string]*variants.Schema{"button": ButtonVariants},
	},
	{
		name:        "card",
		description: "Bordered surface with header, title, content and footer parts.",
		file:        "card.go",
	},
	{
		name:        "dialog",
		description: "Modal dialog on the native <dialog> element.",
		file:        "dialog.go",
		schemas:     map[string]*variants.Schema{"dialog-content": DialogContentVariants},
	},
	{
		name:        "input",
		description: "Text field with optional icon, loading spinner and submit on Enter.",
		file:        "input.go",
		schemas:     map[string]*variants.Schema{"input": InputVariants},
	},
}

// Entries returns the registry entries for every component in this package.
func Entries() ([]hxui.Entry, error) {
	entries := make([]hxui.Entry, 0, len(entryDefs))
	for _, def := range entryDefs {
		names := append([]string{def.file}, sharedFiles...)
		files := make([]hxui.File, 0, len(names))
		for _, name := range names {
			content, err := sources.ReadFile(name)
			if err != nil {
				return nil, fmt.Errorf("ui: read %s source: %w", def.name, err)
			}
			files = append(files, hxui.File{Name: name, Content: content})
		}

		entries = append(entries, hxui.Entry{
			Name:         def.name,
			Description:  def.description,
			Schemas:      def.schemas,
			Files:        files,
			Dependencies: commonDeps,
		})
	}
	return entries, nil
}

// Register adds every component to reg.
func Register(reg *hxui.Registry) error {
	entries, err := Entries()
	if err != nil {
		return err
	}
	reg.Add(entries...)
	return nil
}
