// Package hxui is a registry of styled, composable UI components for
// server-rendered Go applications built with Templ and utility-first CSS.
//
// Components live in the ui package and can be used in two ways: imported
// directly, or copied into an application as source with the hxui CLI so
// they can be edited freely. The registry is what makes the second mode
// possible: every entry carries the component's variant schemas and its
// embedded source files.
//
// # Variants
//
// Every component's styling is described by a variants.Schema: a base class
// list, a set of axes (variant, size, intent, ...) each with a closed set of
// options and an optional default, and compound rules that add classes when
// several options are selected together.
//
//	class := ui.ButtonVariants.Resolve(variants.Selection{
//	    "variant": "outline",
//	    "size":    "sm",
//	}, props.Class)
//
// Resolution is pure and permissive: unknown axes and options are ignored,
// missing axes fall back to their defaults, and caller classes are merged
// last so they win conflicts (see package classes).
//
// # Registry
//
// Components are registered explicitly:
//
//	reg := hxui.NewRegistry()
//	ui.Register(reg)
//	class, err := reg.Resolve("button", "", variants.Selection{"size": "lg"})
//
// A registry can be exported as a sealed bundle (msgpack, signed or
// encrypted) so component sources can be distributed and verified before
// they are installed.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (no init() side effects)
//   - Explicit render state (Button scopes its state for ButtonIcon through
//     the render context; nothing global)
//   - Schemas validated once, at definition time
package hxui
