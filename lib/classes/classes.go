// Package classes joins and merges utility class lists.
//
// Merge is the workhorse: it flattens its arguments into tokens and lets
// tailwind-merge drop every token overridden by a later one of the same
// utility group and modifiers:
//
//	classes.Merge("h-9 px-3", "h-20")            // "px-3 h-20"
//	classes.Merge("p-4", "px-2")                 // "p-4 px-2"
//	classes.Merge("px-2", "p-4")                 // "p-4"
//	classes.Merge("hover:bg-accent", "bg-muted") // "hover:bg-accent bg-muted"
//
// Classes tailwind-merge does not know (theme hooks such as tp-card,
// plugin utilities) are kept as given.
package classes

import (
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Split returns the whitespace-separated tokens of class.
func Split(class string) []string {
	return strings.Fields(class)
}

// If returns class when cond is true and an empty string otherwise.
//
//	classes.Merge("h-4 w-4", classes.If(!iconOnly, "mr-2"))
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Map joins the keys of m whose value is true, in sorted order.
func Map(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k, on := range m {
		if on && k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, " ")
}

// Join concatenates non-empty class lists without resolving conflicts.
func Join(parts ...string) string {
	var tokens []string
	for _, p := range parts {
		tokens = append(tokens, strings.Fields(p)...)
	}
	return strings.Join(tokens, " ")
}

// Merge joins class lists and resolves conflicts, keeping the last
// occurrence of every conflict group at its position.
func Merge(parts ...string) string {
	joined := Join(parts...)
	if joined == "" {
		return ""
	}
	return twmerge.Merge(joined)
}

// Conflicts reports whether b overrides a when b appears after a.
func Conflicts(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" || a == b {
		return false
	}
	return Merge(a, b) == b
}
