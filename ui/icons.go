package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
)

// Inline lucide icon bodies (24x24, stroke based).
const (
	iconLoader        = `<path d="M21 12a9 9 0 1 1-6.219-8.56"/>`
	iconAlertCircle   = `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`
	iconInfo          = `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`
	iconAlertTriangle = `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3Z"/><path d="M12 9v4"/><path d="M12 17h.01"/>`
	iconCheckCircle   = `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`
	iconX             = `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`
	iconChevronRight  = `<path d="m9 18 6-6-6-6"/>`
)

func icon(name, body, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" data-icon="`+
				name+`" class="`+templ.EscapeString(class)+`">`+body+`</svg>`)
		return err
	})
}

// LoaderIcon is the spinner used by loading buttons and inputs.
func LoaderIcon(class string) templ.Component {
	return icon("loader", iconLoader, class)
}

func AlertCircleIcon(class string) templ.Component {
	return icon("alert-circle", iconAlertCircle, class)
}

func InfoIcon(class string) templ.Component {
	return icon("info", iconInfo, class)
}

func AlertTriangleIcon(class string) templ.Component {
	return icon("alert-triangle", iconAlertTriangle, class)
}

func CheckCircleIcon(class string) templ.Component {
	return icon("check-circle", iconCheckCircle, class)
}

func XIcon(class string) templ.Component {
	return icon("x", iconX, class)
}

func ChevronRightIcon(class string) templ.Component {
	return icon("chevron-right", iconChevronRight, class)
}

// slot renders an icon component inside a span carrying class, the
// server-side stand-in for merging classes onto an arbitrary child.
func slot(class string, child templ.Component) templ.Component {
	return element{
		tag:      "span",
		class:    classes.Merge("inline-flex shrink-0 [&>svg]:h-full [&>svg]:w-full", class),
		attrs:    attrList{{"aria-hidden", "true"}},
		children: []templ.Component{child},
	}
}
