package ui

import (
	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
)

// CardProps configures a Card or any of its parts.
type CardProps struct {
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

func cardPart(tag, hook, base string, props CardProps, children []templ.Component) templ.Component {
	return element{
		tag:      tag,
		class:    classes.Merge(hook, base, props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}

// Card renders a bordered surface. Each part carries a stable tp-card-*
// hook class for theming.
func Card(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card", "flex flex-col rounded-lg border bg-card text-card-foreground shadow-sm", props, children)
}

// CardHeader lays out a heading next to actions.
func CardHeader(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card-header", "grid grid-cols-[1fr_auto] gap-4 p-6 sm:gap-8", props, children)
}

func CardHeading(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card-heading", "flex items-center gap-3 sm:flex-col sm:items-start sm:justify-center sm:gap-2", props, children)
}

func CardActions(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card-actions", "flex items-center gap-2", props, children)
}

func CardTitle(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("h3", "tp-card-title", "text-xl font-semibold leading-none tracking-tight", props, children)
}

func CardDescription(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("p", "tp-card-description", "text-sm text-muted-foreground", props, children)
}

func CardContent(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card-content", "p-6 pt-0", props, children)
}

func CardFooter(props CardProps, children ...templ.Component) templ.Component {
	return cardPart("div", "tp-card-footer", "flex items-center p-6 pt-0", props, children)
}
