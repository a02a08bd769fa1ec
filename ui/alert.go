package ui

import (
	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
	"github.com/pthm/hxui/lib/variants"
)

// Alert types.
const (
	AlertDefault = "default"
	AlertError   = "error"
	AlertInfo    = "info"
	AlertWarning = "warning"
	AlertSuccess = "success"
)

// AlertVariants styles the Alert container.
var AlertVariants = variants.MustDefine(variants.Config{
	Base: classes.Join(
		"relative w-full rounded-lg border p-4",
		"[&>svg+div]:translate-y-[-3px] [&>svg]:absolute [&>svg]:left-4 [&>svg]:top-4 [&>svg~*]:pl-7",
	),
	Axes: []variants.Axis{
		{Name: "type", Default: AlertInfo, Options: []variants.Option{
			{Name: AlertDefault, Class: "bg-background text-foreground"},
			{Name: AlertError, Class: "border-destructive bg-destructive/10 text-destructive"},
			{Name: AlertInfo, Class: "border-sky-200 bg-sky-500/10 text-sky-900"},
			{Name: AlertWarning, Class: "border-orange-400 bg-orange-500/10 text-orange-800"},
			{Name: AlertSuccess, Class: "border-green-600 bg-green-500/10 text-green-900"},
		}},
	},
})

// AlertProps configures an Alert.
type AlertProps struct {
	// Type selects the colour scheme and default icon. Empty means "default".
	Type string
	// DefaultIcon picks the built-in icon of another type.
	DefaultIcon string
	// Icon replaces the built-in icon.
	Icon  templ.Component
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// Alert renders a role="alert" callout with an icon matching its type.
func Alert(props AlertProps, children ...templ.Component) templ.Component {
	typ := props.Type
	if typ == "" {
		typ = AlertDefault
	}

	chosen := typ
	if props.DefaultIcon != "" {
		chosen = props.DefaultIcon
	}
	icon := alertIcon(chosen)
	if props.Icon != nil {
		icon = slot("h-4 w-4", props.Icon)
	}

	return element{
		tag:      "div",
		class:    AlertVariants.Resolve(variants.Selection{"type": typ}, props.Class),
		attrs:    attrList{{"role", "alert"}},
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: append([]templ.Component{icon}, children...),
	}
}

func alertIcon(typ string) templ.Component {
	switch typ {
	case AlertError:
		return AlertCircleIcon("h-4 w-4")
	case AlertInfo:
		return InfoIcon("h-4 w-4")
	case AlertWarning:
		return AlertTriangleIcon("h-4 w-4")
	case AlertSuccess:
		return CheckCircleIcon("h-4 w-4")
	}
	return nil
}

// AlertTitleProps configures an AlertTitle.
type AlertTitleProps struct {
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// AlertTitle renders the alert heading.
func AlertTitle(props AlertTitleProps, children ...templ.Component) templ.Component {
	return element{
		tag:      "h5",
		class:    classes.Merge("mb-1 font-medium leading-none tracking-tight", props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}

// AlertDescriptionProps configures an AlertDescription.
type AlertDescriptionProps struct {
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// AlertDescription renders the alert body.
func AlertDescription(props AlertDescriptionProps, children ...templ.Component) templ.Component {
	return element{
		tag:      "div",
		class:    classes.Merge("text-sm [&_p]:leading-relaxed", props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}
