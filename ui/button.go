package ui

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
	"github.com/pthm/hxui/lib/variants"
)

// ErrOutsideButton is returned when ButtonIcon or ButtonLoader render
// without an enclosing Button.
var ErrOutsideButton = errors.New("ui: ButtonIcon and ButtonLoader must be rendered within a Button")

// ButtonVariants styles Button. Colours come from compound rules on
// variant and intent; icon-only sizing from rules on size and icon.
var ButtonVariants = variants.MustDefine(variants.Config{
	Base: classes.Join(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors",
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2",
		"disabled:pointer-events-none disabled:opacity-50",
	),
	Axes: []variants.Axis{
		{Name: "variant", Default: "default", Options: []variants.Option{
			{Name: "default"},
			{Name: "secondary"},
			{Name: "outline", Class: "border bg-background"},
			{Name: "ghost"},
		}},
		{Name: "intent", Default: "default", Options: []variants.Option{
			{Name: "default"},
			{Name: "destructive"},
		}},
		{Name: "size", Default: "default", Options: []variants.Option{
			{Name: "xs", Class: "h-8 px-2 text-xs"},
			{Name: "sm", Class: "h-9 px-3"},
			{Name: "default", Class: "h-10 px-3"},
			{Name: "lg", Class: "h-11 px-5"},
		}},
		{Name: "icon", Default: "false", Options: []variants.Option{
			{Name: "true"},
			{Name: "false"},
		}},
		{Name: "width", Default: "default", Options: []variants.Option{
			{Name: "default", Class: "inline-flex"},
			{Name: "full", Class: "flex w-full"},
		}},
	},
	Compound: []variants.Rule{
		{When: variants.Selection{"variant": "default", "intent": "default"}, Class: "bg-primary text-primary-foreground hover:bg-primary/90"},
		{When: variants.Selection{"variant": "default", "intent": "destructive"}, Class: "bg-destructive text-destructive-foreground hover:bg-destructive/90"},
		{When: variants.Selection{"variant": "secondary", "intent": "default"}, Class: "bg-secondary text-secondary-foreground hover:bg-secondary/80"},
		{When: variants.Selection{"variant": "outline", "intent": "default"}, Class: "border-input hover:bg-accent"},
		{When: variants.Selection{"variant": "outline", "intent": "destructive"}, Class: "border-destructive text-destructive hover:bg-destructive/5"},
		{When: variants.Selection{"variant": "ghost", "intent": "default"}, Class: "hover:bg-accent"},
		{When: variants.Selection{"variant": "ghost", "intent": "destructive"}, Class: "text-destructive hover:bg-destructive/10"},
		{When: variants.Selection{"size": "sm", "icon": "true"}, Class: "h-9 w-9 p-2"},
		{When: variants.Selection{"size": "default", "icon": "true"}, Class: "h-10 w-10 px-0"},
		{When: variants.Selection{"size": "lg", "icon": "true"}, Class: "h-11 w-11 px-0"},
	},
})

// ButtonProps configures a Button. Empty variant fields fall back to the
// schema defaults.
type ButtonProps struct {
	Variant string // default, secondary, outline, ghost
	Intent  string // default, destructive
	Size    string // xs, sm, default, lg
	Width   string // default, full
	// Icon marks an icon-only button.
	Icon      bool
	IsLoading bool
	Disabled  bool
	// Type defaults to "button", or "submit" when Form is set.
	Type  string
	Form  string
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// Selection returns the variant selection for the props.
func (p ButtonProps) Selection() variants.Selection {
	return variants.Selection{
		"variant": p.Variant,
		"intent":  p.Intent,
		"size":    p.Size,
		"icon":    variants.Bool(p.Icon),
		"width":   p.Width,
	}
}

// ButtonClass returns the classes a Button with props would carry. Use it
// to style another element (a link, a label) as a button.
func ButtonClass(props ButtonProps) string {
	return ButtonVariants.Resolve(props.Selection(), props.Class)
}

// buttonState is what a Button shares with the ButtonIcon and
// ButtonLoader rendered inside it. It is read-only and scoped to the
// Button's children.
type buttonState struct {
	loading  bool
	iconOnly bool
}

type buttonStateKey struct{}

func buttonStateFrom(ctx context.Context) (buttonState, bool) {
	s, ok := ctx.Value(buttonStateKey{}).(buttonState)
	return s, ok
}

// Button renders a <button>. Unless its children include a ButtonIcon, a
// ButtonLoader is rendered before them so loading buttons show a spinner.
func Button(props ButtonProps, children ...templ.Component) templ.Component {
	typ := props.Type
	if props.Form != "" {
		typ = "submit"
	} else if typ == "" {
		typ = "button"
	}

	hasIcon := false
	for _, c := range children {
		if _, ok := c.(buttonIcon); ok {
			hasIcon = true
			break
		}
	}
	if !hasIcon {
		children = append([]templ.Component{ButtonLoader(ButtonLoaderProps{})}, children...)
	}

	attrs := attrList{
		{"type", typ},
		{"disabled", props.IsLoading || props.Disabled},
	}
	if props.Form != "" {
		attrs = append(attrs, attr{"form", props.Form})
	}
	if props.IsLoading {
		attrs = append(attrs, attr{"aria-busy", "true"})
	}

	el := element{
		tag:      "button",
		class:    ButtonClass(props),
		attrs:    attrs,
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
	state := buttonState{loading: props.IsLoading, iconOnly: props.Icon}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return el.Render(context.WithValue(ctx, buttonStateKey{}, state), w)
	})
}

// ButtonIconProps configures a ButtonIcon.
type ButtonIconProps struct {
	Icon templ.Component
	// Only marks the icon as the button's only content (no trailing gap).
	Only  bool
	Class string
}

type buttonIcon struct {
	props ButtonIconProps
}

// ButtonIcon renders an icon inside a Button, replaced by a spinner while
// the Button is loading.
func ButtonIcon(props ButtonIconProps) templ.Component {
	return buttonIcon{props: props}
}

func (b buttonIcon) Render(ctx context.Context, w io.Writer) error {
	state, ok := buttonStateFrom(ctx)
	if !ok {
		return ErrOutsideButton
	}

	iconOnly := state.iconOnly || b.props.Only
	if state.loading {
		class := classes.Merge("h-4 w-4 animate-spin", classes.If(!iconOnly, "mr-2"), b.props.Class)
		return LoaderIcon(class).Render(ctx, w)
	}
	if b.props.Icon == nil {
		return nil
	}
	class := classes.Merge("h-4 w-4", classes.If(!iconOnly, "mr-2"), b.props.Class)
	return slot(class, b.props.Icon).Render(ctx, w)
}

// ButtonLoaderProps configures a ButtonLoader.
type ButtonLoaderProps struct {
	// Show forces the spinner regardless of the Button's loading state.
	Show bool
}

// ButtonLoader renders a spinner while the enclosing Button is loading.
func ButtonLoader(props ButtonLoaderProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state, ok := buttonStateFrom(ctx)
		if !ok {
			return ErrOutsideButton
		}
		if !state.loading && !props.Show {
			return nil
		}
		return LoaderIcon("mr-2 h-4 w-4 animate-spin").Render(ctx, w)
	})
}
