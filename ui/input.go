package ui

import (
	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
	"github.com/pthm/hxui/lib/variants"
)

// InputVariants styles the <input> element. It has no axes.
var InputVariants = variants.MustDefine(variants.Config{
	Base: classes.Join(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-[16px] focus-visible:ring-offset-2",
		"file:border-0 file:bg-transparent file:text-sm file:font-medium",
		"ring-offset-background",
		"placeholder:text-sm placeholder:text-muted-foreground",
		"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring",
		"disabled:cursor-not-allowed disabled:opacity-50",
	),
})

// enterTrigger fires the input's hx-* request when Enter is released.
const enterTrigger = "keyup[key=='Enter']"

// InputProps configures an Input.
type InputProps struct {
	Type        string
	Name        string
	Value       string
	Placeholder string
	Disabled    bool
	// Icon is shown inside the field on the left.
	Icon      templ.Component
	IsLoading bool
	// SubmitOnEnter triggers the input's HTMX request on Enter.
	SubmitOnEnter bool
	// Class styles the wrapper; InputClass styles the <input>.
	Class      string
	InputClass string
	// Attrs and Ref apply to the <input>.
	Attrs templ.Attributes
	Ref   *Ref
}

// Input renders a text field inside a wrapper that positions an optional
// icon or loading spinner.
func Input(props InputProps) templ.Component {
	typ := props.Type
	if typ == "" {
		typ = "text"
	}

	attrs := attrList{
		{"type", typ},
		{"disabled", props.Disabled},
	}
	if props.Name != "" {
		attrs = append(attrs, attr{"name", props.Name})
	}
	if props.Value != "" {
		attrs = append(attrs, attr{"value", props.Value})
	}
	if props.Placeholder != "" {
		attrs = append(attrs, attr{"placeholder", props.Placeholder})
	}
	if props.SubmitOnEnter {
		attrs = append(attrs, attr{"hx-trigger", enterTrigger})
	}

	hasAdornment := props.Icon != nil || props.IsLoading
	field := element{
		tag:   "input",
		class: InputVariants.Resolve(nil, classes.If(hasAdornment, "sm:pl-9"), props.InputClass),
		attrs: attrs,
		extra: props.Attrs,
		id:    props.Ref.bind(props.Attrs),
		void:  true,
	}

	children := []templ.Component{field}
	switch {
	case props.IsLoading:
		children = append(children, LoaderIcon("absolute left-[8px] h-[18px] w-[18px] animate-spin text-muted-foreground"))
	case props.Icon != nil:
		children = append(children, slot("absolute left-[8px] h-[18px] w-[18px] text-muted-foreground -sm:hidden", props.Icon))
	}

	return element{
		tag:      "div",
		class:    classes.Merge("relative flex h-10 items-center", props.Class),
		children: children,
	}
}
