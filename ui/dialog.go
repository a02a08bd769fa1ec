package ui

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/lib/classes"
	"github.com/pthm/hxui/lib/variants"
)

// ErrOutsideDialog is returned when a dialog part renders without an
// enclosing Dialog.
var ErrOutsideDialog = errors.New("ui: dialog parts must be rendered within a Dialog")

// DialogContentVariants styles the dialog panel.
var DialogContentVariants = variants.MustDefine(variants.Config{
	Base: classes.Join(
		"fixed left-[50%] z-50 flex w-full translate-x-[-50%] flex-col gap-4 bg-background p-6 shadow-lg duration-200 sm:top-[50%] sm:max-h-[90%] sm:translate-y-[-50%] sm:border -sm:bottom-0",
		"sm:rounded-lg md:w-full",
		"sm:data-[state=open]:animate-in sm:data-[state=open]:fade-in-0 sm:data-[state=open]:zoom-in-95 sm:data-[state=open]:slide-in-from-left-1/2 sm:data-[state=open]:slide-in-from-top-[48%]",
		"sm:data-[state=closed]:animate-out sm:data-[state=closed]:fade-out-0 sm:data-[state=closed]:zoom-out-95 sm:data-[state=closed]:slide-out-to-left-1/2 sm:data-[state=closed]:slide-out-to-top-[48%]",
		"-sm:data-[state=closed]:slide-out-to-bottom -sm:data-[state=open]:slide-in-from-bottom -sm:data-[state=closed]:duration-300 -sm:data-[state=open]:duration-500",
	),
	Axes: []variants.Axis{
		{Name: "size", Default: "default", Options: []variants.Option{
			{Name: "default", Class: "sm:max-w-lg"},
			{Name: "lg", Class: "sm:max-w-3xl"},
			{Name: "xl", Class: "sm:max-w-6xl"},
		}},
		{Name: "mobileViewport", Default: "fit", Options: []variants.Option{
			{Name: "full", Class: "h-screen"},
			{Name: "fit", Class: "-sm:max-h-[90%] -sm:border-t"},
		}},
	},
})

const (
	dialogOverlayClass = "fixed inset-0 z-50 bg-background/80 backdrop-blur-sm " +
		"data-[state=open]:animate-in data-[state=open]:fade-in-0 " +
		"data-[state=closed]:animate-out data-[state=closed]:fade-out-0"

	dialogCloseClass = "absolute right-4 top-4 rounded-sm opacity-70 ring-offset-background transition-opacity hover:opacity-100 " +
		"focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2 disabled:pointer-events-none " +
		"data-[state=open]:bg-accent data-[state=open]:text-muted-foreground"

	// The native element only positions; overlay and panel do the styling.
	dialogElementClass = "m-0 h-full max-h-none w-full max-w-none bg-transparent p-0 backdrop:bg-transparent"

	// syncDialogScript(d, open) moves d, every part inside it and every
	// trigger controlling it to the given state.
	syncDialogScript = "function(d,open){var s=open?'open':'closed';" +
		"[d].concat(Array.from(d.querySelectorAll('[data-state]'))).forEach(function(e){e.setAttribute('data-state',s)});" +
		"document.querySelectorAll('[aria-controls=\"'+CSS.escape(d.id)+'\"]').forEach(function(t){" +
		"t.setAttribute('data-state',s);t.setAttribute('aria-expanded',String(open))})}"

	showDialogScript = "var d=document.getElementById(this.getAttribute('aria-controls'));d.showModal();(" +
		syncDialogScript + ")(d,true)"

	// The dialog's close event covers the close button, Escape and form
	// method=dialog alike.
	closeDialogScript  = "this.closest('dialog').close()"
	dialogClosedScript = "(" + syncDialogScript + ")(this,false)"
)

type dialogState struct {
	id   string
	open bool
}

type dialogStateKey struct{}

func dialogStateFrom(ctx context.Context) (dialogState, bool) {
	s, ok := ctx.Value(dialogStateKey{}).(dialogState)
	return s, ok
}

// withDialog builds a component from the enclosing Dialog's state.
func withDialog(build func(dialogState) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state, ok := dialogStateFrom(ctx)
		if !ok {
			return ErrOutsideDialog
		}
		return build(state).Render(ctx, w)
	})
}

func dataState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// DialogProps configures a Dialog.
type DialogProps struct {
	// ID of the native dialog element. Generated when empty: once when a Ref
	// is given, otherwise on every render.
	ID string
	// Open renders the dialog initially open.
	Open bool
	// Ref receives the dialog id.
	Ref *Ref
}

// Dialog scopes a dialog's id and open state for its parts. It renders no
// element of its own.
//
//	ui.Dialog(ui.DialogProps{},
//	    ui.DialogTrigger(ui.DialogTriggerProps{}, ui.Text("Open")),
//	    ui.DialogContent(ui.DialogContentProps{Size: "lg"},
//	        ui.DialogHeader(ui.DialogPartProps{},
//	            ui.DialogTitle(ui.DialogPartProps{}, ui.Text("Edit profile")),
//	        ),
//	    ),
//	)
func Dialog(props DialogProps, children ...templ.Component) templ.Component {
	id := props.Ref.bindID(props.ID)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := dialogState{id: id, open: props.Open}
		if state.id == "" {
			state.id = newID()
		}
		ctx = context.WithValue(ctx, dialogStateKey{}, state)
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// DialogTriggerProps configures a DialogTrigger.
type DialogTriggerProps struct {
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// DialogTrigger renders a button that opens the dialog.
func DialogTrigger(props DialogTriggerProps, children ...templ.Component) templ.Component {
	id := props.Ref.bind(props.Attrs)
	return withDialog(func(s dialogState) templ.Component {
		return element{
			tag:   "button",
			class: classes.Merge(props.Class),
			attrs: attrList{
				{"type", "button"},
				{"aria-haspopup", "dialog"},
				{"aria-controls", s.id},
				{"aria-expanded", strconv.FormatBool(s.open)},
				{"data-state", dataState(s.open)},
				{"onclick", showDialogScript},
			},
			extra:    props.Attrs,
			id:       id,
			children: children,
		}
	})
}

// DialogClose renders a button that closes the dialog it is placed in.
func DialogClose(props DialogTriggerProps, children ...templ.Component) templ.Component {
	id := props.Ref.bind(props.Attrs)
	return withDialog(func(s dialogState) templ.Component {
		return element{
			tag:   "button",
			class: classes.Merge(props.Class),
			attrs: attrList{
				{"type", "button"},
				{"data-state", dataState(s.open)},
				{"onclick", closeDialogScript},
			},
			extra:    props.Attrs,
			id:       id,
			children: children,
		}
	})
}

// DialogPartProps configures the presentational dialog parts.
type DialogPartProps struct {
	Class string
	Attrs templ.Attributes
	Ref   *Ref
}

// DialogOverlay renders the backdrop behind the panel.
func DialogOverlay(props DialogPartProps, children ...templ.Component) templ.Component {
	id := props.Ref.bind(props.Attrs)
	return withDialog(func(s dialogState) templ.Component {
		return element{
			tag:      "div",
			class:    classes.Merge(dialogOverlayClass, props.Class),
			attrs:    attrList{{"data-state", dataState(s.open)}},
			extra:    props.Attrs,
			id:       id,
			children: children,
		}
	})
}

// DialogContentProps configures a DialogContent.
type DialogContentProps struct {
	Size           string // default, lg, xl
	MobileViewport string // fit, full
	// HideClose omits the built-in close button.
	HideClose bool
	Class     string
	Attrs     templ.Attributes
}

// DialogContent renders the native <dialog> with its overlay, the panel,
// and a close button.
func DialogContent(props DialogContentProps, children ...templ.Component) templ.Component {
	return withDialog(func(s dialogState) templ.Component {
		sel := variants.Selection{"size": props.Size, "mobileViewport": props.MobileViewport}

		body := append([]templ.Component(nil), children...)
		if !props.HideClose {
			body = append(body, DialogClose(DialogTriggerProps{Class: dialogCloseClass},
				XIcon("h-4 w-4"),
				element{tag: "span", class: "sr-only", children: []templ.Component{Text("Close")}},
			))
		}

		panel := element{
			tag:      "div",
			class:    DialogContentVariants.Resolve(sel, props.Class),
			attrs:    attrList{{"data-state", dataState(s.open)}},
			extra:    props.Attrs,
			children: body,
		}

		return element{
			tag:   "dialog",
			class: dialogElementClass,
			attrs: attrList{
				{"id", s.id},
				{"aria-modal", "true"},
				{"aria-labelledby", s.id + "-title"},
				{"aria-describedby", s.id + "-description"},
				{"data-state", dataState(s.open)},
				{"open", s.open},
				{"onclose", dialogClosedScript},
			},
			children: []templ.Component{DialogOverlay(DialogPartProps{}, panel)},
		}
	})
}

// DialogHeader groups the title and description.
func DialogHeader(props DialogPartProps, children ...templ.Component) templ.Component {
	return element{
		tag:      "div",
		class:    classes.Merge("flex flex-col space-y-1.5 text-center sm:text-left", props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}

// DialogBody is the scrollable middle section.
func DialogBody(props DialogPartProps, children ...templ.Component) templ.Component {
	return element{
		tag:      "div",
		class:    classes.Merge("flex grow flex-col gap-4 overflow-y-auto", props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}

// DialogFooter stacks actions on mobile and aligns them right otherwise.
func DialogFooter(props DialogPartProps, children ...templ.Component) templ.Component {
	return element{
		tag:      "div",
		class:    classes.Merge("flex flex-col-reverse gap-2 sm:flex-row sm:justify-end sm:gap-0 sm:space-x-2", props.Class),
		extra:    props.Attrs,
		id:       props.Ref.bind(props.Attrs),
		children: children,
	}
}

// DialogTitle labels the dialog.
func DialogTitle(props DialogPartProps, children ...templ.Component) templ.Component {
	return withDialog(func(s dialogState) templ.Component {
		return element{
			tag:      "h2",
			class:    classes.Merge("text-lg font-semibold leading-none tracking-tight", props.Class),
			attrs:    attrList{{"id", s.id + "-title"}},
			extra:    props.Attrs,
			children: children,
		}
	})
}

// DialogDescription describes the dialog.
func DialogDescription(props DialogPartProps, children ...templ.Component) templ.Component {
	return withDialog(func(s dialogState) templ.Component {
		return element{
			tag:      "p",
			class:    classes.Merge("text-sm text-muted-foreground", props.Class),
			attrs:    attrList{{"id", s.id + "-description"}},
			extra:    props.Attrs,
			children: children,
		}
	})
}
