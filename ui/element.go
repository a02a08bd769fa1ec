package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/pthm/hxui/lib/classes"
)

// Ref is an optional output handle for a rendered element. A component
// given a non-nil Ref fixes its id when the component is built and stores
// it in the Ref, so callers can target the element (hx-target,
// aria-controls, label for=) before or after rendering. An id preset on the
// Ref is used as is; otherwise one is generated.
type Ref struct {
	ID string
}

// bind returns the element id for a component built with ref r and caller
// attributes attrs. An "id" string in attrs wins over the Ref.
func (r *Ref) bind(attrs templ.Attributes) string {
	explicit, _ := attrs["id"].(string)
	return r.bindID(explicit)
}

func (r *Ref) bindID(explicit string) string {
	if r == nil {
		return explicit
	}
	switch {
	case explicit != "":
		r.ID = explicit
	case r.ID == "":
		r.ID = newID()
	}
	return r.ID
}

func newID() string {
	return "hxui-" + uuid.NewString()
}

// attr is one component attribute. Values follow templ.RenderAttributes:
// nil and false are omitted, true renders a bare attribute.
type attr struct {
	key   string
	value any
}

type attrList []attr

// element is the shared shape of every component: one tag with merged
// classes, component attributes, caller attributes and children. It is
// immutable once built and safe to render concurrently.
type element struct {
	tag      string
	id       string
	class    string
	attrs    attrList
	extra    templ.Attributes
	void     bool
	children []templ.Component
}

// attributes orders id, class, component attributes, then caller
// attributes by key. A caller attribute replaces a component attribute of
// the same name in place.
func (el element) attributes() templ.OrderedAttributes {
	out := make(templ.OrderedAttributes, 0, len(el.attrs)+len(el.extra)+2)
	index := make(map[string]int, cap(out))
	set := func(key string, value any) {
		if u, ok := value.(templ.SafeURL); ok {
			value = string(u)
		}
		if i, ok := index[key]; ok {
			out[i].Value = value
			return
		}
		index[key] = len(out)
		out = append(out, templ.KeyValue[string, any]{Key: key, Value: value})
	}

	if el.id != "" {
		set("id", el.id)
	}

	class := el.class
	extraClass, mergeClass := el.extra["class"].(string)
	if mergeClass {
		class = classes.Merge(class, extraClass)
	}
	if class != "" {
		set("class", class)
	}

	for _, a := range el.attrs {
		set(a.key, a.value)
	}
	for _, kv := range el.extra.Items() {
		if (kv.Key == "id" && el.id != "") || (kv.Key == "class" && mergeClass) {
			continue
		}
		set(kv.Key, kv.Value)
	}
	return out
}

func (el element) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "<"+el.tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, el.attributes()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if el.void {
		return nil
	}

	for _, child := range el.children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+el.tag+">")
	return err
}

// Text renders s as escaped text, for plain-text children.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
