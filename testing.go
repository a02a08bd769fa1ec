package hxui

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// TestResult holds the output of rendering a component for testing.
//
// Provides convenience methods for asserting on the HTML and on the
// elements and classes it contains.
type TestResult struct {
	HTML string
	doc  *html.Node
}

// Element is a rendered HTML element.
type Element struct {
	Tag   string
	Attrs map[string]string
	node  *html.Node
}

// TestRender renders a component and returns testable output.
//
//	result, err := hxui.TestRender(ui.Button(ui.ButtonProps{Size: "sm"}))
//	if !result.Find("button").HasClass("h-9") {
//	    t.Fatal("missing size class")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	out, err := RenderString(ctx, component)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		return nil, err
	}
	return &TestResult{HTML: out, doc: doc}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// Find returns the first element with the given tag in document order,
// or nil.
func (r *TestResult) Find(tag string) *Element {
	all := r.FindAll(tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every element with the given tag in document order.
func (r *TestResult) FindAll(tag string) []*Element {
	var out []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, newElement(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(r.doc)
	return out
}

// FindByAttr returns the first element whose attribute key equals value.
func (r *TestResult) FindByAttr(key, value string) *Element {
	var found *Element
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == key && a.Val == value {
					found = newElement(n)
					return true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(r.doc)
	return found
}

func newElement(n *html.Node) *Element {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return &Element{Tag: n.Data, Attrs: attrs, node: n}
}

// Attr returns the value of an attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// Classes returns the element's class tokens.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	return strings.Fields(e.Attrs["class"])
}

// HasClass checks if the element carries the class token.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.TrimSpace(sb.String())
}

// Children returns the element's direct child elements.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, newElement(c))
		}
	}
	return out
}
