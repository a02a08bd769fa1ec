// Package variants resolves component style variants into class strings.
//
// A Schema is declared once per component with Define and never changes
// afterwards. Each render builds a Selection and calls Resolve:
//
//	var buttonVariants = variants.MustDefine(variants.Config{
//	    Base: "inline-flex items-center",
//	    Axes: []variants.Axis{
//	        {Name: "size", Default: "default", Options: []variants.Option{
//	            {Name: "sm", Class: "h-9"},
//	            {Name: "default", Class: "h-10"},
//	        }},
//	    },
//	})
//
//	class := buttonVariants.Resolve(variants.Selection{"size": "sm"}, props.Class)
//
// Resolution is permissive: unknown axes and undeclared options are ignored
// so that pass-through props never break a render. The only failure mode is
// Define rejecting an inconsistent schema.
package variants

import (
	"strconv"

	"github.com/pthm/hxui/lib/classes"
)

// Option is one named choice within an Axis.
type Option struct {
	Name  string
	Class string
}

// Axis is a named style dimension with a closed set of options.
// An empty Default means the axis contributes nothing unless selected.
type Axis struct {
	Name    string
	Options []Option
	Default string
}

// option looks up an option by name.
func (a Axis) option(name string) (Option, bool) {
	for _, o := range a.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Rule is a compound rule: Class applies when every axis in When is
// selected with the given option.
type Rule struct {
	When  Selection
	Class string
}

// Selection maps axis names to option names. An empty option name is
// treated as unset.
type Selection map[string]string

// Config declares a schema. See Define.
type Config struct {
	Base     string
	Axes     []Axis
	Compound []Rule
}

// Schema is a validated, immutable variant schema. It is safe for
// concurrent use.
type Schema struct {
	base     string
	axes     []Axis
	index    map[string]int
	compound []Rule
}

// Bool renders a boolean as an option name for true/false axes.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// Resolve is shorthand for s.Resolve(sel, extra...).
func Resolve(s *Schema, sel Selection, extra ...string) string {
	return s.Resolve(sel, extra...)
}

// Resolve produces the merged class string for sel. Extra classes are
// layered last so they win conflicts against schema classes.
func (s *Schema) Resolve(sel Selection, extra ...string) string {
	return classes.Merge(s.Fragments(sel, extra...)...)
}

// Fragments returns the ordered, pre-merge class fragments for sel: base,
// axis fragments in declaration order, matching compound rules in
// declaration order, then extra. Empty fragments are dropped.
func (s *Schema) Fragments(sel Selection, extra ...string) []string {
	if s == nil {
		return appendNonEmpty(nil, extra...)
	}

	out := make([]string, 0, 1+len(s.axes)+len(s.compound)+len(extra))
	out = appendNonEmpty(out, s.base)

	effective := s.effective(sel)
	for _, axis := range s.axes {
		name, ok := effective[axis.Name]
		if !ok {
			continue
		}
		if opt, ok := axis.option(name); ok {
			out = appendNonEmpty(out, opt.Class)
		}
	}

	for _, rule := range s.compound {
		if rule.matches(effective) {
			out = appendNonEmpty(out, rule.Class)
		}
	}

	return appendNonEmpty(out, extra...)
}

// effective applies defaults to sel and drops unknown axes.
func (s *Schema) effective(sel Selection) Selection {
	eff := make(Selection, len(s.axes))
	for _, axis := range s.axes {
		if v := sel[axis.Name]; v != "" {
			eff[axis.Name] = v
		} else if axis.Default != "" {
			eff[axis.Name] = axis.Default
		}
	}
	return eff
}

func (r Rule) matches(eff Selection) bool {
	for axis, want := range r.When {
		if got, ok := eff[axis]; !ok || got != want {
			return false
		}
	}
	return true
}

// Base returns the schema's base class fragment.
func (s *Schema) Base() string {
	return s.base
}

// Axes returns a copy of the schema's axes in declaration order.
func (s *Schema) Axes() []Axis {
	out := make([]Axis, len(s.axes))
	for i, a := range s.axes {
		a.Options = append([]Option(nil), a.Options...)
		out[i] = a
	}
	return out
}

// Axis looks up an axis by name.
func (s *Schema) Axis(name string) (Axis, bool) {
	i, ok := s.index[name]
	if !ok {
		return Axis{}, false
	}
	a := s.axes[i]
	a.Options = append([]Option(nil), a.Options...)
	return a, true
}

// Compound returns a copy of the schema's compound rules.
func (s *Schema) Compound() []Rule {
	out := make([]Rule, len(s.compound))
	for i, r := range s.compound {
		when := make(Selection, len(r.When))
		for k, v := range r.When {
			when[k] = v
		}
		out[i] = Rule{When: when, Class: r.Class}
	}
	return out
}

// Defaults returns the default selection.
func (s *Schema) Defaults() Selection {
	return s.effective(nil)
}

func appendNonEmpty(dst []string, fragments ...string) []string {
	for _, f := range fragments {
		if f != "" {
			dst = append(dst, f)
		}
	}
	return dst
}
