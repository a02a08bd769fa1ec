package variants

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSchema is matched by every *SchemaError.
var ErrInvalidSchema = errors.New("variants: invalid schema")

// SchemaError reports an inconsistent schema declaration.
// Rule is the index of the offending compound rule, or -1.
type SchemaError struct {
	Axis   string
	Option string
	Rule   int
	Reason string
}

func (e *SchemaError) Error() string {
	msg := "variants: " + e.Reason
	if e.Rule >= 0 {
		msg += fmt.Sprintf(" (compound rule %d)", e.Rule)
	}
	switch {
	case e.Axis != "" && e.Option != "":
		msg += fmt.Sprintf(": %s=%s", e.Axis, e.Option)
	case e.Axis != "":
		msg += ": " + e.Axis
	}
	return msg
}

// Is reports ErrInvalidSchema as a match.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Define validates cfg and returns an immutable Schema.
//
// Define fails with *SchemaError when a compound rule references an axis or
// option that is not declared, when axis names or option names repeat, when
// a default names an undeclared option, or when a compound rule has no
// constraints.
func Define(cfg Config) (*Schema, error) {
	s := &Schema{
		base:  cfg.Base,
		axes:  make([]Axis, 0, len(cfg.Axes)),
		index: make(map[string]int, len(cfg.Axes)),
	}

	for _, axis := range cfg.Axes {
		if axis.Name == "" {
			return nil, &SchemaError{Rule: -1, Reason: "axis without a name"}
		}
		if _, dup := s.index[axis.Name]; dup {
			return nil, &SchemaError{Axis: axis.Name, Rule: -1, Reason: "duplicate axis"}
		}

		seen := make(map[string]struct{}, len(axis.Options))
		for _, opt := range axis.Options {
			if opt.Name == "" {
				return nil, &SchemaError{Axis: axis.Name, Rule: -1, Reason: "option without a name"}
			}
			if _, dup := seen[opt.Name]; dup {
				return nil, &SchemaError{Axis: axis.Name, Option: opt.Name, Rule: -1, Reason: "duplicate option"}
			}
			seen[opt.Name] = struct{}{}
		}
		if axis.Default != "" {
			if _, ok := seen[axis.Default]; !ok {
				return nil, &SchemaError{Axis: axis.Name, Option: axis.Default, Rule: -1, Reason: "default is not a declared option"}
			}
		}

		axis.Options = append([]Option(nil), axis.Options...)
		s.index[axis.Name] = len(s.axes)
		s.axes = append(s.axes, axis)
	}

	for i, rule := range cfg.Compound {
		if len(rule.When) == 0 {
			return nil, &SchemaError{Rule: i, Reason: "compound rule without constraints"}
		}

		when := make(Selection, len(rule.When))
		for _, name := range sortedKeys(rule.When) {
			value := rule.When[name]
			idx, ok := s.index[name]
			if !ok {
				return nil, &SchemaError{Axis: name, Rule: i, Reason: "undeclared axis"}
			}
			if _, ok := s.axes[idx].option(value); !ok {
				return nil, &SchemaError{Axis: name, Option: value, Rule: i, Reason: "undeclared option"}
			}
			when[name] = value
		}
		s.compound = append(s.compound, Rule{When: when, Class: rule.Class})
	}

	return s, nil
}

// MustDefine is like Define but panics on an invalid schema. Use it for
// package-level schema declarations.
func MustDefine(cfg Config) *Schema {
	s, err := Define(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func sortedKeys(m Selection) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
