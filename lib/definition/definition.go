// Package definition reads variant schemas declared in YAML, so schemas can
// be authored and checked outside Go code.
//
//	base: inline-flex items-center
//	axes:
//	  - name: size
//	    default: md
//	    options:
//	      - {name: sm, class: h-8 px-2}
//	      - {name: md, class: h-10 px-3}
//	compound:
//	  - when: {size: sm}
//	    class: text-xs
//
// Axis order in the file is resolution order.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	hxerrors "github.com/pthm/hxui/lib/errors"
	"github.com/pthm/hxui/lib/variants"
)

// Document is the YAML form of a variant schema.
type Document struct {
	Base     string    `yaml:"base,omitempty"`
	Axes     []AxisDoc `yaml:"axes,omitempty" validate:"dive"`
	Compound []RuleDoc `yaml:"compound,omitempty" validate:"dive"`
}

type AxisDoc struct {
	Name    string      `yaml:"name" validate:"required"`
	Default string      `yaml:"default,omitempty"`
	Options []OptionDoc `yaml:"options" validate:"required,min=1,dive"`
}

type OptionDoc struct {
	Name  string `yaml:"name" validate:"required"`
	Class string `yaml:"class,omitempty"`
}

type RuleDoc struct {
	When  map[string]string `yaml:"when" validate:"required,min=1"`
	Class string            `yaml:"class"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = hxerrors.NewValidator()
	})
	return validate
}

// Parse decodes and validates a YAML schema. Syntax errors and unknown
// keys are reported as *errors.ParseError; structural problems and
// inconsistent schemas as *errors.ValidationError.
func Parse(data []byte) (*variants.Schema, error) {
	return parse("<input>", data)
}

// Load reads and parses the schema file at path.
func Load(path string) (*variants.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hxerrors.NewParseError(path, 0, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*variants.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, hxerrors.NewValidationError("", "empty schema definition", nil)
		}
		return nil, hxerrors.NewParseError(path, 0, err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, hxerrors.FromValidator("schema", err)
	}

	schema, err := variants.Define(doc.Config())
	if err != nil {
		return nil, schemaValidationError(err)
	}
	return schema, nil
}

func schemaValidationError(err error) error {
	var se *variants.SchemaError
	if !errors.As(err, &se) {
		return hxerrors.NewValidationError("schema", err.Error(), err)
	}
	field := "axes"
	if se.Rule >= 0 {
		field = fmt.Sprintf("compound[%d]", se.Rule)
	}
	return hxerrors.NewValidationError(field, strings.TrimPrefix(se.Error(), "variants: "), err)
}

// Config converts the document into a variants.Config.
func (d Document) Config() variants.Config {
	cfg := variants.Config{Base: d.Base}
	for _, a := range d.Axes {
		axis := variants.Axis{Name: a.Name, Default: a.Default}
		for _, o := range a.Options {
			axis.Options = append(axis.Options, variants.Option{Name: o.Name, Class: o.Class})
		}
		cfg.Axes = append(cfg.Axes, axis)
	}
	for _, r := range d.Compound {
		cfg.Compound = append(cfg.Compound, variants.Rule{When: variants.Selection(r.When), Class: r.Class})
	}
	return cfg
}

// FromSchema returns the document form of s.
func FromSchema(s *variants.Schema) Document {
	doc := Document{Base: s.Base()}
	for _, a := range s.Axes() {
		axis := AxisDoc{Name: a.Name, Default: a.Default}
		for _, o := range a.Options {
			axis.Options = append(axis.Options, OptionDoc{Name: o.Name, Class: o.Class})
		}
		doc.Axes = append(doc.Axes, axis)
	}
	for _, r := range s.Compound() {
		doc.Compound = append(doc.Compound, RuleDoc{When: map[string]string(r.When), Class: r.Class})
	}
	return doc
}

// Marshal encodes s as YAML that Parse reads back to an equivalent schema.
func Marshal(s *variants.Schema) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromSchema(s)); err != nil {
		return nil, fmt.Errorf("definition: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("definition: marshal: %w", err)
	}
	return buf.Bytes(), nil
}
