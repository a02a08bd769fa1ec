// Package errors holds the typed errors reported for YAML files: the
// project configuration and variant schema definitions.
package errors

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError. A zero line is taken from the
// underlying yaml error when it carries one.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
		if line == 0 {
			line = YAMLLine(err)
		}
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a file that parsed but holds invalid values.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// YAMLLine extracts the first line number mentioned by a yaml error, or 0.
func YAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// NewValidator returns a validator that reports fields by their yaml
// names, so errors point at what the user wrote.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// FromValidator normalizes validator errors into a ValidationError naming
// the first failing field by its yaml path. Other errors are reported
// against root.
func FromValidator(root string, err error) error {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return NewValidationError(root, err.Error(), err)
	}

	fe := ves[0]
	// The namespace starts with the Go type name of the validated struct.
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	msg := fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed validation for tag '%s=%s'", fe.Tag(), fe.Param())
	}
	return NewValidationError(field, msg, err)
}
