// Package config reads and writes the project file, hxui.yaml, which tells
// the CLI where installed components go and how bundles are keyed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	hxerrors "github.com/pthm/hxui/lib/errors"
)

// FileName is the project file looked up in the working directory.
const FileName = "hxui.yaml"

// ErrNoKey is returned by Key when the configured variable is unset.
var ErrNoKey = errors.New("config: bundle key not set")

var envNamePattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// Config is the hxui.yaml model.
type Config struct {
	// Package is the Go package name installed files are rewritten to.
	Package string `yaml:"package" validate:"required,goident"`
	// Dir is where installed components are written, relative to the
	// project root.
	Dir string `yaml:"dir" validate:"required"`
	// Bundle is an optional registry bundle used instead of the built-in
	// components.
	Bundle string `yaml:"bundle,omitempty"`
	// KeyEnv names the environment variable holding the bundle key.
	KeyEnv   string `yaml:"key_env,omitempty" validate:"omitempty,envname"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := hxerrors.NewValidator()

		_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return token.IsIdentifier(name) && !token.IsKeyword(name)
		})

		_ = v.RegisterValidation("envname", func(fl validator.FieldLevel) bool {
			return envNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Default returns the configuration written by `hxui init`.
func Default() *Config {
	return &Config{
		Package:  "ui",
		Dir:      "internal/ui",
		KeyEnv:   "HXUI_BUNDLE_KEY",
		LogLevel: "info",
	}
}

// Load reads and validates the configuration at path. Keys missing from the
// file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hxerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, hxerrors.NewParseError(path, 0, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field formats.
func (c *Config) Validate() error {
	if c == nil {
		return hxerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(c); err != nil {
		return hxerrors.FromValidator("config", err)
	}
	return nil
}

// Save validates c and writes it to path.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Key returns the bundle key from the environment.
func (c *Config) Key() ([]byte, error) {
	if c.KeyEnv == "" {
		return nil, fmt.Errorf("%w: key_env is empty", ErrNoKey)
	}
	key := os.Getenv(c.KeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%w: $%s is empty", ErrNoKey, c.KeyEnv)
	}
	return []byte(key), nil
}
