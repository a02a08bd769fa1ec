package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/internal/config"
	"github.com/pthm/hxui/internal/logger"
	"github.com/pthm/hxui/ui"
)

// appContext bundles the services a command needs.
type appContext struct {
	Config     *config.Config
	ConfigPath string
	Log        *logger.Logger
	Registry   *hxui.Registry
}

// loadConfig reads the configuration. Without --config a missing
// ./hxui.yaml falls back to the defaults.
func loadConfig(flags *rootFlags) (*config.Config, string, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		path = config.FileName
	}

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return config.Default(), path, nil
	}
	return nil, path, err
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, path, err := loadConfig(flags)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, "Fix hxui.yaml or run 'hxui init' to create one.")
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Verbose: flags.verbose, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Set log_level to one of trace, debug, info, warn, error.")
	}
	log = log.Command(cmd.Name())

	reg, err := loadRegistry(cfg, log)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading component registry", err, "Check the bundle path and that $"+cfg.KeyEnv+" holds the key it was sealed with.")
	}

	return &appContext{Config: cfg, ConfigPath: path, Log: log, Registry: reg}, nil
}

// loadRegistry returns the built-in components, or the configured bundle.
func loadRegistry(cfg *config.Config, log *logger.Logger) (*hxui.Registry, error) {
	opts := []hxui.Option{hxui.WithLogger(log.Zerolog("registry"))}

	if cfg.Bundle == "" {
		reg := hxui.NewRegistry(opts...)
		if err := ui.Register(reg); err != nil {
			return nil, err
		}
		return reg, nil
	}

	data, err := os.ReadFile(cfg.Bundle)
	if err != nil {
		return nil, err
	}
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	enc, err := hxui.NewEncoder(key)
	if err != nil {
		return nil, err
	}

	// Signed bundles are "payload.signature"; encrypted ones have no dot.
	sealed := strings.TrimSpace(string(data))
	sensitive := !strings.Contains(sealed, ".")

	reg, err := hxui.LoadBundle(enc, sealed, sensitive, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Bundle, err)
	}
	log.Debug("loaded registry bundle", "bundle", cfg.Bundle, "components", reg.Len())
	return reg, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
