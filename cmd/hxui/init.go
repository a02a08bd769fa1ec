package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui/internal/config"
)

type initOptions struct {
	pkg   string
	dir   string
	force bool
}

func newInitCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create hxui.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.pkg, "package", "", "Go package name for installed components")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory installed components are written to")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Replace an existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, rootFlags *rootFlags, opts *initOptions) error {
	path := rootFlags.configPath
	if path == "" {
		path = config.FileName
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		return newCommandError("init", "writing "+path, errors.New("configuration already exists"), "Pass --force to replace it.")
	}

	cfg := config.Default()
	if opts.pkg != "" {
		cfg.Package = opts.pkg
	}
	if opts.dir != "" {
		cfg.Dir = opts.dir
	}

	if err := cfg.Save(path); err != nil {
		return newCommandError("init", "writing "+path, err, "Use a valid Go identifier for --package.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (package %s, dir %s)\n", path, cfg.Package, cfg.Dir)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'hxui add button' to install your first component.")
	return nil
}
