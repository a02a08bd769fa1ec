package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
)

type bundleOptions struct {
	out       string
	sensitive bool
}

func newBundleCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &bundleOptions{}

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Seal the component registry into a distributable bundle",
		Long: `Bundles are signed by default: anyone can read them, and tampering is
detected on load. Pass --sensitive to encrypt a private registry instead.
The key is read from the variable named by key_env in hxui.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (required)")
	cmd.Flags().BoolVar(&opts.sensitive, "sensitive", false, "Encrypt the bundle instead of signing it")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runBundle(cmd *cobra.Command, rootFlags *rootFlags, opts *bundleOptions) error {
	app, err := newAppContext(cmd, rootFlags)
	if err != nil {
		return err
	}

	key, err := app.Config.Key()
	if err != nil {
		return newCommandError("bundle", "reading the bundle key", err, fmt.Sprintf("Export %s with a secret of your choice.", app.Config.KeyEnv))
	}
	enc, err := hxui.NewEncoder(key)
	if err != nil {
		return newCommandError("bundle", "creating the encoder", err, "Use a non-empty key.")
	}

	if app.Registry.Len() == 0 {
		return newCommandError("bundle", "sealing the registry", errors.New("registry is empty"), "Check the configured bundle.")
	}

	sealed, err := app.Registry.Bundle(enc, opts.sensitive)
	if err != nil {
		return newCommandError("bundle", "sealing the registry", err, "Check that every entry holds only serializable data.")
	}
	if err := os.WriteFile(opts.out, []byte(sealed+"\n"), 0o644); err != nil {
		return newCommandError("bundle", "writing "+opts.out, err, "Check the output path is writable.")
	}

	mode := "signed"
	if opts.sensitive {
		mode = "encrypted"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s bundle of %d components to %s\n", mode, app.Registry.Len(), opts.out)
	return nil
}
