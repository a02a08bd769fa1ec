package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hxui",
		Short: "hxui installs and inspects server-rendered UI components",
		Long: `hxui ships alert, button, card, dialog and input components as Go
source you copy into your project, plus the variant schemas that style them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to hxui.yaml (default ./hxui.yaml if present)")

	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newBundleCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
