package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [variants...]",
		Short: "Build the Swift package for the given variants",
		Long: "Build cross-compiles the module's Swift package and installs the " +
			"produced shared libraries into the Android native-library tree. " +
			"Without arguments every declared variant is built.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args)
		},
	}
}
