package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swan/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("swan version %s\n", build.Version)
		},
	}
}
