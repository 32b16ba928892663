// Package cli implements borderoctl, which checks and renders borderò files
// without running the server.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "borderoctl",
		Short:        "Check and render borderò files",
		SilenceUsage: true,
	}

	cmd.AddCommand(validateCmd())
	cmd.AddCommand(renderCmd())

	return cmd
}
