package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, set at build time with
// -ldflags "-X github.com/toyz/compat-migrate/internal/cli.Version=..."
var Version = "dev"

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version of compat-migrate",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "compat-migrate %s\n", Version)
		},
	}
}
