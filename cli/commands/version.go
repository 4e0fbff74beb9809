package commands

import (
	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/ui"
	"github.com/MarketSquare/robotfmt/cli/internal/update"
	"github.com/MarketSquare/robotfmt/cli/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var checkUpdate bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			ui.PrintTable([]string{"Field", "Value"}, info.Rows())
			if checkUpdate {
				return update.CheckForUpdates(info.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "Check whether a newer release is available")

	return cmd
}
