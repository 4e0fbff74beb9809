package commands

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/ui"
)

//go:embed docs.md
var configurationGuide string

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show the configuration guide",
		Long:  "Render the robotfmt configuration guide in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				cmd.Print(configurationGuide)
				return nil
			}
			return ui.PrintMarkdown(configurationGuide)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without terminal styling")

	return cmd
}
