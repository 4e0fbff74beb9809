// Package commands implements the robotfmt CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/version"
	"github.com/MarketSquare/robotfmt/internal/debug"
)

// Execute is the main entry point for the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "robotfmt",
		Short:   "Column alignment for robot files",
		Long:    "robotfmt aligns the cells of robot files into visual columns.",
		Version: version.Get().String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(verbose)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewFormatCommand())
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewDocsCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
