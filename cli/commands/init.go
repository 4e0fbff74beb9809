package commands

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/MarketSquare/robotfmt/cli/internal/config"
	"github.com/MarketSquare/robotfmt/cli/internal/ui"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var useDefaults bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .robotfmt.yaml configuration file",
		Long:  "Interactively create a .robotfmt.yaml configuration file in the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(useDefaults)
		},
	}

	cmd.Flags().BoolVarP(&useDefaults, "yes", "y", false, "Write the default configuration without prompting")

	return cmd
}

func runInit(useDefaults bool) error {
	ui.PrintHeader("robotfmt", "Column alignment for robot files")

	cfg := config.DefaultConfig()
	if !useDefaults {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	// Reject bad answers before writing anything.
	if _, _, err := cfg.ToFormatting(); err != nil {
		return err
	}

	path, err := config.SaveConfig(cfg, ".")
	if err != nil {
		return err
	}
	ui.PrintSuccess("Created %s", path)
	ui.PrintInfo("Run 'robotfmt format' to align your robot files")
	return nil
}

// promptConfig fills the configuration from interactive answers.
func promptConfig(cfg *config.Config) error {
	if err := survey.AskOne(&survey.Select{
		Message: "How should column widths be determined?",
		Options: []string{"auto", "fixed"},
		Default: cfg.AlignmentType,
		Help:    "auto derives widths from the longest cell per column; fixed uses the configured widths",
	}, &cfg.AlignmentType); err != nil {
		return err
	}

	if cfg.AlignmentType == "fixed" {
		if err := survey.AskOne(&survey.Input{
			Message: "Column widths (comma-separated, 0 means uncapped):",
			Default: "24,28,20",
		}, &cfg.Widths); err != nil {
			return err
		}
	}

	if err := survey.AskOne(&survey.Select{
		Message: "What should happen to cells that do not fit their column?",
		Options: []string{"overflow", "compact_overflow", "ignore_line", "ignore_rest"},
		Default: cfg.HandleTooLong,
	}, &cfg.HandleTooLong); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Align settings separately from keyword calls?",
		Default: cfg.AlignSettingsSeparately,
	}, &cfg.AlignSettingsSeparately); err != nil {
		return err
	}

	maxLine := strconv.Itoa(cfg.MaxLineLength)
	if err := survey.AskOne(&survey.Input{
		Message: "Maximum line length (0 disables the check):",
		Default: maxLine,
	}, &maxLine); err != nil {
		return err
	}
	n, err := strconv.Atoi(maxLine)
	if err != nil {
		return fmt.Errorf("invalid max_line_length %q: must be an integer", maxLine)
	}
	cfg.MaxLineLength = n

	return nil
}
